package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a payload fails validation.
	// *ValidationError unwraps to it.
	ErrValidation = errors.New("validation failed")

	// ErrProductIDRequired is returned when an order/product link request
	// carries no product_id.
	ErrProductIDRequired = errors.New("product_id is required")
)

// Field messages returned to clients. They are part of the wire contract.
const (
	MsgMissingField   = "Missing data for required field."
	MsgNullField      = "Field may not be null."
	MsgInvalidString  = "Not a valid string."
	MsgInvalidInteger = "Not a valid integer."
	MsgInvalidNumber  = "Not a valid number."
	MsgInvalidDate    = "Not a valid datetime."
	MsgInvalidInput   = "Invalid input type."
)

// SchemaField is the key used for errors that concern the payload as a whole
// rather than a single field.
const SchemaField = "_schema"

// FieldErrors maps a field name to the problems found with it.
type FieldErrors map[string][]string

// Add records a problem for the given field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// ValidationError is returned when a payload does not satisfy an entity schema.
// Fields is sent to clients verbatim.
type ValidationError struct {
	Fields FieldErrors
}

// NewValidationError creates a ValidationError with a single field problem.
func NewValidationError(field, message string) *ValidationError {
	errs := FieldErrors{}
	errs.Add(field, message)
	return &ValidationError{Fields: errs}
}

// Error implements the error interface. Fields are listed in sorted order so
// the message is stable.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], " ")))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// orNil returns a *ValidationError when problems were collected and nil otherwise.
func (f FieldErrors) orNil() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}
