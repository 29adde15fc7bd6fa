package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TimestampLayout is the wire format for timestamps. Values carry no zone and
// are stored as written.
const TimestampLayout = "2006-01-02T15:04:05"

// acceptedTimestampLayouts lists the formats a timestamp field may arrive in.
// Every layout carries a time of day; a bare date is not a timestamp.
var acceptedTimestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	TimestampLayout,
	"2006-01-02 15:04:05",
}

// validate runs the length and range rules attached to schema fields.
var validate = validator.New()

// Payload is a decoded JSON object keyed by field name. Values stay raw until
// an entity schema reads them.
type Payload map[string]json.RawMessage

// ParsePayload decodes a request body into a Payload.
// Anything other than a JSON object fails with a ValidationError on SchemaField.
func ParsePayload(body []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(body, &p); err != nil || p == nil {
		return nil, NewValidationError(SchemaField, MsgInvalidInput)
	}
	return p, nil
}

// ParseLinkPayload decodes the body of an order/product link request. Any
// well-formed JSON value that is not an object carries no product_id and
// decodes to an empty Payload; malformed JSON fails like ParsePayload.
func ParseLinkPayload(body []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] != '{' && json.Valid(trimmed) {
		return Payload{}, nil
	}
	return ParsePayload(body)
}

// Optional holds a payload field that may be absent, explicitly null, or set.
// Set is false when the field was absent; Value is nil when it was null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that was supplied as an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// IsNull reports whether the field was supplied as null.
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}

// applyTo copies the field onto dst when it was supplied.
func (o Optional[T]) applyTo(dst **T) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		*dst = nil
		return
	}
	v := *o.Value
	*dst = &v
}

// schemaReader reads typed fields out of a Payload, collecting every problem
// instead of stopping at the first one.
type schemaReader struct {
	payload Payload
	partial bool
	errs    FieldErrors
}

func newSchemaReader(p Payload, partial bool) *schemaReader {
	return &schemaReader{payload: p, partial: partial, errs: FieldErrors{}}
}

func (r *schemaReader) err() error {
	return r.errs.orNil()
}

// lookup returns the raw JSON for field. present is false when there is
// nothing to read, either because the field is absent or because a problem
// was recorded. null is true for an accepted explicit null.
func (r *schemaReader) lookup(field string, required bool) (raw json.RawMessage, null bool, present bool) {
	raw, ok := r.payload[field]
	if !ok {
		if required && !r.partial {
			r.errs.Add(field, MsgMissingField)
		}
		return nil, false, false
	}
	if isJSONNull(raw) {
		if required {
			r.errs.Add(field, MsgNullField)
			return nil, false, false
		}
		return nil, true, true
	}
	return raw, false, true
}

// String reads a string field.
func (r *schemaReader) String(field string, required bool, rules string) Optional[string] {
	raw, null, present := r.lookup(field, required)
	if !present {
		return Optional[string]{}
	}
	if null {
		return Null[string]()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		r.errs.Add(field, MsgInvalidString)
		return Optional[string]{}
	}
	if !r.check(field, s, rules) {
		return Optional[string]{}
	}
	return Some(s)
}

// Int reads an integer field. JSON integers, integral floats and numeric
// strings are accepted.
func (r *schemaReader) Int(field string, required bool, rules string) Optional[int64] {
	raw, null, present := r.lookup(field, required)
	if !present {
		return Optional[int64]{}
	}
	if null {
		return Null[int64]()
	}

	n, ok := parseInteger(raw)
	if !ok {
		r.errs.Add(field, MsgInvalidInteger)
		return Optional[int64]{}
	}
	if !r.check(field, n, rules) {
		return Optional[int64]{}
	}
	return Some(n)
}

// Float reads a numeric field. JSON numbers and numeric strings are accepted.
func (r *schemaReader) Float(field string, required bool, rules string) Optional[float64] {
	raw, null, present := r.lookup(field, required)
	if !present {
		return Optional[float64]{}
	}
	if null {
		return Null[float64]()
	}

	f, ok := parseNumber(raw)
	if !ok {
		r.errs.Add(field, MsgInvalidNumber)
		return Optional[float64]{}
	}
	if !r.check(field, f, rules) {
		return Optional[float64]{}
	}
	return Some(f)
}

// Time reads a timestamp field in one of the accepted layouts.
func (r *schemaReader) Time(field string, required bool) Optional[time.Time] {
	raw, null, present := r.lookup(field, required)
	if !present {
		return Optional[time.Time]{}
	}
	if null {
		return Null[time.Time]()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		r.errs.Add(field, MsgInvalidDate)
		return Optional[time.Time]{}
	}
	t, ok := ParseTimestamp(s)
	if !ok {
		r.errs.Add(field, MsgInvalidDate)
		return Optional[time.Time]{}
	}
	return Some(t)
}

// check applies validator rules to a decoded value and records any failures.
func (r *schemaReader) check(field string, value any, rules string) bool {
	if rules == "" {
		return true
	}

	err := validate.Var(value, rules)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		r.errs.Add(field, err.Error())
		return false
	}
	for _, fe := range verrs {
		r.errs.Add(field, ruleMessage(fe))
	}
	return false
}

// ruleMessage turns a validator failure into a client-facing message.
func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("Longer than maximum length %s.", fe.Param())
	default:
		return "Invalid value."
	}
}

// ParseTimestamp parses s using the accepted timestamp layouts. Zoned values
// are converted to UTC before the zone is dropped.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedTimestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// numericText extracts the textual form of a JSON number or numeric string.
func numericText(raw json.RawMessage) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	switch t := v.(type) {
	case json.Number:
		return t.String(), true
	case string:
		return strings.TrimSpace(t), true
	default:
		return "", false
	}
}

func parseInteger(raw json.RawMessage) (int64, bool) {
	text, ok := numericText(raw)
	if !ok {
		return 0, false
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n, true
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func parseNumber(raw json.RawMessage) (float64, bool) {
	text, ok := numericText(raw)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
