package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/ecommerce-api/internal/api/shared"
	"github.com/phrazzld/ecommerce-api/internal/domain"
	"github.com/phrazzld/ecommerce-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing the error itself.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrProductIDRequired),
		errors.Is(err, store.ErrProductAlreadyInOrder),
		errors.Is(err, store.ErrProductNotInOrder),
		errors.Is(err, store.ErrUserHasOrders),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrReferenced):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrProductNotFound):
		return "Product not found"
	case errors.Is(err, store.ErrOrderNotFound):
		return "Order not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, domain.ErrProductIDRequired):
		return "product_id is required"
	case errors.Is(err, store.ErrProductAlreadyInOrder):
		return "Product already in order"
	case errors.Is(err, store.ErrProductNotInOrder):
		return "Product not in order"
	case errors.Is(err, store.ErrUserHasOrders):
		return "User has existing orders"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrReferenced):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for a service error. Validation errors
// become {"validation_errors": ...}; everything else a sanitized message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, opts ...shared.ResponseOption) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		shared.RespondWithValidationErrors(w, r, verr.Fields)
		return
	}

	if errors.Is(err, domain.ErrProductIDRequired) {
		opts = append(opts, shared.WithErrorKey())
	}

	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err, opts...)
}
