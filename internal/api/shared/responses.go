package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/ecommerce-api/internal/domain"
	"github.com/phrazzld/ecommerce-api/internal/platform/logger"
	"github.com/phrazzld/ecommerce-api/internal/redact"
)

// MessageResponse is the body of plain success and failure messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of failures reported under the "error" key.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries per-field validation messages.
type ValidationErrorResponse struct {
	ValidationErrors domain.FieldErrors `json:"validation_errors"`
}

// ResponseOption customizes an error response.
type ResponseOption func(*responseOptions)

type responseOptions struct {
	elevateLogLevel bool
	errorKey        bool
}

// WithElevatedLogLevel raises 4xx errors to WARN instead of DEBUG.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// WithErrorKey reports the message under "error" rather than "message".
func WithErrorKey() ResponseOption {
	return func(opts *responseOptions) {
		opts.errorKey = true
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log := logger.FromContextOrDefault(r.Context(), slog.Default())
		log.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithMessage writes {"message": ...}. The trace ID travels in the
// X-Trace-ID header only.
func RespondWithMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, MessageResponse{Message: message})
}

// RespondWithValidationErrors writes a 400 carrying the field messages.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, fields domain.FieldErrors) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())
	log.Debug("request failed validation",
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("field_count", len(fields)))

	RespondWithJSON(w, r, http.StatusBadRequest, ValidationErrorResponse{ValidationErrors: fields})
}

// RespondWithErrorAndLog writes a sanitized error response and logs the
// redacted error. 5xx are logged at ERROR, 4xx at DEBUG unless elevated.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	traceID := GetTraceID(r.Context())

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	} else if responseOpts.elevateLogLevel && status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}

	log := logger.FromContextOrDefault(r.Context(), slog.Default())
	log.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	if responseOpts.errorKey {
		RespondWithJSON(w, r, status, ErrorResponse{Error: userMessage})
		return
	}
	RespondWithJSON(w, r, status, MessageResponse{Message: userMessage})
}
