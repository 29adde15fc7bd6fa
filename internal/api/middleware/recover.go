package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/ecommerce-api/internal/api/shared"
	"github.com/phrazzld/ecommerce-api/internal/platform/logger"
	"github.com/phrazzld/ecommerce-api/internal/redact"
)

// Recoverer turns a handler panic into a JSON 500 response. It must run after
// the trace middleware so the panic is logged with the request's trace ID.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			log := logger.FromContextOrDefault(r.Context(), slog.Default())
			log.Error("recovered from panic", slog.String("stack", redact.String(string(debug.Stack()))))

			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"An unexpected error occurred", fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
