package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/ecommerce-api/internal/platform/logger"
)

// pathID reads a positive integer path parameter. A malformed value is
// answered with the notFound error, the same as a well-formed ID that
// matches nothing, and ok is false.
func pathID(w http.ResponseWriter, r *http.Request, param string, notFound error) (int64, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		log := logger.FromContextOrDefault(r.Context(), slog.Default())
		log.Debug("unroutable path parameter",
			slog.String("param_name", param),
			slog.String("value", raw))
		HandleAPIError(w, r, notFound)
		return 0, false
	}
	return id, true
}
