package http

import (
	"net/http"
	"time"

	"github.com/bestbytes/movie-review-api/internal/logger"
)

// withLogging emits one access-log line per request with the observed
// status, response size and handling duration.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
