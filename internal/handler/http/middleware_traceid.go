package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request correlation id. A caller-supplied value
// is kept so clients can match their own logs against ours.
const traceIDHeader = "X-Trace-ID"

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		requestLogger := h.logger.GetChildLogger()
		requestLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(requestLogger.WithContext(r.Context())))
	})
}
