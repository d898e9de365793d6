package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// pathParam returns the decoded URL parameter. Movie titles may contain
// spaces and punctuation, so the raw value is path-unescaped.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// indexParam parses the {index} URL parameter. Returns -1 when the value is
// not a number; the service layer reports that as a missing review.
func indexParam(r *http.Request) int {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return -1
	}
	return index
}
