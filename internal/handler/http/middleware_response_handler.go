// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BestBytes

package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// intercepts WriteHeader and Write calls to capture response metadata.
//
// It is used by middleware (e.g. withLogging) to observe the HTTP status code
// and the total number of bytes written to the response body after the
// downstream handler has returned, without buffering the entire response.
//
// responseWriter ensures that WriteHeader is forwarded to the underlying
// writer exactly once: subsequent calls are silently ignored, mirroring the
// behaviour documented by the [http.ResponseWriter] interface.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	// It is zero until WriteHeader (or an implicit WriteHeader via Write) is called.
	status int

	// wroteHeader reports whether WriteHeader has already been called.
	// It guards against forwarding a second WriteHeader to the underlying writer.
	wroteHeader bool

	// size is the running total of bytes successfully written to the response body
	// across all Write calls.
	size int
}

// WriteHeader records the status code and forwards it to the underlying
// [http.ResponseWriter] exactly once.
//
// If WriteHeader has already been called for this response, the call is a
// no-op and statusCode is ignored. This matches the contract of the standard
// library's [http.ResponseWriter], which states that WriteHeader may only be
// called once per response.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write writes b to the underlying [http.ResponseWriter] and accumulates
// the number of bytes written in the size field.
//
// If WriteHeader has not been called before Write, it implicitly calls
// WriteHeader with [http.StatusOK], matching the behaviour of the standard
// library's response writer.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
