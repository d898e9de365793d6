// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BestBytes

// Package logger provides a thin wrapper around zerolog.Logger with
// convenience constructors and context-aware helpers used throughout the
// movie-review backend.
//
// The Logger type embeds zerolog.Logger, so the full zerolog API (Debug,
// Info, Warn, Error, Fatal, ...) is available directly on *Logger.
// Request handlers obtain request-scoped loggers via FromRequest or
// FromContext.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the full
// zerolog API while leaving room for application-specific helper methods.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "server", "store").
//
// The logger emits JSON to os.Stdout with:
//   - a "role" field set to role, for filtering logs per component;
//   - a "ts" timestamp on every entry;
//   - a "func" caller field holding the fully-qualified function name.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the receiver.
// The child can be enriched with extra context fields without affecting the
// parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the request-scoped zerolog.Logger attached to the
// request context by the trace-ID middleware and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx and returns it as a
// *Logger. If no logger was attached, zerolog falls back to its global
// logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
