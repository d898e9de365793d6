// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BestBytes

package config

import (
	"time"
)

// Defaults applied when no source provides a value.
const (
	// DefaultSessionTimeout is how long a session token stays valid after
	// login. Expiry is detected lazily on the next login or lookup.
	DefaultSessionTimeout = 24 * time.Hour

	// DefaultPenaltyThreshold is the total penalty points at which login is
	// blocked. The comparison is inclusive: an account with exactly this many
	// points cannot log in.
	DefaultPenaltyThreshold = 3

	// DefaultHTTPAddress is the address the HTTP server binds to when none is
	// configured.
	DefaultHTTPAddress = "localhost:8080"

	defaultMoviesDir = "data/movies"
	defaultUsersDir  = "data/users"
)

// StructuredConfig is the top-level configuration container for the
// movie-review backend. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the session timeout and
	// the penalty-point login threshold.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the file-backed persistence layer.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged with the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration controlling session and penalty
// behavior.
type App struct {
	// SessionTimeout is how long a session remains valid after login
	// (e.g. "24h"). Sessions past this age are purged lazily.
	// Env: APP_SESSION_TIMEOUT
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT"`

	// PenaltyThreshold is the total penalty points at or above which an
	// account is blocked from logging in.
	// Env: APP_PENALTY_THRESHOLD
	PenaltyThreshold int `env:"PENALTY_THRESHOLD"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups configuration for the file-backed stores.
type Storage struct {
	// Files holds the directory layout of the on-disk data.
	Files Files `envPrefix:"FILES_"`
}

// Files holds the directory layout used by the file repositories.
type Files struct {
	// MoviesDir is the directory holding one sub-directory per movie with
	// its metadata.json and movieReviews.csv.
	// Env: STORAGE_FILES_MOVIES_DIR
	MoviesDir string `env:"MOVIES_DIR"`

	// UsersDir is the directory holding users.json and movieLists.json.
	// Env: STORAGE_FILES_USERS_DIR
	UsersDir string `env:"USERS_DIR"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
