// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BestBytes

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionTimeout <= 0 {
		return ErrInvalidSessionTimeout
	}

	if cfg.App.PenaltyThreshold < 1 {
		return ErrInvalidPenaltyThreshold
	}

	if cfg.Storage.Files.MoviesDir == "" || cfg.Storage.Files.UsersDir == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
