package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSessionTimeout indicates a zero or negative session timeout.
	ErrInvalidSessionTimeout = errors.New("invalid session timeout")
	// ErrInvalidPenaltyThreshold indicates a penalty threshold below one;
	// such a threshold would block every login.
	ErrInvalidPenaltyThreshold = errors.New("invalid penalty threshold")
	// ErrInvalidStorageConfigs indicates missing storage directory settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
