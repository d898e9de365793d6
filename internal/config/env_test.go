package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("APP_SESSION_TIMEOUT", "12h")
	t.Setenv("APP_PENALTY_THRESHOLD", "5")
	t.Setenv("STORAGE_FILES_MOVIES_DIR", "/tmp/movies")
	t.Setenv("STORAGE_FILES_USERS_DIR", "/tmp/users")
	t.Setenv("SERVER_ADDRESS", "localhost:9090")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, 12*time.Hour, cfg.App.SessionTimeout)
	assert.Equal(t, 5, cfg.App.PenaltyThreshold)
	assert.Equal(t, "/tmp/movies", cfg.Storage.Files.MoviesDir)
	assert.Equal(t, "/tmp/users", cfg.Storage.Files.UsersDir)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_SESSION_TIMEOUT", "not-a-duration")

	var cfg StructuredConfig
	require.Error(t, parseEnv(&cfg))
}

func TestValidate_Defaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultSessionTimeout, cfg.App.SessionTimeout)
	assert.Equal(t, DefaultPenaltyThreshold, cfg.App.PenaltyThreshold)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

func TestValidate_RejectsZeroSessionTimeout(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{PenaltyThreshold: 3},
		Storage: Storage{Files: Files{MoviesDir: "m", UsersDir: "u"}},
	}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidSessionTimeout)
}

func TestValidate_RejectsZeroPenaltyThreshold(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{SessionTimeout: time.Hour},
		Storage: Storage{Files: Files{MoviesDir: "m", UsersDir: "u"}},
	}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidPenaltyThreshold)
}

func TestValidate_RejectsMissingStorageDirs(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{SessionTimeout: time.Hour, PenaltyThreshold: 3},
	}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}
