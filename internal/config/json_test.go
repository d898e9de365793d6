package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"session_timeout": "24h",
			"penalty_threshold": 3,
			"version": "1.0.0"
		},
		"storage": {
			"files": {
				"movies_dir": "/srv/data/movies",
				"users_dir": "/srv/data/users"
			}
		},
		"server": {
			"http_address": "0.0.0.0:8080",
			"request_timeout": "30s"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.App.SessionTimeout)
	assert.Equal(t, 3, cfg.App.PenaltyThreshold)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "/srv/data/movies", cfg.Storage.Files.MoviesDir)
	assert.Equal(t, "/srv/data/users", cfg.Storage.Files.UsersDir)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))
}

func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))
}

func TestDuration_UnmarshalGarbage(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, `"2h0m0s"`, string(b))
}
