package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] wrapper, so config files can hold durations like
// "24h" or "30s".
type StructuredJSONConfig struct {
	App struct {
		SessionTimeout   Duration `json:"session_timeout"`
		PenaltyThreshold int      `json:"penalty_threshold"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Files struct {
			MoviesDir string `json:"movies_dir"`
			UsersDir  string `json:"users_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionTimeout:   time.Duration(jsonCfg.App.SessionTimeout),
			PenaltyThreshold: jsonCfg.App.PenaltyThreshold,
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			Files: Files{
				MoviesDir: jsonCfg.Storage.Files.MoviesDir,
				UsersDir:  jsonCfg.Storage.Files.UsersDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
