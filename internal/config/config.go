// Package config carries the server settings: defaults, an optional
// JSON file, then environment overrides, in that order.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
)

// Config is the complete server configuration.
type Config struct {
	Address      string `json:"address"`
	LogLevel     string `json:"logLevel"`
	LogPretty    bool   `json:"logPretty"`
	AllowOrigins string `json:"allowOrigins"`

	ProviderDeadlineMs int    `json:"providerDeadlineMs"`
	NegamaxDepth       int    `json:"negamaxDepth"`
	UCIPath            string `json:"uciPath"`
	UCIDepth           int    `json:"uciDepth"`
	UCIDeadlineMs      int    `json:"uciDeadlineMs"`

	TrainingWorkers int `json:"trainingWorkers"`
	TrainingBuffer  int `json:"trainingBuffer"`
}

// Default returns the configuration the server runs with when nothing
// else is supplied.
func Default() Config {
	return Config{
		Address:            ":3000",
		LogLevel:           "info",
		AllowOrigins:       "http://localhost:5173",
		ProviderDeadlineMs: 5000,
		NegamaxDepth:       3,
		UCIDepth:           10,
		UCIDeadlineMs:      10000,
		TrainingWorkers:    2,
		TrainingBuffer:     32,
	}
}

// Load builds the configuration: defaults, then the JSON file when it
// exists, then environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// The file is optional.
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Address = getenv("CHESS_ADDR", c.Address)
	c.LogLevel = getenv("CHESS_LOG_LEVEL", c.LogLevel)
	c.LogPretty = getenb("CHESS_LOG_PRETTY", c.LogPretty)
	c.AllowOrigins = getenv("CHESS_ALLOW_ORIGINS", c.AllowOrigins)
	c.UCIPath = getenv("CHESS_UCI_PATH", c.UCIPath)
}

// ProviderDeadline is how long local providers get per ply.
func (c Config) ProviderDeadline() time.Duration {
	return time.Duration(c.ProviderDeadlineMs) * time.Millisecond
}

// UCIDeadline is how long the external engine gets per ply.
func (c Config) UCIDeadline() time.Duration {
	return time.Duration(c.UCIDeadlineMs) * time.Millisecond
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
