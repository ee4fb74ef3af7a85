// Package config provides runtime configuration for nippou.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"nippou/internal/storage"
)

// Environment variables recognized at startup.
const (
	// EnvData overrides the backing document path.
	EnvData = "NIPPOU_DATA"
	// EnvAPIKey supplies the generation API key when the stored settings
	// have none.
	EnvAPIKey = "OPENAI_API_KEY"
	// EnvBaseURL overrides the generation API endpoint.
	EnvBaseURL = "OPENAI_BASE_URL"
)

// Config holds resolved runtime configuration.
type Config struct {
	// DataPath is the backing document path.
	DataPath string

	// APIKey is the environment-supplied generation key, if any. The
	// stored settings take precedence when both exist.
	APIKey string

	// BaseURL is the generation API endpoint override, if any.
	BaseURL string

	// HTTPTimeout bounds one generation request.
	HTTPTimeout time.Duration
}

// Load resolves configuration from defaults, an optional .env file in the
// working directory, and environment variables. A missing .env is not an
// error.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DataPath:    storage.DefaultPath(),
		HTTPTimeout: 60 * time.Second,
	}

	if p := os.Getenv(EnvData); p != "" {
		cfg.DataPath = expandPath(p)
	}
	cfg.APIKey = os.Getenv(EnvAPIKey)
	cfg.BaseURL = os.Getenv(EnvBaseURL)

	return cfg
}

// expandPath resolves a leading ~ against the home directory.
func expandPath(p string) string {
	if len(p) >= 2 && p[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}
