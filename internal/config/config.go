// Package config resolves client settings from, in increasing precedence,
// built-in defaults, an optional YAML config file, a .env file, and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config holds client configuration.
type Config struct {
	APIGatewayURL string `yaml:"api_gateway_url"`
	StateDir      string `yaml:"state_dir"`
	CacheDir      string `yaml:"cache_dir"`
}

// Load resolves the configuration. path points at a YAML config file; when
// empty, ~/.tienda/config.yaml is used if it exists.
func Load(path string) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	cfg := &Config{
		APIGatewayURL: "http://localhost:8000",
	}

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	if v := os.Getenv("API_GATEWAY_URL"); v != "" {
		cfg.APIGatewayURL = v
	}
	if v := os.Getenv("TIENDA_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv("TIENDA_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}

	return cfg, nil
}

// loadFile merges values from a YAML config file. A missing default file is
// fine; a missing explicit file is an error.
func (c *Config) loadFile(path string) error {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".tienda", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}
