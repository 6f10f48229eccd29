// Package config loads credentials and generation tuning from the
// environment and an optional YAML file. The API key is read once at
// startup; its absence is not an error here — it surfaces as a
// configuration failure when generation is attempted.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "github.com/musekit/muse/internal/errors"
)

// DefaultModel is the model identifier used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds everything the generation client and servers need.
type Config struct {
	APIKey      string  `yaml:"-"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	TopK        int     `yaml:"top_k"`
	TopP        float64 `yaml:"top_p"`
	Port        int     `yaml:"port"`
}

// Load builds the configuration: defaults, then the optional YAML file,
// then environment variables (a .env file in the working directory is
// honored). Environment wins over file values.
func Load() (*Config, error) {
	// Best-effort: a missing .env file is the normal case.
	_ = godotenv.Load()

	cfg := &Config{
		Model: DefaultModel,
		Port:  8080,
	}

	path := configFilePath()
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if model := os.Getenv("MUSE_MODEL"); model != "" {
		cfg.Model = model
	}

	return cfg, nil
}

// configFilePath returns the config file to read, or "" when none exists.
// MUSE_CONFIG overrides the default location.
func configFilePath() string {
	if path := os.Getenv("MUSE_CONFIG"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".config", "muse", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.ConfigurationError("failed to read config file " + path).WithDetails(err.Error())
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return apperrors.ConfigurationError("failed to parse config file " + path).WithDetails(err.Error())
	}
	return nil
}
