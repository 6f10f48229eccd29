package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/musekit/muse/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("MUSE_MODEL", "")
	t.Setenv("MUSE_CONFIG", "")
	t.Setenv("HOME", t.TempDir()) // no ~/.config/muse/config.yaml

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("model = %q, want %q", cfg.Model, DefaultModel)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
	if cfg.APIKey != "" {
		t.Errorf("api key = %q, want empty", cfg.APIKey)
	}
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "model: gemini-2.0-pro\ntemperature: 0.9\ntop_k: 40\nport: 9090\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MUSE_CONFIG", path)
	t.Setenv("GEMINI_API_KEY", "secret-key")
	t.Setenv("MUSE_MODEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Model != "gemini-2.0-pro" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.Temperature != 0.9 || cfg.TopK != 40 {
		t.Errorf("tuning = %g/%d", cfg.Temperature, cfg.TopK)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.APIKey != "secret-key" {
		t.Errorf("api key = %q", cfg.APIKey)
	}
}

// Environment overrides win over file values.
func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("model: from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MUSE_CONFIG", path)
	t.Setenv("MUSE_MODEL", "from-env")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Model != "from-env" {
		t.Errorf("model = %q, want from-env", cfg.Model)
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("model: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MUSE_CONFIG", path)
	_, err := Load()
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !apperrors.HasCode(err, apperrors.ErrCodeConfiguration) {
		t.Errorf("error = %v, want a configuration error", err)
	}
}
