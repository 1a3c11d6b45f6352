package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	if cfg.Data.Source != "features.json" {
		t.Errorf("Data.Source = %q, expected features.json", cfg.Data.Source)
	}
	if cfg.Auth.Username != "admin" || cfg.Auth.Password != "pompeii2025" {
		t.Errorf("unexpected default credentials %q/%q", cfg.Auth.Username, cfg.Auth.Password)
	}
	if cfg.Photos.BaseURL != "" {
		t.Errorf("Photos.BaseURL = %q, expected empty", cfg.Photos.BaseURL)
	}
	if cfg.Dedupe.Key != "FEATURE_ID" {
		t.Errorf("Dedupe.Key = %q, expected FEATURE_ID", cfg.Dedupe.Key)
	}

	// Theme colors should be set (either from defaults or config file)
	if len(cfg.UI.Theme.ActiveBorderColor) == 0 {
		t.Error("ActiveBorderColor should have a value")
	}

	if len(cfg.UI.Theme.InactiveBorderColor) == 0 {
		t.Error("InactiveBorderColor should have a value")
	}

	if _, err := os.Stat(filepath.Join(os.Getenv("HOME"), ".lazysurvey")); err != nil {
		t.Errorf("config directory not created: %v", err)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("LAZYSURVEY_DATA_SOURCE", "https://example.org/features.json")
	t.Setenv("LAZYSURVEY_AUTH_USERNAME", "researcher")
	t.Setenv("VITE_PHOTO_LINK", "https://cdn.example.org/")
	t.Setenv("VITE_AUTH_PASSWORD", "secret")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Data.Source != "https://example.org/features.json" {
		t.Errorf("Data.Source = %q", cfg.Data.Source)
	}
	if cfg.Auth.Username != "researcher" {
		t.Errorf("Auth.Username = %q", cfg.Auth.Username)
	}
	if cfg.Auth.Password != "secret" {
		t.Errorf("Auth.Password = %q", cfg.Auth.Password)
	}
	if cfg.Photos.BaseURL != "https://cdn.example.org/" {
		t.Errorf("Photos.BaseURL = %q", cfg.Photos.BaseURL)
	}
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
data:
  source: survey.json
photos:
  baseURL: https://photos.example.org/
ui:
  theme:
    activeBorderColor: ["red", "bold"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Data.Source != "survey.json" {
		t.Errorf("Data.Source = %q", cfg.Data.Source)
	}
	if cfg.Photos.BaseURL != "https://photos.example.org/" {
		t.Errorf("Photos.BaseURL = %q", cfg.Photos.BaseURL)
	}
	if len(cfg.UI.Theme.ActiveBorderColor) != 2 {
		t.Error("ActiveBorderColor should support multiple values")
	}
	if cfg.Auth.Username != "admin" {
		t.Errorf("unset keys should keep defaults, got %q", cfg.Auth.Username)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}
