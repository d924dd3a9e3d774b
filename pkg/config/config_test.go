package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestConfigLoadSave(t *testing.T) {
	// Create a temporary directory to act as the user's home directory
	tempDir := t.TempDir()

	// Override the home directory environment variable for testing
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected default config to be returned, got nil")
	}
	if cfg.BaseURL != "http://www.lp.edu.ua/students_schedule" {
		t.Errorf("expected default base url, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout of 30s, got %s", cfg.Timeout)
	}

	// 2. Modify and Save the config
	cfg.Output = "out"
	cfg.Multi = true
	cfg.Pretty = true
	cfg.RequestInterval = 500 * time.Millisecond
	cfg.MongoURI = "mongodb://localhost:27017"
	cfg.SavedInstitute = "ІКНІ"
	cfg.SavedGroup = "ПЗ-11"

	err = Save(cfg)
	if err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Verify the file was actually created
	configPath := filepath.Join(tempDir, ".lptimetable.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	// Compare loaded config with saved config
	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigEnvOverride(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	if err := Save(&AppConfig{BaseURL: "http://file.example", Timeout: time.Minute}); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	t.Setenv("LP_TIMEOUT", "5s")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected env to override timeout, got %s", cfg.Timeout)
	}
	if cfg.BaseURL != "http://file.example" {
		t.Errorf("expected base url from file, got %q", cfg.BaseURL)
	}
}

func TestConfigCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("LP_CONFIG", path)

	got, err := Path()
	if err != nil || got != path {
		t.Fatalf("expected %s, got %s (%v)", path, got, err)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	// Write invalid YAML to the config file
	configPath := filepath.Join(tempDir, ".lptimetable.yaml")
	err := os.WriteFile(configPath, []byte("timeout: [not a duration"), 0644)
	if err != nil {
		t.Fatalf("failed to write invalid yaml: %v", err)
	}

	// Attempt to load the invalid YAML
	_, err = Load()
	if err == nil {
		t.Errorf("expected error when loading invalid yaml, got nil")
	}
}

func TestParseSemesterStart(t *testing.T) {
	cfg := &AppConfig{SemesterStart: "2026-09-01"}
	got, err := cfg.ParseSemesterStart()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %s", got)
	}

	if _, err := (&AppConfig{}).ParseSemesterStart(); err == nil {
		t.Errorf("expected error for missing semester start")
	}
	if _, err := (&AppConfig{SemesterStart: "01.09.2026"}).ParseSemesterStart(); err == nil {
		t.Errorf("expected error for malformed semester start")
	}
}
