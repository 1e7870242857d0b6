package driver

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	if c.MaxStates != 8 {
		t.Errorf("expected default MaxStates 8, got %d", c.MaxStates)
	}
	if c.LogLevel != "info" {
		t.Errorf("expected default LogLevel info, got %q", c.LogLevel)
	}
}

func TestNewConfigOptions(t *testing.T) {
	c := NewConfig(WithMaxStates(3), WithLogLevel("debug"))
	if c.MaxStates != 3 {
		t.Errorf("expected MaxStates 3, got %d", c.MaxStates)
	}
	if c.LogLevel != "debug" {
		t.Errorf("expected LogLevel debug, got %q", c.LogLevel)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "max_states = 5\nlog_level = \"verbose\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.MaxStates != 5 {
		t.Errorf("expected MaxStates 5, got %d", c.MaxStates)
	}
	if c.LogLevel != "verbose" {
		t.Errorf("expected LogLevel verbose, got %q", c.LogLevel)
	}
}

func TestLoadConfigPartialFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("max_states = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.MaxStates != 2 {
		t.Errorf("expected MaxStates 2, got %d", c.MaxStates)
	}
	if c.LogLevel != "info" {
		t.Errorf("expected LogLevel to fall back to default info, got %q", c.LogLevel)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
