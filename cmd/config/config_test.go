package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	settings "github.com/gigurra/dotdash/cmd/common/config"
)

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dotdash", "config.json")
	var stdout bytes.Buffer

	if err := runInit(path, false, &stdout); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	cfg, err := settings.ReadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if *cfg != *settings.DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}

	if err := runInit(path, false, &stdout); err == nil {
		t.Error("Expected error for existing file without --force")
	}
	if err := runInit(path, true, &stdout); err != nil {
		t.Errorf("Unexpected error with --force: %v", err)
	}
}

func TestRunSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	var stdout bytes.Buffer

	if err := runSet(path, "wpm", "25", &stdout); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := runSet(path, "theme", "light", &stdout); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	cfg, err := settings.ReadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.WPM != 25 || cfg.Theme != "light" {
		t.Errorf("Values not persisted: %+v", cfg)
	}
}

func TestRunSet_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	var stdout bytes.Buffer

	if err := runSet(path, "frequency", "5", &stdout); err == nil {
		t.Error("Expected validation error")
	}
	if err := runSet(path, "volume", "11", &stdout); err == nil {
		t.Error("Expected unknown key error")
	}
}

func TestRunSet_DoesNotPersistEnv(t *testing.T) {
	t.Setenv("DOTDASH_SOUND", "true")
	path := filepath.Join(t.TempDir(), "config.json")
	var stdout bytes.Buffer

	if err := runSet(path, "wpm", "20", &stdout); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	cfg, err := settings.ReadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Sound {
		t.Error("Environment override should not be written to the file")
	}
}

func TestRunShow(t *testing.T) {
	t.Setenv("DOTDASH_WPM", "33")
	path := filepath.Join(t.TempDir(), "config.json")

	var stdout bytes.Buffer
	if err := runShow(path, false, &stdout); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{"KEY", "wpm", "33", "frequency", "700", path} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}

	stdout.Reset()
	if err := runShow(path, true, &stdout); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), `"wpm": 33`) {
		t.Errorf("Unexpected JSON output:\n%s", stdout.String())
	}
}
