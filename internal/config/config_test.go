package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Grid.EntitySize <= 0 {
		t.Errorf("EntitySize = %d, want positive", cfg.Grid.EntitySize)
	}
	if cfg.Timing.FPS <= 0 {
		t.Errorf("FPS = %d, want positive", cfg.Timing.FPS)
	}
	if cfg.Colors.Snake == "" {
		t.Error("snake color should have a default")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("grid:\n  entity_size: 20\ntiming:\n  fps: 15\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Grid.EntitySize != 20 {
		t.Errorf("EntitySize = %d, want 20", cfg.Grid.EntitySize)
	}
	if cfg.Timing.FPS != 15 {
		t.Errorf("FPS = %d, want 15", cfg.Timing.FPS)
	}
	// Unset fields fall back to defaults
	if cfg.Colors.Food != Default().Colors.Food {
		t.Errorf("Food color = %q, want default %q", cfg.Colors.Food, Default().Colors.Food)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing custom config path should be an error")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("malformed custom config should be an error")
	}
}
