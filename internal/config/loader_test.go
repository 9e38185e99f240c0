package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadPinballCustomPath(t *testing.T) {
	cfg := DefaultPinballConfig()
	cfg.Physics.Gravity = 0.33
	cfg.Scoring.Balls = 2

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "table.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, err := LoadPinball(path)
	if err != nil {
		t.Fatalf("LoadPinball failed: %v", err)
	}
	if loaded.Physics.Gravity != 0.33 {
		t.Errorf("gravity = %v, expected 0.33", loaded.Physics.Gravity)
	}
	if loaded.Scoring.Balls != 2 {
		t.Errorf("balls = %d, expected 2", loaded.Scoring.Balls)
	}
}

func TestLoadPinballMissingCustomPathFails(t *testing.T) {
	_, err := LoadPinball(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("missing custom path must be an error, not a silent fallback")
	}
}

func TestLoadPinballBadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("{{not yaml"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := LoadPinball(path); err == nil {
		t.Error("unparseable custom config must be an error")
	}
}

func TestLoadPinballInvalidCustomConfigFails(t *testing.T) {
	cfg := DefaultPinballConfig()
	cfg.Scoring.Balls = 99 // outside 1..3

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := LoadPinball(path); err == nil {
		t.Error("invalid custom config must be an error")
	}
}

func TestLoadPinballDefaultFallback(t *testing.T) {
	// With no custom path, loading must always produce a valid config,
	// whatever configs exist on the host.
	cfg, err := LoadPinball("")
	if err != nil {
		t.Fatalf("LoadPinball(\"\") failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("fallback config invalid: %v", err)
	}
}
