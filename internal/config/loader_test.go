package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("embedded YAML diverges from DefaultPlatformerConfig:\n%+v\n%+v", cfg, DefaultPlatformerConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.8\noverlay:\n  checkpoint_dismiss: 3s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("gravity = %v, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Overlay.CheckpointDismiss != 3*time.Second {
		t.Errorf("checkpoint_dismiss = %v, expected 3s", cfg.Overlay.CheckpointDismiss)
	}
	if cfg.Physics.WalkSpeed != 5 {
		t.Errorf("unset keys should keep defaults, walk_speed = %v", cfg.Physics.WalkSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected validation error for negative gravity")
	}
}

func TestValidateThresholdOrder(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	cfg.Camera.ThresholdLeft = 500
	cfg.Camera.ThresholdRight = 400
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when left threshold exceeds right threshold")
	}
}
