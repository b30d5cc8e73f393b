package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg LaunchConfig
	if err := yaml.Unmarshal(GetDefaultYAML("launch"), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultLaunchConfig() {
		t.Errorf("embedded defaults differ from DefaultLaunchConfig():\n%+v\n%+v", cfg, DefaultLaunchConfig())
	}
	if GetDefaultYAML("snake") != nil {
		t.Error("unknown game should have no default yaml")
	}
}

func TestLoadLaunchCustomPathIsPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launch.yaml")
	data := []byte("scoring:\n  lives: 3\nphysics:\n  gravity: {x: 0, y: 500}\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLaunch(path)
	if err != nil {
		t.Fatalf("LoadLaunch() error = %v", err)
	}
	if cfg.Scoring.Lives != 3 || cfg.Physics.Gravity.Y != 500 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Scoring.WinScore != 1000 || cfg.Physics.MouseMultiplier != 8 {
		t.Errorf("unset values should keep defaults: %+v", cfg)
	}
}

func TestLoadLaunchErrors(t *testing.T) {
	if _, err := LoadLaunch(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("scoring: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadLaunch(path)
	if err == nil {
		t.Error("expected a parse error")
	}
	if cfg != DefaultLaunchConfig() {
		t.Error("a parse error should return defaults")
	}
}

func TestApplyLaunchPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		lives    int
		gravityY float64
	}{
		{DifficultyEasy, 15, 300},
		{DifficultyNormal, 10, 300},
		{DifficultyHard, 5, 360},
		{"", 10, 300},
	}

	for _, tt := range tests {
		cfg := DefaultLaunchConfig()
		ApplyLaunchPreset(&cfg, tt.preset)
		if cfg.Scoring.Lives != tt.lives {
			t.Errorf("%q: lives = %d, want %d", tt.preset, cfg.Scoring.Lives, tt.lives)
		}
		if cfg.Physics.Gravity.Y < tt.gravityY-1e-9 || cfg.Physics.Gravity.Y > tt.gravityY+1e-9 {
			t.Errorf("%q: gravity = %v, want %v", tt.preset, cfg.Physics.Gravity.Y, tt.gravityY)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard || ParsePreset("fixed") != "" {
		t.Error("unexpected preset parsing")
	}
}
