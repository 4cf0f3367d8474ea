package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg GridoConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultGridoConfig() {
		t.Errorf("embedded defaults %+v differ from %+v", cfg, DefaultGridoConfig())
	}
}

func TestLoadGridoCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grido.yaml")
	data := []byte("playfield:\n  width: 12\n  height: 10\ntimers:\n  drop_ms: 9000\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGrido(path)
	if err != nil {
		t.Fatalf("LoadGrido: %v", err)
	}
	if cfg.Playfield.Width != 12 || cfg.Playfield.Height != 10 {
		t.Errorf("playfield = %+v, want 12x10", cfg.Playfield)
	}
	if cfg.Timers.Drop() != 9*time.Second {
		t.Errorf("drop = %v, want 9s", cfg.Timers.Drop())
	}
	// Unset values keep their defaults
	if cfg.Timers.Multiplier() != time.Minute {
		t.Errorf("multiplier = %v, want 1m", cfg.Timers.Multiplier())
	}
}

func TestLoadGridoErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadGrido(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("playfield: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGrido(bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	tiny := filepath.Join(dir, "tiny.yaml")
	if err := os.WriteFile(tiny, []byte("playfield:\n  width: 3\n  height: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGrido(tiny); err == nil {
		t.Error("tiny playfield should be rejected")
	}
}

func TestApplyGridoPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		initial float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultGridoConfig()
			ApplyGridoPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.initial {
				t.Errorf("initial level = %v, want %v", cfg.Difficulty.InitialLevel, tt.initial)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should parse to empty")
	}
}
