package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// minPlayfield is the smallest playfield that leaves room for a piece.
const minPlayfield = 5

// LoadGrido loads grido configuration.
// Search order: customPath -> ~/.grido/configs/grido.yaml -> ./configs/grido.yaml -> embedded default
// Values missing from a file keep their defaults.
func LoadGrido(customPath string) (GridoConfig, error) {
	cfg := DefaultGridoConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("grido.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultGridoConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "grido.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultGridoConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGridoYAML, &cfg); err != nil {
		return DefaultGridoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate reports values the game cannot run with.
func (c GridoConfig) Validate() error {
	if c.Playfield.Width < minPlayfield || c.Playfield.Height < minPlayfield {
		return fmt.Errorf("config: playfield %dx%d is smaller than %dx%d",
			c.Playfield.Width, c.Playfield.Height, minPlayfield, minPlayfield)
	}
	if c.Timers.DropMS <= 0 || c.Timers.MultiplierMS <= 0 {
		return fmt.Errorf("config: drop_ms and multiplier_ms must be positive")
	}
	if c.Timers.DropGraceMS < 0 || c.Timers.ParticleMS < 0 {
		return fmt.Errorf("config: drop_grace_ms and particle_ms must not be negative")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".grido", "configs", filename)
}

// ApplyGridoPreset modifies the config based on a difficulty preset.
func ApplyGridoPreset(cfg *GridoConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
