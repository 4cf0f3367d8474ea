// Package config provides YAML-based game configuration loading and
// difficulty management for grido.
package config

import "time"

// GridoConfig contains all configuration for the grido game.
type GridoConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Timers     TimersConfig     `yaml:"timers"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the playfield size in tiles, border included.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimersConfig defines the game clocks in milliseconds.
type TimersConfig struct {
	DropMS       int `yaml:"drop_ms"`       // Automatic drop after this long
	MultiplierMS int `yaml:"multiplier_ms"` // Multiplier steps towards x1 after this long
	DropGraceMS  int `yaml:"drop_grace_ms"` // Manual drops ignored this soon after a drop
	ParticleMS   int `yaml:"particle_ms"`   // Lifetime of floating score text
}

// Drop returns the automatic drop interval.
func (t TimersConfig) Drop() time.Duration {
	return time.Duration(t.DropMS) * time.Millisecond
}

// Multiplier returns the multiplier decay interval.
func (t TimersConfig) Multiplier() time.Duration {
	return time.Duration(t.MultiplierMS) * time.Millisecond
}

// DropGrace returns the minimum time between two manual drops.
func (t TimersConfig) DropGrace() time.Duration {
	return time.Duration(t.DropGraceMS) * time.Millisecond
}

// Particle returns the lifetime of floating score text.
func (t TimersConfig) Particle() time.Duration {
	return time.Duration(t.ParticleMS) * time.Millisecond
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "drops", or "none"
	MaxAt int    `yaml:"max_at"` // Score/drops at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra drop speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
