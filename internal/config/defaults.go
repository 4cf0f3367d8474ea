package config

import (
	_ "embed"
)

//go:embed defaults/grido.yaml
var defaultGridoYAML []byte

// DefaultGridoConfig returns the default grido configuration.
func DefaultGridoConfig() GridoConfig {
	return GridoConfig{
		Playfield: PlayfieldConfig{
			Width:  16,
			Height: 12,
		},
		Timers: TimersConfig{
			DropMS:       15000,
			MultiplierMS: 60000,
			DropGraceMS:  500,
			ParticleMS:   5000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 6000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGridoYAML
}
