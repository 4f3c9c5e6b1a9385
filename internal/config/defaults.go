package config

import (
	_ "embed"

	"github.com/vovakirdan/asteroids-arcade/internal/core"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 800,
		},
		Player: PlayerConfig{
			Speed:           5.0,
			MaxSpeed:        300.0,
			RotationalSpeed: 7.5,
			Drag:            0.98,
			Color:           core.ColorWhite,
		},
		Asteroid: AsteroidConfig{
			MinRadius: 20,
			MaxRadius: 80,
			Speed:     100,
			Color:     core.ColorWhite,
		},
		Level: LevelConfig{
			Difficulty:         2.5,
			Closest:            150,
			PauseSeconds:       2.0,
			ManualPauseSeconds: 3.0,
			FontSize:           80,
			TextColor:          core.ColorWhite,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
