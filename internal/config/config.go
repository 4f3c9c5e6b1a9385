// Package config provides YAML-based game configuration loading and
// difficulty presets for the asteroids arcade.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/asteroids-arcade/internal/core"
)

// AsteroidsConfig contains all tuning for the asteroids simulation.
type AsteroidsConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Player   PlayerConfig   `yaml:"player"`
	Asteroid AsteroidConfig `yaml:"asteroid"`
	Level    LevelConfig    `yaml:"level"`
}

// ArenaConfig defines the toroidal play space.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Center returns the middle of the arena.
func (a ArenaConfig) Center() core.Vec2 {
	return core.V(a.Width/2, a.Height/2)
}

// PlayerConfig defines ship handling.
type PlayerConfig struct {
	Speed           float64    `yaml:"speed"`            // Force added per thrust tick
	MaxSpeed        float64    `yaml:"max_speed"`        // Per-axis force clamp
	RotationalSpeed float64    `yaml:"rotational_speed"` // Radians per second
	Drag            float64    `yaml:"drag"`             // Force multiplier per tick without thrust
	Color           core.Color `yaml:"color"`
}

// AsteroidConfig defines rock generation and drift.
type AsteroidConfig struct {
	MinRadius float64    `yaml:"min_radius"` // Before class scaling
	MaxRadius float64    `yaml:"max_radius"` // Before class scaling
	Speed     float64    `yaml:"speed"`      // Drift speed of a medium rock
	Color     core.Color `yaml:"color"`
}

// LevelConfig defines level progression and the level announcement.
type LevelConfig struct {
	Difficulty         float64    `yaml:"difficulty"`           // Rocks per level
	Closest            float64    `yaml:"closest"`              // Minimum spawn distance from center
	PauseSeconds       float64    `yaml:"pause_seconds"`        // Freeze after a level-up
	ManualPauseSeconds float64    `yaml:"manual_pause_seconds"` // Freeze requested by the player
	FontSize           int        `yaml:"font_size"`
	TextColor          core.Color `yaml:"text_color"`
}

// Validate reports configuration values the simulation cannot run with.
func (c AsteroidsConfig) Validate() error {
	var errs []error

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena must be positive, got %gx%g", c.Arena.Width, c.Arena.Height))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed must be positive, got %g", c.Player.Speed))
	}
	if c.Player.RotationalSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.rotational_speed must be positive, got %g", c.Player.RotationalSpeed))
	}
	if c.Player.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.max_speed must be positive, got %g", c.Player.MaxSpeed))
	}
	if c.Player.Drag <= 0 || c.Player.Drag > 1 {
		errs = append(errs, fmt.Errorf("player.drag must be in (0, 1], got %g", c.Player.Drag))
	}
	if c.Asteroid.MinRadius <= 0 || c.Asteroid.MinRadius >= c.Asteroid.MaxRadius {
		errs = append(errs, fmt.Errorf("asteroid radius range [%g, %g) is empty", c.Asteroid.MinRadius, c.Asteroid.MaxRadius))
	}
	if c.Asteroid.Speed <= 0 {
		errs = append(errs, fmt.Errorf("asteroid.speed must be positive, got %g", c.Asteroid.Speed))
	}
	if c.Level.Difficulty < 0 {
		errs = append(errs, fmt.Errorf("level.difficulty must not be negative, got %g", c.Level.Difficulty))
	}
	if c.Level.Closest <= 0 {
		errs = append(errs, fmt.Errorf("level.closest must be positive, got %g", c.Level.Closest))
	}
	if c.Level.PauseSeconds < 0 || c.Level.ManualPauseSeconds < 0 {
		errs = append(errs, errors.New("level pause durations must not be negative"))
	}
	if c.Level.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("level.font_size must be positive, got %d", c.Level.FontSize))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// DifficultyForPreset returns the rocks-per-level factor for a preset.
// Unknown presets report false.
func DifficultyForPreset(preset DifficultyPreset) (float64, bool) {
	switch preset {
	case DifficultyEasy:
		return 1.5, true
	case DifficultyNormal:
		return 2.5, true
	case DifficultyHard:
		return 4.0, true
	default:
		return 0, false
	}
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
// An empty preset keeps the configured difficulty.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	d, ok := DifficultyForPreset(preset)
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
	cfg.Level.Difficulty = d
	return nil
}
