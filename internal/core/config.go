package core

// RuntimeConfig contains configuration passed to drivers at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the simulation for the platform layer.
type GameState struct {
	Level     int  // Levels reached so far
	Paused    bool // Whether the simulation is frozen
	ShowLevel bool // Whether the level announcement is visible
	Asteroids int  // Obstacles currently in the arena
}
