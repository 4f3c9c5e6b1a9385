// asteroids is a vector-style asteroids arcade for the terminal, a desktop
// window or SSH.
//
// Usage:
//
//	asteroids play           - Play in the terminal
//	asteroids window         - Play in a desktop window
//	asteroids serve          - Start SSH server for remote play
//	asteroids records        - Show or clear the run history
//	asteroids config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/runs.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--player <name>       - Name runs are saved under
//	--log <path>          - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/asteroids-arcade/internal/config"
	"github.com/vovakirdan/asteroids-arcade/internal/games/asteroids"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - fly a ship through drifting rocks",
	Long: `Asteroids is a vector-style arcade game. Steer a ship around a
wrap-around arena while rings of rocks drift past; every level adds more.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  records  - View the run history
  config   - Print the effective configuration

Examples:
  asteroids play
  asteroids play --difficulty hard --start-level 3
  asteroids window --scale 0.75
  asteroids serve --ssh :2222
  asteroids records --plain`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name for run history (default: current user)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the config file and applies the difficulty preset.
func loadGameConfig() (config.AsteroidsConfig, error) {
	cfg, err := config.LoadAsteroids(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyAsteroidsPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger returns a logger writing to --log, or a silent one. The returned
// function closes the log file.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// newGame builds a game seeded from --seed, or from the clock when it is 0.
func newGame(cfg config.AsteroidsConfig, logger *log.Logger) (*asteroids.Game, int64) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("new game", "seed", seed, "difficulty", cfg.Level.Difficulty)
	return asteroids.New(cfg, rand.New(rand.NewSource(seed)), asteroids.WithLogger(logger)), seed
}

// playerName returns --player, the OS user, or "player".
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
