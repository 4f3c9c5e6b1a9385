package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/asteroids-arcade/internal/games/asteroids"
	"github.com/vovakirdan/asteroids-arcade/internal/platform/window"
	"github.com/vovakirdan/asteroids-arcade/internal/storage"
)

var (
	flagScale            float64
	flagWindowStartLevel int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window and play with vector graphics.

The arena keeps its configured size and is scaled to the window.

Controls:
  A/Left, D/Right - Rotate
  W/Up            - Thrust
  N               - Next level
  P               - Pause
  Esc             - Quit

Examples:
  asteroids window
  asteroids window --scale 0.75 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the arena")
	windowCmd.Flags().IntVar(&flagWindowStartLevel, "start-level", 1, "Level to start at")
}

func runWindow(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	game, _ := newGame(gameCfg, logger)
	winCfg := window.DefaultConfig()
	winCfg.Scale = flagScale
	winCfg.TickRate = flagFPS
	winCfg.StartLevel = flagWindowStartLevel
	winCfg.Player = playerName()

	if err := runWindowGame(game, store, logger, winCfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func runWindowGame(game *asteroids.Game, store *storage.Store, logger *log.Logger, cfg window.Config) error {
	w, err := window.New(game, store, logger, cfg)
	if err != nil {
		return err
	}
	return window.Run(w)
}
