package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/asteroids-arcade/internal/core"
	"github.com/vovakirdan/asteroids-arcade/internal/platform/tui"
	"github.com/vovakirdan/asteroids-arcade/internal/storage"
)

var flagStartLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  A/Left     - Rotate left
  D/Right    - Rotate right
  W/Up       - Thrust
  N          - Next level
  P          - Pause
  Ctrl+S     - Save a screenshot to ~/.arcade/screenshots
  Ctrl+Y     - Copy the frame to the clipboard
  Q/Ctrl+C   - Quit

Difficulty options (rocks added per level):
  easy   - 1.5
  normal - 2.5
  hard   - 4.0

Examples:
  asteroids play
  asteroids play --difficulty easy
  asteroids play --start-level 5 --seed 42
  asteroids play --config ./my-asteroids.yaml --log ./asteroids.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "start-level", 1, "Level to start at")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, seed := newGame(gameCfg, logger)
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	err = tui.Run(game, store, cfg, flagStartLevel,
		tui.WithPlayer(playerName()),
		tui.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
