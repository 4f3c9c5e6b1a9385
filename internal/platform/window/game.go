package window

import (
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/asteroids-arcade/internal/core"
	"github.com/vovakirdan/asteroids-arcade/internal/games/asteroids"
	"github.com/vovakirdan/asteroids-arcade/internal/storage"
)

// Config describes the window.
type Config struct {
	Title      string
	Scale      float64 // Window size relative to the arena
	TickRate   int
	StartLevel int
	Player     string
}

// DefaultConfig returns a 1:1 window at 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		Title:      "Asteroids",
		Scale:      1,
		TickRate:   60,
		StartLevel: 1,
		Player:     "player",
	}
}

// Game adapts an asteroids.Game to ebiten.Game.
type Game struct {
	game   *asteroids.Game
	font   *text.GoTextFaceSource
	store  *storage.Store
	logger *log.Logger
	cfg    Config
	start  time.Time
	last   time.Time
	saved  bool
}

// held maps each held action to the keys that trigger it.
var held = map[core.Action][]ebiten.Key{
	core.ActionRotateLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRotateRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionThrust:      {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionFire:        {ebiten.KeySpace},
}

// New prepares the window game and advances it to the start level.
// store and logger may be nil.
func New(game *asteroids.Game, store *storage.Store, logger *log.Logger, cfg Config) (*Game, error) {
	font, err := LoadFont()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultConfig().TickRate
	}

	for game.Level() < max(cfg.StartLevel, 1) {
		game.LevelUp()
	}

	now := time.Now()
	return &Game{
		game:   game,
		font:   font,
		store:  store,
		logger: logger,
		cfg:    cfg,
		start:  now,
		last:   now,
	}, nil
}

// Update polls the keyboard and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.game.LevelUp()
		g.logger.Info("level up", "level", g.game.Level())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.game.Pause(g.game.Config().Level.ManualPauseSeconds)
	}

	frame := core.NewInputFrame()
	for action, keys := range held {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				frame.Set(action)
				break
			}
		}
	}

	t := time.Now()
	now := t.Sub(g.start).Seconds()
	dt := t.Sub(g.last).Seconds()
	g.last = t

	g.game.Update(frame, now, dt)
	return nil
}

// Draw clears to black and renders the game in arena coordinates.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.game.Render(NewCanvas(screen, g.font))
}

// Layout keeps the logical screen at the arena size; Ebitengine scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	arena := g.game.Config().Arena
	return int(arena.Width), int(arena.Height)
}

// saveRun records the run once, best-effort.
func (g *Game) saveRun() {
	if g.saved || g.store == nil {
		return
	}
	g.saved = true

	run := storage.Run{
		Player:  g.cfg.Player,
		Level:   g.game.Level(),
		Seconds: g.last.Sub(g.start).Seconds(),
	}
	if _, err := g.store.SaveRun(run); err != nil {
		g.logger.Warn("could not save run", "error", err)
		return
	}
	g.logger.Info("run saved", "player", run.Player, "level", run.Level, "seconds", run.Seconds)
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(g *Game) error {
	arena := g.game.Config().Arena
	scale := g.cfg.Scale
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(int(arena.Width*scale), int(arena.Height*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.cfg.TickRate)

	err := ebiten.RunGame(g)
	g.saveRun()
	return err
}

var _ ebiten.Game = (*Game)(nil)
