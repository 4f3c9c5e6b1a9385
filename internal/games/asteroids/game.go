package asteroids

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/asteroids-arcade/internal/config"
	"github.com/vovakirdan/asteroids-arcade/internal/core"
)

// ID identifies the game in run history.
const ID = "asteroids"

// Game owns the ship, the rocks and the level state machine.
//
// The game is Running or Paused. LevelUp and Pause enter Paused; Update leaves
// it once the clock passed to Update has advanced by the pause duration.
type Game struct {
	cfg       config.AsteroidsConfig
	rng       Rand
	logger    *log.Logger
	player    *Player
	asteroids []*Asteroid
	level     int

	// Pause timer, all in seconds of the driver's clock.
	paused        bool
	pauseLatched  bool    // pauseStart holds the first paused tick
	pauseStart    float64 // 0 while not paused
	pauseDuration float64

	showLevel bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for level and pause transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game at level 0 with the ship in the arena center and no rocks.
// Drivers call LevelUp before the first frame.
func New(cfg config.AsteroidsConfig, r Rand, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		rng:    r,
		logger: log.New(io.Discard),
		player: SpawnPlayer(cfg.Arena.Center(), cfg.Player, cfg.Arena),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LevelUp advances to the next level: the ship returns to the center, a new
// ring of rocks replaces the old ones and the level announcement shows during
// a pause.
func (g *Game) LevelUp() {
	g.level++
	center := g.cfg.Arena.Center()
	g.player.Shape().SetPosition(center)

	count := int(math.Round(float64(g.level) * g.cfg.Level.Difficulty))
	g.asteroids = spawnRing(count, center, g.cfg.Level.Closest, g.rng,
		Asteroids(g.rng, g.cfg.Asteroid, g.cfg.Arena))

	g.enterPause(g.cfg.Level.PauseSeconds)
	g.showLevel = true

	g.logger.Debug("level up", "level", g.level, "asteroids", count)
}

// spawnRing places count actors at evenly spaced angles around center, each
// at a random distance in [closest, 2*closest).
func spawnRing[E Entity](count int, center core.Vec2, closest float64, r Rand, spawn SpawnFunc[E]) []E {
	if count <= 0 {
		return nil
	}
	out := make([]E, 0, count)
	increment := 2 * math.Pi / float64(count)
	for i := range count {
		radius := uniform(r, closest, 2*closest)
		out = append(out, spawn(center.Add(core.FromAngle(float64(i)*increment, radius))))
	}
	return out
}

// Pause freezes the simulation for duration seconds without touching the
// level or the announcement.
func (g *Game) Pause(duration float64) {
	g.enterPause(duration)
	g.logger.Debug("paused", "seconds", duration)
}

// enterPause replaces the duration of a pause already in progress and keeps
// its latched start.
func (g *Game) enterPause(duration float64) {
	g.pauseDuration = duration
	if g.paused {
		return
	}
	g.paused = true
	g.pauseLatched = false
	g.pauseStart = 0
}

// Update advances one frame. now is the driver's monotonic clock and dt the
// length of the previous frame, both in seconds.
func (g *Game) Update(in core.InputFrame, now, dt float64) {
	if g.paused {
		if !g.pauseLatched {
			g.pauseStart = now
			g.pauseLatched = true
		}
		if now-g.pauseStart >= g.pauseDuration {
			g.paused = false
			g.showLevel = false
			g.pauseLatched = false
			g.pauseStart = 0
			g.logger.Debug("resumed", "level", g.level)
		}
		return
	}

	if in.Has(core.ActionRotateLeft) {
		g.player.RotateLeft(dt)
	}
	if in.Has(core.ActionRotateRight) {
		g.player.RotateRight(dt)
	}
	if in.Has(core.ActionThrust) {
		g.player.Thrust()
	} else {
		g.player.Drag()
	}

	g.player.Update(dt)
	for _, a := range g.asteroids {
		a.Update(dt)
	}
}

// Render draws the level announcement, the ship and every rock.
func (g *Game) Render(c core.Canvas) {
	if g.showLevel {
		text := fmt.Sprintf("Level: %d", g.level)
		size := g.cfg.Level.FontSize
		// Text width is approximated as a quarter of the font size per glyph
		// on each side of the center.
		half := len(text) * size / 4
		center := g.cfg.Arena.Center()
		pos := core.V(math.Trunc(center.X)-float64(half), math.Trunc(center.Y)+float64(size))
		c.DrawText(text, pos, float64(size), g.cfg.Level.TextColor)
	}

	g.player.Render(c)
	for _, a := range g.asteroids {
		a.Render(c)
	}
}

func (g *Game) Level() int                     { return g.level }
func (g *Game) Paused() bool                   { return g.paused }
func (g *Game) ShowLevel() bool                { return g.showLevel }
func (g *Game) PauseDuration() float64         { return g.pauseDuration }
func (g *Game) Player() *Player                { return g.player }
func (g *Game) Asteroids() []*Asteroid         { return g.asteroids }
func (g *Game) Config() config.AsteroidsConfig { return g.cfg }

// State summarizes the game for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Level:     g.level,
		Paused:    g.paused,
		ShowLevel: g.showLevel,
		Asteroids: len(g.asteroids),
	}
}
