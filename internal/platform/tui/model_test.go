package tui

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/asteroids-arcade/internal/config"
	"github.com/vovakirdan/asteroids-arcade/internal/core"
	"github.com/vovakirdan/asteroids-arcade/internal/games/asteroids"
	"github.com/vovakirdan/asteroids-arcade/internal/storage"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func newTestModel(t *testing.T, store *storage.Store, startLevel int, opts ...ModelOption) (Model, *asteroids.Game, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Unix(1_700_000_000, 0)}
	game := asteroids.New(config.DefaultAsteroidsConfig(), rand.New(rand.NewSource(1)))
	cfg := core.RuntimeConfig{ScreenW: 200, ScreenH: 40, TickRate: 60}
	opts = append([]ModelOption{WithClock(clock.Now)}, opts...)
	return NewModel(game, store, cfg, startLevel, opts...), game, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

// finishPause ticks through the level-up pause and returns the model.
func finishPause(t *testing.T, m Model, clock *testClock) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg(clock.now))
	m, _ = update(t, m, TickMsg(clock.advance(2100*time.Millisecond)))
	return m
}

func TestNewModelStartsFirstLevel(t *testing.T) {
	_, game, _ := newTestModel(t, nil, 0)

	if game.Level() != 1 {
		t.Errorf("Level() = %d, expected 1", game.Level())
	}
	if !game.Paused() || !game.ShowLevel() {
		t.Error("first level should start with the announcement pause")
	}
}

func TestNewModelStartLevel(t *testing.T) {
	_, game, _ := newTestModel(t, nil, 3)

	if game.Level() != 3 {
		t.Errorf("Level() = %d, expected 3", game.Level())
	}
	if len(game.Asteroids()) != 8 {
		t.Errorf("asteroid count = %d, expected 8", len(game.Asteroids()))
	}
}

func TestModelTickEndsPause(t *testing.T) {
	m, game, clock := newTestModel(t, nil, 1)

	m, cmd := update(t, m, TickMsg(clock.now))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if !game.Paused() {
		t.Fatal("game should be paused right after the first tick")
	}

	finishPause(t, m, clock)
	if game.Paused() || game.ShowLevel() {
		t.Error("pause should end after 2.1s of ticks")
	}
}

func TestModelHeldThrust(t *testing.T) {
	m, game, clock := newTestModel(t, nil, 1)
	m = finishPause(t, m, clock)

	m, _ = update(t, m, runeKey("w"))
	m, _ = update(t, m, TickMsg(clock.advance(16*time.Millisecond)))

	force := game.Player().Force()
	if force.Y >= 0 {
		t.Errorf("force = %v, expected upward thrust", force)
	}

	// Without repeats the key is released and drag takes over.
	m, _ = update(t, m, TickMsg(clock.advance(time.Second)))
	after := game.Player().Force()
	if after != force.Scale(0.98) {
		t.Errorf("force = %v, expected drag to %v", after, force.Scale(0.98))
	}
}

func TestModelTurnKeysReplaceEachOther(t *testing.T) {
	m, game, clock := newTestModel(t, nil, 1)
	m = finishPause(t, m, clock)

	m, _ = update(t, m, runeKey("d"))
	m, _ = update(t, m, TickMsg(clock.advance(16*time.Millisecond)))
	right := game.Player().Shape().Rotation()
	if right <= 0 {
		t.Fatalf("rotation = %f, expected a clockwise turn", right)
	}

	// Switching direction inside the hold window must not cancel the turn.
	m, _ = update(t, m, runeKey("a"))
	update(t, m, TickMsg(clock.advance(16*time.Millisecond)))
	if got := game.Player().Shape().Rotation(); got >= right {
		t.Errorf("rotation = %f, expected less than %f after turning left", got, right)
	}
}

func TestModelLevelUpKey(t *testing.T) {
	m, game, clock := newTestModel(t, nil, 1)
	m = finishPause(t, m, clock)

	update(t, m, runeKey("n"))
	if game.Level() != 2 {
		t.Errorf("Level() = %d, expected 2", game.Level())
	}
	if !game.Paused() || !game.ShowLevel() {
		t.Error("level-up key should pause with the announcement")
	}
}

func TestModelPauseKey(t *testing.T) {
	m, game, clock := newTestModel(t, nil, 1)
	m = finishPause(t, m, clock)

	update(t, m, runeKey("p"))
	if !game.Paused() {
		t.Fatal("pause key should pause")
	}
	if game.ShowLevel() {
		t.Error("manual pause should not show the announcement")
	}
	if game.PauseDuration() != game.Config().Level.ManualPauseSeconds {
		t.Errorf("PauseDuration() = %f, expected %f", game.PauseDuration(), game.Config().Level.ManualPauseSeconds)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, game, _ := newTestModel(t, nil, 2)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if game.Level() != 2 {
		t.Errorf("resize changed level to %d", game.Level())
	}
	if m.screen.Width() != 60 || m.screen.Height() != 20-footerHeight {
		t.Errorf("screen = %dx%d, expected 60x%d", m.screen.Width(), m.screen.Height(), 20-footerHeight)
	}
}

func TestModelView(t *testing.T) {
	m, _, _ := newTestModel(t, nil, 1)

	view := m.View()
	if !strings.Contains(view, "Level 1") {
		t.Error("view should show the level in the footer")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should show the help footer")
	}
	if !strings.ContainsRune(m.screen.String(), core.LineRune) {
		t.Error("view should draw outlines")
	}
}

func TestModelViewAnnouncement(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Level.Difficulty = 0 // keep rocks off the text
	game := asteroids.New(cfg, rand.New(rand.NewSource(1)))
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 200, ScreenH: 41, TickRate: 60}, 1)

	m.View()
	// Arena (240, 480) on a 200x40 screen.
	if row := m.screen.Row(24); !strings.Contains(row, "Level: 1") {
		t.Errorf("row 24 = %q, expected the level announcement", row)
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now().Add(3*time.Second)))
	m.View()
	if strings.Contains(m.screen.String(), "Level:") {
		t.Error("announcement should disappear after the pause")
	}
}

func TestModelQuitSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, _, clock := newTestModel(t, store, 2, WithPlayer("ada"))
	m = finishPause(t, m, clock)

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	// A second quit must not save again.
	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	runs, err := store.RunsByPlayer("ada", 10)
	if err != nil {
		t.Fatalf("RunsByPlayer() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	if runs[0].Level != 2 {
		t.Errorf("run level = %d, expected 2", runs[0].Level)
	}
	if runs[0].Seconds < 2.0 || runs[0].Seconds > 2.2 {
		t.Errorf("run seconds = %f, expected about 2.1", runs[0].Seconds)
	}
}

func TestFinishRunSavesWithoutQuitKey(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, _, clock := newTestModel(t, store, 1, WithPlayer("lin"))
	m = finishPause(t, m, clock)

	// The program ends on a closed terminal: no quit key reaches the model.
	finishRun(m)
	finishRun(m)
	finishRun(nil)

	runs, err := store.RunsByPlayer("lin", 10)
	if err != nil {
		t.Fatalf("RunsByPlayer() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	if runs[0].Level != 1 {
		t.Errorf("run level = %d, expected 1", runs[0].Level)
	}
}
