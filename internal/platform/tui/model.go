package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/asteroids-arcade/internal/core"
	"github.com/vovakirdan/asteroids-arcade/internal/games/asteroids"
	"github.com/vovakirdan/asteroids-arcade/internal/storage"
)

// footerHeight is the number of rows reserved below the arena.
const footerHeight = 1

// Model is the Bubble Tea model for a single asteroids session.
type Model struct {
	game    *asteroids.Game
	screen  *core.Screen
	canvas  *core.ScreenCanvas
	store   *storage.Store
	logger  *log.Logger
	config  core.RuntimeConfig
	keys    GameKeyMap
	mapper  *KeyMapper
	held    *HeldKeys
	help    help.Model
	player  string
	clock   func() time.Time
	status  string
	session *runState
}

// runState is shared by every copy of the Model so a run is saved once and
// any copy reports the same elapsed time.
type runState struct {
	start    time.Time
	last     time.Time
	saved    bool
	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPlayer sets the name runs are saved under.
func WithPlayer(name string) ModelOption {
	return func(m *Model) {
		if name != "" {
			m.player = name
		}
	}
}

// WithLogger sets the driver logger.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithHoldWindow sets how long a key press keeps an action held.
func WithHoldWindow(d time.Duration) ModelOption {
	return func(m *Model) {
		m.held = NewHeldKeys(d)
	}
}

// WithClock replaces the wall clock used for key presses and the run timer.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.clock = now
		}
	}
}

// NewModel creates a Bubble Tea model driving the given game. The game is
// advanced to startLevel (at least level 1) before the first frame.
func NewModel(game *asteroids.Game, store *storage.Store, cfg core.RuntimeConfig, startLevel int, opts ...ModelOption) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	keys := DefaultGameKeyMap()
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1))
	arena := game.Config().Arena

	m := Model{
		game:    game,
		screen:  screen,
		canvas:  core.NewScreenCanvas(screen, arena.Width, arena.Height),
		store:   store,
		logger:  log.New(io.Discard),
		config:  cfg,
		keys:    keys,
		mapper:  NewKeyMapper(keys),
		held:    NewHeldKeys(DefaultHoldWindow),
		help:    help.New(),
		player:  "player",
		clock:   time.Now,
		session: &runState{},
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW

	for game.Level() < max(startLevel, 1) {
		game.LevelUp()
	}

	m.session.start = m.clock()
	m.session.last = m.session.start
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.status = m.saveScreenshot()
		return m, nil
	case "ctrl+y":
		m.status = m.copyFrame()
		return m, nil
	}

	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.session.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLevelUp:
		m.game.LevelUp()
		m.logger.Info("level up", "level", m.game.Level())
	case core.ActionPause:
		m.game.Pause(m.game.Config().Level.ManualPauseSeconds)
	case core.ActionNone:
	default:
		if IsHeld(action) {
			if other, ok := opposingTurn(action); ok {
				m.held.Release(other)
			}
			m.held.Press(action, m.clock())
		}
	}

	return m, nil
}

// handleResize keeps the game running and only remaps the arena onto the
// new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation to the tick time.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	now := t.Sub(m.session.start).Seconds()
	dt := t.Sub(m.session.last).Seconds()
	if dt < 0 {
		dt = 0
	}
	m.session.last = t

	m.game.Update(m.held.Frame(t), now, dt)

	return m, tickCmd(m.config.TickRate)
}

// Elapsed returns the seconds played so far.
func (m Model) Elapsed() float64 {
	return m.session.last.Sub(m.session.start).Seconds()
}

// saveRun records the run once. Failures are logged and otherwise ignored.
func (m Model) saveRun() {
	if m.session.saved || m.store == nil {
		return
	}
	m.session.saved = true

	run := storage.Run{
		Player:  m.player,
		Level:   m.game.Level(),
		Seconds: m.Elapsed(),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "player", run.Player, "level", run.Level, "seconds", run.Seconds)
}

// finishRun saves the run held by the final model of an ended program. It
// covers programs that stop without the quit key.
func finishRun(final tea.Model) {
	if m, ok := final.(Model); ok {
		m.saveRun()
	}
}

// render draws the current frame into the screen buffer.
func (m Model) render() {
	m.screen.Clear()
	m.game.Render(m.canvas)
}

// saveScreenshot saves the current screen to a file and returns a status line.
func (m Model) saveScreenshot() string {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", asteroids.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}
	return "saved " + path
}

// copyFrame puts the current frame on the system clipboard.
func (m Model) copyFrame() string {
	m.render()
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.logger.Warn("clipboard unavailable", "error", err)
		return "clipboard unavailable"
	}
	return "frame copied"
}

var (
	hudStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.session.quitting {
		return ""
	}

	m.render()

	footer := hudStyle.Render(fmt.Sprintf("Level %d ", m.game.Level())) + m.help.View(m.keys)
	if m.status != "" {
		footer += statusStyle.Render("  " + m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for the given game.
func Run(game *asteroids.Game, store *storage.Store, cfg core.RuntimeConfig, startLevel int, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, startLevel, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	finishRun(final)
	return err
}
