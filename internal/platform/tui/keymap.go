package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/asteroids-arcade/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals report key presses and auto-repeat but never releases.
const DefaultHoldWindow = 150 * time.Millisecond

// GameKeyMap defines the key bindings for a running game.
type GameKeyMap struct {
	RotateLeft  key.Binding
	RotateRight key.Binding
	Thrust      key.Binding
	Fire        key.Binding
	LevelUp     key.Binding
	Pause       key.Binding
	Screenshot  key.Binding
	Copy        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RotateLeft, k.RotateRight, k.Thrust, k.LevelUp, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RotateLeft, k.RotateRight, k.Thrust, k.Fire},
		{k.LevelUp, k.Pause},
		{k.Screenshot, k.Copy, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		RotateLeft: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "rotate left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "rotate right"),
		),
		Thrust: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "thrust"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		LevelUp: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next level"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy frame"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a key mapper over the given bindings.
func NewKeyMapper(keys GameKeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.RotateLeft):
		return core.ActionRotateLeft, false
	case key.Matches(msg, km.keys.RotateRight):
		return core.ActionRotateRight, false
	case key.Matches(msg, km.keys.Thrust):
		return core.ActionThrust, false
	case key.Matches(msg, km.keys.Fire):
		return core.ActionFire, false
	case key.Matches(msg, km.keys.LevelUp):
		return core.ActionLevelUp, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// IsHeld reports whether the action is continuous (held) rather than a
// one-shot command.
func IsHeld(a core.Action) bool {
	switch a {
	case core.ActionRotateLeft, core.ActionRotateRight, core.ActionThrust, core.ActionFire:
		return true
	}
	return false
}

// opposingTurn returns the rotation that cancels a, if a is a rotation.
func opposingTurn(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionRotateLeft:
		return core.ActionRotateRight, true
	case core.ActionRotateRight:
		return core.ActionRotateLeft, true
	}
	return core.ActionNone, false
}

// HeldKeys approximates key-down state from press events.
type HeldKeys struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHeldKeys creates a tracker that keeps an action down for window after
// its last press. A non-positive window uses DefaultHoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a press (or auto-repeat) of the action at the given time.
func (h *HeldKeys) Press(a core.Action, at time.Time) {
	h.last[a] = at
}

// Release drops the action immediately.
func (h *HeldKeys) Release(a core.Action) {
	delete(h.last, a)
}

// Frame returns the actions still held at now and forgets expired ones.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, at := range h.last {
		if now.Sub(at) < h.window {
			frame.Set(a)
		} else {
			delete(h.last, a)
		}
	}
	return frame
}
