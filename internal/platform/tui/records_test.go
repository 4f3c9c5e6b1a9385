package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/asteroids-arcade/internal/storage"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "0:00"},
		{9.6, "0:10"},
		{75, "1:15"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.expected {
			t.Errorf("FormatDuration(%f) = %q, expected %q", tt.seconds, got, tt.expected)
		}
	}
}

func TestRunRow(t *testing.T) {
	r := storage.Run{
		Player:    "ada",
		Level:     4,
		Seconds:   65,
		CreatedAt: time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC),
	}
	row := RunRow(2, r)
	expected := []string{"#2", "ada", "4", "1:05", "Mar 05 14:07"}
	for i, want := range expected {
		if row[i] != want {
			t.Errorf("row[%d] = %q, expected %q", i, row[i], want)
		}
	}

	if RunRow(1, storage.Run{})[4] != "-" {
		t.Error("missing date should render as -")
	}
}

func TestRecordsModelWithoutStore(t *testing.T) {
	m := NewRecordsModel(nil, 100, 30)
	if len(m.runs) != 0 {
		t.Errorf("expected no runs, got %d", len(m.runs))
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty view should say there are no runs")
	}
}

func TestRecordsModelPlayers(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{Player: "bob", Level: 5, Seconds: 100})
	store.SaveRun(storage.Run{Player: "ada", Level: 2, Seconds: 30})
	store.SaveRun(storage.Run{Player: "ada", Level: 3, Seconds: 50})

	m := NewRecordsModel(store, 100, 30)
	if len(m.players) != 3 || m.players[1] != "ada" {
		t.Fatalf("players = %v, expected [All players ada bob]", m.players)
	}
	if m.Selected() != "" || len(m.runs) != 3 {
		t.Errorf("initial view should rank all %d runs, got %d", 3, len(m.runs))
	}
	if m.runs[0].Player != "bob" {
		t.Errorf("top run by %s, expected bob", m.runs[0].Player)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RecordsModel)
	if m.Selected() != "ada" {
		t.Errorf("Selected() = %q, expected ada", m.Selected())
	}
	if len(m.runs) != 2 {
		t.Errorf("ada has %d runs, expected 2", len(m.runs))
	}

	// Wraps backwards past the first entry.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(RecordsModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(RecordsModel)
	if m.Selected() != "bob" {
		t.Errorf("Selected() = %q, expected bob", m.Selected())
	}

	if !strings.Contains(m.View(), "RUNS - bob") {
		t.Error("title should name the selected player")
	}
}

func TestRecordsModelQuit(t *testing.T) {
	m := NewRecordsModel(nil, 60, 20)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.(RecordsModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
