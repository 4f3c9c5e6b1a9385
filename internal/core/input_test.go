package core

import (
	"image/color"
	"testing"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionThrust) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionThrust)
	f.Set(ActionRotateLeft)
	if !f.Has(ActionThrust) || !f.Has(ActionRotateLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRotateRight) {
		t.Error("unset action should not be reported")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:        "None",
		ActionRotateLeft:  "RotateLeft",
		ActionRotateRight: "RotateRight",
		ActionThrust:      "Thrust",
		ActionFire:        "Fire",
		ActionPause:       "Pause",
		ActionLevelUp:     "LevelUp",
		ActionQuit:        "Quit",
		Action(99):        "Unknown",
	}
	for a, expected := range tests {
		if a.String() != expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), a.String(), expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("bright-cyan")
	if err != nil {
		t.Fatalf("ParseColor() failed: %v", err)
	}
	if c != ColorBrightCyan {
		t.Errorf("ParseColor(bright-cyan) = %v, expected %v", c, ColorBrightCyan)
	}
	if c.String() != "bright-cyan" {
		t.Errorf("String() = %q, expected bright-cyan", c.String())
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		c        Color
		expected color.RGBA
	}{
		{ColorWhite, color.RGBA{R: 229, G: 229, B: 229, A: 255}},
		{ColorBrightWhite, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{ColorOrange, color.RGBA{R: 255, G: 135, B: 0, A: 255}},
		{Color(250), color.RGBA{R: 229, G: 229, B: 229, A: 255}},
	}
	for _, tt := range tests {
		if got := tt.c.ToRGBA(); got != tt.expected {
			t.Errorf("%v.ToRGBA() = %v, expected %v", tt.c, got, tt.expected)
		}
	}

	for c := ColorDefault; c <= ColorGray; c++ {
		if c.ToRGBA().A != 255 {
			t.Errorf("%v is not opaque", c)
		}
	}
}
