package core

import "math"

// Canvas is the render sink games draw into.
// Coordinates are arena units; implementations map them to their own surface.
type Canvas interface {
	// DrawLineStrip connects consecutive points with straight segments.
	DrawLineStrip(points []Vec2, c Color)
	// DrawText draws text with its top-left corner at pos.
	DrawText(text string, pos Vec2, fontSize float64, c Color)
}

// LineRune is the glyph used for polygon outlines on a terminal screen.
const LineRune = '•'

// ScreenCanvas projects an arena onto a character Screen.
type ScreenCanvas struct {
	screen *Screen
	arenaW float64
	arenaH float64
}

// NewScreenCanvas creates a canvas that stretches an arenaW x arenaH arena
// over the whole screen.
func NewScreenCanvas(s *Screen, arenaW, arenaH float64) *ScreenCanvas {
	return &ScreenCanvas{screen: s, arenaW: arenaW, arenaH: arenaH}
}

// Project maps an arena position to a screen cell.
func (c *ScreenCanvas) Project(p Vec2) (int, int) {
	x := p.X * float64(c.screen.Width()) / c.arenaW
	y := p.Y * float64(c.screen.Height()) / c.arenaH
	return int(math.Floor(x)), int(math.Floor(y))
}

// DrawLineStrip draws each segment as a Bresenham line of LineRune.
func (c *ScreenCanvas) DrawLineStrip(points []Vec2, col Color) {
	if len(points) == 0 {
		return
	}
	px, py := c.Project(points[0])
	if len(points) == 1 {
		c.screen.SetCell(px, py, LineRune, col)
		return
	}
	for _, p := range points[1:] {
		x, y := c.Project(p)
		c.screen.DrawLine(px, py, x, y, LineRune, col)
		px, py = x, y
	}
}

// DrawText writes text at the projected position. A terminal has one glyph
// size, so fontSize is ignored.
func (c *ScreenCanvas) DrawText(text string, pos Vec2, _ float64, col Color) {
	x, y := c.Project(pos)
	c.screen.DrawText(x, y, text, col)
}
