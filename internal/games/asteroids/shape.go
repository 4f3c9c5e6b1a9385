// Package asteroids implements the rock-dodging arcade simulation: a ship in a
// toroidal arena, procedurally generated rocks, and level progression.
//
// The package draws through core.Canvas and reads input from core.InputFrame,
// so it runs unchanged under the terminal, window and SSH drivers.
package asteroids

import (
	"github.com/vovakirdan/asteroids-arcade/internal/core"
)

// Shape is a closed polygon of fixed size with a transform.
// Points are relative to the local origin and never change after construction.
type Shape struct {
	points   []core.Vec2
	position core.Vec2
	rotation float64 // radians, unbounded
	scale    float64
	color    core.Color
}

// NewShape creates a shape from local-space points placed at position.
// Panics if points is empty.
func NewShape(points []core.Vec2, position core.Vec2) *Shape {
	if len(points) == 0 {
		panic("asteroids: shape needs at least one point")
	}
	return &Shape{
		points:   append([]core.Vec2(nil), points...),
		position: position,
		scale:    1,
		color:    core.ColorWhite,
	}
}

// Len returns the number of polygon points.
func (s *Shape) Len() int {
	return len(s.points)
}

// Points returns a copy of the local-space points.
func (s *Shape) Points() []core.Vec2 {
	return append([]core.Vec2(nil), s.points...)
}

// OutlinePoints returns the polygon in world space, closed by repeating the
// first point at the end.
func (s *Shape) OutlinePoints() []core.Vec2 {
	out := make([]core.Vec2, len(s.points)+1)
	for i, p := range s.points {
		out[i] = p.Rotate(s.rotation).Scale(s.scale).Add(s.position)
	}
	out[len(s.points)] = out[0]
	return out
}

// Render draws the closed outline in the shape's color.
func (s *Shape) Render(c core.Canvas) {
	c.DrawLineStrip(s.OutlinePoints(), s.color)
}

// Heading is the unit forward vector. Rotation 0 faces up (decreasing Y).
func (s *Shape) Heading() core.Vec2 {
	return core.V(0, -1).Rotate(s.rotation)
}

// Wrap moves the position to the opposite edge once it leaves the arena.
// Positions exactly on an edge are left alone.
func (s *Shape) Wrap(width, height float64) {
	if s.position.X < 0 {
		s.position.X += width
	} else if s.position.X > width {
		s.position.X -= width
	}
	if s.position.Y < 0 {
		s.position.Y += height
	} else if s.position.Y > height {
		s.position.Y -= height
	}
}

func (s *Shape) Position() core.Vec2     { return s.position }
func (s *Shape) SetPosition(p core.Vec2) { s.position = p }
func (s *Shape) Translate(d core.Vec2)   { s.position = s.position.Add(d) }
func (s *Shape) Rotation() float64       { return s.rotation }
func (s *Shape) SetRotation(r float64)   { s.rotation = r }
func (s *Shape) Rotate(d float64)        { s.rotation += d }
func (s *Shape) Scale() float64          { return s.scale }
func (s *Shape) SetScale(f float64)      { s.scale = f }
func (s *Shape) Color() core.Color       { return s.color }
func (s *Shape) SetColor(c core.Color)   { s.color = c }
