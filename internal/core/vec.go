// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in arena units.
type Vec2 struct {
	X, Y float64
}

// V creates a vector from its components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Div divides both components by f.
func (v Vec2) Div(f float64) Vec2 {
	return Vec2{X: v.X / f, Y: v.Y / f}
}

// Rotate rotates v by theta radians: x' = x·cos − y·sin, y' = x·sin + y·cos.
// With Y pointing down this turns clockwise on screen.
func (v Vec2) Rotate(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Clamp restricts each component independently to [lo, hi].
func (v Vec2) Clamp(lo, hi float64) Vec2 {
	return Vec2{X: clampFloat(v.X, lo, hi), Y: clampFloat(v.Y, lo, hi)}
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// ApproxEqual reports whether both components differ by at most eps.
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// FromAngle returns the point at angle on a circle of the given radius,
// using the arena's (sin, cos) convention: angle 0 points toward +Y.
func FromAngle(angle, radius float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: sin * radius, Y: cos * radius}
}

func clampFloat(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(val, hi))
}
