package asteroids

import (
	"github.com/vovakirdan/asteroids-arcade/internal/config"
	"github.com/vovakirdan/asteroids-arcade/internal/core"
)

// hull is the ship outline, nose up.
var hull = []core.Vec2{
	{X: 0, Y: -20},
	{X: -10, Y: 10},
	{X: 0, Y: 5},
	{X: 10, Y: 10},
}

// Player is the ship steered by the user.
type Player struct {
	shape *Shape
	force core.Vec2 // velocity in arena units per second
	cfg   config.PlayerConfig
	arena config.ArenaConfig
}

// SpawnPlayer creates a stationary ship facing up at position.
func SpawnPlayer(position core.Vec2, cfg config.PlayerConfig, arena config.ArenaConfig) *Player {
	shape := NewShape(hull, position)
	shape.SetColor(cfg.Color)
	return &Player{
		shape: shape,
		cfg:   cfg,
		arena: arena,
	}
}

// Shape exposes the ship's transform.
func (p *Player) Shape() *Shape {
	return p.shape
}

// Force returns the current velocity.
func (p *Player) Force() core.Vec2 {
	return p.force
}

// RotateLeft turns the ship counter-clockwise.
func (p *Player) RotateLeft(dt float64) {
	p.shape.Rotate(-p.cfg.RotationalSpeed * dt)
}

// RotateRight turns the ship clockwise.
func (p *Player) RotateRight(dt float64) {
	p.shape.Rotate(p.cfg.RotationalSpeed * dt)
}

// Thrust accelerates along the heading. Each axis of the force stays within
// [-MaxSpeed, MaxSpeed].
func (p *Player) Thrust() {
	p.force = p.force.Add(p.shape.Heading().Scale(p.cfg.Speed)).Clamp(-p.cfg.MaxSpeed, p.cfg.MaxSpeed)
}

// Drag decays the force once. It is applied per tick, not per second, so the
// effective deceleration depends on the frame rate.
func (p *Player) Drag() {
	p.force = p.force.Scale(p.cfg.Drag)
}

// Update integrates the position and wraps it into the arena.
func (p *Player) Update(dt float64) {
	p.shape.Translate(p.force.Scale(dt))
	p.shape.Wrap(p.arena.Width, p.arena.Height)
}

// Render draws the hull.
func (p *Player) Render(c core.Canvas) {
	p.shape.Render(c)
}
