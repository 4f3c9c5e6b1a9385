package asteroids

import (
	"math"
	"testing"

	"github.com/vovakirdan/asteroids-arcade/internal/core"
)

func newTestPlayer() *Player {
	cfg := testConfig()
	return SpawnPlayer(core.V(400, 400), cfg.Player, cfg.Arena)
}

func TestSpawnPlayer(t *testing.T) {
	p := newTestPlayer()

	if p.Shape().Len() != 4 {
		t.Errorf("hull has %d points, expected 4", p.Shape().Len())
	}
	if p.Shape().Position() != core.V(400, 400) {
		t.Errorf("Position() = %v, expected (400, 400)", p.Shape().Position())
	}
	if p.Shape().Rotation() != 0 || p.Shape().Scale() != 1 {
		t.Errorf("spawned with rotation %f scale %f, expected 0 and 1", p.Shape().Rotation(), p.Shape().Scale())
	}
	if p.Force() != (core.Vec2{}) {
		t.Errorf("Force() = %v, expected zero", p.Force())
	}
}

func TestPlayerRotation(t *testing.T) {
	p := newTestPlayer()

	p.RotateRight(0.1)
	if math.Abs(p.Shape().Rotation()-0.75) > eps {
		t.Errorf("RotateRight(0.1) = %f, expected 0.75", p.Shape().Rotation())
	}

	p.RotateLeft(0.2)
	if math.Abs(p.Shape().Rotation()+0.75) > eps {
		t.Errorf("RotateLeft(0.2) = %f, expected -0.75", p.Shape().Rotation())
	}
}

func TestPlayerThrustAddsHeading(t *testing.T) {
	p := newTestPlayer()
	p.Thrust()

	if !p.Force().ApproxEqual(core.V(0, -5), eps) {
		t.Errorf("one thrust facing up = %v, expected (0, -5)", p.Force())
	}
}

func TestPlayerForceClamp(t *testing.T) {
	p := newTestPlayer()

	for i := 0; i < 100; i++ {
		p.Thrust()
	}
	if p.Force().Y != -300 {
		t.Errorf("force after 100 thrusts up = %v, expected Y clamped to -300", p.Force())
	}

	// Spin while thrusting: every axis must stay within MaxSpeed.
	for i := 0; i < 2000; i++ {
		p.RotateRight(0.013)
		p.Thrust()
		f := p.Force()
		if math.Abs(f.X) > 300 || math.Abs(f.Y) > 300 {
			t.Fatalf("tick %d: force %v exceeds max speed", i, f)
		}
	}
}

func TestPlayerDragDecay(t *testing.T) {
	p := newTestPlayer()
	p.RotateRight(0.1)
	for i := 0; i < 20; i++ {
		p.Thrust()
	}
	initial := p.Force()

	const ticks = 50
	for i := 0; i < ticks; i++ {
		p.Drag()
	}

	expected := initial.Scale(math.Pow(0.98, ticks))
	if !p.Force().ApproxEqual(expected, 1e-9) {
		t.Errorf("force after %d drag ticks = %v, expected %v", ticks, p.Force(), expected)
	}
}

func TestPlayerUpdateIntegratesAndWraps(t *testing.T) {
	p := newTestPlayer()
	p.Thrust() // (0, -5)

	p.Update(2)
	if !p.Shape().Position().ApproxEqual(core.V(400, 390), eps) {
		t.Errorf("Position() = %v, expected (400, 390)", p.Shape().Position())
	}

	p.Shape().SetPosition(core.V(400, 2))
	p.Update(1)
	if !p.Shape().Position().ApproxEqual(core.V(400, 797), eps) {
		t.Errorf("Position() after leaving the top = %v, expected (400, 797)", p.Shape().Position())
	}
}
