package asteroids

import "github.com/vovakirdan/asteroids-arcade/internal/core"

// Entity is implemented by every simulated actor.
type Entity interface {
	// Update advances the actor by dt seconds.
	Update(dt float64)
	// Render draws the actor.
	Render(c core.Canvas)
}

// SpawnFunc creates an actor at a world position.
type SpawnFunc[E Entity] func(position core.Vec2) E

// Rand is the randomness source used for procedural generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// uniform returns a value in [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Asteroid)(nil)
)
