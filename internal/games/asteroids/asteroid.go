package asteroids

import (
	"math"

	"github.com/vovakirdan/asteroids-arcade/internal/config"
	"github.com/vovakirdan/asteroids-arcade/internal/core"
)

// AsteroidClass is the size category of a rock.
type AsteroidClass int

const (
	Small AsteroidClass = iota
	Medium
	Large
)

// asteroidClasses lists every class for uniform selection.
var asteroidClasses = [...]AsteroidClass{Small, Medium, Large}

// asteroidPoints is the vertex count of every rock outline.
const asteroidPoints = 10

// Size is the class multiplier applied to radius and, inversely, to speed.
func (c AsteroidClass) Size() float64 {
	switch c {
	case Small:
		return 0.3
	case Large:
		return 2.0
	default:
		return 1.0
	}
}

// Degrade returns the class a rock breaks into. Small rocks break into
// nothing and report false.
func (c AsteroidClass) Degrade() (AsteroidClass, bool) {
	switch c {
	case Medium:
		return Small, true
	case Large:
		return Medium, true
	default:
		return Small, false
	}
}

func (c AsteroidClass) String() string {
	switch c {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "unknown"
	}
}

// RandomClass picks a class uniformly.
func RandomClass(r Rand) AsteroidClass {
	return asteroidClasses[r.Intn(len(asteroidClasses))]
}

// Asteroid is a drifting rock.
type Asteroid struct {
	shape     *Shape
	direction core.Vec2 // components in [-1, 1], not normalized
	class     AsteroidClass
	cfg       config.AsteroidConfig
	arena     config.ArenaConfig
}

// SpawnAsteroid generates a random rock at position.
//
// Draw order from r: class, direction x, direction y, then one radius per
// outline point.
func SpawnAsteroid(position core.Vec2, r Rand, cfg config.AsteroidConfig, arena config.ArenaConfig) *Asteroid {
	class := RandomClass(r)
	direction := core.V(uniform(r, -1, 1), uniform(r, -1, 1))

	lo := cfg.MinRadius * class.Size()
	hi := cfg.MaxRadius * class.Size()

	// The last point lands on the first angle again, so the outline closes
	// on itself before the shape adds its own closing segment.
	increment := 2 * math.Pi / float64(asteroidPoints-1)
	points := make([]core.Vec2, asteroidPoints)
	for i := range points {
		points[i] = core.FromAngle(float64(i)*increment, uniform(r, lo, hi))
	}

	shape := NewShape(points, position)
	shape.SetColor(cfg.Color)

	return &Asteroid{
		shape:     shape,
		direction: direction,
		class:     class,
		cfg:       cfg,
		arena:     arena,
	}
}

// Asteroids returns a SpawnFunc that draws from r.
func Asteroids(r Rand, cfg config.AsteroidConfig, arena config.ArenaConfig) SpawnFunc[*Asteroid] {
	return func(position core.Vec2) *Asteroid {
		return SpawnAsteroid(position, r, cfg, arena)
	}
}

func (a *Asteroid) Shape() *Shape        { return a.shape }
func (a *Asteroid) Direction() core.Vec2 { return a.direction }
func (a *Asteroid) Class() AsteroidClass { return a.class }

// Velocity is the drift in arena units per second. Larger rocks are slower.
func (a *Asteroid) Velocity() core.Vec2 {
	return a.direction.Div(a.class.Size()).Scale(a.cfg.Speed)
}

// Update drifts the rock and wraps it into the arena.
func (a *Asteroid) Update(dt float64) {
	a.shape.Translate(a.Velocity().Scale(dt))
	a.shape.Wrap(a.arena.Width, a.arena.Height)
}

// Render draws the outline.
func (a *Asteroid) Render(c core.Canvas) {
	a.shape.Render(c)
}
