package asteroids

import (
	"github.com/vovakirdan/asteroids-arcade/internal/config"
	"github.com/vovakirdan/asteroids-arcade/internal/core"
)

const eps = 1e-9

// scriptedRand replays fixed values, cycling when exhausted.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

type textCall struct {
	text     string
	pos      core.Vec2
	fontSize float64
	color    core.Color
}

// recordingCanvas keeps every draw call in order.
type recordingCanvas struct {
	calls  []string // "strip" or "text"
	strips [][]core.Vec2
	texts  []textCall
}

func (c *recordingCanvas) DrawLineStrip(points []core.Vec2, _ core.Color) {
	c.calls = append(c.calls, "strip")
	c.strips = append(c.strips, append([]core.Vec2(nil), points...))
}

func (c *recordingCanvas) DrawText(text string, pos core.Vec2, fontSize float64, col core.Color) {
	c.calls = append(c.calls, "text")
	c.texts = append(c.texts, textCall{text: text, pos: pos, fontSize: fontSize, color: col})
}

func testConfig() config.AsteroidsConfig {
	return config.DefaultAsteroidsConfig()
}
