// Package window runs the asteroids game in a desktop window with Ebitengine.
package window

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/asteroids-arcade/internal/core"
)

const lineWidth = 1.5

// LoadFont parses the bundled Go Regular face.
func LoadFont() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}
	return src, nil
}

// Canvas draws outlines and text onto an Ebitengine image in arena units.
type Canvas struct {
	dst  *ebiten.Image
	font *text.GoTextFaceSource
}

// NewCanvas wraps dst. The image is expected to be arena-sized.
func NewCanvas(dst *ebiten.Image, font *text.GoTextFaceSource) *Canvas {
	return &Canvas{dst: dst, font: font}
}

// DrawLineStrip strokes each segment between consecutive points.
func (c *Canvas) DrawLineStrip(points []core.Vec2, col core.Color) {
	clr := col.ToRGBA()
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), lineWidth, clr, true)
	}
}

// DrawText draws text with its top-left corner at pos.
func (c *Canvas) DrawText(s string, pos core.Vec2, fontSize float64, col core.Color) {
	if c.font == nil {
		return
	}
	face := &text.GoTextFace{Source: c.font, Size: fontSize}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(col.ToRGBA())
	text.Draw(c.dst, s, face, op)
}

var _ core.Canvas = (*Canvas)(nil)
