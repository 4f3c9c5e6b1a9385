package core

import (
	"fmt"
	"image/color"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = [...]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightBlue:    "bright-blue",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
}

// palette holds the RGB value of each color on a graphical surface, following
// the xterm defaults. ColorDefault draws white on the black arena.
var palette = [...]color.RGBA{
	ColorDefault:       {R: 229, G: 229, B: 229, A: 255},
	ColorRed:           {R: 205, G: 0, B: 0, A: 255},
	ColorGreen:         {R: 0, G: 205, B: 0, A: 255},
	ColorYellow:        {R: 205, G: 205, B: 0, A: 255},
	ColorBlue:          {R: 0, G: 0, B: 238, A: 255},
	ColorMagenta:       {R: 205, G: 0, B: 205, A: 255},
	ColorCyan:          {R: 0, G: 205, B: 205, A: 255},
	ColorWhite:         {R: 229, G: 229, B: 229, A: 255},
	ColorBrightRed:     {R: 255, G: 0, B: 0, A: 255},
	ColorBrightGreen:   {R: 0, G: 255, B: 0, A: 255},
	ColorBrightYellow:  {R: 255, G: 255, B: 0, A: 255},
	ColorBrightBlue:    {R: 92, G: 92, B: 255, A: 255},
	ColorBrightMagenta: {R: 255, G: 0, B: 255, A: 255},
	ColorBrightCyan:    {R: 0, G: 255, B: 255, A: 255},
	ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	ColorOrange:        {R: 255, G: 135, B: 0, A: 255},
	ColorGray:          {R: 138, G: 138, B: 138, A: 255},
}

// ToRGBA returns the color for graphical renderers.
func (c Color) ToRGBA() color.RGBA {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[ColorDefault]
}

// String returns the config name of the color.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// ParseColor resolves a config color name such as "cyan" or "bright-white".
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}

// MarshalYAML encodes the color by name.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes a color name.
func (c *Color) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseColor(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
