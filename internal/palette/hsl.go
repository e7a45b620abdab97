package palette

import (
	"fmt"
	"image/color"
	"math"
)

// HSL is a color in the hue/saturation/lightness model.
// H is in degrees [0, 360), S and L are fractions in [0, 1].
type HSL struct {
	H float64
	S float64
	L float64
}

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// RGB converts h to 8-bit RGB using the chroma/sextant formula.
// Channels are rounded half away from zero and clamped to [0, 255].
func (h HSL) RGB() RGB {
	hue := math.Mod(h.H, 360)
	if hue < 0 {
		hue += 360
	}
	s := clampUnit(h.S)
	l := clampUnit(h.L)

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: toByte(r + m),
		G: toByte(g + m),
		B: toByte(b + m),
	}
}

// Hex returns the color as an uppercase C-style literal, e.g. 0xFF8000.
func (c RGB) Hex() string {
	return fmt.Sprintf("0x%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// RGBA returns c as an opaque image/color value.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

func toByte(f float64) uint8 {
	v := math.Round(f * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampUnit(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
