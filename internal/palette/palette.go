// Package palette generates hue-sweep color tables.
//
// A Generator walks Size evenly spaced hues starting at 0° with a fixed
// saturation and lightness, converting each to 8-bit RGB. The default
// generator yields the classic 256-entry rainbow table.
package palette

import "iter"

const (
	DefaultSize       = 256
	DefaultSaturation = 1.0
	DefaultLightness  = 0.5

	// MaxSize is the largest palette that still fits an 8-bit indexed image.
	MaxSize = 256
)

// Generator describes a hue sweep.
type Generator struct {
	Size       int
	Saturation float64
	Lightness  float64
}

// Default returns the 256-entry, full saturation, mid lightness sweep.
func Default() *Generator {
	return &Generator{
		Size:       DefaultSize,
		Saturation: DefaultSaturation,
		Lightness:  DefaultLightness,
	}
}

// Hue returns the hue in degrees for index i.
func (g *Generator) Hue(i int) float64 {
	return float64(i) * 360.0 / float64(g.Size)
}

// HSL returns the HSL value for index i.
func (g *Generator) HSL(i int) HSL {
	return HSL{H: g.Hue(i), S: g.Saturation, L: g.Lightness}
}

// At returns the RGB color for index i.
func (g *Generator) At(i int) RGB {
	return g.HSL(i).RGB()
}

// All yields every index and its color in order. Each call starts a fresh
// sweep, so the sequence can be ranged over any number of times.
func (g *Generator) All() iter.Seq2[int, RGB] {
	return func(yield func(int, RGB) bool) {
		for i := 0; i < g.Size; i++ {
			if !yield(i, g.At(i)) {
				return
			}
		}
	}
}

// Colors collects the whole sweep into a slice.
func (g *Generator) Colors() []RGB {
	out := make([]RGB, 0, max(g.Size, 0))
	for _, c := range g.All() {
		out = append(out, c)
	}
	return out
}
