package palette

import (
	"errors"
	"fmt"
	"math"

	"github.com/crazy3lf/colorconv"
)

// Round-trip tolerances. 8-bit channels limit how close an emitted color can
// come back to its input hue.
const (
	HueTolerance        = 1.0
	SaturationTolerance = 0.05
	LightnessTolerance  = 0.05
)

// ErrRoundTrip reports an entry whose RGB does not convert back to its HSL.
var ErrRoundTrip = errors.New("palette round-trip out of tolerance")

// Report holds the worst deviations seen when converting a sweep back to HSL.
type Report struct {
	Entries       int
	MaxHueError   float64
	MaxSatError   float64
	MaxLightError float64
	WorstIndex    int // index with the largest hue error
}

// Verify converts every color in the sweep back to HSL and compares it to the
// input. Hue is skipped for gray entries and saturation near black or white,
// where neither is well defined.
func Verify(g *Generator) (Report, error) {
	rep := Report{WorstIndex: -1}
	var firstErr error

	for i, c := range g.All() {
		rep.Entries++
		want := g.HSL(i)
		h, s, l := colorconv.ColorToHSL(c.RGBA())

		var dh, ds float64
		if !isGray(c) && want.S > 0 {
			dh = hueDistance(h, want.H)
		}
		if want.L > 0.05 && want.L < 0.95 {
			ds = math.Abs(s - want.S)
		}
		dl := math.Abs(l - want.L)

		if dh > rep.MaxHueError || rep.WorstIndex < 0 {
			rep.MaxHueError = dh
			rep.WorstIndex = i
		}
		rep.MaxSatError = math.Max(rep.MaxSatError, ds)
		rep.MaxLightError = math.Max(rep.MaxLightError, dl)

		if firstErr == nil && (dh > HueTolerance || ds > SaturationTolerance || dl > LightnessTolerance) {
			firstErr = fmt.Errorf("%w: entry %d %s: hue %.3f° sat %.3f light %.3f",
				ErrRoundTrip, i, c.Hex(), dh, ds, dl)
		}
	}
	return rep, firstErr
}

func isGray(c RGB) bool {
	return c.R == c.G && c.G == c.B
}

// hueDistance is the shortest angular distance between two hues in degrees.
func hueDistance(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 360))
	if d > 180 {
		d = 360 - d
	}
	return d
}
