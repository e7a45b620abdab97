package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"hue-palette/internal/palette"
)

// SwatchColumns is how many swatches RenderSwatches puts on a row by default.
const SwatchColumns = 8

// RenderSwatches lays colors out as labelled truecolor blocks, columns per
// row. Without color support only the labels remain.
func RenderSwatches(colors []palette.RGB, columns int) string {
	if columns < 1 {
		columns = SwatchColumns
	}

	var b strings.Builder
	for i, c := range colors {
		if i > 0 {
			if i%columns == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(swatch(c))
	}
	if len(colors) > 0 {
		b.WriteByte('\n')
	}
	return b.String()
}

func swatch(c palette.RGB) string {
	label := fmt.Sprintf(" %s ", c.Hex())
	fr, fg, fb := labelColor(c)
	return color.BgRGB(int(c.R), int(c.G), int(c.B)).
		AddRGB(fr, fg, fb).
		Sprint(label)
}

// labelColor picks black or white text, whichever reads better on c.
func labelColor(c palette.RGB) (int, int, int) {
	// Rec. 601 luma
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luma > 140 {
		return 0, 0, 0
	}
	return 255, 255, 255
}

// PrintSwatches writes RenderSwatches output under a section header.
func PrintSwatches(colors []palette.RGB) {
	LogSection(fmt.Sprintf("preview · %d colors", len(colors)))
	fmt.Fprint(Output, RenderSwatches(colors, SwatchColumns))
}
