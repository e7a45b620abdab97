package palette

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Format selects how a palette is encoded.
type Format string

const (
	// FormatHex writes one "0xRRGGBB," line per entry.
	FormatHex Format = "hex"
	// FormatPNG writes an indexed PNG swatch sheet.
	FormatPNG Format = "png"
)

// Swatch sheet geometry.
const (
	SwatchSize    = 64
	SwatchColumns = 8
)

// ErrUnknownFormat is returned for a format name that is not hex or png.
var ErrUnknownFormat = errors.New("unknown palette format")

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHex, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) String() string {
	return string(f)
}

// Summary describes what a Write call produced.
type Summary struct {
	Count  int
	Bytes  int64
	Digest string // BLAKE2b-256 of the bytes written, lowercase hex
}

// Write encodes the sweep described by g to w.
// Bytes already written before a failure are not rolled back.
func Write(w io.Writer, g *Generator, f Format) (Summary, error) {
	sum, err := blake2b.New256(nil)
	if err != nil {
		return Summary{}, fmt.Errorf("digest init: %w", err)
	}
	cw := &countingWriter{w: io.MultiWriter(w, sum)}

	var count int
	switch f {
	case FormatHex:
		count, err = writeHex(cw, g)
	case FormatPNG:
		count, err = writePNG(cw, g)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	s := Summary{
		Count:  count,
		Bytes:  cw.n,
		Digest: hex.EncodeToString(sum.Sum(nil)),
	}
	return s, err
}

func writeHex(w io.Writer, g *Generator) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for _, c := range g.All() {
		if _, err := fmt.Fprintf(bw, "0x%02X%02X%02X,\n", c.R, c.G, c.B); err != nil {
			return n, fmt.Errorf("write entry %d: %w", n, err)
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("flush palette: %w", err)
	}
	return n, nil
}

// SwatchImage lays the sweep out as SwatchSize squares, SwatchColumns per
// row. Cells past the last entry use palette index 0.
func SwatchImage(g *Generator) *image.Paletted {
	colors := g.Colors()
	pal := make(color.Palette, len(colors))
	for i, c := range colors {
		pal[i] = c.RGBA()
	}

	rows := (len(colors) + SwatchColumns - 1) / SwatchColumns
	img := image.NewPaletted(image.Rect(0, 0, SwatchSize*SwatchColumns, SwatchSize*rows), pal)
	for i := range colors {
		x0 := SwatchSize * (i % SwatchColumns)
		y0 := SwatchSize * (i / SwatchColumns)
		for y := y0; y < y0+SwatchSize; y++ {
			for x := x0; x < x0+SwatchSize; x++ {
				img.SetColorIndex(x, y, uint8(i))
			}
		}
	}
	return img
}

func writePNG(w io.Writer, g *Generator) (int, error) {
	if g.Size < 1 || g.Size > MaxSize {
		return 0, fmt.Errorf("png palette needs 1..%d entries, got %d", MaxSize, g.Size)
	}
	img := SwatchImage(g)
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, img); err != nil {
		return 0, fmt.Errorf("encode png: %w", err)
	}
	return len(img.Palette), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
