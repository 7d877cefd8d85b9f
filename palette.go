package stipple

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// PaletteSize is the number of colors in every sheet palette.
const PaletteSize = 16

// Palette is a fixed-order color list. Index 0 is conventionally the
// transparent/background color. Palettes are fixed at sheet creation;
// callers receive copies and cannot mutate a sheet's palette in place.
type Palette []Color

// DefaultPalette returns the built-in 16-color palette used for new sheets.
func DefaultPalette() Palette {
	return Palette{
		{0.00, 0.00, 0.00, 1}, // black (background)
		{0.11, 0.17, 0.33, 1}, // dark blue
		{0.49, 0.15, 0.33, 1}, // dark purple
		{0.00, 0.53, 0.33, 1}, // dark green
		{0.67, 0.32, 0.21, 1}, // brown
		{0.37, 0.34, 0.31, 1}, // dark gray
		{0.76, 0.76, 0.78, 1}, // light gray
		{1.00, 0.95, 0.91, 1}, // white
		{1.00, 0.00, 0.30, 1}, // red
		{1.00, 0.64, 0.00, 1}, // orange
		{1.00, 0.93, 0.15, 1}, // yellow
		{0.00, 0.89, 0.21, 1}, // green
		{0.16, 0.68, 1.00, 1}, // blue
		{0.51, 0.46, 0.61, 1}, // lavender
		{1.00, 0.47, 0.66, 1}, // pink
		{1.00, 0.80, 0.67, 1}, // peach
	}
}

// Clone returns an independent copy of the palette.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// Nearest returns the index of the palette color closest to c, measured in
// CIE Lab space. Returns 0 for an empty palette.
func (p Palette) Nearest(c color.Color) int {
	target, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent source pixel.
		return TransparentIndex
	}

	best := 0
	bestDist := -1.0
	for i, pc := range p {
		candidate, ok := colorful.MakeColor(pc.ToRGBA())
		if !ok {
			continue
		}
		d := target.DistanceLab(candidate)
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// PaletteFromImage derives a palette of up to PaletteSize colors from an
// image using median-cut quantization. Slot 0 is reserved for the
// background color, so at most PaletteSize-1 colors are taken from the
// image. Short results are padded with black.
func PaletteFromImage(m image.Image) Palette {
	q := quantize.MedianCutQuantizer{}
	quantized := q.Quantize(make(color.Palette, 0, PaletteSize-1), m)

	out := make(Palette, 0, PaletteSize)
	out = append(out, Color{0, 0, 0, 1})
	for _, c := range quantized {
		r, g, b, a := c.RGBA()
		out = append(out, Color{
			R: float64(r) / 0xffff,
			G: float64(g) / 0xffff,
			B: float64(b) / 0xffff,
			A: float64(a) / 0xffff,
		})
	}
	for len(out) < PaletteSize {
		out = append(out, Color{0, 0, 0, 1})
	}
	return out
}

// ImportImage remaps an image into the grid using nearest-palette matching.
// The image's top-left corner lands at grid (0, 0); pixels outside the grid
// are dropped by the grid's own bounds checks.
func ImportImage(g *Grid, m image.Image, p Palette) {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Set(x-b.Min.X, y-b.Min.Y, p.Nearest(m.At(x, y)))
		}
	}
}
