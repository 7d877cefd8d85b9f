package stipple

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// RenderSheetImage rasterizes a sheet at an integer pixel scale. With
// cellLines set, cell boundaries are stroked on top of the artwork.
func RenderSheetImage(s *Sheet, scale int, cellLines bool) image.Image {
	if scale < 1 {
		scale = 1
	}
	w := s.Grid.Width()
	h := s.Grid.Height()
	dc := gg.NewContext(w*scale, h*scale)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := s.PaletteColor(s.Grid.Get(x, y))
			dc.SetRGBA(c.R, c.G, c.B, c.A)
			dc.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}

	if cellLines {
		dc.SetRGBA(1, 1, 1, 0.25)
		dc.SetLineWidth(1)
		for i := 0; i <= w/CellSize; i++ {
			p := float64(i * CellSize * scale)
			dc.DrawLine(p, 0, p, float64(h*scale))
			dc.Stroke()
		}
		for i := 0; i <= h/CellSize; i++ {
			p := float64(i * CellSize * scale)
			dc.DrawLine(0, p, float64(w*scale), p)
			dc.Stroke()
		}
	}

	return dc.Image()
}

// RenderCellImage rasterizes a single cell at an integer pixel scale.
// Cells outside the sheet render as all background.
func RenderCellImage(s *Sheet, c Cell, scale int) image.Image {
	if scale < 1 {
		scale = 1
	}
	ox, oy := s.CellOrigin(c)
	dc := gg.NewContext(CellSize*scale, CellSize*scale)
	for y := 0; y < CellSize; y++ {
		for x := 0; x < CellSize; x++ {
			col := s.PaletteColor(s.Grid.Get(ox+x, oy+y))
			dc.SetRGBA(col.R, col.G, col.B, col.A)
			dc.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}
	return dc.Image()
}

// ExportPNG writes a sheet to a PNG file at the given pixel scale.
func ExportPNG(s *Sheet, path string, scale int, cellLines bool) error {
	if err := gg.SavePNG(path, RenderSheetImage(s, scale, cellLines)); err != nil {
		return fmt.Errorf("stipple: export %s: %w", path, err)
	}
	return nil
}
