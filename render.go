package stipple

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay colors used by SheetRenderer.
var (
	hoverOutline     = color.RGBA{R: 255, G: 255, B: 255, A: 160}
	selectedOutline  = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	selectionOutline = color.RGBA{R: 80, G: 180, B: 255, A: 255}
	gridLineColor    = color.RGBA{R: 255, G: 255, B: 255, A: 28}
	cellLineColor    = color.RGBA{R: 255, G: 255, B: 255, A: 56}
)

// gridLineMinScale is the zoom scale below which per-pixel grid lines are
// not worth drawing.
const gridLineMinScale = 4.0

// cachedPixels is a sheet's grid rasterized into an ebiten image, rebuilt
// only when the grid version moves.
type cachedPixels struct {
	img     *ebiten.Image
	version uint64
	buf     []byte
}

// SheetRenderer is an Ebitengine implementation of the Renderer boundary.
// It keeps a nearest-filtered pixel image per sheet, invalidated by the
// grid's version counter, and draws viewport-transformed content plus
// hover/selection overlays. Render marks a surface dirty; the embedder
// calls Draw from its game loop.
type SheetRenderer struct {
	editor *Editor
	cache  map[string]*cachedPixels
	dirty  [2]bool
}

// NewSheetRenderer creates a renderer for the editor and installs itself
// as the editor's render collaborator.
func NewSheetRenderer(ed *Editor) *SheetRenderer {
	r := &SheetRenderer{
		editor: ed,
		cache:  map[string]*cachedPixels{},
		dirty:  [2]bool{true, true},
	}
	ed.SetRenderer(r)
	return r
}

// Render implements Renderer by flagging the surface for redraw.
func (r *SheetRenderer) Render(id SurfaceID) {
	r.dirty[id] = true
}

// Dirty reports whether the surface has pending changes and clears the
// flag. Embedders that skip redraws of clean frames check this before Draw.
func (r *SheetRenderer) Dirty(id SurfaceID) bool {
	d := r.dirty[id]
	r.dirty[id] = false
	return d
}

// Draw renders one surface onto dst. The destination size should match the
// viewport's canvas size set via Editor.ConfigureSurface.
func (r *SheetRenderer) Draw(dst *ebiten.Image, id SurfaceID) {
	sheet := r.editor.Doc.Focused()
	if sheet == nil {
		return
	}
	var surf *Surface
	if id == SurfaceCell {
		surf = r.editor.CellSurface()
	} else {
		surf = r.editor.SheetSurface()
	}
	v := surf.View

	src := r.pixels(sheet)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Translate(-v.ContentW/2, -v.ContentH/2)
	op.GeoM.Scale(v.Scale, v.Scale)
	op.GeoM.Translate(v.CanvasW/2+v.Pan.X, v.CanvasH/2+v.Pan.Y)
	dst.DrawImage(src, op)

	switch id {
	case SurfaceSheet:
		r.drawCellLines(dst, sheet, v)
		if hc := r.editor.HoverCell(); hc != NoCell {
			strokeRect(dst, v.CellRect(hc), hoverOutline)
		}
		if sc := r.editor.SelectedCell(); sc != NoCell {
			strokeRect(dst, v.CellRect(sc), selectedOutline)
		}
	case SurfaceCell:
		if v.Scale >= gridLineMinScale {
			r.drawPixelLines(dst, sheet, v)
		}
		if sel := r.editor.Selection(); sel.Active {
			minX, minY, maxX, maxY := sel.Normalized()
			tl := v.SheetToCanvas(Vec2{X: float64(minX), Y: float64(minY)})
			br := v.SheetToCanvas(Vec2{X: float64(maxX + 1), Y: float64(maxY + 1)})
			strokeRect(dst, Rect{X: tl.X, Y: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}, selectionOutline)
		}
	}
}

// pixels returns the cached rasterization of a sheet's grid, rebuilding it
// when the grid has mutated since the last draw.
func (r *SheetRenderer) pixels(sheet *Sheet) *ebiten.Image {
	w := sheet.Grid.Width()
	h := sheet.Grid.Height()

	c := r.cache[sheet.ID]
	if c == nil {
		c = &cachedPixels{
			img: ebiten.NewImage(w, h),
			buf: make([]byte, w*h*4),
		}
		c.version = sheet.Grid.Version() + 1 // force first fill
		r.cache[sheet.ID] = c
	}
	if c.version == sheet.Grid.Version() {
		return c.img
	}

	pal := make([]color.RGBA, sheet.Grid.Colors())
	for i := range pal {
		pal[i] = sheet.PaletteColor(i).ToRGBA()
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rgba := pal[sheet.Grid.Get(x, y)]
			i := (y*w + x) * 4
			c.buf[i+0] = rgba.R
			c.buf[i+1] = rgba.G
			c.buf[i+2] = rgba.B
			c.buf[i+3] = rgba.A
		}
	}
	c.img.WritePixels(c.buf)
	c.version = sheet.Grid.Version()
	return c.img
}

// drawCellLines draws the cell boundaries of the sheet view.
func (r *SheetRenderer) drawCellLines(dst *ebiten.Image, sheet *Sheet, v *Viewport) {
	n := sheet.Kind.Cells()
	for i := 0; i <= n; i++ {
		p := float64(i * CellSize)
		a := v.SheetToCanvas(Vec2{X: p, Y: 0})
		b := v.SheetToCanvas(Vec2{X: p, Y: v.ContentH})
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, cellLineColor, false)
		a = v.SheetToCanvas(Vec2{X: 0, Y: p})
		b = v.SheetToCanvas(Vec2{X: v.ContentW, Y: p})
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, cellLineColor, false)
	}
}

// drawPixelLines draws per-pixel grid lines over the visible part of the
// zoomed view.
func (r *SheetRenderer) drawPixelLines(dst *ebiten.Image, sheet *Sheet, v *Viewport) {
	// Visible sheet-pixel range.
	tl := v.CanvasToSheet(Vec2{X: 0, Y: 0})
	br := v.CanvasToSheet(Vec2{X: v.CanvasW, Y: v.CanvasH})
	x0 := clampInt(int(tl.X), 0, sheet.Grid.Width())
	x1 := clampInt(int(br.X)+1, 0, sheet.Grid.Width())
	y0 := clampInt(int(tl.Y), 0, sheet.Grid.Height())
	y1 := clampInt(int(br.Y)+1, 0, sheet.Grid.Height())

	for x := x0; x <= x1; x++ {
		a := v.SheetToCanvas(Vec2{X: float64(x), Y: float64(y0)})
		b := v.SheetToCanvas(Vec2{X: float64(x), Y: float64(y1)})
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, gridLineColor, false)
	}
	for y := y0; y <= y1; y++ {
		a := v.SheetToCanvas(Vec2{X: float64(x0), Y: float64(y)})
		b := v.SheetToCanvas(Vec2{X: float64(x1), Y: float64(y)})
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, gridLineColor, false)
	}
}

func strokeRect(dst *ebiten.Image, r Rect, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, clr, false)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
