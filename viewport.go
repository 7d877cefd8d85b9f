package stipple

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default scale bounds for a viewport. A scale of 1 means one sheet pixel
// per canvas pixel.
const (
	DefaultMinScale = 0.5
	DefaultMaxScale = 64.0
)

// viewportAnim holds active tweens for pan X/Y and scale.
type viewportAnim struct {
	panX  *gween.Tween
	panY  *gween.Tween
	scale *gween.Tween
	doneX bool
	doneY bool
	doneS bool
}

// Viewport maps sheet content onto a drawing surface: a zoom scale, a pan
// offset anchored at the content center, and the device ratio between
// screen and canvas pixels.
//
// Three distinct spaces meet here. Screen coordinates come straight from
// the windowing layer; canvas coordinates are drawing-surface pixels; sheet
// coordinates are logical content pixels. The screen-to-canvas ratio is a
// property of the surface (backing resolution over layout size) and is
// independent of the content zoom — mixing the two is the classic source
// of off-by-scale bugs, so they are separate fields with separate methods.
type Viewport struct {
	// CanvasW and CanvasH are the drawing surface size in canvas pixels.
	CanvasW, CanvasH float64
	// ContentW and ContentH are the sheet content size in sheet pixels.
	ContentW, ContentH float64

	// Scale is canvas pixels per sheet pixel, clamped to [MinScale, MaxScale].
	Scale float64
	// Pan is the canvas-pixel offset of the content center from the canvas
	// center.
	Pan Vec2

	MinScale, MaxScale float64

	// deviceRatio is canvas pixels per screen pixel.
	deviceRatio float64

	anim *viewportAnim
}

// NewViewport creates a viewport over content of the given size rendered
// onto a canvas of the given size, scaled so the content initially fits.
func NewViewport(canvasW, canvasH, contentW, contentH float64) *Viewport {
	v := &Viewport{
		CanvasW:     canvasW,
		CanvasH:     canvasH,
		ContentW:    contentW,
		ContentH:    contentH,
		Scale:       1,
		MinScale:    DefaultMinScale,
		MaxScale:    DefaultMaxScale,
		deviceRatio: 1,
	}
	if contentW > 0 && contentH > 0 {
		v.Scale = v.clampScale(math.Min(canvasW/contentW, canvasH/contentH))
	}
	return v
}

// SetScreenSize records the surface's layout size in screen pixels, from
// which the screen-to-canvas device ratio is derived. Call whenever the
// surface's bounding rect changes.
func (v *Viewport) SetScreenSize(screenW, screenH float64) {
	if screenW <= 0 {
		return
	}
	v.deviceRatio = v.CanvasW / screenW
	_ = screenH // ratio is uniform; height kept for symmetry of the call site
}

// DeviceRatio returns canvas pixels per screen pixel.
func (v *Viewport) DeviceRatio() float64 { return v.deviceRatio }

func (v *Viewport) clampScale(s float64) float64 {
	return math.Max(v.MinScale, math.Min(s, v.MaxScale))
}

// SetScale sets the zoom scale, clamped to [MinScale, MaxScale], without
// adjusting pan. Most callers want ZoomAt instead.
func (v *Viewport) SetScale(s float64) {
	v.Scale = v.clampScale(s)
}

// --- Conversions ---

// ScreenToCanvas converts raw screen coordinates to canvas pixels via the
// device ratio. Content zoom plays no part in this conversion.
func (v *Viewport) ScreenToCanvas(sx, sy float64) Vec2 {
	return Vec2{X: sx * v.deviceRatio, Y: sy * v.deviceRatio}
}

// CanvasToSheet converts a canvas position to fractional sheet-pixel
// coordinates.
func (v *Viewport) CanvasToSheet(p Vec2) Vec2 {
	cx := v.CanvasW / 2
	cy := v.CanvasH / 2
	return Vec2{
		X: v.ContentW/2 + (p.X-cx-v.Pan.X)/v.Scale,
		Y: v.ContentH/2 + (p.Y-cy-v.Pan.Y)/v.Scale,
	}
}

// SheetToCanvas converts sheet-pixel coordinates to a canvas position.
func (v *Viewport) SheetToCanvas(s Vec2) Vec2 {
	cx := v.CanvasW / 2
	cy := v.CanvasH / 2
	return Vec2{
		X: cx + v.Pan.X + (s.X-v.ContentW/2)*v.Scale,
		Y: cy + v.Pan.Y + (s.Y-v.ContentH/2)*v.Scale,
	}
}

// CanvasToPixel converts a canvas position to integer sheet-pixel
// coordinates (floor). The result may lie outside the sheet; grid access
// is bounds-checked downstream.
func (v *Viewport) CanvasToPixel(p Vec2) (x, y int) {
	s := v.CanvasToSheet(p)
	return int(math.Floor(s.X)), int(math.Floor(s.Y))
}

// CanvasToCell converts a canvas position to the cell under it (floor).
// The result may lie outside the sheet.
func (v *Viewport) CanvasToCell(p Vec2) Cell {
	x, y := v.CanvasToPixel(p)
	return Cell{X: divFloor(x, CellSize), Y: divFloor(y, CellSize)}
}

// divFloor is integer division rounding toward negative infinity, so cells
// left of or above the sheet get negative coordinates instead of folding
// onto cell 0.
func divFloor(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// CellRect returns the canvas-space rectangle covering a cell, for overlay
// drawing (hover and selection outlines).
func (v *Viewport) CellRect(c Cell) Rect {
	tl := v.SheetToCanvas(Vec2{X: float64(c.X * CellSize), Y: float64(c.Y * CellSize)})
	size := CellSize * v.Scale
	return Rect{X: tl.X, Y: tl.Y, Width: size, Height: size}
}

// PixelRect returns the canvas-space rectangle covering one sheet pixel.
func (v *Viewport) PixelRect(x, y int) Rect {
	tl := v.SheetToCanvas(Vec2{X: float64(x), Y: float64(y)})
	return Rect{X: tl.X, Y: tl.Y, Width: v.Scale, Height: v.Scale}
}

// --- Gestures ---

// ZoomAt rescales the viewport by factor, keeping the content point under
// the given canvas position fixed on the canvas (anchor-preserving zoom).
// In the center-anchored frame q = p - canvasCenter:
//
//	newPan = q - (q - oldPan) * (newScale / oldScale)
func (v *Viewport) ZoomAt(p Vec2, factor float64) {
	old := v.Scale
	next := v.clampScale(old * factor)
	if next == old {
		return
	}
	qx := p.X - v.CanvasW/2
	qy := p.Y - v.CanvasH/2
	ratio := next / old
	v.Pan.X = qx - (qx-v.Pan.X)*ratio
	v.Pan.Y = qy - (qy-v.Pan.Y)*ratio
	v.Scale = next
}

// PanBy shifts the pan offset by a screen-space drag delta. The delta is
// converted to canvas pixels via the device ratio; the content zoom scale
// is deliberately not involved.
func (v *Viewport) PanBy(screenDX, screenDY float64) {
	v.Pan.X += screenDX * v.deviceRatio
	v.Pan.Y += screenDY * v.deviceRatio
}

// Center resets the pan offset so the content center sits at the canvas
// center.
func (v *Viewport) Center() {
	v.Pan = Vec2{}
}

// --- Animation ---

// ScrollTo animates the pan offset to the given value over duration
// seconds. Advance with Update.
func (v *Viewport) ScrollTo(pan Vec2, duration float32, easeFn ease.TweenFunc) {
	if v.anim == nil {
		v.anim = &viewportAnim{doneS: true}
	}
	v.anim.panX = gween.New(float32(v.Pan.X), float32(pan.X), duration, easeFn)
	v.anim.panY = gween.New(float32(v.Pan.Y), float32(pan.Y), duration, easeFn)
	v.anim.doneX = false
	v.anim.doneY = false
}

// ScrollToCell animates the pan offset so the given cell's center lands on
// the canvas center.
func (v *Viewport) ScrollToCell(c Cell, duration float32, easeFn ease.TweenFunc) {
	cellCX := float64(c.X*CellSize) + CellSize/2.0
	cellCY := float64(c.Y*CellSize) + CellSize/2.0
	v.ScrollTo(Vec2{
		X: (v.ContentW/2 - cellCX) * v.Scale,
		Y: (v.ContentH/2 - cellCY) * v.Scale,
	}, duration, easeFn)
}

// ZoomTo animates the scale to the given value over duration seconds,
// keeping the canvas center anchored.
func (v *Viewport) ZoomTo(scale float64, duration float32, easeFn ease.TweenFunc) {
	if v.anim == nil {
		v.anim = &viewportAnim{doneX: true, doneY: true}
	}
	v.anim.scale = gween.New(float32(v.Scale), float32(v.clampScale(scale)), duration, easeFn)
	v.anim.doneS = false
}

// Update advances any active scroll/zoom tween by dt seconds. Returns true
// while an animation is running so callers know to keep rendering.
func (v *Viewport) Update(dt float32) bool {
	if v.anim == nil {
		return false
	}
	a := v.anim
	if !a.doneX && a.panX != nil {
		val, done := a.panX.Update(dt)
		v.Pan.X = float64(val)
		a.doneX = done
	}
	if !a.doneY && a.panY != nil {
		val, done := a.panY.Update(dt)
		v.Pan.Y = float64(val)
		a.doneY = done
	}
	if !a.doneS && a.scale != nil {
		val, done := a.scale.Update(dt)
		// Re-anchor at the canvas center so the zoom animation behaves like
		// repeated ZoomAt(center) steps.
		old := v.Scale
		next := v.clampScale(float64(val))
		if old != 0 && next != old {
			ratio := next / old
			v.Pan.X *= ratio
			v.Pan.Y *= ratio
			v.Scale = next
		}
		a.doneS = done
	}
	if a.doneX && a.doneY && a.doneS {
		v.anim = nil
		return false
	}
	return true
}
