package stipple

// Selection is a rectangular region of sheet pixels defined by two
// un-normalized corners. The corner order preserves the drag direction, so
// a selection dragged up-left keeps its anchor where the drag started.
// Either corner, or the whole rectangle, may lie outside the grid;
// operations clip as they go.
type Selection struct {
	X1, Y1 int
	X2, Y2 int
	Active bool
}

// NewSelection returns an active selection anchored at (x, y) with both
// corners on the same pixel.
func NewSelection(x, y int) Selection {
	return Selection{X1: x, Y1: y, X2: x, Y2: y, Active: true}
}

// Normalized returns the selection's corners ordered as
// (minX, minY, maxX, maxY), inclusive.
func (s Selection) Normalized() (minX, minY, maxX, maxY int) {
	minX, maxX = s.X1, s.X2
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY = s.Y1, s.Y2
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return
}

// Translate returns the selection shifted by (dx, dy).
func (s Selection) Translate(dx, dy int) Selection {
	return Selection{
		X1: s.X1 + dx, Y1: s.Y1 + dy,
		X2: s.X2 + dx, Y2: s.Y2 + dy,
		Active: s.Active,
	}
}

// Contains reports whether the pixel (x, y) lies inside the selection.
func (s Selection) Contains(x, y int) bool {
	minX, minY, maxX, maxY := s.Normalized()
	return s.Active && x >= minX && x <= maxX && y >= minY && y <= maxY
}

// Clipboard holds a rectangular snapshot of palette indices. Cells whose
// value is TransparentIndex are treated as empty on paste, so pasting never
// stamps a full opaque rectangle over existing artwork.
type Clipboard struct {
	W, H int
	data []int
}

// Empty reports whether the clipboard holds no cells.
func (cb *Clipboard) Empty() bool {
	return cb == nil || cb.W == 0 || cb.H == 0
}

// At returns the clipboard value at (x, y), or TransparentIndex outside
// the snapshot.
func (cb *Clipboard) At(x, y int) int {
	if cb == nil || x < 0 || x >= cb.W || y < 0 || y >= cb.H {
		return TransparentIndex
	}
	return cb.data[y*cb.W+x]
}

// Copy snapshots the selected region of the grid. The selection is
// normalized and clipped to the grid first; a selection entirely outside
// the grid yields an empty clipboard.
func Copy(g *Grid, sel Selection) *Clipboard {
	minX, minY, maxX, maxY := sel.Normalized()
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= g.Width() {
		maxX = g.Width() - 1
	}
	if maxY >= g.Height() {
		maxY = g.Height() - 1
	}
	if minX > maxX || minY > maxY {
		return &Clipboard{}
	}

	cb := &Clipboard{W: maxX - minX + 1, H: maxY - minY + 1}
	cb.data = make([]int, cb.W*cb.H)
	for y := 0; y < cb.H; y++ {
		for x := 0; x < cb.W; x++ {
			cb.data[y*cb.W+x] = g.Get(minX+x, minY+y)
		}
	}
	return cb
}

// Paste writes the clipboard into the grid with its top-left corner at
// (originX, originY), as a single undo stroke. Cells holding the
// transparent sentinel and cells landing outside the grid are skipped, so
// a paste composes over existing pixels instead of replacing them.
func Paste(g *Grid, h *History, sheetID string, cb *Clipboard, originX, originY int) {
	if cb.Empty() {
		return
	}
	h.BeginStroke(sheetID)
	defer h.EndStroke()

	for y := 0; y < cb.H; y++ {
		for x := 0; x < cb.W; x++ {
			v := cb.At(x, y)
			if v == TransparentIndex {
				continue
			}
			dx := originX + x
			dy := originY + y
			if !g.InBounds(dx, dy) {
				continue
			}
			h.RecordChange(dx, dy, g.Get(dx, dy), v)
			g.Set(dx, dy, v)
		}
	}
}

// Cut copies the selected region and then clears it to TransparentIndex in
// a single undo stroke. Returns the snapshot.
func Cut(g *Grid, h *History, sheetID string, sel Selection) *Clipboard {
	cb := Copy(g, sel)
	if cb.Empty() {
		return cb
	}
	h.BeginStroke(sheetID)
	defer h.EndStroke()

	minX, minY, maxX, maxY := sel.Normalized()
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !g.InBounds(x, y) {
				continue
			}
			h.RecordChange(x, y, g.Get(x, y), TransparentIndex)
			g.Set(x, y, TransparentIndex)
		}
	}
	return cb
}

// Move shifts the selected region by (dx, dy) in a single undo stroke.
//
// Only in-bounds source pixels carry data; a source outside the grid is
// absent, never an implicit zero. Vacated pixels that the moved footprint
// does not re-cover are cleared to TransparentIndex. The clear happens
// before the writes but skips re-covered pixels entirely, so a short move
// never clears a pixel it is about to overwrite. Destinations outside the
// grid are dropped.
func Move(g *Grid, h *History, sheetID string, sel Selection, dx, dy int) {
	minX, minY, maxX, maxY := sel.Normalized()
	w := maxX - minX + 1
	height := maxY - minY + 1
	if w <= 0 || height <= 0 {
		return
	}

	// Capture in-bounds source pixels.
	values := make([]int, w*height)
	present := make([]bool, w*height)
	for y := 0; y < height; y++ {
		for x := 0; x < w; x++ {
			sx := minX + x
			sy := minY + y
			if g.InBounds(sx, sy) {
				values[y*w+x] = g.Get(sx, sy)
				present[y*w+x] = true
			}
		}
	}

	newMinX := minX + dx
	newMinY := minY + dy
	newMaxX := maxX + dx
	newMaxY := maxY + dy
	covered := func(x, y int) bool {
		return x >= newMinX && x <= newMaxX && y >= newMinY && y <= newMaxY
	}

	h.BeginStroke(sheetID)
	defer h.EndStroke()

	// Clear vacated pixels not re-covered by the moved footprint.
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !g.InBounds(x, y) || covered(x, y) {
				continue
			}
			h.RecordChange(x, y, g.Get(x, y), TransparentIndex)
			g.Set(x, y, TransparentIndex)
		}
	}

	// Write captured pixels into the new footprint.
	for y := 0; y < height; y++ {
		for x := 0; x < w; x++ {
			if !present[y*w+x] {
				continue
			}
			tx := minX + x + dx
			ty := minY + y + dy
			if !g.InBounds(tx, ty) {
				continue
			}
			v := values[y*w+x]
			h.RecordChange(tx, ty, g.Get(tx, ty), v)
			g.Set(tx, ty, v)
		}
	}
}
