package stipple

import "fmt"

// Grid is the canonical storage for one sheet's pixels: a fixed-size
// row-major array of palette indices. All access is bounds-checked; reads
// outside the grid return TransparentIndex and writes outside the grid or
// with an invalid index are silently dropped. Fast pointer sampling
// routinely produces marginally out-of-range coordinates, so neither case
// is an error.
type Grid struct {
	width   int
	height  int
	colors  int // palette size; valid indices are [0, colors)
	data    []int
	version uint64
}

// NewGrid creates a Grid of the given dimensions holding indices into a
// palette of the given size. All pixels start at TransparentIndex.
func NewGrid(width, height, colors int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		colors: colors,
		data:   make([]int, width*height),
	}
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in pixels.
func (g *Grid) Height() int { return g.height }

// Colors returns the palette size this grid validates writes against.
func (g *Grid) Colors() int { return g.colors }

// Version returns a counter incremented on every mutation. Renderers use it
// to invalidate cached pixel images.
func (g *Grid) Version() uint64 { return g.version }

// InBounds reports whether (x, y) addresses a pixel inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the palette index at (x, y), or TransparentIndex when the
// coordinate is outside the grid.
func (g *Grid) Get(x, y int) int {
	if !g.InBounds(x, y) {
		return TransparentIndex
	}
	return g.data[y*g.width+x]
}

// Set writes a palette index at (x, y). Out-of-range coordinates and
// indices outside [0, Colors) are silently ignored.
func (g *Grid) Set(x, y, index int) {
	if !g.InBounds(x, y) || index < 0 || index >= g.colors {
		return
	}
	i := y*g.width + x
	if g.data[i] == index {
		return
	}
	g.data[i] = index
	g.version++
}

// Clear fills the whole grid with the given palette index. Invalid indices
// leave the grid untouched.
func (g *Grid) Clear(index int) {
	if index < 0 || index >= g.colors {
		return
	}
	for i := range g.data {
		g.data[i] = index
	}
	g.version++
}

// Snapshot returns the grid contents as a plain row-major nested slice.
// The result shares no storage with the grid and is the only representation
// exchanged with the persistence layer.
func (g *Grid) Snapshot() [][]int {
	rows := make([][]int, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]int, g.width)
		copy(row, g.data[y*g.width:(y+1)*g.width])
		rows[y] = row
	}
	return rows
}

// Restore replaces the grid contents from a nested slice previously
// produced by Snapshot. The buffer is validated in full before any pixel is
// written: a wrongly shaped buffer or an out-of-range index leaves the grid
// completely unchanged and returns an error.
func (g *Grid) Restore(rows [][]int) error {
	if len(rows) != g.height {
		return fmt.Errorf("stipple: snapshot has %d rows, grid expects %d", len(rows), g.height)
	}
	for y, row := range rows {
		if len(row) != g.width {
			return fmt.Errorf("stipple: snapshot row %d has %d columns, grid expects %d", y, len(row), g.width)
		}
		for x, v := range row {
			if v < 0 || v >= g.colors {
				return fmt.Errorf("stipple: snapshot index %d at (%d, %d) outside palette of %d", v, x, y, g.colors)
			}
		}
	}
	for y, row := range rows {
		copy(g.data[y*g.width:(y+1)*g.width], row)
	}
	g.version++
	return nil
}
