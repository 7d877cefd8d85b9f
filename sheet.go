package stipple

// SheetKind selects the fixed dimensions of a sprite sheet.
type SheetKind uint8

const (
	// Sheet128 is a 128x128 pixel sheet: 16x16 cells.
	Sheet128 SheetKind = iota
	// Sheet256 is a 256x256 pixel sheet: 32x32 cells.
	Sheet256
)

// Size returns the sheet edge length in pixels.
func (k SheetKind) Size() int {
	if k == Sheet256 {
		return 256
	}
	return 128
}

// Cells returns the number of cells along one sheet edge.
func (k SheetKind) Cells() int {
	return k.Size() / CellSize
}

// Sheet is one sprite sheet: a pixel grid plus its palette. The grid is
// owned exclusively by the sheet and mutated only through its checked
// setters.
type Sheet struct {
	ID      string
	Kind    SheetKind
	Grid    *Grid
	palette Palette
}

// NewSheet creates an empty sheet of the given kind with the default
// palette.
func NewSheet(id string, kind SheetKind) *Sheet {
	return NewSheetWithPalette(id, kind, DefaultPalette())
}

// NewSheetWithPalette creates an empty sheet with a caller-supplied
// palette. The palette is copied and fixed for the sheet's lifetime.
func NewSheetWithPalette(id string, kind SheetKind, p Palette) *Sheet {
	return &Sheet{
		ID:      id,
		Kind:    kind,
		Grid:    NewGrid(kind.Size(), kind.Size(), len(p)),
		palette: p.Clone(),
	}
}

// Palette returns a copy of the sheet's palette.
func (s *Sheet) Palette() Palette {
	return s.palette.Clone()
}

// PaletteColor returns the color for a palette index, or an opaque black
// for out-of-range indices.
func (s *Sheet) PaletteColor(index int) Color {
	if index < 0 || index >= len(s.palette) {
		return Color{0, 0, 0, 1}
	}
	return s.palette[index]
}

// CellInBounds reports whether the cell coordinate addresses a cell inside
// the sheet.
func (s *Sheet) CellInBounds(c Cell) bool {
	n := s.Kind.Cells()
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

// CellOrigin returns the sheet-pixel coordinate of a cell's top-left pixel.
func (s *Sheet) CellOrigin(c Cell) (x, y int) {
	return c.X * CellSize, c.Y * CellSize
}
