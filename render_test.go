package stipple

import "testing"

func TestSheetRendererDirtyFlags(t *testing.T) {
	e := newTestEditor()
	r := NewSheetRenderer(e)

	// Fresh renderer starts with both surfaces pending.
	if !r.Dirty(SurfaceSheet) || !r.Dirty(SurfaceCell) {
		t.Fatal("new renderer not marked dirty")
	}
	if r.Dirty(SurfaceSheet) || r.Dirty(SurfaceCell) {
		t.Fatal("Dirty did not clear the flags")
	}

	// Editing marks the affected surfaces dirty again.
	click(e.SheetSurface().Pointer, sheetPos(e, 4, 4))
	if !r.Dirty(SurfaceSheet) || !r.Dirty(SurfaceCell) {
		t.Error("opening a cell did not dirty the surfaces")
	}

	click(e.CellSurface().Pointer, cellPos(e, 2.5, 2.5))
	if !r.Dirty(SurfaceCell) {
		t.Error("painting did not dirty the cell surface")
	}
}

func TestNewSheetRendererInstallsItself(t *testing.T) {
	e := newTestEditor()
	r := NewSheetRenderer(e)
	if e.renderer != Renderer(r) {
		t.Error("renderer not installed on the editor")
	}
}
