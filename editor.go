package stipple

// SurfaceID names one of the two editing surfaces.
type SurfaceID uint8

const (
	// SurfaceSheet is the whole-sheet minimap with cell selection.
	SurfaceSheet SurfaceID = iota
	// SurfaceCell is the zoomed single-cell editing view.
	SurfaceCell
)

// Renderer is the output boundary of the core. The editor invokes Render
// after every state-changing operation; how grid, viewport, and overlay
// state become pixels is the renderer's business.
type Renderer interface {
	Render(id SurfaceID)
}

// Tool selects what a primary-button gesture does on the cell surface.
type Tool uint8

const (
	// ToolPencil paints with the editor's current color index.
	ToolPencil Tool = iota
	// ToolSelect drags out a rectangular pixel selection.
	ToolSelect
)

// KeyOp is a keyboard operation already decoded by the input layer
// (ctrl+Z/Y/C/V/X, delete, arrows).
type KeyOp uint8

const (
	KeyNone KeyOp = iota
	KeyUndo
	KeyRedo
	KeyCopy
	KeyPaste
	KeyCut
	KeyDelete
	KeyMoveLeft
	KeyMoveRight
	KeyMoveUp
	KeyMoveDown
)

// EditorEventType identifies a kind of editor event for the event sink.
type EditorEventType uint8

const (
	EventPixelChange EditorEventType = iota
	EventCellClick
	EventCellHover
	EventScaleChange
)

// EditorEvent is the event value published to an EventSink.
type EditorEvent struct {
	Type    EditorEventType
	SheetID string
	CellX   int
	CellY   int
	Scale   float64
}

// EventSink receives editor events. The stipple/ecs sub-module provides a
// Donburi-backed implementation.
type EventSink interface {
	EmitEvent(EditorEvent)
}

// Document is one editing session: an ordered set of sheets sharing a
// single sheet-tagged History. The clipboard lives on the Editor and
// survives sheet switches; everything else transient is per-surface.
type Document struct {
	Sheets  []*Sheet
	History *History

	focused int
}

// NewDocument creates a document over the given sheets with a fresh
// history. At least one sheet is required; the first is focused.
func NewDocument(sheets ...*Sheet) *Document {
	return &Document{Sheets: sheets, History: NewHistory()}
}

// Focused returns the currently focused sheet, or nil for an empty
// document.
func (d *Document) Focused() *Sheet {
	if d.focused < 0 || d.focused >= len(d.Sheets) {
		return nil
	}
	return d.Sheets[d.focused]
}

// FocusedIndex returns the index of the focused sheet.
func (d *Document) FocusedIndex() int { return d.focused }

// Focus switches the focused sheet. Any stroke still open on the previous
// sheet is finalized first so the history never carries a dangling stroke
// across a focus change.
func (d *Document) Focus(i int) {
	if i < 0 || i >= len(d.Sheets) || i == d.focused {
		return
	}
	if d.History.StrokeOpen() {
		d.History.EndStroke()
	}
	d.focused = i
}

// SheetByID returns the sheet with the given ID, or nil.
func (d *Document) SheetByID(id string) *Sheet {
	for _, s := range d.Sheets {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Surface bundles the viewport and pointer controller for one editing
// surface.
type Surface struct {
	ID      SurfaceID
	View    *Viewport
	Pointer *PointerController
}

// Editor wires the pixel grid, viewports, pointer controllers, history,
// and clipboard into the two editing surfaces: a sheet minimap for picking
// cells and a zoomed cell view for per-pixel work. Everything runs
// synchronously on the caller's event loop; the editor performs no internal
// batching or scheduling.
type Editor struct {
	Doc *Document

	// ColorIndex is the palette index the pencil paints with.
	ColorIndex int
	// WheelZoomStep is the zoom factor applied per wheel notch.
	WheelZoomStep float64

	// Output collaborators.
	OnCellHover   func(x, y int)
	OnCellClick   func(x, y int)
	OnScaleChange func(scale float64)
	OnPixelChange func()

	sheet *Surface
	cell  *Surface

	tool         Tool
	selection    Selection
	clipboard    *Clipboard
	hoverCell    Cell
	selectedCell Cell
	hoverPixelX  int
	hoverPixelY  int

	renderer Renderer
	sink     EventSink
}

// DefaultWheelZoomStep is the per-notch zoom factor applied on wheel input.
const DefaultWheelZoomStep = 1.25

// defaultCanvasSize is the surface canvas size assumed until the embedder
// calls ConfigureSurface with real dimensions.
const defaultCanvasSize = 512

// NewEditor creates an editor over a document. Surfaces start with a
// square default canvas; call ConfigureSurface once real surface sizes are
// known.
func NewEditor(doc *Document) *Editor {
	e := &Editor{
		Doc:           doc,
		ColorIndex:    1,
		WheelZoomStep: DefaultWheelZoomStep,
		hoverCell:     NoCell,
		selectedCell:  NoCell,
		hoverPixelX:   -1,
		hoverPixelY:   -1,
	}

	size := float64(defaultCanvasSize)
	content := 128.0
	if s := doc.Focused(); s != nil {
		content = float64(s.Kind.Size())
	}

	e.sheet = &Surface{
		ID:      SurfaceSheet,
		View:    NewViewport(size, size, content, content),
		Pointer: NewPointerController(),
	}
	e.sheet.Pointer.Mode = DragPan

	e.cell = &Surface{
		ID:      SurfaceCell,
		View:    NewViewport(size, size, content, content),
		Pointer: NewPointerController(),
	}
	e.cell.View.Scale = e.cell.View.clampScale(size / CellSize)

	e.wireSheetSurface()
	e.wireCellSurface()
	return e
}

// SheetSurface returns the minimap surface.
func (e *Editor) SheetSurface() *Surface { return e.sheet }

// CellSurface returns the zoomed cell surface.
func (e *Editor) CellSurface() *Surface { return e.cell }

// SetRenderer installs the render collaborator.
func (e *Editor) SetRenderer(r Renderer) { e.renderer = r }

// SetEventSink installs an event sink (see stipple/ecs).
func (e *Editor) SetEventSink(s EventSink) { e.sink = s }

// ConfigureSurface sets a surface's canvas size and screen layout size,
// re-deriving the device ratio.
func (e *Editor) ConfigureSurface(id SurfaceID, canvasW, canvasH, screenW, screenH float64) {
	v := e.surface(id).View
	v.CanvasW = canvasW
	v.CanvasH = canvasH
	v.SetScreenSize(screenW, screenH)
}

func (e *Editor) surface(id SurfaceID) *Surface {
	if id == SurfaceCell {
		return e.cell
	}
	return e.sheet
}

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// SetTool switches the active tool. The selection is transient tool state
// and is dropped on a tool change.
func (e *Editor) SetTool(t Tool) {
	if t == e.tool {
		return
	}
	e.tool = t
	e.selection = Selection{}
	e.render(SurfaceCell)
}

// Selection returns the current pixel selection.
func (e *Editor) Selection() Selection { return e.selection }

// HoverCell returns the cell under the pointer on the sheet surface, or
// NoCell.
func (e *Editor) HoverCell() Cell { return e.hoverCell }

// SelectedCell returns the cell open in the zoomed view, or NoCell.
func (e *Editor) SelectedCell() Cell { return e.selectedCell }

// ClipboardContents returns the current clipboard, which may be nil.
// Clipboard contents persist across sheet switches.
func (e *Editor) ClipboardContents() *Clipboard { return e.clipboard }

// SelectSheet focuses another sheet of the document. Pending strokes are
// finalized, the selection is cleared, and the clipboard is kept.
func (e *Editor) SelectSheet(i int) {
	if i == e.Doc.FocusedIndex() {
		return
	}
	e.sheet.Pointer.Cancel()
	e.cell.Pointer.Cancel()
	e.Doc.Focus(i)
	e.selection = Selection{}
	e.hoverCell = NoCell
	e.selectedCell = NoCell
	if s := e.Doc.Focused(); s != nil {
		content := float64(s.Kind.Size())
		e.sheet.View.ContentW = content
		e.sheet.View.ContentH = content
		e.cell.View.ContentW = content
		e.cell.View.ContentH = content
	}
	e.render(SurfaceSheet)
	e.render(SurfaceCell)
}

// --- Sheet surface wiring ---

func (e *Editor) wireSheetSurface() {
	p := e.sheet.Pointer
	v := e.sheet.View

	p.OnHover = func(s PointerSample) {
		cell := v.CanvasToCell(v.ScreenToCanvas(s.X, s.Y))
		sheet := e.Doc.Focused()
		if sheet == nil || !sheet.CellInBounds(cell) {
			cell = NoCell
		}
		if cell == e.hoverCell {
			return
		}
		e.hoverCell = cell
		if e.OnCellHover != nil {
			e.OnCellHover(cell.X, cell.Y)
		}
		e.emit(EditorEvent{Type: EventCellHover, SheetID: e.focusedID(), CellX: cell.X, CellY: cell.Y})
		e.render(SurfaceSheet)
	}

	p.OnClick = func(s PointerSample) {
		cell := v.CanvasToCell(v.ScreenToCanvas(s.X, s.Y))
		sheet := e.Doc.Focused()
		if sheet == nil || !sheet.CellInBounds(cell) {
			return
		}
		e.openCell(cell)
	}

	p.OnPan = func(dx, dy float64) {
		v.PanBy(dx, dy)
		e.render(SurfaceSheet)
	}

	p.OnFinish = func(PointerSample) {
		e.render(SurfaceSheet)
	}

	p.OnWheel = func(s PointerSample, deltaY float64) {
		e.zoom(e.sheet, s, deltaY)
	}
}

// openCell selects a cell and aims the zoomed view at it.
func (e *Editor) openCell(cell Cell) {
	e.selectedCell = cell
	v := e.cell.View
	v.Scale = v.clampScale(v.CanvasW / CellSize)
	cellCX := float64(cell.X*CellSize) + CellSize/2.0
	cellCY := float64(cell.Y*CellSize) + CellSize/2.0
	v.Pan = Vec2{
		X: (v.ContentW/2 - cellCX) * v.Scale,
		Y: (v.ContentH/2 - cellCY) * v.Scale,
	}
	if e.OnCellClick != nil {
		e.OnCellClick(cell.X, cell.Y)
	}
	e.emit(EditorEvent{Type: EventCellClick, SheetID: e.focusedID(), CellX: cell.X, CellY: cell.Y})
	e.render(SurfaceSheet)
	e.render(SurfaceCell)
}

// --- Cell surface wiring ---

func (e *Editor) wireCellSurface() {
	p := e.cell.Pointer
	v := e.cell.View

	p.OnHover = func(s PointerSample) {
		x, y := v.CanvasToPixel(v.ScreenToCanvas(s.X, s.Y))
		if x == e.hoverPixelX && y == e.hoverPixelY {
			return
		}
		e.hoverPixelX = x
		e.hoverPixelY = y
		e.render(SurfaceCell)
	}

	p.OnClick = func(s PointerSample) {
		x, y := v.CanvasToPixel(v.ScreenToCanvas(s.X, s.Y))
		switch e.tool {
		case ToolPencil:
			// A sub-threshold press paints exactly one pixel as its own
			// stroke.
			e.Doc.History.BeginStroke(e.focusedID())
			e.paintPixel(x, y)
			e.Doc.History.EndStroke()
			e.render(SurfaceSheet)
			e.render(SurfaceCell)
		case ToolSelect:
			e.selection = NewSelection(x, y)
			e.render(SurfaceCell)
		}
	}

	p.OnPaintStart = func(s PointerSample) {
		x, y := v.CanvasToPixel(v.ScreenToCanvas(s.X, s.Y))
		switch e.tool {
		case ToolPencil:
			e.Doc.History.BeginStroke(e.focusedID())
			e.paintPixel(x, y)
		case ToolSelect:
			e.selection = NewSelection(x, y)
		}
	}

	p.OnPaint = func(s PointerSample) {
		x, y := v.CanvasToPixel(v.ScreenToCanvas(s.X, s.Y))
		switch e.tool {
		case ToolPencil:
			e.paintPixel(x, y)
		case ToolSelect:
			e.selection.X2 = x
			e.selection.Y2 = y
		}
		e.render(SurfaceCell)
	}

	p.OnPan = func(dx, dy float64) {
		v.PanBy(dx, dy)
		e.render(SurfaceCell)
	}

	p.OnFinish = func(PointerSample) {
		if e.tool == ToolPencil && e.Doc.History.StrokeOpen() {
			e.Doc.History.EndStroke()
		}
		e.render(SurfaceSheet)
		e.render(SurfaceCell)
	}

	p.OnWheel = func(s PointerSample, deltaY float64) {
		e.zoom(e.cell, s, deltaY)
	}
}

// zoom applies an anchor-preserving wheel zoom to a surface.
func (e *Editor) zoom(surf *Surface, s PointerSample, deltaY float64) {
	factor := e.WheelZoomStep
	if factor <= 0 {
		factor = DefaultWheelZoomStep
	}
	if deltaY > 0 {
		factor = 1 / factor
	}
	v := surf.View
	old := v.Scale
	v.ZoomAt(v.ScreenToCanvas(s.X, s.Y), factor)
	if v.Scale != old {
		if e.OnScaleChange != nil {
			e.OnScaleChange(v.Scale)
		}
		e.emit(EditorEvent{Type: EventScaleChange, SheetID: e.focusedID(), Scale: v.Scale})
		e.render(surf.ID)
	}
}

// paintPixel writes the current color at a sheet pixel, recording the
// change in the open stroke. Out-of-range coordinates and colors fall
// through the grid's own checks and record nothing.
func (e *Editor) paintPixel(x, y int) {
	sheet := e.Doc.Focused()
	if sheet == nil {
		return
	}
	g := sheet.Grid
	if !g.InBounds(x, y) || e.ColorIndex < 0 || e.ColorIndex >= g.Colors() {
		return
	}
	old := g.Get(x, y)
	if old == e.ColorIndex {
		return
	}
	e.Doc.History.RecordChange(x, y, old, e.ColorIndex)
	g.Set(x, y, e.ColorIndex)
	e.pixelsChanged()
}

// --- Keyboard operations ---

// Key applies a decoded keyboard operation.
func (e *Editor) Key(op KeyOp) {
	sheet := e.Doc.Focused()
	if sheet == nil {
		return
	}
	h := e.Doc.History

	switch op {
	case KeyUndo:
		if s := h.Undo(); s != nil {
			if target := e.Doc.SheetByID(s.SheetID); target != nil {
				ApplyUndo(target.Grid, s)
				e.pixelsChanged()
				e.renderAll()
			}
		}
	case KeyRedo:
		if s := h.Redo(); s != nil {
			if target := e.Doc.SheetByID(s.SheetID); target != nil {
				ApplyRedo(target.Grid, s)
				e.pixelsChanged()
				e.renderAll()
			}
		}
	case KeyCopy:
		if e.selection.Active {
			e.clipboard = Copy(sheet.Grid, e.selection)
		}
	case KeyCut:
		if e.selection.Active {
			e.clipboard = Cut(sheet.Grid, h, sheet.ID, e.selection)
			e.pixelsChanged()
			e.renderAll()
		}
	case KeyPaste:
		if !e.clipboard.Empty() {
			ox, oy := 0, 0
			if e.selection.Active {
				ox, oy, _, _ = e.selection.Normalized()
			}
			Paste(sheet.Grid, h, sheet.ID, e.clipboard, ox, oy)
			e.pixelsChanged()
			e.renderAll()
		}
	case KeyDelete:
		if e.selection.Active {
			Cut(sheet.Grid, h, sheet.ID, e.selection)
			e.pixelsChanged()
			e.renderAll()
		}
	case KeyMoveLeft:
		e.moveSelection(-1, 0)
	case KeyMoveRight:
		e.moveSelection(1, 0)
	case KeyMoveUp:
		e.moveSelection(0, -1)
	case KeyMoveDown:
		e.moveSelection(0, 1)
	}
}

func (e *Editor) moveSelection(dx, dy int) {
	if !e.selection.Active {
		return
	}
	sheet := e.Doc.Focused()
	Move(sheet.Grid, e.Doc.History, sheet.ID, e.selection, dx, dy)
	e.selection = e.selection.Translate(dx, dy)
	e.pixelsChanged()
	e.renderAll()
}

// --- Output plumbing ---

func (e *Editor) focusedID() string {
	if s := e.Doc.Focused(); s != nil {
		return s.ID
	}
	return ""
}

func (e *Editor) pixelsChanged() {
	if e.OnPixelChange != nil {
		e.OnPixelChange()
	}
	e.emit(EditorEvent{Type: EventPixelChange, SheetID: e.focusedID()})
}

func (e *Editor) render(id SurfaceID) {
	if e.renderer != nil {
		e.renderer.Render(id)
	}
}

func (e *Editor) renderAll() {
	e.render(SurfaceSheet)
	e.render(SurfaceCell)
}

func (e *Editor) emit(ev EditorEvent) {
	if e.sink != nil {
		e.sink.EmitEvent(ev)
	}
}
