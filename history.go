package stipple

import (
	"fmt"
	"os"
)

// DefaultMaxStrokes is the default bound on the undo stack. The oldest
// stroke is evicted when the bound is exceeded.
const DefaultMaxStrokes = 50

// PixelChange records one pixel mutation inside a stroke.
type PixelChange struct {
	X, Y     int
	OldIndex int
	NewIndex int
}

// Stroke is one undoable atomic group of pixel changes: a continuous pencil
// drag, a paste, a selection move. Every stroke is tagged with the sheet it
// mutated so a shared per-document history stays unambiguous.
type Stroke struct {
	SheetID string
	Changes []PixelChange
}

// History is a bounded, per-document undo/redo log of strokes. Strokes are
// pushed in the order they complete and never reordered. Completing a new
// stroke clears the redo stack.
type History struct {
	// MaxStrokes bounds the undo stack; zero or negative falls back to
	// DefaultMaxStrokes.
	MaxStrokes int

	undo []*Stroke
	redo []*Stroke
	open *Stroke
}

// NewHistory creates an empty history with the default stroke bound.
func NewHistory() *History {
	return &History{MaxStrokes: DefaultMaxStrokes}
}

// BeginStroke opens a stroke for the given sheet. Opening a stroke while
// one is already open is a caller bug: it warns on stderr and keeps the
// existing stroke rather than losing recorded changes.
func (h *History) BeginStroke(sheetID string) {
	if h.open != nil {
		_, _ = fmt.Fprintf(os.Stderr,
			"[stipple] warning: BeginStroke(%q) with stroke already open for %q\n",
			sheetID, h.open.SheetID)
		return
	}
	h.open = &Stroke{SheetID: sheetID}
}

// StrokeOpen reports whether a stroke is currently being recorded.
func (h *History) StrokeOpen() bool { return h.open != nil }

// RecordChange appends a pixel change to the open stroke. Changes where the
// old and new index are equal are dropped, keeping strokes minimal. A
// no-op without an open stroke.
func (h *History) RecordChange(x, y, oldIndex, newIndex int) {
	if h.open == nil || oldIndex == newIndex {
		return
	}
	h.open.Changes = append(h.open.Changes, PixelChange{
		X: x, Y: y, OldIndex: oldIndex, NewIndex: newIndex,
	})
}

// EndStroke closes the open stroke. An empty stroke is discarded; a
// non-empty one is pushed onto the undo stack (evicting the oldest past
// MaxStrokes) and invalidates the redo stack. A no-op without an open
// stroke.
func (h *History) EndStroke() {
	s := h.open
	h.open = nil
	if s == nil || len(s.Changes) == 0 {
		return
	}

	h.undo = append(h.undo, s)
	max := h.MaxStrokes
	if max <= 0 {
		max = DefaultMaxStrokes
	}
	if len(h.undo) > max {
		// Evict the oldest; shift rather than reslice so the backing array
		// doesn't pin evicted strokes.
		copy(h.undo, h.undo[1:])
		h.undo[len(h.undo)-1] = nil
		h.undo = h.undo[:len(h.undo)-1]
	}
	if len(h.redo) > 0 {
		h.redo = h.redo[:0]
	}
}

// Undo pops the most recent stroke and moves it to the redo stack. The
// caller applies the stroke's OldIndex values. Returns nil when there is
// nothing to undo.
func (h *History) Undo() *Stroke {
	if len(h.undo) == 0 {
		return nil
	}
	s := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, s)
	return s
}

// Redo pops the most recently undone stroke and moves it back to the undo
// stack. The caller applies the stroke's NewIndex values. Returns nil when
// there is nothing to redo.
func (h *History) Redo() *Stroke {
	if len(h.redo) == 0 {
		return nil
	}
	s := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, s)
	return s
}

// UndoDepth returns the number of strokes available to undo.
func (h *History) UndoDepth() int { return len(h.undo) }

// RedoDepth returns the number of strokes available to redo.
func (h *History) RedoDepth() int { return len(h.redo) }

// ApplyUndo writes a stroke's old values back into a grid, in reverse
// record order so overlapping writes within one stroke unwind correctly.
func ApplyUndo(g *Grid, s *Stroke) {
	for i := len(s.Changes) - 1; i >= 0; i-- {
		ch := s.Changes[i]
		g.Set(ch.X, ch.Y, ch.OldIndex)
	}
}

// ApplyRedo reapplies a stroke's new values to a grid in record order.
func ApplyRedo(g *Grid, s *Stroke) {
	for _, ch := range s.Changes {
		g.Set(ch.X, ch.Y, ch.NewIndex)
	}
}
