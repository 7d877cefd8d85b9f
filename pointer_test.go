package stipple

import "testing"

// pointerRecorder wires every controller callback to a counter so tests can
// assert on exactly which gestures fired.
type pointerRecorder struct {
	hovers      []PointerSample
	clicks      []PointerSample
	paintStarts []PointerSample
	paints      []PointerSample
	finishes    []PointerSample
	panDX       float64
	panDY       float64
	pans        int
	wheels      []float64
}

func newRecordedController(mode DragMode) (*PointerController, *pointerRecorder) {
	rec := &pointerRecorder{}
	c := NewPointerController()
	c.Mode = mode
	c.OnHover = func(s PointerSample) { rec.hovers = append(rec.hovers, s) }
	c.OnClick = func(s PointerSample) { rec.clicks = append(rec.clicks, s) }
	c.OnPaintStart = func(s PointerSample) { rec.paintStarts = append(rec.paintStarts, s) }
	c.OnPaint = func(s PointerSample) { rec.paints = append(rec.paints, s) }
	c.OnPan = func(dx, dy float64) {
		rec.pans++
		rec.panDX += dx
		rec.panDY += dy
	}
	c.OnFinish = func(s PointerSample) { rec.finishes = append(rec.finishes, s) }
	c.OnWheel = func(s PointerSample, deltaY float64) { rec.wheels = append(rec.wheels, deltaY) }
	return c, rec
}

func samp(x, y float64, b MouseButtons) PointerSample {
	return PointerSample{X: x, Y: y, Buttons: b}
}

func TestPointerClickUnderThreshold(t *testing.T) {
	c, rec := newRecordedController(DragPaint)

	c.Down(samp(10, 10, ButtonPrimary))
	c.Move(samp(12, 11, ButtonPrimary))
	c.Move(samp(13, 13, ButtonPrimary)) // total distance ~4.2, under 5
	c.Up(samp(13, 13, 0))

	if len(rec.clicks) != 1 {
		t.Fatalf("clicks = %d, want exactly 1", len(rec.clicks))
	}
	if len(rec.paintStarts) != 0 || len(rec.paints) != 0 {
		t.Error("a click must not paint")
	}
	if rec.pans != 0 {
		t.Error("a click must not pan")
	}
	if len(rec.finishes) != 0 {
		t.Error("a click opened no gesture, so nothing should finish")
	}
}

func TestPointerClickWithoutMovement(t *testing.T) {
	c, rec := newRecordedController(DragPaint)
	c.Down(samp(50, 50, ButtonPrimary))
	c.Up(samp(50, 50, 0))
	if len(rec.clicks) != 1 {
		t.Errorf("clicks = %d, want 1", len(rec.clicks))
	}
}

func TestPointerDragPaint(t *testing.T) {
	c, rec := newRecordedController(DragPaint)

	c.Down(samp(10, 10, ButtonPrimary))
	c.Move(samp(30, 10, ButtonPrimary)) // promotes to drag
	c.Move(samp(40, 20, ButtonPrimary))
	c.Up(samp(40, 20, 0))

	if len(rec.clicks) != 0 {
		t.Error("a drag must not click")
	}
	if len(rec.paintStarts) != 1 {
		t.Fatalf("paint starts = %d, want 1", len(rec.paintStarts))
	}
	// The stroke starts where the press happened, not where the promoting
	// move landed.
	if rec.paintStarts[0].X != 10 || rec.paintStarts[0].Y != 10 {
		t.Errorf("paint start at (%f, %f), want press position (10, 10)",
			rec.paintStarts[0].X, rec.paintStarts[0].Y)
	}
	if len(rec.paints) != 2 {
		t.Errorf("paints = %d, want 2 (promoting move plus one)", len(rec.paints))
	}
	if len(rec.finishes) != 1 {
		t.Errorf("finishes = %d, want 1", len(rec.finishes))
	}
}

func TestPointerDragPan(t *testing.T) {
	c, rec := newRecordedController(DragPan)

	c.Down(samp(100, 100, ButtonPrimary))
	c.Move(samp(110, 100, ButtonPrimary)) // promotes
	c.Move(samp(110, 105, ButtonPrimary))
	c.Move(samp(90, 105, ButtonPrimary))
	c.Up(samp(90, 105, 0))

	if rec.pans != 3 {
		t.Errorf("pans = %d, want 3", rec.pans)
	}
	// Deltas accumulate to the total movement since the press.
	if rec.panDX != -10 || rec.panDY != 5 {
		t.Errorf("pan total = (%f, %f), want (-10, 5)", rec.panDX, rec.panDY)
	}
	if len(rec.paints) != 0 || len(rec.clicks) != 0 {
		t.Error("pan drag must not paint or click")
	}
	if len(rec.finishes) != 1 {
		t.Errorf("finishes = %d, want 1", len(rec.finishes))
	}
}

func TestPointerMiddlePanFromIdle(t *testing.T) {
	c, rec := newRecordedController(DragPaint)

	c.Down(samp(10, 10, ButtonMiddle))
	c.Move(samp(25, 10, ButtonMiddle))
	c.Up(samp(25, 10, 0))

	if rec.pans != 1 || rec.panDX != 15 {
		t.Errorf("pan = %d times, dx %f; want 1 time, dx 15", rec.pans, rec.panDX)
	}
	if len(rec.finishes) != 1 {
		t.Errorf("finishes = %d, want 1", len(rec.finishes))
	}
	if len(rec.clicks) != 0 || len(rec.paints) != 0 {
		t.Error("middle pan must not click or paint")
	}
}

func TestPointerMiddleOverridesPaintDrag(t *testing.T) {
	c, rec := newRecordedController(DragPaint)

	c.Down(samp(0, 0, ButtonPrimary))
	c.Move(samp(20, 0, ButtonPrimary)) // painting now

	// Middle press mid-stroke: the stroke finishes, panning takes over.
	c.Down(samp(20, 0, ButtonPrimary|ButtonMiddle))
	if len(rec.finishes) != 1 {
		t.Fatalf("finishes = %d after middle press, want 1", len(rec.finishes))
	}
	if c.Phase() != PhasePanning {
		t.Fatalf("phase = %v, want PhasePanning", c.Phase())
	}

	paintsSoFar := len(rec.paints)
	c.Move(samp(30, 5, ButtonPrimary|ButtonMiddle))
	if len(rec.paints) != paintsSoFar {
		t.Error("moves painted while the middle button was held")
	}
	if rec.panDX != 10 || rec.panDY != 5 {
		t.Errorf("pan total = (%f, %f), want (10, 5)", rec.panDX, rec.panDY)
	}

	c.Up(samp(30, 5, ButtonPrimary))
	if len(rec.finishes) != 2 {
		t.Errorf("finishes = %d after middle release, want 2", len(rec.finishes))
	}
}

func TestPointerReleaseOutsideFinalizes(t *testing.T) {
	c, rec := newRecordedController(DragPaint)

	c.Down(samp(10, 10, ButtonPrimary))
	c.Move(samp(50, 50, ButtonPrimary))
	// Release arrives from far outside the surface.
	c.Up(samp(-400, 9999, 0))

	if len(rec.finishes) != 1 {
		t.Fatalf("finishes = %d, want 1", len(rec.finishes))
	}
	if c.Phase() != PhaseIdle {
		t.Errorf("phase = %v after release, want PhaseIdle", c.Phase())
	}
}

func TestPointerCancelFinalizes(t *testing.T) {
	c, rec := newRecordedController(DragPaint)

	c.Down(samp(0, 0, ButtonPrimary))
	c.Move(samp(20, 0, ButtonPrimary))
	c.Cancel()

	if len(rec.finishes) != 1 {
		t.Errorf("finishes = %d after cancel, want 1", len(rec.finishes))
	}
	if c.Phase() != PhaseIdle {
		t.Errorf("phase = %v after cancel, want PhaseIdle", c.Phase())
	}

	// Cancel of a potential click is silent: no click, no finish.
	c.Down(samp(0, 0, ButtonPrimary))
	c.Cancel()
	if len(rec.clicks) != 0 || len(rec.finishes) != 1 {
		t.Error("cancelling a potential click fired a gesture")
	}
}

func TestPointerHover(t *testing.T) {
	c, rec := newRecordedController(DragPaint)

	c.Move(samp(5, 5, 0))
	c.Move(samp(6, 6, 0))
	if len(rec.hovers) != 2 {
		t.Fatalf("hovers = %d, want 2", len(rec.hovers))
	}

	// Hover stays live under the click threshold but stops once dragging.
	c.Down(samp(6, 6, ButtonPrimary))
	c.Move(samp(8, 8, ButtonPrimary))
	if len(rec.hovers) != 3 {
		t.Errorf("hovers = %d during potential click, want 3", len(rec.hovers))
	}
	c.Move(samp(40, 40, ButtonPrimary))
	c.Move(samp(41, 41, ButtonPrimary))
	if len(rec.hovers) != 3 {
		t.Errorf("hovers = %d while dragging, want still 3", len(rec.hovers))
	}
}

func TestPointerWheel(t *testing.T) {
	c, rec := newRecordedController(DragPaint)
	c.Wheel(samp(100, 100, 0), -3)
	c.Wheel(samp(100, 100, 0), 1)
	if len(rec.wheels) != 2 || rec.wheels[0] != -3 || rec.wheels[1] != 1 {
		t.Errorf("wheels = %v, want [-3 1]", rec.wheels)
	}
}
