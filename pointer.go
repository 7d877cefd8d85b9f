package stipple

import (
	"math"
	"time"
)

// DefaultClickThreshold is the movement in screen pixels above which a
// pressed pointer stops being a potential click and becomes a drag.
const DefaultClickThreshold = 5.0

// MouseButtons is a bitmask of pressed pointer buttons.
type MouseButtons uint8

const (
	ButtonPrimary MouseButtons = 1 << iota
	ButtonSecondary
	ButtonMiddle
)

// PointerSample is one observation of the pointer, in screen coordinates.
// The input layer produces these; the state machine and the transform math
// never touch the windowing API directly.
type PointerSample struct {
	X, Y      float64
	Buttons   MouseButtons
	Timestamp time.Time
}

// PointerPhase is the state of a pointer gesture in progress.
type PointerPhase uint8

const (
	// PhaseIdle: no button held; moves are hover.
	PhaseIdle PointerPhase = iota
	// PhasePotentialClick: primary button held, movement still under the
	// click threshold. Release here is a click.
	PhasePotentialClick
	// PhaseDragging: movement exceeded the threshold; moves paint or pan
	// depending on the drag mode.
	PhaseDragging
	// PhasePanning: middle button held; moves pan regardless of drag mode.
	PhasePanning
)

// DragMode selects what a primary-button drag does on a surface.
type DragMode uint8

const (
	// DragPaint: drags paint a continuous stroke.
	DragPaint DragMode = iota
	// DragPan: drags pan the viewport.
	DragPan
)

// PointerController turns a stream of pointer samples into editing
// gestures. A single down/move/up sequence serves both "click one cell" and
// "drag a stroke or pan" without an explicit mode switch: the press starts
// as a potential click and is promoted to a drag only once total movement
// exceeds ClickThreshold. Below the threshold the release fires exactly one
// click and nothing else.
//
// The middle button pans independently of the active drag mode, overriding
// any gesture in progress.
type PointerController struct {
	// ClickThreshold is the promotion distance in screen pixels.
	ClickThreshold float64
	// Mode selects the primary-drag behavior (paint or pan).
	Mode DragMode

	// OnHover fires on every non-dragging move.
	OnHover func(s PointerSample)
	// OnClick fires exactly once for a press/release pair that never left
	// the click threshold.
	OnClick func(s PointerSample)
	// OnPaintStart fires with the press sample when a paint drag begins.
	OnPaintStart func(s PointerSample)
	// OnPaint fires for each move of a paint drag (including the promoting
	// move itself).
	OnPaint func(s PointerSample)
	// OnPan fires with the screen-space delta since the previous sample.
	OnPan func(dx, dy float64)
	// OnFinish fires when a drag or pan gesture completes, including
	// releases that happen outside the surface. A click does not finish a
	// gesture; it never opened one.
	OnFinish func(s PointerSample)
	// OnWheel fires for wheel input over the surface.
	OnWheel func(s PointerSample, deltaY float64)

	phase   PointerPhase
	start   PointerSample
	last    PointerSample
	buttons MouseButtons
}

// NewPointerController returns a controller with the default click
// threshold, painting on primary drag.
func NewPointerController() *PointerController {
	return &PointerController{ClickThreshold: DefaultClickThreshold}
}

// Phase returns the current gesture phase.
func (c *PointerController) Phase() PointerPhase { return c.phase }

// Down processes a button press. The sample's Buttons field holds the mask
// after the press.
func (c *PointerController) Down(s PointerSample) {
	pressed := s.Buttons &^ c.buttons
	c.buttons = s.Buttons

	if pressed&ButtonMiddle != 0 {
		// Middle button overrides whatever is in progress.
		if c.phase == PhaseDragging && c.OnFinish != nil {
			c.OnFinish(s)
		}
		c.phase = PhasePanning
		c.start = s
		c.last = s
		return
	}

	if pressed&ButtonPrimary != 0 && c.phase == PhaseIdle {
		c.phase = PhasePotentialClick
		c.start = s
		c.last = s
	}
}

// Move processes pointer movement.
func (c *PointerController) Move(s PointerSample) {
	switch c.phase {
	case PhaseIdle:
		c.fireHover(s)

	case PhasePotentialClick:
		dx := s.X - c.start.X
		dy := s.Y - c.start.Y
		if math.Sqrt(dx*dx+dy*dy) > c.ClickThreshold {
			c.phase = PhaseDragging
			if c.Mode == DragPaint {
				if c.OnPaintStart != nil {
					c.OnPaintStart(c.start)
				}
				c.firePaint(s)
			} else {
				c.firePan(s.X-c.last.X, s.Y-c.last.Y)
			}
		} else {
			// Hover stays live until the press is promoted to a drag.
			c.fireHover(s)
		}

	case PhaseDragging:
		if c.Mode == DragPaint {
			c.firePaint(s)
		} else {
			c.firePan(s.X-c.last.X, s.Y-c.last.Y)
		}

	case PhasePanning:
		c.firePan(s.X-c.last.X, s.Y-c.last.Y)
	}
	c.last = s
}

// Up processes a button release. A release outside the surface still
// arrives here and still finalizes any open gesture; abandoning a
// half-open stroke would leave the undo history dangling.
func (c *PointerController) Up(s PointerSample) {
	released := c.buttons &^ s.Buttons
	c.buttons = s.Buttons

	switch c.phase {
	case PhasePotentialClick:
		if released&ButtonPrimary != 0 {
			c.phase = PhaseIdle
			if c.OnClick != nil {
				c.OnClick(s)
			}
		}
	case PhaseDragging:
		if released&ButtonPrimary != 0 {
			c.phase = PhaseIdle
			if c.OnFinish != nil {
				c.OnFinish(s)
			}
		}
	case PhasePanning:
		if released&ButtonMiddle != 0 {
			c.phase = PhaseIdle
			if c.OnFinish != nil {
				c.OnFinish(s)
			}
		}
	}
	c.last = s
}

// Wheel processes wheel input at the sample position.
func (c *PointerController) Wheel(s PointerSample, deltaY float64) {
	if c.OnWheel != nil {
		c.OnWheel(s, deltaY)
	}
}

// Cancel finalizes any gesture in progress, as if the button had been
// released at the last known position. Used when the surface loses focus
// mid-gesture.
func (c *PointerController) Cancel() {
	if c.phase == PhaseDragging || c.phase == PhasePanning {
		if c.OnFinish != nil {
			c.OnFinish(c.last)
		}
	}
	c.phase = PhaseIdle
	c.buttons = 0
}

func (c *PointerController) fireHover(s PointerSample) {
	if c.OnHover != nil {
		c.OnHover(s)
	}
}

func (c *PointerController) firePaint(s PointerSample) {
	if c.OnPaint != nil {
		c.OnPaint(s)
	}
}

func (c *PointerController) firePan(dx, dy float64) {
	if c.OnPan != nil {
		c.OnPan(dx, dy)
	}
}
