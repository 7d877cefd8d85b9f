package stipple

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSource polls Ebitengine mouse state each frame and translates it
// into PointerSamples for one surface's controller. The surface occupies
// Region in screen space; samples are delivered in region-local
// coordinates so the controller and viewport never see window layout.
//
// A gesture that starts inside the region keeps receiving samples after
// the cursor leaves it, so releases outside the surface still finalize the
// gesture.
type PointerSource struct {
	Region Rect
	Target *PointerController

	prevButtons MouseButtons
	prevX       float64
	prevY       float64
	engaged     bool
}

// NewPointerSource creates a source feeding the given controller from the
// given screen region.
func NewPointerSource(region Rect, target *PointerController) *PointerSource {
	return &PointerSource{Region: region, Target: target, prevX: -1, prevY: -1}
}

// readButtons reads the current mouse button mask.
func readButtons() MouseButtons {
	var b MouseButtons
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		b |= ButtonPrimary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		b |= ButtonSecondary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		b |= ButtonMiddle
	}
	return b
}

// Poll reads the current mouse state and dispatches down/move/up/wheel to
// the target controller. Call once per Update.
func (ps *PointerSource) Poll() {
	mx, my := ebiten.CursorPosition()
	sx := float64(mx)
	sy := float64(my)
	inside := ps.Region.Contains(sx, sy)

	buttons := readButtons()
	s := PointerSample{
		X:         sx - ps.Region.X,
		Y:         sy - ps.Region.Y,
		Buttons:   buttons,
		Timestamp: time.Now(),
	}

	pressed := buttons &^ ps.prevButtons
	released := ps.prevButtons &^ buttons

	if pressed != 0 && inside {
		ps.engaged = true
		ps.Target.Down(s)
	}
	if (inside || ps.engaged) && (sx != ps.prevX || sy != ps.prevY) {
		ps.Target.Move(s)
	}
	if released != 0 && ps.engaged {
		ps.Target.Up(s)
		if buttons == 0 {
			ps.engaged = false
		}
	}

	if inside {
		// Ebitengine reports wheel-up as positive Y; the editor treats a
		// positive delta as zoom-out, matching browser wheel semantics.
		if _, wy := ebiten.Wheel(); wy != 0 {
			ps.Target.Wheel(s, -wy)
		}
	}

	ps.prevButtons = buttons
	ps.prevX = sx
	ps.prevY = sy
}

// modifiersPressed reports whether a control-style modifier is held
// (control on most platforms, meta for macOS muscle memory).
func modifiersPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyControlLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyControlRight) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta) ||
		ebiten.IsKeyPressed(ebiten.KeyMetaLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyMetaRight)
}

// PollKeyOp decodes the keyboard into at most one editor operation per
// frame: ctrl+Z/Y/C/V/X for undo/redo/copy/paste/cut, delete to clear the
// selection, arrows to move it. Returns KeyNone when nothing fired.
func PollKeyOp() KeyOp {
	ctrl := modifiersPressed()
	shift := ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ):
		if shift {
			return KeyRedo
		}
		return KeyUndo
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyY):
		return KeyRedo
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		return KeyCopy
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV):
		return KeyPaste
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyX):
		return KeyCut
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete),
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		return KeyDelete
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		return KeyMoveLeft
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		return KeyMoveRight
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		return KeyMoveUp
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		return KeyMoveDown
	}
	return KeyNone
}
