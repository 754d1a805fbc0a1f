package input

import "github.com/esimov/gioapp/utils"

// MaxButtons is the number of mouse buttons tracked. Buttons with a higher index are dropped.
const MaxButtons = 10

// Mouse keeps the cursor position, the accumulated motion and scroll of the
// current frame and the state of up to MaxButtons buttons.
//
// Button indexes are 0 for the left, 1 for the middle and 2 for the right
// button; auxiliary buttons keep their platform number.
type Mouse struct {
	thisFrame [MaxButtons]bool
	pressed   [MaxButtons]bool
	pos       utils.Vec2[int]
	delta     utils.Vec2[float64]
	wheel     utils.Vec2[float32]

	focused bool
}

// NewMouse returns a focused Mouse at the origin with no button held.
func NewMouse() *Mouse {
	return &Mouse{focused: true}
}

func (m *Mouse) pressButton(button int) {
	m.thisFrame[button] = true
	m.pressed[button] = true
}

func (m *Mouse) releaseButton(button int) {
	m.thisFrame[button] = true
	m.pressed[button] = false
}

// Translate adds a relative motion to the delta of the current frame.
func (m *Mouse) Translate(dx, dy float64) {
	m.delta = m.delta.Add(utils.Vec2[float64]{X: dx, Y: dy})
}

func (m *Mouse) scroll(dx, dy float32) {
	if !m.focused {
		return
	}
	m.wheel = m.wheel.Add(utils.Vec2[float32]{X: dx, Y: dy})
}

// buttonIndex maps a platform button to its slot in the state arrays.
func buttonIndex(e MouseButtonEvent) (int, bool) {
	switch e.Button {
	case ButtonLeft:
		return 0, true
	case ButtonMiddle:
		return 1, true
	case ButtonRight:
		return 2, true
	case ButtonOther:
		if e.Other >= MaxButtons {
			return 0, false
		}
		return int(e.Other), true
	}
	return 0, false
}

// HandleEvent updates the mouse state from a single event.
// Cursor moves only update the position: the motion delta comes from
// device level MouseMotionEvents. Motion and scroll are dropped while the
// window is not focused, button state is always tracked.
func (m *Mouse) HandleEvent(e Event) {
	switch e := e.(type) {
	case CursorMovedEvent:
		m.pos = utils.Vec2[int]{X: e.Position.X, Y: e.Position.Y}
	case MouseMotionEvent:
		if m.focused {
			m.Translate(e.DX, e.DY)
		}
	case MouseButtonEvent:
		idx, ok := buttonIndex(e)
		if !ok {
			return
		}
		if e.State == Pressed {
			m.pressButton(idx)
		} else {
			m.releaseButton(idx)
		}
	case MouseWheelEvent:
		// Pixel deltas are not supported.
		if d, ok := e.Delta.(LineDelta); ok {
			m.scroll(d.X, d.Y)
		}
	case FocusEvent:
		m.focused = e.Focused
	}
}

// NextFrame resets the motion, the scroll and the button transitions.
// It must be called once per tick, after the update phase.
func (m *Mouse) NextFrame() {
	m.delta = utils.Vec2[float64]{}
	m.wheel = utils.Vec2[float32]{}
	m.thisFrame = [MaxButtons]bool{}
}

// Position returns the last known cursor position inside the window.
func (m *Mouse) Position() utils.Vec2[int] {
	return m.pos
}

// Delta returns the distance the mouse moved since the last frame.
func (m *Mouse) Delta() utils.Vec2[float64] {
	return m.delta
}

// Scroll returns the horizontal (X) and vertical (Y) scroll distance in lines
// since the last frame. The axes are in (x, y) order, unlike APIs that report
// the vertical scroll first.
func (m *Mouse) Scroll() utils.Vec2[float32] {
	return m.wheel
}

// Focused reports whether the window had the input focus at the last FocusEvent.
func (m *Mouse) Focused() bool {
	return m.focused
}

// IsPressed reports whether button is currently held down.
func (m *Mouse) IsPressed(button int) bool {
	if !validButton(button) {
		return false
	}
	return m.pressed[button]
}

// PressedThisFrame reports whether button went down during the current frame.
func (m *Mouse) PressedThisFrame(button int) bool {
	if !validButton(button) {
		return false
	}
	return m.pressed[button] && m.thisFrame[button]
}

// ReleasedThisFrame reports whether button went up during the current frame.
func (m *Mouse) ReleasedThisFrame(button int) bool {
	if !validButton(button) {
		return false
	}
	return !m.pressed[button] && m.thisFrame[button]
}

func validButton(button int) bool {
	return button >= 0 && button < MaxButtons
}
