package input

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
)

// gioButtons lists the Gio buttons we can map, in the order their events are emitted.
var gioButtons = []struct {
	mask pointer.Buttons
	kind ButtonKind
}{
	{pointer.ButtonPrimary, ButtonLeft},
	{pointer.ButtonTertiary, ButtonMiddle},
	{pointer.ButtonSecondary, ButtonRight},
}

// GioTranslator converts Gio events into input events.
//
// Gio reports the set of held buttons with every pointer event rather than
// one event per button, and has no device level motion, so the translator
// keeps the previous button set and cursor position to derive both.
type GioTranslator struct {
	// LineHeight is the number of pixels per scrolled line. Pointer scrolls are
	// reported as PixelDelta when it is zero.
	LineHeight float32

	buttons pointer.Buttons
	pos     f32.Point
	hasPos  bool
	size    image.Point
}

// NewGioTranslator returns a translator converting pixel scrolls to lines of lineHeight pixels.
func NewGioTranslator(lineHeight float32) *GioTranslator {
	return &GioTranslator{LineHeight: lineHeight}
}

// Translate returns the input events corresponding to e, in the order they happened.
// Events with no input meaning translate to nothing.
func (t *GioTranslator) Translate(e event.Event) []Event {
	switch e := e.(type) {
	case key.Event:
		state := Released
		if e.State == key.Press {
			state = Pressed
		}
		return []Event{KeyEvent{Key: Key(e.Name), State: state}}
	case pointer.Event:
		return t.pointer(e)
	case system.FrameEvent:
		if e.Size == t.size {
			return nil
		}
		t.size = e.Size
		return []Event{ResizeEvent{Size: e.Size}}
	case system.StageEvent:
		return []Event{FocusEvent{Focused: e.Stage >= system.StageRunning}}
	case system.DestroyEvent:
		return []Event{CloseEvent{}}
	}
	return nil
}

func (t *GioTranslator) pointer(e pointer.Event) []Event {
	var evs []Event
	switch e.Type {
	case pointer.Move, pointer.Drag, pointer.Enter:
		if t.hasPos {
			d := e.Position.Sub(t.pos)
			if d != (f32.Point{}) {
				evs = append(evs, MouseMotionEvent{DX: float64(d.X), DY: float64(d.Y)})
			}
		}
		t.pos, t.hasPos = e.Position, true
		evs = append(evs, CursorMovedEvent{Position: round(e.Position)})
	case pointer.Leave:
		t.hasPos = false
	case pointer.Press, pointer.Release:
		evs = t.buttonChanges(e.Buttons)
	case pointer.Cancel:
		evs = t.buttonChanges(0)
	case pointer.Scroll:
		if t.LineHeight > 0 {
			evs = append(evs, MouseWheelEvent{Delta: LineDelta{
				X: -e.Scroll.X / t.LineHeight,
				Y: -e.Scroll.Y / t.LineHeight,
			}})
		} else {
			evs = append(evs, MouseWheelEvent{Delta: PixelDelta{
				X: float64(-e.Scroll.X),
				Y: float64(-e.Scroll.Y),
			}})
		}
	}
	return evs
}

// buttonChanges emits one MouseButtonEvent per button whose state differs from the previous set.
func (t *GioTranslator) buttonChanges(held pointer.Buttons) []Event {
	var evs []Event
	changed := held ^ t.buttons
	for _, b := range gioButtons {
		if changed&b.mask == 0 {
			continue
		}
		state := Released
		if held.Contain(b.mask) {
			state = Pressed
		}
		evs = append(evs, MouseButtonEvent{Button: b.kind, State: state})
	}
	t.buttons = held
	return evs
}

func round(p f32.Point) image.Point {
	return image.Pt(int(math.Round(float64(p.X))), int(math.Round(float64(p.Y))))
}
