// Package input tracks keyboard and mouse state between frames.
//
// The trackers consume a platform neutral stream of Event values and expose
// level (held) and edge (changed this frame) state. Events are passed by value,
// so the same event can be observed by any number of consumers.
package input

import "image"

// Event is implemented by every input event understood by the trackers.
type Event interface {
	ImplementsEvent()
}

// State is the state of a key or button carried by an event.
type State uint8

const (
	// Released is the state of a key or button that went up.
	Released State = iota
	// Pressed is the state of a key or button that went down.
	Pressed
)

func (s State) String() string {
	switch s {
	case Pressed:
		return "Pressed"
	case Released:
		return "Released"
	default:
		return "Unknown"
	}
}

// Key identifies a keyboard key by name. The empty Key means the platform
// could not resolve the key.
type Key string

// Key names shared with the Gio key package.
const (
	KeyEscape Key = "⎋"
	KeyTab    Key = "Tab"
	KeySpace  Key = "Space"
	KeyReturn Key = "⏎"
	KeyLeft   Key = "←"
	KeyRight  Key = "→"
	KeyUp     Key = "↑"
	KeyDown   Key = "↓"
)

// KeyEvent is a key going up or down. OS auto-repeat delivers repeated
// Pressed events for a held key.
type KeyEvent struct {
	Key   Key
	State State
}

// CursorMovedEvent reports the absolute cursor position inside the window.
type CursorMovedEvent struct {
	Position image.Point
}

// MouseMotionEvent is a device level relative motion, independent of the
// cursor position and of the window bounds.
type MouseMotionEvent struct {
	DX, DY float64
}

// ButtonKind is the platform identifier of a mouse button.
type ButtonKind uint8

const (
	ButtonLeft ButtonKind = iota
	ButtonMiddle
	ButtonRight
	// ButtonOther is an auxiliary button identified by MouseButtonEvent.Other.
	ButtonOther
)

// MouseButtonEvent is a mouse button going up or down.
type MouseButtonEvent struct {
	Button ButtonKind
	// Other is the platform button number when Button is ButtonOther.
	Other uint16
	State State
}

// ScrollDelta is the amount scrolled by a wheel event, either in lines or in pixels.
type ScrollDelta interface {
	implementsScrollDelta()
}

// LineDelta is a scroll amount in lines (or rows and columns).
type LineDelta struct {
	X, Y float32
}

// PixelDelta is a scroll amount in pixels, as reported by touchpads.
type PixelDelta struct {
	X, Y float64
}

// MouseWheelEvent is a wheel or touchpad scroll.
type MouseWheelEvent struct {
	Delta ScrollDelta
}

// FocusEvent is generated when the window gains or loses the input focus.
type FocusEvent struct {
	Focused bool
}

// ResizeEvent is generated when the window size changes.
type ResizeEvent struct {
	Size image.Point
}

// CloseEvent is generated when the window is asked to close.
type CloseEvent struct{}

func (LineDelta) implementsScrollDelta()  {}
func (PixelDelta) implementsScrollDelta() {}

func (KeyEvent) ImplementsEvent()         {}
func (CursorMovedEvent) ImplementsEvent() {}
func (MouseMotionEvent) ImplementsEvent() {}
func (MouseButtonEvent) ImplementsEvent() {}
func (MouseWheelEvent) ImplementsEvent()  {}
func (FocusEvent) ImplementsEvent()       {}
func (ResizeEvent) ImplementsEvent()      {}
func (CloseEvent) ImplementsEvent()       {}
