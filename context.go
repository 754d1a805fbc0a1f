package gioapp

import "github.com/esimov/gioapp/input"

// Context gathers what an application needs every frame: the keyboard and
// mouse state, the render surface and the GUI.
type Context struct {
	Surface *Surface
	GUI     *GUI

	Mouse    *input.Mouse
	Keyboard *input.Keyboard
	// BlockGUIInput hides every input event from the GUI widgets.
	BlockGUIInput bool
	// BlockGUITabInput hides the Tab key events from the GUI widgets.
	BlockGUITabInput bool

	closeRequested bool
}

// NewContext returns a Context with fresh input trackers.
func NewContext(surface *Surface, gui *GUI) *Context {
	return &Context{
		Surface:  surface,
		GUI:      gui,
		Mouse:    input.NewMouse(),
		Keyboard: input.NewKeyboard(),
	}
}

// HandleEvent feeds e to the input trackers and resizes the surface on
// ResizeEvent. It is called by the application loop.
func (c *Context) HandleEvent(e input.Event) {
	c.Keyboard.HandleEvent(e)
	c.Mouse.HandleEvent(e)

	if r, ok := e.(input.ResizeEvent); ok {
		c.Surface.Resize(r.Size)
	}
}

// RequestClose asks the application loop to close the window after the current frame.
func (c *Context) RequestClose() {
	c.closeRequested = true
}

// CloseRequested reports whether RequestClose was called.
func (c *Context) CloseRequested() bool {
	return c.closeRequested
}
