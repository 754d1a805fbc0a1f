package gioapp

import (
	"image"
	"testing"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"github.com/esimov/gioapp/input"
	"github.com/stretchr/testify/assert"
)

type staticQueue []event.Event

func (q staticQueue) Events(event.Tag) []event.Event { return q }

var queued = staticQueue{
	key.Event{Name: key.NameTab, State: key.Press},
	key.Event{Name: "A", State: key.Press},
	pointer.Event{Type: pointer.Press, Buttons: pointer.ButtonPrimary},
}

func TestGUI_FilterShouldPassEverythingByDefault(t *testing.T) {
	f := inputFilter{queue: queued}
	assert.Len(t, f.Events(nil), 3)
}

func TestGUI_FilterShouldHideTab(t *testing.T) {
	f := inputFilter{queue: queued, blockTab: true}

	evs := f.Events(nil)
	assert.Len(t, evs, 2)
	for _, e := range evs {
		if ke, ok := e.(key.Event); ok {
			assert.NotEqual(t, key.NameTab, ke.Name)
		}
	}
	assert.Len(t, queued, 3, "the source queue should not be modified")
}

func TestGUI_FilterShouldBlockAllInput(t *testing.T) {
	f := inputFilter{queue: queued, block: true}
	assert.Empty(t, f.Events(nil))
}

func TestGUI_BeginShouldInstallTheFilter(t *testing.T) {
	g := NewGUI()
	ctx := NewContext(NewSurface(image.Point{}, nil), g)
	ctx.BlockGUIInput = true

	g.begin(system.FrameEvent{Size: image.Pt(200, 100), Queue: queued}, ctx, ctx)
	defer g.end()

	gtx := g.Context()
	assert.NotNil(t, gtx.Queue, "a nil queue would disable the widgets")
	assert.Empty(t, gtx.Events(ctx))
	assert.Equal(t, image.Pt(200, 100), gtx.Constraints.Max)

	dims := g.Layout(func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: gtx.Constraints.Max}
	})
	assert.Equal(t, image.Pt(200, 100), dims.Size)
}

// tagQueue delivers events to a single tag, once.
type tagQueue struct {
	tag    event.Tag
	events []event.Event
}

func (q *tagQueue) Events(t event.Tag) []event.Event {
	if t != q.tag {
		return nil
	}
	evs := q.events
	q.events = nil
	return evs
}

func TestGUI_EventsOfSkippedFrameShouldReachWidgets(t *testing.T) {
	g := NewGUI()
	ctx := NewContext(NewSurface(image.Point{}, nil), g)
	btn := new(int)
	size := image.Pt(200, 100)

	// The widget reads its events during an update.
	g.begin(system.FrameEvent{Size: size, Queue: &tagQueue{}}, ctx, ctx)
	assert.Empty(t, g.Context().Events(btn))
	g.end()

	// The press arrives on a frame the timer skipped.
	press := pointer.Event{Type: pointer.Press, Buttons: pointer.ButtonPrimary}
	g.hold(&tagQueue{tag: btn, events: []event.Event{press}})

	release := pointer.Event{Type: pointer.Release}
	g.begin(system.FrameEvent{Size: size, Queue: &tagQueue{tag: btn, events: []event.Event{release}}}, ctx, ctx)
	assert.Equal(t, []event.Event{press, release}, g.Context().Events(btn))
	assert.Empty(t, g.Context().Events(btn), "held events should be delivered once")
	g.end()
}

func TestGUI_HeldEventsShouldHonorBlocking(t *testing.T) {
	g := NewGUI()
	ctx := NewContext(NewSurface(image.Point{}, nil), g)
	btn := new(int)
	size := image.Pt(200, 100)

	g.begin(system.FrameEvent{Size: size, Queue: &tagQueue{}}, ctx, ctx)
	g.Context().Events(btn)
	g.end()
	g.hold(&tagQueue{tag: btn, events: []event.Event{key.Event{Name: key.NameTab, State: key.Press}}})

	ctx.BlockGUIInput = true
	g.begin(system.FrameEvent{Size: size, Queue: &tagQueue{}}, ctx, ctx)
	assert.Empty(t, g.Context().Events(btn))
	g.end()

	ctx.BlockGUIInput = false
	g.begin(system.FrameEvent{Size: size, Queue: &tagQueue{}}, ctx, ctx)
	assert.Empty(t, g.Context().Events(btn), "blocked events should not be replayed")
	g.end()
}

func TestContext_ShouldForwardEvents(t *testing.T) {
	var invalidated int
	ctx := NewContext(NewSurface(image.Pt(1, 1), func() { invalidated++ }), nil)

	ctx.HandleEvent(input.KeyEvent{Key: input.KeyEscape, State: input.Pressed})
	ctx.HandleEvent(input.CursorMovedEvent{Position: image.Pt(4, 2)})
	ctx.HandleEvent(input.ResizeEvent{Size: image.Pt(30, 40)})

	assert.True(t, ctx.Keyboard.PressedThisFrame(input.KeyEscape))
	assert.Equal(t, 4, ctx.Mouse.Position().X)
	assert.Equal(t, image.Pt(30, 40), ctx.Surface.Size())
	assert.Equal(t, 1, invalidated)

	assert.False(t, ctx.CloseRequested())
	ctx.RequestClose()
	assert.True(t, ctx.CloseRequested())
}
