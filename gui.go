package gioapp

import (
	"image"

	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/widget/material"
)

// scrollRange bounds the scroll distance reported by a single pointer event.
const scrollRange = 1 << 16

// GUI holds the state required to lay out Gio widgets for the current frame.
type GUI struct {
	Theme *material.Theme

	ops     op.Ops
	gtx     layout.Context
	area    clip.Stack
	open    bool
	pending pendingEvents
}

// pendingEvents keeps the widget events of frames laid out without an update.
// Gio drops the events of a frame nobody read, so they are collected for the
// tags read during the last update and replayed on the next one.
type pendingEvents struct {
	tags   map[event.Tag]struct{}
	events map[event.Tag][]event.Event
}

func (p *pendingEvents) seen(t event.Tag) {
	if p.tags == nil {
		p.tags = make(map[event.Tag]struct{})
	}
	p.tags[t] = struct{}{}
}

func (p *pendingEvents) hold(q event.Queue) {
	if q == nil {
		return
	}
	for t := range p.tags {
		evs := q.Events(t)
		if len(evs) == 0 {
			continue
		}
		if p.events == nil {
			p.events = make(map[event.Tag][]event.Event)
		}
		p.events[t] = append(p.events[t], evs...)
	}
}

func (p *pendingEvents) take(t event.Tag) []event.Event {
	evs := p.events[t]
	delete(p.events, t)
	return evs
}

// NewGUI returns a GUI using the Go fonts.
func NewGUI() *GUI {
	return &GUI{
		Theme: material.NewTheme(gofont.Collection()),
	}
}

// Context returns the layout context of the current frame.
// It is only valid during Application.Update.
func (g *GUI) Context() layout.Context {
	return g.gtx
}

// Layout runs w against the current frame.
func (g *GUI) Layout(w layout.Widget) layout.Dimensions {
	return w(g.gtx)
}

// Ops returns the operation list submitted with each frame.
func (g *GUI) Ops() *op.Ops {
	return &g.ops
}

// begin resets the operation list for a new frame and registers tag for every
// pointer and key event of the window. Widgets see the events through a queue
// honoring the input blocking flags of ctx.
func (g *GUI) begin(e system.FrameEvent, tag event.Tag, ctx *Context) {
	g.gtx = layout.NewContext(&g.ops, e)
	clear(g.pending.tags)
	g.gtx.Queue = inputFilter{
		queue:    e.Queue,
		pending:  &g.pending,
		block:    ctx.BlockGUIInput,
		blockTab: ctx.BlockGUITabInput,
	}

	// The area stays open for the whole frame, making every widget a child
	// of it; Gio then delivers pointer events to both.
	g.area = clip.Rect{Max: e.Size}.Push(g.gtx.Ops)
	g.open = true
	pointer.InputOp{
		Tag:   tag,
		Types: pointer.Press | pointer.Release | pointer.Move | pointer.Drag | pointer.Scroll | pointer.Enter | pointer.Leave | pointer.Cancel,
		ScrollBounds: image.Rectangle{
			Min: image.Pt(-scrollRange, -scrollRange),
			Max: image.Pt(scrollRange, scrollRange),
		},
	}.Add(g.gtx.Ops)
	// The first key handler receives every key event no widget handled.
	key.InputOp{Tag: tag}.Add(g.gtx.Ops)
}

// hold keeps the widget events of a frame without an update for the next
// frame started by begin.
func (g *GUI) hold(q event.Queue) {
	g.pending.hold(q)
}

// end closes the frame started by begin.
func (g *GUI) end() {
	if g.open {
		g.area.Pop()
		g.open = false
	}
}

// inputFilter hides events from the widgets. It never returns a nil queue,
// which Gio widgets would take as a request to draw themselves disabled.
type inputFilter struct {
	queue    event.Queue
	pending  *pendingEvents
	block    bool
	blockTab bool
}

func (f inputFilter) Events(t event.Tag) []event.Event {
	var evs []event.Event
	if f.pending != nil {
		f.pending.seen(t)
		evs = f.pending.take(t)
	}
	if f.queue != nil {
		evs = append(evs, f.queue.Events(t)...)
	}
	if f.block {
		return nil
	}
	if !f.blockTab {
		return evs
	}
	filtered := make([]event.Event, 0, len(evs))
	for _, e := range evs {
		if ke, ok := e.(key.Event); ok && ke.Name == key.NameTab {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}
