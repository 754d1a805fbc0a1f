// Package persistent emulates retained windows on top of an immediate mode GUI.
//
// A Window owns a Behavior which is invoked once per frame by a Manager until
// it reports that it is done. Behaviors keep whatever state they need between
// frames, mutate the shared application state and may spawn sibling windows.
package persistent

import (
	"sync/atomic"

	"gioui.org/layout"
)

// windowIDs is shared by every Manager in the process, so ids can be used to
// correlate windows across managers.
var windowIDs atomic.Uint64

func nextID() uint64 {
	return windowIDs.Add(1) - 1
}

// Behavior renders a window for the current frame and reports whether the
// window should be kept for the next one.
type Behavior[S any] interface {
	Render(id uint64, spawned *Spawned[S], gtx layout.Context, state *S) bool
}

// BehaviorFunc adapts a closure to the Behavior interface.
type BehaviorFunc[S any] func(id uint64, spawned *Spawned[S], gtx layout.Context, state *S) bool

// Render calls f.
func (f BehaviorFunc[S]) Render(id uint64, spawned *Spawned[S], gtx layout.Context, state *S) bool {
	return f(id, spawned, gtx, state)
}

// Window is a long lived unit of UI with a process unique id.
type Window[S any] struct {
	id       uint64
	behavior Behavior[S]
}

// NewWindow allocates a new id and returns a window running b.
func NewWindow[S any](b Behavior[S]) *Window[S] {
	return &Window[S]{id: nextID(), behavior: b}
}

// NewWindowFunc is NewWindow for a closure.
func NewWindowFunc[S any](f func(id uint64, spawned *Spawned[S], gtx layout.Context, state *S) bool) *Window[S] {
	return NewWindow[S](BehaviorFunc[S](f))
}

// ID returns the window id.
func (w *Window[S]) ID() uint64 {
	return w.id
}

// Render invokes the window behavior once.
func (w *Window[S]) Render(spawned *Spawned[S], gtx layout.Context, state *S) bool {
	return w.behavior.Render(w.id, spawned, gtx, state)
}

// Spawned collects the windows created during a render pass.
// It is append only.
type Spawned[S any] struct {
	windows []*Window[S]
}

// Push queues windows to be added after the current pass.
func (s *Spawned[S]) Push(w ...*Window[S]) {
	s.windows = append(s.windows, w...)
}
