package persistent

import (
	"gioui.org/layout"
	"golang.org/x/exp/slices"
)

// Manager renders a list of persistent windows once per frame, in insertion order.
type Manager[S any] struct {
	windows []*Window[S]
}

// NewManager returns an empty manager.
func NewManager[S any]() *Manager[S] {
	return &Manager[S]{}
}

// Push adds windows after the existing ones. They are rendered from the next call to Render.
func (m *Manager[S]) Push(w ...*Window[S]) {
	m.windows = append(m.windows, w...)
}

// Len returns the number of live windows.
func (m *Manager[S]) Len() int {
	return len(m.windows)
}

// IDs returns the ids of the live windows in render order.
func (m *Manager[S]) IDs() []uint64 {
	ids := make([]uint64, 0, len(m.windows))
	for _, w := range m.windows {
		ids = append(ids, w.id)
	}
	return ids
}

// Windows returns a copy of the live windows in render order.
func (m *Manager[S]) Windows() []*Window[S] {
	return slices.Clone(m.windows)
}

// Render invokes every live window exactly once, drops the windows that
// returned false and then appends the windows spawned during the pass.
// Spawned windows are not rendered before the next call.
//
// A panicking behavior is not recovered. The window list is then left as it
// was before the pass and the windows spawned so far are lost.
func (m *Manager[S]) Render(state *S, gtx layout.Context) {
	var spawned Spawned[S]

	kept := make([]*Window[S], 0, len(m.windows))
	for _, w := range m.windows {
		if w.Render(&spawned, gtx, state) {
			kept = append(kept, w)
		}
	}
	m.windows = append(kept, spawned.windows...)
}
