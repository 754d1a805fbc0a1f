package gioapp

import (
	"errors"
	"image"
)

// Errors an Application may return from Update to report the state of its
// render target. Wrap them with fmt.Errorf("...: %w", err) to add context.
var (
	// ErrSurfaceLost is recoverable: the surface is reconfigured once and the loop goes on.
	ErrSurfaceLost = errors.New("surface lost")
	// ErrSurfaceOutdated and ErrSurfaceTimeout are logged and the loop goes on.
	ErrSurfaceOutdated = errors.New("surface outdated")
	ErrSurfaceTimeout  = errors.New("surface timeout")
	// ErrOutOfMemory is fatal and terminates the loop.
	ErrOutOfMemory = errors.New("out of memory")
)

// Surface tracks the render target of the window.
// Gio owns the GPU resources; configuring the surface records its size
// and asks the window for a new frame, which makes Gio re-acquire them.
type Surface struct {
	size       image.Point
	invalidate func()
}

// NewSurface returns a surface of the given size. The invalidate function is
// called every time the surface is configured and may be nil.
func NewSurface(size image.Point, invalidate func()) *Surface {
	return &Surface{size: size, invalidate: invalidate}
}

// Size returns the current surface size in pixels.
func (s *Surface) Size() image.Point {
	return s.size
}

// Resize configures the surface for the given size.
func (s *Surface) Resize(size image.Point) {
	s.size = size
	if s.invalidate != nil {
		s.invalidate()
	}
}

// Reconfigure configures the surface again at its current size.
func (s *Surface) Reconfigure() {
	s.Resize(s.size)
}
