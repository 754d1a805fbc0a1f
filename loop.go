package gioapp

import (
	"errors"
	"log/slog"

	"github.com/esimov/gioapp/input"
)

// Application is implemented by programs run with Run or RunWithContext.
type Application interface {
	// Init is called once everything is set up, before the first frame.
	Init(ctx *Context)
	// Update is called every tick to update and render. The timer reports the
	// time since the last tick and the current frame rate.
	Update(t *Timer, ctx *Context) error
	// Close is called when the window is requested to close.
	Close(ctx *Context)
	// HandleEvent receives every input event, after the input trackers.
	HandleEvent(ctx *Context, e input.Event)
}

// Loop drives an Application from a stream of input events.
// It is platform neutral; RunWithContext feeds it from a Gio window.
//
// A Loop is not safe for concurrent use.
type Loop struct {
	app   Application
	ctx   *Context
	timer *Timer
	log   *slog.Logger

	closed bool
	err    error
}

// NewLoop returns a loop running a with ctx. A nil logger means slog.Default.
func NewLoop(a Application, ctx *Context, t *Timer, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		app:   a,
		ctx:   ctx,
		timer: t,
		log:   logger,
	}
}

// Start resets the timer and initializes the application.
func (l *Loop) Start() {
	l.timer.Reset()
	l.app.Init(l.ctx)
}

// Dispatch delivers an event to the input trackers and to the application.
// A CloseEvent closes the application and ends the loop instead.
func (l *Loop) Dispatch(e input.Event) {
	if l.closed {
		return
	}
	if _, ok := e.(input.CloseEvent); ok {
		l.app.Close(l.ctx)
		l.closed = true
		return
	}
	l.ctx.HandleEvent(e)
	l.app.HandleEvent(l.ctx, e)
}

// Step runs one update if the timer allows it and reports whether it did.
// It is called once the pending events have been dispatched. The prepare
// function, if any, runs after the timer fired and before the update.
func (l *Loop) Step(prepare func()) bool {
	if l.closed {
		return false
	}
	if _, ok := l.timer.Go(); !ok {
		return false
	}
	if prepare != nil {
		prepare()
	}

	if err := l.app.Update(l.timer, l.ctx); err != nil {
		switch {
		case errors.Is(err, ErrSurfaceLost):
			l.log.Warn("loop: surface lost, reconfiguring", "size", l.ctx.Surface.Size())
			l.ctx.Surface.Reconfigure()
		case errors.Is(err, ErrOutOfMemory):
			l.log.Error("loop: fatal update error", "error", err)
			l.closed = true
			l.err = err
		default:
			l.log.Error("loop: update failed", "error", err)
		}
	}

	l.ctx.Mouse.NextFrame()
	l.ctx.Keyboard.NextFrame()
	return true
}

// Timer returns the timer gating the updates.
func (l *Loop) Timer() *Timer {
	return l.timer
}

// Done reports whether the loop has ended, either because the window was
// closed or because of a fatal update error.
func (l *Loop) Done() bool {
	return l.closed
}

// Err returns the fatal error that ended the loop, if any.
func (l *Loop) Err() error {
	return l.err
}
