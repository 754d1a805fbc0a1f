package gioapp

import (
	"image"
	"os"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/system"
	"gioui.org/unit"
	"github.com/esimov/gioapp/input"
)

// Run opens a window described by cfg and runs a in it.
// It must be called from the main goroutine and never returns: the process
// exits when the window is closed.
func Run(a Application, cfg Config) {
	go func() {
		w := app.NewWindow(
			app.Title(cfg.Window.Title),
			app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)),
		)
		ctx := NewContext(NewSurface(image.Point{}, w.Invalidate), NewGUI())
		ctx.BlockGUIInput = cfg.BlockGUIInput
		ctx.BlockGUITabInput = cfg.BlockGUITabInput

		if err := RunWithContext(w, a, ctx, cfg); err != nil {
			cfg.logger().Error("gioapp: application terminated", "error", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// RunWithContext runs a in an existing window with the provided context.
// It returns when the window is destroyed, with the fatal update error or
// the window error, if any.
func RunWithContext(w *app.Window, a Application, ctx *Context, cfg Config) error {
	timer := NewTimer(
		WithTickDuration(cfg.TickDuration),
		WithFPSUpdateTime(cfg.FPSUpdateTime),
	)
	log := cfg.logger()
	loop := NewLoop(a, ctx, timer, log)
	tr := input.NewGioTranslator(cfg.ScrollLineHeight)

	dispatch := func(e event.Event) {
		for _, ev := range tr.Translate(e) {
			loop.Dispatch(ev)
		}
	}

	loop.Start()
	closing := false
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			loop.Dispatch(input.CloseEvent{})
			log.Debug("gioapp: window destroyed",
				"uptime", loop.Timer().AbsoluteTime(),
				"fps", loop.Timer().FPS(),
			)
			if err := loop.Err(); err != nil {
				return err
			}
			return e.Err
		case system.FrameEvent:
			dispatch(e)
			// The context is the tag of the window wide input handler.
			for _, ev := range e.Queue.Events(ctx) {
				dispatch(ev)
			}

			if !loop.Step(func() {
				ctx.GUI.begin(e, ctx, ctx)
			}) {
				ctx.GUI.hold(e.Queue)
			}
			ctx.GUI.end()
			// When the timer held the update back the previous frame is
			// submitted again.
			e.Frame(ctx.GUI.Ops())

			if !closing && (loop.Done() || ctx.CloseRequested()) {
				closing = true
				w.Perform(system.ActionClose)
				continue
			}
			w.Invalidate()
		default:
			dispatch(e)
		}
	}
	return loop.Err()
}
