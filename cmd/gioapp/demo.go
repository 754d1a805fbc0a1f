package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/esimov/gioapp"
	"github.com/esimov/gioapp/input"
	"github.com/esimov/gioapp/persistent"
	"github.com/esimov/gioapp/utils"
	"golang.org/x/exp/slices"
	"golang.org/x/image/colornames"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	backgroundColor = nrgba(colornames.Whitesmoke)
	panelColor      = nrgba(colornames.White)
	borderColor     = nrgba(colornames.Steelblue)
	noteColor       = nrgba(colornames.Lightyellow)
)

// state is shared by every window of the demo.
type state struct {
	th *material.Theme

	fps     uint32
	uptime  time.Duration
	mouse   utils.Vec2[int]
	scroll  utils.Vec2[float32]
	notes   int
	open    int
	windows int
}

// demo is the Application shown by the command.
type demo struct {
	log     *slog.Logger
	started time.Time
	windows *persistent.Manager[state]
	state   state
}

func newDemo(logger *slog.Logger, started time.Time) *demo {
	return &demo{
		log:     logger,
		started: started,
		windows: persistent.NewManager[state](),
	}
}

func (d *demo) Init(ctx *gioapp.Context) {
	d.state.th = ctx.GUI.Theme
	d.windows.Push(statusWindow(), launcherWindow())
	d.log.Debug("demo: initialized", "windows", d.windows.IDs())
}

func (d *demo) Update(t *gioapp.Timer, ctx *gioapp.Context) error {
	if ctx.Keyboard.PressedThisFrame(input.KeyEscape) {
		ctx.RequestClose()
	}

	d.state.fps = t.FPS()
	d.state.uptime = t.AbsoluteTime()
	d.state.mouse = ctx.Mouse.Position()
	d.state.scroll = d.state.scroll.Add(ctx.Mouse.Scroll())
	d.state.windows = d.windows.Len()

	before := d.windows.Windows()
	ctx.GUI.Layout(func(gtx C) D {
		paint.Fill(gtx.Ops, backgroundColor)
		d.windows.Render(&d.state, gtx)
		return D{Size: gtx.Constraints.Max}
	})
	for _, id := range closedIDs(before, d.windows.IDs()) {
		d.log.Debug("demo: window closed", "id", id)
	}
	return nil
}

// closedIDs returns the ids of the windows in before that are no longer live.
func closedIDs(before []*persistent.Window[state], live []uint64) []uint64 {
	var ids []uint64
	for _, w := range before {
		if !slices.Contains(live, w.ID()) {
			ids = append(ids, w.ID())
		}
	}
	return ids
}

func (d *demo) Close(*gioapp.Context) {
	d.log.Info("demo: closed", "notes", d.state.notes, "elapsed", utils.FormatTime(time.Since(d.started)))
}

func (d *demo) HandleEvent(_ *gioapp.Context, e input.Event) {
	if r, ok := e.(input.ResizeEvent); ok {
		d.log.Debug("demo: window resized", "size", r.Size)
	}
}

// statusWindow shows the loop statistics and never closes.
func statusWindow() *persistent.Window[state] {
	return persistent.NewWindowFunc(func(id uint64, _ *persistent.Spawned[state], gtx C, s *state) bool {
		lines := []string{
			fmt.Sprintf("%d fps", s.fps),
			fmt.Sprintf("running for %s", utils.FormatTime(s.uptime)),
			fmt.Sprintf("mouse at %d,%d", s.mouse.X, s.mouse.Y),
			fmt.Sprintf("scrolled %.0f,%.0f lines", s.scroll.X, s.scroll.Y),
			fmt.Sprintf("%d windows", s.windows),
		}
		panel(gtx, s.th, image.Pt(16, 16), panelColor, "Status", func(gtx C) D {
			return labels(gtx, s.th, lines)
		})
		return true
	})
}

// launcherWindow spawns a note window for every click on its button.
func launcherWindow() *persistent.Window[state] {
	var btn widget.Clickable
	return persistent.NewWindowFunc(func(id uint64, spawned *persistent.Spawned[state], gtx C, s *state) bool {
		for btn.Clicked() {
			s.notes++
			s.open++
			spawned.Push(noteWindow(s.notes))
		}
		panel(gtx, s.th, image.Pt(16, 200), panelColor, "Launcher", func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					return material.Body1(s.th, fmt.Sprintf("%d notes open", s.open)).Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
				layout.Rigid(material.Button(s.th, &btn, "New note").Layout),
			)
		})
		return true
	})
}

// noteWindow stays open until its close button is clicked.
func noteWindow(n int) *persistent.Window[state] {
	var btn widget.Clickable
	at := cascade(n)
	return persistent.NewWindowFunc(func(id uint64, _ *persistent.Spawned[state], gtx C, s *state) bool {
		if btn.Clicked() {
			s.open--
			return false
		}
		panel(gtx, s.th, at, noteColor, fmt.Sprintf("Note #%d", n), func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(material.Body1(s.th, fmt.Sprintf("window id %d", id)).Layout),
				layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
				layout.Rigid(material.Button(s.th, &btn, "Close").Layout),
			)
		})
		return true
	})
}

// cascade returns the offset of note n. Notes step down a diagonal and
// walk back up after ten steps.
func cascade(n int) image.Point {
	step := 9 - utils.Abs((n-1)%18-9)
	return image.Pt(280+24*step, 16+24*step)
}

// fitInside moves a box of the given size at p so that it stays inside
// bounds, keeping its top left corner visible when it does not fit.
func fitInside(p, size, bounds image.Point) image.Point {
	return image.Pt(
		utils.Max(0, utils.Min(p.X, bounds.X-size.X)),
		utils.Max(0, utils.Min(p.Y, bounds.Y-size.Y)),
	)
}

// panel draws a bordered box with a title at the given offset, moved back
// into the window when it would overflow it.
func panel(gtx C, th *material.Theme, at image.Point, bg color.NRGBA, title string, body layout.Widget) D {
	size := image.Pt(gtx.Dp(unit.Dp(240)), gtx.Dp(unit.Dp(170)))
	at = fitInside(at, size, gtx.Constraints.Max)
	defer op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(at.X), float32(at.Y)))).Push(gtx.Ops).Pop()

	gtx.Constraints.Min = image.Point{}
	gtx.Constraints.Max = size

	return widget.Border{Color: borderColor, Width: unit.Dp(1)}.Layout(gtx, func(gtx C) D {
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx C) D {
				paint.FillShape(gtx.Ops, bg, clip.Rect{Max: gtx.Constraints.Min}.Op())
				return D{Size: gtx.Constraints.Min}
			}),
			layout.Stacked(func(gtx C) D {
				return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(material.H6(th, title).Layout),
						layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
						layout.Rigid(body),
					)
				})
			}),
		)
	})
}

func labels(gtx C, th *material.Theme, lines []string) D {
	children := make([]layout.FlexChild, 0, len(lines))
	for _, l := range lines {
		children = append(children, layout.Rigid(material.Body1(th, l).Layout))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
