/*
Package gioapp is an application loop for Gio programs. It gates the updates with a timer,
tracks the keyboard and mouse state between frames and lets an immediate mode GUI keep
persistent windows alive across frames.

The package provides a demo command showing the persistent windows at work.
To check the supported flags type:

	$ gioapp --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"github.com/esimov/gioapp"
		"github.com/esimov/gioapp/input"
	)

	type app struct{}

	func (app) Init(ctx *gioapp.Context) {}
	func (app) Close(ctx *gioapp.Context) {}
	func (app) HandleEvent(ctx *gioapp.Context, e input.Event) {}

	func (app) Update(t *gioapp.Timer, ctx *gioapp.Context) error {
		if ctx.Keyboard.PressedThisFrame(input.KeyEscape) {
			ctx.RequestClose()
		}
		// Lay out the widgets with ctx.GUI.Layout.
		return nil
	}

	func main() {
		gioapp.Run(app{}, gioapp.DefaultConfig())
	}
*/
package gioapp
