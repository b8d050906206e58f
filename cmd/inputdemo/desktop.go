// SPDX-License-Identifier: Unlicense OR MIT

//go:build !openbsd && !freebsd && !android && !ios && !js
// +build !openbsd,!freebsd,!android,!ios,!js

package main

import (
	"context"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/nodens/Rack/app"
	"github.com/nodens/Rack/app/desktop"
	"github.com/nodens/Rack/config"
)

func runDesktop(ctx context.Context, cfg config.Config, opts []app.Option) error {
	// Required by the GLFW threading model.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()
	win, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return err
	}
	defer win.Destroy()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	drv := desktop.New(win)
	w := app.NewWindow(drv, opts...)
	newDemo(w.Tree(), cell(), cancel)
	return w.Run(ctx)
}
