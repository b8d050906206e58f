// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app connects a widget tree to a platform window.

A [Window] owns the [widget.Tree] of a platform window and the
[input.State] tracking interaction with it. A [Driver] delivers the
platform's input; drivers exist for desktop windows (package
app/desktop, using GLFW) and terminals (package app/terminal, using
tcell).

For example:

	drv := terminal.New(screen)
	w := app.NewWindow(drv, app.WithConfig(cfg))
	w.Tree().Root().Add(w.Tree().New(f32.Rect(0, 0, 10, 4), widget.Opaque))
	if err := w.Run(ctx); err != nil {
		log.Fatal(err)
	}

# Main Thread

Some drivers need the main thread of the program. Run such windows from
the main goroutine.
*/
package app
