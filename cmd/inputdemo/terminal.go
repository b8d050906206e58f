// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/nodens/Rack/app"
	"github.com/nodens/Rack/app/terminal"
	"github.com/nodens/Rack/config"
	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/input"
	"github.com/nodens/Rack/widget"
)

var (
	styleBox      = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleHover    = tcell.StyleDefault.Background(tcell.ColorTeal).Foreground(tcell.ColorWhite)
	styleDrag     = tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorWhite)
	styleDragOver = tcell.StyleDefault.Background(tcell.ColorOlive).Foreground(tcell.ColorBlack)
)

func runTerminal(ctx context.Context, cfg config.Config, opts []app.Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	if *verbose {
		// Log lines would garble the screen.
		log.SetOutput(logWriter{screen: screen})
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	drv := terminal.New(screen)
	var (
		w *app.Window
		d *demo
	)
	pd := paintDriver{Driver: drv, paint: func() {
		paintTerminal(screen, w.Tree(), w.Input(), d)
	}}
	w = app.NewWindow(pd, opts...)
	d = newDemo(w.Tree(), cell(), cancel)
	return w.Run(ctx)
}

// paintTerminal draws the boxes with the colors of their roles.
func paintTerminal(screen tcell.Screen, tree *widget.Tree, s *input.State, d *demo) {
	screen.Clear()
	var paint func(w *widget.Widget)
	paint = func(w *widget.Widget) {
		for _, c := range w.Children() {
			if c.Hidden {
				continue
			}
			b := d.box(c.Tag())
			style := styleBox
			switch c.Tag() {
			case s.Dragged():
				style = styleDrag
			case s.DragHovered():
				style = styleDragOver
			case s.Hovered():
				style = styleHover
			}
			p := c.Position()
			r := f32.Rectangle{Min: p, Max: p.Add(c.Box.Size())}
			for y := int(r.Min.Y); y < int(r.Max.Y); y++ {
				for x := int(r.Min.X); x < int(r.Max.X); x++ {
					screen.SetContent(x, y, ' ', nil, style)
				}
			}
			label := b.label
			if c.Tag() == s.Selected() {
				label = "[" + label + "]"
			}
			label += " " + string(b.text)
			for i, ch := range []rune(label) {
				if x := int(r.Min.X) + i; x < int(r.Max.X) {
					screen.SetContent(x, int(r.Min.Y), ch, nil, style)
				}
			}
			paint(c)
		}
	}
	paint(tree.Root())
	screen.Show()
}

// logWriter shows log output on the bottom line of the screen.
type logWriter struct {
	screen tcell.Screen
}

func (l logWriter) Write(p []byte) (int, error) {
	w, h := l.screen.Size()
	line := []rune(string(p))
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) && line[x] != '\n' {
			r = line[x]
		}
		l.screen.SetContent(x, h-1, r, nil, tcell.StyleDefault)
	}
	l.screen.Show()
	return len(p), nil
}
