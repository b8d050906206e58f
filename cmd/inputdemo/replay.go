// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/nodens/Rack/app"
	"github.com/nodens/Rack/config"
	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/input"
	"github.com/nodens/Rack/io/key"
	"github.com/nodens/Rack/io/trace"
)

// replayDriver is a headless driver feeding a recorded trace. Its clock
// follows the times of the trace.
type replayDriver struct {
	r    io.Reader
	size f32.Point
	now  time.Duration
}

func (d *replayDriver) CursorLocked() bool                   { return false }
func (d *replayDriver) Modifiers() key.Modifiers             { return 0 }
func (d *replayDriver) KeyName(key.Code, int) (string, bool) { return "", false }
func (d *replayDriver) Scancode(key.Code) int                { return 0 }
func (d *replayDriver) Now() time.Duration                   { return d.now }
func (d *replayDriver) Size() f32.Point                      { return d.size }

func (d *replayDriver) Run(ctx context.Context, h input.Handler) error {
	return trace.Replay(d.r, h, func(t time.Duration) {
		d.now = t
	})
}

// replayFile replays the trace in path and logs the resulting
// interaction state.
func replayFile(ctx context.Context, cfg config.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	drv := &replayDriver{r: f, size: f32.Pt(float32(cfg.Window.Width), float32(cfg.Window.Height))}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	w := app.NewWindow(drv, app.WithConfig(cfg))
	d := newDemo(w.Tree(), cell(), cancel)
	if err := w.Run(ctx); err != nil {
		return err
	}
	s := w.Input()
	for _, role := range []struct {
		name string
		b    *box
	}{
		{"hovered", d.box(s.Hovered())},
		{"dragged", d.box(s.Dragged())},
		{"drag hovered", d.box(s.DragHovered())},
		{"selected", d.box(s.Selected())},
	} {
		if role.b != nil {
			log.Printf("%s: %s %q", role.name, role.b.label, string(role.b.text))
		}
	}
	return nil
}
