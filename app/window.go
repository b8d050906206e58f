// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"errors"
	"io"

	"github.com/nodens/Rack/config"
	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/input"
	"github.com/nodens/Rack/io/trace"
	"github.com/nodens/Rack/widget"
)

// Driver is a platform window.
type Driver interface {
	input.Window
	// Size returns the current size of the window.
	Size() f32.Point
	// Run delivers the window's input to h until ctx is done or the
	// window is closed. It must call h.HandleDirty after the window
	// is resized.
	Run(ctx context.Context, h input.Handler) error
}

// Option configures a Window.
type Option func(w *Window)

// Window routes the input of a Driver into a widget tree.
type Window struct {
	drv   Driver
	tree  *widget.Tree
	state *input.State
	rec   *trace.Recorder
}

// handler resizes the tree before a DirtyEvent is dispatched.
type handler struct {
	input.Handler
	w *Window
}

// NewWindow creates a Window for drv.
func NewWindow(drv Driver, options ...Option) *Window {
	w := &Window{drv: drv}
	w.tree = widget.NewTree(drv.Size())
	w.state = input.NewState(w.tree, drv)
	w.tree.SetFinalizer(w.state)
	for _, o := range options {
		o(w)
	}
	return w
}

// WithConfig applies the input settings of cfg.
func WithConfig(cfg config.Config) Option {
	return func(w *Window) {
		cfg.Apply(w.state)
	}
}

// Trace records all input of the window to out.
func Trace(out io.Writer) Option {
	return func(w *Window) {
		w.rec = trace.NewRecorder(w.state, out, w.drv.Now)
	}
}

// Tree returns the widget tree of the window.
func (w *Window) Tree() *widget.Tree {
	return w.tree
}

// Input returns the interaction state of the window.
func (w *Window) Input() *input.State {
	return w.state
}

// Run delivers input until ctx is done or the window is closed.
func (w *Window) Run(ctx context.Context) error {
	w.tree.Resize(w.drv.Size())
	var h input.Handler = w.state
	if w.rec != nil {
		h = w.rec
	}
	err := w.drv.Run(ctx, handler{Handler: h, w: w})
	if w.rec != nil {
		err = errors.Join(err, w.rec.Err())
	}
	return err
}

func (h handler) HandleDirty() bool {
	h.w.tree.Resize(h.w.drv.Size())
	return h.Handler.HandleDirty()
}
