// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"log"

	"github.com/nodens/Rack/app"
	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/event"
	"github.com/nodens/Rack/io/input"
	"github.com/nodens/Rack/io/key"
	"github.com/nodens/Rack/io/pointer"
	"github.com/nodens/Rack/io/system"
	"github.com/nodens/Rack/io/transfer"
	"github.com/nodens/Rack/widget"
)

// cellSize is the size in screen coordinates of a layout cell of a
// desktop window. Terminal cells are characters.
const cellSize = 16

// cell returns the layout cell size of the selected backend.
func cell() float32 {
	if *backend == "desktop" {
		return cellSize
	}
	return 1
}

// box is a demo widget.
type box struct {
	w     *widget.Widget
	label string
	// text is the most recent text typed into the box.
	text []rune
}

// demo holds the boxes of a window.
type demo struct {
	tree  *widget.Tree
	boxes map[widget.ID]*box
	quit  context.CancelFunc
}

// newDemo fills tree with boxes laid out on a grid of the given cell
// size. Pressing q or ctrl-c over the background calls quit.
func newDemo(tree *widget.Tree, cell float32, quit context.CancelFunc) *demo {
	d := &demo{tree: tree, boxes: make(map[widget.ID]*box), quit: quit}
	root := tree.Root()
	root.Handler = d.background
	a := d.add(root, "a", f32.Rect(2, 1, 22, 9), cell)
	d.add(a, "a1", f32.Rect(2, 2, 10, 6), cell)
	d.add(root, "b", f32.Rect(26, 1, 46, 9), cell)
	c := d.add(root, "c", f32.Rect(14, 5, 34, 13), cell)
	d.add(c, "c1", f32.Rect(11, 2, 19, 6), cell)
	return d
}

func (d *demo) add(parent *widget.Widget, label string, r f32.Rectangle, cell float32) *widget.Widget {
	w := d.tree.New(f32.Rectangle{Min: r.Min.Mul(cell), Max: r.Max.Mul(cell)}, d.handle)
	parent.Add(w)
	d.boxes[w.ID()] = &box{w: w, label: label}
	return w
}

// box returns the box identified by t, or nil.
func (d *demo) box(t event.Tag) *box {
	w := d.tree.Lookup(t)
	if w == nil {
		return nil
	}
	return d.boxes[w.ID()]
}

func (d *demo) handle(w *widget.Widget, e event.Event) *widget.Widget {
	b := d.boxes[w.ID()]
	if *verbose {
		if _, ok := e.(system.DirtyEvent); !ok {
			log.Printf("%s: %T %+v", b.label, e, e)
		}
	}
	switch e := e.(type) {
	case key.SelectTextEvent:
		b.text = append(b.text, e.Rune)
		return w
	case key.SelectKeyEvent:
		if e.Code == key.CodeBackspace && e.State != key.Release && len(b.text) > 0 {
			b.text = b.text[:len(b.text)-1]
			return w
		}
		return nil
	case transfer.PathDropEvent:
		if len(e.Paths) > 0 {
			b.text = []rune(e.Paths[0])
		}
		return w
	case pointer.ButtonEvent, pointer.HoverEvent, pointer.ScrollEvent, pointer.DragHoverEvent:
		return w
	}
	return nil
}

func (d *demo) background(w *widget.Widget, e event.Event) *widget.Widget {
	e2, ok := e.(key.HoverKeyEvent)
	if !ok || e2.State != key.Press {
		return nil
	}
	if e2.Code == key.CodeEscape || e2.Code == 'Q' || e2.Code == 'C' && e2.Modifiers.Contain(key.ModCtrl) {
		d.quit()
		return w
	}
	return nil
}

// painter calls paint after every input it forwards.
type painter struct {
	input.Handler
	paint func()
}

func (p painter) HandleButton(pos f32.Point, b pointer.Button, a pointer.Action, mods key.Modifiers) bool {
	defer p.paint()
	return p.Handler.HandleButton(pos, b, a, mods)
}

func (p painter) HandleHover(pos, delta f32.Point) bool {
	defer p.paint()
	return p.Handler.HandleHover(pos, delta)
}

func (p painter) HandleLeave() bool {
	defer p.paint()
	return p.Handler.HandleLeave()
}

func (p painter) HandleScroll(pos, scroll f32.Point) bool {
	defer p.paint()
	return p.Handler.HandleScroll(pos, scroll)
}

func (p painter) HandleDrop(pos f32.Point, paths []string) bool {
	defer p.paint()
	return p.Handler.HandleDrop(pos, paths)
}

func (p painter) HandleText(pos f32.Point, r rune) bool {
	defer p.paint()
	return p.Handler.HandleText(pos, r)
}

func (p painter) HandleKey(pos f32.Point, k key.Code, scancode int, s key.State, mods key.Modifiers) bool {
	defer p.paint()
	return p.Handler.HandleKey(pos, k, scancode, s, mods)
}

func (p painter) HandleDirty() bool {
	defer p.paint()
	return p.Handler.HandleDirty()
}

// paintDriver repaints after every input of the wrapped driver.
type paintDriver struct {
	app.Driver
	paint func()
}

func (d paintDriver) Run(ctx context.Context, h input.Handler) error {
	return d.Driver.Run(ctx, painter{Handler: h, paint: d.paint})
}
