// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"strings"
	"testing"

	"github.com/nodens/Rack/app"
	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/input"
	"github.com/nodens/Rack/io/key"
	"github.com/nodens/Rack/io/pointer"
)

const demoTrace = `{"op":"dirty","t":0}
{"op":"hover","t":1000,"pos":[3,2],"delta":[0,0]}
{"op":"button","t":2000,"pos":[3,2],"button":0,"action":1,"mods":0}
{"op":"button","t":3000,"pos":[3,2],"button":0,"action":0,"mods":0}
{"op":"text","t":4000,"pos":[3,2],"rune":104}
{"op":"text","t":5000,"pos":[3,2],"rune":105}
{"op":"hover","t":6000,"pos":[5,4],"delta":[2,2]}
`

func newTestDemo(t *testing.T, tr string) (*app.Window, *demo, *bool) {
	t.Helper()
	quit := new(bool)
	drv := &replayDriver{r: strings.NewReader(tr), size: f32.Pt(80, 25)}
	w := app.NewWindow(drv)
	d := newDemo(w.Tree(), 1, func() { *quit = true })
	if err := w.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	return w, d, quit
}

func TestDemoReplay(t *testing.T) {
	w, d, quit := newTestDemo(t, demoTrace)
	s := w.Input()
	sel := d.box(s.Selected())
	if sel == nil || sel.label != "a" {
		t.Fatalf("selected box %+v, want a", sel)
	}
	if got := string(sel.text); got != "hi" {
		t.Errorf("box a has text %q, want %q", got, "hi")
	}
	if h := d.box(s.Hovered()); h == nil || h.label != "a1" {
		t.Errorf("hovered box %+v, want a1", h)
	}
	if s.Dragged() != nil {
		t.Errorf("dragging %v after release", s.Dragged())
	}
	if *quit {
		t.Error("demo quit")
	}
}

func TestDemoQuit(t *testing.T) {
	const tr = `{"op":"key","pos":[0,0],"key":81,"scancode":0,"state":1,"mods":0}
`
	_, _, quit := newTestDemo(t, tr)
	if !*quit {
		t.Error("q did not quit")
	}
}

// nopHandler consumes nothing.
type nopHandler struct{}

func (nopHandler) HandleButton(f32.Point, pointer.Button, pointer.Action, key.Modifiers) bool {
	return false
}

func (nopHandler) HandleKey(f32.Point, key.Code, int, key.State, key.Modifiers) bool {
	return false
}

func (nopHandler) HandleHover(pos, delta f32.Point) bool   { return false }
func (nopHandler) HandleLeave() bool                       { return false }
func (nopHandler) HandleScroll(pos, scroll f32.Point) bool { return false }
func (nopHandler) HandleDrop(f32.Point, []string) bool     { return false }
func (nopHandler) HandleText(f32.Point, rune) bool         { return false }
func (nopHandler) HandleDirty() bool                       { return false }

func TestPainterRepaintsAllInput(t *testing.T) {
	n := 0
	p := painter{Handler: nopHandler{}, paint: func() { n++ }}
	var h input.Handler = p
	h.HandleButton(f32.Point{}, pointer.ButtonPrimary, pointer.Press, 0)
	h.HandleHover(f32.Point{}, f32.Point{})
	h.HandleLeave()
	h.HandleScroll(f32.Point{}, f32.Pt(0, 1))
	h.HandleDrop(f32.Point{}, nil)
	h.HandleText(f32.Point{}, 'x')
	h.HandleKey(f32.Point{}, key.CodeA, 0, key.Press, 0)
	h.HandleDirty()
	if n != 8 {
		t.Errorf("painted %d times for 8 inputs", n)
	}
}
