// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"testing"
	"time"

	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/event"
	"github.com/nodens/Rack/io/input"
	"github.com/nodens/Rack/io/key"
	"github.com/nodens/Rack/io/pointer"
	"github.com/nodens/Rack/widget"
)

type window struct{}

func (window) CursorLocked() bool                   { return false }
func (window) Modifiers() key.Modifiers             { return 0 }
func (window) KeyName(key.Code, int) (string, bool) { return "", false }
func (window) Scancode(key.Code) int                { return 0 }
func (window) Now() time.Duration                   { return 0 }

// recorder is a widget handler counting events by type.
type recorder map[string]int

func (r recorder) handle(w *widget.Widget, e event.Event) *widget.Widget {
	switch e.(type) {
	case pointer.EnterEvent:
		r["enter"]++
	case pointer.LeaveEvent:
		r["leave"]++
	case pointer.DragStartEvent:
		r["dragstart"]++
	case pointer.DragEndEvent:
		r["dragend"]++
	case pointer.DragEnterEvent:
		r["dragenter"]++
	case pointer.DragLeaveEvent:
		r["dragleave"]++
	case key.SelectEvent:
		r["select"]++
	case key.DeselectEvent:
		r["deselect"]++
	case pointer.DoubleClickEvent:
		r["doubleclick"]++
	}
	return w
}

func TestRemoveClearsRoles(t *testing.T) {
	tree := widget.NewTree(f32.Pt(100, 100))
	s := input.NewState(tree, window{})
	tree.SetFinalizer(s)

	rec := recorder{}
	w := tree.New(f32.Rect(0, 0, 50, 50), rec.handle)
	tree.Root().Add(w)

	at := f32.Pt(10, 10)
	s.HandleHover(at, f32.Point{})
	s.HandleButton(at, pointer.ButtonPrimary, pointer.Press, 0)
	s.HandleHover(at.Add(f32.Pt(1, 0)), f32.Pt(1, 0))
	if s.Hovered() != w.Tag() || s.Dragged() != w.Tag() || s.DragHovered() != w.Tag() || s.Selected() != w.Tag() {
		t.Fatalf("widget does not hold every role: %v %v %v %v", s.Hovered(), s.Dragged(), s.DragHovered(), s.Selected())
	}

	tree.Root().Remove(w)
	for _, ev := range []string{"leave", "dragend", "dragleave", "deselect"} {
		if rec[ev] != 1 {
			t.Errorf("got %d %s events, want 1", rec[ev], ev)
		}
	}
	if s.Hovered() != nil || s.Dragged() != nil || s.DragHovered() != nil || s.Selected() != nil {
		t.Error("roles still refer to the removed widget")
	}

	// A press on the now empty area must not reach the removed widget.
	before := len(rec)
	s.HandleButton(at, pointer.ButtonPrimary, pointer.Press, 0)
	s.HandleButton(at, pointer.ButtonPrimary, pointer.Release, 0)
	if len(rec) != before || rec["doubleclick"] != 0 {
		t.Errorf("removed widget received events: %v", rec)
	}
}

func TestHoverRedirectToChild(t *testing.T) {
	tree := widget.NewTree(f32.Pt(100, 100))
	s := input.NewState(tree, window{})
	tree.SetFinalizer(s)

	child := tree.New(f32.Rect(0, 0, 10, 10), nil)
	parent := tree.New(f32.Rect(20, 20, 80, 80), func(w *widget.Widget, e event.Event) *widget.Widget {
		if _, ok := e.(pointer.EnterEvent); ok {
			return child
		}
		return w
	})
	tree.Root().Add(parent)
	parent.Add(child)

	if !s.HandleHover(f32.Pt(70, 70), f32.Point{}) {
		t.Fatal("hover not claimed")
	}
	if s.Hovered() != child.Tag() {
		t.Errorf("hovered %v, want the redirect target %v", s.Hovered(), child.Tag())
	}
}
