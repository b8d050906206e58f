// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"reflect"
	"testing"

	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/event"
	"github.com/nodens/Rack/io/key"
	"github.com/nodens/Rack/io/pointer"
	"github.com/nodens/Rack/io/system"
)

type finalizeLog []event.Tag

func (l *finalizeLog) Finalize(t event.Tag) {
	*l = append(*l, t)
}

func press(x, y float32) pointer.ButtonEvent {
	return pointer.ButtonEvent{Position: f32.Pt(x, y), Button: pointer.ButtonPrimary, Action: pointer.Press}
}

func TestDispatchHitTest(t *testing.T) {
	tree := NewTree(f32.Pt(100, 100))
	a := tree.New(f32.Rect(0, 0, 50, 50), Opaque)
	b := tree.New(f32.Rect(25, 25, 75, 75), Opaque)
	tree.Root().Add(a)
	tree.Root().Add(b)

	tests := []struct {
		x, y float32
		want event.Tag
	}{
		{30, 30, b.Tag()},
		{10, 10, a.Tag()},
		{60, 60, b.Tag()},
		{90, 90, nil},
	}
	for _, tc := range tests {
		if got := tree.Dispatch(press(tc.x, tc.y)); got != tc.want {
			t.Errorf("press at (%v,%v) claimed by %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}

	b.Hidden = true
	if got := tree.Dispatch(press(30, 30)); got != a.Tag() {
		t.Errorf("hidden widget shadows %v", got)
	}
}

func TestDispatchLocalPosition(t *testing.T) {
	tree := NewTree(f32.Pt(100, 100))
	a := tree.New(f32.Rect(10, 10, 60, 60), nil)
	var got []f32.Point
	c := tree.New(f32.Rect(5, 5, 20, 20), func(w *Widget, e event.Event) *Widget {
		if e, ok := e.(key.HoverTextEvent); ok {
			got = append(got, e.Position)
		}
		return w
	})
	tree.Root().Add(a)
	a.Add(c)

	if claimed := tree.Dispatch(key.HoverTextEvent{Position: f32.Pt(17, 18), Rune: 'x'}); claimed != c.Tag() {
		t.Fatalf("claimed by %v, want %v", claimed, c.Tag())
	}
	if want := []f32.Point{f32.Pt(2, 3)}; !reflect.DeepEqual(got, want) {
		t.Errorf("child saw positions %v, want %v", got, want)
	}
	if p := c.Position(); p != f32.Pt(15, 15) {
		t.Errorf("Position = %v, want {15 15}", p)
	}
}

func TestDispatchFallsBackToParent(t *testing.T) {
	tree := NewTree(f32.Pt(100, 100))
	var order []ID
	record := func(claim bool) Handler {
		return func(w *Widget, e event.Event) *Widget {
			order = append(order, w.ID())
			if claim {
				return w
			}
			return nil
		}
	}
	parent := tree.New(f32.Rect(0, 0, 100, 100), record(true))
	child := tree.New(f32.Rect(0, 0, 10, 10), record(false))
	tree.Root().Add(parent)
	parent.Add(child)

	if got := tree.Dispatch(pointer.HoverEvent{Position: f32.Pt(5, 5)}); got != parent.Tag() {
		t.Errorf("claimed by %v, want parent", got)
	}
	if want := []ID{child.ID(), parent.ID()}; !reflect.DeepEqual(order, want) {
		t.Errorf("visit order %v, want %v", order, want)
	}
}

func TestDispatchDirty(t *testing.T) {
	tree := NewTree(f32.Pt(100, 100))
	var dirty []ID
	h := func(w *Widget, e event.Event) *Widget {
		if _, ok := e.(system.DirtyEvent); ok {
			dirty = append(dirty, w.ID())
		}
		return w
	}
	a := tree.New(f32.Rect(0, 0, 10, 10), h)
	b := tree.New(f32.Rect(200, 200, 210, 210), h)
	hidden := tree.New(f32.Rect(0, 0, 10, 10), h)
	hidden.Hidden = true
	tree.Root().Add(a)
	tree.Root().Add(b)
	tree.Root().Add(hidden)

	if got := tree.Dispatch(system.DirtyEvent{}); got != nil {
		t.Errorf("dirty event claimed by %v", got)
	}
	if want := []ID{a.ID(), b.ID()}; !reflect.DeepEqual(dirty, want) {
		t.Errorf("dirty reached %v, want %v", dirty, want)
	}
}

func TestSendResolution(t *testing.T) {
	tree := NewTree(f32.Pt(100, 100))
	plain := tree.New(f32.Rect(0, 0, 10, 10), nil)
	inner := tree.New(f32.Rect(0, 0, 5, 5), nil)
	redirect := tree.New(f32.Rect(0, 0, 10, 10), func(w *Widget, e event.Event) *Widget {
		return inner
	})
	tree.Root().Add(plain)
	tree.Root().Add(redirect)
	redirect.Add(inner)

	tests := []struct {
		name string
		to   *Widget
		e    event.Event
		want event.Tag
	}{
		{"enter accepted", plain, pointer.EnterEvent{}, plain.Tag()},
		{"select accepted", plain, key.SelectEvent{}, plain.Tag()},
		{"drag start accepted", plain, pointer.DragStartEvent{}, plain.Tag()},
		{"drag enter accepted", plain, pointer.DragEnterEvent{}, plain.Tag()},
		{"leave", plain, pointer.LeaveEvent{}, nil},
		{"select key unclaimed", plain, key.SelectKeyEvent{}, nil},
		{"select text unclaimed", plain, key.SelectTextEvent{Rune: 'a'}, nil},
		{"enter redirected", redirect, pointer.EnterEvent{}, inner.Tag()},
		{"select key claimed", redirect, key.SelectKeyEvent{}, inner.Tag()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tree.Send(tc.to.Tag(), tc.e); got != tc.want {
				t.Errorf("resolved to %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSendUnknown(t *testing.T) {
	tree := NewTree(f32.Pt(100, 100))
	if got := tree.Send(ID(999), pointer.EnterEvent{}); got != nil {
		t.Errorf("unknown widget resolved to %v", got)
	}
	if got := tree.Send("foreign", pointer.EnterEvent{}); got != nil {
		t.Errorf("foreign tag resolved to %v", got)
	}
}

func TestDestroyFinalizesSubtree(t *testing.T) {
	tree := NewTree(f32.Pt(100, 100))
	var l finalizeLog
	tree.SetFinalizer(&l)

	a := tree.New(f32.Rect(0, 0, 50, 50), nil)
	c1 := tree.New(f32.Rect(0, 0, 10, 10), nil)
	g := tree.New(f32.Rect(0, 0, 5, 5), nil)
	c2 := tree.New(f32.Rect(10, 10, 20, 20), nil)
	keep := tree.New(f32.Rect(50, 50, 60, 60), nil)
	tree.Root().Add(a)
	tree.Root().Add(keep)
	a.Add(c1)
	c1.Add(g)
	a.Add(c2)

	tree.Root().Remove(a)
	want := finalizeLog{a.Tag(), c1.Tag(), g.Tag(), c2.Tag()}
	if !reflect.DeepEqual(l, want) {
		t.Errorf("finalized %v, want %v", l, want)
	}
	for _, w := range []*Widget{a, c1, g, c2} {
		if tree.Lookup(w.Tag()) != nil {
			t.Errorf("widget %d still registered", w.ID())
		}
	}
	if got := tree.Root().Children(); len(got) != 1 || got[0] != keep {
		t.Errorf("root children %v, want only the kept widget", got)
	}
	if tree.Len() != 2 {
		t.Errorf("%d live widgets, want 2", tree.Len())
	}

	// Destroying twice is harmless.
	tree.Destroy(a)
	if len(l) != len(want) {
		t.Errorf("second destroy finalized again: %v", l)
	}
}

func TestRemoveDuringDispatch(t *testing.T) {
	tree := NewTree(f32.Pt(100, 100))
	var doomed *Widget
	doomed = tree.New(f32.Rect(0, 0, 100, 100), nil)
	top := tree.New(f32.Rect(0, 0, 100, 100), func(w *Widget, e event.Event) *Widget {
		if doomed.Parent() != nil {
			tree.Root().Remove(doomed)
		}
		return nil
	})
	tree.Root().Add(doomed)
	tree.Root().Add(top)

	if got := tree.Dispatch(press(5, 5)); got != nil {
		t.Errorf("claimed by %v", got)
	}
	if tree.Lookup(doomed.Tag()) != nil {
		t.Error("removed widget still registered")
	}
}

func TestClear(t *testing.T) {
	tree := NewTree(f32.Pt(100, 100))
	var l finalizeLog
	tree.SetFinalizer(&l)
	for i := 0; i < 3; i++ {
		tree.Root().Add(tree.New(f32.Rect(0, 0, 1, 1), nil))
	}
	tree.Root().Clear()
	if len(l) != 3 || len(tree.Root().Children()) != 0 || tree.Len() != 1 {
		t.Errorf("clear left %d children, finalized %d", len(tree.Root().Children()), len(l))
	}
}
