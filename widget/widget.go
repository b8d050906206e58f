// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"log"

	"golang.org/x/exp/slices"

	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/event"
	"github.com/nodens/Rack/io/key"
	"github.com/nodens/Rack/io/pointer"
	"github.com/nodens/Rack/io/system"
	"github.com/nodens/Rack/io/transfer"
)

// ID identifies a widget within its Tree. IDs are never reused.
type ID uint64

// Handler reacts to an event delivered to w. It returns the widget that
// claims the event, or nil to let it pass.
//
// For EnterEvent, SelectEvent, DragStartEvent and DragEnterEvent the
// returned widget takes the corresponding role; nil keeps w.
type Handler func(w *Widget, e event.Event) *Widget

// Finalizer is told about every widget just before it is destroyed.
type Finalizer interface {
	Finalize(t event.Tag)
}

// Widget is a node of a Tree.
type Widget struct {
	// Box is the bounds of the widget in its parent's coordinates.
	Box f32.Rectangle
	// Hidden widgets and their descendants receive no dispatched events.
	Hidden bool
	// Handler processes events delivered to the widget. A nil Handler
	// claims nothing.
	Handler Handler

	id       ID
	tree     *Tree
	parent   *Widget
	children []*Widget
}

// Tree is a hierarchy of widgets and the registry of their IDs.
type Tree struct {
	root      *Widget
	widgets   map[ID]*Widget
	last      ID
	finalizer Finalizer
}

// Opaque is a Handler claiming every event offered to its widget.
func Opaque(w *Widget, e event.Event) *Widget {
	return w
}

// NewTree returns a tree whose root covers size.
func NewTree(size f32.Point) *Tree {
	t := &Tree{widgets: make(map[ID]*Widget)}
	t.root = t.New(f32.Rectangle{Max: size}, nil)
	return t
}

// SetFinalizer sets the receiver of destroyed widget notifications.
func (t *Tree) SetFinalizer(f Finalizer) {
	t.finalizer = f
}

// Root returns the root widget.
func (t *Tree) Root() *Widget {
	return t.root
}

// Resize changes the size of the root widget.
func (t *Tree) Resize(size f32.Point) {
	t.root.Box = f32.Rectangle{Min: t.root.Box.Min, Max: t.root.Box.Min.Add(size)}
}

// New registers a widget that is not yet part of the hierarchy.
func (t *Tree) New(box f32.Rectangle, h Handler) *Widget {
	t.last++
	w := &Widget{Box: box, Handler: h, id: t.last, tree: t}
	t.widgets[w.id] = w
	return w
}

// Lookup returns the live widget identified by tag, or nil.
func (t *Tree) Lookup(tag event.Tag) *Widget {
	id, ok := tag.(ID)
	if !ok {
		return nil
	}
	return t.widgets[id]
}

// Len returns the number of live widgets, including the root.
func (t *Tree) Len() int {
	return len(t.widgets)
}

// Destroy destroys w and its descendants, detaching w from its parent.
func (t *Tree) Destroy(w *Widget) {
	if w == t.root {
		panic("widget: cannot destroy the root")
	}
	if w.tree != t {
		panic("widget: widget belongs to another tree")
	}
	if p := w.parent; p != nil {
		if i := slices.Index(p.children, w); i >= 0 {
			p.children = slices.Delete(p.children, i, i+1)
		}
		w.parent = nil
	}
	t.destroy(w)
}

func (t *Tree) destroy(w *Widget) {
	if _, live := t.widgets[w.id]; !live {
		return
	}
	if t.finalizer != nil {
		t.finalizer.Finalize(w.id)
	}
	children := w.children
	w.children = nil
	for _, c := range children {
		c.parent = nil
		t.destroy(c)
	}
	delete(t.widgets, w.id)
}

// Dispatch offers e to the hierarchy and returns the ID of the widget
// that claimed it. A DirtyEvent is delivered to every visible widget
// and never claimed.
func (t *Tree) Dispatch(e event.Event) event.Tag {
	if _, ok := e.(system.DirtyEvent); ok {
		t.root.broadcast(e)
		return nil
	}
	if w := t.root.dispatch(e); w != nil {
		return w.id
	}
	return nil
}

// Send delivers e to the widget identified by tag. Events for widgets
// no longer in the tree are dropped; that only happens when a widget
// was destroyed without its Finalizer being set.
func (t *Tree) Send(tag event.Tag, e event.Event) event.Tag {
	w := t.Lookup(tag)
	if w == nil {
		log.Printf("widget: dropping %T for unknown widget %v", e, tag)
		return nil
	}
	target := w.handle(e)
	if target == nil && notifies(e) {
		target = w
	}
	if target == nil {
		return nil
	}
	return target.id
}

// ID returns the identifier of w.
func (w *Widget) ID() ID {
	return w.id
}

// Tag returns w's identifier as an event tag.
func (w *Widget) Tag() event.Tag {
	return w.id
}

// Parent returns the parent of w, or nil.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// Children returns the children of w, bottom first.
func (w *Widget) Children() []*Widget {
	return w.children
}

// Add appends c on top of w's children.
func (w *Widget) Add(c *Widget) {
	if c.tree != w.tree {
		panic("widget: widget belongs to another tree")
	}
	if c.parent != nil || c == w.tree.root {
		panic(fmt.Sprintf("widget: %d already has a parent", c.id))
	}
	if _, live := w.tree.widgets[c.id]; !live {
		panic(fmt.Sprintf("widget: %d was destroyed", c.id))
	}
	c.parent = w
	w.children = append(w.children, c)
}

// Remove detaches the child c and destroys it.
func (w *Widget) Remove(c *Widget) {
	if c.parent != w {
		panic(fmt.Sprintf("widget: %d is not a child of %d", c.id, w.id))
	}
	w.tree.Destroy(c)
}

// Clear destroys all children of w.
func (w *Widget) Clear() {
	for len(w.children) > 0 {
		w.Remove(w.children[len(w.children)-1])
	}
}

// Position returns the top left corner of w in root coordinates.
func (w *Widget) Position() f32.Point {
	var p f32.Point
	for ; w != nil; w = w.parent {
		p = p.Add(w.Box.Min)
	}
	return p
}

func (w *Widget) handle(e event.Event) *Widget {
	if w.Handler == nil {
		return nil
	}
	return w.Handler(w, e)
}

func (w *Widget) dispatch(e event.Event) *Widget {
	if pos, ok := position(e); ok {
		// Handlers may add or remove widgets while the event is routed.
		children := slices.Clone(w.children)
		for i := len(children) - 1; i >= 0; i-- {
			c := children[i]
			if c.parent != w || c.Hidden || !c.Box.Contains(pos) {
				continue
			}
			if claimed := c.dispatch(at(e, pos.Sub(c.Box.Min))); claimed != nil {
				return claimed
			}
		}
	}
	return w.handle(e)
}

func (w *Widget) broadcast(e event.Event) {
	w.handle(e)
	for _, c := range slices.Clone(w.children) {
		if c.parent == w && !c.Hidden {
			c.broadcast(e)
		}
	}
}

// notifies reports whether e announces a role change, which the
// recipient accepts unless it redirects.
func notifies(e event.Event) bool {
	switch e.(type) {
	case pointer.EnterEvent, pointer.DragStartEvent, pointer.DragEnterEvent, key.SelectEvent:
		return true
	default:
		return false
	}
}

func position(e event.Event) (f32.Point, bool) {
	switch e := e.(type) {
	case pointer.ButtonEvent:
		return e.Position, true
	case pointer.HoverEvent:
		return e.Position, true
	case pointer.ScrollEvent:
		return e.Position, true
	case pointer.DragHoverEvent:
		return e.Position, true
	case transfer.PathDropEvent:
		return e.Position, true
	case key.HoverKeyEvent:
		return e.Position, true
	case key.HoverTextEvent:
		return e.Position, true
	default:
		return f32.Point{}, false
	}
}

// at returns e moved to position p.
func at(e event.Event, p f32.Point) event.Event {
	switch e := e.(type) {
	case pointer.ButtonEvent:
		e.Position = p
		return e
	case pointer.HoverEvent:
		e.Position = p
		return e
	case pointer.ScrollEvent:
		e.Position = p
		return e
	case pointer.DragHoverEvent:
		e.Position = p
		return e
	case transfer.PathDropEvent:
		e.Position = p
		return e
	case key.HoverKeyEvent:
		e.Position = p
		return e
	case key.HoverTextEvent:
		e.Position = p
		return e
	default:
		return e
	}
}
