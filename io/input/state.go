// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/nodens/Rack/io/event"
	"github.com/nodens/Rack/io/key"
	"github.com/nodens/Rack/io/pointer"
)

// DefaultDoubleClick is the default maximum interval between the two
// presses of a double click.
const DefaultDoubleClick = 300 * time.Millisecond

// State tracks the interaction state of a window and routes its input.
type State struct {
	// DoubleClick is the maximum interval between two primary button
	// presses on the same widget for them to form a double click.
	DoubleClick time.Duration

	tree Tree
	win  Window

	hovered     event.Tag
	dragged     event.Tag
	dragHovered event.Tag
	selected    event.Tag
	// dragButton is only meaningful while dragged is set.
	dragButton pointer.Button

	heldKeys map[key.Code]struct{}

	// lastClicked is nil when no click can complete a double click.
	lastClicked   event.Tag
	lastClickTime time.Duration
}

// NewState returns the State for a window routing input through tree.
func NewState(tree Tree, win Window) *State {
	return &State{
		DoubleClick: DefaultDoubleClick,
		tree:        tree,
		win:         win,
		heldKeys:    make(map[key.Code]struct{}),
	}
}

// Hovered returns the hovered widget, or nil.
func (s *State) Hovered() event.Tag { return s.hovered }

// Dragged returns the dragged widget, or nil.
func (s *State) Dragged() event.Tag { return s.dragged }

// DragHovered returns the widget a drag is over, or nil.
func (s *State) DragHovered() event.Tag { return s.dragHovered }

// Selected returns the selected widget, or nil.
func (s *State) Selected() event.Tag { return s.selected }

// DragButton returns the button of the current drag.
func (s *State) DragButton() pointer.Button { return s.dragButton }

// HeldKeys returns the keys currently held down, in ascending order.
func (s *State) HeldKeys() []key.Code {
	keys := maps.Keys(s.heldKeys)
	slices.Sort(keys)
	return keys
}

// SetHovered makes t the hovered widget. The previous hovered widget
// receives a LeaveEvent; t receives an EnterEvent and may redirect the
// role to another widget.
func (s *State) SetHovered(t event.Tag) {
	if t == s.hovered {
		return
	}
	if s.hovered != nil {
		s.tree.Send(s.hovered, pointer.LeaveEvent{})
		s.hovered = nil
	}
	if t != nil {
		s.hovered = s.tree.Send(t, pointer.EnterEvent{})
	}
}

// SetDragged makes t the dragged widget, dragged with button b.
func (s *State) SetDragged(t event.Tag, b pointer.Button) {
	if t == s.dragged {
		return
	}
	if s.dragged != nil {
		s.tree.Send(s.dragged, pointer.DragEndEvent{Button: s.dragButton})
		s.dragged = nil
	}
	s.dragButton = b
	if t != nil {
		s.dragged = s.tree.Send(t, pointer.DragStartEvent{Button: s.dragButton})
	}
}

// SetDragHovered makes t the widget the current drag is over.
func (s *State) SetDragHovered(t event.Tag) {
	if t == s.dragHovered {
		return
	}
	if s.dragHovered != nil {
		s.tree.Send(s.dragHovered, pointer.DragLeaveEvent{Button: s.dragButton, Origin: s.dragged})
		s.dragHovered = nil
	}
	if t != nil {
		s.dragHovered = s.tree.Send(t, pointer.DragEnterEvent{Button: s.dragButton, Origin: s.dragged})
	}
}

// SetSelected makes t the selected widget, which receives key and text
// input before the widget under the pointer.
func (s *State) SetSelected(t event.Tag) {
	if t == s.selected {
		return
	}
	if s.selected != nil {
		s.tree.Send(s.selected, key.DeselectEvent{})
		s.selected = nil
	}
	if t != nil {
		s.selected = s.tree.Send(t, key.SelectEvent{})
	}
}

// Finalize removes every reference to t. It must be called before the
// widget identified by t is destroyed. Roles held by t end with the
// matching leave, drag end, drag leave or deselect event.
func (s *State) Finalize(t event.Tag) {
	if t == nil {
		return
	}
	if s.hovered == t {
		s.SetHovered(nil)
	}
	if s.dragged == t {
		s.SetDragged(nil, pointer.ButtonPrimary)
	}
	if s.dragHovered == t {
		s.SetDragHovered(nil)
	}
	if s.selected == t {
		s.SetSelected(nil)
	}
	if s.lastClicked == t {
		s.lastClicked = nil
	}
}
