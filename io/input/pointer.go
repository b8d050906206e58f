// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/event"
	"github.com/nodens/Rack/io/key"
	"github.com/nodens/Rack/io/pointer"
	"github.com/nodens/Rack/io/system"
	"github.com/nodens/Rack/io/transfer"
)

// HandleButton routes a button press or release at pos. While the cursor
// is locked no widget is offered the event, but an ongoing drag still
// ends on release.
func (s *State) HandleButton(pos f32.Point, b pointer.Button, a pointer.Action, mods key.Modifiers) bool {
	var clicked event.Tag
	if !s.win.CursorLocked() {
		clicked = s.tree.Dispatch(pointer.ButtonEvent{
			Position:  pos,
			Button:    b,
			Action:    a,
			Modifiers: mods,
		})
	}

	switch a {
	case pointer.Press:
		s.SetDragged(clicked, b)
	case pointer.Release:
		s.SetDragHovered(nil)
		if clicked != nil && s.dragged != nil {
			s.tree.Send(clicked, pointer.DragDropEvent{Button: s.dragButton, Origin: s.dragged})
		}
		s.SetDragged(nil, pointer.ButtonPrimary)
	}

	if b == pointer.ButtonPrimary && a == pointer.Press {
		s.SetSelected(clicked)
		s.click(clicked)
	}
	return clicked != nil
}

// click tracks primary presses and fires a DoubleClickEvent for the
// second press on the same widget within the double click interval.
// A completed double click resets tracking, so a third press starts over.
func (s *State) click(clicked event.Tag) {
	now := s.win.Now()
	if clicked != nil && clicked == s.lastClicked && now-s.lastClickTime <= s.DoubleClick {
		s.tree.Send(clicked, pointer.DoubleClickEvent{})
		s.lastClicked = nil
		return
	}
	s.lastClickTime = now
	s.lastClicked = clicked
}

// HandleHover routes pointer movement. A Held key event is synthesized
// for every key held down. During a drag the dragged widget receives a
// DragMoveEvent, and the widget under the pointer is offered a
// DragHoverEvent; if it claims it, no HoverEvent is dispatched.
func (s *State) HandleHover(pos, delta f32.Point) bool {
	locked := s.win.CursorLocked()

	if !locked && len(s.heldKeys) > 0 {
		mods := s.win.Modifiers()
		for _, k := range s.HeldKeys() {
			s.HandleKey(pos, k, s.win.Scancode(k), key.Held, mods)
		}
	}

	if s.dragged != nil {
		dragHovered := false
		if !locked {
			t := s.tree.Dispatch(pointer.DragHoverEvent{
				Position: pos,
				Delta:    delta,
				Button:   s.dragButton,
				Origin:   s.dragged,
			})
			s.SetDragHovered(t)
			dragHovered = t != nil
		}
		// A drag hover handler may have ended the drag.
		if s.dragged != nil {
			s.tree.Send(s.dragged, pointer.DragMoveEvent{Button: s.dragButton, Delta: delta})
		}
		if dragHovered {
			return true
		}
	}

	if locked {
		return false
	}
	t := s.tree.Dispatch(pointer.HoverEvent{Position: pos, Delta: delta})
	s.SetHovered(t)
	return t != nil
}

// HandleLeave is called when the pointer leaves the window or the window
// loses focus. Held keys are forgotten. Hover state is kept, because the
// pointer may leave the window in the middle of a drag.
func (s *State) HandleLeave() bool {
	clear(s.heldKeys)
	return true
}

// HandleScroll routes scrolling at pos.
func (s *State) HandleScroll(pos, scroll f32.Point) bool {
	return s.tree.Dispatch(pointer.ScrollEvent{Position: pos, Scroll: scroll}) != nil
}

// HandleDrop routes files dropped onto the window at pos.
func (s *State) HandleDrop(pos f32.Point, paths []string) bool {
	return s.tree.Dispatch(transfer.PathDropEvent{Position: pos, Paths: paths}) != nil
}

// HandleDirty broadcasts a DirtyEvent through the tree.
func (s *State) HandleDirty() bool {
	s.tree.Dispatch(system.DirtyEvent{})
	return true
}
