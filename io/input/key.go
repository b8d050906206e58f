// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/key"
)

// HandleKey routes a key event. The selected widget is offered the event
// first; if it doesn't claim it, the event is dispatched at pos.
func (s *State) HandleKey(pos f32.Point, k key.Code, scancode int, st key.State, mods key.Modifiers) bool {
	switch st {
	case key.Press:
		s.heldKeys[k] = struct{}{}
	case key.Release:
		delete(s.heldKeys, k)
	}

	e := key.KeyEvent{
		Code:      k,
		Scancode:  scancode,
		State:     st,
		Modifiers: mods,
	}
	if name, ok := s.win.KeyName(k, scancode); ok {
		e.Name = name
	}

	if s.selected != nil {
		if s.tree.Send(s.selected, key.SelectKeyEvent{KeyEvent: e}) != nil {
			return true
		}
	}
	return s.tree.Dispatch(key.HoverKeyEvent{Position: pos, KeyEvent: e}) != nil
}

// HandleText routes a character of text input. The selected widget is
// offered it first; if it doesn't claim it, it is dispatched at pos.
func (s *State) HandleText(pos f32.Point, r rune) bool {
	if s.selected != nil {
		if s.tree.Send(s.selected, key.SelectTextEvent{Rune: r}) != nil {
			return true
		}
	}
	return s.tree.Dispatch(key.HoverTextEvent{Position: pos, Rune: r}) != nil
}
