// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements key and text events.
package key

import (
	"fmt"
	"strings"

	"github.com/nodens/Rack/f32"
)

// Code identifies a physical key. Values follow the GLFW key
// numbering, where printable keys use their US layout ASCII code.
type Code int

// State is the state of a key during an event.
type State uint8

// Modifiers
type Modifiers uint32

// KeyEvent is the common part of key events.
type KeyEvent struct {
	Code     Code
	Scancode int
	// Name is the layout dependent name of the key, or empty if the
	// platform could not resolve one.
	Name      string
	State     State
	Modifiers Modifiers
}

// SelectKeyEvent is sent to the selected widget for every key event.
type SelectKeyEvent struct {
	KeyEvent
}

// HoverKeyEvent is dispatched from the root for key events not claimed
// by the selected widget.
type HoverKeyEvent struct {
	Position f32.Point
	KeyEvent
}

// SelectTextEvent is sent to the selected widget for text input.
type SelectTextEvent struct {
	Rune rune
}

// HoverTextEvent is dispatched from the root for text input not claimed
// by the selected widget.
type HoverTextEvent struct {
	Position f32.Point
	Rune     rune
}

// SelectEvent is sent to a widget when it becomes the selected widget.
type SelectEvent struct{}

// DeselectEvent is sent to a widget when it stops being the selected
// widget.
type DeselectEvent struct{}

const (
	// Release is the state of a key that has been released.
	Release State = iota
	// Press is the state of a pressed key.
	Press
	// Repeat is the state of a key auto-repeated by the platform.
	Repeat
	// Held is the state of a key still held down while the pointer
	// moves. Held events are synthesized, not reported by the platform.
	Held
)

const (
	// ModShift is the shift modifier key.
	ModShift Modifiers = 1 << iota
	// ModCtrl is the ctrl modifier key.
	ModCtrl
	// ModAlt is the alt modifier key, or the option
	// key on Apple keyboards.
	ModAlt
	// ModSuper is the "logo" modifier key, often
	// represented by a Windows logo.
	ModSuper
)

const (
	CodeUnknown Code = -1

	CodeSpace      Code = 32
	CodeApostrophe Code = 39
	CodeComma      Code = 44
	CodeMinus      Code = 45
	CodePeriod     Code = 46
	CodeSlash      Code = 47
	Code0          Code = 48
	Code9          Code = 57
	CodeSemicolon  Code = 59
	CodeEqual      Code = 61
	CodeA          Code = 65
	CodeZ          Code = 90

	CodeEscape    Code = 256
	CodeEnter     Code = 257
	CodeTab       Code = 258
	CodeBackspace Code = 259
	CodeInsert    Code = 260
	CodeDelete    Code = 261
	CodeRight     Code = 262
	CodeLeft      Code = 263
	CodeDown      Code = 264
	CodeUp        Code = 265
	CodePageUp    Code = 266
	CodePageDown  Code = 267
	CodeHome      Code = 268
	CodeEnd       Code = 269
	CodeF1        Code = 290
	CodeF12       Code = 301

	CodeLeftShift    Code = 340
	CodeLeftControl  Code = 341
	CodeLeftAlt      Code = 342
	CodeLeftSuper    Code = 343
	CodeRightShift   Code = 344
	CodeRightControl Code = 345
	CodeRightAlt     Code = 346
	CodeRightSuper   Code = 347
)

var codeNames = map[Code]string{
	CodeSpace:        "Space",
	CodeEscape:       "Escape",
	CodeEnter:        "Enter",
	CodeTab:          "Tab",
	CodeBackspace:    "Backspace",
	CodeInsert:       "Insert",
	CodeDelete:       "Delete",
	CodeRight:        "→",
	CodeLeft:         "←",
	CodeDown:         "↓",
	CodeUp:           "↑",
	CodePageUp:       "⇞",
	CodePageDown:     "⇟",
	CodeHome:         "⇱",
	CodeEnd:          "⇲",
	CodeLeftShift:    "Shift",
	CodeRightShift:   "Shift",
	CodeLeftControl:  "Ctrl",
	CodeRightControl: "Ctrl",
	CodeLeftAlt:      "Alt",
	CodeRightAlt:     "Alt",
	CodeLeftSuper:    "Super",
	CodeRightSuper:   "Super",
}

// Printable reports whether c is a key with a single character name.
func (c Code) Printable() bool {
	return c > CodeSpace && c < 127
}

func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	switch {
	case c.Printable():
		return string(rune(c))
	case c >= CodeF1 && c <= CodeF12:
		return fmt.Sprintf("F%d", c-CodeF1+1)
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, "Ctrl")
	}
	if m.Contain(ModShift) {
		strs = append(strs, "Shift")
	}
	if m.Contain(ModAlt) {
		strs = append(strs, "Alt")
	}
	if m.Contain(ModSuper) {
		strs = append(strs, "Super")
	}
	return strings.Join(strs, "-")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Repeat:
		return "Repeat"
	case Held:
		return "Held"
	default:
		panic("invalid State")
	}
}

func (SelectKeyEvent) ImplementsEvent()  {}
func (HoverKeyEvent) ImplementsEvent()   {}
func (SelectTextEvent) ImplementsEvent() {}
func (HoverTextEvent) ImplementsEvent()  {}
func (SelectEvent) ImplementsEvent()     {}
func (DeselectEvent) ImplementsEvent()   {}
