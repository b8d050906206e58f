// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"time"

	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/event"
	"github.com/nodens/Rack/io/key"
	"github.com/nodens/Rack/io/pointer"
)

// Tree is the widget hierarchy input is routed through.
type Tree interface {
	// Dispatch offers e to the hierarchy starting at the root and
	// returns the tag of the widget that claimed it, or nil.
	Dispatch(e event.Event) event.Tag
	// Send delivers e to the widget identified by t alone. It returns the
	// tag the event resolved to, or nil. EnterEvent, SelectEvent,
	// DragStartEvent and DragEnterEvent resolve to t unless the widget
	// redirects them; other events resolve to nil unless claimed.
	Send(t event.Tag, e event.Event) event.Tag
}

// Window is the platform window input originates from.
type Window interface {
	// CursorLocked reports whether the cursor is hidden and locked to
	// the window, as during a knob drag.
	CursorLocked() bool
	// Modifiers returns the currently held modifier keys.
	Modifiers() key.Modifiers
	// KeyName returns the layout dependent name of a key, if any.
	KeyName(k key.Code, scancode int) (string, bool)
	// Scancode returns the platform scancode of a key.
	Scancode(k key.Code) int
	// Now returns the time since an arbitrary but fixed base.
	Now() time.Duration
}

// Handler is the set of entry points a window driver feeds input into.
// Each method reports whether the input was consumed.
type Handler interface {
	HandleButton(pos f32.Point, b pointer.Button, a pointer.Action, mods key.Modifiers) bool
	HandleHover(pos, delta f32.Point) bool
	HandleLeave() bool
	HandleScroll(pos, scroll f32.Point) bool
	HandleDrop(pos f32.Point, paths []string) bool
	HandleText(pos f32.Point, r rune) bool
	HandleKey(pos f32.Point, k key.Code, scancode int, s key.State, mods key.Modifiers) bool
	HandleDirty() bool
}

var _ Handler = (*State)(nil)
