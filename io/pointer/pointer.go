// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer events: button presses, hovering,
// scrolling and dragging.
package pointer

import (
	"fmt"

	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/event"
	"github.com/nodens/Rack/io/key"
)

// Button identifies a mouse button. The values match the platform
// button numbers, starting with 0 for the primary button.
type Button int

// Action is the transition of a button.
type Action uint8

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Button = iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

const (
	// Release of a button.
	Release Action = iota
	// Press of a button.
	Press
)

// ButtonEvent is dispatched from the root when a button changes state.
// Position is relative to the receiving widget.
type ButtonEvent struct {
	Position  f32.Point
	Button    Button
	Action    Action
	Modifiers key.Modifiers
}

// HoverEvent is dispatched from the root when the pointer moves without
// an ongoing drag claiming it.
type HoverEvent struct {
	Position f32.Point
	// Delta is the pointer movement since the previous event.
	Delta f32.Point
}

// EnterEvent is sent to a widget when it becomes the hovered widget.
type EnterEvent struct{}

// LeaveEvent is sent to a widget when it stops being the hovered widget.
type LeaveEvent struct{}

// ScrollEvent is dispatched from the root for scroll wheel and
// touchpad scrolling.
type ScrollEvent struct {
	Position f32.Point
	Scroll   f32.Point
}

// DoubleClickEvent is sent to a widget pressed twice with the primary
// button within the double click interval.
type DoubleClickEvent struct{}

// DragStartEvent is sent to a widget when it becomes the dragged widget.
type DragStartEvent struct {
	Button Button
}

// DragEndEvent is sent to the dragged widget when its drag ends.
type DragEndEvent struct {
	Button Button
}

// DragMoveEvent is sent to the dragged widget for every pointer movement
// during the drag, including while the cursor is locked.
type DragMoveEvent struct {
	Button Button
	Delta  f32.Point
}

// DragHoverEvent is dispatched from the root while a drag is ongoing.
type DragHoverEvent struct {
	Position f32.Point
	Delta    f32.Point
	Button   Button
	// Origin is the dragged widget.
	Origin event.Tag
}

// DragEnterEvent is sent to a widget when a drag moves over it.
type DragEnterEvent struct {
	Button Button
	Origin event.Tag
}

// DragLeaveEvent is sent to a widget when a drag moves off it.
type DragLeaveEvent struct {
	Button Button
	Origin event.Tag
}

// DragDropEvent is sent to the widget under the pointer when a drag
// ends by releasing a button over it.
type DragDropEvent struct {
	Button Button
	Origin event.Tag
}

func (ButtonEvent) ImplementsEvent()      {}
func (HoverEvent) ImplementsEvent()       {}
func (EnterEvent) ImplementsEvent()       {}
func (LeaveEvent) ImplementsEvent()       {}
func (ScrollEvent) ImplementsEvent()      {}
func (DoubleClickEvent) ImplementsEvent() {}
func (DragStartEvent) ImplementsEvent()   {}
func (DragEndEvent) ImplementsEvent()     {}
func (DragMoveEvent) ImplementsEvent()    {}
func (DragHoverEvent) ImplementsEvent()   {}
func (DragEnterEvent) ImplementsEvent()   {}
func (DragLeaveEvent) ImplementsEvent()   {}
func (DragDropEvent) ImplementsEvent()    {}

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "ButtonPrimary"
	case ButtonSecondary:
		return "ButtonSecondary"
	case ButtonTertiary:
		return "ButtonTertiary"
	default:
		return fmt.Sprintf("Button%d", int(b))
	}
}

func (a Action) String() string {
	switch a {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid Action")
	}
}
