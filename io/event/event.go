// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Tag is the stable identifier for an event handler, typically a widget.
// Tags must be comparable. A nil Tag means no handler.
type Tag interface{}

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
