// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input implements input routing and tracking of interaction
state for a window.

A [State] receives raw input from a window driver through its Handle
methods, dispatches typed events through a widget [Tree] and keeps
track of the widgets holding each interaction role: hovered, dragged,
drag-hovered and selected. Role changes are announced to the widgets
involved with enter/leave, drag start/end, drag enter/leave and
select/deselect events.

Widgets are identified by opaque [event.Tag] values. The owner of the
tree must call [State.Finalize] for every widget before it is
destroyed, otherwise State may keep delivering events to it.

State is not safe for concurrent use. All methods must be called from
the goroutine running the window's event loop.
*/
package input
