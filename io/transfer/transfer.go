// SPDX-License-Identifier: Unlicense OR MIT

// Package transfer contains events for data dropped onto a window
// from outside the application.
package transfer

import "github.com/nodens/Rack/f32"

// PathDropEvent is dispatched from the root when files are dropped
// onto the window.
type PathDropEvent struct {
	Position f32.Point
	// Paths are the dropped file paths in the order reported by the
	// platform.
	Paths []string
}

func (PathDropEvent) ImplementsEvent() {}
