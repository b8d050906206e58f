// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events usually handled at the top-level
// program level.
package system

// DirtyEvent is broadcast to every widget when the window contents
// must be redrawn, for example after a resize or an expose.
type DirtyEvent struct{}

func (DirtyEvent) ImplementsEvent() {}
