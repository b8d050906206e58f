// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements a retained tree of widgets that input is
routed through.

Every widget has a stable [ID] within its [Tree], which is also its
[event.Tag]. Positional events are offered depth first: children are
visited topmost (last added) first, hidden widgets are skipped, and the
event position is translated into the child's coordinates. The first
widget whose [Handler] claims the event wins; a widget is offered an
event only if none of its children claimed it.

Removing a widget from the tree destroys it and its descendants. The
tree's [Finalizer], usually an [input.State], is told about each
destroyed widget before it disappears, so no interaction state refers
to it afterwards.
*/
package widget
