// SPDX-License-Identifier: Unlicense OR MIT

//go:build !openbsd && !freebsd && !android && !ios && !js
// +build !openbsd,!freebsd,!android,!ios,!js

// Package desktop implements a window driver for desktop windows
// created with GLFW.
//
// GLFW must be initialized and used from the main thread only:
//
//	runtime.LockOSThread()
//	if err := glfw.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer glfw.Terminate()
//	win, err := glfw.CreateWindow(800, 600, "Rack", nil, nil)
//	...
//	w := app.NewWindow(desktop.New(win))
package desktop

import (
	"context"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/input"
	"github.com/nodens/Rack/io/key"
	"github.com/nodens/Rack/io/pointer"
)

// Driver delivers the input of a GLFW window.
type Driver struct {
	win *glfw.Window
	pos f32.Point
	// moved is set once the pointer position is known.
	moved bool
}

var modKeys = [...]struct {
	keys [2]glfw.Key
	mod  key.Modifiers
}{
	{[2]glfw.Key{glfw.KeyLeftShift, glfw.KeyRightShift}, key.ModShift},
	{[2]glfw.Key{glfw.KeyLeftControl, glfw.KeyRightControl}, key.ModCtrl},
	{[2]glfw.Key{glfw.KeyLeftAlt, glfw.KeyRightAlt}, key.ModAlt},
	{[2]glfw.Key{glfw.KeyLeftSuper, glfw.KeyRightSuper}, key.ModSuper},
}

// New returns a driver for win.
func New(win *glfw.Window) *Driver {
	return &Driver{win: win}
}

// Window returns the GLFW window of the driver.
func (d *Driver) Window() *glfw.Window {
	return d.win
}

// Size returns the size of the window in screen coordinates.
func (d *Driver) Size() f32.Point {
	w, h := d.win.GetSize()
	return f32.Pt(float32(w), float32(h))
}

// CursorLocked reports whether the cursor is disabled, as set by
// SetCursorLocked.
func (d *Driver) CursorLocked() bool {
	return d.win.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled
}

// SetCursorLocked hides the cursor and locks it to the window.
func (d *Driver) SetCursorLocked(locked bool) {
	mode := glfw.CursorNormal
	if locked {
		mode = glfw.CursorDisabled
	}
	d.win.SetInputMode(glfw.CursorMode, mode)
}

func (d *Driver) Modifiers() key.Modifiers {
	var mods key.Modifiers
	for _, m := range modKeys {
		if d.win.GetKey(m.keys[0]) == glfw.Press || d.win.GetKey(m.keys[1]) == glfw.Press {
			mods |= m.mod
		}
	}
	return mods
}

func (d *Driver) KeyName(k key.Code, scancode int) (string, bool) {
	if !known(k) && scancode < 0 {
		return "", false
	}
	n := glfw.GetKeyName(glfw.Key(k), scancode)
	return n, n != ""
}

func (d *Driver) Scancode(k key.Code) int {
	if !known(k) {
		return -1
	}
	return glfw.GetKeyScancode(glfw.Key(k))
}

func (d *Driver) Now() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}

// Run processes window events until ctx is done or the window is asked
// to close. It must be called from the main thread.
func (d *Driver) Run(ctx context.Context, h input.Handler) error {
	d.register(h)
	defer d.register(nil)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			glfw.PostEmptyEvent()
		case <-done:
		}
	}()

	h.HandleDirty()
	for !d.win.ShouldClose() {
		glfw.WaitEvents()
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// register installs the callbacks feeding h, or removes them if h is
// nil.
func (d *Driver) register(h input.Handler) {
	if h == nil {
		d.win.SetCursorPosCallback(nil)
		d.win.SetMouseButtonCallback(nil)
		d.win.SetCursorEnterCallback(nil)
		d.win.SetScrollCallback(nil)
		d.win.SetDropCallback(nil)
		d.win.SetCharCallback(nil)
		d.win.SetKeyCallback(nil)
		d.win.SetSizeCallback(nil)
		d.win.SetRefreshCallback(nil)
		return
	}
	d.win.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		pos := f32.Pt(float32(x), float32(y))
		h.HandleHover(pos, d.move(pos))
	})
	d.win.SetMouseButtonCallback(func(w *glfw.Window, b glfw.MouseButton, a glfw.Action, mods glfw.ModifierKey) {
		act := pointer.Press
		if a == glfw.Release {
			act = pointer.Release
		}
		h.HandleButton(d.pos, button(b), act, modifiers(mods))
	})
	d.win.SetCursorEnterCallback(func(w *glfw.Window, entered bool) {
		if !entered {
			h.HandleLeave()
		}
	})
	d.win.SetScrollCallback(func(w *glfw.Window, x, y float64) {
		h.HandleScroll(d.pos, f32.Pt(float32(x), float32(y)))
	})
	d.win.SetDropCallback(func(w *glfw.Window, names []string) {
		h.HandleDrop(d.pos, names)
	})
	d.win.SetCharCallback(func(w *glfw.Window, r rune) {
		h.HandleText(d.pos, r)
	})
	d.win.SetKeyCallback(func(w *glfw.Window, k glfw.Key, scancode int, a glfw.Action, mods glfw.ModifierKey) {
		if k == glfw.KeyUnknown {
			return
		}
		var s key.State
		switch a {
		case glfw.Press:
			s = key.Press
		case glfw.Repeat:
			s = key.Repeat
		case glfw.Release:
			s = key.Release
		}
		h.HandleKey(d.pos, key.Code(k), scancode, s, modifiers(mods))
	})
	d.win.SetSizeCallback(func(w *glfw.Window, width, height int) {
		h.HandleDirty()
	})
	d.win.SetRefreshCallback(func(w *glfw.Window) {
		h.HandleDirty()
	})
}

// move records the pointer position and returns the distance moved.
// The first position has no delta.
func (d *Driver) move(pos f32.Point) f32.Point {
	var delta f32.Point
	if d.moved {
		delta = pos.Sub(d.pos)
	}
	d.pos, d.moved = pos, true
	return delta
}

// button maps GLFW buttons directly; MouseButtonLeft, Right and Middle
// are 0, 1 and 2.
func button(b glfw.MouseButton) pointer.Button {
	return pointer.Button(b)
}

// known reports whether k is a key GLFW can look up.
func known(k key.Code) bool {
	return k >= key.Code(glfw.KeySpace) && k <= key.Code(glfw.KeyLast)
}

func modifiers(m glfw.ModifierKey) key.Modifiers {
	var mods key.Modifiers
	if m&glfw.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&glfw.ModControl != 0 {
		mods |= key.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		mods |= key.ModSuper
	}
	return mods
}
