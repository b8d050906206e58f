// SPDX-License-Identifier: Unlicense OR MIT

// Package terminal implements a window driver for text terminals.
//
// Terminals report mouse positions in character cells, so widget boxes
// of a terminal window are measured in cells as well. Terminals report no
// key releases; every key is delivered as a press, followed by its text
// if printable, followed by a release.
package terminal

import (
	"context"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/input"
	"github.com/nodens/Rack/io/key"
	"github.com/nodens/Rack/io/pointer"
)

// Driver delivers the input of a tcell screen.
type Driver struct {
	screen  tcell.Screen
	start   time.Time
	mods    key.Modifiers
	buttons tcell.ButtonMask
	pos     f32.Point
	// moved is set once the pointer position is known.
	moved bool
}

var buttons = [...]struct {
	mask tcell.ButtonMask
	b    pointer.Button
}{
	{tcell.Button1, pointer.ButtonPrimary},
	{tcell.Button2, pointer.ButtonSecondary},
	{tcell.Button3, pointer.ButtonTertiary},
}

const wheels = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

var keys = map[tcell.Key]key.Code{
	tcell.KeyEnter:      key.CodeEnter,
	tcell.KeyTab:        key.CodeTab,
	tcell.KeyBacktab:    key.CodeTab,
	tcell.KeyBackspace:  key.CodeBackspace,
	tcell.KeyBackspace2: key.CodeBackspace,
	tcell.KeyEscape:     key.CodeEscape,
	tcell.KeyInsert:     key.CodeInsert,
	tcell.KeyDelete:     key.CodeDelete,
	tcell.KeyHome:       key.CodeHome,
	tcell.KeyEnd:        key.CodeEnd,
	tcell.KeyPgUp:       key.CodePageUp,
	tcell.KeyPgDn:       key.CodePageDown,
	tcell.KeyUp:         key.CodeUp,
	tcell.KeyDown:       key.CodeDown,
	tcell.KeyLeft:       key.CodeLeft,
	tcell.KeyRight:      key.CodeRight,
}

// New returns a driver for an initialized screen. The caller keeps
// ownership of the screen and finalizes it.
func New(screen tcell.Screen) *Driver {
	return &Driver{screen: screen, start: time.Now()}
}

// Screen returns the screen of the driver.
func (d *Driver) Screen() tcell.Screen {
	return d.screen
}

// Size returns the size of the screen in cells.
func (d *Driver) Size() f32.Point {
	w, h := d.screen.Size()
	return f32.Pt(float32(w), float32(h))
}

// CursorLocked is always false; terminals cannot lock the mouse.
func (d *Driver) CursorLocked() bool {
	return false
}

// Modifiers returns the modifiers of the most recent input.
func (d *Driver) Modifiers() key.Modifiers {
	return d.mods
}

// KeyName returns the lower case character of printable keys.
func (d *Driver) KeyName(k key.Code, scancode int) (string, bool) {
	if !k.Printable() {
		return "", false
	}
	return string(unicode.ToLower(rune(k))), true
}

// Scancode is always 0; terminals report characters, not keys.
func (d *Driver) Scancode(k key.Code) int {
	return 0
}

func (d *Driver) Now() time.Duration {
	return time.Since(d.start)
}

// Run polls the screen until ctx is done or the screen is finalized.
func (d *Driver) Run(ctx context.Context, h input.Handler) error {
	d.screen.EnableMouse()
	d.screen.EnableFocus()
	defer d.screen.DisableFocus()
	defer d.screen.DisableMouse()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			d.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	h.HandleDirty()
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			d.screen.Sync()
			h.HandleDirty()
		case *tcell.EventFocus:
			if !ev.Focused {
				d.mods = 0
				h.HandleLeave()
			}
		case *tcell.EventMouse:
			d.mouse(h, ev)
		case *tcell.EventKey:
			d.key(h, ev)
		}
	}
}

func (d *Driver) mouse(h input.Handler, ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := f32.Pt(float32(x), float32(y))
	d.mods = modifiers(ev.Modifiers())
	mask := ev.Buttons()
	if mask&wheels != 0 {
		h.HandleScroll(pos, wheel(mask))
		return
	}
	if !d.moved || pos != d.pos {
		var delta f32.Point
		if d.moved {
			delta = pos.Sub(d.pos)
		}
		d.pos, d.moved = pos, true
		h.HandleHover(pos, delta)
	}
	for _, b := range buttons {
		down, was := mask&b.mask != 0, d.buttons&b.mask != 0
		switch {
		case down && !was:
			h.HandleButton(pos, b.b, pointer.Press, d.mods)
		case !down && was:
			h.HandleButton(pos, b.b, pointer.Release, d.mods)
		}
	}
	d.buttons = mask
}

func (d *Driver) key(h input.Handler, ev *tcell.EventKey) {
	k, mods := code(ev)
	d.mods = mods
	defer func() { d.mods = 0 }()
	if k != key.CodeUnknown {
		h.HandleKey(d.pos, k, 0, key.Press, mods)
	}
	if ev.Key() == tcell.KeyRune && mods&^key.ModShift == 0 {
		if r := ev.Rune(); unicode.IsPrint(r) {
			h.HandleText(d.pos, r)
		}
	}
	if k != key.CodeUnknown {
		h.HandleKey(d.pos, k, 0, key.Release, mods)
	}
}

// code maps a terminal key to a key code. Control characters map to
// their letter with the ctrl modifier.
func code(ev *tcell.EventKey) (key.Code, key.Modifiers) {
	mods := modifiers(ev.Modifiers())
	k := ev.Key()
	if c, ok := keys[k]; ok {
		if k == tcell.KeyBacktab {
			mods |= key.ModShift
		}
		return c, mods
	}
	switch {
	case k == tcell.KeyRune:
		r := unicode.ToUpper(ev.Rune())
		if r == ' ' || key.Code(r).Printable() {
			return key.Code(r), mods
		}
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return key.CodeF1 + key.Code(k-tcell.KeyF1), mods
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.CodeA + key.Code(k-tcell.KeyCtrlA), mods | key.ModCtrl
	case k == tcell.KeyCtrlSpace:
		return key.CodeSpace, mods | key.ModCtrl
	}
	return key.CodeUnknown, mods
}

func modifiers(m tcell.ModMask) key.Modifiers {
	var mods key.Modifiers
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModSuper
	}
	return mods
}

func wheel(mask tcell.ButtonMask) f32.Point {
	var s f32.Point
	if mask&tcell.WheelUp != 0 {
		s.Y--
	}
	if mask&tcell.WheelDown != 0 {
		s.Y++
	}
	if mask&tcell.WheelLeft != 0 {
		s.X--
	}
	if mask&tcell.WheelRight != 0 {
		s.X++
	}
	return s
}
