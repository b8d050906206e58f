// SPDX-License-Identifier: Unlicense OR MIT

/*
Package trace records the input fed to a window and replays it.

A trace is a sequence of JSON objects, one per line, each describing a
call to an [input.Handler] method:

	{"op":"button","t":1500000,"pos":[10,20],"button":0,"action":1,"mods":0}
	{"op":"hover","t":1510000,"pos":[11,20],"delta":[1,0]}

The "t" field is the window time of the call in nanoseconds.
*/
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/nodens/Rack/f32"
	"github.com/nodens/Rack/io/input"
	"github.com/nodens/Rack/io/key"
	"github.com/nodens/Rack/io/pointer"
)

var (
	// ErrMalformed is returned for trace lines that are not JSON objects.
	ErrMalformed = errors.New("trace: malformed entry")
	// ErrUnknownOp is returned for entries naming no Handler method.
	ErrUnknownOp = errors.New("trace: unknown op")
)

const (
	opButton = "button"
	opHover  = "hover"
	opLeave  = "leave"
	opScroll = "scroll"
	opDrop   = "drop"
	opText   = "text"
	opKey    = "key"
	opDirty  = "dirty"
)

// Recorder is an input.Handler writing every call to a trace before
// forwarding it.
type Recorder struct {
	h   input.Handler
	w   io.Writer
	now func() time.Duration
	err error
}

var _ input.Handler = (*Recorder)(nil)

// NewRecorder returns a Recorder forwarding to h and writing to w. The
// now function supplies the time of each entry and may be nil.
func NewRecorder(h input.Handler, w io.Writer, now func() time.Duration) *Recorder {
	return &Recorder{h: h, w: w, now: now}
}

// Err returns the first error encountered writing the trace.
func (r *Recorder) Err() error {
	return r.err
}

func (r *Recorder) HandleButton(pos f32.Point, b pointer.Button, a pointer.Action, mods key.Modifiers) bool {
	r.record(opButton, "pos", point(pos), "button", int(b), "action", int(a), "mods", uint32(mods))
	return r.h.HandleButton(pos, b, a, mods)
}

func (r *Recorder) HandleHover(pos, delta f32.Point) bool {
	r.record(opHover, "pos", point(pos), "delta", point(delta))
	return r.h.HandleHover(pos, delta)
}

func (r *Recorder) HandleLeave() bool {
	r.record(opLeave)
	return r.h.HandleLeave()
}

func (r *Recorder) HandleScroll(pos, scroll f32.Point) bool {
	r.record(opScroll, "pos", point(pos), "scroll", point(scroll))
	return r.h.HandleScroll(pos, scroll)
}

func (r *Recorder) HandleDrop(pos f32.Point, paths []string) bool {
	r.record(opDrop, "pos", point(pos), "paths", paths)
	return r.h.HandleDrop(pos, paths)
}

func (r *Recorder) HandleText(pos f32.Point, c rune) bool {
	r.record(opText, "pos", point(pos), "rune", int(c))
	return r.h.HandleText(pos, c)
}

func (r *Recorder) HandleKey(pos f32.Point, k key.Code, scancode int, s key.State, mods key.Modifiers) bool {
	r.record(opKey, "pos", point(pos), "key", int(k), "scancode", scancode, "state", int(s), "mods", uint32(mods))
	return r.h.HandleKey(pos, k, scancode, s, mods)
}

func (r *Recorder) HandleDirty() bool {
	r.record(opDirty)
	return r.h.HandleDirty()
}

// record writes an entry for op with the given key, value pairs.
func (r *Recorder) record(op string, kv ...interface{}) {
	if r.err != nil {
		return
	}
	line, err := sjson.SetBytes(nil, "op", op)
	if err == nil && r.now != nil {
		line, err = sjson.SetBytes(line, "t", int64(r.now()))
	}
	for i := 0; err == nil && i < len(kv); i += 2 {
		line, err = sjson.SetBytes(line, kv[i].(string), kv[i+1])
	}
	if err != nil {
		r.err = fmt.Errorf("trace: %w", err)
		return
	}
	line = append(line, '\n')
	if _, err := r.w.Write(line); err != nil {
		r.err = fmt.Errorf("trace: %w", err)
	}
}

// Replay feeds the trace read from rd to h. If seek is not nil it is
// called with the recorded time before each entry that has one.
func Replay(rd io.Reader, h input.Handler, seek func(time.Duration)) error {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for n := 1; sc.Scan(); n++ {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if !gjson.ValidBytes(line) {
			return fmt.Errorf("%w: line %d", ErrMalformed, n)
		}
		e := gjson.ParseBytes(line)
		if !e.IsObject() {
			return fmt.Errorf("%w: line %d", ErrMalformed, n)
		}
		if t := e.Get("t"); seek != nil && t.Exists() {
			seek(time.Duration(t.Int()))
		}
		if err := replay(e, h); err != nil {
			return fmt.Errorf("%w: line %d", err, n)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	return nil
}

func replay(e gjson.Result, h input.Handler) error {
	pos := parsePoint(e.Get("pos"))
	mods := key.Modifiers(e.Get("mods").Uint())
	switch op := e.Get("op").String(); op {
	case opButton:
		h.HandleButton(pos, pointer.Button(e.Get("button").Int()), pointer.Action(e.Get("action").Int()), mods)
	case opHover:
		h.HandleHover(pos, parsePoint(e.Get("delta")))
	case opLeave:
		h.HandleLeave()
	case opScroll:
		h.HandleScroll(pos, parsePoint(e.Get("scroll")))
	case opDrop:
		var paths []string
		for _, p := range e.Get("paths").Array() {
			paths = append(paths, p.String())
		}
		h.HandleDrop(pos, paths)
	case opText:
		h.HandleText(pos, rune(e.Get("rune").Int()))
	case opKey:
		h.HandleKey(pos, key.Code(e.Get("key").Int()), int(e.Get("scancode").Int()), key.State(e.Get("state").Int()), mods)
	case opDirty:
		h.HandleDirty()
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, op)
	}
	return nil
}

func point(p f32.Point) []float32 {
	return []float32{p.X, p.Y}
}

func parsePoint(v gjson.Result) f32.Point {
	return f32.Pt(float32(v.Get("0").Float()), float32(v.Get("1").Float()))
}
