// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "testing"

func TestRectangleContains(t *testing.T) {
	r := Rect(10, 20, 30, 40)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 20), true},
		{Pt(29.5, 39.5), true},
		{Pt(30, 25), false},
		{Pt(15, 40), false},
		{Pt(9.9, 25), false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tc.p, got, tc.want)
		}
	}
}

func TestRectCanon(t *testing.T) {
	r := Rect(30, 40, 10, 20)
	if r.Min != Pt(10, 20) || r.Max != Pt(30, 40) {
		t.Errorf("Rect did not canonicalize: %v", r)
	}
	if got := r.Size(); got != Pt(20, 20) {
		t.Errorf("Size = %v, want {20 20}", got)
	}
	if Rect(0, 0, 0, 5).Empty() != true {
		t.Error("zero width rectangle must be empty")
	}
}

func TestRectangleOffset(t *testing.T) {
	r := Rect(0, 0, 4, 4).Add(Pt(2, 3))
	if r != Rect(2, 3, 6, 7) {
		t.Errorf("Add = %v", r)
	}
	if r.Sub(Pt(2, 3)) != Rect(0, 0, 4, 4) {
		t.Errorf("Sub did not invert Add: %v", r.Sub(Pt(2, 3)))
	}
	if p := Pt(5, 5).Sub(r.Min); p != Pt(3, 2) {
		t.Errorf("local point = %v, want {3 2}", p)
	}
}

func TestPointString(t *testing.T) {
	if got, want := Pt(1.5, -2).String(), "(1.5,-2)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
