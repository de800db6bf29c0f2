package caret

import "testing"

type stubSurface struct {
	m  Metrics
	ok bool
}

func (s stubSurface) Metrics() (Metrics, bool) { return s.m, s.ok }

func fixedSurface(m Metrics) Surface { return stubSurface{m: m, ok: true} }

func TestPointForOffset_NoWrap(t *testing.T) {
	r := NewResolver(fixedSurface(Metrics{Width: 40, Height: 10}))
	text := "hello\nworld wide"

	cases := []struct {
		name string
		off  int
		want Point
	}{
		{name: "origin", off: 0, want: Point{X: 0, Y: 0}},
		{name: "mid first line", off: 3, want: Point{X: 3, Y: 0}},
		{name: "start of second line", off: 6, want: Point{X: 0, Y: 1}},
		{name: "mid second line", off: 12, want: Point{X: 6, Y: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := r.PointForOffset(text, tc.off)
			if !ok {
				t.Fatalf("PointForOffset(%d): not ok", tc.off)
			}
			if got != tc.want {
				t.Fatalf("PointForOffset(%d): got %+v, want %+v", tc.off, got, tc.want)
			}
		})
	}
}

func TestPointForOffset_WordWrap(t *testing.T) {
	r := NewResolver(fixedSurface(Metrics{Width: 8, Height: 10, WrapWidth: 8}))
	text := "hello world"

	// "hello " fills the first visual row; "world" wraps to the second.
	got, ok := r.PointForOffset(text, 6)
	if !ok {
		t.Fatalf("wrapped offset not ok")
	}
	if want := (Point{X: 0, Y: 1}); got != want {
		t.Fatalf("wrapped point: got %+v, want %+v", got, want)
	}

	got, ok = r.PointForOffset(text, 8)
	if !ok {
		t.Fatalf("wrapped offset not ok")
	}
	if want := (Point{X: 2, Y: 1}); got != want {
		t.Fatalf("wrapped point: got %+v, want %+v", got, want)
	}
}

func TestPointForOffset_WideRunesAndTabs(t *testing.T) {
	r := NewResolver(fixedSurface(Metrics{Width: 40, Height: 5}))

	// CJK runes are two cells wide.
	got, ok := r.PointForOffset("日本x", 2)
	if !ok || got != (Point{X: 4, Y: 0}) {
		t.Fatalf("wide rune point: got %+v ok=%v", got, ok)
	}

	// Tab expands to the next 4-cell stop.
	got, ok = r.PointForOffset("a\tb", 2)
	if !ok || got != (Point{X: 4, Y: 0}) {
		t.Fatalf("tab point: got %+v ok=%v", got, ok)
	}
}

func TestPointForOffset_ScrollAndPadding(t *testing.T) {
	r := NewResolver(fixedSurface(Metrics{Width: 20, Height: 3, YOffset: 2, PadLeft: 4, PadTop: 1}))
	text := "a\nb\nc\nd\ne"

	got, ok := r.PointForOffset(text, 6) // row 3, scrolled to visual row 1
	if !ok || got != (Point{X: 4, Y: 2}) {
		t.Fatalf("scrolled point: got %+v ok=%v", got, ok)
	}

	// Row scrolled off the top is not visible.
	if _, ok := r.PointForOffset(text, 0); ok {
		t.Fatalf("offscreen row must not resolve")
	}
}

func TestPointForOffset_DetachedSurface(t *testing.T) {
	r := NewResolver(stubSurface{ok: false})
	if _, ok := r.PointForOffset("text", 2); ok {
		t.Fatalf("detached surface must not resolve")
	}

	r = NewResolver(nil)
	if _, ok := r.PointForOffset("text", 2); ok {
		t.Fatalf("nil surface must not resolve")
	}
}

func TestPlacePopup(t *testing.T) {
	m := Metrics{Width: 40, Height: 10}

	cases := []struct {
		name   string
		anchor Point
		w, h   int
		want   Point
	}{
		{name: "fits below", anchor: Point{X: 5, Y: 2}, w: 10, h: 4, want: Point{X: 5, Y: 3}},
		{name: "flips above at bottom", anchor: Point{X: 5, Y: 8}, w: 10, h: 4, want: Point{X: 5, Y: 4}},
		{name: "shifts left at right edge", anchor: Point{X: 36, Y: 2}, w: 10, h: 4, want: Point{X: 30, Y: 3}},
		{name: "clamps into viewport", anchor: Point{X: 0, Y: 0}, w: 50, h: 20, want: Point{X: 0, Y: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PlacePopup(tc.anchor, tc.w, tc.h, m)
			if got != tc.want {
				t.Fatalf("PlacePopup: got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestWrapSegments(t *testing.T) {
	segs := wrapSegments("hello world", 8, 4)
	if len(segs) != 2 {
		t.Fatalf("segment count: got %d, want 2", len(segs))
	}
	if segs[0].startCol != 0 || segs[0].endCol != 6 {
		t.Fatalf("first segment: got %+v", segs[0])
	}
	if segs[1].startCol != 6 || segs[1].endCol != 11 {
		t.Fatalf("second segment: got %+v", segs[1])
	}

	// An oversized word hard-splits.
	segs = wrapSegments("abcdefghij", 4, 4)
	if len(segs) != 3 {
		t.Fatalf("hard split count: got %d, want 3", len(segs))
	}

	// No wrapping when width is zero.
	segs = wrapSegments("hello world", 0, 4)
	if len(segs) != 1 || segs[0].endCol != 11 {
		t.Fatalf("unwrapped: got %+v", segs)
	}

	// Empty line still has one segment.
	if segs := wrapSegments("", 8, 4); len(segs) != 1 {
		t.Fatalf("empty line segments: got %d", len(segs))
	}
}
