package document

import "testing"

func TestLineStart(t *testing.T) {
	cases := []struct {
		name string
		text string
		off  int
		want int
	}{
		{name: "empty", text: "", off: 0, want: 0},
		{name: "first line", text: "abc", off: 2, want: 0},
		{name: "second line", text: "ab\ncd", off: 4, want: 3},
		{name: "at newline", text: "ab\ncd", off: 3, want: 3},
		{name: "before newline", text: "ab\ncd", off: 2, want: 0},
		{name: "offset past end clamps", text: "ab\ncd", off: 99, want: 3},
		{name: "negative offset clamps", text: "abc", off: -1, want: 0},
		{name: "multibyte", text: "日本\n語x", off: 4, want: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LineStart(tc.text, tc.off); got != tc.want {
				t.Fatalf("LineStart(%q, %d): got %d, want %d", tc.text, tc.off, got, tc.want)
			}
		})
	}
}

func TestLineSoFar(t *testing.T) {
	cases := []struct {
		text string
		off  int
		want string
	}{
		{text: "", off: 0, want: ""},
		{text: "# he", off: 4, want: "# he"},
		{text: "ab\ncd", off: 4, want: "c"},
		{text: "ab\ncd", off: 3, want: ""},
		{text: "I like :fi", off: 10, want: "I like :fi"},
	}

	for _, tc := range cases {
		if got := LineSoFar(tc.text, tc.off); got != tc.want {
			t.Fatalf("LineSoFar(%q, %d): got %q, want %q", tc.text, tc.off, got, tc.want)
		}
	}
}

func TestSplice(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		start  int
		end    int
		insert string
		want   string
	}{
		{name: "replace middle", text: "abcdef", start: 2, end: 4, insert: "XY", want: "abXYef"},
		{name: "insert only", text: "abc", start: 1, end: 1, insert: "Z", want: "aZbc"},
		{name: "delete only", text: "abc", start: 0, end: 2, insert: "", want: "c"},
		{name: "emoji splice", text: "I like :fire", start: 7, end: 12, insert: "🔥", want: "I like 🔥"},
		{name: "clamps range", text: "ab", start: -3, end: 99, insert: "x", want: "x"},
		{name: "empty text", text: "", start: 0, end: 0, insert: "hi", want: "hi"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Splice(tc.text, tc.start, tc.end, tc.insert); got != tc.want {
				t.Fatalf("Splice: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPosForOffset_RoundTrip(t *testing.T) {
	text := "one\ntwo 🚀\n\nfour"
	for off := 0; off <= RuneLen(text); off++ {
		p := PosForOffset(text, off)
		if got := OffsetForPos(text, p); got != off {
			t.Fatalf("round trip at %d: pos %+v, got offset %d", off, p, got)
		}
	}
}

func TestPosForOffset(t *testing.T) {
	text := "ab\ncd"
	cases := []struct {
		off  int
		want Pos
	}{
		{off: 0, want: Pos{Row: 0, Col: 0}},
		{off: 2, want: Pos{Row: 0, Col: 2}},
		{off: 3, want: Pos{Row: 1, Col: 0}},
		{off: 5, want: Pos{Row: 1, Col: 2}},
	}

	for _, tc := range cases {
		if got := PosForOffset(text, tc.off); got != tc.want {
			t.Fatalf("PosForOffset(%d): got %+v, want %+v", tc.off, got, tc.want)
		}
	}
}

func TestLines(t *testing.T) {
	if got := len(Lines("")); got != 1 {
		t.Fatalf("empty document line count: got %d, want 1", got)
	}
	if got := len(Lines("a\n")); got != 2 {
		t.Fatalf("trailing newline line count: got %d, want 2", got)
	}
}

func TestLine(t *testing.T) {
	text := "ab\ncd\nef"
	if got, want := Line(text, 4), "cd"; got != want {
		t.Fatalf("Line: got %q, want %q", got, want)
	}
	if got, want := Line(text, 0), "ab"; got != want {
		t.Fatalf("Line: got %q, want %q", got, want)
	}
}
