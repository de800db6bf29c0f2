package document

import "strings"

// Pos points into the document by (row, col) in runes. Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// RuneLen returns the rune length of text.
func RuneLen(text string) int {
	return len([]rune(text))
}

// ClampOffset clamps off into [0, RuneLen(text)].
func ClampOffset(text string, off int) int {
	return clampInt(off, 0, RuneLen(text))
}

// LineStart returns the rune offset of the start of the line containing off:
// one past the nearest preceding '\n', or 0.
func LineStart(text string, off int) int {
	runes := []rune(text)
	off = clampInt(off, 0, len(runes))
	for i := off - 1; i >= 0; i-- {
		if runes[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// LineSoFar returns the text of the current line from its start up to off.
// The returned string never contains '\n'.
func LineSoFar(text string, off int) string {
	runes := []rune(text)
	off = clampInt(off, 0, len(runes))
	return string(runes[LineStart(text, off):off])
}

// Slice returns the rune-offset substring text[start:end).
func Slice(text string, start, end int) string {
	runes := []rune(text)
	start = clampInt(start, 0, len(runes))
	end = clampInt(end, start, len(runes))
	return string(runes[start:end])
}

// Splice replaces the rune range [start, end) of text with insert and
// returns the new document.
func Splice(text string, start, end int, insert string) string {
	runes := []rune(text)
	start = clampInt(start, 0, len(runes))
	end = clampInt(end, start, len(runes))

	var sb strings.Builder
	sb.Grow(len(text) + len(insert))
	sb.WriteString(string(runes[:start]))
	sb.WriteString(insert)
	sb.WriteString(string(runes[end:]))
	return sb.String()
}

// PosForOffset converts a rune offset to a (row, col) position.
func PosForOffset(text string, off int) Pos {
	runes := []rune(text)
	off = clampInt(off, 0, len(runes))

	p := Pos{}
	for i := 0; i < off; i++ {
		if runes[i] == '\n' {
			p.Row++
			p.Col = 0
			continue
		}
		p.Col++
	}
	return p
}

// OffsetForPos converts a (row, col) position to a rune offset. Out-of-range
// rows and columns are clamped into the document.
func OffsetForPos(text string, p Pos) int {
	lines := Lines(text)
	row := clampInt(p.Row, 0, len(lines)-1)

	off := 0
	for i := 0; i < row; i++ {
		off += RuneLen(lines[i]) + 1
	}
	return off + clampInt(p.Col, 0, RuneLen(lines[row]))
}

// Lines splits text into logical lines. An empty document is a single empty
// line; a trailing '\n' yields a final empty line.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}

// Line returns the full text of the line containing off, without '\n'.
func Line(text string, off int) string {
	lines := Lines(text)
	row := PosForOffset(text, ClampOffset(text, off)).Row
	if row >= len(lines) {
		return ""
	}
	return lines[row]
}
