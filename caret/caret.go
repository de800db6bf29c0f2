// Package caret maps a rune offset in a plain-text buffer to an on-screen
// cell position, replicating the host surface's wrapping so the autocomplete
// popup can be anchored at the trigger location.
//
// The resolver holds no state of its own: every query re-samples the host
// surface, and a detached surface simply reports no position.
package caret

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/minxiang0101/markdown/document"
)

// Point is a screen cell position relative to the viewport origin.
type Point struct {
	X int
	Y int
}

// Metrics describes the host surface's current rendering of the buffer.
// Measurements must mirror the surface exactly (same wrap width, same tab
// stops, same scroll) or popup anchors will drift from the caret.
type Metrics struct {
	// Width and Height are the visible extent of the text region, in cells
	// and rows.
	Width  int
	Height int

	// WrapWidth is the column at which the surface wraps lines; zero or
	// negative means no wrapping.
	WrapWidth int

	// XOffset and YOffset are the scroll position: cells scrolled right
	// (unwrapped surfaces only) and visual rows scrolled down.
	XOffset int
	YOffset int

	// PadLeft and PadTop offset the text region from the viewport origin
	// (frame, gutter).
	PadLeft int
	PadTop  int

	// TabWidth is the tab stop interval; defaults to 4 when unset.
	TabWidth int
}

// Surface supplies Metrics on demand. ok is false while the surface is
// detached (not mounted, zero-sized); every resolver query is then a no-op.
type Surface interface {
	Metrics() (Metrics, bool)
}

// Resolver computes caret positions against a Surface.
type Resolver struct {
	surface Surface
}

func NewResolver(s Surface) *Resolver {
	return &Resolver{surface: s}
}

// PointForOffset returns the viewport-relative cell position of the rune at
// off in text. ok is false when the surface is detached or the position lies
// outside the visible region.
func (r *Resolver) PointForOffset(text string, off int) (Point, bool) {
	if r == nil || r.surface == nil {
		return Point{}, false
	}
	m, ok := r.surface.Metrics()
	if !ok || m.Width <= 0 || m.Height <= 0 {
		return Point{}, false
	}

	pos := document.PosForOffset(text, document.ClampOffset(text, off))
	lines := document.Lines(text)

	visualRow := 0
	for row := 0; row < pos.Row && row < len(lines); row++ {
		visualRow += len(wrapSegments(lines[row], m.WrapWidth, m.tabWidth()))
	}

	line := ""
	if pos.Row < len(lines) {
		line = lines[pos.Row]
	}
	segs := wrapSegments(line, m.WrapWidth, m.tabWidth())
	segIdx := segmentIndexForCol(segs, pos.Col)
	seg := segs[segIdx]

	cell := cellForCol(line, pos.Col, m.tabWidth())

	x := 0
	if m.WrapWidth > 0 {
		x = cell - seg.startCell
	} else {
		x = cell - m.XOffset
	}
	y := visualRow + segIdx - m.YOffset

	if y < 0 || y >= m.Height || x < 0 || x >= m.Width {
		return Point{}, false
	}
	return Point{X: x + m.PadLeft, Y: y + m.PadTop}, true
}

// PlacePopup positions a popup of the given size relative to an anchor
// returned by PointForOffset: one row below the caret line, flipped above
// when it would overflow the bottom edge, and shifted left until its right
// edge fits the viewport.
func PlacePopup(anchor Point, popupWidth, popupHeight int, m Metrics) Point {
	bottom := m.PadTop + m.Height
	right := m.PadLeft + m.Width

	y := anchor.Y + 1
	if y+popupHeight > bottom && anchor.Y-popupHeight >= m.PadTop {
		y = anchor.Y - popupHeight
	}
	if y+popupHeight > bottom {
		y = bottom - popupHeight
	}
	if y < m.PadTop {
		y = m.PadTop
	}

	x := anchor.X
	if x+popupWidth > right {
		x = right - popupWidth
	}
	if x < m.PadLeft {
		x = m.PadLeft
	}

	return Point{X: x, Y: y}
}

func (m Metrics) tabWidth() int {
	if m.TabWidth <= 0 {
		return 4
	}
	return m.TabWidth
}

func cellForCol(line string, col, tabWidth int) int {
	cell := 0
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		cell += runeCell(r, cell, tabWidth)
	}
	return cell
}

func runeCell(r rune, startCell, tabWidth int) int {
	if r == '\t' {
		return tabWidth - (startCell % tabWidth)
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	return w
}
