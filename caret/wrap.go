package caret

import "unicode"

// segment is one visual row of a wrapped logical line. Columns are rune
// indices into the line; cells are positions in the unwrapped rendering.
type segment struct {
	startCol int
	endCol   int

	startCell int
	endCell   int
}

type wrapUnit struct {
	startCol int
	endCol   int
	cells    int

	isSpace bool
}

// wrapSegments replicates word wrapping at the given cell width: units break
// at whitespace boundaries, a unit wider than the width is hard-split, and
// trailing space that overflows stays on the current row. A non-positive
// width disables wrapping.
func wrapSegments(line string, width, tabWidth int) []segment {
	runes := []rune(line)
	totalCells := cellForCol(line, len(runes), tabWidth)
	if width <= 0 {
		return []segment{{startCol: 0, endCol: len(runes), startCell: 0, endCell: totalCells}}
	}

	units := wrapUnits(runes, tabWidth)
	if len(units) == 0 {
		return []segment{{}}
	}

	var segs []segment
	cur := segment{}
	used := 0
	flush := func(next int) {
		segs = append(segs, cur)
		cur = segment{startCol: next, endCol: next}
		used = 0
	}

	for _, u := range units {
		if used > 0 && !u.isSpace && used+u.cells > width {
			flush(u.startCol)
		}

		if u.cells > width && !u.isSpace {
			// Hard-split an oversized word rune by rune.
			for col := u.startCol; col < u.endCol; col++ {
				w := runeCell(runes[col], cellForCol(line, col, tabWidth)%width, tabWidth)
				if used > 0 && used+w > width {
					flush(col)
				}
				cur.endCol = col + 1
				used += w
			}
			continue
		}

		cur.endCol = u.endCol
		used += u.cells
	}
	segs = append(segs, cur)

	for i := range segs {
		segs[i].startCell = cellForCol(line, segs[i].startCol, tabWidth)
		segs[i].endCell = cellForCol(line, segs[i].endCol, tabWidth)
	}
	return segs
}

func wrapUnits(runes []rune, tabWidth int) []wrapUnit {
	var units []wrapUnit
	cell := 0
	i := 0
	for i < len(runes) {
		start := i
		startCell := cell
		space := unicode.IsSpace(runes[i])
		for i < len(runes) && unicode.IsSpace(runes[i]) == space {
			cell += runeCell(runes[i], cell, tabWidth)
			i++
		}
		units = append(units, wrapUnit{
			startCol: start,
			endCol:   i,
			cells:    cell - startCell,
			isSpace:  space,
		})
	}
	return units
}

func segmentIndexForCol(segs []segment, col int) int {
	for i, s := range segs {
		if col < s.endCol {
			return i
		}
	}
	return len(segs) - 1
}
