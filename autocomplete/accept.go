package autocomplete

import (
	"github.com/minxiang0101/markdown/document"
	"github.com/minxiang0101/markdown/suggest"
	"github.com/minxiang0101/markdown/trigger"
)

// AcceptAt accepts the candidate at index i: the buffer text from the
// replacement start to the cursor is replaced by the candidate's insertion
// text, the new buffer and cursor offset are pushed to the host, and the
// popup closes. Out-of-range indexes are ignored.
func (m Model) AcceptAt(i int) Model {
	if !m.state.Open || i < 0 || i >= len(m.state.Candidates) {
		return m
	}
	c := m.state.Candidates[i]
	start := m.state.ReplacementStart

	newText := document.Splice(m.text, start, m.cursor, c.InsertText)
	newCursor := start + cursorOffsetWithin(c)

	m.cfg.Logger.V(1).Info("candidate accepted", "id", c.ID, "kind", c.Kind.String())

	m = m.close("accepted")
	m.text = newText
	m.cursor = newCursor

	if m.cfg.OnApplyText != nil {
		m.cfg.OnApplyText(newText)
	}
	if m.cfg.OnPlaceCursor != nil {
		m.cfg.OnPlaceCursor(newCursor)
	}
	return m
}

// AcceptSelected accepts the currently selected candidate.
func (m Model) AcceptSelected() Model {
	return m.AcceptAt(m.state.Selected)
}

// cursorOffsetWithin returns where the cursor lands inside the insertion
// text, relative to its start, in runes.
//
// Plain insertions put the cursor at the end. Fences land it on the blank
// line between the markers, ready to type code. Links land it right after
// the opening '[' so link text can be typed immediately.
func cursorOffsetWithin(c suggest.Candidate) int {
	switch c.Kind {
	case trigger.KindFencedCode:
		return suggest.FenceBodyOffset(c.InsertText)
	case trigger.KindLink:
		for i, r := range []rune(c.InsertText) {
			if r == '[' {
				return i + 1
			}
		}
		return document.RuneLen(c.InsertText)
	default:
		return document.RuneLen(c.InsertText)
	}
}
