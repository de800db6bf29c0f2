package autocomplete

import (
	"strings"

	overlay "github.com/rmhubbert/bubbletea-overlay"

	graphemeutil "github.com/minxiang0101/markdown/internal/grapheme"
	"github.com/minxiang0101/markdown/suggest"
)

// View composites the popup over the host's rendered base view. With the
// popup closed, base is returned unchanged.
func (m Model) View(base string) string {
	if !m.state.Open || len(m.state.Candidates) == 0 {
		return base
	}

	rows := make([]string, 0, len(m.state.Candidates))
	for i, c := range m.state.Candidates {
		rows = append(rows, m.renderRow(c, i == m.state.Selected, m.state.Width))
	}

	return overlay.Composite(
		strings.Join(rows, "\n"),
		base,
		overlay.Left,
		overlay.Top,
		m.state.Position.X,
		m.state.Position.Y,
	)
}

func (m Model) renderRow(c suggest.Candidate, selected bool, width int) string {
	base := m.cfg.Styles.Item
	if selected {
		base = m.cfg.Styles.Selected
	}

	label := graphemeutil.TruncateCells(sanitizeRowText(c.Label), width, 4)
	used := graphemeutil.StringCells(label, 4)

	desc := ""
	if d := sanitizeRowText(c.Description); d != "" && width-used > 2 {
		if d = graphemeutil.TruncateCells(d, width-used-2, 4); d != "" {
			desc = "  " + d
			used += graphemeutil.StringCells(desc, 4)
		}
	}

	var sb strings.Builder
	sb.WriteString(base.Render(label))
	if desc != "" {
		sb.WriteString(m.cfg.Styles.Description.Inherit(base).Render(desc))
	}
	if used < width {
		sb.WriteString(base.Render(strings.Repeat(" ", width-used)))
	}
	return sb.String()
}

// popupWidth returns the popup's cell width: the widest row, capped.
func popupWidth(candidates []suggest.Candidate, maxWidth int) int {
	width := 0
	for _, c := range candidates {
		text := sanitizeRowText(c.Label)
		if d := sanitizeRowText(c.Description); d != "" {
			text += "  " + d
		}
		if w := graphemeutil.StringCells(text, 4); w > width {
			width = w
		}
	}
	if width > maxWidth {
		width = maxWidth
	}
	if width < 1 {
		width = 1
	}
	return width
}

func sanitizeRowText(s string) string {
	if s == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
