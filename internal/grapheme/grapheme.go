// Package grapheme provides grapheme-cluster segmentation and terminal
// cell-width measurement for the autocomplete popup and caret geometry.
package grapheme

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// CellWidth returns the terminal cell width of a single grapheme cluster.
//
// Tabs are expanded relative to the current cell position: startCell is the
// cell the cluster begins at and tabWidth is the tab stop interval.
func CellWidth(cluster string, startCell, tabWidth int) int {
	if cluster == "" {
		return 0
	}
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		return tabWidth - (startCell % tabWidth)
	}
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		w = 1
	}
	return w
}

// StringCells returns the total cell width of text starting at cell 0.
func StringCells(text string, tabWidth int) int {
	used := 0
	for _, cl := range Split(text) {
		used += CellWidth(cl, used, tabWidth)
	}
	return used
}

// TruncateCells returns the longest prefix of text that fits in width cells.
func TruncateCells(text string, width, tabWidth int) string {
	if width <= 0 || text == "" {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, cl := range Split(text) {
		w := CellWidth(cl, used, tabWidth)
		if used+w > width {
			break
		}
		sb.WriteString(cl)
		used += w
	}
	return sb.String()
}
