// Package heading extracts markdown heading lines from a document and
// assigns each one a deterministic URL-fragment anchor.
//
// Anchors are the navigation targets for in-document links, so the slug
// algorithm here is the single source of truth: any renderer emitting
// heading ids must use Extract (or Slug with the same index) to agree with
// the links the autocomplete core inserts.
package heading

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Heading is one extracted heading in document order.
type Heading struct {
	// Level is the heading level, 1 through 6.
	Level int
	// Text is the heading text with the leading marks and surrounding
	// whitespace removed.
	Text string
	// Anchor is the generated fragment identifier. Never empty, and unique
	// within one document because it embeds the heading's document-order
	// index.
	Anchor string
}

var headingLineRE = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Extract scans doc top to bottom and returns every ATX heading line.
// Only heading lines are recognized; the rest of the markdown grammar is
// deliberately not parsed.
func Extract(doc string) []Heading {
	if doc == "" {
		return nil
	}

	var out []Heading
	for _, line := range strings.Split(doc, "\n") {
		m := headingLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[2])
		if text == "" {
			continue
		}
		out = append(out, Heading{
			Level:  len(m[1]),
			Text:   text,
			Anchor: Slug(text, len(out)),
		})
	}
	return out
}

// Slug generates the anchor for heading text at the given document-order
// index (0-based).
//
// The text is lower-cased; every run of characters outside word characters
// and CJK ideographs collapses to a single hyphen; leading and trailing
// hyphens are trimmed; the index is appended so that repeated heading text
// still produces distinct anchors. An all-symbol heading whose slug would be
// empty falls back to the index alone, keeping the anchor non-empty.
func Slug(text string, index int) string {
	var sb strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(text) {
		if isAnchorRune(r) {
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	slug := sb.String()
	if slug == "" {
		return strconv.Itoa(index)
	}
	return slug + "-" + strconv.Itoa(index)
}

func isAnchorRune(r rune) bool {
	if r == '_' {
		return true
	}
	if unicode.IsLetter(r) && r < 0x80 {
		return true
	}
	if unicode.IsDigit(r) && r < 0x80 {
		return true
	}
	return unicode.Is(unicode.Han, r)
}
