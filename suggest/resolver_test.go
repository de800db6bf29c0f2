package suggest

import (
	"strings"
	"testing"

	"github.com/minxiang0101/markdown/heading"
	"github.com/minxiang0101/markdown/trigger"
)

func matchFor(seq string, query string) trigger.Match {
	for _, d := range trigger.Catalog() {
		if d.Sequence == seq {
			return trigger.Match{Definition: d, Query: query}
		}
	}
	return trigger.Match{}
}

func TestResolve_HeadingTable(t *testing.T) {
	r := NewResolver()
	got := r.Resolve(matchFor("#", "#"), "")
	if len(got) != 6 {
		t.Fatalf("heading candidates: got %d, want 6", len(got))
	}
	for i, c := range got {
		wantInsert := strings.Repeat("#", i+1) + " "
		if c.InsertText != wantInsert {
			t.Fatalf("candidate %d insert: got %q, want %q", i, c.InsertText, wantInsert)
		}
		if c.Kind != trigger.KindHeadingBlock {
			t.Fatalf("candidate %d kind: got %v", i, c.Kind)
		}
	}
}

func TestResolve_LineStartTablesNonEmpty(t *testing.T) {
	for _, seq := range []string{"#", "-", "*", ">", "|"} {
		got := NewResolver().Resolve(matchFor(seq, seq), "")
		if len(got) == 0 {
			t.Fatalf("no candidates for %q", seq)
		}
	}
}

func TestResolve_FenceFilter(t *testing.T) {
	r := NewResolver()

	all := r.Resolve(matchFor("```", ""), "")
	if len(all) != r.MaxItems() {
		t.Fatalf("unfiltered fence list must hit the cap: got %d, want %d", len(all), r.MaxItems())
	}

	got := r.Resolve(matchFor("```", "pyth"), "")
	if len(got) != 1 {
		t.Fatalf("fence candidates for \"pyth\": got %d, want 1", len(got))
	}
	if got[0].InsertText != "```python\n\n```" {
		t.Fatalf("fence insert: got %q", got[0].InsertText)
	}

	// Case-insensitive substring, list order preserved.
	got = r.Resolve(matchFor("```", "S"), "")
	for i := 1; i < len(got); i++ {
		if got[i-1].ID == got[i].ID {
			t.Fatalf("duplicate candidate id %q", got[i].ID)
		}
	}
	if len(got) == 0 {
		t.Fatalf("case-insensitive query must match")
	}

	if got := r.Resolve(matchFor("```", "no-such-language"), ""); len(got) != 0 {
		t.Fatalf("unmatched query: got %d candidates, want 0", len(got))
	}
}

func TestFenceBodyOffset(t *testing.T) {
	cases := []struct {
		insert string
		want   int
	}{
		{insert: "```go\n\n```", want: 6},
		{insert: "```\n\n```", want: 4},
		{insert: "no blank line", want: 13},
	}
	for _, tc := range cases {
		if got := FenceBodyOffset(tc.insert); got != tc.want {
			t.Fatalf("FenceBodyOffset(%q): got %d, want %d", tc.insert, got, tc.want)
		}
	}
}

func TestResolve_EmojiFilter(t *testing.T) {
	r := NewResolver()

	got := r.Resolve(matchFor(":", "roc"), "")
	found := false
	for _, c := range got {
		if c.InsertText == "🚀" {
			found = true
		}
	}
	if !found {
		t.Fatalf("query \"roc\" must resolve the rocket glyph, got %+v", got)
	}

	got = r.Resolve(matchFor(":", "fire"), "")
	if len(got) == 0 || got[0].InsertText != "🔥" {
		t.Fatalf("query \"fire\": first candidate must be the fire glyph, got %+v", got)
	}

	// Keyword matching: "+1" is a thumbsup keyword.
	got = r.Resolve(matchFor(":", "+1"), "")
	if len(got) == 0 || got[0].InsertText != "👍" {
		t.Fatalf("keyword query \"+1\": got %+v", got)
	}

	if got := r.Resolve(matchFor(":", "zzzzzzzz"), ""); len(got) != 0 {
		t.Fatalf("unmatched emoji query: got %d candidates", len(got))
	}
}

func TestResolve_CapAppliesToEveryKind(t *testing.T) {
	r := NewResolver()
	doc := strings.Repeat("# Heading\n", 20)

	cases := []struct {
		name string
		m    trigger.Match
	}{
		{name: "emoji", m: matchFor(":", "a")},
		{name: "fence", m: matchFor("```", "")},
		{name: "link", m: matchFor("[", "")},
	}
	for _, tc := range cases {
		if got := r.Resolve(tc.m, doc); len(got) > DefaultMaxItems {
			t.Fatalf("%s: %d candidates exceeds cap %d", tc.name, len(got), DefaultMaxItems)
		}
	}
}

func TestResolve_MaxItemsOption(t *testing.T) {
	r := NewResolver(WithMaxItems(3))
	if got := r.Resolve(matchFor("```", ""), ""); len(got) != 3 {
		t.Fatalf("capped fence list: got %d, want 3", len(got))
	}
}

func TestResolve_LinkHeadings(t *testing.T) {
	r := NewResolver()
	doc := "# Intro\ntext\n## Intro\n"

	got := r.Resolve(matchFor("[", ""), doc)
	if len(got) != 2 {
		t.Fatalf("link candidates: got %d, want 2", len(got))
	}
	if got[0].InsertText != "[Intro](#intro-0)" {
		t.Fatalf("first link insert: got %q", got[0].InsertText)
	}
	if got[1].InsertText != "[Intro](#intro-1)" {
		t.Fatalf("second link insert: got %q", got[1].InsertText)
	}
	if got[0].Label != "# Intro" || got[1].Label != "## Intro" {
		t.Fatalf("link labels: got %q, %q", got[0].Label, got[1].Label)
	}
}

func TestResolve_LinkFallbackTemplates(t *testing.T) {
	r := NewResolver()
	got := r.Resolve(matchFor("[", ""), "no headings here")
	if len(got) != 2 {
		t.Fatalf("fallback candidates: got %d, want 2", len(got))
	}
	if got[0].InsertText != "[]()" || got[1].InsertText != "![]()" {
		t.Fatalf("fallback inserts: got %q, %q", got[0].InsertText, got[1].InsertText)
	}
}

func TestResolve_LinkCustomAccessor(t *testing.T) {
	r := NewResolver(WithHeadings(func(string) []heading.Heading {
		return []heading.Heading{{Level: 3, Text: "Custom", Anchor: "custom-0"}}
	}))
	got := r.Resolve(matchFor("[", ""), "ignored")
	if len(got) != 1 || got[0].InsertText != "[Custom](#custom-0)" {
		t.Fatalf("custom accessor: got %+v", got)
	}
}

func TestCatalogTables_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range emojiTable {
		if seen["emoji-"+e.code] {
			t.Fatalf("duplicate emoji code %q", e.code)
		}
		seen["emoji-"+e.code] = true
	}
	for _, tag := range fenceLanguages {
		id := "fence-" + tag
		if seen[id] {
			t.Fatalf("duplicate fence tag %q", tag)
		}
		seen[id] = true
	}
	for seq, entries := range syntaxTable {
		for _, e := range entries {
			if seen[e.id] {
				t.Fatalf("duplicate syntax id %q under %q", e.id, seq)
			}
			seen[e.id] = true
		}
	}
}
