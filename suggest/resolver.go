// Package suggest turns an active trigger context into an ordered, capped
// list of suggestion candidates, drawing from fixed catalogs of markdown
// syntax snippets, code-fence language tags, and emoji, plus the headings of
// the current document for link suggestions.
package suggest

import (
	"strings"

	"github.com/minxiang0101/markdown/heading"
	"github.com/minxiang0101/markdown/trigger"
)

// DefaultMaxItems caps the candidate list. It is a configuration knob, not
// an algorithmic invariant.
const DefaultMaxItems = 8

// Candidate is one selectable suggestion.
type Candidate struct {
	// ID is unique within one resolved list.
	ID string
	// Label is the display text for the popup row.
	Label string
	// InsertText is the literal text spliced into the buffer on acceptance.
	InsertText string
	// Description is secondary display text (shortcode, anchor, hint).
	Description string

	Kind trigger.Kind
}

// Resolver resolves candidates for a trigger match. The zero value is not
// ready to use; construct with NewResolver.
type Resolver struct {
	maxItems int
	headings func(doc string) []heading.Heading
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxItems overrides the candidate list cap.
func WithMaxItems(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxItems = n
		}
	}
}

// WithHeadings overrides the heading-extraction accessor used for link
// suggestions. The default is heading.Extract.
func WithHeadings(fn func(doc string) []heading.Heading) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.headings = fn
		}
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		maxItems: DefaultMaxItems,
		headings: heading.Extract,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MaxItems returns the configured candidate list cap.
func (r *Resolver) MaxItems() int { return r.maxItems }

// Resolve returns the candidates for m, in catalog order, capped at the
// configured maximum. doc is the full document text; it is only consulted
// for link-kind triggers. An empty result means the popup must stay closed.
func (r *Resolver) Resolve(m trigger.Match, doc string) []Candidate {
	var out []Candidate
	switch m.Definition.Kind {
	case trigger.KindHeadingBlock:
		out = syntaxCandidates(m.Definition.Sequence)
	case trigger.KindFencedCode:
		out = fenceCandidates(m.Query)
	case trigger.KindEmoji:
		out = emojiCandidates(m.Query)
	case trigger.KindLink:
		out = r.linkCandidates(doc)
	}

	if len(out) > r.maxItems {
		out = out[:r.maxItems]
	}
	return out
}

// linkCandidates lists every document heading as a link target. A document
// without headings still gets the two generic templates so the trigger is
// never a dead end.
func (r *Resolver) linkCandidates(doc string) []Candidate {
	hs := r.headings(doc)
	if len(hs) == 0 {
		return []Candidate{
			{
				ID:          "link-template",
				Label:       "[]()",
				InsertText:  "[]()",
				Description: "link",
				Kind:        trigger.KindLink,
			},
			{
				ID:          "image-template",
				Label:       "![]()",
				InsertText:  "![]()",
				Description: "image",
				Kind:        trigger.KindLink,
			},
		}
	}

	out := make([]Candidate, 0, len(hs))
	for _, h := range hs {
		out = append(out, Candidate{
			ID:          "heading-" + h.Anchor,
			Label:       strings.Repeat("#", h.Level) + " " + h.Text,
			InsertText:  "[" + h.Text + "](#" + h.Anchor + ")",
			Description: "#" + h.Anchor,
			Kind:        trigger.KindLink,
		})
	}
	return out
}

// matchesQuery reports a case-insensitive substring match of query against
// any of the given fields. An empty query matches everything.
func matchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
