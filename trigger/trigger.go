// Package trigger decides whether the text behind the cursor forms an active
// autocomplete context: which trigger fired, what the user has typed since,
// and where accepted suggestion text must begin overwriting the buffer.
package trigger

// Kind classifies what a trigger suggests.
type Kind uint8

const (
	// KindHeadingBlock covers the markdown block-syntax triggers typed at
	// line start: heading marks, list bullets, quotes, and table pipes.
	KindHeadingBlock Kind = iota
	// KindEmoji is the `:shortcode` trigger.
	KindEmoji
	// KindLink is the `[` / leading-`!` link and image trigger.
	KindLink
	// KindFencedCode is the triple-backtick code fence trigger.
	KindFencedCode
)

func (k Kind) String() string {
	switch k {
	case KindHeadingBlock:
		return "heading-block"
	case KindEmoji:
		return "emoji"
	case KindLink:
		return "link"
	case KindFencedCode:
		return "fenced-code"
	default:
		return "unknown"
	}
}

// Position constrains where in a line a trigger sequence may appear.
type Position uint8

const (
	AtLineStart Position = iota
	AtWordStart
	Anywhere
)

// Definition describes one trigger. The full set is fixed at process start
// and never mutated; Catalog returns a fresh copy.
type Definition struct {
	// Sequence is the trigger text: a single character for all triggers
	// except the three-backtick code fence.
	Sequence string
	Kind     Kind
	Position Position
	// MinQueryLen is the minimum typed query length before the trigger is
	// considered active.
	MinQueryLen int
}

// Match is the result of a successful detection. It is built fresh on every
// evaluation and never persisted.
type Match struct {
	Definition Definition

	// Query is the text typed since the trigger sequence. For the heading
	// trigger it is the run of '#' characters itself.
	Query string

	// ReplacementStart is the absolute rune offset where accepted suggestion
	// text begins overwriting the buffer. Always <= the cursor offset at
	// detection time and always inside the buffer.
	ReplacementStart int
}

var catalog = []Definition{
	{Sequence: ":", Kind: KindEmoji, Position: Anywhere, MinQueryLen: 1},
	{Sequence: "```", Kind: KindFencedCode, Position: AtLineStart},
	{Sequence: "#", Kind: KindHeadingBlock, Position: AtLineStart, MinQueryLen: 1},
	{Sequence: "-", Kind: KindHeadingBlock, Position: AtLineStart, MinQueryLen: 1},
	{Sequence: "*", Kind: KindHeadingBlock, Position: AtLineStart, MinQueryLen: 1},
	{Sequence: ">", Kind: KindHeadingBlock, Position: AtLineStart, MinQueryLen: 1},
	{Sequence: "|", Kind: KindHeadingBlock, Position: AtLineStart, MinQueryLen: 1},
	{Sequence: "[", Kind: KindLink, Position: Anywhere},
	{Sequence: "!", Kind: KindLink, Position: AtLineStart},
}

// Catalog returns the fixed trigger set in evaluation order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

func definitionFor(seq string) Definition {
	for _, d := range catalog {
		if d.Sequence == seq {
			return d
		}
	}
	return Definition{}
}
