// Package autocomplete owns the inline suggestion popup for a plain-text
// markdown editor: it reacts to buffer changes and key events, resolves
// candidates through the trigger and suggest packages, anchors the popup at
// the caret, and splices accepted suggestions back into the host's buffer.
//
// The package is host-agnostic in the Bubble Tea style: the host feeds it
// text-change and key events, renders from the single PopupState it exposes,
// and applies the buffer mutation and cursor placement it requests on
// acceptance.
package autocomplete

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/go-logr/logr"

	"github.com/minxiang0101/markdown/caret"
	"github.com/minxiang0101/markdown/heading"
	"github.com/minxiang0101/markdown/suggest"
	"github.com/minxiang0101/markdown/trigger"
)

const (
	defaultSettleDelay = 80 * time.Millisecond
	defaultMaxWidth    = 40
)

// PopupState is the single authoritative popup state. It is reset to the
// canonical closed state whenever the popup closes; while Open is true the
// candidate list is non-empty and Selected indexes into it.
type PopupState struct {
	Open       bool
	Candidates []suggest.Candidate
	Selected   int

	// Position is the placed top-left cell of the popup, already clamped
	// against the viewport; Width and Height are its rendered extent.
	Position caret.Point
	Width    int
	Height   int

	// Kind, ReplacementStart, and Query describe the active trigger context
	// the candidates were resolved for.
	Kind             trigger.Kind
	ReplacementStart int
	Query            string
}

func clonePopupState(s PopupState) PopupState {
	if len(s.Candidates) == 0 {
		s.Candidates = nil
		return s
	}
	out := make([]suggest.Candidate, len(s.Candidates))
	copy(out, s.Candidates)
	s.Candidates = out
	return s
}

// KeyMap defines the popup key bindings. Only these keys are intercepted
// while the popup is open; everything else falls through to the host.
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Accept  key.Binding
	Dismiss key.Binding

	// AcceptTab additionally accepts on tab, so the host's default tab
	// handling (indent insertion) is suppressed only while the popup is open.
	AcceptTab bool
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next suggestion")),
		Prev:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev suggestion")),
		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept suggestion")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		AcceptTab: true,
	}
}

// Config configures the autocomplete Model. Zero values are filled with
// defaults by New.
type Config struct {
	// Surface provides caret geometry for popup placement. While the
	// surface reports itself detached, popup opening is a silent no-op.
	Surface caret.Surface

	// OnApplyText receives the new full buffer text on acceptance.
	OnApplyText func(newText string)
	// OnPlaceCursor receives the desired absolute rune offset after the
	// host has applied the new text.
	OnPlaceCursor func(offset int)

	// Headings overrides the heading accessor used for link suggestions.
	Headings func(doc string) []heading.Heading

	// MaxItems caps the candidate list (default 8). SettleDelay is the
	// single-shot delay between a text change and re-detection (default
	// 80ms); both are knobs, not invariants.
	MaxItems    int
	SettleDelay time.Duration

	// MaxWidth caps the popup width in cells (default 40).
	MaxWidth int

	KeyMap KeyMap
	Styles Styles

	// Logger receives diagnostics only; the default discards everything.
	Logger logr.Logger
}

func normalizeConfig(cfg Config) Config {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = suggest.DefaultMaxItems
	}
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = defaultSettleDelay
	}
	if cfg.MaxWidth <= 0 {
		cfg.MaxWidth = defaultMaxWidth
	}
	if reflect.DeepEqual(cfg.KeyMap, KeyMap{}) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if reflect.DeepEqual(cfg.Styles, Styles{}) {
		cfg.Styles = DefaultStyles()
	}
	if cfg.Logger.GetSink() == nil {
		cfg.Logger = logr.Discard()
	}
	return cfg
}
