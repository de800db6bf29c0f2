package autocomplete

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/minxiang0101/markdown/caret"
	"github.com/minxiang0101/markdown/suggest"
	"github.com/minxiang0101/markdown/trigger"
)

// Model is the autocomplete state machine. It has exactly two states,
// closed and open; every transition funnels through evaluate, the key
// handlers, and close.
type Model struct {
	cfg      Config
	resolver *suggest.Resolver
	geometry *caret.Resolver

	state PopupState

	// Last text-change snapshot; detection always reads the latest one.
	text   string
	cursor int

	// generation invalidates settle timers superseded by newer text changes.
	generation int
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)

	opts := []suggest.Option{suggest.WithMaxItems(cfg.MaxItems)}
	if cfg.Headings != nil {
		opts = append(opts, suggest.WithHeadings(cfg.Headings))
	}

	return Model{
		cfg:      cfg,
		resolver: suggest.NewResolver(opts...),
		geometry: caret.NewResolver(cfg.Surface),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// State returns a snapshot of the popup state for rendering.
func (m Model) State() PopupState { return clonePopupState(m.state) }

type settleMsg struct {
	generation int
}

// TextChanged records a buffer edit and schedules re-detection after the
// settle delay. Every call supersedes any pending evaluation; only the
// newest one acts when its timer fires.
func (m Model) TextChanged(text string, cursor int) (Model, tea.Cmd) {
	m.text = text
	m.cursor = cursor
	m.generation++

	gen := m.generation
	return m, tea.Tick(m.cfg.SettleDelay, func(time.Time) tea.Msg {
		return settleMsg{generation: gen}
	})
}

// Update processes messages produced by the Model's own commands. All other
// messages pass through unchanged.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if settle, ok := msg.(settleMsg); ok {
		if settle.generation == m.generation {
			m = m.evaluate()
		}
	}
	return m, nil
}

// HandleKey processes a key event. handled reports whether the event was
// consumed; the host must run its default handling only when it is false.
// A closed popup never consumes keys.
func (m Model) HandleKey(msg tea.KeyMsg) (_ Model, handled bool) {
	if !m.state.Open {
		return m, false
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Dismiss):
		return m.close("dismissed"), true
	case key.Matches(msg, km.Next):
		m.state.Selected = (m.state.Selected + 1) % len(m.state.Candidates)
		return m, true
	case key.Matches(msg, km.Prev):
		m.state.Selected = (m.state.Selected - 1 + len(m.state.Candidates)) % len(m.state.Candidates)
		return m, true
	case key.Matches(msg, km.Accept), km.AcceptTab && msg.Type == tea.KeyTab:
		return m.AcceptAt(m.state.Selected), true
	}
	return m, false
}

// PointerDown reports a pointer press at viewport cell (x, y). A press
// outside the open popup closes it; a press on a candidate row accepts that
// candidate.
func (m Model) PointerDown(x, y int) Model {
	if !m.state.Open {
		return m
	}
	p := m.state.Position
	if x < p.X || x >= p.X+m.state.Width || y < p.Y || y >= p.Y+m.state.Height {
		return m.close("pointer outside")
	}
	return m.AcceptAt(y - p.Y)
}

// evaluate runs detection against the latest text snapshot and opens,
// refreshes, or closes the popup accordingly.
func (m Model) evaluate() Model {
	match, ok := trigger.Detect(m.text, m.cursor)
	if !ok {
		return m.close("no trigger")
	}

	candidates := m.resolver.Resolve(match, m.text)
	if len(candidates) == 0 {
		return m.close("no candidates")
	}

	anchor, ok := m.geometry.PointForOffset(m.text, match.ReplacementStart)
	if !ok {
		// Detached or off-screen surface: leave all state untouched.
		m.cfg.Logger.V(1).Info("surface unavailable, skipping popup", "kind", match.Definition.Kind.String())
		return m
	}

	width := popupWidth(candidates, m.cfg.MaxWidth)
	height := len(candidates)

	metrics, _ := m.cfg.Surface.Metrics()
	m.state = PopupState{
		Open:             true,
		Candidates:       candidates,
		Selected:         0,
		Position:         caret.PlacePopup(anchor, width, height, metrics),
		Width:            width,
		Height:           height,
		Kind:             match.Definition.Kind,
		ReplacementStart: match.ReplacementStart,
		Query:            match.Query,
	}
	m.cfg.Logger.V(1).Info("popup opened",
		"kind", match.Definition.Kind.String(),
		"query", match.Query,
		"candidates", len(candidates))
	return m
}

// close resets to the canonical closed state. Closing an already-closed
// popup is a no-op.
func (m Model) close(reason string) Model {
	if !m.state.Open {
		return m
	}
	m.cfg.Logger.V(1).Info("popup closed", "reason", reason)
	m.state = PopupState{}
	return m
}
