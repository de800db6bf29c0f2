package main

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"

	"github.com/minxiang0101/markdown/autocomplete"
	"github.com/minxiang0101/markdown/caret"
	"github.com/minxiang0101/markdown/document"
)

const footerHeight = 2

type appConfig struct {
	text        string
	maxItems    int
	settleDelay time.Duration
	maxWidth    int
	logger      logr.Logger
}

// hostBuffer is the mutable document shared with the autocomplete callbacks.
type hostBuffer struct {
	text   string
	cursor int
}

// editorSurface reports the text region's live metrics to the caret
// resolver. It stays detached until the first window size arrives.
type editorSurface struct {
	width    int
	height   int
	yOffset  int
	attached bool
}

func (s *editorSurface) Metrics() (caret.Metrics, bool) {
	if !s.attached || s.width <= 0 || s.height <= 0 {
		return caret.Metrics{}, false
	}
	return caret.Metrics{
		Width:   s.width,
		Height:  s.height,
		YOffset: s.yOffset,
	}, true
}

type app struct {
	buf     *hostBuffer
	surface *editorSurface

	viewport viewport.Model
	ac       autocomplete.Model

	styles appStyles
}

type appStyles struct {
	cursor lipgloss.Style
	footer lipgloss.Style
}

func newApp(cfg appConfig) *app {
	buf := &hostBuffer{text: cfg.text, cursor: document.RuneLen(cfg.text)}
	surface := &editorSurface{}

	ac := autocomplete.New(autocomplete.Config{
		Surface:       surface,
		OnApplyText:   func(s string) { buf.text = s },
		OnPlaceCursor: func(off int) { buf.cursor = off },
		MaxItems:      cfg.maxItems,
		SettleDelay:   cfg.settleDelay,
		MaxWidth:      cfg.maxWidth,
		Logger:        cfg.logger,
	})

	return &app{
		buf:      buf,
		surface:  surface,
		viewport: viewport.New(0, 0),
		ac:       ac,
		styles: appStyles{
			cursor: lipgloss.NewStyle().Reverse(true),
			footer: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

func (a *app) Init() tea.Cmd { return nil }

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - footerHeight
		a.surface.width = a.viewport.Width
		a.surface.height = a.viewport.Height
		a.surface.attached = a.viewport.Width > 0 && a.viewport.Height > 0
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			a.ac = a.ac.PointerDown(msg.X, msg.Y)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.ac, cmd = a.ac.Update(msg)
	return a, cmd
}

func (a *app) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+q" {
		return a, tea.Quit
	}

	// The popup sees navigation and acceptance keys first; its callbacks
	// may rewrite the shared buffer.
	var handled bool
	a.ac, handled = a.ac.HandleKey(msg)
	if handled {
		return a, a.notifyChange()
	}

	switch msg.String() {
	case "left":
		a.buf.cursor = document.ClampOffset(a.buf.text, a.buf.cursor-1)
	case "right":
		a.buf.cursor = document.ClampOffset(a.buf.text, a.buf.cursor+1)
	case "up":
		a.moveRow(-1)
	case "down":
		a.moveRow(1)
	case "home":
		a.buf.cursor = document.LineStart(a.buf.text, a.buf.cursor)
	case "end":
		a.buf.cursor = document.LineStart(a.buf.text, a.buf.cursor) +
			document.RuneLen(document.Line(a.buf.text, a.buf.cursor))
	case "backspace":
		if a.buf.cursor > 0 {
			a.buf.text = document.Splice(a.buf.text, a.buf.cursor-1, a.buf.cursor, "")
			a.buf.cursor--
		}
	case "delete":
		a.buf.text = document.Splice(a.buf.text, a.buf.cursor, a.buf.cursor+1, "")
	case "enter":
		a.insert("\n")
	case "tab":
		a.insert("\t")
	case "ctrl+v":
		if s, err := clipboard.ReadAll(); err == nil && s != "" {
			a.insert(s)
		}
	default:
		if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0 {
			a.insert(string(msg.Runes))
		} else {
			return a, nil
		}
	}

	return a, a.notifyChange()
}

func (a *app) insert(s string) {
	a.buf.text = document.Splice(a.buf.text, a.buf.cursor, a.buf.cursor, s)
	a.buf.cursor += document.RuneLen(s)
}

func (a *app) moveRow(delta int) {
	pos := document.PosForOffset(a.buf.text, a.buf.cursor)
	pos.Row += delta
	if pos.Row < 0 {
		pos.Row = 0
	}
	a.buf.cursor = document.OffsetForPos(a.buf.text, pos)
}

// notifyChange feeds the new buffer snapshot to the autocomplete core and
// keeps the cursor row scrolled into view.
func (a *app) notifyChange() tea.Cmd {
	a.followCursor()
	var cmd tea.Cmd
	a.ac, cmd = a.ac.TextChanged(a.buf.text, a.buf.cursor)
	return cmd
}

func (a *app) followCursor() {
	if a.viewport.Height <= 0 {
		return
	}
	row := document.PosForOffset(a.buf.text, a.buf.cursor).Row
	if row < a.viewport.YOffset {
		a.viewport.SetYOffset(row)
	}
	if row >= a.viewport.YOffset+a.viewport.Height {
		a.viewport.SetYOffset(row - a.viewport.Height + 1)
	}
	a.surface.yOffset = a.viewport.YOffset
}

func (a *app) View() string {
	a.viewport.SetContent(a.renderText())
	base := a.viewport.View()
	view := a.ac.View(base)

	hint := "↑↓ navigate · enter/tab accept · esc dismiss"
	if !a.ac.State().Open {
		hint = "type #, :, ```, [ or ! to trigger suggestions · ctrl+q quit"
	}
	return view + "\n" + a.styles.footer.Render(hint) + "\n"
}

// renderText draws the document with a reverse-video cursor cell.
func (a *app) renderText() string {
	pos := document.PosForOffset(a.buf.text, a.buf.cursor)
	lines := document.Lines(a.buf.text)

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if i != pos.Row {
			sb.WriteString(line)
			continue
		}
		runes := []rune(line)
		col := pos.Col
		if col > len(runes) {
			col = len(runes)
		}
		sb.WriteString(string(runes[:col]))
		if col < len(runes) {
			sb.WriteString(a.styles.cursor.Render(string(runes[col])))
			sb.WriteString(string(runes[col+1:]))
		} else {
			sb.WriteString(a.styles.cursor.Render(" "))
		}
	}
	return sb.String()
}
