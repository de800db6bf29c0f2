package autocomplete

import (
	"strings"
	"testing"

	"github.com/minxiang0101/markdown/suggest"
)

func baseView() string {
	rows := make([]string, 24)
	for i := range rows {
		rows[i] = strings.Repeat(".", 80)
	}
	return strings.Join(rows, "\n")
}

func TestView_ClosedReturnsBaseUnchanged(t *testing.T) {
	m := New((&hostRecorder{}).config(attachedSurface()))
	base := baseView()
	if got := m.View(base); got != base {
		t.Fatalf("closed popup must not alter the base view")
	}
}

func TestView_OpenCompositesPopup(t *testing.T) {
	m := New((&hostRecorder{}).config(attachedSurface()))
	m = openOn(t, m, "#", 1)

	base := baseView()
	got := m.View(base)
	if got == base {
		t.Fatalf("open popup must composite over the base view")
	}
	if !strings.Contains(got, "Heading 1") {
		t.Fatalf("popup must render candidate labels")
	}
}

func TestPopupWidth(t *testing.T) {
	candidates := []suggest.Candidate{
		{Label: "short"},
		{Label: "a much longer label", Description: "with description"},
	}
	w := popupWidth(candidates, 40)
	if w != len("a much longer label")+2+len("with description") {
		t.Fatalf("popup width: got %d", w)
	}

	if got := popupWidth(candidates, 10); got != 10 {
		t.Fatalf("width cap: got %d", got)
	}

	if got := popupWidth(nil, 40); got != 1 {
		t.Fatalf("empty width floor: got %d", got)
	}
}

func TestSanitizeRowText(t *testing.T) {
	if got := sanitizeRowText("a\nb\tc"); got != "a b c" {
		t.Fatalf("sanitize: got %q", got)
	}
	if got := sanitizeRowText("x\x01y"); got != "xy" {
		t.Fatalf("control strip: got %q", got)
	}
}
