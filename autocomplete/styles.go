package autocomplete

import "github.com/charmbracelet/lipgloss"

// Styles controls popup rendering.
type Styles struct {
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Description lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Item:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		Selected:    lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("231")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
