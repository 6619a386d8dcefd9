package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/accountcli/internal/client/form"
)

// Styles holds the lipgloss styles for user-facing output.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Header  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // green
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // red
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // gray
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")), // purple
	}
}

// RenderStatus formats a banner: green check for success, red cross for
// errors.
func (s Styles) RenderStatus(st *form.Status) string {
	if st == nil {
		return ""
	}
	if st.Kind == form.StatusSuccess {
		return s.Success.Render("✓ " + st.Message)
	}
	return s.Error.Render("✗ " + st.Message)
}
