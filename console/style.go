package console

import "github.com/charmbracelet/lipgloss"

// Style controls the console's rendering.
type Style struct {
	Prompt lipgloss.Style
	Text   lipgloss.Style
	Cursor lipgloss.Style

	// Scrollback renders submitted lines; Status renders the status line.
	Scrollback lipgloss.Style
	Status     lipgloss.Style
}

// DefaultStyle returns the default palette on lipgloss's default renderer.
func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer())
}

// NewStyle returns the default palette bound to r.
func NewStyle(r *lipgloss.Renderer) Style {
	dim := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Prompt:     r.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Text:       r.NewStyle(),
		Cursor:     r.NewStyle().Reverse(true),
		Scrollback: dim,
		Status:     dim,
	}
}
