package tui

import "github.com/charmbracelet/lipgloss"

var (
	mutedColor = lipgloss.AdaptiveColor{Light: "245", Dark: "245"}
	errorColor = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	accent     = lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"}

	spinnerStyle = lipgloss.NewStyle().Foreground(accent)
	hintStyle    = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
)

// style rebinds a package style to the model's renderer so forced colour
// profiles apply to the chrome as well.
func (m Model) style(s lipgloss.Style) lipgloss.Style {
	if m.lg == nil {
		return s
	}
	return m.lg.NewStyle().Inherit(s)
}
