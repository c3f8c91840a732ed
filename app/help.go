package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/capsule/keys"
	"github.com/kastheco/capsule/ui"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorIris)
	descStyle  = lipgloss.NewStyle().Foreground(ui.ColorText)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorOverlay).
			Padding(1, 2)
)

// helpView renders the key bindings centered in the content area.
func (m *home) helpView(height int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("capsule"),
		"",
		descStyle.Render("click a tab to switch to it, or drag the highlight"),
		descStyle.Render("from the active tab and release over another one."),
		"",
		m.help.View(keys.KeyMap{}),
	)
	return lipgloss.Place(m.termWidth, height, lipgloss.Center, lipgloss.Center, boxStyle.Render(content))
}
