package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// StatusBarData holds the contextual information displayed in the status bar.
type StatusBarData struct {
	Active  string // label of the committed tab
	Preview string // label of the tab under the pointer mid-drag, or empty
	Hint    string // right-aligned key hint, e.g. "? help"
}

// StatusBar is the top status bar component.
type StatusBar struct {
	width int
	data  StatusBarData
	zones *zone.Manager
}

// NewStatusBar creates a new StatusBar. zones may be nil.
func NewStatusBar(zones *zone.Manager) *StatusBar {
	return &StatusBar{zones: zones}
}

// SetSize sets the terminal width for the status bar.
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetData updates the status bar content.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

var statusBarStyle = lipgloss.NewStyle().
	Background(ColorSurface).
	Foreground(ColorText).
	Padding(0, 1)

var statusBarAppNameStyle = lipgloss.NewStyle().
	Foreground(ColorIris).
	Background(ColorSurface).
	Bold(true)

var statusBarSepStyle = lipgloss.NewStyle().
	Foreground(ColorOverlay).
	Background(ColorSurface)

var statusBarTabStyle = lipgloss.NewStyle().
	Foreground(ColorText).
	Background(ColorSurface)

var statusBarPreviewStyle = lipgloss.NewStyle().
	Foreground(ColorPine).
	Background(ColorSurface)

var statusBarHintStyle = lipgloss.NewStyle().
	Foreground(ColorSubtle).
	Background(ColorSurface)

const statusBarSep = " │ "

func (s *StatusBar) String() string {
	if s.width < 10 {
		return ""
	}

	parts := make([]string, 0, 3)
	parts = append(parts, statusBarAppNameStyle.Render("capsule"))

	if s.data.Active != "" {
		parts = append(parts, statusBarTabStyle.Render(s.data.Active))
	}

	// Only worth showing while it differs from what is already committed.
	if s.data.Preview != "" && s.data.Preview != s.data.Active {
		parts = append(parts, statusBarPreviewStyle.Render("→ "+s.data.Preview))
	}

	sep := statusBarSepStyle.Render(statusBarSep)
	left := strings.Join(parts, sep)

	inner := s.width - statusBarStyle.GetHorizontalFrameSize()
	content := left
	if s.data.Hint != "" {
		hint := statusBarHintStyle.Render(s.data.Hint)
		if s.zones != nil {
			hint = s.zones.Mark(ZoneHelp, hint)
		}
		gap := inner - lipgloss.Width(left) - lipgloss.Width(hint)
		if gap > 0 {
			content = left + statusBarSepStyle.Render(strings.Repeat(" ", gap)) + hint
		}
	}

	return statusBarStyle.Width(s.width).MaxHeight(1).Render(content)
}
