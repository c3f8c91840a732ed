package ui

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/capsule/ui/tabbar"
)

// Rosé Pine Moon palette
// https://rosepinetheme.com/palette/
var (
	// Base tones
	ColorBase    = lipgloss.Color("#232136")
	ColorSurface = lipgloss.Color("#2a273f")
	ColorOverlay = lipgloss.Color("#393552")
	ColorMuted   = lipgloss.Color("#6e6a86")
	ColorSubtle  = lipgloss.Color("#908caa")
	ColorText    = lipgloss.Color("#e0def4")

	ColorPine = lipgloss.Color("#3e8fb0") // default accent
	ColorIris = lipgloss.Color("#c4a7e7") // app name
)

// DefaultAccent is the highlight color when none is configured.
const DefaultAccent = "#3e8fb0"

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseAccent validates a "#rgb" or "#rrggbb" accent color.
func ParseAccent(s string) (lipgloss.Color, error) {
	if !hexColor.MatchString(s) {
		return "", fmt.Errorf("invalid accent color %q: want #rgb or #rrggbb", s)
	}
	return lipgloss.Color(s), nil
}

// BarPalette returns the tab bar colors for the given accent.
func BarPalette(accent lipgloss.Color) tabbar.Palette {
	return tabbar.Palette{
		Accent: accent,
		Text:   ColorText,
		Muted:  ColorOverlay,
		Base:   ColorBase,
	}
}
