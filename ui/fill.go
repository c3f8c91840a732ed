package ui

import "strings"

// FitHeight pads s with blank lines, or clips it, so it is exactly height
// lines tall. bubbletea's alt-screen renderer otherwise leaves stale rows
// behind when the view shrinks.
func FitHeight(s string, height int) string {
	if height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// OverlayBottom lays fg over the last lines of bg. Whole lines are replaced,
// so the floating bar never splices escape sequences into page content.
func OverlayBottom(bg, fg string) string {
	if fg == "" {
		return bg
	}
	base := strings.Split(bg, "\n")
	top := strings.Split(fg, "\n")
	if len(top) >= len(base) {
		return fg
	}
	copy(base[len(base)-len(top):], top)
	return strings.Join(base, "\n")
}
