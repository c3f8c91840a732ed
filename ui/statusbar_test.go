package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusBar_Baseline(t *testing.T) {
	sb := NewStatusBar(nil)
	sb.SetSize(80)
	sb.SetData(StatusBarData{Active: "Search"})

	result := sb.String()
	assert.Contains(t, result, "capsule")
	assert.Contains(t, result, "Search")
	assert.NotContains(t, result, "→")
	// Should be exactly 1 line (no newlines in output)
	assert.Equal(t, 0, strings.Count(result, "\n"))
	assert.Equal(t, 80, lipgloss.Width(result))
}

func TestStatusBar_DragPreview(t *testing.T) {
	sb := NewStatusBar(nil)
	sb.SetSize(80)
	sb.SetData(StatusBarData{Active: "Search", Preview: "Notifications"})
	assert.Contains(t, sb.String(), "→ Notifications")

	// A preview that matches the committed tab is redundant.
	sb.SetData(StatusBarData{Active: "Search", Preview: "Search"})
	assert.NotContains(t, sb.String(), "→")
}

func TestStatusBar_HintRightAligned(t *testing.T) {
	sb := NewStatusBar(nil)
	sb.SetSize(60)
	sb.SetData(StatusBarData{Active: "Home", Hint: "? help"})

	result := sb.String()
	assert.True(t, strings.HasSuffix(strings.TrimRight(result, " "), "? help"))
}

func TestStatusBar_TooNarrow(t *testing.T) {
	sb := NewStatusBar(nil)
	sb.SetSize(5)
	assert.Empty(t, sb.String())
}
