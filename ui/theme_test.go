package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccent(t *testing.T) {
	for _, ok := range []string{"#3e8fb0", "#FFF", "#a1B2c3"} {
		c, err := ParseAccent(ok)
		require.NoError(t, err, ok)
		assert.Equal(t, lipgloss.Color(ok), c)
	}
	for _, bad := range []string{"", "3e8fb0", "#12", "#zzzzzz", "blue"} {
		_, err := ParseAccent(bad)
		assert.Error(t, err, bad)
	}
}

func TestBarPalette_UsesAccent(t *testing.T) {
	p := BarPalette(lipgloss.Color("#ff0000"))
	assert.Equal(t, lipgloss.Color("#ff0000"), p.Accent)
	assert.Equal(t, ColorBase, p.Base)
}
