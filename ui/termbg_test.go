package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetTerminalBackground_EmitsOSC11(t *testing.T) {
	var buf bytes.Buffer
	restore := setTermBg(&buf, string(ColorBase))
	assert.Equal(t, "\033]11;#232136\033\\", buf.String())

	buf.Reset()
	restore()
	assert.Equal(t, "\033]111\033\\", buf.String())
}

func TestSetTerminalBackground_EmptyColor(t *testing.T) {
	var buf bytes.Buffer
	restore := setTermBg(&buf, "")
	assert.Zero(t, buf.Len())
	restore() // should not panic
}
