package sentry

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_PassthroughToInner(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, LevelError)

	msg := []byte("test error message\n")
	n, err := w.Write(msg)

	assert.NoError(t, err)
	assert.Equal(t, len(msg), n)
	assert.Equal(t, string(msg), buf.String())
}

func TestWriter_DisabledPassthrough(t *testing.T) {
	enabled = false
	var buf bytes.Buffer
	w := NewWriter(&buf, LevelError)

	msg := []byte("test message\n")
	n, err := w.Write(msg)

	assert.NoError(t, err)
	assert.Equal(t, len(msg), n)
	assert.Equal(t, string(msg), buf.String())
}

func TestWriter_AllLevelsPassThrough(t *testing.T) {
	enabled = false
	for _, lvl := range []Level{LevelInfo, LevelWarning, LevelError} {
		var buf bytes.Buffer
		w := NewWriter(&buf, lvl)
		_, err := w.Write([]byte("   \n"))
		assert.NoError(t, err)
		assert.Equal(t, "   \n", buf.String())
	}
}
