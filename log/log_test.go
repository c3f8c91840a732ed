package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggers_DiscardBeforeInitialize(t *testing.T) {
	require.NotNil(t, InfoLog)
	require.NotNil(t, WarningLog)
	require.NotNil(t, ErrorLog)
	// Must not panic.
	InfoLog.Printf("dropped %d", 1)
}

func TestSetOutput_WritesLevelledLines(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(Close)

	InfoLog.Printf("bar laid out at %d", 80)
	WarningLog.Printf("config missing")
	ErrorLog.Printf("boom: %v", "disk")

	out := buf.String()
	assert.Contains(t, out, "bar laid out at 80")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "ERRO")
	assert.Contains(t, out, "boom: disk")
	assert.Contains(t, out, "capsule")
}

func TestInitialize_CreatesLogFile(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	Initialize(false)
	InfoLog.Printf("hello file")
	Close()

	data, err := os.ReadFile(Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}
