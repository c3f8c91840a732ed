package sentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit_Disabled(t *testing.T) {
	err := Init("1.0.0", "https://key@example.invalid/1", false)
	assert.NoError(t, err)
	assert.False(t, IsEnabled())
	// Flush and SetContext should be safe no-ops
	Flush()
	SetContext("#3e8fb0", true, false)
}

func TestInit_EmptyDSN(t *testing.T) {
	err := Init("1.0.0", "", true)
	assert.NoError(t, err)
	assert.False(t, IsEnabled())
	Flush()
}

func TestIsEnabled(t *testing.T) {
	enabled = false
	assert.False(t, IsEnabled())
	enabled = true
	assert.True(t, IsEnabled())
	enabled = false // reset
}

func TestResolveDSN(t *testing.T) {
	t.Setenv(DSNEnv, "https://env@example.invalid/2")
	assert.Equal(t, "https://cfg@example.invalid/1", ResolveDSN("https://cfg@example.invalid/1"))
	assert.Equal(t, "https://env@example.invalid/2", ResolveDSN(""))
}

func TestRecoverPanic_DisabledIsNoop(t *testing.T) {
	enabled = false
	assert.NotPanics(t, func() {
		defer RecoverPanic()
	})
}
