package sentry

import (
	"io"
	"strings"

	gosentry "github.com/getsentry/sentry-go"
)

// Level represents the severity level for the sentry writer.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

var breadcrumbLevels = map[Level]gosentry.Level{
	LevelInfo:    gosentry.LevelInfo,
	LevelWarning: gosentry.LevelWarning,
}

// Writer tees log output to inner and forwards each line to Sentry. Errors
// become events; warnings and info become breadcrumbs on the next event.
type Writer struct {
	inner io.Writer
	level Level
}

// NewWriter creates a Writer that tees to inner and forwards to Sentry.
func NewWriter(inner io.Writer, level Level) *Writer {
	return &Writer{inner: inner, level: level}
}

func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.inner.Write(p)
	if !enabled {
		return n, err
	}

	msg := strings.TrimSpace(string(p))
	if msg == "" {
		return n, err
	}

	if w.level == LevelError {
		gosentry.CaptureMessage(msg)
		return n, err
	}
	gosentry.AddBreadcrumb(&gosentry.Breadcrumb{
		Level:    breadcrumbLevels[w.level],
		Category: "log",
		Message:  msg,
	})
	return n, err
}
