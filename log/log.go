// Package log provides the process-wide loggers. Call sites use the
// standard-library shape (log.ErrorLog.Printf) while output is formatted by
// charmbracelet/log and forwarded to sentry when telemetry is on.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"sync"

	charmlog "github.com/charmbracelet/log"
	"github.com/kastheco/capsule/internal/sentry"
)

// FileName is the log file created under the OS temp directory.
const FileName = "capsule.log"

var (
	WarningLog = discard()
	InfoLog    = discard()
	ErrorLog   = discard()
)

var (
	mu      sync.Mutex
	logFile *os.File
)

func discard() *stdlog.Logger {
	return stdlog.New(io.Discard, "", 0)
}

// Path returns where Initialize writes the log.
func Path() string {
	return filepath.Join(os.TempDir(), FileName)
}

// Initialize opens the log file and points every logger at it. When the
// file cannot be opened the loggers fall back to stderr.
func Initialize(debug bool) {
	mu.Lock()
	defer mu.Unlock()

	var out io.Writer
	f, err := os.OpenFile(Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
		out = os.Stderr
	} else {
		logFile = f
		out = f
	}
	setOutput(out, debug)
}

// SetOutput points every logger at w. Tests use it to capture log lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	setOutput(w, true)
}

func setOutput(w io.Writer, debug bool) {
	level := charmlog.InfoLevel
	if debug {
		level = charmlog.DebugLevel
	}
	build := func(sl sentry.Level, forced charmlog.Level) *stdlog.Logger {
		l := charmlog.NewWithOptions(sentry.NewWriter(w, sl), charmlog.Options{
			ReportTimestamp: true,
			Prefix:          "capsule",
			Level:           level,
		})
		return l.StandardLog(charmlog.StandardLogOptions{ForceLevel: forced})
	}
	InfoLog = build(sentry.LevelInfo, charmlog.InfoLevel)
	WarningLog = build(sentry.LevelWarning, charmlog.WarnLevel)
	ErrorLog = build(sentry.LevelError, charmlog.ErrorLevel)
}

// Close flushes and closes the log file, and restores the discard loggers.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	InfoLog, WarningLog, ErrorLog = discard(), discard(), discard()
}
