package sentry

import (
	"os"
	"runtime"
	"time"

	gosentry "github.com/getsentry/sentry-go"
)

// DSNEnv names the environment variable that supplies a DSN when the config
// file does not.
const DSNEnv = "CAPSULE_SENTRY_DSN"

// enabled tracks whether sentry was successfully initialized.
var enabled bool

// ResolveDSN prefers the configured DSN and falls back to the environment.
func ResolveDSN(configured string) string {
	if configured != "" {
		return configured
	}
	return os.Getenv(DSNEnv)
}

// Init initializes the Sentry SDK. When telemetryEnabled is false or dsn is
// empty, it no-ops silently and every other function in this package becomes
// a no-op too.
func Init(version, dsn string, telemetryEnabled bool) error {
	if !telemetryEnabled || dsn == "" {
		enabled = false
		return nil
	}

	err := gosentry.Init(gosentry.ClientOptions{
		Dsn:              dsn,
		Release:          "capsule@" + version,
		AttachStacktrace: true,
		SampleRate:       1.0,
	})
	if err != nil {
		return err
	}

	gosentry.ConfigureScope(func(scope *gosentry.Scope) {
		scope.SetTag("os", runtime.GOOS)
		scope.SetTag("arch", runtime.GOARCH)
		scope.SetTag("go_version", runtime.Version())
		scope.SetTag("version", version)
	})

	enabled = true
	return nil
}

// IsEnabled returns whether sentry is active.
func IsEnabled() bool {
	return enabled
}

// Flush waits up to 2 seconds for buffered events to be sent.
func Flush() {
	if !enabled {
		return
	}
	gosentry.Flush(2 * time.Second)
}

// RecoverPanic captures a panic to Sentry, flushes, then re-panics.
// Usage: defer sentry.RecoverPanic()
func RecoverPanic() {
	if !enabled {
		return
	}
	if err := recover(); err != nil {
		gosentry.CurrentHub().Recover(err)
		gosentry.Flush(2 * time.Second)
		panic(err)
	}
}

// SetContext tags events with the UI options the session started with.
func SetContext(accent string, animate, labels bool) {
	if !enabled {
		return
	}
	gosentry.ConfigureScope(func(scope *gosentry.Scope) {
		scope.SetTag("animate", boolStr(animate))
		scope.SetContext("ui", map[string]interface{}{
			"accent":  accent,
			"animate": animate,
			"labels":  labels,
		})
	})
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
