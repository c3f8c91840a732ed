package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// TOMLFileName is the optional overlay read after config.json.
const TOMLFileName = "config.toml"

// TOMLConfig is the shape of config.toml. Every field is optional; only set
// fields override config.json.
type TOMLConfig struct {
	UI        TOMLUI        `toml:"ui"`
	Telemetry TOMLTelemetry `toml:"telemetry"`
}

// TOMLUI holds the [ui] table.
type TOMLUI struct {
	Accent     string `toml:"accent,omitempty"`
	Animate    *bool  `toml:"animate,omitempty"`
	FPS        int    `toml:"fps,omitempty"`
	Labels     *bool  `toml:"labels,omitempty"`
	ASCIIIcons *bool  `toml:"ascii_icons,omitempty"`
}

// TOMLTelemetry holds the [telemetry] table.
type TOMLTelemetry struct {
	Enabled *bool  `toml:"enabled,omitempty"`
	DSN     string `toml:"dsn,omitempty"`
}

// LoadTOMLConfigFrom parses the TOML file at path. A missing file is reported
// with an error satisfying os.IsNotExist.
func LoadTOMLConfigFrom(path string) (*TOMLConfig, error) {
	var tc TOMLConfig
	if _, err := toml.DecodeFile(path, &tc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &tc, nil
}

// SaveTOMLConfigTo writes tc to path, creating the directory if needed.
func SaveTOMLConfigTo(tc *TOMLConfig, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(tc); err != nil {
		return fmt.Errorf("failed to encode TOML config: %w", err)
	}
	return nil
}

// Apply overlays every field set in tc onto c.
func (tc *TOMLConfig) Apply(c *Config) {
	if tc.UI.Accent != "" {
		c.AccentColor = tc.UI.Accent
	}
	if tc.UI.Animate != nil {
		c.Animate = tc.UI.Animate
	}
	if tc.UI.FPS != 0 {
		c.FPS = tc.UI.FPS
	}
	if tc.UI.Labels != nil {
		c.ShowLabels = *tc.UI.Labels
	}
	if tc.UI.ASCIIIcons != nil {
		c.ASCIIIcons = *tc.UI.ASCIIIcons
	}
	if tc.Telemetry.Enabled != nil {
		c.TelemetryEnabled = tc.Telemetry.Enabled
	}
	if tc.Telemetry.DSN != "" {
		c.SentryDSN = tc.Telemetry.DSN
	}
}
