package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kastheco/capsule/log"
	"github.com/kastheco/capsule/ui"
)

const (
	ConfigFileName = "config.json"
	defaultFPS     = 60
	maxFPS         = 240
)

// DirEnv overrides the configuration directory.
const DirEnv = "CAPSULE_CONFIG_DIR"

// GetConfigDir returns the path to the application's configuration directory.
// Uses XDG-compliant ~/.config/capsule/ unless CAPSULE_CONFIG_DIR is set.
func GetConfigDir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "capsule"), nil
}

// Config represents the application configuration
type Config struct {
	// AccentColor is the highlight color, "#rgb" or "#rrggbb".
	AccentColor string `json:"accent_color"`
	// Animate controls the sliding highlight. Defaults to true when not set.
	Animate *bool `json:"animate,omitempty"`
	// FPS is the highlight animation frame rate.
	FPS int `json:"fps"`
	// ShowLabels renders each tab's label next to its icon when it fits.
	ShowLabels bool `json:"show_labels,omitempty"`
	// ASCIIIcons swaps Nerd Font glyphs for plain characters.
	ASCIIIcons bool `json:"ascii_icons,omitempty"`
	// Debug raises the log level.
	Debug bool `json:"debug,omitempty"`
	// TelemetryEnabled controls whether crash reporting via Sentry is active.
	// Defaults to true when not set; nothing is sent without a DSN.
	TelemetryEnabled *bool `json:"telemetry_enabled,omitempty"`
	// SentryDSN is where crash reports go. Falls back to CAPSULE_SENTRY_DSN.
	SentryDSN string `json:"sentry_dsn,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	trueVal := true
	return &Config{
		AccentColor: ui.DefaultAccent,
		Animate:     &trueVal,
		FPS:         defaultFPS,
	}
}

// IsAnimationEnabled returns whether the highlight slides between tabs.
func (c *Config) IsAnimationEnabled() bool {
	if c.Animate == nil {
		return true
	}
	return *c.Animate
}

// IsTelemetryEnabled returns whether Sentry telemetry is enabled.
// Defaults to true when the field is not set.
func (c *Config) IsTelemetryEnabled() bool {
	if c.TelemetryEnabled == nil {
		return true
	}
	return *c.TelemetryEnabled
}

// Validate replaces invalid values with defaults and returns the problems it
// fixed. A bad config never keeps the bar from starting.
func (c *Config) Validate() []error {
	var problems []error
	if _, err := ui.ParseAccent(c.AccentColor); err != nil {
		problems = append(problems, err)
		c.AccentColor = ui.DefaultAccent
	}
	if c.FPS <= 0 || c.FPS > maxFPS {
		problems = append(problems, fmt.Errorf("fps %d out of range 1-%d", c.FPS, maxFPS))
		c.FPS = defaultFPS
	}
	return problems
}

// LoadConfig loads the config from the default directory.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}
	return LoadConfigFrom(configDir)
}

// LoadConfigFrom loads config.json from configDir, creating it with defaults
// when missing, then overlays config.toml if present.
func LoadConfigFrom(configDir string) *Config {
	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfigTo(defaultCfg, configDir); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return applyTOML(defaultCfg, configDir)
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig()
	}

	return applyTOML(config, configDir)
}

// applyTOML overlays config.toml (TOML wins over JSON) and validates.
func applyTOML(config *Config, configDir string) *Config {
	tomlResult, tomlErr := LoadTOMLConfigFrom(filepath.Join(configDir, TOMLFileName))
	switch {
	case tomlErr != nil && !os.IsNotExist(tomlErr):
		log.WarningLog.Printf("failed to load TOML config: %v", tomlErr)
	case tomlResult != nil:
		tomlResult.Apply(config)
	}

	for _, problem := range config.Validate() {
		log.WarningLog.Printf("config: %v", problem)
	}
	return config
}

func saveConfigTo(config *Config, configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig writes config.json into the default directory.
func SaveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	return saveConfigTo(config, configDir)
}
