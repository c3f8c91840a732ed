package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kastheco/capsule/app"
	"github.com/kastheco/capsule/config"
	sentrypkg "github.com/kastheco/capsule/internal/sentry"
	"github.com/kastheco/capsule/log"
	"github.com/kastheco/capsule/ui"
	"github.com/spf13/cobra"
)

var (
	version       = "0.1.0"
	accentFlag    string
	noAnimateFlag bool
	labelsFlag    bool
	asciiFlag     bool
	debugLogFlag  bool
	rootCmd       = &cobra.Command{
		Use:   "capsule",
		Short: "capsule - a floating tab bar you can click or drag between tabs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg := config.LoadConfig()
			if err := applyFlags(cfg); err != nil {
				return err
			}

			if err := sentrypkg.Init(version, sentrypkg.ResolveDSN(cfg.SentryDSN), cfg.IsTelemetryEnabled()); err != nil {
				// Non-fatal: sentry failure should not prevent startup
				fmt.Fprintf(os.Stderr, "sentry disabled: %v\n", err)
			}
			defer sentrypkg.Flush()
			defer sentrypkg.RecoverPanic()

			log.Initialize(cfg.Debug)
			defer log.Close()

			sentrypkg.SetContext(cfg.AccentColor, cfg.IsAnimationEnabled(), cfg.ShowLabels)

			return app.Run(ctx, cfg)
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config and log paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Fprintf(out, "TOML overlay: %s\n", filepath.Join(configDir, config.TOMLFileName))
			fmt.Fprintf(out, "Log: %s\n", log.Path())

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of capsule",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "capsule version %s\n", version)
		},
	}
)

// applyFlags overrides cfg with any flags set on the command line.
func applyFlags(cfg *config.Config) error {
	if accentFlag != "" {
		if _, err := ui.ParseAccent(accentFlag); err != nil {
			return err
		}
		cfg.AccentColor = accentFlag
	}
	if noAnimateFlag {
		off := false
		cfg.Animate = &off
	}
	if labelsFlag {
		cfg.ShowLabels = true
	}
	if asciiFlag {
		cfg.ASCIIIcons = true
	}
	if debugLogFlag {
		cfg.Debug = true
	}
	return nil
}

func init() {
	rootCmd.Flags().StringVar(&accentFlag, "accent", "", "Highlight color as #rgb or #rrggbb")
	rootCmd.Flags().BoolVar(&noAnimateFlag, "no-animate", false, "Move the highlight without animating")
	rootCmd.Flags().BoolVar(&labelsFlag, "labels", false, "Show tab labels next to the icons when they fit")
	rootCmd.Flags().BoolVar(&asciiFlag, "ascii", false, "Use plain characters instead of Nerd Font icons")
	rootCmd.Flags().BoolVar(&debugLogFlag, "debug-log", false, "Write debug level messages to the log file")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
