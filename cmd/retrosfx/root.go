// Package main provides the CLI entrypoint for retrosfx, the runtime
// control tool for the retrosfxd sound daemon.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/retrosfx/retrosfx/internal/config"
	"github.com/retrosfx/retrosfx/internal/state"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	globalOpts struct {
		verbose  bool
		confPath string
		runDir   string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "retrosfx",
	Short: "Control the retro sound-effects daemon",
	Long: `retrosfx is the runtime control tool for retrosfxd.

It toggles the daemon on and off, switches sound profiles, selects the
output backend, configures quiet hours and tunes per-profile behavior.
The daemon picks every change up on its next tick; no restart is needed.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to showing status, matching the daemon's own idea of
		// "what is going on right now".
		return runStatus(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.confPath, "conf", config.DefaultPath,
		"Path to the config file")
	rootCmd.PersistentFlags().StringVar(&globalOpts.runDir, "rundir", state.DefaultRunDir,
		"Runtime state directory")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
