package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/retrosfx/retrosfx/internal/config"
	"github.com/retrosfx/retrosfx/internal/pattern"
	"github.com/retrosfx/retrosfx/internal/quiet"
	"github.com/retrosfx/retrosfx/internal/state"
)

var statusOpts struct {
	follow bool
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status",
	Long: `Show the daemon's current runtime state and configuration.

With --follow, the config file and runtime state directory are watched
and the status is re-printed whenever either changes.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVarP(&statusOpts.follow, "follow", "f", false,
		"Watch for changes and re-print status")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	printStatus()

	if !statusOpts.follow {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the parent directories: writers replace files, and a watch on
	// the file itself would be lost on the first rename.
	for _, dir := range []string{filepath.Dir(globalOpts.confPath), globalOpts.runDir} {
		if err := watcher.Add(dir); err != nil {
			logger.Warn("failed to watch directory", "dir", dir, "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) {
				fmt.Println()
				printStatus()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

func printStatus() {
	cfg := config.Load(globalOpts.confPath)
	st := state.Read(globalOpts.runDir)

	enabled := "0"
	if st.Enabled {
		enabled = "1"
	}
	quietOn := "0"
	if cfg.QuietEnabled {
		quietOn = "1"
	}
	limiter := "0"
	if cfg.Limiter.Enabled {
		limiter = "1"
	}

	fmt.Printf("enabled=%s profile=%s output=%s random_audio_percent=%d limiter=%s\n",
		enabled, st.Profile, cfg.OutputMode, cfg.RandomAudioPercent, limiter)
	fmt.Printf("quiet_enabled=%s quiet_start=%s quiet_end=%s\n",
		quietOn, quiet.FormatClock(cfg.QuietStart), quiet.FormatClock(cfg.QuietEnd))

	var parts []string
	for _, prof := range pattern.Profiles() {
		parts = append(parts,
			fmt.Sprintf("%s_variations=%s", prof, formatVariations(cfg.Profiles[prof].EnabledVariations)))
	}
	fmt.Println(strings.Join(parts, " "))

	sf := "0"
	if cfg.SoundFile.Enabled {
		sf = "1"
	}
	fmt.Printf("soundfile_enabled=%s soundfile_dir=%s\n", sf, cfg.SoundFile.Dir)

	if info, err := os.Stat(state.ProfilePath(globalOpts.runDir)); err == nil {
		fmt.Printf("profile changed %s\n", humanize.Time(info.ModTime()))
	}
	if info, err := os.Stat(globalOpts.confPath); err == nil {
		fmt.Printf("config changed %s\n", humanize.Time(info.ModTime()))
	}
}

func formatVariations(set []int) string {
	if len(set) == 0 {
		return "all"
	}
	parts := make([]string, len(set))
	for i, v := range set {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
