// Package main is the entry point for the retrosfxd sound daemon.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/retrosfx/retrosfx/internal/config"
	"github.com/retrosfx/retrosfx/internal/daemon"
	"github.com/retrosfx/retrosfx/internal/hardware"
	"github.com/retrosfx/retrosfx/internal/render"
	"github.com/retrosfx/retrosfx/internal/state"
)

// Build-time variables
var (
	version = "dev"
)

func main() {
	confPath := flag.String("conf", config.DefaultPath, "Path to the config file")
	runDir := flag.String("rundir", state.DefaultRunDir, "Runtime state directory")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("retrosfxd version", version)
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Info("starting retrosfxd", "version", version)

	// Seed the state files so the daemon and control tool agree on the
	// initial enabled/profile values. Failing is fine when unprivileged;
	// reads fall back to defaults anyway.
	if err := state.Seed(*runDir); err != nil {
		logger.Warn("failed to seed runtime state", "dir", *runDir, "error", err)
	}

	probe := hardware.NewSystemProbe(logger)
	pcspkr := probe.PCSpkrAvailable()
	audio := probe.AudioAvailable()
	logger.Info("hardware probe", "pcspkr", pcspkr, "audio", audio)
	if audio {
		logger.Info("audio device", "device", probe.DetectAudioDevice())
	}

	renderer := render.New(logger)
	defer renderer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := daemon.New(*confPath, *runDir, probe, renderer, logger)
	if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler exited", "error", err)
		os.Exit(1)
	}

	logger.Info("retrosfxd stopped")
}
