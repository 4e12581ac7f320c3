package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/retrosfx/retrosfx/internal/render"
	"github.com/retrosfx/retrosfx/internal/synth"
)

var previewOpts struct {
	duration float64
	gain     float64
}

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Play a file's hashed beep sequence through the audio sink",
	Long: `Preview what a sound file would sound like as buzzer beeps.

The file's name is hashed into a deterministic beep sequence, exactly as
the daemon would do it, and played through the audio backend so the
result can be heard without a PC speaker.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Float64VarP(&previewOpts.duration, "duration", "d", 30,
		"Target duration in seconds")
	previewCmd.Flags().Float64VarP(&previewOpts.gain, "gain", "g", 1.0,
		"Playback gain")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	file := args[0]
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("file not found: %s", file)
	}

	beeps := synth.Synthesize(file, previewOpts.duration)
	fmt.Printf("playing %d beeps for %s\n", len(beeps), file)

	renderer := render.New(logger)
	defer renderer.Close()

	opts := render.AudioOpts{Device: "default", Gain: previewOpts.gain}
	for i, bp := range beeps {
		fmt.Printf("[%d/%d] %dHz for %dms\n", i+1, len(beeps), bp.Freq, bp.Dur.Milliseconds())
		if err := renderer.EmitAudio(bp.Freq, bp.Dur, opts); err != nil {
			return fmt.Errorf("playback failed: %w", err)
		}
		if i < len(beeps)-1 {
			time.Sleep(synth.EventGap)
		}
	}
	return nil
}
