package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retrosfx/retrosfx/internal/config"
)

// soundfileCmd groups the hashed sound-file playback settings.
var soundfileCmd = &cobra.Command{
	Use:   "soundfile",
	Short: "Configure hashed sound-file playback",
	Long: `Configure hashed sound-file playback.

When enabled, a small fraction of events derive their beep sequence from
a randomly picked file in the configured directory instead of the active
profile's patterns. The file is identified by name only; its content is
never decoded.`,
}

var soundfileOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable sound-file events",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(globalOpts.confPath, "SOUNDFILE_ENABLED", "1"); err != nil {
			return err
		}
		fmt.Println("sound-file events enabled")
		return nil
	},
}

var soundfileOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable sound-file events",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(globalOpts.confPath, "SOUNDFILE_ENABLED", "0"); err != nil {
			return err
		}
		fmt.Println("sound-file events disabled")
		return nil
	},
}

var soundfileDirCmd = &cobra.Command{
	Use:   "dir PATH",
	Short: "Set the sound-file directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(globalOpts.confPath, "SOUNDFILE_DIR", args[0]); err != nil {
			return err
		}
		fmt.Printf("sound-file directory set to %s\n", args[0])
		return nil
	},
}

var soundfileDurationCmd = &cobra.Command{
	Use:   "duration MIN MAX",
	Short: "Set the synthesized duration bounds in seconds",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lo, err1 := strconv.ParseFloat(args[0], 64)
		hi, err2 := strconv.ParseFloat(args[1], 64)
		if err1 != nil || err2 != nil || lo <= 0 || lo > hi {
			return fmt.Errorf("duration bounds must be positive seconds with MIN <= MAX")
		}
		if err := config.Set(globalOpts.confPath, "SOUNDFILE_DURATION_MIN", args[0]); err != nil {
			return err
		}
		if err := config.Set(globalOpts.confPath, "SOUNDFILE_DURATION_MAX", args[1]); err != nil {
			return err
		}
		fmt.Printf("sound-file duration set to %g-%g seconds\n", lo, hi)
		return nil
	},
}

var soundfileIntervalCmd = &cobra.Command{
	Use:   "interval MIN MAX",
	Short: "Set the sound-file event interval bounds in minutes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lo, hi, err := boundsArgs(args[0], args[1], 1, 0)
		if err != nil {
			return err
		}
		if err := config.Set(globalOpts.confPath, "SOUNDFILE_INTERVAL_MIN", strconv.Itoa(lo)); err != nil {
			return err
		}
		if err := config.Set(globalOpts.confPath, "SOUNDFILE_INTERVAL_MAX", strconv.Itoa(hi)); err != nil {
			return err
		}
		fmt.Printf("sound-file interval set to %d-%d minutes\n", lo, hi)
		return nil
	},
}

func init() {
	soundfileCmd.AddCommand(soundfileOnCmd)
	soundfileCmd.AddCommand(soundfileOffCmd)
	soundfileCmd.AddCommand(soundfileDirCmd)
	soundfileCmd.AddCommand(soundfileDurationCmd)
	soundfileCmd.AddCommand(soundfileIntervalCmd)
	rootCmd.AddCommand(soundfileCmd)
}
