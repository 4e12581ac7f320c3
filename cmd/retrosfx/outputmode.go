package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retrosfx/retrosfx/internal/config"
	"github.com/retrosfx/retrosfx/internal/output"
)

var outputCmd = &cobra.Command{
	Use:   "output MODE",
	Short: "Set the output mode",
	Long: `Set how beeps are rendered.

Valid modes: pcspkr, audio, random. In random mode each event picks audio
with the configured random-audio percentage, pcspkr otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := output.Mode(args[0])
		if !mode.Valid() {
			return fmt.Errorf("invalid output mode %q (valid: pcspkr, audio, random)", args[0])
		}
		if err := config.Set(globalOpts.confPath, "OUTPUT_MODE", string(mode)); err != nil {
			return err
		}
		fmt.Printf("output mode set to %s\n", mode)
		return nil
	},
}

var randomAudioCmd = &cobra.Command{
	Use:   "random-audio PERCENT",
	Short: "Set the random-mode audio percentage",
	Long:  `Set the chance, in percent, that random mode picks the audio backend.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pct, err := strconv.Atoi(args[0])
		if err != nil || pct < 0 || pct > 100 {
			return fmt.Errorf("percentage must be an integer 0-100, got %q", args[0])
		}
		if err := config.Set(globalOpts.confPath, "RANDOM_AUDIO_PERCENT", strconv.Itoa(pct)); err != nil {
			return err
		}
		fmt.Printf("random audio percentage set to %d\n", pct)
		return nil
	},
}

var limiterCmd = &cobra.Command{
	Use:   "limiter on|off",
	Short: "Enable or disable the audio limiter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := onOffValue(args[0])
		if err != nil {
			return err
		}
		if err := config.Set(globalOpts.confPath, "LIMITER_ENABLED", v); err != nil {
			return err
		}
		fmt.Printf("limiter %s\n", args[0])
		return nil
	},
}

// onOffValue maps on|off to the config file's "1"|"0".
func onOffValue(s string) (string, error) {
	switch s {
	case "on":
		return "1", nil
	case "off":
		return "0", nil
	}
	return "", fmt.Errorf("expected on or off, got %q", s)
}

func init() {
	rootCmd.AddCommand(outputCmd)
	rootCmd.AddCommand(randomAudioCmd)
	rootCmd.AddCommand(limiterCmd)
}
