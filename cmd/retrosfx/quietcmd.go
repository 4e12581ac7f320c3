package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retrosfx/retrosfx/internal/config"
	"github.com/retrosfx/retrosfx/internal/quiet"
)

var quietCmd = &cobra.Command{
	Use:   "quiet on|off",
	Short: "Enable or disable quiet hours",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := onOffValue(args[0])
		if err != nil {
			return err
		}
		if err := config.Set(globalOpts.confPath, "QUIET_ENABLED", v); err != nil {
			return err
		}
		fmt.Printf("quiet hours %s\n", args[0])
		return nil
	},
}

var quietTimeCmd = &cobra.Command{
	Use:   "quiet-time START END",
	Short: "Set the quiet-hours window",
	Long: `Set the quiet-hours window in 24-hour HH:MM format.

A window whose start is after its end spans midnight; equal start and end
means quiet all day.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range args {
			if _, err := quiet.ParseClock(t); err != nil {
				return fmt.Errorf("invalid time %q: use HH:MM (24-hour)", t)
			}
		}
		if err := config.Set(globalOpts.confPath, "QUIET_START", args[0]); err != nil {
			return err
		}
		if err := config.Set(globalOpts.confPath, "QUIET_END", args[1]); err != nil {
			return err
		}
		fmt.Printf("quiet hours set to %s-%s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quietCmd)
	rootCmd.AddCommand(quietTimeCmd)
}
