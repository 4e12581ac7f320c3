package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retrosfx/retrosfx/internal/state"
)

var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable sounds",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := state.WriteEnabled(globalOpts.runDir, true); err != nil {
			return err
		}
		fmt.Println("sounds enabled")
		return nil
	},
}

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable sounds",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := state.WriteEnabled(globalOpts.runDir, false); err != nil {
			return err
		}
		fmt.Println("sounds disabled")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(onCmd)
	rootCmd.AddCommand(offCmd)
}
