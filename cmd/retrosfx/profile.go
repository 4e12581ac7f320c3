package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retrosfx/retrosfx/internal/pattern"
	"github.com/retrosfx/retrosfx/internal/state"
)

var profileCmd = &cobra.Command{
	Use:   "profile NAME",
	Short: "Set the active sound profile",
	Long: `Set the active sound profile.

Valid profiles: wopr, mainframe, aliensterm, modem.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := pattern.Profile(args[0])
		if !p.Valid() {
			return fmt.Errorf("invalid profile %q (valid: wopr, mainframe, aliensterm, modem)", args[0])
		}
		if err := state.WriteProfile(globalOpts.runDir, p); err != nil {
			return err
		}
		fmt.Printf("profile set to %s\n", p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
