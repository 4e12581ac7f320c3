package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retrosfx/retrosfx/internal/config"
	"github.com/retrosfx/retrosfx/internal/pattern"
)

var variationsCmd = &cobra.Command{
	Use:   "variations PROFILE LIST",
	Short: "Set the enabled variations for a profile",
	Long: `Restrict which of a profile's ten variations may play.

LIST is either "all" or a comma-separated list of indices 0-9, for
example "0,1,2,3".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		prof, err := profileArg(args[0])
		if err != nil {
			return err
		}
		list := args[1]
		if !strings.EqualFold(list, "all") {
			for _, part := range strings.Split(list, ",") {
				n, err := strconv.Atoi(strings.TrimSpace(part))
				if err != nil {
					return fmt.Errorf("invalid variations %q: use 'all' or comma-separated numbers like '0,1,2,3'", list)
				}
				if n < 0 || n >= pattern.VariationsPerProfile {
					return fmt.Errorf("variation numbers must be 0-9, got %d", n)
				}
			}
		}
		key := strings.ToUpper(string(prof)) + "_ENABLED_VARIATIONS"
		if err := config.Set(globalOpts.confPath, key, list); err != nil {
			return err
		}
		fmt.Printf("%s variations set to %s\n", prof, list)
		return nil
	},
}

var intervalCmd = &cobra.Command{
	Use:   "interval PROFILE MIN MAX",
	Short: "Set a profile's event interval bounds in minutes",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		prof, err := profileArg(args[0])
		if err != nil {
			return err
		}
		lo, hi, err := boundsArgs(args[1], args[2], 1, 0)
		if err != nil {
			return err
		}
		prefix := strings.ToUpper(string(prof))
		if err := config.Set(globalOpts.confPath, prefix+"_INTERVAL_MIN", strconv.Itoa(lo)); err != nil {
			return err
		}
		if err := config.Set(globalOpts.confPath, prefix+"_INTERVAL_MAX", strconv.Itoa(hi)); err != nil {
			return err
		}
		fmt.Printf("%s interval set to %d-%d minutes\n", prof, lo, hi)
		return nil
	},
}

var beepsCmd = &cobra.Command{
	Use:   "beeps PROFILE MIN MAX",
	Short: "Set a profile's per-event beep count bounds",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		prof, err := profileArg(args[0])
		if err != nil {
			return err
		}
		lo, hi, err := boundsArgs(args[1], args[2], 1, 20)
		if err != nil {
			return err
		}
		prefix := strings.ToUpper(string(prof))
		if err := config.Set(globalOpts.confPath, prefix+"_BEEPS_MIN", strconv.Itoa(lo)); err != nil {
			return err
		}
		if err := config.Set(globalOpts.confPath, prefix+"_BEEPS_MAX", strconv.Itoa(hi)); err != nil {
			return err
		}
		fmt.Printf("%s beeps set to %d-%d\n", prof, lo, hi)
		return nil
	},
}

func profileArg(s string) (pattern.Profile, error) {
	p := pattern.Profile(s)
	if !p.Valid() {
		return "", fmt.Errorf("invalid profile %q (valid: wopr, mainframe, aliensterm, modem)", s)
	}
	return p, nil
}

// boundsArgs parses a min/max pair. ceil of 0 means unbounded above.
func boundsArgs(minArg, maxArg string, floor, ceil int) (int, int, error) {
	lo, err := strconv.Atoi(minArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minimum %q", minArg)
	}
	hi, err := strconv.Atoi(maxArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid maximum %q", maxArg)
	}
	if lo < floor || (ceil > 0 && hi > ceil) {
		if ceil > 0 {
			return 0, 0, fmt.Errorf("bounds must be within %d-%d", floor, ceil)
		}
		return 0, 0, fmt.Errorf("bounds must be at least %d", floor)
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("minimum %d exceeds maximum %d", lo, hi)
	}
	return lo, hi, nil
}

func init() {
	rootCmd.AddCommand(variationsCmd)
	rootCmd.AddCommand(intervalCmd)
	rootCmd.AddCommand(beepsCmd)
}
