package main

import (
	"fmt"
	"os"

	"github.com/mhr3/bytefind/search"
	"github.com/spf13/cobra"
)

var findAnomalyOffset int

var findCmd = &cobra.Command{
	Use:   "find HAYSTACK-FILE NEEDLE",
	Short: "Print the index of the first occurrence of NEEDLE in HAYSTACK-FILE",
	Args:  cobra.ExactArgs(2),
	RunE:  runFind,
}

func init() {
	findCmd.Flags().IntVarP(&findAnomalyOffset, "anomaly-offset", "a", -1,
		"anomaly offset within the needle (default: auto-selected rarest window)")
}

func runFind(cmd *cobra.Command, args []string) error {
	hay, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading haystack: %w", err)
	}
	needle := []byte(args[1])

	var nd search.Needle
	switch {
	case findAnomalyOffset >= 0:
		nd, err = search.NewNeedle(needle, findAnomalyOffset)
	case len(needle) < 4:
		// NewNeedleAuto rejects needles shorter than 4 bytes outright,
		// since they carry no anomaly window at all; fall back to the
		// plain constructor with an unused offset of 0.
		nd, err = search.NewNeedle(needle, 0)
	default:
		nd, err = search.NewNeedleAuto(needle)
	}
	if err != nil {
		return fmt.Errorf("building needle: %w", err)
	}

	got := search.Find(search.NewSpan(hay), nd)
	if got == len(hay) {
		fmt.Fprintln(cmd.OutOrStdout(), "not found")
		os.Exit(1)
	}
	fmt.Fprintln(cmd.OutOrStdout(), got)
	return nil
}
