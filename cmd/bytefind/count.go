package main

import (
	"fmt"
	"os"

	"github.com/mhr3/bytefind/search"
	"github.com/spf13/cobra"
)

var countByteHex string

var countCmd = &cobra.Command{
	Use:   "count HAYSTACK-FILE BYTE",
	Short: "Count the occurrences of a single byte in HAYSTACK-FILE",
	Long: `BYTE may be a single ASCII character (count bytefind.txt x) or a
2-digit hex value passed via --hex (count bytefind.txt --hex 0a).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCount,
}

func init() {
	countCmd.Flags().StringVar(&countByteHex, "hex", "", "byte value as 2 hex digits, e.g. 0a")
}

func runCount(cmd *cobra.Command, args []string) error {
	hay, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading haystack: %w", err)
	}

	var target byte
	switch {
	case countByteHex != "":
		var v int
		if _, err := fmt.Sscanf(countByteHex, "%02x", &v); err != nil {
			return fmt.Errorf("invalid --hex value %q: %w", countByteHex, err)
		}
		target = byte(v)
	case len(args) == 2 && len(args[1]) == 1:
		target = args[1][0]
	default:
		return fmt.Errorf("provide a single-character BYTE argument or --hex")
	}

	got := search.CountByte(search.NewSpan(hay), target)
	fmt.Fprintln(cmd.OutOrStdout(), got)
	return nil
}
