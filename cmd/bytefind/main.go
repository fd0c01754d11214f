// Command bytefind exposes the search package's engine from the shell, for
// manual verification of match results and for measuring throughput
// outside of `go test -bench`.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bytefind",
	Short: "bytefind locates byte needles in byte haystacks",
	Long: `bytefind is a small front-end over the search package's byte-oriented
substring engine: the same short-needle SWAR kernels, general scalar
scanner, and AVX2/NEON-shaped dispatch used by the library, reachable
without writing Go.`,
}

func main() {
	rootCmd.AddCommand(findCmd, countCmd, benchCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
