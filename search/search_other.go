//go:build !amd64 && !arm64

package search

import "github.com/mhr3/bytefind/search/internal/swar"

// findLong is the length>=4 entry point on architectures with no vector
// scanner in this module: it always uses the general scalar scanner.
func findLong(hay []byte, needle Needle) int {
	return scanGeneric(hay, needle)
}

func countBytes(hay []byte, c byte) int {
	return swar.CountByte1(hay, c)
}
