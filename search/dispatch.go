// Package search: architecture dispatch. Find and CountByte are the two
// public entry points; everything else in this file picks the fastest
// scanner available for a given needle length and CPU.
package search

import "github.com/mhr3/bytefind/search/internal/swar"

// Find returns the index of the first occurrence of needle in haystack, or
// haystack.Len() if there is none. Needles shorter than 4 bytes always route
// to the dedicated SWAR kernels regardless of hardware; needles of length 4
// or more route to the best available vector scanner, falling back to the
// general scalar scanner when no vector path qualifies.
func Find(haystack Span, needle Needle) int {
	hay := haystack.Bytes()
	n := needle.Len()

	if n == 0 {
		return 0
	}
	if n > len(hay) {
		return len(hay)
	}
	if n < 4 {
		return swar.FindN(hay, needle.Bytes())
	}
	return findLong(hay, needle)
}

// CountByte returns the number of bytes in haystack equal to c.
func CountByte(haystack Span, c byte) int {
	return countBytes(haystack.Bytes(), c)
}
