package search

import (
	"encoding/binary"

	"github.com/mhr3/bytefind/search/internal/swar"
	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

// findLong is the length>=4 entry point on amd64: it routes to the AVX2
// scanner when available, else the general scalar scanner.
func findLong(hay []byte, needle Needle) int {
	if hasAVX2 {
		return avx2Scan(hay, needle)
	}
	return scanGeneric(hay, needle)
}

func countBytes(hay []byte, c byte) int {
	// The accelerated byte counter lives on the NEON back-end only; amd64
	// counts through the SWAR kernel used by CountByte everywhere else.
	return swar.CountByte1(hay, c)
}

// avx2Scan is a portable rendering of a vector scanner: four unaligned
// 32-byte-stride loads per iteration, each treated as eight 4-byte lanes
// compared against a broadcast prefix key, OR'd across the four loads, with
// a 32-position scalar verification on any union hit. There is no inline
// assembly-free way to issue real AVX2 loads/compares from Go (see
// DESIGN.md), so this keeps the algorithm's shape - four independent
// lane-compares per stride, widen-OR, scalar fallback - while staying
// bounds-safe and host-architecture-independent.
func avx2Scan(hay []byte, needle Needle) int {
	nd := needle.Bytes()
	n := len(nd)
	hayLen := len(hay)
	prefixKey := binary.LittleEndian.Uint32(nd[:4])

	pos := 0
	for pos+35 <= hayLen {
		hit := false
	shifts:
		for s := 0; s < 4; s++ {
			base := pos + s
			for lane := 0; lane < 8; lane++ {
				off := base + 4*lane
				if binary.LittleEndian.Uint32(hay[off:off+4]) == prefixKey {
					hit = true
					break shifts
				}
			}
		}
		if hit {
			for i := 0; i < 32; i++ {
				start := pos + i
				if start+n <= hayLen && bytesEqual(hay[start:start+n], nd) {
					return start
				}
			}
		}
		pos += 32
	}

	sub := hay[pos:]
	r := scanGeneric(sub, needle)
	if r == len(sub) {
		return hayLen
	}
	return pos + r
}
