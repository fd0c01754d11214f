package search

import (
	"encoding/binary"
	"math/bits"

	"github.com/mhr3/bytefind/search/internal/swar"
	"golang.org/x/sys/cpu"
)

var hasNEON = cpu.ARM64.HasASIMD

// findLong is the length>=4 entry point on arm64: it routes to the
// NEON-shaped scanner when ASIMD is available, else the general scalar
// scanner.
func findLong(hay []byte, needle Needle) int {
	if hasNEON {
		return neonScan(hay, needle)
	}
	return scanGeneric(hay, needle)
}

func countBytes(hay []byte, c byte) int {
	if hasNEON {
		return neonCountByte(hay, c)
	}
	return swar.CountByte1(hay, c)
}

// neonScan is the 16-byte-stride analogue of avx2Scan: four unaligned
// 16-byte-stride loads per iteration, each split into four 4-byte lanes
// compared against a broadcast prefix, OR'd, 16-position scalar verification
// on a union hit. See avx2Scan's doc comment and DESIGN.md for why this is a
// portable lane-word rendering rather than real NEON intrinsics.
func neonScan(hay []byte, needle Needle) int {
	nd := needle.Bytes()
	n := len(nd)
	hayLen := len(hay)
	prefixKey := binary.LittleEndian.Uint32(nd[:4])

	pos := 0
	for pos+19 <= hayLen {
		hit := false
	shifts:
		for s := 0; s < 4; s++ {
			base := pos + s
			for lane := 0; lane < 4; lane++ {
				off := base + 4*lane
				if binary.LittleEndian.Uint32(hay[off:off+4]) == prefixKey {
					hit = true
					break shifts
				}
			}
		}
		if hit {
			for i := 0; i < 16; i++ {
				start := pos + i
				if start+n <= hayLen && bytesEqual(hay[start:start+n], nd) {
					return start
				}
			}
		}
		pos += 16
	}

	sub := hay[pos:]
	r := scanGeneric(sub, needle)
	if r == len(sub) {
		return hayLen
	}
	return pos + r
}

// neonCountByte is the NEON byte counter: per 16-byte stride, compare two
// 8-byte halves against the broadcast target and accumulate matches, with a
// scalar tail. A real NEON kernel compares 16 lanes at once and recovers the
// match count from a full 0xFF-per-lane mask via popcount/8; this rendering
// folds each 8-byte half down to one indicator bit per byte (the same fold
// swar.CountByte1 uses) and popcounts that directly, which already yields a
// byte count with no /8 step needed.
func neonCountByte(hay []byte, target byte) int {
	n := len(hay)
	i := 0
	count := 0
	mask := uint64(0x0101010101010101) * uint64(target)
	for i+16 <= n {
		lo := binary.LittleEndian.Uint64(hay[i:])
		hi := binary.LittleEndian.Uint64(hay[i+8:])
		count += bits.OnesCount64(foldCount(lo ^ mask))
		count += bits.OnesCount64(foldCount(hi ^ mask))
		i += 16
	}
	count += swar.CountByte1(hay[i:], target)
	return count
}

func foldCount(xored uint64) uint64 {
	v := ^xored
	v &= v >> 1
	v &= v >> 2
	v &= v >> 4
	return v & 0x0101010101010101
}
