// Package view implements a borrowed byte-range view type and lazy match
// enumeration, both expressed purely in terms of the search package's Find.
// Nothing here re-implements scanning; view exists only to
// translate the engine's miss sentinel and carry range-relative semantics
// (StartsWith, EndsWith, Substr) as thin wrappers around the core.
package view

import (
	"bytes"
	"hash/maphash"

	"github.com/mhr3/bytefind/search"
)

// NotFound is returned by View.Find in place of the core's haystack.Len()
// miss sentinel, matching the conventional -1 "not found" result used by
// the rest of the ecosystem (strings.Index, bytes.Index) rather than the
// core engine's internal "one past the end" convention.
const NotFound = -1

// View is an immutable, non-owning look at a contiguous byte range,
// borrowed the same way search.Span is: the caller must keep the backing
// array alive and must not mutate it while the View is in concurrent use.
type View struct {
	bytes []byte
}

// New wraps b in a View. b is borrowed, not copied.
func New(b []byte) View {
	return View{bytes: b}
}

// Bytes returns the underlying byte slice. Callers must treat it as
// read-only.
func (v View) Bytes() []byte { return v.bytes }

// Len returns the number of bytes in the view.
func (v View) Len() int { return len(v.bytes) }

// Find returns the index of the first occurrence of needle in v, or
// NotFound if needle does not occur. It is a thin wrapper over
// search.Find that translates the core's "one past the end" miss sentinel
// to NotFound.
func (v View) Find(needle []byte) int {
	nd, err := search.NewNeedle(needle, 0)
	if err != nil {
		// A needle that NewNeedle rejects outright (anomaly offset
		// validation only ever fails here for lengths >= 4 paired with a
		// non-zero offset, which this wrapper never passes) cannot occur
		// through this entry point; treat it defensively as a miss rather
		// than panicking, since View.Find has no error return.
		return NotFound
	}
	return v.findNeedle(nd)
}

// findNeedle runs a pre-built search.Needle against v and translates the
// miss sentinel for Find. A zero-length needle always matches at index 0, even when
// v is itself empty, so that case is special-cased before applying the
// sentinel translation (which would otherwise mistake "matched at 0 in an
// empty view" for "missed").
func (v View) findNeedle(nd search.Needle) int {
	if nd.Len() == 0 {
		return 0
	}
	got := search.Find(search.NewSpan(v.bytes), nd)
	if got == len(v.bytes) {
		return NotFound
	}
	return got
}

// Contains reports whether needle occurs anywhere in v.
func (v View) Contains(needle []byte) bool {
	return v.Find(needle) != NotFound
}

// StartsWith reports whether v begins with prefix.
func (v View) StartsWith(prefix []byte) bool {
	if len(prefix) > len(v.bytes) {
		return false
	}
	return bytes.Equal(v.bytes[:len(prefix)], prefix)
}

// EndsWith reports whether v ends with suffix.
func (v View) EndsWith(suffix []byte) bool {
	if len(suffix) > len(v.bytes) {
		return false
	}
	return bytes.Equal(v.bytes[len(v.bytes)-len(suffix):], suffix)
}

// Substr returns the sub-view [start, end) of v. It panics on an
// out-of-range range, matching Go slice semantics.
func (v View) Substr(start, end int) View {
	return View{bytes: v.bytes[start:end]}
}

// Compare returns a negative number, zero, or a positive number as v
// orders before, equal to, or after other, by byte-lexicographic order.
func (v View) Compare(other View) int {
	return bytes.Compare(v.bytes, other.bytes)
}

// viewHashSeed is process-local and randomized by maphash, matching
// hash/maphash's own guidance that Hash values are only meaningful within
// a single process's lifetime — never persisted or compared cross-process.
var viewHashSeed = maphash.MakeSeed()

// Hash returns a process-local, non-cryptographic hash of v's bytes,
// suitable for use as a map/set key within a single run.
func (v View) Hash() uint64 {
	return maphash.Bytes(viewHashSeed, v.bytes)
}
