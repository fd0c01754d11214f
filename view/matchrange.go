package view

import "github.com/mhr3/bytefind/search"

// Matches returns a lazy, restartable forward enumerator over every
// position where needle occurs in v, advancing the cursor by one byte
// after each hit. This is overlap-preserving, expressed as a
// bufio.Scanner-shaped iterator (Next/Pos) rather than a channel or a
// materialized slice, so a haystack much larger than the match count never
// needs its full match set buffered up front.
type MatchIter struct {
	v      View
	nd     search.Needle
	cursor int
	pos    int
	done   bool
}

// Matches builds a forward MatchIter over v for needle. The anomaly offset
// used internally is always 0; needles shorter than 4 bytes ignore the
// field entirely and NewNeedle never rejects offset 0.
func Matches(v View, needle []byte) *MatchIter {
	nd, err := search.NewNeedle(needle, 0)
	if err != nil {
		return &MatchIter{done: true}
	}
	return &MatchIter{v: v, nd: nd, done: len(needle) == 0 && len(v.bytes) == 0}
}

// Next advances to the next match and reports whether one was found. Call
// Pos to retrieve the position after Next returns true.
func (it *MatchIter) Next() bool {
	if it.done {
		return false
	}
	remainder := it.v.bytes[it.cursor:]
	got := search.Find(search.NewSpan(remainder), it.nd)
	if got == len(remainder) {
		it.done = true
		return false
	}
	it.pos = it.cursor + got
	// Advance by one byte past the match start, not past the match end:
	// this is what makes the enumeration overlap-preserving, so "aaaa" is
	// reported at both 0 and 1 in "aaaaaaaa".
	it.cursor = it.pos + 1
	if it.cursor > len(it.v.bytes) {
		it.done = true
	}
	return true
}

// Pos returns the position of the most recent match found by Next.
func (it *MatchIter) Pos() int { return it.pos }

// ReverseMatchIter is the reverse counterpart of MatchIter: it yields the
// same set of positions as the forward enumeration, in descending order.
//
// The core engine exposes only a forward Find primitive, so a true
// lazily-scanning reverse walk isn't available to build on. Instead
// ReverseMatchIter runs the forward enumeration once, eagerly, on first
// use, and serves it back in reverse; this keeps the public Next/Pos
// contract identical in both directions at the cost of one full forward
// pass, deferred until the first call to Next rather than done in
// MatchesReverse itself.
type ReverseMatchIter struct {
	v         View
	nd        search.Needle
	matched   bool
	done      bool
	pos       int
	positions []int
	idx       int
}

// MatchesReverse builds a reverse MatchIter over v for needle.
func MatchesReverse(v View, needle []byte) *ReverseMatchIter {
	nd, err := search.NewNeedle(needle, 0)
	if err != nil {
		return &ReverseMatchIter{done: true}
	}
	return &ReverseMatchIter{v: v, nd: nd, done: len(needle) == 0 && len(v.bytes) == 0}
}

// Next advances to the next match, walking from the end of v toward the
// start, and reports whether one was found.
func (it *ReverseMatchIter) Next() bool {
	if it.done {
		return false
	}
	if !it.matched {
		it.matched = true
		all := collectForward(it.v, it.nd)
		it.positions = all
		it.idx = len(all)
	}
	if it.idx == 0 {
		it.done = true
		return false
	}
	it.idx--
	it.pos = it.positions[it.idx]
	return true
}

// Pos returns the position of the most recent match found by Next.
func (it *ReverseMatchIter) Pos() int { return it.pos }

// collectForward materializes every forward match position of nd in v,
// backing ReverseMatchIter's eager reverse walk.
func collectForward(v View, nd search.Needle) []int {
	var positions []int
	cursor := 0
	for {
		remainder := v.bytes[cursor:]
		got := search.Find(search.NewSpan(remainder), nd)
		if got == len(remainder) {
			return positions
		}
		pos := cursor + got
		positions = append(positions, pos)
		cursor = pos + 1
		if cursor > len(v.bytes) {
			return positions
		}
	}
}
