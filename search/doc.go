// Package search is a byte-oriented substring search engine. It locates
// fixed needles inside large haystacks using hand-tuned scalar and
// vector-shaped algorithms rather than a naive byte-by-byte scan: dedicated
// SWAR kernels for needle lengths 1-4 (see internal/swar), a 4-byte
// "anomaly" prefilter for longer needles, and AVX2/NEON-shaped accelerants
// dispatched by runtime CPU feature detection.
//
// The engine is synchronous, allocation-free on the hot path, and read-only:
// a Span and Needle may be searched concurrently from any number of
// goroutines without synchronization, provided the underlying bytes are not
// mutated concurrently.
package search
