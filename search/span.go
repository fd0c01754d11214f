package search

// Span is an immutable, non-owning view of a contiguous byte range. Since a
// Go slice already carries its own bounds-checked (pointer, length, cap),
// Span wraps a []byte directly instead of exposing unsafe.Pointer +
// uintptr. A zero-length Span is valid regardless of its underlying slice.
//
// Span is copied by value; there is no mutating method.
type Span struct {
	bytes []byte
}

// NewSpan wraps b in a Span. b is borrowed, not copied: the caller must keep
// it alive and must not mutate it while the Span is in use concurrently with
// other readers.
func NewSpan(b []byte) Span {
	return Span{bytes: b}
}

// Bytes returns the underlying byte slice. Callers must treat it as
// read-only; Span makes no copy.
func (s Span) Bytes() []byte { return s.bytes }

// Len returns the number of bytes in the span.
func (s Span) Len() int { return len(s.bytes) }
