package search

// Needle is a byte span to search for, plus the anomaly offset: the byte
// index within the needle at which the general scalar scanner extracts the
// 4-byte prefilter window. Needles shorter than 4 bytes don't use the field
// at all; callers that don't care may pass 0.
type Needle struct {
	span          Span
	anomalyOffset int
}

// NewNeedle builds a Needle over raw with the given anomaly offset. It
// returns ErrInvalidNeedle if anomalyOffset does not satisfy
// 0 <= anomalyOffset <= max(0, len(raw)-4), or if len(raw) >= 4 and
// anomalyOffset+4 > len(raw).
func NewNeedle(raw []byte, anomalyOffset int) (Needle, error) {
	n := len(raw)
	maxOffset := n - 4
	if maxOffset < 0 {
		maxOffset = 0
	}
	if anomalyOffset < 0 || anomalyOffset > maxOffset {
		return Needle{}, ErrInvalidNeedle
	}
	if n >= 4 && anomalyOffset+4 > n {
		return Needle{}, ErrInvalidNeedle
	}
	return Needle{span: NewSpan(raw), anomalyOffset: anomalyOffset}, nil
}

// Bytes returns the needle's byte content.
func (nd Needle) Bytes() []byte { return nd.span.Bytes() }

// Len returns the needle's length.
func (nd Needle) Len() int { return nd.span.Len() }

// AnomalyOffset returns the offset of the 4-byte prefilter window.
func (nd Needle) AnomalyOffset() int { return nd.anomalyOffset }
