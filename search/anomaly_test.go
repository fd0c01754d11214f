package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNeedleValidatesOffset(t *testing.T) {
	_, err := NewNeedle([]byte("hello"), 2) // 2+4=6 > 5
	assert.ErrorIs(t, err, ErrInvalidNeedle)

	_, err = NewNeedle([]byte("hello"), -1)
	assert.ErrorIs(t, err, ErrInvalidNeedle)

	nd, err := NewNeedle([]byte("hello"), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, nd.AnomalyOffset())

	// Needles shorter than 4 bytes accept any offset in [0, len-4] clamped
	// to 0, since the field is unused below length 4.
	nd, err = NewNeedle([]byte("ab"), 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, nd.AnomalyOffset())
}

func TestNewNeedleAutoPicksRarestWindow(t *testing.T) {
	// 'q' and 'z' are rare; the space-padded run is common. The rarest
	// 4-byte window should land on the rare cluster, not the common one.
	raw := []byte("    qzx    ")
	nd, err := NewNeedleAuto(raw)
	if err != nil {
		t.Fatalf("NewNeedleAuto: %v", err)
	}
	off := nd.AnomalyOffset()
	window := raw[off : off+4]
	assert.Contains(t, string(window), "q")
}

func TestNewNeedleAutoTooShort(t *testing.T) {
	_, err := NewNeedleAuto([]byte("abc"))
	assert.ErrorIs(t, err, ErrInvalidNeedle)
}

func TestNewNeedleAutoFindsSameMatches(t *testing.T) {
	hay := "the quick brown fox jumps over the lazy dog"
	nd, err := NewNeedleAuto([]byte("jumps"))
	if err != nil {
		t.Fatalf("NewNeedleAuto: %v", err)
	}
	got := Find(NewSpan([]byte(hay)), nd)
	assert.Equal(t, 20, got)
}
