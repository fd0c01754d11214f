package search

import (
	"math/rand"
	"testing"

	segAscii "github.com/segmentio/asm/ascii"
)

// TestAVX2FixturesAreValidASCII cross-checks the random fixtures fed into
// avx2Scan against segmentio/asm's SIMD ASCII validator. It guards against a
// corpus generator regression silently producing non-ASCII bytes that would
// make haystack/needle dumps in failing test output unreadable.
func TestAVX2FixturesAreValidASCII(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	alphabet := []byte("abc")
	hay := randBytes(rng, alphabet, 256)
	if !segAscii.ValidString(string(hay)) {
		t.Fatalf("corpus generator produced non-ASCII bytes: %q", hay)
	}
}

// TestEqualFoldReducesToEqualForNonLetters cross-validates bytesEqual (used
// by avx2Scan's scalar verification step) against segmentio/asm's
// EqualFoldString on inputs containing no ASCII letters, where case-folding
// is a no-op and the two notions of equality must agree.
func TestEqualFoldReducesToEqualForNonLetters(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	alphabet := []byte("012- ")
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(40)
		a := randBytes(rng, alphabet, n)
		b := make([]byte, n)
		copy(b, a)
		if n > 0 && rng.Intn(2) == 0 {
			b[rng.Intn(n)] = alphabet[rng.Intn(len(alphabet))]
		}
		want := bytesEqual(a, b)
		got := segAscii.EqualFoldString(string(a), string(b))
		if got != want {
			t.Fatalf("EqualFoldString(%q, %q) = %v, want %v (bytesEqual)", a, b, got, want)
		}
	}
}
