package search

import "testing"

// TestBackendAgreementNEON checks that the NEON-shaped scanner and the
// general scalar scanner agree on the same corpus.
func TestBackendAgreementNEON(t *testing.T) {
	for _, c := range backendAgreementCases(t) {
		if got := neonScan(c.hay, c.nd); got != c.want {
			t.Fatalf("neonScan(%q, %q) = %d, want %d", c.hay, c.needle, got, c.want)
		}
		if got := scanGeneric(c.hay, c.nd); got != c.want {
			t.Fatalf("scanGeneric(%q, %q) = %d, want %d", c.hay, c.needle, got, c.want)
		}
	}
}

// TestNeonCountByteAgrees checks the NEON byte counter against a manually
// computed count.
func TestNeonCountByteAgrees(t *testing.T) {
	for _, s := range []string{"", "a", "banana", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"} {
		hay := []byte(s)
		want := 0
		for _, b := range hay {
			if b == 'a' {
				want++
			}
		}
		if got := neonCountByte(hay, 'a'); got != want {
			t.Errorf("neonCountByte(%q, 'a') = %d, want %d", s, got, want)
		}
	}
}
