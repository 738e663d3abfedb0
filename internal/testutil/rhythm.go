package testutil

import "testing"

// RequireBinary fails t if any step is neither 0 nor 1.
func RequireBinary(t *testing.T, seq []int) {
	t.Helper()
	for i, v := range seq {
		if v != 0 && v != 1 {
			t.Fatalf("index %d: non-binary value %d", i, v)
		}
	}
}

// RequireOnsetCount fails t unless seq holds exactly want onsets.
func RequireOnsetCount(t *testing.T, seq []int, want int) {
	t.Helper()
	got := 0
	for _, v := range seq {
		if v == 1 {
			got++
		}
	}
	if got != want {
		t.Fatalf("onset count: got %d, want %d (len %d)", got, want, len(seq))
	}
}
