package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSpectrumNear fails t unless got and want have the same length, every
// bin of got is finite, and no bin differs by more than eps. On failure it
// reports the worst bin along with both spectra.
func RequireSpectrumNear(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	RequireFinite(t, got)
	bin, diff, err := worstBin(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if diff > eps {
		t.Fatalf("bin %d off by %v (eps %v)\n got: %v\nwant: %v", bin, diff, eps, got, want)
	}
}

// RequireFinite fails t if any bin is NaN or Inf.
func RequireFinite(t *testing.T, spectrum []float64) {
	t.Helper()
	for bin, v := range spectrum {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("bin %d: non-finite magnitude %v", bin, v)
		}
	}
}

// MaxAbsDiff returns the largest per-bin difference between two spectra.
func MaxAbsDiff(a, b []float64) (float64, error) {
	_, diff, err := worstBin(a, b)
	return diff, err
}

// worstBin returns the bin where a and b differ most. Empty spectra report
// bin -1 with no difference.
func worstBin(a, b []float64) (bin int, diff float64, err error) {
	if len(a) != len(b) {
		return -1, 0, fmt.Errorf("spectrum length mismatch: %d vs %d", len(a), len(b))
	}
	bin = -1
	for i := range a {
		if d := math.Abs(a[i] - b[i]); bin < 0 || d > diff {
			bin, diff = i, d
		}
	}
	return bin, diff, nil
}
