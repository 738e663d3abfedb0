package evenness

import (
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// Spectrum returns |X[j]| for every bin of the DFT of the onset indicator
// vector of p (1 for onsets, 0 otherwise). X[0] equals the onset count.
//
// Lengths the FFT backend cannot plan for are transformed directly.
func Spectrum(p []int) ([]float64, error) {
	n := len(p)
	if n == 0 {
		return nil, nil
	}

	in := make([]complex128, n)
	for i, v := range p {
		if v == 1 {
			in[i] = 1
		}
	}

	bins := make([]complex128, n)
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		directDFT(bins, in)
	} else if err = plan.Forward(bins, in); err != nil {
		return nil, fmt.Errorf("evenness: forward fft of %d steps: %w", n, err)
	}

	out := make([]float64, n)
	re, im, buf := getScratch(n)
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}
	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out, nil
}

// DFTEvenness returns |X[k mod n]| / k for a rhythm with k onsets over n
// steps. It is 1 exactly when all gaps are equal and 0 when there are no
// onsets.
func DFTEvenness(p []int) (float64, error) {
	k := 0
	for _, v := range p {
		if v == 1 {
			k++
		}
	}
	if k == 0 {
		return 0, nil
	}
	mags, err := Spectrum(p)
	if err != nil {
		return 0, err
	}
	return mags[k%len(p)] / float64(k), nil
}

func directDFT(dst, src []complex128) {
	n := len(src)
	for j := range dst {
		var sum complex128
		for t, x := range src {
			if x == 0 {
				continue
			}
			angle := -2 * math.Pi * float64(j*t%n) / float64(n)
			sum += x * complex(math.Cos(angle), math.Sin(angle))
		}
		dst[j] = sum
	}
}
