package evenness

// Stats holds onset distribution statistics of a binary rhythm.
type Stats struct {
	Length        int
	Onsets        int
	Gaps          []int // circular inter-onset intervals, in onset order
	MinGap        int
	MaxGap        int
	GapSpread     int // MaxGap - MinGap
	GapMean       float64
	GapStdDev     float64
	MaximallyEven bool
	DFTEvenness   float64 // |X[k]| / k, see [DFTEvenness]
}

// Gaps returns the circular distances between consecutive onsets, starting
// at the first onset. The gaps sum to len(p) when p has at least one onset.
// Steps other than 1 count as rests.
func Gaps(p []int) []int {
	first := -1
	prev := -1
	var out []int
	for i, v := range p {
		if v != 1 {
			continue
		}
		if first < 0 {
			first = i
		} else {
			out = append(out, i-prev)
		}
		prev = i
	}
	if first < 0 {
		return nil
	}
	return append(out, len(p)-prev+first)
}

// IsMaximallyEven reports whether no two circular gaps differ by more than
// one step. Rhythms with fewer than two onsets are trivially even.
func IsMaximallyEven(p []int) bool {
	gaps := Gaps(p)
	if len(gaps) < 2 {
		return true
	}
	lo, hi := gapRange(gaps)
	return hi-lo <= 1
}

// Calculate computes all statistics for p.
func Calculate(p []int) (Stats, error) {
	s := Stats{
		Length:        len(p),
		Gaps:          Gaps(p),
		MaximallyEven: true,
	}
	s.Onsets = len(s.Gaps)
	if s.Onsets == 0 {
		return s, nil
	}

	s.MinGap, s.MaxGap = gapRange(s.Gaps)
	s.GapSpread = s.MaxGap - s.MinGap
	s.MaximallyEven = s.Onsets < 2 || s.GapSpread <= 1

	// Welford accumulators.
	var mean, m2 float64
	for i, g := range s.Gaps {
		x := float64(g)
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}
	s.GapMean = mean
	s.GapStdDev = mathSqrt(m2 / float64(s.Onsets))

	ev, err := DFTEvenness(p)
	if err != nil {
		return s, err
	}
	s.DFTEvenness = ev
	return s, nil
}

func gapRange(gaps []int) (lo, hi int) {
	lo, hi = gaps[0], gaps[0]
	for _, g := range gaps[1:] {
		lo = min(lo, g)
		hi = max(hi, g)
	}
	return lo, hi
}
