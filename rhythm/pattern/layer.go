package pattern

// LCM returns the least common multiple of the given lengths.
// Non-positive lengths are skipped; with none left the result is 0.
func LCM(lengths ...int) int {
	out := 0
	for _, n := range lengths {
		if n <= 0 {
			continue
		}
		if out == 0 {
			out = n
			continue
		}
		out = out / gcd(out, n) * n
	}
	return out
}

// Align tiles every pattern to the least common multiple of their lengths,
// so step i of each result is the same instant of the polyrhythm.
// Empty patterns come back as all rests.
func Align(ps ...Pattern) []Pattern {
	lengths := make([]int, len(ps))
	for i, p := range ps {
		lengths[i] = len(p)
	}
	cycle := LCM(lengths...)

	out := make([]Pattern, len(ps))
	for i, p := range ps {
		if len(p) == 0 {
			out[i] = make(Pattern, cycle)
			continue
		}
		out[i] = p.Repeat(cycle / len(p))
	}
	return out
}

// Layer merges patterns into one over their common cycle. A step is an
// onset when any input has an onset there.
func Layer(ps ...Pattern) Pattern {
	aligned := Align(ps...)
	if len(aligned) == 0 {
		return Pattern{}
	}
	out := make(Pattern, len(aligned[0]))
	for _, p := range aligned {
		for i, v := range p {
			out[i] |= v
		}
	}
	return out
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
