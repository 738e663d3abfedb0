package euclid

// Generate returns the Euclidean rhythm E(k, n): n steps holding exactly k
// onsets (1) and n-k rests (0), distributed by Bjorklund's algorithm.
//
// It fails with [ErrInvalidArgument] unless 0 <= k <= n. For n == 0 the
// result is an empty, non-nil slice.
func Generate(k, n int) ([]int, error) {
	if err := validate(k, n); err != nil {
		return nil, err
	}

	out := make([]int, n)
	if k == 0 {
		return out, nil
	}

	pos := 0
	for _, g := range bjorklund(k, n) {
		pos += copy(out[pos:], g)
	}
	return out, nil
}

// MustGenerate is like [Generate] but panics on invalid input.
func MustGenerate(k, n int) []int {
	out, err := Generate(k, n)
	if err != nil {
		panic(err)
	}
	return out
}

// bjorklund runs the bisection and returns the final groups in order.
// Callers guarantee 0 < k <= n.
func bjorklund(k, n int) [][]int {
	groups := make([][]int, n)
	for i := range groups {
		if i < k {
			groups[i] = []int{1}
		} else {
			groups[i] = []int{0}
		}
	}

	d := n - k
	n, k = max(k, d), min(k, d)
	z := d

	// Each pass pairs the first k groups with the last k, the same way one
	// Euclid step subtracts the smaller count from the larger.
	for z > 0 || k > 1 {
		last := len(groups) - 1
		for i := 0; i < k; i++ {
			groups[i] = append(groups[i], groups[last-i]...)
		}
		groups = groups[:len(groups)-k]

		z -= k
		d = n - k
		n, k = max(k, d), min(k, d)
	}
	return groups
}
