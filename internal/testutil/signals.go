package testutil

import "math/rand"

// OnsetsAt returns an n-step pattern with onsets at the given positions.
func OnsetsAt(n int, pos ...int) []int {
	out := make([]int, n)
	for _, p := range pos {
		out[p] = 1
	}
	return out
}

// DeterministicPattern returns an n-step pattern with k onsets at positions
// drawn from a fixed seed.
func DeterministicPattern(seed int64, k, n int) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for _, p := range rng.Perm(n)[:k] {
		out[p] = 1
	}
	return out
}

// Subsets calls fn with every n-step pattern holding exactly k onsets.
// The slice passed to fn is reused between calls.
func Subsets(k, n int, fn func([]int)) {
	buf := make([]int, n)
	var rec func(start, left int)
	rec = func(start, left int) {
		if left == 0 {
			fn(buf)
			return
		}
		for i := start; i <= n-left; i++ {
			buf[i] = 1
			rec(i+1, left-1)
			buf[i] = 0
		}
	}
	rec(0, k)
}
