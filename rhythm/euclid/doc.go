// Package euclid generates Euclidean rhythms with Bjorklund's algorithm.
//
// A Euclidean rhythm E(k, n) is a binary sequence of n steps with k onsets
// spread as evenly as possible. Bjorklund's procedure is Euclid's GCD
// algorithm applied to groups of steps instead of bare integers: the larger
// group count is repeatedly paired against the smaller one until a single
// remainder group is left, mirroring the repeated subtraction that reaches
// gcd(k, n).
//
// Several rotations of a rhythm are equally even. [Generate] always returns
// the rotation that falls out of the bisection when all onsets start in front
// of all rests, so E(3, 8) is [1 0 0 1 0 0 1 0].
//
// The package also carries the published reference vectors and a small
// harness, [Verify], that reports every mismatch without stopping early.
package euclid
