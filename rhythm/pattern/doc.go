// Package pattern provides a step pattern type for sequencing Euclidean
// rhythms.
//
// A [Pattern] is read by a running step counter: At and IsOnset wrap the
// step modulo the pattern length, so callers never need to track bar
// boundaries themselves. Patterns of different lengths can be combined into
// polyrhythms with [Align] and [Layer], which tile every input to the least
// common multiple of their lengths.
package pattern
