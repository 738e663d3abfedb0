// Package evenness measures how evenly the onsets of a binary rhythm are
// spread over its cycle.
//
// Two views are provided. The interval view looks at the circular gaps
// between consecutive onsets: a rhythm is maximally even when no two gaps
// differ by more than one step, which is the defining property of a Euclidean
// rhythm. The spectral view takes the DFT of the onset indicator vector; for k
// onsets the coefficient |X[k]|/k reaches 1 only for perfectly periodic
// rhythms and is largest among all k-onset rhythms for maximally even ones.
package evenness
