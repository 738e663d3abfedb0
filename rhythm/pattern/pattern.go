package pattern

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cwbudde/algo-rhythm/rhythm/euclid"
)

// ErrInvalidPattern is returned for values or glyphs that are not steps.
var ErrInvalidPattern = errors.New("pattern: invalid pattern")

// Pattern is a sequence of steps: 1 for an onset, 0 for a rest.
type Pattern []int

// New validates values and returns them as a Pattern.
// The input slice is copied.
func New(values []int) (Pattern, error) {
	for i, v := range values {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%w: step %d must be 0 or 1: %d", ErrInvalidPattern, i, v)
		}
	}
	return Pattern(slices.Clone(values)), nil
}

// Euclidean returns E(k, n) from [euclid.Generate], rotated by
// [WithRotation] if given.
func Euclidean(k, n int, opts ...Option) (Pattern, error) {
	cfg := ApplyOptions(opts...)
	seq, err := euclid.Generate(k, n)
	if err != nil {
		return nil, err
	}
	p := Pattern(seq)
	if cfg.Rotation != 0 {
		p = p.Rotate(cfg.Rotation)
	}
	return p, nil
}

// Accents distributes a accents over the onsets of p using E(a, onsets).
// The result has the same length as p; every accent falls on an onset.
func Accents(p Pattern, a int) (Pattern, error) {
	idx := p.OnsetIndices()
	dist, err := euclid.Generate(a, len(idx))
	if err != nil {
		return nil, fmt.Errorf("accents: %w", err)
	}
	out := make(Pattern, len(p))
	for i, pos := range idx {
		out[pos] = dist[i]
	}
	return out, nil
}

// Len returns the number of steps.
func (p Pattern) Len() int { return len(p) }

// At returns the step value for a running step counter.
// The counter wraps modulo Len; negative counters count back from the end.
// An empty pattern always yields 0.
func (p Pattern) At(step int) int {
	if len(p) == 0 {
		return 0
	}
	return p[wrap(step, len(p))]
}

// IsOnset reports whether the step counter lands on an onset.
func (p Pattern) IsOnset(step int) bool {
	return p.At(step) == 1
}

// Onsets returns the number of onsets.
func (p Pattern) Onsets() int {
	n := 0
	for _, v := range p {
		if v == 1 {
			n++
		}
	}
	return n
}

// OnsetIndices returns the positions of all onsets in ascending order.
func (p Pattern) OnsetIndices() []int {
	out := make([]int, 0, p.Onsets())
	for i, v := range p {
		if v == 1 {
			out = append(out, i)
		}
	}
	return out
}

// Rotate returns p shifted left by r steps, so the result starts at p[r].
func (p Pattern) Rotate(r int) Pattern {
	out := make(Pattern, len(p))
	if len(p) == 0 {
		return out
	}
	r = wrap(r, len(p))
	n := copy(out, p[r:])
	copy(out[n:], p[:r])
	return out
}

// Complement swaps onsets and rests.
func (p Pattern) Complement() Pattern {
	out := make(Pattern, len(p))
	for i, v := range p {
		out[i] = 1 - v
	}
	return out
}

// Repeat returns p concatenated times times. times <= 0 gives an empty pattern.
func (p Pattern) Repeat(times int) Pattern {
	if times <= 0 {
		return Pattern{}
	}
	out := make(Pattern, 0, len(p)*times)
	for range times {
		out = append(out, p...)
	}
	return out
}

// Equal reports whether p and q hold the same steps.
func (p Pattern) Equal(q Pattern) bool {
	return slices.Equal(p, q)
}

// Clone returns a copy of p.
func (p Pattern) Clone() Pattern {
	return slices.Clone(p)
}

// String renders onsets as "x" and rests as ".".
func (p Pattern) String() string {
	return euclid.Format(p)
}

// Parse reads a pattern written with "x", "X" or "1" for onsets and ".",
// "-", "_" or "0" for rests. Whitespace and "|" bar lines are skipped.
func Parse(s string) (Pattern, error) {
	out := make(Pattern, 0, len(s))
	for i, r := range s {
		switch r {
		case 'x', 'X', '1':
			out = append(out, 1)
		case '.', '-', '_', '0':
			out = append(out, 0)
		case ' ', '\t', '\n', '\r', '|':
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidPattern, r, i)
		}
	}
	return out, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(s string) Pattern {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Join renders several patterns separated by bar lines.
func Join(ps ...Pattern) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, "|")
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
