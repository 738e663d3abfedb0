package euclid

import (
	"context"
	"log/slog"
	"slices"
	"strings"
)

// Mismatch records a vector whose generated rhythm differs from the expected one.
type Mismatch struct {
	Vector Vector
	Got    []int
	Err    error
}

// Verify runs every vector through [Generate] and returns the mismatches.
//
// Each mismatch is logged with both sequences and the run continues with the
// remaining vectors. A nil logger discards all output.
func Verify(logger *slog.Logger, vectors []Vector) []Mismatch {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var mismatches []Mismatch
	for _, v := range vectors {
		got, err := Generate(v.K, v.N)
		if err != nil || !slices.Equal(got, v.Want) {
			m := Mismatch{Vector: v, Got: got, Err: err}
			mismatches = append(mismatches, m)
			logger.LogAttrs(context.Background(), slog.LevelError, "rhythm mismatch",
				slog.Int("k", v.K),
				slog.Int("n", v.N),
				slog.String("want", Format(v.Want)),
				slog.String("got", Format(got)),
				slog.Any("err", err),
			)
			continue
		}
		logger.Debug("rhythm ok", "k", v.K, "n", v.N, "pattern", Format(got))
	}

	logger.Info("verification finished",
		"cases", len(vectors),
		"failed", len(mismatches),
	)
	return mismatches
}

// Format renders a binary sequence as "x" for onsets and "." for rests.
func Format(seq []int) string {
	var b strings.Builder
	b.Grow(len(seq))
	for _, v := range seq {
		if v != 0 {
			b.WriteByte('x')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
