package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-rhythm/internal/testutil"
	"github.com/cwbudde/algo-rhythm/rhythm/euclid"
)

func TestNew(t *testing.T) {
	in := []int{1, 0, 1}
	p, err := New(in)
	require.NoError(t, err)
	in[0] = 0
	assert.Equal(t, Pattern{1, 0, 1}, p, "New must copy its input")

	_, err = New([]int{1, 2})
	require.ErrorIs(t, err, ErrInvalidPattern)
}

func TestEuclidean(t *testing.T) {
	p, err := Euclidean(3, 8)
	require.NoError(t, err)
	assert.Equal(t, "x..x..x.", p.String())

	p, err = Euclidean(3, 8, WithRotation(3))
	require.NoError(t, err)
	assert.Equal(t, "x..x.x..", p.String())

	p, err = Euclidean(3, 8, WithRotation(-1))
	require.NoError(t, err)
	assert.Equal(t, ".x..x..x", p.String())

	_, err = Euclidean(9, 8)
	require.ErrorIs(t, err, euclid.ErrInvalidArgument)
}

func TestAt(t *testing.T) {
	p := MustParse("x..x..x.")
	tests := []struct {
		step int
		want int
	}{
		{0, 1}, {1, 0}, {3, 1}, {7, 0}, {8, 1}, {11, 1}, {-1, 0}, {-2, 1}, {-8, 1}, {-16, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.At(tt.step), "step %d", tt.step)
		assert.Equal(t, tt.want == 1, p.IsOnset(tt.step), "step %d", tt.step)
	}

	assert.Equal(t, 0, Pattern{}.At(5))
	assert.False(t, Pattern(nil).IsOnset(0))
}

func TestOnsets(t *testing.T) {
	p := MustParse("x.xx.xx.")
	assert.Equal(t, 8, p.Len())
	assert.Equal(t, 5, p.Onsets())
	assert.Equal(t, []int{0, 2, 3, 5, 6}, p.OnsetIndices())
	assert.Empty(t, Pattern{0, 0}.OnsetIndices())
}

func TestRotate(t *testing.T) {
	p := MustParse("x..x.")
	assert.Equal(t, "x.x..", p.Rotate(3).String())
	assert.Equal(t, p, p.Rotate(5))
	assert.Equal(t, p.Rotate(4), p.Rotate(-1))
	assert.Equal(t, "x..x.", p.String(), "Rotate must not modify the receiver")
	assert.Empty(t, Pattern{}.Rotate(3))
}

func TestRotatePreservesOnsets(t *testing.T) {
	p, err := Euclidean(7, 16)
	require.NoError(t, err)
	for r := -20; r <= 20; r++ {
		q := p.Rotate(r)
		require.Len(t, q, 16)
		testutil.RequireOnsetCount(t, q, 7)
		for step := range 16 {
			require.Equal(t, p.At(step+r), q.At(step))
		}
	}
}

func TestComplementRepeatClone(t *testing.T) {
	p := MustParse("x..x")
	assert.Equal(t, ".xx.", p.Complement().String())
	assert.Equal(t, "x..xx..xx..x", p.Repeat(3).String())
	assert.Empty(t, p.Repeat(0))

	c := p.Clone()
	c[0] = 0
	assert.True(t, p.Equal(MustParse("x..x")))
	assert.False(t, p.Equal(c))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Pattern
	}{
		{"x..x..x.", Pattern{1, 0, 0, 1, 0, 0, 1, 0}},
		{"X-_0 1", Pattern{1, 0, 0, 0, 1}},
		{"x.x.|x...", Pattern{1, 0, 1, 0, 1, 0, 0, 0}},
		{"", Pattern{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Parse("x.o.")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPattern))
	assert.Panics(t, func() { MustParse("?") })
}

func TestAccents(t *testing.T) {
	p := MustParse("x.xx.xx.")
	acc, err := Accents(p, 2)
	require.NoError(t, err)
	assert.Equal(t, "x....x..", acc.String())

	for i, v := range acc {
		if v == 1 {
			assert.Equal(t, 1, p[i], "accent at %d must fall on an onset", i)
		}
	}

	acc, err = Accents(p, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, acc.Onsets())

	_, err = Accents(p, 6)
	require.ErrorIs(t, err, euclid.ErrInvalidArgument)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "x.|.x", Join(MustParse("x."), MustParse(".x")))
}
