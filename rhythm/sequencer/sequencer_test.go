package sequencer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-rhythm/rhythm/pattern"
)

func newTestSequencer(t *testing.T, opts ...Option) *Sequencer {
	t.Helper()
	kick, err := pattern.Euclidean(3, 8)
	require.NoError(t, err)
	clave, err := pattern.Euclidean(2, 3)
	require.NoError(t, err)

	s, err := New([]Track{
		{Name: "kick", Pattern: kick, Accents: pattern.MustParse("x.......")},
		{Name: "clave", Pattern: clave},
	}, opts...)
	require.NoError(t, err)
	return s
}

func firedTracks(tr []Trigger) []string {
	out := make([]string, len(tr))
	for i, t := range tr {
		out[i] = t.Name
	}
	return out
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, errNoTracks)

	_, err = New([]Track{{Name: "empty"}})
	require.ErrorIs(t, err, errEmptyPattern)

	_, err = New([]Track{{Name: "bad", Pattern: pattern.MustParse("x.x."), Accents: pattern.MustParse("x.")}})
	require.ErrorIs(t, err, errAccentLength)
}

func TestNewRejectsNonBinarySteps(t *testing.T) {
	_, err := New([]Track{{Name: "kick", Pattern: pattern.Pattern{2, 0, 1}}})
	require.ErrorIs(t, err, pattern.ErrInvalidPattern)

	_, err = New([]Track{{Name: "kick", Pattern: pattern.MustParse("x.x"), Accents: pattern.Pattern{1, 0, -1}}})
	require.ErrorIs(t, err, pattern.ErrInvalidPattern)
}

func TestSetTrackPatternRejectsNonBinarySteps(t *testing.T) {
	s := newTestSequencer(t)

	err := s.SetTrackPattern(0, pattern.Pattern{5, -1})
	require.ErrorIs(t, err, pattern.ErrInvalidPattern)
	assert.Equal(t, "x..x..x.", s.Tracks()[0].Pattern.String())
	assert.Equal(t, 24, s.CycleLength())
}

func TestCycleLength(t *testing.T) {
	s := newTestSequencer(t)
	assert.Equal(t, 24, s.CycleLength())
}

func TestTickStoppedDoesNothing(t *testing.T) {
	s := newTestSequencer(t)
	assert.False(t, s.Running())
	assert.Nil(t, s.Tick())
	assert.Equal(t, 0, s.Step())
}

func TestTickFollowsPatterns(t *testing.T) {
	s := newTestSequencer(t)
	s.SetRunning(true)

	kick := pattern.MustParse("x..x..x.")
	clave := pattern.MustParse("x.x")

	for step := 0; step < 2*s.CycleLength(); step++ {
		wantStep := step % s.CycleLength()
		require.Equal(t, wantStep, s.Step())

		var want []string
		if kick.IsOnset(step) {
			want = append(want, "kick")
		}
		if clave.IsOnset(step) {
			want = append(want, "clave")
		}

		got := s.Tick()
		require.Equal(t, len(want), len(got), "step %d", step)
		if len(want) > 0 {
			require.Equal(t, want, firedTracks(got), "step %d", step)
		}
		for _, tr := range got {
			require.Equal(t, wantStep, tr.Step)
		}
	}
}

func TestAccents(t *testing.T) {
	s := newTestSequencer(t)
	s.SetRunning(true)

	got := s.Tick()
	require.Len(t, got, 2)
	assert.True(t, got[0].Accent)
	assert.False(t, got[1].Accent)

	s.Tick()
	s.Tick()
	got = s.Tick() // step 3
	require.Len(t, got, 2)
	assert.Equal(t, "kick", got[0].Name)
	assert.False(t, got[0].Accent)
}

func TestMute(t *testing.T) {
	s := newTestSequencer(t)
	require.NoError(t, s.SetTrackMuted(0, true))
	require.Error(t, s.SetTrackMuted(2, true))
	s.SetRunning(true)

	got := s.Tick()
	assert.Equal(t, []string{"clave"}, firedTracks(got))
	assert.True(t, s.Tracks()[0].Muted)
}

func TestSetRunningRewinds(t *testing.T) {
	s := newTestSequencer(t, WithStartStep(3))
	assert.Equal(t, 3, s.Step())

	s.SetRunning(true)
	s.Tick()
	s.Tick()
	assert.Equal(t, 5, s.Step())

	s.SetRunning(true)
	assert.Equal(t, 5, s.Step(), "already running must not rewind")

	s.SetRunning(false)
	s.SetRunning(true)
	assert.Equal(t, 3, s.Step())
}

func TestNoLoop(t *testing.T) {
	s := newTestSequencer(t, WithLoop(false))
	s.SetRunning(true)
	for range 30 {
		s.Tick()
	}
	assert.Equal(t, 30, s.Step())

	got := s.Tick() // step 30: kick at 30%8=6, clave at 30%3=0
	assert.Equal(t, []string{"kick", "clave"}, firedTracks(got))
}

func TestSetTrackPattern(t *testing.T) {
	s := newTestSequencer(t)
	s.SetRunning(true)
	for range 20 {
		s.Tick()
	}

	require.NoError(t, s.SetTrackPattern(1, pattern.MustParse("x...")))
	assert.Equal(t, 8, s.CycleLength())
	assert.Equal(t, 4, s.Step())
	assert.Nil(t, s.Tracks()[1].Accents)

	require.Error(t, s.SetTrackPattern(1, pattern.Pattern{}))
	require.Error(t, s.SetTrackPattern(-1, pattern.MustParse("x")))
}

func TestTracksAreCopies(t *testing.T) {
	p := pattern.MustParse("x.x.")
	s, err := New([]Track{{Name: "a", Pattern: p}})
	require.NoError(t, err)

	p[0] = 0
	s.Tracks()[0].Pattern[2] = 0
	assert.Equal(t, "x.x.", s.Tracks()[0].Pattern.String())
}

func TestGrid(t *testing.T) {
	s := newTestSequencer(t)
	require.NoError(t, s.SetTrackMuted(1, true))

	g := s.Grid(6)
	require.Len(t, g, 2)
	assert.Equal(t, []bool{true, false, false, true, false, false}, g[0])
	assert.Equal(t, []bool{true, false, true, true, false, true}, g[1])
	assert.Len(t, s.Grid(-1)[0], 0)
}
