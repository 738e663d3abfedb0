package sequencer

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-rhythm/rhythm/pattern"
)

var (
	errNoTracks      = errors.New("sequencer needs at least one track")
	errEmptyPattern  = errors.New("track pattern must not be empty")
	errAccentLength  = errors.New("track accents must match pattern length")
	errTrackOutRange = errors.New("track index out of range")
)

// Track is one voice of the sequencer.
type Track struct {
	Name    string
	Pattern pattern.Pattern
	// Accents is optional. When set it must have the same length as Pattern.
	Accents pattern.Pattern
	Muted   bool
}

// Trigger is emitted for every unmuted track with an onset at the ticked step.
type Trigger struct {
	Track  int
	Name   string
	Step   int
	Accent bool
}

// Sequencer advances a shared step counter over a set of tracks.
// It is not safe for concurrent use.
type Sequencer struct {
	cfg     Config
	tracks  []Track
	cycle   int
	step    int
	running bool
}

// New creates a stopped sequencer over tracks.
func New(tracks []Track, opts ...Option) (*Sequencer, error) {
	if len(tracks) == 0 {
		return nil, errNoTracks
	}
	s := &Sequencer{
		cfg:    ApplyOptions(opts...),
		tracks: make([]Track, len(tracks)),
	}
	for i, tr := range tracks {
		if err := validateTrack(tr); err != nil {
			return nil, fmt.Errorf("track %d (%s): %w", i, tr.Name, err)
		}
		s.tracks[i] = cloneTrack(tr)
	}
	s.updateCycle()
	s.step = s.startStep()
	return s, nil
}

// SetRunning starts or stops step triggering.
// Starting a stopped sequencer rewinds it to the start step.
func (s *Sequencer) SetRunning(running bool) {
	if running && !s.running {
		s.step = s.startStep()
	}
	s.running = running
}

// Running reports whether Tick advances the sequencer.
func (s *Sequencer) Running() bool { return s.running }

// Step returns the step the next Tick will trigger.
func (s *Sequencer) Step() int { return s.step }

// CycleLength returns the least common multiple of all track lengths.
func (s *Sequencer) CycleLength() int { return s.cycle }

// Tracks returns a copy of the current tracks.
func (s *Sequencer) Tracks() []Track {
	out := make([]Track, len(s.tracks))
	for i, tr := range s.tracks {
		out[i] = cloneTrack(tr)
	}
	return out
}

// Tick triggers the current step and advances the counter.
// A stopped sequencer returns nil and does not move.
func (s *Sequencer) Tick() []Trigger {
	if !s.running {
		return nil
	}
	triggers := s.triggersAt(s.step)
	s.advance()
	return triggers
}

// SetTrackMuted mutes or unmutes track i.
func (s *Sequencer) SetTrackMuted(i int, muted bool) error {
	if i < 0 || i >= len(s.tracks) {
		return fmt.Errorf("%w: %d", errTrackOutRange, i)
	}
	s.tracks[i].Muted = muted
	return nil
}

// SetTrackPattern replaces the pattern of track i and drops its accents.
// The cycle length is recomputed; the step counter keeps its position
// modulo the new cycle.
func (s *Sequencer) SetTrackPattern(i int, p pattern.Pattern) error {
	if i < 0 || i >= len(s.tracks) {
		return fmt.Errorf("%w: %d", errTrackOutRange, i)
	}
	if len(p) == 0 {
		return fmt.Errorf("track %d (%s): %w", i, s.tracks[i].Name, errEmptyPattern)
	}
	p, err := pattern.New(p)
	if err != nil {
		return fmt.Errorf("track %d (%s): %w", i, s.tracks[i].Name, err)
	}
	s.tracks[i].Pattern = p
	s.tracks[i].Accents = nil
	s.updateCycle()
	if s.cfg.Loop {
		s.step %= s.cycle
	}
	return nil
}

// Grid returns, for each track, whether it fires on each of the first steps
// steps of the cycle. Muting is ignored so callers can still draw muted lanes.
func (s *Sequencer) Grid(steps int) [][]bool {
	if steps < 0 {
		steps = 0
	}
	out := make([][]bool, len(s.tracks))
	for i, tr := range s.tracks {
		row := make([]bool, steps)
		for j := range row {
			row[j] = tr.Pattern.IsOnset(j)
		}
		out[i] = row
	}
	return out
}

func (s *Sequencer) triggersAt(step int) []Trigger {
	var out []Trigger
	for i, tr := range s.tracks {
		if tr.Muted || !tr.Pattern.IsOnset(step) {
			continue
		}
		out = append(out, Trigger{
			Track:  i,
			Name:   tr.Name,
			Step:   step,
			Accent: len(tr.Accents) > 0 && tr.Accents.IsOnset(step),
		})
	}
	return out
}

func (s *Sequencer) advance() {
	s.step++
	if s.cfg.Loop && s.step >= s.cycle {
		s.step = 0
	}
}

func (s *Sequencer) startStep() int {
	if s.cfg.Loop {
		return s.cfg.StartStep % s.cycle
	}
	return s.cfg.StartStep
}

func (s *Sequencer) updateCycle() {
	lengths := make([]int, len(s.tracks))
	for i, tr := range s.tracks {
		lengths[i] = tr.Pattern.Len()
	}
	s.cycle = pattern.LCM(lengths...)
}

func validateTrack(tr Track) error {
	if tr.Pattern.Len() == 0 {
		return errEmptyPattern
	}
	if _, err := pattern.New(tr.Pattern); err != nil {
		return err
	}
	if len(tr.Accents) == 0 {
		return nil
	}
	if len(tr.Accents) != len(tr.Pattern) {
		return fmt.Errorf("%w: %d != %d", errAccentLength, len(tr.Accents), len(tr.Pattern))
	}
	if _, err := pattern.New(tr.Accents); err != nil {
		return fmt.Errorf("accents: %w", err)
	}
	return nil
}

func cloneTrack(tr Track) Track {
	tr.Pattern = tr.Pattern.Clone()
	if tr.Accents != nil {
		tr.Accents = tr.Accents.Clone()
	}
	return tr
}
