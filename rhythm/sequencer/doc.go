// Package sequencer steps several rhythm patterns in lockstep.
//
// A [Sequencer] owns a step counter and a set of tracks. Each [Sequencer.Tick]
// reports which tracks have an onset at the current step and then advances.
// Tracks may have different lengths; the counter cycles over the least common
// multiple of all track lengths, so polyrhythms line up again at the end of
// every cycle.
//
// The sequencer produces trigger events only. Turning those events into sound
// or pictures, and deciding when to tick, is up to the caller.
package sequencer
