// Package compose generates multi-voice melodic phrases as ordered sequences
// of delta-stamped note events, ready to be handed to a file serializer.
package compose

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidParameter is returned when generation parameters are out of
// range.
var ErrInvalidParameter = errors.New("invalid parameter")

// EventKind distinguishes note-on from note-off events.
type EventKind int

const (
	NoteOn EventKind = iota
	NoteOff
)

// NoteEvent is a single timed event within a track. Delta is the number of
// ticks elapsed since the previous event in the same track, not an absolute
// time.
type NoteEvent struct {
	Kind     EventKind
	Pitch    int
	Velocity int
	Delta    int
}

// Track is one independent monophonic voice, an on/off event pair per note.
type Track []NoteEvent

// Composition is an ordered set of tracks sharing the same pitch set and
// timing parameters.
type Composition struct {
	// TicksPerQuarter is the tick value of a quarter note, shared by all
	// tracks.
	TicksPerQuarter int
	Tracks          []Track
}

// Params configures one composition.
type Params struct {
	// PitchSet is the ordered set of allowed pitch values, usually built by
	// the scale package.
	PitchSet []int
	// Tracks is the number of independent voices.
	Tracks int
	// NoteDeviance is the per-note probability in [0, 1] of a random ±1
	// semitone shift away from the pitch set.
	NoteDeviance float64
	// BaseTick is the tick value of a quarter note.
	BaseTick int
	// MaxLength is the length of the phrase in quarter notes.
	MaxLength int
	// RandomBeat randomizes note durations instead of using quarter notes
	// only.
	RandomBeat bool
	// Velocity is carried on every note event.
	Velocity int
	// Rests switches the track assembly to the rest-aware delta convention.
	Rests bool
}

func (p *Params) validate() error {
	switch {
	case len(p.PitchSet) == 0:
		return fmt.Errorf("compose: empty pitch set: %w", ErrInvalidParameter)
	case p.Tracks <= 0:
		return fmt.Errorf("compose: tracks must be positive, got %d: %w", p.Tracks, ErrInvalidParameter)
	case p.BaseTick < 4:
		// The duration vocabulary divides by 4, so smaller base ticks would
		// produce zero-length durations and a non-terminating timing loop.
		return fmt.Errorf("compose: base tick must be at least 4, got %d: %w", p.BaseTick, ErrInvalidParameter)
	case p.MaxLength <= 0:
		return fmt.Errorf("compose: max length must be positive, got %d: %w", p.MaxLength, ErrInvalidParameter)
	case p.NoteDeviance < 0 || p.NoteDeviance > 1:
		return fmt.Errorf("compose: note deviance must be in [0, 1], got %v: %w", p.NoteDeviance, ErrInvalidParameter)
	case p.Velocity < 0 || p.Velocity > 127:
		return fmt.Errorf("compose: velocity must be in [0, 127], got %d: %w", p.Velocity, ErrInvalidParameter)
	}
	// Deviance can shift any note one semitone past the set bounds; keep
	// that margin inside the MIDI pitch range so serialization can't wrap.
	margin := 0
	if p.NoteDeviance > 0 {
		margin = 1
	}
	for _, pitch := range p.PitchSet {
		if pitch-margin < 0 || pitch+margin > 127 {
			return fmt.Errorf("compose: pitch %d outside the MIDI range: %w", pitch, ErrInvalidParameter)
		}
	}
	return nil
}

// Build generates a composition with p.Tracks independent voices. All voices
// share the pitch set and scalar parameters, but timing and melody are
// re-rolled per voice from r.
func Build(r *rand.Rand, p Params) (*Composition, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	c := &Composition{
		TicksPerQuarter: p.BaseTick,
		Tracks:          make([]Track, 0, p.Tracks),
	}
	for i := 0; i < p.Tracks; i++ {
		timings := Timings(r, p.BaseTick, p.MaxLength, p.RandomBeat)
		melody := Melody(r, p.PitchSet, len(timings), p.NoteDeviance)
		c.Tracks = append(c.Tracks, Assemble(melody, timings, p.Velocity, p.Rests))
	}
	return c, nil
}
