// Package midifile serializes compositions to Standard MIDI Files.
package midifile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/igolaizola/starling/pkg/compose"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Write serializes a composition to path, one track chunk per voice with the
// composition's quarter note tick value as time resolution. Channels are
// assigned per track index, wrapping at 16.
//
// The file is written to a temporary sibling first and renamed into place, so
// a failed write never leaves a partial file at path.
func Write(path string, c *compose.Composition) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(c.TicksPerQuarter)
	for i, track := range c.Tracks {
		ch := uint8(i % 16)
		var tr smf.Track
		for _, ev := range track {
			var msg midi.Message
			switch ev.Kind {
			case compose.NoteOn:
				msg = midi.NoteOn(ch, uint8(ev.Pitch), uint8(ev.Velocity))
			case compose.NoteOff:
				msg = midi.NoteOffVelocity(ch, uint8(ev.Pitch), uint8(ev.Velocity))
			}
			tr.Add(uint32(ev.Delta), msg)
		}
		tr.Close(0)
		if err := s.Add(tr); err != nil {
			return fmt.Errorf("midifile: couldn't add track %d: %w", i, err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("midifile: couldn't create temp file: %w", err)
	}
	if _, err := s.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("midifile: couldn't write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("midifile: couldn't close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("midifile: couldn't rename temp file to %s: %w", path, err)
	}
	return nil
}
