// Package scale builds the ordered sets of allowed pitch values that
// melodies are sampled from, starting from a named interval pattern and a
// root pitch.
package scale

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownScale is returned when a scale name is not in the registry.
	ErrUnknownScale = errors.New("unknown scale")
	// ErrUnknownKey is returned when a key name is not in the registry.
	ErrUnknownKey = errors.New("unknown key")
)

// patterns maps scale names to semitone steps. Each pattern spans one octave.
var patterns = map[string][]int{
	"major":      {2, 2, 1, 2, 2, 2, 1},
	"minor":      {2, 1, 2, 2, 1, 2, 2},
	"chrom":      {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	"ionian":     {2, 2, 1, 2, 2, 2, 1},
	"dorian":     {2, 1, 2, 2, 2, 1, 2},
	"phrygian":   {1, 2, 2, 2, 1, 2, 2},
	"lydian":     {2, 2, 2, 1, 2, 2, 1},
	"mixolydian": {2, 2, 1, 2, 2, 1, 2},
	"aeolian":    {2, 1, 2, 2, 1, 2, 2},
	"locrian":    {1, 2, 2, 1, 2, 2, 2},
}

// keys maps note names to absolute pitch numbers in the middle octave
// (C = 60).
var keys = map[string]int{
	"c":  60,
	"c#": 61,
	"d":  62,
	"d#": 63,
	"e":  64,
	"f":  65,
	"f#": 66,
	"g":  67,
	"g#": 68,
	"a":  69,
	"a#": 70,
	"b":  71,
}

// Pattern returns the semitone steps of a named scale. The lookup is
// case-insensitive.
func Pattern(name string) ([]int, error) {
	steps, ok := patterns[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("scale: %q: %w", name, ErrUnknownScale)
	}
	return steps, nil
}

// Key returns the absolute root pitch of a named key, e.g. "C" or "f#". The
// lookup is case-insensitive.
func Key(name string) (int, error) {
	pitch, ok := keys[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("scale: %q: %w", name, ErrUnknownKey)
	}
	return pitch, nil
}

// Build resolves a scale name and returns the ordered pitch set obtained by
// running its pattern from the root, shifted by octaveOffset octaves and
// replicated upward over octaveRange octaves.
//
// Each octave copy drops its top note, since the next copy starts on the
// same pitch; the overall top note closes the sequence. An octaveRange below
// 1 is treated as 1.
func Build(name string, root, octaveOffset, octaveRange int) ([]int, error) {
	steps, err := Pattern(name)
	if err != nil {
		return nil, err
	}
	base := make([]int, 0, len(steps)+1)
	pitch := root + 12*octaveOffset
	base = append(base, pitch)
	for _, step := range steps {
		pitch += step
		base = append(base, pitch)
	}
	if octaveRange < 1 {
		octaveRange = 1
	}
	set := make([]int, 0, octaveRange*len(steps)+1)
	for k := 0; k < octaveRange; k++ {
		for _, p := range base[:len(base)-1] {
			set = append(set, p+12*k)
		}
	}
	set = append(set, base[len(base)-1]+12*(octaveRange-1))
	return set, nil
}
