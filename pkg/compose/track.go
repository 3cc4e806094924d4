package compose

// Assemble combines a melody and its timing sequence into one track of
// delta-stamped on/off event pairs. The slices must have the same length.
//
// Without rests every on event carries a delta of 1 tick and its off event a
// delta of duration+1, a deliberately simplified near-legato convention.
// With rests a cursor starts at 0: the on event carries the cursor, the off
// event cursor+duration, and the cursor is then reset to the note's duration
// (not accumulated), so each note starts one previous-note-length after the
// previous one.
func Assemble(melody, timings []int, velocity int, rests bool) Track {
	track := make(Track, 0, 2*len(timings))
	t := 0
	for i, pitch := range melody {
		duration := timings[i]
		on, off := 1, duration+1
		if rests {
			on, off = t, t+duration
			t = duration
		}
		track = append(track,
			NoteEvent{Kind: NoteOn, Pitch: pitch, Velocity: velocity, Delta: on},
			NoteEvent{Kind: NoteOff, Pitch: pitch, Velocity: velocity, Delta: off},
		)
	}
	return track
}
