package compose

import "math/rand"

// vocabulary returns the five note durations available for a given quarter
// note tick value, from sixteenth to whole note.
func vocabulary(baseTick int) [5]int {
	return [5]int{baseTick / 4, baseTick / 2, baseTick, baseTick * 2, baseTick * 4}
}

// Timings produces the sequence of note durations for one voice.
//
// Without randomization it returns exactly maxLength quarter notes. With
// randomization it samples durations uniformly from the vocabulary until the
// total budget of baseTick×maxLength ticks is used up; the last duration may
// overshoot the budget and is kept as sampled.
func Timings(r *rand.Rand, baseTick, maxLength int, randomize bool) []int {
	if !randomize {
		timings := make([]int, maxLength)
		for i := range timings {
			timings[i] = baseTick
		}
		return timings
	}
	vocab := vocabulary(baseTick)
	remaining := baseTick * maxLength
	var timings []int
	for remaining > 0 {
		d := vocab[r.Intn(len(vocab))]
		timings = append(timings, d)
		remaining -= d
	}
	return timings
}
