package compose

import "math/rand"

// Melody samples n pitches uniformly (with replacement) from pitchSet, then
// shifts each one by ±1 semitone with probability deviance. Shifted pitches
// may fall outside the pitch set; no bound checking is applied.
func Melody(r *rand.Rand, pitchSet []int, n int, deviance float64) []int {
	melody := make([]int, n)
	for i := range melody {
		pitch := pitchSet[r.Intn(len(pitchSet))]
		// The uniform draw is consumed unconditionally so the rand stream
		// stays position-stable across deviance values.
		u := r.Float64()
		if deviance > 0 && u <= deviance {
			if r.Intn(2) == 0 {
				pitch--
			} else {
				pitch++
			}
		}
		melody[i] = pitch
	}
	return melody
}
