package bake

import (
	"math"

	"github.com/wolfexplode/loopbake/curve"
)

// PhasePoint is the accumulated phase at one output frame. The integer
// part of Phase is the loop index, the fractional part the normalized
// position within that loop. NewLoop is set on the first frame and
// whenever the loop index advances.
type PhasePoint struct {
	Frame   int
	Phase   float64
	NewLoop bool
}

// Track is the phase signal over the whole output range. Phase is
// monotonic non-decreasing; rate samples are clamped at zero before
// integration so a negative tempo pauses rather than rewinds.
type Track []PhasePoint

// phaseEps absorbs accumulated summation rounding so that a tempo which
// divides the frame rate exactly crosses loop boundaries on exact frames.
const phaseEps = 1e-9

// LoopIndex returns the loop index a phase value falls into.
func LoopIndex(phase float64) int {
	return int(math.Floor(phase + phaseEps))
}

// Integrate accumulates the sampled tempo into a phase track using the
// left-rectangle rule: the phase at a frame excludes that frame's own
// rate contribution, so the track starts at exactly zero and a constant
// 120 BPM at 24 fps crosses loop boundaries at frames 0, 12, 24, ...
//
// A single rate sample carries no interval to integrate over, so the
// track degenerates to one zero-phase point with no loop entered.
func Integrate(rate []curve.Sample, fps, speedScale float64) Track {
	if len(rate) == 0 {
		return Track{{Frame: 0, Phase: 0, NewLoop: false}}
	}
	if len(rate) == 1 {
		return Track{{Frame: rate[0].Frame, Phase: 0, NewLoop: false}}
	}

	track := make(Track, 0, len(rate))
	phase := 0.0
	dt := 1.0 / fps
	prevLoop := -1

	for _, s := range rate {
		loop := LoopIndex(phase)
		track = append(track, PhasePoint{
			Frame:   s.Frame,
			Phase:   phase,
			NewLoop: loop > prevLoop,
		})
		prevLoop = loop

		bpm := s.Value
		if bpm < 0 {
			bpm = 0
		}
		phase += bpm / 60.0 * dt * speedScale
	}
	return track
}

// Loops counts the loops entered over the track.
func (t Track) Loops() int {
	n := 0
	for _, p := range t {
		if p.NewLoop {
			n++
		}
	}
	return n
}
