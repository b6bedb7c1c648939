package bake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfexplode/loopbake/curve"
)

func constantRate(bpm float64, frames int) []curve.Sample {
	out := make([]curve.Sample, frames)
	for i := range out {
		out[i] = curve.Sample{Frame: i, Value: bpm}
	}
	return out
}

func TestIntegrateStartsAtZero(t *testing.T) {
	t.Parallel()

	track := Integrate(constantRate(120, 24), 24, 1)
	require.Len(t, track, 24)
	assert.Equal(t, 0.0, track[0].Phase)
	assert.True(t, track[0].NewLoop)
}

func TestIntegrateLeftRectangleBoundaries(t *testing.T) {
	t.Parallel()

	// 120 BPM at 24 fps advances phase by 1/12 per frame, so a new loop
	// starts every 12 frames
	track := Integrate(constantRate(120, 240), 24, 1)
	require.Len(t, track, 240)

	var boundaries []int
	for _, p := range track {
		if p.NewLoop {
			boundaries = append(boundaries, p.Frame)
		}
	}
	require.GreaterOrEqual(t, len(boundaries), 3)
	assert.Equal(t, 0, boundaries[0])
	assert.Equal(t, 12, boundaries[1])
	assert.Equal(t, 24, boundaries[2])
	assert.InDelta(t, 0.5, track[6].Phase, 1e-9)
	assert.InDelta(t, 1.0, track[12].Phase, 1e-9)
}

func TestIntegrateMonotonicWithNegativeRates(t *testing.T) {
	t.Parallel()

	rate := []curve.Sample{
		{Frame: 0, Value: 120},
		{Frame: 1, Value: -500},
		{Frame: 2, Value: 0},
		{Frame: 3, Value: 60},
		{Frame: 4, Value: -1},
	}
	track := Integrate(rate, 24, 1)
	for i := 1; i < len(track); i++ {
		assert.GreaterOrEqual(t, track[i].Phase, track[i-1].Phase)
	}

	// a paused stretch keeps the phase flat
	assert.Equal(t, track[2].Phase, track[1].Phase)
	assert.Equal(t, track[3].Phase, track[2].Phase)
}

func TestIntegrateDegenerateInput(t *testing.T) {
	t.Parallel()

	track := Integrate(nil, 24, 1)
	require.Len(t, track, 1)
	assert.Equal(t, 0.0, track[0].Phase)
	assert.False(t, track[0].NewLoop)
	assert.Equal(t, 0, track.Loops())

	// a single-frame range has no interval to integrate over
	track = Integrate(constantRate(120, 1), 24, 1)
	require.Len(t, track, 1)
	assert.False(t, track[0].NewLoop)
}

func TestIntegrateSpeedScale(t *testing.T) {
	t.Parallel()

	// doubling the base speed halves the loop length
	track := Integrate(constantRate(120, 240), 24, 2)
	var boundaries []int
	for _, p := range track {
		if p.NewLoop {
			boundaries = append(boundaries, p.Frame)
		}
	}
	require.GreaterOrEqual(t, len(boundaries), 2)
	assert.Equal(t, 6, boundaries[1])
}

func TestTrackLoops(t *testing.T) {
	t.Parallel()

	track := Integrate(constantRate(120, 240), 24, 1)
	assert.Equal(t, 20, track.Loops())
}
