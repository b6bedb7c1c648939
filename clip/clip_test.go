package clip

import (
	"math"
	"testing"

	"github.com/fogleman/ease"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.25, Wrap(0.25))
	assert.Equal(t, 0.25, Wrap(1.25))
	assert.Equal(t, 0.75, Wrap(-0.25))
	assert.Equal(t, 0.0, Wrap(3.0))
}

func TestWaveforms(t *testing.T) {
	t.Parallel()

	saw := Sawtooth(false)
	assert.Equal(t, 0.0, saw.ValueAt(0))
	assert.Equal(t, 0.5, saw.ValueAt(0.5))
	// one period later the value repeats
	assert.Equal(t, 0.5, saw.ValueAt(1.5))

	sawDown := Sawtooth(true)
	assert.Equal(t, 1.0, sawDown.ValueAt(0))
	assert.Equal(t, 0.5, sawDown.ValueAt(0.5))

	sin := Sine()
	assert.InDelta(t, 0.0, sin.ValueAt(0), 1e-12)
	assert.InDelta(t, 1.0, sin.ValueAt(0.25), 1e-12)
	assert.InDelta(t, -1.0, sin.ValueAt(0.75), 1e-12)
}

func TestKeysLinear(t *testing.T) {
	t.Parallel()

	ch := NewKeys(
		Key{T: 0, Value: 0},
		Key{T: 0.5, Value: 1},
	)

	assert.Equal(t, 0.0, ch.ValueAt(0))
	assert.Equal(t, 0.5, ch.ValueAt(0.25))
	assert.Equal(t, 1.0, ch.ValueAt(0.5))
	// wrapped segment back to the first key
	assert.Equal(t, 0.5, ch.ValueAt(0.75))
}

func TestKeysEased(t *testing.T) {
	t.Parallel()

	ch := NewKeys(
		Key{T: 0, Value: 0, Ease: ease.InQuad},
		Key{T: 0.5, Value: 1},
	)

	// halfway through the segment the eased value lags the linear one
	assert.InDelta(t, 0.25, ch.ValueAt(0.25), 1e-12)
	assert.Equal(t, 1.0, ch.ValueAt(0.5))
}

func TestKeysDegenerate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, NewKeys().ValueAt(0.3))
	assert.Equal(t, 7.0, NewKeys(Key{T: 0.2, Value: 7}).ValueAt(0.9))
}

func TestKeysUnsortedInput(t *testing.T) {
	t.Parallel()

	ch := NewKeys(
		Key{T: 0.5, Value: 1},
		Key{T: 0, Value: 0},
	)
	assert.Equal(t, 0.5, ch.ValueAt(0.25))
}

func TestClipChannels(t *testing.T) {
	t.Parallel()

	c := New("walk").
		Set("pos_x", Sawtooth(false)).
		Set("pos_y", Sine())

	assert.Equal(t, "walk", c.Name())
	require.Equal(t, []string{"pos_x", "pos_y"}, c.Channels())

	ch, ok := c.Channel("pos_x")
	require.True(t, ok)
	assert.Equal(t, 0.5, ch.ValueAt(0.5))

	_, ok = c.Channel("missing")
	assert.False(t, ok)

	// replacing a channel keeps the original order
	c.Set("pos_x", Sawtooth(true))
	assert.Equal(t, []string{"pos_x", "pos_y"}, c.Channels())
	ch, _ = c.Channel("pos_x")
	assert.InDelta(t, 1.0, ch.ValueAt(0), 1e-12)
}

func TestSineIsPeriodic(t *testing.T) {
	t.Parallel()

	sin := Sine()
	for _, tt := range []float64{0.1, 0.4, 0.9} {
		assert.InDelta(t, sin.ValueAt(tt), sin.ValueAt(tt+2), 1e-12)
	}
	assert.InDelta(t, math.Sin(2*math.Pi*0.1), sin.ValueAt(0.1), 1e-12)
}
