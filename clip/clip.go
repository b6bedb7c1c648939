// Package clip abstracts source animation clips. A clip exposes a set of
// named channels, each a function of normalized time in [0,1) with
// implicit period-1 wraparound. The bake engine never inspects concrete
// host types, it only talks to Source and Channel.
package clip

import "math"

// Channel is a single named animation channel of a clip. ValueAt must be
// defined for normalized time in [0,1); callers may pass any t and get
// the wrapped value.
type Channel interface {
	ValueAt(t float64) float64
}

// Source is a named clip: a set of named channels. Channels must return
// names in a stable order.
type Source interface {
	Name() string
	Channels() []string
	Channel(name string) (Channel, bool)
}

// Wrap maps any time onto the clip period [0,1).
func Wrap(t float64) float64 {
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	return t
}

// Func adapts a plain function to a Channel, wrapping time first.
type Func func(t float64) float64

func (f Func) ValueAt(t float64) float64 { return f(Wrap(t)) }

// Sine is a full sine cycle per loop.
func Sine() Channel {
	return Func(func(t float64) float64 {
		return math.Sin(2 * math.Pi * t)
	})
}

// Sawtooth is a linear ramp per loop, rising by default or falling when
// down is set.
func Sawtooth(down bool) Channel {
	if down {
		return Func(func(t float64) float64 { return 1 - t })
	}
	return Func(func(t float64) float64 { return t })
}
