package bake

import (
	"sort"

	"github.com/gruntwork-io/go-commons/errors"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/wolfexplode/loopbake/logger"
)

// ChannelWriter receives the baked keys for one channel in a single
// bulk write.
type ChannelWriter interface {
	SetKeyframes(frames []int, values []float64) error
}

// Target is the destination of a bake. Channel must create the underlying
// animation container when it does not exist yet; a target never silently
// drops data.
type Target interface {
	Channel(name string) (ChannelWriter, error)
}

// Commit applies a Result to a target as one step. When tolerance is
// positive, each channel's key series is simplified independently before
// it is written; the raw samples in the Result are left untouched.
// Returns the number of keys written and the number removed by
// simplification.
func Commit(res *Result, target Target, tolerance float64) (written, removed int, err error) {
	log := logger.GetProjectLogger()

	names := make([]string, 0, len(res.Channels))
	for name := range res.Channels {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		keys := res.Channels[name]
		if tolerance > 0 {
			simplified := Simplify(keys, tolerance)
			removed += len(keys) - len(simplified)
			keys = simplified
		}
		if len(keys) == 0 {
			continue
		}

		cw, err := target.Channel(name)
		if err != nil {
			return written, removed, errors.WithStackTrace(err)
		}

		frames := make([]int, len(keys))
		values := make([]float64, len(keys))
		for i, k := range keys {
			frames[i] = k.Frame
			values[i] = k.Value
		}
		if err := cw.SetKeyframes(frames, values); err != nil {
			return written, removed, errors.WithStackTrace(err)
		}
		written += len(keys)
	}

	if removed > 0 {
		log.Debugf("simplified away %d redundant keyframes", removed)
	}
	return written, removed, nil
}

// Simplify drops interior keys whose value sits within tolerance of the
// straight line between their immediate neighbors. Endpoints always
// survive. A tolerance of zero returns the input unchanged.
func Simplify(keys []Key, tolerance float64) []Key {
	if tolerance <= 0 || len(keys) <= 2 {
		return keys
	}

	out := make([]Key, 0, len(keys))
	out = append(out, keys[0])
	for i := 1; i < len(keys)-1; i++ {
		prev, cur, next := keys[i-1], keys[i], keys[i+1]
		span := float64(next.Frame - prev.Frame)
		if span == 0 {
			out = append(out, cur)
			continue
		}
		t := float64(cur.Frame-prev.Frame) / span
		linear := prev.Value + t*(next.Value-prev.Value)
		if !scalar.EqualWithinAbs(cur.Value, linear, tolerance) {
			out = append(out, cur)
		}
	}
	out = append(out, keys[len(keys)-1])
	return out
}

// IsConstant reports whether a key series has effectively no variation.
func IsConstant(keys []Key, tolerance float64) bool {
	if len(keys) <= 1 {
		return true
	}
	first := keys[0].Value
	for _, k := range keys[1:] {
		if !scalar.EqualWithinAbs(k.Value, first, tolerance) {
			return false
		}
	}
	return true
}

// MemoryChannel is the in-memory keyframe container of a MemoryTarget.
type MemoryChannel struct {
	Frames []int
	Values []float64
}

func (c *MemoryChannel) SetKeyframes(frames []int, values []float64) error {
	c.Frames = append([]int(nil), frames...)
	c.Values = append([]float64(nil), values...)
	return nil
}

// MemoryTarget is an in-memory Target. It backs the demo binary and the
// tests; host adapters implement Target against their own scene data.
type MemoryTarget struct {
	Channels map[string]*MemoryChannel
}

func NewMemoryTarget() *MemoryTarget {
	return &MemoryTarget{Channels: make(map[string]*MemoryChannel)}
}

func (t *MemoryTarget) Channel(name string) (ChannelWriter, error) {
	ch, ok := t.Channels[name]
	if !ok {
		ch = &MemoryChannel{}
		t.Channels[name] = ch
	}
	return ch, nil
}
