// Package curve models the external control curves that drive a bake: a
// tempo (BPM) curve and an optional strength curve. The engine only ever
// sees the Curve interface, so the host can hand in anything that can be
// evaluated at a point in time.
package curve

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// ErrNoCurveData indicates a curve could not be built because fewer than
// two usable data points were supplied. Tempo curves are mandatory, so
// callers must surface this; strength curves should fall back to
// Constant(1) instead.
var ErrNoCurveData = errors.New("curve has fewer than two usable data points")

// Curve is an arbitrary control curve evaluated at a time in seconds.
type Curve interface {
	Evaluate(seconds float64) float64
}

// Constant is a curve with the same value everywhere. It is the standard
// substitute for an absent strength curve.
type Constant float64

func (c Constant) Evaluate(seconds float64) float64 { return float64(c) }

// Point is a single (time, value) control point. Time is in seconds.
type Point struct {
	Time  float64
	Value float64
}

// Points is a piecewise-linear curve fitted over a set of control points.
// Evaluation outside the fitted domain clamps to the boundary values.
type Points struct {
	pl  interp.PiecewiseLinear
	min float64
	max float64
	n   int
}

// NewPoints builds a piecewise-linear curve from control points. Points
// with negative time are discarded, the remainder is sorted by time and
// de-duplicated so that X is strictly increasing. Returns ErrNoCurveData
// when fewer than two points survive.
func NewPoints(pts []Point) (*Points, error) {
	clean := make([]Point, 0, len(pts))
	for _, p := range pts {
		if p.Time >= 0 {
			clean = append(clean, p)
		}
	}
	sort.Slice(clean, func(i, j int) bool { return clean[i].Time < clean[j].Time })

	xs := make([]float64, 0, len(clean))
	ys := make([]float64, 0, len(clean))
	lastT := -1.0
	for _, p := range clean {
		if p.Time > lastT {
			xs = append(xs, p.Time)
			ys = append(ys, p.Value)
			lastT = p.Time
		}
	}
	if len(xs) < 2 {
		return nil, ErrNoCurveData
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	return &Points{pl: pl, min: xs[0], max: xs[len(xs)-1], n: len(xs)}, nil
}

// Len returns the number of fitted control points.
func (p *Points) Len() int { return p.n }

func (p *Points) Evaluate(seconds float64) float64 {
	// constant extrapolation outside the authored domain
	if seconds < p.min {
		seconds = p.min
	} else if seconds > p.max {
		seconds = p.max
	}
	return p.pl.Predict(seconds)
}

// Minutes adapts a curve whose X axis was authored in minutes to the
// seconds-based Evaluate contract used everywhere else.
type Minutes struct {
	Curve Curve
}

func (m Minutes) Evaluate(seconds float64) float64 {
	return m.Curve.Evaluate(seconds / 60.0)
}

// Sample is one evaluated curve value at an output frame.
type Sample struct {
	Frame int
	Value float64
}

// SampleRange evaluates c at every integer frame in [frameStart, frameEnd],
// converting frame indices to seconds at the given frame rate. An inverted
// range produces an empty slice.
func SampleRange(c Curve, frameStart, frameEnd int, fps float64) []Sample {
	if frameEnd < frameStart {
		return nil
	}
	out := make([]Sample, 0, frameEnd-frameStart+1)
	for frame := frameStart; frame <= frameEnd; frame++ {
		t := float64(frame) / fps
		out = append(out, Sample{Frame: frame, Value: c.Evaluate(t)})
	}
	return out
}

// SampleRate is SampleRange with values clamped to be non-negative. A
// negative BPM pauses playback, it never runs backward.
func SampleRate(c Curve, frameStart, frameEnd int, fps float64) []Sample {
	out := SampleRange(c, frameStart, frameEnd, fps)
	for i := range out {
		if out[i].Value < 0 {
			out[i].Value = 0
		}
	}
	return out
}
