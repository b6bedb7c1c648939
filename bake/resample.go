package bake

import (
	"context"

	"github.com/wolfexplode/loopbake/clip"
	"github.com/wolfexplode/loopbake/curve"
)

// Key is one baked keyframe.
type Key struct {
	Frame int
	Value float64
}

// Preview is the visualization series computed alongside every bake:
// normalized loop phase, effective playback rate in loops per second, and
// the active slot index, one value per output frame.
type Preview struct {
	Frames []int
	Phase  []float64
	Rate   []float64
	Slot   []float64
}

// Result is the pure outcome of the resampling pass, before anything is
// committed to a target.
type Result struct {
	// Channels maps channel name to its baked keys in frame order. A
	// channel only has keys for frames whose assigned clip defines it.
	Channels map[string][]Key

	// Assignments is the loop plan in loop order.
	Assignments []Assignment

	// Preview is set when the bake requested it.
	Preview *Preview
}

// resample walks the output range in strictly increasing frame order and
// samples every channel of each frame's assigned clip. It returns the
// result truncated to the frames processed before a cancellation, the
// number of frames processed, the cancelled flag and the set of channels
// skipped because the assigned clip lacks them.
func resample(
	ctx context.Context,
	cfg *Config,
	index map[string]clip.Source,
	track Track,
	strength []curve.Sample,
	rate []curve.Sample,
	pl *planner,
) (*Result, int, bool, map[string]struct{}) {
	// every channel present in at least one referenced clip
	names := channelUnion(cfg, index)

	res := &Result{
		Channels: make(map[string][]Key, len(names)),
		Preview: &Preview{
			Frames: make([]int, 0, len(track)),
			Phase:  make([]float64, 0, len(track)),
			Rate:   make([]float64, 0, len(track)),
			Slot:   make([]float64, 0, len(track)),
		},
	}

	skipped := make(map[string]struct{})
	sensitive := cfg.IntensitySensitive
	every := cfg.yieldEvery()

	var (
		asg       Assignment
		haveLoop  bool
		cancelled bool
		processed int
	)

	for i, pt := range track {
		if i%every == 0 {
			if ctx.Err() != nil || (cfg.Yield != nil && !cfg.Yield()) {
				cancelled = true
				break
			}
		}

		if pt.NewLoop {
			asg = pl.next(LoopIndex(pt.Phase))
			haveLoop = true
		}

		effectiveRate := 0.0
		if i < len(rate) {
			effectiveRate = rate[i].Value / 60.0 * cfg.SpeedScale
		}

		if !haveLoop {
			// degenerate track: no loop was ever entered, so no channel
			// receives keys, but the preview series still covers the frame
			res.Preview.Frames = append(res.Preview.Frames, pt.Frame)
			res.Preview.Phase = append(res.Preview.Phase, 0)
			res.Preview.Rate = append(res.Preview.Rate, effectiveRate)
			res.Preview.Slot = append(res.Preview.Slot, 0)
			processed++
			continue
		}

		pos := pt.Phase - float64(LoopIndex(pt.Phase))
		if pos < 0 {
			pos = 0
		}
		clipTime := clip.Wrap(pos * asg.Speed)
		src := index[asg.Clip]

		scale := 1.0
		if i < len(strength) {
			scale = strength[i].Value
		}
		scale *= asg.Intensity

		for _, name := range names {
			ch, ok := src.Channel(name)
			if !ok {
				skipped[name] = struct{}{}
				continue
			}
			value := ch.ValueAt(clipTime)
			if sensitive == nil || sensitive(name) {
				value *= scale
			}
			res.Channels[name] = append(res.Channels[name], Key{Frame: pt.Frame, Value: value})
		}

		res.Preview.Frames = append(res.Preview.Frames, pt.Frame)
		res.Preview.Phase = append(res.Preview.Phase, pos)
		res.Preview.Rate = append(res.Preview.Rate, effectiveRate)
		res.Preview.Slot = append(res.Preview.Slot, float64(asg.Slot))
		processed++
	}

	res.Assignments = pl.assignments()
	if !cfg.Preview {
		res.Preview = nil
	}
	return res, processed, cancelled, skipped
}

// channelUnion collects every channel name across the referenced clips,
// in first-seen order.
func channelUnion(cfg *Config, index map[string]clip.Source) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, s := range cfg.slots() {
		src := index[s.Clip]
		for _, name := range src.Channels() {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	return names
}
