package bake

import "math/rand"

// Assignment fixes the playback decisions for one loop of the source
// animation: which slot plays, how strongly, and how fast the clip runs
// inside the loop. An assignment is created the first time a frame enters
// its loop and never recomputed.
type Assignment struct {
	Loop      int
	Slot      int
	Clip      string
	Intensity float64
	Speed     float64
}

// planner hands out per-loop assignments from a single seeded random
// stream. Loops are visited strictly in increasing order during the
// forward bake pass, and the stream advances a fixed number of draws per
// loop so results do not depend on the output frame rate.
type planner struct {
	rng   *rand.Rand
	multi bool
	slots []Slot
	total float64

	intensityJitter float64
	speedJitter     float64

	assigns []Assignment
}

func newPlanner(cfg *Config) *planner {
	slots := cfg.slots()
	total := 0.0
	for _, s := range slots {
		total += s.Weight
	}
	return &planner{
		rng:             rand.New(rand.NewSource(cfg.Seed)),
		multi:           cfg.Mode == ModeMulti,
		slots:           slots,
		total:           total,
		intensityJitter: cfg.IntensityJitter,
		speedJitter:     cfg.SpeedJitter,
	}
}

// next creates the assignment for a newly entered loop. The draw order is
// fixed: slot (multi mode only), then intensity, then speed. Intensity
// and speed always consume a draw, even with a zero jitter range, so the
// per-loop stream advance stays constant.
func (p *planner) next(loop int) Assignment {
	slotIdx := 0
	if p.multi {
		slotIdx = p.pickSlot()
	}

	a := Assignment{
		Loop:      loop,
		Slot:      slotIdx,
		Clip:      p.slots[slotIdx].Clip,
		Intensity: 1 + p.uniform(p.intensityJitter),
		Speed:     1 + p.uniform(p.speedJitter),
	}
	p.assigns = append(p.assigns, a)
	return a
}

// pickSlot draws a slot index with probability proportional to weight.
func (p *planner) pickSlot() int {
	r := p.rng.Float64() * p.total
	cumulative := 0.0
	for i, s := range p.slots {
		cumulative += s.Weight
		if r <= cumulative {
			return i
		}
	}
	return len(p.slots) - 1
}

// uniform draws from [-r, +r].
func (p *planner) uniform(r float64) float64 {
	return (p.rng.Float64()*2 - 1) * r
}

// assignments returns every assignment created so far, in loop order.
func (p *planner) assignments() []Assignment {
	out := make([]Assignment, len(p.assigns))
	copy(out, p.assigns)
	return out
}
