// Package bake turns a tempo curve, an optional strength curve and one or
// more source clips into a fixed-frame-rate baked animation. Playback
// rate, per-loop intensity and the choice of clip vary over the output
// range, driven by sampled curve data and a seeded random stream.
package bake

import (
	"fmt"

	"github.com/wolfexplode/loopbake/clip"
	"github.com/wolfexplode/loopbake/curve"
)

// Mode selects how the source clip for each loop is chosen.
type Mode int

const (
	// ModeSingle always plays the configured Clip.
	ModeSingle Mode = iota

	// ModeMulti draws a clip per loop from the weighted Slots list.
	ModeMulti
)

// Slot is one candidate clip for weighted selection in multi mode.
// Weights are relative likelihoods and need not sum to 100.
type Slot struct {
	Clip   string
	Weight float64
}

// Config describes one bake invocation. Construct with NewConfig to get
// usable defaults.
type Config struct {
	// Rate is the tempo curve in BPM over seconds. Mandatory; the engine
	// never fabricates a default tempo.
	Rate curve.Curve

	// Strength is a unitless multiplier curve over seconds. Optional;
	// nil falls back to a constant 1.0.
	Strength curve.Curve

	// Output frame range, inclusive on both ends.
	FrameStart int
	FrameEnd   int

	// FPS is the output frame rate in frames per second.
	FPS float64

	// SpeedScale is the base playback speed multiplier applied on top of
	// the tempo curve.
	SpeedScale float64

	Mode  Mode
	Clip  string // single mode source clip
	Slots []Slot // multi mode candidates

	// Seed keys the per-bake random stream. Equal seeds with equal
	// configuration reproduce assignments exactly.
	Seed int64

	// IntensityJitter r draws a per-loop intensity of 1 ± r.
	IntensityJitter float64

	// SpeedJitter r draws a per-loop within-loop speed of 1 ± r. It does
	// not move loop boundaries; the tempo curve alone sets the cadence.
	SpeedJitter float64

	// IntensitySensitive reports whether a channel is scaled by the
	// per-loop intensity and the strength curve. Nil treats every
	// channel as sensitive.
	IntensitySensitive func(channel string) bool

	// Preview attaches the phase/rate/slot preview series to the Result.
	Preview bool

	// Simplify is the keyframe reduction tolerance. Zero disables the
	// reduction pass.
	Simplify float64

	// YieldEvery is the frame cadence of cooperative cancellation
	// checks.
	YieldEvery int

	// Yield is called at the YieldEvery cadence; returning false cancels
	// the bake cleanly. Nil never cancels.
	Yield func() bool
}

// NewConfig returns a Config with the defaults a plain bake expects.
func NewConfig(rate curve.Curve) Config {
	return Config{
		Rate:       rate,
		FPS:        24,
		SpeedScale: 1,
		YieldEvery: 64,
	}
}

// ConfigError reports an invalid Config field. Configuration errors are
// fatal and surface before any sampling or target writes.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid bake config: %s: %s", e.Field, e.Reason)
}

// Validate checks the configuration against the available clips.
func (c *Config) Validate(clips []clip.Source) error {
	index := indexClips(clips)
	return c.validate(index)
}

func (c *Config) validate(index map[string]clip.Source) error {
	if c.Rate == nil {
		return &ConfigError{Field: "Rate", Reason: "tempo curve is required"}
	}
	if c.FrameEnd < c.FrameStart {
		return &ConfigError{Field: "FrameEnd", Reason: "frame range is inverted"}
	}
	if c.FPS <= 0 {
		return &ConfigError{Field: "FPS", Reason: "frame rate must be positive"}
	}
	if c.SpeedScale <= 0 {
		return &ConfigError{Field: "SpeedScale", Reason: "base speed must be positive"}
	}
	if c.IntensityJitter < 0 {
		return &ConfigError{Field: "IntensityJitter", Reason: "jitter range must not be negative"}
	}
	if c.SpeedJitter < 0 {
		return &ConfigError{Field: "SpeedJitter", Reason: "jitter range must not be negative"}
	}
	if c.Simplify < 0 {
		return &ConfigError{Field: "Simplify", Reason: "tolerance must not be negative"}
	}

	switch c.Mode {
	case ModeSingle:
		if _, ok := index[c.Clip]; !ok {
			return &ConfigError{Field: "Clip", Reason: fmt.Sprintf("clip %q not found", c.Clip)}
		}
	case ModeMulti:
		if len(c.Slots) == 0 {
			return &ConfigError{Field: "Slots", Reason: "multi mode needs at least one slot"}
		}
		total := 0.0
		for i, s := range c.Slots {
			if s.Weight < 0 {
				return &ConfigError{Field: "Slots", Reason: fmt.Sprintf("slot %d has a negative weight", i)}
			}
			if _, ok := index[s.Clip]; !ok {
				return &ConfigError{Field: "Slots", Reason: fmt.Sprintf("clip %q not found", s.Clip)}
			}
			total += s.Weight
		}
		if total <= 0 {
			return &ConfigError{Field: "Slots", Reason: "total weight must be greater than zero"}
		}
	default:
		return &ConfigError{Field: "Mode", Reason: "unknown mode"}
	}
	return nil
}

// slots resolves the candidate slots regardless of mode, so loop planning
// can treat single mode as a one-entry slot list.
func (c *Config) slots() []Slot {
	if c.Mode == ModeSingle {
		return []Slot{{Clip: c.Clip, Weight: 100}}
	}
	return c.Slots
}

func indexClips(clips []clip.Source) map[string]clip.Source {
	index := make(map[string]clip.Source, len(clips))
	for _, s := range clips {
		index[s.Name()] = s
	}
	return index
}

func (c *Config) yieldEvery() int {
	if c.YieldEvery <= 0 {
		return 64
	}
	return c.YieldEvery
}
