package bake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfexplode/loopbake/clip"
	"github.com/wolfexplode/loopbake/curve"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	clips := []clip.Source{clip.New("walk").Set("v", clip.Sawtooth(false))}

	valid := func() Config {
		cfg := NewConfig(curve.Constant(120))
		cfg.FrameEnd = 100
		cfg.Clip = "walk"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing tempo curve", func(c *Config) { c.Rate = nil }, "Rate"},
		{"inverted range", func(c *Config) { c.FrameEnd = -1 }, "FrameEnd"},
		{"zero fps", func(c *Config) { c.FPS = 0 }, "FPS"},
		{"zero speed scale", func(c *Config) { c.SpeedScale = 0 }, "SpeedScale"},
		{"negative intensity jitter", func(c *Config) { c.IntensityJitter = -0.1 }, "IntensityJitter"},
		{"negative speed jitter", func(c *Config) { c.SpeedJitter = -0.1 }, "SpeedJitter"},
		{"negative tolerance", func(c *Config) { c.Simplify = -1 }, "Simplify"},
		{"unknown clip", func(c *Config) { c.Clip = "nope" }, "Clip"},
		{"multi without slots", func(c *Config) { c.Mode = ModeMulti }, "Slots"},
		{"multi zero total weight", func(c *Config) {
			c.Mode = ModeMulti
			c.Slots = []Slot{{Clip: "walk", Weight: 0}}
		}, "Slots"},
		{"multi negative weight", func(c *Config) {
			c.Mode = ModeMulti
			c.Slots = []Slot{{Clip: "walk", Weight: -5}}
		}, "Slots"},
		{"multi unknown clip", func(c *Config) {
			c.Mode = ModeMulti
			c.Slots = []Slot{{Clip: "nope", Weight: 10}}
		}, "Slots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate(clips)
			require.Error(t, err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate(clips))

	// a frame range of a single frame is legal
	cfg.FrameEnd = cfg.FrameStart
	assert.NoError(t, cfg.Validate(clips))
}
