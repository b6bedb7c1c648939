package bake

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/gruntwork-io/go-commons/errors"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"

	"github.com/wolfexplode/loopbake/clip"
	"github.com/wolfexplode/loopbake/curve"
	"github.com/wolfexplode/loopbake/logger"
)

// Engine runs bake invocations. It is stateless between invocations; the
// clock is injectable for tests.
type Engine struct {
	clock clock.PassiveClock
	log   *logrus.Entry
}

// New creates an Engine using the wall clock.
func New() *Engine {
	return NewWithClock(clock.RealClock{})
}

// NewWithClock creates an Engine with an injected clock.
func NewWithClock(c clock.PassiveClock) *Engine {
	return &Engine{
		clock: c,
		log:   logger.GetProjectLogger(),
	}
}

// Bake runs one synchronous bake over the configured frame range and
// commits the outcome to target. A nil target computes the Result without
// committing anywhere.
//
// Frames are processed in strictly increasing order. Configuration errors
// fail before any sampling or target writes. Cooperative cancellation
// (Config.Yield returning false, or ctx being done) is not an error: the
// Status reports Cancelled with the partial frame count and the Result
// holds only the frames processed before the stop.
func (e *Engine) Bake(ctx context.Context, cfg Config, clips []clip.Source, target Target) (*Result, Status, error) {
	start := e.clock.Now()
	status := Status{ID: uuid.New().String()}

	index := indexClips(clips)
	if err := cfg.validate(index); err != nil {
		return nil, status, errors.WithStackTrace(err)
	}

	strengthCurve := cfg.Strength
	if strengthCurve == nil {
		strengthCurve = curve.Constant(1)
	}

	rate := curve.SampleRate(cfg.Rate, cfg.FrameStart, cfg.FrameEnd, cfg.FPS)
	strength := curve.SampleRange(strengthCurve, cfg.FrameStart, cfg.FrameEnd, cfg.FPS)
	track := Integrate(rate, cfg.FPS, cfg.SpeedScale)

	pl := newPlanner(&cfg)
	res, processed, cancelled, skipped := resample(ctx, &cfg, index, track, strength, rate, pl)

	status.FramesCommitted = processed
	status.Cancelled = cancelled
	for name := range skipped {
		status.SkippedChannels = append(status.SkippedChannels, name)
	}
	sort.Strings(status.SkippedChannels)

	if target != nil {
		written, removed, err := Commit(res, target, cfg.Simplify)
		if err != nil {
			status.Elapsed = e.clock.Since(start)
			return res, status, err
		}
		status.KeysRemoved = removed
		e.log.WithFields(logrus.Fields{
			"bake_id": status.ID,
			"keys":    written,
			"removed": removed,
		}).Debug("committed bake result")
	}

	status.Elapsed = e.clock.Since(start)
	e.log.WithFields(logrus.Fields{
		"bake_id":   status.ID,
		"frames":    status.FramesCommitted,
		"loops":     len(res.Assignments),
		"channels":  len(res.Channels),
		"skipped":   len(status.SkippedChannels),
		"cancelled": status.Cancelled,
	}).Info("bake finished")

	return res, status, nil
}
