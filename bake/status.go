package bake

import "time"

// Status is the outcome record of one bake invocation.
type Status struct {
	// ID identifies the bake run in logs.
	ID string

	// FramesCommitted is the number of output frames present in the
	// result. Equal to the full range size unless the bake was
	// cancelled.
	FramesCommitted int

	// Cancelled reports a cooperative cancellation. Not a failure; the
	// result holds whatever was computed before the stop.
	Cancelled bool

	// SkippedChannels lists channels that were absent from at least one
	// assigned clip and therefore received no keyframes for those
	// loops' frames. Sorted, each name at most once.
	SkippedChannels []string

	// KeysRemoved counts keyframes dropped by the simplification pass.
	KeysRemoved int

	// Elapsed is the wall time of the invocation.
	Elapsed time.Duration
}
