package utils

import "golang.org/x/exp/constraints"

// Clamp limits v to the interval [lo,hi]. The bounds may be given in
// either order.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// ToUnitClamp returns a function that scales a number from the interval
// [rMin,rMax] to the unit interval. Results outside [0,1] are clamped.
func ToUnitClamp(rMin, rMax float64) func(v float64) float64 {
	span := rMax - rMin
	return func(v float64) float64 {
		if span == 0 {
			return 0
		}
		return Clamp((v-rMin)/span, 0, 1)
	}
}
