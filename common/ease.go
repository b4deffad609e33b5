package common

import "math"

// EaseFunc reparameterizes a linear progress value in [0,1]. Implementations
// must map 0 to 0 and 1 to 1 and stay monotone so interpolation endpoints are
// hit exactly.
type EaseFunc func(t float64) float64

// EaseLinear passes progress through unchanged.
//
// Parameters:
//   - t: linear progress
//
// Returns:
//   - float64: t unchanged
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutExpo decelerates exponentially toward the end of the range.
// t == 1 is special-cased to return exactly 1 rather than relying on the
// floating-point convergence of 2^(-10).
//
// Parameters:
//   - t: linear progress
//
// Returns:
//   - float64: eased progress
func EaseOutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// EaseInOutCubic accelerates through the first half and decelerates through
// the second, symmetric about t = 0.5.
//
// Parameters:
//   - t: linear progress
//
// Returns:
//   - float64: eased progress
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// EaseOutCubic decelerates cubically toward the end of the range.
//
// Parameters:
//   - t: linear progress
//
// Returns:
//   - float64: eased progress
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOutSine eases with a half-cosine wave, gentler than cubic.
//
// Parameters:
//   - t: linear progress
//
// Returns:
//   - float64: eased progress
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}
