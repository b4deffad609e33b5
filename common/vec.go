package common

// Vec3 is a 3-component vector of float64. The animation core computes in
// float64 and converts to float32 only at the GPU upload boundary.
type Vec3 [3]float64

// Add returns the component-wise sum v + o.
//
// Parameters:
//   - o: the vector to add
//
// Returns:
//   - Vec3: the component-wise sum
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Float32 returns the vector converted to a [3]float32 for GPU staging.
//
// Returns:
//   - [3]float32: the converted components
func (v Vec3) Float32() [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

// Lerp linearly interpolates component-wise between a and b.
// t=0 yields a exactly, t=1 yields b exactly; t outside [0,1] extrapolates.
//
// Parameters:
//   - a: the start vector
//   - b: the end vector
//   - t: the interpolation fraction
//
// Returns:
//   - Vec3: the interpolated vector
func Lerp(a, b Vec3, t float64) Vec3 {
	return Vec3{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// LerpScalar linearly interpolates between a and b.
//
// Parameters:
//   - a: the start value
//   - b: the end value
//   - t: the interpolation fraction
//
// Returns:
//   - float64: the interpolated value
func LerpScalar(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to the [lo, hi] range.
//
// Parameters:
//   - v: the value to clamp
//   - lo: the lower bound
//   - hi: the upper bound
//
// Returns:
//   - float64: the clamped value
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
