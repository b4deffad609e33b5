package scroll

// smoothConfig collects spring parameters before construction.
type smoothConfig struct {
	fps       int
	frequency float64
	damping   float64
}

// SmoothBuilderOption is a function that modifies the spring configuration.
type SmoothBuilderOption func(*smoothConfig)

// WithTickRate sets the tick rate the spring is integrated at. Must match
// the frame driver's tick rate for the configured frequency to hold.
//
// Parameters:
//   - fps: ticks per second
//
// Returns:
//   - SmoothBuilderOption: a function that sets the tick rate
func WithTickRate(fps int) SmoothBuilderOption {
	return func(c *smoothConfig) {
		if fps > 0 {
			c.fps = fps
		}
	}
}

// WithSpring sets the spring's angular frequency and damping ratio.
//
// Parameters:
//   - frequency: angular frequency (higher = snappier follow)
//   - damping: damping ratio (1 = critical, <1 = slight overshoot)
//
// Returns:
//   - SmoothBuilderOption: a function that sets the spring parameters
func WithSpring(frequency, damping float64) SmoothBuilderOption {
	return func(c *smoothConfig) {
		c.frequency = frequency
		c.damping = damping
	}
}
