package stage

type EngineBuilderOption func(*engineImpl)

// WithBands sets the stage band thresholds.
//
// Parameters:
//   - bands: the band thresholds to use
//
// Returns:
//   - EngineBuilderOption: a function that sets the bands
func WithBands(bands Bands) EngineBuilderOption {
	return func(e *engineImpl) {
		e.bands = bands
	}
}

// WithFloat sets the formation-stage vertical float motion.
//
// Parameters:
//   - amplitude: peak vertical offset in world units
//   - frequency: oscillation frequency in radians per second
//
// Returns:
//   - EngineBuilderOption: a function that sets the float parameters
func WithFloat(amplitude, frequency float64) EngineBuilderOption {
	return func(e *engineImpl) {
		e.floatAmplitude = amplitude
		e.floatFrequency = frequency
	}
}
