package light

type LightBuilderOption func(*lightImpl)

// WithType sets the kind of light source.
//
// Parameters:
//   - lightType: directional or point
//
// Returns:
//   - LightBuilderOption: a function that sets the light type
func WithType(lightType LightType) LightBuilderOption {
	return func(l *lightImpl) {
		l.lightType = lightType
	}
}

// WithPosition sets the world-space position for point lights.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - LightBuilderOption: a function that sets the position
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = [3]float32{x, y, z}
	}
}

// WithDirection sets the direction for directional lights.
//
// Parameters:
//   - x, y, z: direction components (should be normalized)
//
// Returns:
//   - LightBuilderOption: a function that sets the direction
func WithDirection(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.direction = [3]float32{x, y, z}
	}
}

// WithColor sets the RGB color of the light.
//
// Parameters:
//   - r, g, b: color components in [0,1]
//
// Returns:
//   - LightBuilderOption: a function that sets the color
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = [3]float32{r, g, b}
	}
}

// WithIntensity sets the initial intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: a function that sets the intensity
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithEnabled sets whether the light starts enabled.
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - LightBuilderOption: a function that sets the enabled flag
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}
