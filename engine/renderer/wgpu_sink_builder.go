package renderer

import "github.com/cogentcore/webgpu/wgpu"

// WGPUSinkBuilderOption is a function that modifies the GPU sink configuration.
type WGPUSinkBuilderOption func(*wgpuSinkConfig)

type wgpuSinkConfig struct {
	instanceCapacity     int
	presentMode          wgpu.PresentMode
	clearColor           wgpu.Color
	forceFallbackAdapter bool
	scalarParams         []string
	vecParams            []string
}

func defaultWGPUSinkConfig() *wgpuSinkConfig {
	return &wgpuSinkConfig{
		instanceCapacity: 1024,
		presentMode:      wgpu.PresentModeFifo,
		clearColor:       wgpu.Color{R: 0.02, G: 0.02, B: 0.05, A: 1.0},
	}
}

// WithInstanceCapacity sets the maximum number of instances per frame.
//
// Parameters:
//   - capacity: the instance capacity
//
// Returns:
//   - WGPUSinkBuilderOption: the option function
func WithInstanceCapacity(capacity int) WGPUSinkBuilderOption {
	return func(cfg *wgpuSinkConfig) {
		if capacity > 0 {
			cfg.instanceCapacity = capacity
		}
	}
}

// WithPresentMode sets the surface present mode.
//
// Parameters:
//   - mode: the present mode
//
// Returns:
//   - WGPUSinkBuilderOption: the option function
func WithPresentMode(mode wgpu.PresentMode) WGPUSinkBuilderOption {
	return func(cfg *wgpuSinkConfig) {
		cfg.presentMode = mode
	}
}

// WithClearColor sets the color the frame is cleared to.
//
// Parameters:
//   - color: the clear color
//
// Returns:
//   - WGPUSinkBuilderOption: the option function
func WithClearColor(color wgpu.Color) WGPUSinkBuilderOption {
	return func(cfg *wgpuSinkConfig) {
		cfg.clearColor = color
	}
}

// WithForceFallbackAdapter forces the software fallback adapter.
//
// Returns:
//   - WGPUSinkBuilderOption: the option function
func WithForceFallbackAdapter() WGPUSinkBuilderOption {
	return func(cfg *wgpuSinkConfig) {
		cfg.forceFallbackAdapter = true
	}
}

// WithScalarParams declares the named scalar parameters and their order in
// the frame uniform buffer.
//
// Parameters:
//   - names: the scalar parameter names in layout order
//
// Returns:
//   - WGPUSinkBuilderOption: the option function
func WithScalarParams(names ...string) WGPUSinkBuilderOption {
	return func(cfg *wgpuSinkConfig) {
		cfg.scalarParams = append(cfg.scalarParams, names...)
	}
}

// WithVecParams declares the named vector parameters and their order in the
// frame uniform buffer, following the scalar parameters.
//
// Parameters:
//   - names: the vector parameter names in layout order
//
// Returns:
//   - WGPUSinkBuilderOption: the option function
func WithVecParams(names ...string) WGPUSinkBuilderOption {
	return func(cfg *wgpuSinkConfig) {
		cfg.vecParams = append(cfg.vecParams, names...)
	}
}
