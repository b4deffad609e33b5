package engine

import (
	"time"

	"github.com/satset19/porto-with-glm/engine/renderer"
	"github.com/satset19/porto-with-glm/engine/scroll"
	"github.com/satset19/porto-with-glm/engine/window"
)

// EngineBuilderOption is a function that modifies the engine configuration.
type EngineBuilderOption func(*engineImpl)

// WithWindow sets the window the engine pumps messages for. Optional:
// headless runs (tests, captures) omit it and drive Quit themselves.
//
// Parameters:
//   - win: the window
//
// Returns:
//   - EngineBuilderOption: the option function
func WithWindow(win window.Window) EngineBuilderOption {
	return func(e *engineImpl) {
		e.win = win
	}
}

// WithSink sets the render sink frames are committed to. Required.
//
// Parameters:
//   - sink: the render sink
//
// Returns:
//   - EngineBuilderOption: the option function
func WithSink(sink renderer.Sink) EngineBuilderOption {
	return func(e *engineImpl) {
		e.sink = sink
	}
}

// WithScrollSource sets the smoothed scroll source progress is read from.
// Required.
//
// Parameters:
//   - source: the scroll source
//
// Returns:
//   - EngineBuilderOption: the option function
func WithScrollSource(source scroll.SmoothSource) EngineBuilderOption {
	return func(e *engineImpl) {
		e.source = source
	}
}

// WithTickRate sets the initial frame rate in frames per second.
//
// Parameters:
//   - fps: target frames per second
//
// Returns:
//   - EngineBuilderOption: the option function
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engineImpl) {
		if fps > 0 {
			e.tickRate = time.Second / time.Duration(fps)
		}
	}
}

// WithProfiling enables frame pacing output from the start.
//
// Returns:
//   - EngineBuilderOption: the option function
func WithProfiling() EngineBuilderOption {
	return func(e *engineImpl) {
		e.profilingEnabled.Store(true)
	}
}
