package scene

import (
	"github.com/satset19/porto-with-glm/engine/camera"
	"github.com/satset19/porto-with-glm/engine/stage"
	"github.com/satset19/porto-with-glm/engine/timeline"
)

// SceneBuilderOption is a function that modifies the scene configuration.
type SceneBuilderOption func(*sceneImpl)

// WithName sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: the option function
func WithName(name string) SceneBuilderOption {
	return func(s *sceneImpl) {
		if name != "" {
			s.name = name
		}
	}
}

// WithCamera sets the scene's camera.
//
// Parameters:
//   - cam: the camera
//
// Returns:
//   - SceneBuilderOption: the option function
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.cam = cam
	}
}

// WithStageEngine sets the stage engine that computes fragment transforms.
//
// Parameters:
//   - engine: the stage engine
//
// Returns:
//   - SceneBuilderOption: the option function
func WithStageEngine(engine stage.Engine) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.stages = engine
	}
}

// WithTimeline sets the scroll timeline evaluated each frame.
//
// Parameters:
//   - tl: the timeline
//
// Returns:
//   - SceneBuilderOption: the option function
func WithTimeline(tl *timeline.Timeline) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.tl = tl
	}
}

// WithComputeWorkers sets the number of worker goroutines for the per-frame
// transform fan-out. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - SceneBuilderOption: the option function
func WithComputeWorkers(n int) SceneBuilderOption {
	return func(s *sceneImpl) {
		if n > 0 {
			s.computeWorkers = n
		}
	}
}

// WithChunkSize sets how many fragments each worker task computes.
//
// Parameters:
//   - n: the chunk size
//
// Returns:
//   - SceneBuilderOption: the option function
func WithChunkSize(n int) SceneBuilderOption {
	return func(s *sceneImpl) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}
