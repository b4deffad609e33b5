// Package renderer defines the frame sink the presentation submits to. The
// actual raster pipeline is an external collaborator; what lives here is the
// per-frame contract (instance tuples plus named camera/post-processing
// parameters, committed atomically) and the GPU-resident instance arena the
// pipeline consumes.
package renderer

import "github.com/satset19/porto-with-glm/common"

// Instance is one fragment's transform tuple for a single draw submission.
type Instance struct {
	// ID is the fragment identity the record is keyed on.
	ID int

	// Position, Rotation, Scale are the world transform components.
	Position [3]float32
	Rotation [3]float32
	Scale    [3]float32
}

// Sink accepts, once per frame, the full set of instance transforms and the
// named scene parameters, and commits them atomically: nothing staged after
// BeginFrame is visible to the consumer until EndFrame returns.
type Sink interface {
	// BeginFrame opens a staging window for the next frame's data.
	//
	// Returns:
	//   - error: error if the frame cannot be started (e.g. surface lost)
	BeginFrame() error

	// SubmitInstances stages the frame's instance transform tuples.
	// The slice is copied or consumed before return; callers may reuse it.
	//
	// Parameters:
	//   - instances: the per-fragment transforms for this frame
	SubmitInstances(instances []Instance)

	// SetParam stages a named scalar parameter for the current frame.
	//
	// Parameters:
	//   - name: the parameter name
	//   - value: the parameter value
	SetParam(name string, value float64)

	// SetVecParam stages a named vector parameter for the current frame.
	//
	// Parameters:
	//   - name: the parameter name
	//   - value: the parameter value
	SetVecParam(name string, value common.Vec3)

	// SetCamera stages the frame's view and projection matrices.
	//
	// Parameters:
	//   - view: the column-major view matrix
	//   - projection: the column-major projection matrix
	SetCamera(view, projection [16]float32)

	// EndFrame commits everything staged since BeginFrame in one step.
	EndFrame()

	// Present pushes the committed frame to the display. No-op for
	// headless sinks.
	Present()

	// Resize informs the sink of a new output size in pixels.
	//
	// Parameters:
	//   - width: the new width
	//   - height: the new height
	Resize(width, height int)

	// Close releases the sink's resources.
	Close()
}
