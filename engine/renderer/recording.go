package renderer

import (
	"sync"

	"github.com/satset19/porto-with-glm/common"
)

var _ Sink = &RecordingSink{}

// RecordingSink is a headless Sink that keeps the last committed frame in
// memory. Staged data only becomes observable on EndFrame, matching the
// atomic-commit contract of the GPU sink.
type RecordingSink struct {
	mu sync.Mutex

	stagedInstances []Instance
	stagedScalars   map[string]float64
	stagedVecs      map[string]common.Vec3
	stagedView      [16]float32
	stagedProj      [16]float32

	committed Frame
	frames    int
}

// Frame is one committed frame's worth of sink data.
type Frame struct {
	Instances  []Instance
	Scalars    map[string]float64
	Vecs       map[string]common.Vec3
	View       [16]float32
	Projection [16]float32
}

// NewRecordingSink creates an empty recording sink.
//
// Returns:
//   - *RecordingSink: the sink
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{
		stagedScalars: make(map[string]float64),
		stagedVecs:    make(map[string]common.Vec3),
	}
}

// BeginFrame clears the staging area.
func (r *RecordingSink) BeginFrame() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stagedInstances = r.stagedInstances[:0]
	clear(r.stagedScalars)
	clear(r.stagedVecs)
	return nil
}

// SubmitInstances copies the instances into the staging area.
func (r *RecordingSink) SubmitInstances(instances []Instance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stagedInstances = append(r.stagedInstances, instances...)
}

// SetParam stages a scalar parameter.
func (r *RecordingSink) SetParam(name string, value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stagedScalars[name] = value
}

// SetVecParam stages a vector parameter.
func (r *RecordingSink) SetVecParam(name string, value common.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stagedVecs[name] = value
}

// SetCamera stages the camera matrices.
func (r *RecordingSink) SetCamera(view, projection [16]float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stagedView = view
	r.stagedProj = projection
}

// EndFrame snapshots the staging area into the committed frame.
func (r *RecordingSink) EndFrame() {
	r.mu.Lock()
	defer r.mu.Unlock()
	frame := Frame{
		Instances:  append([]Instance(nil), r.stagedInstances...),
		Scalars:    make(map[string]float64, len(r.stagedScalars)),
		Vecs:       make(map[string]common.Vec3, len(r.stagedVecs)),
		View:       r.stagedView,
		Projection: r.stagedProj,
	}
	for k, v := range r.stagedScalars {
		frame.Scalars[k] = v
	}
	for k, v := range r.stagedVecs {
		frame.Vecs[k] = v
	}
	r.committed = frame
	r.frames++
}

// Present is a no-op for the recording sink.
func (r *RecordingSink) Present() {}

// Resize is a no-op for the recording sink.
func (r *RecordingSink) Resize(width, height int) {}

// Close is a no-op for the recording sink.
func (r *RecordingSink) Close() {}

// LastFrame returns the most recently committed frame.
//
// Returns:
//   - Frame: the committed frame
func (r *RecordingSink) LastFrame() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.committed
}

// FrameCount returns how many frames have been committed.
func (r *RecordingSink) FrameCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}
