package camera

import (
	"sync"

	"github.com/satset19/porto-with-glm/common"
)

// rigImpl is the implementation of the Rig interface.
type rigImpl struct {
	mu *sync.Mutex

	position common.Vec3
	target   common.Vec3
}

// Rig positions the camera along the presentation's progress-keyed path.
// Unlike an orbit controller it has no input handling of its own: the
// scene's camera timeline writes position and target once per tick, keeping
// camera motion in lockstep with the fragment transforms derived from the
// same scroll progress.
type Rig interface {
	// Position returns the camera eye position in world space.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Target returns the point the camera looks at.
	//
	// Returns:
	//   - x, y, z: target components
	Target() (x, y, z float32)

	// SetPosition moves the camera eye.
	//
	// Parameters:
	//   - pos: the new eye position
	SetPosition(pos common.Vec3)

	// SetTarget moves the look-at point.
	//
	// Parameters:
	//   - target: the new look-at point
	SetTarget(target common.Vec3)
}

var _ Rig = &rigImpl{}

// NewRig creates a Rig at the given starting pose.
//
// Parameters:
//   - position: the initial eye position
//   - target: the initial look-at point
//
// Returns:
//   - Rig: the newly created rig
func NewRig(position, target common.Vec3) Rig {
	return &rigImpl{
		mu:       &sync.Mutex{},
		position: position,
		target:   target,
	}
}

func (r *rigImpl) Position() (x, y, z float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.position.Float32()
	return p[0], p[1], p[2]
}

func (r *rigImpl) Target() (x, y, z float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.target.Float32()
	return t[0], t[1], t[2]
}

func (r *rigImpl) SetPosition(pos common.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.position = pos
}

func (r *rigImpl) SetTarget(target common.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = target
}
