package stage

import (
	"math"

	"github.com/satset19/porto-with-glm/common"
	"github.com/satset19/porto-with-glm/engine/fragment"
)

// Transform is the per-frame derived placement of a single fragment.
// It is recomputed from scratch every tick and never persisted.
type Transform struct {
	Position common.Vec3
	Rotation common.Vec3
	Scale    common.Vec3
}

// engineImpl is the implementation of the Engine interface.
// It holds only configuration; all per-call state lives on the stack, which
// is what makes ComputeTransform safe to call in parallel across fragments.
type engineImpl struct {
	bands          Bands
	floatAmplitude float64
	floatFrequency float64
}

// Engine maps scroll progress and elapsed time to per-fragment transforms.
// ComputeTransform is a pure function of its inputs plus the fragment's
// immutable fields: no hidden state, safe to call out of order, once or many
// times per frame, and concurrently across fragments.
type Engine interface {
	// Bands returns the stage banding this engine was configured with.
	//
	// Returns:
	//   - Bands: the configured band thresholds
	Bands() Bands

	// ComputeTransform derives the world transform for one fragment.
	// Progress outside [0,1] is extrapolated, never rejected; clamping is
	// the scroll source's responsibility.
	//
	// Parameters:
	//   - frag: the fragment (must not be nil)
	//   - progress: global scroll progress
	//   - elapsed: elapsed time in seconds, drives the formation float
	//
	// Returns:
	//   - Transform: the derived position, rotation, and scale
	ComputeTransform(frag *fragment.Fragment, progress, elapsed float64) Transform

	// ComputeAll derives transforms for every fragment in the pool into dst,
	// indexed by fragment identity. dst is grown if needed and returned;
	// records are overwritten in place so a caller reusing the slice gets
	// zero steady-state allocation.
	//
	// Parameters:
	//   - dst: destination slice, reused when capacity allows
	//   - pool: the fragment pool
	//   - progress: global scroll progress
	//   - elapsed: elapsed time in seconds
	//
	// Returns:
	//   - []Transform: dst resized to the pool count, fully overwritten
	ComputeAll(dst []Transform, pool fragment.Pool, progress, elapsed float64) []Transform
}

var _ Engine = &engineImpl{}

// NewEngine creates a stage transform engine with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engineImpl{
		bands:          DefaultBands(),
		floatAmplitude: 0.3,
		floatFrequency: 1.5,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *engineImpl) Bands() Bands {
	return e.bands
}

func (e *engineImpl) ComputeTransform(frag *fragment.Fragment, progress, elapsed float64) Transform {
	stage, local := e.bands.At(progress)

	switch stage {
	case StageFormation:
		return e.formation(frag, local, elapsed)
	case StageFragmentation:
		return e.fragmentation(frag, local)
	default:
		return e.reassembly(frag, local)
	}
}

func (e *engineImpl) ComputeAll(dst []Transform, pool fragment.Pool, progress, elapsed float64) []Transform {
	frags := pool.Fragments()
	if cap(dst) < len(frags) {
		dst = make([]Transform, len(frags))
	}
	dst = dst[:len(frags)]
	for i := range frags {
		dst[i] = e.ComputeTransform(&frags[i], progress, elapsed)
	}
	return dst
}

// formation keeps fragments at their grid positions with a vertical float.
// The fragment index offsets the float phase so the field shimmers instead
// of bobbing in unison.
func (e *engineImpl) formation(frag *fragment.Fragment, local, elapsed float64) Transform {
	lift := math.Sin(elapsed*e.floatFrequency+float64(frag.Index)) * e.floatAmplitude
	pos := frag.OriginalPosition.Add(common.Vec3{0, lift, 0})

	rot := frag.BaseRotation
	rot[0] += local * math.Pi * 0.5
	rot[1] += local * math.Pi * 0.25

	return Transform{
		Position: pos,
		Rotation: rot,
		Scale:    common.Vec3{1, 1, 1},
	}
}

// fragmentation scatters fragments toward their explosion targets with an
// exponential ease-out and a scale bulge peaking mid-stage.
func (e *engineImpl) fragmentation(frag *fragment.Fragment, local float64) Transform {
	pos := common.Lerp(frag.OriginalPosition, frag.ExplosionTarget, common.EaseOutExpo(local))

	rot := frag.BaseRotation
	rot[0] += local * 2 * math.Pi
	rot[1] += local * math.Pi
	rot[2] += local * math.Pi

	s := 1 + math.Sin(local*math.Pi)*0.3

	return Transform{
		Position: pos,
		Rotation: rot,
		Scale:    common.Vec3{s, s, s},
	}
}

// reassembly gathers surviving fragments into the ring layout; overflow
// fragments park at the origin and shrink to nothing.
//
// The rotation here drops the base offset the earlier stages apply, so
// fragments square up as they land. See DESIGN.md.
func (e *engineImpl) reassembly(frag *fragment.Fragment, local float64) Transform {
	if frag.FadeOut {
		s := 1 - local
		return Transform{
			Position: common.Vec3{},
			Rotation: common.Vec3{local * math.Pi * 0.5, local * math.Pi * 0.25, 0},
			Scale:    common.Vec3{s, s, s},
		}
	}

	pos := common.Lerp(frag.ExplosionTarget, frag.ReassemblyTarget, common.EaseInOutCubic(local))

	return Transform{
		Position: pos,
		Rotation: common.Vec3{local * math.Pi * 0.5, local * math.Pi * 0.25, 0},
		Scale:    common.Vec3{1, 1, 1},
	}
}
