package fragment

import "github.com/satset19/porto-with-glm/common"

// GeometryClass identifies the primitive shape a fragment renders with.
type GeometryClass int

const (
	// GeometryTetrahedron is the four-faced primitive class.
	GeometryTetrahedron GeometryClass = iota

	// GeometryBox is the six-faced primitive class.
	GeometryBox

	// GeometryOctahedron is the eight-faced primitive class.
	GeometryOctahedron
)

// String returns the lowercase name of the geometry class.
//
// Returns:
//   - string: the class name, or "unknown" for out-of-range values
func (g GeometryClass) String() string {
	switch g {
	case GeometryTetrahedron:
		return "tetrahedron"
	case GeometryBox:
		return "box"
	case GeometryOctahedron:
		return "octahedron"
	default:
		return "unknown"
	}
}

// Fragment is one renderable instance among the pieces forming the animated
// model. All fields are assigned once during pool construction and never
// mutated afterwards; per-frame position/rotation/scale are derived values
// owned by the stage transform engine, not stored here.
//
// Exactly one of ReassemblyTarget / FadeOut is meaningful: fragments beyond
// the reassembly capacity carry FadeOut=true and a zero ReassemblyTarget.
type Fragment struct {
	// Index is the fragment's stable identity, dense in [0, pool count).
	Index int

	// Class selects the primitive geometry the instance renders with.
	Class GeometryClass

	// OriginalPosition is the grid-packed resting position.
	OriginalPosition common.Vec3

	// ExplosionTarget is the precomputed radial scatter destination.
	ExplosionTarget common.Vec3

	// ReassemblyTarget is the precomputed ring-packed destination.
	// Zero when FadeOut is set.
	ReassemblyTarget common.Vec3

	// FadeOut marks fragments with no reassembly slot; they shrink to
	// nothing during the reassembly stage instead of travelling.
	FadeOut bool

	// BaseRotation is the randomized rotation offset applied in the
	// formation and fragmentation stages.
	BaseRotation common.Vec3
}
