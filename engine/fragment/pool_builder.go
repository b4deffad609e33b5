package fragment

import "math/rand"

// poolConfig collects construction parameters before NewPool validates them.
type poolConfig struct {
	count              int
	classes            []GeometryClass
	baseSize           float64
	spacing            float64
	explosionRadius    float64
	heightRange        float64
	reassemblyCapacity int
	ringSize           int
	ringBaseRadius     float64
	ringSpacing        float64
	verticalJitter     float64
	rng                *rand.Rand
}

func defaultPoolConfig() poolConfig {
	return poolConfig{
		count:              800,
		classes:            []GeometryClass{GeometryTetrahedron, GeometryBox, GeometryOctahedron},
		baseSize:           0.3,
		spacing:            2.5,
		explosionRadius:    4,
		heightRange:        3,
		reassemblyCapacity: 600,
		ringSize:           40,
		ringBaseRadius:     1.5,
		ringSpacing:        0.8,
		verticalJitter:     0.4,
	}
}

type PoolBuilderOption func(*poolConfig)

// WithCount sets the requested fragment count. The actual count created is
// rounded down to a multiple of the geometry class count.
//
// Parameters:
//   - count: the requested number of fragments
//
// Returns:
//   - PoolBuilderOption: a function that sets the count
func WithCount(count int) PoolBuilderOption {
	return func(c *poolConfig) {
		c.count = count
	}
}

// WithClasses sets the geometry classes fragments are partitioned across.
//
// Parameters:
//   - classes: the geometry classes (must not be empty)
//
// Returns:
//   - PoolBuilderOption: a function that sets the classes
func WithClasses(classes ...GeometryClass) PoolBuilderOption {
	return func(c *poolConfig) {
		c.classes = classes
	}
}

// WithBaseSize sets the fragment base size used to derive grid spacing.
//
// Parameters:
//   - size: the base size in world units
//
// Returns:
//   - PoolBuilderOption: a function that sets the base size
func WithBaseSize(size float64) PoolBuilderOption {
	return func(c *poolConfig) {
		c.baseSize = size
	}
}

// WithSpacing sets the grid spacing as a multiple of the base size.
//
// Parameters:
//   - spacing: the spacing multiplier
//
// Returns:
//   - PoolBuilderOption: a function that sets the spacing
func WithSpacing(spacing float64) PoolBuilderOption {
	return func(c *poolConfig) {
		c.spacing = spacing
	}
}

// WithExplosionRadius sets the random radial span of explosion targets.
// Each target's radius is 2 + random*radius.
//
// Parameters:
//   - radius: the radial span in world units
//
// Returns:
//   - PoolBuilderOption: a function that sets the explosion radius
func WithExplosionRadius(radius float64) PoolBuilderOption {
	return func(c *poolConfig) {
		c.explosionRadius = radius
	}
}

// WithHeightRange sets the vertical span of explosion targets.
//
// Parameters:
//   - span: the vertical span in world units, centered on zero
//
// Returns:
//   - PoolBuilderOption: a function that sets the height range
func WithHeightRange(span float64) PoolBuilderOption {
	return func(c *poolConfig) {
		c.heightRange = span
	}
}

// WithReassemblyCapacity sets how many fragments receive a reassembly slot.
// Fragments beyond the capacity are marked to fade out instead.
//
// Parameters:
//   - capacity: the number of reassembly slots
//
// Returns:
//   - PoolBuilderOption: a function that sets the capacity
func WithReassemblyCapacity(capacity int) PoolBuilderOption {
	return func(c *poolConfig) {
		c.reassemblyCapacity = capacity
	}
}

// WithRingLayout sets the concentric ring packing of reassembly targets.
//
// Parameters:
//   - ringSize: fragments per ring (must be positive)
//   - baseRadius: radius of the innermost ring
//   - ringSpacing: radial distance between consecutive rings
//
// Returns:
//   - PoolBuilderOption: a function that sets the ring layout
func WithRingLayout(ringSize int, baseRadius, ringSpacing float64) PoolBuilderOption {
	return func(c *poolConfig) {
		c.ringSize = ringSize
		c.ringBaseRadius = baseRadius
		c.ringSpacing = ringSpacing
	}
}

// WithVerticalJitter sets the random vertical offset span added to
// reassembly targets.
//
// Parameters:
//   - span: the jitter span in world units, centered on zero
//
// Returns:
//   - PoolBuilderOption: a function that sets the jitter
func WithVerticalJitter(span float64) PoolBuilderOption {
	return func(c *poolConfig) {
		c.verticalJitter = span
	}
}

// WithSeed seeds the construction-time random source so layouts reproduce
// across runs. Without it each session gets a fresh scatter, which is fine
// for display but unsuitable for exact-coordinate assertions.
//
// Parameters:
//   - seed: the random seed
//
// Returns:
//   - PoolBuilderOption: a function that sets the seeded source
func WithSeed(seed int64) PoolBuilderOption {
	return func(c *poolConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
