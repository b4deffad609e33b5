package fragment

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// pool is the implementation of the Pool interface.
type pool struct {
	fragments []Fragment
	perClass  int
	capacity  int
}

// Pool owns the immutable identity and precomputed layout targets for every
// fragment instance. It is built once at startup and read-only for the rest
// of the session; the stage transform engine derives per-frame transforms
// from it without ever writing back.
type Pool interface {
	// Count returns the number of fragments actually created. This can be
	// lower than the requested count: the requested count is divided evenly
	// across geometry classes and the integer-division remainder is dropped.
	//
	// Returns:
	//   - int: the fragment count
	Count() int

	// PerClass returns the number of fragments created per geometry class.
	//
	// Returns:
	//   - int: fragments per class
	PerClass() int

	// Fragment returns a pointer to the fragment at the given index.
	// The pointed-to data is immutable; callers must not write through it.
	//
	// Parameters:
	//   - index: the fragment index in [0, Count())
	//
	// Returns:
	//   - *Fragment: the fragment, or nil if index is out of range
	Fragment(index int) *Fragment

	// Fragments returns the backing fragment slice. The slice and its
	// elements are immutable; callers must not modify them.
	//
	// Returns:
	//   - []Fragment: all fragments in index order
	Fragments() []Fragment

	// ReassemblyCapacity returns the number of fragments that received a
	// reassembly slot; fragments at or beyond this index fade out instead.
	//
	// Returns:
	//   - int: the reassembly capacity actually applied
	ReassemblyCapacity() int
}

var _ Pool = &pool{}

// NewPool builds a fragment pool from the provided options. Construction is
// the only phase that touches the random source; every derived field is fixed
// once this function returns.
//
// A requested count of zero yields a valid empty pool. An empty geometry
// class list or a negative count is a configuration error.
//
// Parameters:
//   - options: functional options for pool configuration
//
// Returns:
//   - Pool: the constructed pool
//   - error: error if the configuration is invalid
func NewPool(options ...PoolBuilderOption) (Pool, error) {
	cfg := defaultPoolConfig()
	for _, option := range options {
		option(&cfg)
	}

	if len(cfg.classes) == 0 {
		return nil, fmt.Errorf("fragment: pool requires at least one geometry class")
	}
	if cfg.count < 0 {
		return nil, fmt.Errorf("fragment: negative fragment count %d", cfg.count)
	}
	if cfg.ringSize <= 0 {
		return nil, fmt.Errorf("fragment: ring size must be positive, got %d", cfg.ringSize)
	}

	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	perClass := cfg.count / len(cfg.classes)
	total := perClass * len(cfg.classes)

	p := &pool{
		fragments: make([]Fragment, 0, total),
		perClass:  perClass,
		capacity:  min(cfg.reassemblyCapacity, total),
	}
	if total == 0 {
		return p, nil
	}

	// Grid side length follows the per-class count so each class fills a
	// roughly cubic block. Index decomposition below wraps past the cube
	// when counts don't divide evenly; the grid just grows along Z.
	side := int(math.Ceil(math.Cbrt(float64(perClass))))
	if side < 1 {
		side = 1
	}
	spacing := cfg.spacing * cfg.baseSize
	center := float64(side-1) / 2

	for i := 0; i < total; i++ {
		f := Fragment{
			Index: i,
			Class: cfg.classes[i/perClass],
		}

		gx := i % side
		gy := (i / side) % side
		gz := i / (side * side)
		f.OriginalPosition[0] = (float64(gx) - center) * spacing
		f.OriginalPosition[1] = (float64(gy) - center) * spacing
		f.OriginalPosition[2] = (float64(gz) - center) * spacing

		f.BaseRotation[0] = rng.Float64() * math.Pi
		f.BaseRotation[1] = rng.Float64() * math.Pi
		f.BaseRotation[2] = rng.Float64() * math.Pi

		// Radial scatter: the angle sweeps linearly with the index so the
		// explosion reads as a full ring; radius and height are random.
		angle := float64(i) / float64(total) * 2 * math.Pi
		radius := 2 + rng.Float64()*cfg.explosionRadius
		f.ExplosionTarget[0] = math.Cos(angle) * radius
		f.ExplosionTarget[1] = (rng.Float64() - 0.5) * cfg.heightRange
		f.ExplosionTarget[2] = math.Sin(angle) * radius

		if i < p.capacity {
			ring := i / cfg.ringSize
			ringAngle := float64(i%cfg.ringSize) / float64(cfg.ringSize) * 2 * math.Pi
			ringRadius := cfg.ringBaseRadius + float64(ring)*cfg.ringSpacing
			f.ReassemblyTarget[0] = math.Cos(ringAngle) * ringRadius
			f.ReassemblyTarget[1] = (rng.Float64() - 0.5) * cfg.verticalJitter
			f.ReassemblyTarget[2] = math.Sin(ringAngle) * ringRadius
		} else {
			f.FadeOut = true
		}

		p.fragments = append(p.fragments, f)
	}

	return p, nil
}

func (p *pool) Count() int {
	return len(p.fragments)
}

func (p *pool) PerClass() int {
	return p.perClass
}

func (p *pool) Fragment(index int) *Fragment {
	if index < 0 || index >= len(p.fragments) {
		return nil
	}
	return &p.fragments[index]
}

func (p *pool) Fragments() []Fragment {
	return p.fragments
}

func (p *pool) ReassemblyCapacity() int {
	return p.capacity
}
