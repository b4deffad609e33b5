package scroll

import (
	"math"
	"sync/atomic"

	"github.com/satset19/porto-with-glm/common"
)

// Source emits the scroll progress scalar the whole presentation keys on.
type Source interface {
	// Read returns the current progress in [0,1]. Called once per frame;
	// must never block.
	//
	// Returns:
	//   - float64: the current progress
	Read() float64
}

// Tracker accumulates raw wheel deltas into a clamped progress target.
// The window's scroll callback writes from the event-poll thread while the
// frame driver reads from the tick goroutine, so the value lives in an
// atomic word rather than behind a mutex.
type Tracker struct {
	bits        atomic.Uint64
	sensitivity float64
}

var _ Source = &Tracker{}

// NewTracker creates a Tracker mapping wheel deltas to progress.
//
// Parameters:
//   - sensitivity: progress change per wheel step (positive; wheel-up
//     scrolls backward through the presentation)
//
// Returns:
//   - *Tracker: the newly created tracker
func NewTracker(sensitivity float64) *Tracker {
	if sensitivity <= 0 {
		sensitivity = 0.04
	}
	return &Tracker{sensitivity: sensitivity}
}

// Scroll applies one wheel event. Positive deltas (wheel up) move the
// presentation backward, matching page-scroll direction.
//
// Parameters:
//   - delta: the raw wheel delta
func (t *Tracker) Scroll(delta float64) {
	for {
		old := t.bits.Load()
		next := common.Clamp(math.Float64frombits(old)-delta*t.sensitivity, 0, 1)
		if t.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return
		}
	}
}

// Set jumps the target progress directly, clamped to [0,1].
//
// Parameters:
//   - progress: the new target progress
func (t *Tracker) Set(progress float64) {
	t.bits.Store(math.Float64bits(common.Clamp(progress, 0, 1)))
}

// Read returns the current target progress.
//
// Returns:
//   - float64: the clamped target progress
func (t *Tracker) Read() float64 {
	return math.Float64frombits(t.bits.Load())
}
