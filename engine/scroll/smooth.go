package scroll

import (
	"sync"

	"github.com/charmbracelet/harmonica"

	"github.com/satset19/porto-with-glm/common"
)

// smoothSource is the implementation of the SmoothSource interface.
type smoothSource struct {
	mu     sync.Mutex
	target Source
	spring harmonica.Spring

	pos float64
	vel float64
}

// SmoothSource eases a raw progress target with a critically-damped-ish
// spring so a wheel flick glides instead of jumping. Advance runs on the
// frame driver's tick; Read is non-blocking and returns the last settled
// value, so the Source contract toward the transform engine holds.
// Safe for concurrent use: Snap arrives from input callbacks while the
// frame goroutine ticks Advance.
type SmoothSource interface {
	Source

	// Advance steps the spring toward the target once. Call exactly once
	// per tick, before the transform pass reads the progress.
	Advance()

	// Snap moves the displayed progress to the target immediately,
	// zeroing spring velocity. Used on page jumps and at startup.
	Snap()
}

var _ SmoothSource = &smoothSource{}

// NewSmoothSource creates a SmoothSource easing the given target.
//
// Parameters:
//   - target: the raw progress source to follow (must not be nil)
//   - options: functional options for spring configuration
//
// Returns:
//   - SmoothSource: the newly created source
func NewSmoothSource(target Source, options ...SmoothBuilderOption) SmoothSource {
	if target == nil {
		panic("scroll: NewSmoothSource requires a non-nil target Source")
	}
	cfg := smoothConfig{
		fps:       60,
		frequency: 5.0,
		damping:   0.9,
	}
	for _, option := range options {
		option(&cfg)
	}
	s := &smoothSource{
		target: target,
		spring: harmonica.NewSpring(harmonica.FPS(cfg.fps), cfg.frequency, cfg.damping),
	}
	s.Snap()
	return s
}

func (s *smoothSource) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target.Read())
	// The spring can overshoot the [0,1] domain near the ends; the
	// transform engine extrapolates rather than validates, so clamp here.
	s.pos = common.Clamp(s.pos, 0, 1)
}

func (s *smoothSource) Snap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = s.target.Read()
	s.vel = 0
}

func (s *smoothSource) Read() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}
