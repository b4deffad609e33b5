// Package frame defines the per-tick context snapshot shared by every
// component update. The frame driver constructs exactly one Context per tick
// and passes it down explicitly, so no component reads mutable globals and
// single-writer-per-tick semantics hold by construction.
package frame

// Context is a read-only snapshot of the shared frame signals: time, scroll
// progress, and pointer state. Components receive it by value and must not
// retain it across ticks.
type Context struct {
	// Time is the seconds elapsed since the engine started.
	Time float64

	// Delta is the seconds elapsed since the previous tick.
	Delta float64

	// Progress is the smoothed scroll progress in [0,1].
	Progress float64

	// PointerX and PointerY are the cursor position in window pixels.
	PointerX, PointerY float64

	// Hover reports whether the pointer currently rests on an interactive
	// region of the presentation.
	Hover bool
}
