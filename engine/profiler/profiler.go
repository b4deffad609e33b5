// Package profiler tracks frame pacing for the presentation loop. The
// scroll experience lives or dies on consistent frame delivery, so alongside
// FPS it reports the worst frame in each window.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler accumulates per-frame timing and logs a summary line at a fixed
// interval. Not safe for concurrent use; call Tick from the frame goroutine.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	lastFrame      time.Time
	updateInterval time.Duration

	minFrame time.Duration
	maxFrame time.Duration

	memStats runtime.MemStats
}

// NewProfiler creates a Profiler with a 1 second reporting interval.
//
// Returns:
//   - *Profiler: the profiler
func NewProfiler() *Profiler {
	now := time.Now()
	return &Profiler{
		lastTime:       now,
		lastFrame:      now,
		updateInterval: time.Second,
	}
}

// SetInterval changes the reporting interval.
//
// Parameters:
//   - interval: the new interval; ignored if not positive
func (p *Profiler) SetInterval(interval time.Duration) {
	if interval > 0 {
		p.updateInterval = interval
	}
}

// Tick records one frame. When the reporting interval has elapsed it logs
// FPS, best and worst frame times, and heap usage, then resets the window.
//
// Returns:
//   - bool: true if stats were logged this tick
func (p *Profiler) Tick() bool {
	now := time.Now()
	frameDur := now.Sub(p.lastFrame)
	p.lastFrame = now
	p.frameCount++

	if p.frameCount == 1 || frameDur < p.minFrame {
		p.minFrame = frameDur
	}
	if frameDur > p.maxFrame {
		p.maxFrame = frameDur
	}

	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024

	log.Printf("[Profiler] FPS: %.2f | Frame min: %.2f ms max: %.2f ms | Heap: %.2f MB",
		fps,
		float64(p.minFrame.Microseconds())/1000,
		float64(p.maxFrame.Microseconds())/1000,
		heapMB)

	p.frameCount = 0
	p.lastTime = now
	p.minFrame = 0
	p.maxFrame = 0
	return true
}
