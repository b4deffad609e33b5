// Package engine coordinates the frame loop: scroll input is smoothed, the
// frame context is built, every scene advances, and the render sink commits.
// All per-frame work happens on one goroutine so a frame is always a
// consistent snapshot of a single progress value.
package engine

import (
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/satset19/porto-with-glm/engine/frame"
	"github.com/satset19/porto-with-glm/engine/profiler"
	"github.com/satset19/porto-with-glm/engine/renderer"
	"github.com/satset19/porto-with-glm/engine/scene"
	"github.com/satset19/porto-with-glm/engine/scroll"
	"github.com/satset19/porto-with-glm/engine/window"
)

type engineImpl struct {
	tickRateChannel chan time.Duration
	quitChannel     chan struct{}
	quitOnce        sync.Once
	wg              sync.WaitGroup
	running         bool

	mu     sync.Mutex
	scenes map[int]scene.Scene

	win    window.Window
	sink   renderer.Sink
	source scroll.SmoothSource

	profiler *profiler.Profiler
	// profilingEnabled is toggled from input callbacks while the frame
	// goroutine reads it, so it is atomic.
	profilingEnabled atomic.Bool

	tickRate     time.Duration
	tickCallback func(ctx frame.Context)

	pointerMu sync.Mutex
	pointerX  float64
	pointerY  float64
}

// Engine runs the presentation: it owns the frame loop, the registered
// scenes, and the window message pump.
type Engine interface {
	// Window returns the underlying window.
	Window() window.Window

	// EnableProfiler enables frame pacing output to the log.
	EnableProfiler()

	// DisableProfiler disables frame pacing output.
	DisableProfiler()

	// SetTickRate sets the frame rate in frames per second. Takes effect
	// immediately if the engine is running.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers a function called once per frame with the
	// frame context, after all scenes have advanced.
	//
	// Parameters:
	//   - callback: the per-frame function, or nil to disable
	SetTickCallback(callback func(ctx frame.Context))

	// AddScene registers a scene at the given z-index key. Scenes advance
	// in ascending key order each frame.
	//
	// Parameters:
	//   - key: the z-index (lower advances first)
	//   - s: the scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene at the given z-index key, or nil.
	//
	// Parameters:
	//   - key: the z-index to look up
	//
	// Returns:
	//   - scene.Scene: the scene, or nil if not found
	Scene(key int) scene.Scene

	// Run starts the frame loop and blocks on the window message pump
	// until the window closes or Quit is called.
	Run()

	// Quit signals the frame loop to stop. Safe to call multiple times.
	Quit()
}

var _ Engine = &engineImpl{}

// NewEngine creates an Engine. The window, sink, and scroll source are
// required; pass them with WithWindow, WithSink, and WithScrollSource.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engineImpl{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		scenes:          make(map[int]scene.Scene),
		profiler:        profiler.NewProfiler(),
		tickRate:        time.Second / 60,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.sink == nil {
		panic("render sink is required")
	}
	if e.source == nil {
		panic("scroll source is required")
	}

	if e.win != nil {
		e.win.SetResizeCallback(func(width, height int) {
			e.sink.Resize(width, height)
			e.mu.Lock()
			for _, s := range e.scenes {
				if c := s.Camera(); c != nil && height > 0 {
					c.SetAspect(float32(width) / float32(height))
				}
			}
			e.mu.Unlock()
		})
		e.win.SetPointerMoveCallback(func(x, y float64) {
			e.pointerMu.Lock()
			e.pointerX = x
			e.pointerY = y
			e.pointerMu.Unlock()
		})
	}

	return e
}

func (e *engineImpl) Window() window.Window {
	return e.win
}

func (e *engineImpl) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

func (e *engineImpl) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

func (e *engineImpl) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
		return
	}
	e.tickRate = newRate
}

func (e *engineImpl) SetTickCallback(callback func(ctx frame.Context)) {
	e.tickCallback = callback
}

func (e *engineImpl) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engineImpl) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engineImpl) Scene(key int) scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scenes[key]
}

func (e *engineImpl) Run() {
	e.running = true
	e.wg.Add(2)
	go e.handleFrames()
	go e.handleQuit()

	if e.win != nil {
		e.win.ProcessMessages()
	} else {
		<-e.quitChannel
	}
	e.signalQuit()
	e.wg.Wait()
}

func (e *engineImpl) Quit() {
	e.signalQuit()
}

func (e *engineImpl) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handleFrames runs the single frame goroutine. Every tick: advance the
// smoothed scroll, build the frame context, advance scenes in z order inside
// one sink frame, then commit and present. Recovers from panics so a bad
// frame quits cleanly instead of crashing the process.
func (e *engineImpl) handleFrames() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] Frame goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.tickRate)
	defer ticker.Stop()

	start := time.Now()
	lastTick := start

	for {
		select {
		case <-e.quitChannel:
			return
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.tickRate = newRate
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(lastTick).Seconds()
			lastTick = now

			e.source.Advance()
			ctx := e.buildContext(now.Sub(start).Seconds(), dt)

			if err := e.sink.BeginFrame(); err != nil {
				log.Printf("[Engine] Skipping frame: %v", err)
				continue
			}
			for _, s := range e.orderedScenes() {
				if err := s.Advance(ctx); err != nil {
					log.Printf("[Engine] Scene %q: %v", s.Name(), err)
				}
			}
			e.sink.EndFrame()
			e.sink.Present()

			if e.tickCallback != nil {
				e.tickCallback(ctx)
			}
			if e.profilingEnabled.Load() {
				e.profiler.Tick()
			}
		}
	}
}

func (e *engineImpl) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

func (e *engineImpl) buildContext(elapsed, dt float64) frame.Context {
	e.pointerMu.Lock()
	px, py := e.pointerX, e.pointerY
	e.pointerMu.Unlock()

	hover := false
	if e.win != nil {
		hover = px >= 0 && py >= 0 && px < float64(e.win.Width()) && py < float64(e.win.Height())
	}

	return frame.Context{
		Time:     elapsed,
		Delta:    dt,
		Progress: e.source.Read(),
		PointerX: px,
		PointerY: py,
		Hover:    hover,
	}
}

func (e *engineImpl) orderedScenes() []scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()

	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		out = append(out, e.scenes[k])
	}
	return out
}
