// Package scene owns one presentation scene: a fragment pool, the stage
// engine that transforms it, a camera rig, lights, and the scroll timeline
// that drives all of them. Each frame the scene evaluates its timeline,
// computes every fragment transform in parallel, and submits the result to
// the render sink.
package scene

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/satset19/porto-with-glm/common"
	"github.com/satset19/porto-with-glm/engine/camera"
	"github.com/satset19/porto-with-glm/engine/fragment"
	"github.com/satset19/porto-with-glm/engine/frame"
	"github.com/satset19/porto-with-glm/engine/light"
	"github.com/satset19/porto-with-glm/engine/renderer"
	"github.com/satset19/porto-with-glm/engine/stage"
	"github.com/satset19/porto-with-glm/engine/timeline"
)

// Parameter names the scene consumes itself instead of forwarding to the
// render sink.
const (
	ParamCameraPosition = "cameraPosition"
	ParamCameraTarget   = "cameraTarget"
)

// Scene drives one fragment population through the scroll timeline and
// submits the per-frame result to the render sink.
type Scene interface {
	// Name returns the scene's identifier, used in log output.
	Name() string

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Pool returns the scene's fragment pool.
	Pool() fragment.Pool

	// Lights returns the scene's registered lights.
	Lights() []light.Light

	// AddLight registers a light. If name is non-empty, a scalar timeline
	// track with that name drives the light's intensity.
	//
	// Parameters:
	//   - name: the timeline parameter name bound to the light's intensity,
	//     or "" for an unbound light
	//   - l: the light to add
	AddLight(name string, l light.Light)

	// Advance runs one frame: timeline evaluation, parallel fragment
	// transform computation, camera update, and submission to the sink.
	// Must be called between the sink's BeginFrame and EndFrame.
	//
	// Parameters:
	//   - ctx: the frame context (progress, elapsed time, pointer state)
	//
	// Returns:
	//   - error: error if the scene has been closed
	Advance(ctx frame.Context) error

	// Close stops the scene's worker pool. The scene cannot be advanced
	// afterwards.
	Close()
}

type sceneImpl struct {
	mu   *sync.Mutex
	name string

	cam        camera.Camera
	pool       fragment.Pool
	stages     stage.Engine
	tl         *timeline.Timeline
	sink       renderer.Sink
	lights     []light.Light
	boundLight map[string]light.Light

	// computePool is the bounded set of reusable goroutines the per-frame
	// transform fan-out runs on. A WaitGroup gives the per-frame barrier;
	// the pool's own Wait blocks until workers idle-exit, which is
	// unsuitable for frame-rate workloads.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
	chunkSize      int

	transforms []stage.Transform
	instances  []renderer.Instance

	closed bool
	taskID int
}

var _ Scene = &sceneImpl{}

// NewScene creates a scene over the given pool and sink.
//
// Parameters:
//   - pool: the fragment pool to animate
//   - sink: the render sink frames are submitted to
//   - options: optional SceneBuilderOption functions
//
// Returns:
//   - Scene: the scene
func NewScene(pool fragment.Pool, sink renderer.Sink, options ...SceneBuilderOption) Scene {
	if pool == nil {
		panic("pool is required")
	}
	if sink == nil {
		panic("sink is required")
	}

	s := &sceneImpl{
		mu:             &sync.Mutex{},
		name:           "main",
		pool:           pool,
		sink:           sink,
		boundLight:     make(map[string]light.Light),
		computeWorkers: max(runtime.NumCPU()-1, 1),
		chunkSize:      64,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.cam == nil {
		s.cam = camera.NewCamera()
	}
	// Camera timeline tracks write through the rig, so there must always be
	// one attached, including on cameras supplied without it.
	if s.cam.Rig() == nil {
		s.cam.SetRig(camera.NewRig(common.Vec3{0, 0, 10}, common.Vec3{}))
	}
	if s.stages == nil {
		s.stages = stage.NewEngine()
	}

	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 256, 1*time.Second)
	s.transforms = make([]stage.Transform, pool.Count())
	s.instances = make([]renderer.Instance, pool.Count())
	return s
}

func (s *sceneImpl) Name() string {
	return s.name
}

func (s *sceneImpl) Camera() camera.Camera {
	return s.cam
}

func (s *sceneImpl) Pool() fragment.Pool {
	return s.pool
}

func (s *sceneImpl) Lights() []light.Light {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]light.Light, len(s.lights))
	copy(out, s.lights)
	return out
}

func (s *sceneImpl) AddLight(name string, l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, l)
	if name != "" {
		s.boundLight[name] = l
	}
}

func (s *sceneImpl) Advance(ctx frame.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("scene %q is closed", s.name)
	}

	if s.tl != nil {
		s.tl.EvaluateInto(ctx.Progress, &paramRouter{scene: s})
	}
	s.cam.Update()
	s.sink.SetCamera(s.cam.ViewMatrix(), s.cam.ProjectionMatrix())

	count := s.pool.Count()
	if count > 0 {
		var wg sync.WaitGroup
		for start := 0; start < count; start += s.chunkSize {
			end := min(start+s.chunkSize, count)
			wg.Add(1)
			lo, hi := start, end
			id := s.taskID
			s.taskID++
			s.computePool.SubmitTask(worker.Task{
				ID: id,
				Do: func() (any, error) {
					defer wg.Done()
					for i := lo; i < hi; i++ {
						frag := s.pool.Fragment(i)
						tr := s.stages.ComputeTransform(frag, ctx.Progress, ctx.Time)
						s.transforms[i] = tr
						s.instances[i] = renderer.Instance{
							ID:       frag.Index,
							Position: tr.Position.Float32(),
							Rotation: tr.Rotation.Float32(),
							Scale:    tr.Scale.Float32(),
						}
					}
					return nil, nil
				},
			})
		}
		wg.Wait()
	}

	s.sink.SubmitInstances(s.instances[:count])
	return nil
}

func (s *sceneImpl) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	// Wait drains the pool; workers idle-exit after their timeout.
	s.computePool.Wait()
}

// paramRouter dispatches timeline parameters: camera tracks move the rig,
// bound light tracks drive intensity, everything else is forwarded to the
// render sink by name.
type paramRouter struct {
	scene *sceneImpl
}

var _ timeline.ParamSink = &paramRouter{}

func (r *paramRouter) SetParam(name string, value float64) {
	if l, ok := r.scene.boundLight[name]; ok {
		l.SetIntensity(float32(value))
		return
	}
	r.scene.sink.SetParam(name, value)
}

func (r *paramRouter) SetVecParam(name string, value common.Vec3) {
	switch name {
	case ParamCameraPosition:
		r.scene.cam.Rig().SetPosition(value)
	case ParamCameraTarget:
		r.scene.cam.Rig().SetTarget(value)
	default:
		r.scene.sink.SetVecParam(name, value)
	}
}
