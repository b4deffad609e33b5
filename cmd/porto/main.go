// Command porto runs the scroll-driven portfolio presentation: a fragment
// cloud that forms, shatters, and reassembles as the user scrolls, rendered
// through WebGPU. Press G to queue the arcade minigame for after the window
// closes, P to toggle the profiler, R to rewind to the start.
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/satset19/porto-with-glm/common"
	"github.com/satset19/porto-with-glm/engine"
	"github.com/satset19/porto-with-glm/engine/camera"
	"github.com/satset19/porto-with-glm/engine/fragment"
	"github.com/satset19/porto-with-glm/engine/light"
	"github.com/satset19/porto-with-glm/engine/renderer"
	"github.com/satset19/porto-with-glm/engine/scene"
	"github.com/satset19/porto-with-glm/engine/scroll"
	"github.com/satset19/porto-with-glm/engine/timeline"
	"github.com/satset19/porto-with-glm/engine/window"
	"github.com/satset19/porto-with-glm/minigame"
)

// Config is the user-tunable presentation configuration.
type Config struct {
	Title         string  `json:"title"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	FragmentCount int     `json:"fragmentCount"`
	Seed          int64   `json:"seed"`
	TickRate      float64 `json:"tickRate"`
	Sensitivity   float64 `json:"sensitivity"`
	Profile       bool    `json:"profile"`
	MinigameSeed  int64   `json:"minigameSeed"`
}

// loadConfig reads config.json next to the binary, falling back to defaults
// when the file is missing or malformed.
func loadConfig() Config {
	var file Config
	if data, err := os.ReadFile("config.json"); err == nil {
		if err := json.Unmarshal(data, &file); err != nil {
			log.Printf("[Porto] Ignoring malformed config.json: %v", err)
			file = Config{}
		}
	}

	// Coalesce leaves negative values alone, so the ones that must be
	// positive are clamped back to zero before defaulting.
	if file.FragmentCount < 0 {
		file.FragmentCount = 0
	}
	if file.TickRate < 0 {
		file.TickRate = 0
	}
	if file.Sensitivity < 0 {
		file.Sensitivity = 0
	}

	return Config{
		Title:         common.Coalesce(file.Title, "Porto"),
		Width:         common.Coalesce(file.Width, 1280),
		Height:        common.Coalesce(file.Height, 720),
		FragmentCount: common.Coalesce(file.FragmentCount, 800),
		Seed:          file.Seed,
		TickRate:      common.Coalesce(file.TickRate, 60),
		Sensitivity:   common.Coalesce(file.Sensitivity, 0.04),
		Profile:       file.Profile,
		MinigameSeed:  common.Coalesce(file.MinigameSeed, 42),
	}
}

// presentationTimeline maps scroll progress to the camera path, the group
// rotation, the key light, and the bloom ramp at the end of the journey.
func presentationTimeline() *timeline.Timeline {
	full := timeline.Band{Start: 0, End: 1}
	return &timeline.Timeline{
		Scalars: []timeline.Track{
			{Name: "bloom", Band: timeline.Band{Start: 0.8, End: 1}, From: 0, To: 1.2, Ease: common.EaseInOutSine},
			{Name: "keyLight", Band: full, From: 0.8, To: 1.6},
		},
		Vectors: []timeline.Vec3Track{
			{Name: scene.ParamCameraPosition, Band: full, From: common.Vec3{0, 0, 14}, To: common.Vec3{0, 3, 8}, Ease: common.EaseInOutCubic},
			{Name: scene.ParamCameraTarget, Band: full, From: common.Vec3{}, To: common.Vec3{0, 0.5, 0}},
			{Name: "groupRotation", Band: full, From: common.Vec3{}, To: common.Vec3{0, 6.2832, 0}},
		},
	}
}

func main() {
	cfg := loadConfig()

	win, err := window.NewWindow(
		window.WithTitle(cfg.Title),
		window.WithSize(cfg.Width, cfg.Height),
	)
	if err != nil {
		log.Fatalf("[Porto] Failed to open window: %v", err)
	}

	sink, err := renderer.NewWGPUSink(win.SurfaceDescriptor(),
		renderer.WithInstanceCapacity(cfg.FragmentCount),
		renderer.WithScalarParams("bloom"),
		renderer.WithVecParams("groupRotation"),
	)
	if err != nil {
		log.Fatalf("[Porto] Failed to create render sink: %v", err)
	}
	sink.Resize(win.Width(), win.Height())

	poolOptions := []fragment.PoolBuilderOption{
		fragment.WithCount(cfg.FragmentCount),
	}
	if cfg.Seed != 0 {
		poolOptions = append(poolOptions, fragment.WithSeed(cfg.Seed))
	}
	pool, err := fragment.NewPool(poolOptions...)
	if err != nil {
		log.Fatalf("[Porto] Failed to build fragment pool: %v", err)
	}

	tracker := scroll.NewTracker(cfg.Sensitivity)
	source := scroll.NewSmoothSource(tracker)
	win.SetScrollCallback(tracker.Scroll)

	cam := camera.NewCamera(
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithRig(camera.NewRig(common.Vec3{0, 0, 14}, common.Vec3{})),
	)

	mainScene := scene.NewScene(pool, sink,
		scene.WithName("presentation"),
		scene.WithCamera(cam),
		scene.WithTimeline(presentationTimeline()),
	)
	mainScene.AddLight("keyLight", light.NewLight(
		light.WithDirection(-0.4, -1, -0.3),
		light.WithIntensity(0.8),
	))
	mainScene.AddLight("", light.NewLight(
		light.WithType(light.LightTypePoint),
		light.WithPosition(0, 4, 6),
		light.WithColor(0.9, 0.85, 1),
	))
	defer mainScene.Close()

	e := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithSink(sink),
		engine.WithScrollSource(source),
		engine.WithTickRate(cfg.TickRate),
	)
	e.AddScene(0, mainScene)
	if cfg.Profile {
		e.EnableProfiler()
	}

	playMinigame := false
	profiling := cfg.Profile
	win.SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case common.KeyG:
			playMinigame = true
			e.Quit()
		case common.KeyP:
			profiling = !profiling
			if profiling {
				e.EnableProfiler()
			} else {
				e.DisableProfiler()
			}
		case common.KeyR:
			tracker.Set(0)
			source.Snap()
		case common.KeyUp:
			tracker.Scroll(1)
		case common.KeyDown:
			tracker.Scroll(-1)
		}
	})

	log.Printf("[Porto] Starting with %d fragments", pool.Count())
	e.Run()

	sink.Close()
	_ = win.Close()

	if playMinigame {
		game, err := minigame.NewGame(cfg.MinigameSeed)
		if err != nil {
			log.Fatalf("[Porto] Failed to start minigame: %v", err)
		}
		game.Run()
	}
}
