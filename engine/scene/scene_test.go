package scene

import (
	"testing"

	"github.com/satset19/porto-with-glm/common"
	"github.com/satset19/porto-with-glm/engine/camera"
	"github.com/satset19/porto-with-glm/engine/fragment"
	"github.com/satset19/porto-with-glm/engine/frame"
	"github.com/satset19/porto-with-glm/engine/light"
	"github.com/satset19/porto-with-glm/engine/renderer"
	"github.com/satset19/porto-with-glm/engine/timeline"
)

func testScenePool(t *testing.T, count int) fragment.Pool {
	t.Helper()
	pool, err := fragment.NewPool(
		fragment.WithCount(count),
		fragment.WithSeed(101),
	)
	if err != nil {
		t.Fatalf("failed to build pool: %v", err)
	}
	return pool
}

func TestAdvanceSubmitsAllFragments(t *testing.T) {
	pool := testScenePool(t, 120)
	sink := renderer.NewRecordingSink()
	s := NewScene(pool, sink, WithComputeWorkers(4), WithChunkSize(16))
	defer s.Close()

	_ = sink.BeginFrame()
	if err := s.Advance(frame.Context{Progress: 0.5, Time: 1.0}); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	sink.EndFrame()

	got := sink.LastFrame()
	if len(got.Instances) != pool.Count() {
		t.Fatalf("expected %d instances, got %d", pool.Count(), len(got.Instances))
	}
	for i, inst := range got.Instances {
		if inst.ID != i {
			t.Fatalf("instance %d carries ID %d", i, inst.ID)
		}
	}
}

func TestAdvanceAppliesStagePulse(t *testing.T) {
	pool := testScenePool(t, 60)
	sink := renderer.NewRecordingSink()
	s := NewScene(pool, sink)
	defer s.Close()

	// Midway through the middle band every fragment is scale-pulsed at the
	// sine peak.
	_ = sink.BeginFrame()
	if err := s.Advance(frame.Context{Progress: 0.5, Time: 0}); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	sink.EndFrame()

	for _, inst := range sink.LastFrame().Instances {
		for axis := 0; axis < 3; axis++ {
			if got := inst.Scale[axis]; got < 1.29 || got > 1.31 {
				t.Fatalf("instance %d axis %d scale %v, expected ~1.3", inst.ID, axis, got)
			}
		}
	}
}

func TestAdvanceRoutesTimelineParams(t *testing.T) {
	pool := testScenePool(t, 12)
	sink := renderer.NewRecordingSink()

	tl := &timeline.Timeline{
		Scalars: []timeline.Track{
			{Name: "bloom", Band: timeline.Band{Start: 0, End: 1}, From: 0, To: 2},
			{Name: "keyLight", Band: timeline.Band{Start: 0, End: 1}, From: 0.5, To: 1.5},
		},
		Vectors: []timeline.Vec3Track{
			{Name: ParamCameraPosition, Band: timeline.Band{Start: 0, End: 1}, From: common.Vec3{0, 0, 10}, To: common.Vec3{0, 4, 6}},
			{Name: "groupRotation", Band: timeline.Band{Start: 0, End: 1}, From: common.Vec3{}, To: common.Vec3{0, 6.28, 0}},
		},
	}

	s := NewScene(pool, sink, WithTimeline(tl))
	defer s.Close()

	key := light.NewLight(light.WithIntensity(0.1))
	s.AddLight("keyLight", key)

	_ = sink.BeginFrame()
	if err := s.Advance(frame.Context{Progress: 0.5}); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	sink.EndFrame()

	got := sink.LastFrame()
	if got.Scalars["bloom"] != 1.0 {
		t.Errorf("expected bloom forwarded as 1.0, got %v", got.Scalars["bloom"])
	}
	if key.Intensity() != 1.0 {
		t.Errorf("expected bound light intensity 1.0, got %v", key.Intensity())
	}
	if _, leaked := got.Scalars["keyLight"]; leaked {
		t.Errorf("bound light track leaked to the sink")
	}
	if _, leaked := got.Vecs[ParamCameraPosition]; leaked {
		t.Errorf("camera track leaked to the sink")
	}
	x, y, z := s.Camera().Rig().Position()
	if x != 0 || y != 2 || z != 8 {
		t.Errorf("expected rig at (0, 2, 8), got (%v, %v, %v)", x, y, z)
	}
	wantRot := common.Vec3{0, 3.14, 0}
	if got.Vecs["groupRotation"] != wantRot {
		t.Errorf("expected groupRotation %v, got %v", wantRot, got.Vecs["groupRotation"])
	}
}

func TestDefaultCameraGetsRig(t *testing.T) {
	pool := testScenePool(t, 8)
	sink := renderer.NewRecordingSink()

	tl := &timeline.Timeline{
		Vectors: []timeline.Vec3Track{
			{Name: ParamCameraPosition, Band: timeline.Band{Start: 0, End: 1}, From: common.Vec3{0, 0, 12}, To: common.Vec3{0, 0, 4}},
			{Name: ParamCameraTarget, Band: timeline.Band{Start: 0, End: 1}, From: common.Vec3{}, To: common.Vec3{0, 1, 0}},
		},
	}

	// No WithCamera: the scene must attach a rig itself so camera tracks
	// have somewhere to land.
	s := NewScene(pool, sink, WithTimeline(tl))
	defer s.Close()

	if s.Camera().Rig() == nil {
		t.Fatal("scene left the default camera without a rig")
	}

	_ = sink.BeginFrame()
	if err := s.Advance(frame.Context{Progress: 0.5}); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	sink.EndFrame()

	if _, _, z := s.Camera().Rig().Position(); z != 8 {
		t.Errorf("expected rig z 8 after camera track, got %v", z)
	}
}

func TestSuppliedCameraWithoutRigGetsOne(t *testing.T) {
	pool := testScenePool(t, 4)
	sink := renderer.NewRecordingSink()

	cam := camera.NewCamera()
	s := NewScene(pool, sink, WithCamera(cam))
	defer s.Close()

	if cam.Rig() == nil {
		t.Fatal("scene left the supplied camera without a rig")
	}
}

func TestAdvanceAfterCloseFails(t *testing.T) {
	pool := testScenePool(t, 6)
	sink := renderer.NewRecordingSink()
	s := NewScene(pool, sink)
	s.Close()

	if err := s.Advance(frame.Context{Progress: 0.2}); err == nil {
		t.Fatal("expected error advancing a closed scene")
	}
}

func TestSceneEmptyPool(t *testing.T) {
	pool := testScenePool(t, 0)
	sink := renderer.NewRecordingSink()
	s := NewScene(pool, sink)
	defer s.Close()

	_ = sink.BeginFrame()
	if err := s.Advance(frame.Context{Progress: 0.9}); err != nil {
		t.Fatalf("Advance failed on empty pool: %v", err)
	}
	sink.EndFrame()

	if n := len(sink.LastFrame().Instances); n != 0 {
		t.Errorf("expected 0 instances, got %d", n)
	}
}
