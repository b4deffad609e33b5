package renderer

import (
	"math"
	"testing"

	"github.com/satset19/porto-with-glm/common"
)

func TestInstanceArenaStage(t *testing.T) {
	arena := NewInstanceArena(4)
	if arena.Cap() != 4 {
		t.Fatalf("expected capacity 4, got %d", arena.Cap())
	}

	staged := arena.Stage([]Instance{
		{ID: 0, Position: [3]float32{1, 2, 3}, Scale: [3]float32{1, 1, 1}},
		{ID: 1, Position: [3]float32{4, 5, 6}, Scale: [3]float32{2, 2, 2}},
	})
	if staged != 2 || arena.Len() != 2 {
		t.Fatalf("expected 2 staged, got staged=%d len=%d", staged, arena.Len())
	}

	bytes := arena.Bytes()
	if len(bytes) != 2*instanceStride {
		t.Errorf("expected %d bytes, got %d", 2*instanceStride, len(bytes))
	}
}

func TestInstanceArenaOverflowDrops(t *testing.T) {
	arena := NewInstanceArena(2)
	staged := arena.Stage(make([]Instance, 5))
	if staged != 2 {
		t.Errorf("expected 2 staged after overflow, got %d", staged)
	}
	if arena.Len() != 2 {
		t.Errorf("expected len 2, got %d", arena.Len())
	}
}

func TestInstanceArenaRestageShrinks(t *testing.T) {
	arena := NewInstanceArena(8)
	arena.Stage(make([]Instance, 6))
	arena.Stage(make([]Instance, 3))
	if arena.Len() != 3 {
		t.Errorf("expected len 3 after restage, got %d", arena.Len())
	}
	if len(arena.Bytes()) != 3*instanceStride {
		t.Errorf("expected %d bytes, got %d", 3*instanceStride, len(arena.Bytes()))
	}
}

func TestInstanceArenaModelMatrix(t *testing.T) {
	arena := NewInstanceArena(1)
	arena.Stage([]Instance{
		{Position: [3]float32{3, -1, 2}, Scale: [3]float32{1, 1, 1}},
	})
	m := arena.ModelMatrix(0)
	if m[12] != 3 || m[13] != -1 || m[14] != 2 {
		t.Errorf("translation column wrong: got (%v, %v, %v)", m[12], m[13], m[14])
	}
	if m[0] != 1 || m[5] != 1 || m[10] != 1 {
		t.Errorf("expected identity scale/rotation block, got diag (%v, %v, %v)", m[0], m[5], m[10])
	}
}

func TestRecordingSinkCommitOnEndFrame(t *testing.T) {
	sink := NewRecordingSink()

	if err := sink.BeginFrame(); err != nil {
		t.Fatalf("BeginFrame failed: %v", err)
	}
	sink.SubmitInstances([]Instance{{ID: 7, Position: [3]float32{1, 0, 0}}})
	sink.SetParam("bloom", 0.5)
	sink.SetVecParam("groupRotation", common.Vec3{0, 1.2, 0})

	// Nothing is visible before the commit.
	if got := sink.LastFrame(); len(got.Instances) != 0 {
		t.Fatalf("staged data visible before EndFrame: %d instances", len(got.Instances))
	}

	sink.EndFrame()

	frame := sink.LastFrame()
	if len(frame.Instances) != 1 || frame.Instances[0].ID != 7 {
		t.Fatalf("unexpected committed instances: %+v", frame.Instances)
	}
	if frame.Scalars["bloom"] != 0.5 {
		t.Errorf("expected bloom 0.5, got %v", frame.Scalars["bloom"])
	}
	if frame.Vecs["groupRotation"] != (common.Vec3{0, 1.2, 0}) {
		t.Errorf("unexpected groupRotation: %v", frame.Vecs["groupRotation"])
	}
	if sink.FrameCount() != 1 {
		t.Errorf("expected 1 committed frame, got %d", sink.FrameCount())
	}
}

func TestRecordingSinkBeginFrameClearsStaging(t *testing.T) {
	sink := NewRecordingSink()

	_ = sink.BeginFrame()
	sink.SubmitInstances([]Instance{{ID: 1}, {ID: 2}})
	sink.EndFrame()

	_ = sink.BeginFrame()
	sink.SubmitInstances([]Instance{{ID: 3}})
	sink.EndFrame()

	frame := sink.LastFrame()
	if len(frame.Instances) != 1 || frame.Instances[0].ID != 3 {
		t.Errorf("staging leaked across frames: %+v", frame.Instances)
	}
}

func TestSanitizeNonFinite(t *testing.T) {
	if sanitize(1.5) != 1.5 {
		t.Errorf("finite value altered")
	}
	if sanitize(math.NaN()) != 0 {
		t.Errorf("expected NaN sanitized to 0")
	}
	if sanitize(math.Inf(-1)) != 0 {
		t.Errorf("expected -Inf sanitized to 0")
	}
}
