package timeline

import (
	"math"
	"testing"

	"github.com/satset19/porto-with-glm/common"
)

type recordingSink struct {
	scalars map[string]float64
	vectors map[string]common.Vec3
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		scalars: map[string]float64{},
		vectors: map[string]common.Vec3{},
	}
}

func (r *recordingSink) SetParam(name string, value float64)        { r.scalars[name] = value }
func (r *recordingSink) SetVecParam(name string, value common.Vec3) { r.vectors[name] = value }

func TestTrackHoldsOutsideBand(t *testing.T) {
	track := Track{
		Name: "bloom",
		Band: Band{Start: 0.8, End: 1.0},
		From: 0,
		To:   2.5,
		Ease: common.EaseOutCubic,
	}

	// Before the trigger band the value holds at From.
	for _, p := range []float64{0, 0.3, 0.7, 0.79} {
		if got := track.Value(p); got != 0 {
			t.Errorf("Value(%v) = %v, want 0 before band", p, got)
		}
	}
	if got := track.Value(1.0); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("Value(1.0) = %v, want 2.5", got)
	}
	mid := track.Value(0.9)
	if mid <= 0 || mid >= 2.5 {
		t.Errorf("Value(0.9) = %v, want strictly inside (0, 2.5)", mid)
	}
}

func TestTrackDefaultEaseIsLinear(t *testing.T) {
	track := Track{Band: Band{Start: 0, End: 1}, From: 10, To: 20}
	if got := track.Value(0.5); got != 15 {
		t.Errorf("Value(0.5) = %v, want 15 with linear default", got)
	}
}

func TestVec3TrackInterpolation(t *testing.T) {
	track := Vec3Track{
		Name: "cameraPosition",
		Band: Band{Start: 0.3, End: 0.7},
		From: common.Vec3{0, 2, 12},
		To:   common.Vec3{4, 5, 18},
	}

	if got := track.Value(0.1); got != track.From {
		t.Errorf("Value(0.1) = %v, want From %v", got, track.From)
	}
	if got := track.Value(0.9); got != track.To {
		t.Errorf("Value(0.9) = %v, want To %v", got, track.To)
	}
	mid := track.Value(0.5)
	want := common.Vec3{2, 3.5, 15}
	for axis := 0; axis < 3; axis++ {
		if math.Abs(mid[axis]-want[axis]) > 1e-12 {
			t.Errorf("Value(0.5)[%d] = %v, want %v", axis, mid[axis], want[axis])
		}
	}
}

func TestDegenerateBandSteps(t *testing.T) {
	track := Track{Band: Band{Start: 0.5, End: 0.5}, From: 0, To: 1}
	if got := track.Value(0.49); got != 0 {
		t.Errorf("Value(0.49) = %v, want 0", got)
	}
	if got := track.Value(0.5); got != 1 {
		t.Errorf("Value(0.5) = %v, want 1 (step at degenerate band)", got)
	}
}

func TestTimelineEvaluateInto(t *testing.T) {
	tl := Timeline{
		Scalars: []Track{
			{Name: "bloom", Band: Band{Start: 0.8, End: 1}, From: 0, To: 2},
			{Name: "keyLightIntensity", Band: Band{Start: 0.3, End: 0.7}, From: 1, To: 3},
		},
		Vectors: []Vec3Track{
			{Name: "cameraPosition", Band: Band{Start: 0, End: 0.3}, From: common.Vec3{0, 0, 10}, To: common.Vec3{0, 2, 14}},
		},
	}

	sink := newRecordingSink()
	tl.EvaluateInto(0.5, sink)

	if got := sink.scalars["bloom"]; got != 0 {
		t.Errorf("bloom at 0.5 = %v, want 0 (band not entered)", got)
	}
	if got := sink.scalars["keyLightIntensity"]; got != 2 {
		t.Errorf("keyLightIntensity at 0.5 = %v, want 2", got)
	}
	if got := sink.vectors["cameraPosition"]; got != (common.Vec3{0, 2, 14}) {
		t.Errorf("cameraPosition at 0.5 = %v, want settled To value", got)
	}
}
