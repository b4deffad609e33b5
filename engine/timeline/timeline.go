// Package timeline implements the declarative progress-keyed interpolation
// contract coupling camera, lighting, and post-processing parameters to the
// same scroll progress that drives the fragment transforms. A track is pure
// data (value span, ease, trigger band); evaluation is a pure function of
// progress, so scene parameters can never run ahead of or behind the
// fragment transforms computed from the same progress value in the same tick.
package timeline

import "github.com/satset19/porto-with-glm/common"

// Band is a half-open global progress range [Start, End) that triggers a
// track. Bands typically match a stage band but may be any sub-range, e.g.
// a bloom ramp confined to the tail of reassembly.
type Band struct {
	Start float64
	End   float64
}

// Contains reports whether the band has been entered at the given progress.
//
// Parameters:
//   - progress: global scroll progress
//
// Returns:
//   - bool: true if progress >= Start
func (b Band) Contains(progress float64) bool {
	return progress >= b.Start
}

// Local renormalizes global progress into the band, clamped to [0,1]:
// 0 before the band, 1 at or after its end.
//
// Parameters:
//   - progress: global scroll progress
//
// Returns:
//   - float64: local progress within the band
func (b Band) Local(progress float64) float64 {
	if b.End <= b.Start {
		if progress >= b.Start {
			return 1
		}
		return 0
	}
	return common.Clamp((progress-b.Start)/(b.End-b.Start), 0, 1)
}

// Track interpolates a named scalar parameter across its trigger band.
// Before the band the value holds at From; after it, at To.
type Track struct {
	Name string
	Band Band
	From float64
	To   float64
	Ease common.EaseFunc
}

// Value evaluates the track at the given progress.
//
// Parameters:
//   - progress: global scroll progress
//
// Returns:
//   - float64: the interpolated value
func (t Track) Value(progress float64) float64 {
	ease := t.Ease
	if ease == nil {
		ease = common.EaseLinear
	}
	return common.LerpScalar(t.From, t.To, ease(t.Band.Local(progress)))
}

// Vec3Track interpolates a named vector parameter across its trigger band.
// Used for camera position and group rotation spans.
type Vec3Track struct {
	Name string
	Band Band
	From common.Vec3
	To   common.Vec3
	Ease common.EaseFunc
}

// Value evaluates the track at the given progress.
//
// Parameters:
//   - progress: global scroll progress
//
// Returns:
//   - common.Vec3: the interpolated value
func (t Vec3Track) Value(progress float64) common.Vec3 {
	ease := t.Ease
	if ease == nil {
		ease = common.EaseLinear
	}
	return common.Lerp(t.From, t.To, ease(t.Band.Local(progress)))
}

// ParamSink receives evaluated timeline parameters each tick. The renderer
// sink satisfies this; tests use a recording implementation.
type ParamSink interface {
	// SetParam stages a named scalar parameter for the current frame.
	//
	// Parameters:
	//   - name: the parameter name
	//   - value: the parameter value
	SetParam(name string, value float64)

	// SetVecParam stages a named vector parameter for the current frame.
	//
	// Parameters:
	//   - name: the parameter name
	//   - value: the parameter value
	SetVecParam(name string, value common.Vec3)
}

// Timeline is an ordered collection of scalar and vector tracks evaluated
// together against a single progress value. Later tracks with the same name
// win, which lets a sub-range ramp override a stage-wide baseline.
type Timeline struct {
	Scalars []Track
	Vectors []Vec3Track
}

// EvaluateInto evaluates every track at the given progress and writes the
// results into the sink. Allocation-free: tracks are plain data and values
// go straight through.
//
// Parameters:
//   - progress: global scroll progress
//   - sink: the destination for evaluated parameters
func (tl *Timeline) EvaluateInto(progress float64, sink ParamSink) {
	for i := range tl.Scalars {
		sink.SetParam(tl.Scalars[i].Name, tl.Scalars[i].Value(progress))
	}
	for i := range tl.Vectors {
		sink.SetVecParam(tl.Vectors[i].Name, tl.Vectors[i].Value(progress))
	}
}
