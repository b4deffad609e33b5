package stage

// Stage is one of the three mutually exclusive animation phases selected by
// scroll progress. It is always derived from progress, never stored, so the
// selection is idempotent and can't drift from the continuous sub-progress.
type Stage int

const (
	// StageFormation is the resting grid phase with a gentle vertical float.
	StageFormation Stage = iota

	// StageFragmentation scatters fragments toward their explosion targets.
	StageFragmentation

	// StageReassembly gathers surviving fragments into the ring layout and
	// shrinks overflow fragments away.
	StageReassembly
)

// String returns the lowercase name of the stage.
//
// Returns:
//   - string: the stage name, or "unknown" for out-of-range values
func (s Stage) String() string {
	switch s {
	case StageFormation:
		return "formation"
	case StageFragmentation:
		return "fragmentation"
	case StageReassembly:
		return "reassembly"
	default:
		return "unknown"
	}
}

// Default stage thresholds on the global progress axis. Expressed as
// constants rather than literals so tests can exercise the banding math
// against the shipped values.
const (
	// DefaultFormationEnd is where formation hands over to fragmentation.
	DefaultFormationEnd = 0.3

	// DefaultFragmentationEnd is where fragmentation hands over to reassembly.
	DefaultFragmentationEnd = 0.7
)

// Bands maps global scroll progress onto a stage and its local progress.
// The bands are half-open: progress exactly at a threshold belongs to the
// upper stage.
type Bands struct {
	// FormationEnd is the exclusive upper bound of the formation band.
	FormationEnd float64

	// FragmentationEnd is the exclusive upper bound of the fragmentation band.
	FragmentationEnd float64
}

// DefaultBands returns the shipped 0.3 / 0.7 stage banding.
//
// Returns:
//   - Bands: the default band thresholds
func DefaultBands() Bands {
	return Bands{
		FormationEnd:     DefaultFormationEnd,
		FragmentationEnd: DefaultFragmentationEnd,
	}
}

// At resolves the stage and local stage progress for a global progress value.
// Values outside [0,1] are not validated; local progress extrapolates past
// its band so callers that clamp upstream get exact boundary behavior and
// callers that don't still get defined arithmetic.
//
// Parameters:
//   - progress: global scroll progress
//
// Returns:
//   - Stage: the selected stage
//   - float64: local progress within the stage band
func (b Bands) At(progress float64) (Stage, float64) {
	switch {
	case progress < b.FormationEnd:
		return StageFormation, progress / b.FormationEnd
	case progress < b.FragmentationEnd:
		return StageFragmentation, (progress - b.FormationEnd) / (b.FragmentationEnd - b.FormationEnd)
	default:
		return StageReassembly, (progress - b.FragmentationEnd) / (1 - b.FragmentationEnd)
	}
}

// Band returns the global progress range [start, end) covered by a stage.
//
// Parameters:
//   - s: the stage
//
// Returns:
//   - start, end: the global progress bounds of the stage's band
func (b Bands) Band(s Stage) (start, end float64) {
	switch s {
	case StageFormation:
		return 0, b.FormationEnd
	case StageFragmentation:
		return b.FormationEnd, b.FragmentationEnd
	default:
		return b.FragmentationEnd, 1
	}
}
