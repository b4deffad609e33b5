package stage

import (
	"math"
	"testing"
)

func TestBandsSelection(t *testing.T) {
	b := DefaultBands()

	cases := []struct {
		progress  float64
		wantStage Stage
		wantLocal float64
	}{
		{0, StageFormation, 0},
		{0.15, StageFormation, 0.5},
		{0.3, StageFragmentation, 0}, // boundary belongs to the upper stage
		{0.5, StageFragmentation, 0.5},
		{0.7, StageReassembly, 0}, // boundary belongs to the upper stage
		{0.85, StageReassembly, 0.5},
		{1.0, StageReassembly, 1},
	}

	for _, c := range cases {
		stage, local := b.At(c.progress)
		if stage != c.wantStage {
			t.Errorf("At(%v) stage = %v, want %v", c.progress, stage, c.wantStage)
		}
		if math.Abs(local-c.wantLocal) > 1e-12 {
			t.Errorf("At(%v) local = %v, want %v", c.progress, local, c.wantLocal)
		}
	}
}

func TestBandsIdempotent(t *testing.T) {
	b := DefaultBands()
	for i := 0; i <= 1000; i++ {
		p := float64(i) / 1000
		s1, l1 := b.At(p)
		s2, l2 := b.At(p)
		if s1 != s2 || l1 != l2 {
			t.Fatalf("At(%v) not idempotent: (%v,%v) vs (%v,%v)", p, s1, l1, s2, l2)
		}
	}
}

func TestBandsExtrapolation(t *testing.T) {
	b := DefaultBands()

	// Out-of-range progress must not panic and must stay on defined math.
	stage, local := b.At(-0.1)
	if stage != StageFormation {
		t.Errorf("At(-0.1) stage = %v, want formation", stage)
	}
	if math.IsNaN(local) {
		t.Error("At(-0.1) local is NaN")
	}

	stage, local = b.At(1.5)
	if stage != StageReassembly {
		t.Errorf("At(1.5) stage = %v, want reassembly", stage)
	}
	if math.IsNaN(local) || local <= 1 {
		t.Errorf("At(1.5) local = %v, want > 1", local)
	}
}

func TestBandsBandRanges(t *testing.T) {
	b := DefaultBands()
	start, end := b.Band(StageFragmentation)
	if start != DefaultFormationEnd || end != DefaultFragmentationEnd {
		t.Errorf("Band(fragmentation) = [%v, %v), want [%v, %v)", start, end, DefaultFormationEnd, DefaultFragmentationEnd)
	}
	start, end = b.Band(StageReassembly)
	if start != DefaultFragmentationEnd || end != 1 {
		t.Errorf("Band(reassembly) = [%v, %v), want [%v, 1)", start, end, DefaultFragmentationEnd)
	}
}
