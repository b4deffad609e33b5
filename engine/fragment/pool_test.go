package fragment

import (
	"math"
	"testing"
)

func TestPoolEvenPartition(t *testing.T) {
	p, err := NewPool(WithCount(9), WithSeed(1))
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	if p.Count() != 9 {
		t.Errorf("Count() = %d, want 9", p.Count())
	}
	if p.PerClass() != 3 {
		t.Errorf("PerClass() = %d, want 3", p.PerClass())
	}

	perClass := map[GeometryClass]int{}
	for _, f := range p.Fragments() {
		perClass[f.Class]++
	}
	for _, class := range []GeometryClass{GeometryTetrahedron, GeometryBox, GeometryOctahedron} {
		if perClass[class] != 3 {
			t.Errorf("class %v has %d fragments, want 3", class, perClass[class])
		}
	}
}

func TestPoolDropsRemainder(t *testing.T) {
	p, err := NewPool(WithCount(10), WithSeed(1))
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	// 10 fragments over 3 classes: integer division drops one.
	if p.Count() != 9 {
		t.Errorf("Count() = %d, want 9 (1 dropped)", p.Count())
	}
}

func TestPoolEmptyIsValid(t *testing.T) {
	p, err := NewPool(WithCount(0))
	if err != nil {
		t.Fatalf("NewPool failed for empty pool: %v", err)
	}
	if p.Count() != 0 {
		t.Errorf("Count() = %d, want 0", p.Count())
	}
	if got := p.Fragment(0); got != nil {
		t.Errorf("Fragment(0) on empty pool = %v, want nil", got)
	}
}

func TestPoolRejectsInvalidConfig(t *testing.T) {
	if _, err := NewPool(WithClasses()); err == nil {
		t.Error("expected error for zero geometry classes")
	}
	if _, err := NewPool(WithCount(-1)); err == nil {
		t.Error("expected error for negative count")
	}
	if _, err := NewPool(WithRingLayout(0, 1, 1)); err == nil {
		t.Error("expected error for non-positive ring size")
	}
}

func TestPoolIndexIdentity(t *testing.T) {
	p, err := NewPool(WithCount(60), WithSeed(7))
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	for i, f := range p.Fragments() {
		if f.Index != i {
			t.Fatalf("fragment at slice position %d has Index %d", i, f.Index)
		}
		if p.Fragment(i) == nil || p.Fragment(i).Index != i {
			t.Fatalf("Fragment(%d) lookup mismatch", i)
		}
	}
}

func TestPoolExplosionTargetShape(t *testing.T) {
	const radius = 4.0
	const height = 3.0
	p, err := NewPool(
		WithCount(300),
		WithSeed(42),
		WithExplosionRadius(radius),
		WithHeightRange(height),
	)
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}

	// Randomized fields carry no exact-coordinate guarantee, so assert
	// range and shape properties only.
	for _, f := range p.Fragments() {
		r := math.Hypot(f.ExplosionTarget[0], f.ExplosionTarget[2])
		if r < 2 || r > 2+radius {
			t.Fatalf("fragment %d explosion radius %v outside [2, %v]", f.Index, r, 2+radius)
		}
		if y := f.ExplosionTarget[1]; y < -height/2 || y > height/2 {
			t.Fatalf("fragment %d explosion height %v outside ±%v", f.Index, y, height/2)
		}
		for axis := 0; axis < 3; axis++ {
			if rot := f.BaseRotation[axis]; rot < 0 || rot > math.Pi {
				t.Fatalf("fragment %d base rotation axis %d = %v outside [0, π]", f.Index, axis, rot)
			}
		}
	}
}

func TestPoolExplosionAngleSweep(t *testing.T) {
	p, err := NewPool(WithCount(90), WithSeed(3))
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	total := p.Count()
	for _, f := range p.Fragments() {
		wantAngle := float64(f.Index) / float64(total) * 2 * math.Pi
		gotAngle := math.Atan2(f.ExplosionTarget[2], f.ExplosionTarget[0])
		if gotAngle < 0 {
			gotAngle += 2 * math.Pi
		}
		// Allow wraparound at the 0/2π seam.
		diff := math.Abs(gotAngle - wantAngle)
		if diff > math.Pi {
			diff = 2*math.Pi - diff
		}
		if diff > 1e-9 {
			t.Fatalf("fragment %d explosion angle %v, want %v", f.Index, gotAngle, wantAngle)
		}
	}
}

func TestPoolReassemblyCapacity(t *testing.T) {
	p, err := NewPool(
		WithCount(30),
		WithSeed(5),
		WithReassemblyCapacity(12),
		WithRingLayout(8, 1.5, 0.8),
	)
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	if p.ReassemblyCapacity() != 12 {
		t.Fatalf("ReassemblyCapacity() = %d, want 12", p.ReassemblyCapacity())
	}

	for _, f := range p.Fragments() {
		if f.Index < 12 {
			if f.FadeOut {
				t.Errorf("fragment %d within capacity marked FadeOut", f.Index)
			}
			ring := f.Index / 8
			wantRadius := 1.5 + float64(ring)*0.8
			gotRadius := math.Hypot(f.ReassemblyTarget[0], f.ReassemblyTarget[2])
			if math.Abs(gotRadius-wantRadius) > 1e-9 {
				t.Errorf("fragment %d ring radius %v, want %v", f.Index, gotRadius, wantRadius)
			}
		} else {
			if !f.FadeOut {
				t.Errorf("fragment %d beyond capacity not marked FadeOut", f.Index)
			}
		}
	}
}

func TestPoolSeededReproducibility(t *testing.T) {
	a, err := NewPool(WithCount(120), WithSeed(99))
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	b, err := NewPool(WithCount(120), WithSeed(99))
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	for i := range a.Fragments() {
		if a.Fragments()[i] != b.Fragments()[i] {
			t.Fatalf("seeded pools diverge at fragment %d", i)
		}
	}
}
