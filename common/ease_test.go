package common

import (
	"math"
	"testing"
)

func TestEaseOutExpoEndpoints(t *testing.T) {
	if got := EaseOutExpo(0); math.Abs(got-0) > 1e-3 {
		t.Errorf("EaseOutExpo(0) = %v, want ~0", got)
	}
	// t == 1 takes the special-case path, so equality must be exact.
	if got := EaseOutExpo(1); got != 1 {
		t.Errorf("EaseOutExpo(1) = %v, want exactly 1", got)
	}
}

func TestEaseOutExpoMonotone(t *testing.T) {
	prev := EaseOutExpo(0)
	for i := 1; i <= 100; i++ {
		cur := EaseOutExpo(float64(i) / 100)
		if cur < prev {
			t.Fatalf("EaseOutExpo not monotone at t=%v: %v < %v", float64(i)/100, cur, prev)
		}
		prev = cur
	}
}

func TestEaseInOutCubic(t *testing.T) {
	if got := EaseInOutCubic(0); got != 0 {
		t.Errorf("EaseInOutCubic(0) = %v, want 0", got)
	}
	if got := EaseInOutCubic(1); got != 1 {
		t.Errorf("EaseInOutCubic(1) = %v, want 1", got)
	}
	if got := EaseInOutCubic(0.5); got != 0.5 {
		t.Errorf("EaseInOutCubic(0.5) = %v, want exactly 0.5", got)
	}
	// First half must stay below the diagonal, second half above.
	if got := EaseInOutCubic(0.25); got >= 0.25 {
		t.Errorf("EaseInOutCubic(0.25) = %v, want < 0.25", got)
	}
	if got := EaseInOutCubic(0.75); got <= 0.75 {
		t.Errorf("EaseInOutCubic(0.75) = %v, want > 0.75", got)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-4, 5, 0.5}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(a, b, 0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(a, b, 1) = %v, want %v", got, b)
	}

	mid := Lerp(a, b, 0.5)
	for i := 0; i < 3; i++ {
		want := (a[i] + b[i]) / 2
		if math.Abs(mid[i]-want) > 1e-12 {
			t.Errorf("Lerp midpoint component %d = %v, want %v", i, mid[i], want)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{-0.5, 0, 1, 0},
		{1.5, 0, 1, 1},
		{0.3, 0, 1, 0.3},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestVec3Add(t *testing.T) {
	got := Vec3{1, -2, 3}.Add(Vec3{0.5, 2, -3})
	want := Vec3{1.5, 0, 0}
	if got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}
