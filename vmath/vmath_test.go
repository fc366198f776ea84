package vmath

import (
	"testing"
	"time"
)

func near(a, b, tol int64) bool {
	return Abs(a-b) <= tol
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		in, want int64
	}{
		{0, 0},
		{-Scale, 0},
		{FromInt(4), FromInt(2)},
		{FromInt(100), FromInt(10)},
		{Scale / 4, Scale / 2},
		{FromInt(1_000_000), FromInt(1000)},
	}
	for _, tt := range tests {
		if got := Sqrt(tt.in); got != tt.want {
			t.Errorf("Sqrt(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSqrtFloorProperty(t *testing.T) {
	for _, x := range []int64{1, 3, Scale / 3, 2 * Scale, 12345678901, FromInt(777)} {
		r := Sqrt(x)
		if Mul(r, r) > x {
			t.Errorf("Sqrt(%d)=%d squares above input", x, r)
		}
		next := r + 1
		if Mul(next, next) < x-1 {
			t.Errorf("Sqrt(%d)=%d is not the floor root", x, r)
		}
	}
}

func TestTrigTable(t *testing.T) {
	if SinLUT[0] != 0 || SinLUT[LUTSize/4] != Scale || SinLUT[LUTSize/2] != 0 || SinLUT[3*LUTSize/4] != -Scale {
		t.Fatalf("cardinal points wrong: %d %d %d %d", SinLUT[0], SinLUT[LUTSize/4], SinLUT[LUTSize/2], SinLUT[3*LUTSize/4])
	}
	// sin(π/4) = 0.70710678
	if !near(Sin(Scale/8), 3037000500, 1<<8) {
		t.Errorf("Sin(π/4) = %d", Sin(Scale/8))
	}
	if Cos(0) != Scale {
		t.Errorf("Cos(0) = %d", Cos(0))
	}
	for i := 0; i < LUTSize; i++ {
		if SinLUT[i] != -SinLUT[(LUTSize-i)&LUTMask] {
			t.Fatalf("sin table not odd at %d", i)
		}
	}
}

func TestSinLerpHalfTurn(t *testing.T) {
	// sin(π·t) used by arc planning
	if got := SinLerp(Scale / 4); got != Scale {
		t.Errorf("SinLerp(quarter) = %d", got)
	}
	if got := SinLerp(0); got != 0 {
		t.Errorf("SinLerp(0) = %d", got)
	}
	if got := SinLerp(Scale / 2); got != 0 {
		t.Errorf("SinLerp(half) = %d", got)
	}
}

func TestAtan2Quadrants(t *testing.T) {
	tests := []struct {
		name   string
		dy, dx int64
		want   int64
	}{
		{"east", 0, Scale, 0},
		{"north", Scale, 0, Scale / 4},
		{"west", 0, -Scale, Scale / 2},
		{"south", -Scale, 0, 3 * Scale / 4},
		{"diagonal", Scale, Scale, Scale / 8},
	}
	for _, tt := range tests {
		got := Atan2(tt.dy, tt.dx)
		if !near(got, tt.want, 1<<12) {
			t.Errorf("%s: Atan2 = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestFromDuration(t *testing.T) {
	if got := FromDuration(time.Second); got != Scale {
		t.Errorf("1s = %d", got)
	}
	if got := FromDuration(500 * time.Millisecond); got != Half {
		t.Errorf("500ms = %d", got)
	}
}

func TestV3Normalize(t *testing.T) {
	n := V3Normalize(V3(3, 0, 4))
	if !near(n.X, FromRatio(3, 5), 4) || !near(n.Z, FromRatio(4, 5), 4) {
		t.Errorf("normalize(3,0,4) = %+v", n)
	}
	if !V3IsZero(V3Normalize(Vec3{})) {
		t.Error("zero vector must stay zero")
	}
	if got := V3NormalizeOr(Vec3{}, V3Forward); got != V3Forward {
		t.Errorf("fallback = %+v", got)
	}
}

func TestLookRotation(t *testing.T) {
	tests := []struct {
		name     string
		dir      Vec3
		yaw, pit int64
	}{
		{"forward", V3Forward, 0, 0},
		{"right", Vec3{X: Scale}, Scale / 4, 0},
		{"up", V3Up, 0, Scale / 4},
		{"down-forward", Vec3{Y: -Scale, Z: Scale}, 0, -Scale / 8},
	}
	for _, tt := range tests {
		r := LookRotation(tt.dir)
		if !near(r.Yaw, tt.yaw, 1<<12) || !near(r.Pitch, tt.pit, 1<<12) {
			t.Errorf("%s: got %+v", tt.name, r)
		}
	}

	f := LookRotation(Vec3{X: Scale, Z: Scale}).Forward()
	want := FromRatio(7071, 10000)
	if !near(f.X, want, 1<<20) || !near(f.Z, want, 1<<20) || !near(f.Y, 0, 1<<20) {
		t.Errorf("forward roundtrip = %+v", f)
	}
}
