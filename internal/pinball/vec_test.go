package pinball

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVecBasicOps(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Add = %v, expected {4 2}", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub = %v, expected {2 6}", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale = %v, expected {6 8}", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, expected -5", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, expected 5", got)
	}
	if got := a.LengthSq(); got != 25 {
		t.Errorf("LengthSq = %v, expected 25", got)
	}
}

func TestVecNormalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalize()
	if !almostEqual(v.X, 0.6) || !almostEqual(v.Y, 0.8) {
		t.Errorf("Normalize = %v, expected {0.6 0.8}", v)
	}

	// Zero vector must not divide by zero
	z := Vec2{}.Normalize()
	if !z.IsZero() {
		t.Errorf("Normalize of zero vector = %v, expected zero", z)
	}
}

func TestVecReflect(t *testing.T) {
	// Falling straight down, floor normal points up
	v := Vec2{X: 0, Y: 4}
	n := Vec2{X: 0, Y: -1}

	r := v.Reflect(n)
	if !almostEqual(r.X, 0) || !almostEqual(r.Y, -4) {
		t.Errorf("Reflect = %v, expected {0 -4}", r)
	}

	// Reflection preserves magnitude
	v = Vec2{X: 3, Y: 4}
	n = Vec2{X: -1, Y: 0}
	if got := v.Reflect(n).Length(); !almostEqual(got, v.Length()) {
		t.Errorf("Reflect changed magnitude: %v -> %v", v.Length(), got)
	}
}

func TestPointSegment(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 10, Y: 0}

	// Interior projection
	dist, closest, tt := PointSegment(Vec2{X: 5, Y: 3}, a, b)
	if !almostEqual(dist, 3) {
		t.Errorf("dist = %v, expected 3", dist)
	}
	if !almostEqual(closest.X, 5) || !almostEqual(closest.Y, 0) {
		t.Errorf("closest = %v, expected {5 0}", closest)
	}
	if !almostEqual(tt, 0.5) {
		t.Errorf("t = %v, expected 0.5", tt)
	}

	// Projection before a clamps to a
	dist, closest, tt = PointSegment(Vec2{X: -4, Y: 3}, a, b)
	if !almostEqual(dist, 5) || closest != a || tt != 0 {
		t.Errorf("clamped start: dist=%v closest=%v t=%v", dist, closest, tt)
	}

	// Projection after b clamps to b
	dist, closest, tt = PointSegment(Vec2{X: 14, Y: 3}, a, b)
	if !almostEqual(dist, 5) || closest != b || tt != 1 {
		t.Errorf("clamped end: dist=%v closest=%v t=%v", dist, closest, tt)
	}

	// Degenerate segment
	dist, closest, tt = PointSegment(Vec2{X: 3, Y: 4}, a, a)
	if !almostEqual(dist, 5) || closest != a || tt != 0 {
		t.Errorf("degenerate: dist=%v closest=%v t=%v", dist, closest, tt)
	}
}

func TestSegmentNormal(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 10, Y: 0}

	n := SegmentNormal(a, b)
	if !almostEqual(n.Length(), 1) {
		t.Errorf("normal not unit length: %v", n.Length())
	}
	if !almostEqual(n.Dot(b.Sub(a)), 0) {
		t.Errorf("normal not perpendicular: dot = %v", n.Dot(b.Sub(a)))
	}
}

func TestOrientAway(t *testing.T) {
	n := Vec2{X: 0, Y: 1}
	p := Vec2{X: 0, Y: -5}
	ref := Vec2{X: 0, Y: 0}

	// p is below ref, so the oriented normal must point down
	got := orientAway(n, p, ref)
	if got.Y >= 0 {
		t.Errorf("orientAway = %v, expected downward normal", got)
	}

	// Already pointing away: unchanged
	got = orientAway(Vec2{X: 0, Y: -1}, p, ref)
	if got.Y >= 0 {
		t.Errorf("orientAway flipped a correctly oriented normal: %v", got)
	}
}
