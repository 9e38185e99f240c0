// Package pinball implements the pinball physics core: ball integration
// under gravity and friction, collision resolution against rails, bumpers,
// targets and two actuated flippers, and the session state machine that
// owns score, balls and multiplier.
//
// The package is pure simulation. It performs no I/O, reads no wall clock,
// and is driven entirely through Game.Tick; the platform layer supplies
// timing, input and rendering.
package pinball

import "math"

// Vec2 is a 2D vector in table coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared magnitude, avoiding the sqrt where a
// comparison is all that is needed.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v scaled to unit length. A zero vector normalizes to
// the zero vector; it never divides by zero.
func (v Vec2) Normalize() Vec2 {
	m := v.Length()
	if m == 0 {
		return Vec2{}
	}
	return v.Scale(1.0 / m)
}

// Reflect mirrors v about the given unit normal: v - 2*(v·n)*n.
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// PointSegment returns the distance from p to the segment a-b, the closest
// point on the segment, and the projection parameter t clamped to [0, 1]
// (0 at a, 1 at b). The flipper resolver reuses t to weight impulses by how
// far along the flipper the contact occurred.
func PointSegment(p, a, b Vec2) (dist float64, closest Vec2, t float64) {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		// Degenerate segment: both endpoints coincide.
		return p.Sub(a).Length(), a, 0
	}

	t = p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest = a.Add(ab.Scale(t))
	return p.Sub(closest).Length(), closest, t
}

// SegmentNormal returns one of the two unit perpendiculars of the segment
// a-b. Callers must orient it away from the table interior before using it
// for reflection; see orientAway.
func SegmentNormal(a, b Vec2) Vec2 {
	d := b.Sub(a)
	return Vec2{X: -d.Y, Y: d.X}.Normalize()
}

// orientAway flips n so it points from ref toward p, i.e. away from the
// table region containing ref.
func orientAway(n, p, ref Vec2) Vec2 {
	if n.Dot(p.Sub(ref)) < 0 {
		return n.Scale(-1)
	}
	return n
}
