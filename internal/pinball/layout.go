package pinball

import "github.com/vovakirdan/tui-pinball/internal/config"

// Side identifies which flipper an element belongs to.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Bumper is a circular scoring element. Position, radius and point value
// are fixed for the session; LastHitMillis mutates on contact and drives
// both the scoring cooldown and the renderer's hit flash.
type Bumper struct {
	Pos           Vec2
	Radius        float64
	Points        int
	LastHitMillis float64 // simulation clock; negative means never hit
}

// Target is a rectangular scoring element with the same mutability rules
// as Bumper.
type Target struct {
	Pos           Vec2 // top-left corner
	W, H          float64
	Points        int
	LastHitMillis float64
}

// Center returns the target's center point.
func (t *Target) Center() Vec2 {
	return Vec2{X: t.Pos.X + t.W/2, Y: t.Pos.Y + t.H/2}
}

// contains reports whether p is inside the target rectangle expanded by r.
func (t *Target) contains(p Vec2, r float64) bool {
	return p.X >= t.Pos.X-r && p.X <= t.Pos.X+t.W+r &&
		p.Y >= t.Pos.Y-r && p.Y <= t.Pos.Y+t.H+r
}

// Rail is a static wall segment. Never mutated.
type Rail struct {
	A, B Vec2
}

// Layout is the static geometry of the table, built once per session from
// the configuration. Bumper and target slices are fixed in number and
// position; only their last-hit timestamps change.
type Layout struct {
	Width       float64
	Height      float64
	DrainMargin float64
	Spawn       Vec2
	Center      Vec2 // used to orient rail normals

	Bumpers []Bumper
	Targets []Target
	Rails   []Rail
}

// NewLayout builds the table geometry from configuration.
func NewLayout(tc config.TableConfig) *Layout {
	l := &Layout{
		Width:       tc.Width,
		Height:      tc.Height,
		DrainMargin: tc.DrainMargin,
		Spawn:       Vec2{X: tc.Spawn.X, Y: tc.Spawn.Y},
		Center:      Vec2{X: tc.Width / 2, Y: tc.Height / 2},
	}

	l.Bumpers = make([]Bumper, len(tc.Bumpers))
	for i, b := range tc.Bumpers {
		l.Bumpers[i] = Bumper{
			Pos:           Vec2{X: b.X, Y: b.Y},
			Radius:        b.Radius,
			Points:        b.Points,
			LastHitMillis: -1,
		}
	}

	l.Targets = make([]Target, len(tc.Targets))
	for i, t := range tc.Targets {
		l.Targets[i] = Target{
			Pos:           Vec2{X: t.X, Y: t.Y},
			W:             t.W,
			H:             t.H,
			Points:        t.Points,
			LastHitMillis: -1,
		}
	}

	l.Rails = make([]Rail, len(tc.Rails))
	for i, r := range tc.Rails {
		l.Rails[i] = Rail{
			A: Vec2{X: r.X1, Y: r.Y1},
			B: Vec2{X: r.X2, Y: r.Y2},
		}
	}

	return l
}

// DrainY returns the y coordinate below which a ball counts as drained.
func (l *Layout) DrainY() float64 {
	return l.Height + l.DrainMargin
}

// ResetHits clears the last-hit timestamps, used on a full session reset so
// a new game does not inherit flash state from the previous one.
func (l *Layout) ResetHits() {
	for i := range l.Bumpers {
		l.Bumpers[i].LastHitMillis = -1
	}
	for i := range l.Targets {
		l.Targets[i].LastHitMillis = -1
	}
}
