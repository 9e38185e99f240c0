package pinball

import (
	"math"

	"github.com/vovakirdan/tui-pinball/internal/config"
)

// Flipper is one actuated flipper. The angle eases toward the rest or
// active target every tick; the angular velocity of the tick is kept so
// the collision resolver can scale impulses by swing speed.
//
// Angles are radians measured from horizontal, positive pointing the tip
// downward. The right flipper mirrors the x component, so a decreasing
// angle means "swinging up" for both sides.
type Flipper struct {
	Pivot       Vec2
	Side        Side
	Length      float64
	Width       float64
	RestAngle   float64
	ActiveAngle float64

	Angle      float64
	AngularVel float64 // rad per target frame, negative while swinging up
}

// NewFlipper builds a flipper at its rest angle.
func NewFlipper(pivot Vec2, side Side, fc config.FlipperConfig) Flipper {
	return Flipper{
		Pivot:       pivot,
		Side:        side,
		Length:      fc.Length,
		Width:       fc.Width,
		RestAngle:   fc.RestAngle,
		ActiveAngle: fc.ActiveAngle,
		Angle:       fc.RestAngle,
	}
}

// Tip returns the current tip point: pivot + direction(angle) * length,
// mirrored horizontally for the right flipper.
func (f *Flipper) Tip() Vec2 {
	dx := math.Cos(f.Angle) * f.Length
	if f.Side == SideRight {
		dx = -dx
	}
	return Vec2{
		X: f.Pivot.X + dx,
		Y: f.Pivot.Y + math.Sin(f.Angle)*f.Length,
	}
}

// Actuate advances the flipper one tick. The angle eases toward the active
// angle while pressed, else toward the rest angle. dt is in target frames.
func (f *Flipper) Actuate(pressed bool, easeRate, dt float64) {
	target := f.RestAngle
	if pressed {
		target = f.ActiveAngle
	}

	old := f.Angle
	f.Angle += (target - f.Angle) * easeRate * dt

	if dt > 0 {
		f.AngularVel = (f.Angle - old) / dt
	} else {
		f.AngularVel = 0
	}
}

// SwingingUp reports whether the flipper is actively swinging toward its
// active angle faster than the given threshold.
func (f *Flipper) SwingingUp(threshold float64) bool {
	return f.AngularVel < -threshold
}

// Reset returns the flipper to its rest pose.
func (f *Flipper) Reset() {
	f.Angle = f.RestAngle
	f.AngularVel = 0
}
