package pinball

import "math"

// Ball is the single live ball. Exactly one instance exists while the
// session phase is launching or in-play; the simulation owns it outright.
type Ball struct {
	Pos Vec2
	Vel Vec2
}

// Integrate advances the ball by dt target frames: gravity, exponential
// friction, speed clamp, then position. It touches nothing but the ball;
// collisions are resolved afterwards.
func (b *Ball) Integrate(gravity, friction, maxSpeed, dt float64) {
	if dt <= 0 {
		return
	}

	b.Vel.Y += gravity * dt

	// friction^dt keeps damping frame-rate independent.
	damp := math.Pow(friction, dt)
	b.Vel.X *= damp
	b.Vel.Y *= damp

	b.ClampSpeed(maxSpeed)

	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// ClampSpeed rescales the velocity proportionally when it exceeds maxSpeed.
// Bounding speed limits (but does not eliminate) tunneling through thin
// geometry at low frame rates.
func (b *Ball) ClampSpeed(maxSpeed float64) {
	speed := b.Vel.Length()
	if speed > maxSpeed && speed > 0 {
		b.Vel = b.Vel.Scale(maxSpeed / speed)
	}
}
