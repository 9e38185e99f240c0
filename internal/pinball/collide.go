package pinball

import (
	"math"

	"github.com/vovakirdan/tui-pinball/internal/config"
)

// Flipper impulse shaping. The tip weighting and swing reference are play
// tested alongside the cooldown windows in the default config.
const (
	tipBasePower  = 0.6  // share of hit power at the flipper base
	tipExtraPower = 0.8  // additional share at the tip, scaled by t
	swingRefSpeed = 0.25 // rad/frame at which swing scale reaches 1.0
	maxSwingScale = 1.6
	pushEpsilon   = 0.1 // separation margin after a push-out
)

// hit records one scoring contact for the session state machine.
type hit struct {
	points int
	bumper bool // bumper hits grow the multiplier, target hits do not
}

// resolver tests the post-integration ball against all table geometry and
// applies velocity reflection, push-out correction and scoring side
// effects. Processing order is walls, rails, flippers, bumpers, targets:
// flipper pushes must land before bumper scoring reads the corrected
// position, or overlaps double count.
type resolver struct {
	physics config.PhysicsConfig
	flipper config.FlipperConfig
	scoring config.ScoringConfig
	layout  *Layout
}

func newResolver(cfg config.PinballConfig, layout *Layout) resolver {
	return resolver{
		physics: cfg.Physics,
		flipper: cfg.Flippers,
		scoring: cfg.Scoring,
		layout:  layout,
	}
}

// Resolve runs one full collision pass. nowMillis is the simulation clock
// used for cooldown windows and last-hit timestamps.
func (r *resolver) Resolve(ball *Ball, flippers *[2]Flipper, nowMillis float64) []hit {
	r.collideWalls(ball)
	r.collideRails(ball)
	for i := range flippers {
		r.collideFlipper(ball, &flippers[i])
	}

	var hits []hit
	hits = r.collideBumpers(ball, nowMillis, hits)
	hits = r.collideTargets(ball, nowMillis, hits)
	return hits
}

// collideWalls clamps the ball inside the left, right and top edges with a
// lossy sign flip. The bottom edge is open: that is the drain.
func (r *resolver) collideWalls(ball *Ball) {
	radius := r.physics.BallRadius
	bounce := r.physics.WallBounce

	if ball.Pos.X < radius {
		ball.Pos.X = radius
		if ball.Vel.X < 0 {
			ball.Vel.X = -ball.Vel.X * bounce
		}
	}
	if ball.Pos.X > r.layout.Width-radius {
		ball.Pos.X = r.layout.Width - radius
		if ball.Vel.X > 0 {
			ball.Vel.X = -ball.Vel.X * bounce
		}
	}
	if ball.Pos.Y < radius {
		ball.Pos.Y = radius
		if ball.Vel.Y < 0 {
			ball.Vel.Y = -ball.Vel.Y * bounce
		}
	}
}

// collideRails reflects the ball off angled wall segments.
func (r *resolver) collideRails(ball *Ball) {
	radius := r.physics.BallRadius

	for i := range r.layout.Rails {
		rail := &r.layout.Rails[i]

		dist, closest, _ := PointSegment(ball.Pos, rail.A, rail.B)
		if dist >= radius {
			continue
		}

		// Outward normal: from the contact point toward the ball. When the
		// center sits exactly on the rail, fall back to the segment
		// perpendicular oriented away from the table center.
		var n Vec2
		if dist > 0 {
			n = ball.Pos.Sub(closest).Scale(1 / dist)
		} else {
			n = orientAway(SegmentNormal(rail.A, rail.B), closest, r.layout.Center).Scale(-1)
		}

		if ball.Vel.Dot(n) < 0 {
			ball.Vel = ball.Vel.Reflect(n).Scale(r.physics.WallBounce)
		}
		ball.Pos = closest.Add(n.Scale(radius + pushEpsilon))
	}
}

// collideFlipper treats the flipper as a thick segment from pivot to tip.
// A hit reflects the ball about a normal biased upward; if the flipper is
// swinging up, the ball gets an extra kick that grows toward the tip and
// with swing speed, plus a nudge toward table center. A resting flipper
// gives only a small bounce.
func (r *resolver) collideFlipper(ball *Ball, f *Flipper) {
	radius := r.physics.BallRadius
	tip := f.Tip()

	dist, closest, t := PointSegment(ball.Pos, f.Pivot, tip)
	reach := radius + f.Width/2
	if dist > reach {
		return
	}

	// Normal perpendicular to the flipper, biased upward.
	n := SegmentNormal(f.Pivot, tip)
	if n.Y > 0 {
		n = n.Scale(-1)
	}

	vel := ball.Vel
	if vel.Dot(n) < 0 {
		vel = vel.Reflect(n)
	}
	vel = vel.Scale(r.physics.WallBounce)

	if f.SwingingUp(r.flipper.SwingThreshold) {
		swing := math.Abs(f.AngularVel) / swingRefSpeed
		if swing > maxSwingScale {
			swing = maxSwingScale
		}
		power := r.flipper.HitPower * (tipBasePower + tipExtraPower*t) * swing
		vel.Y -= power

		nudge := r.flipper.CenterNudge
		if f.Side == SideRight {
			nudge = -nudge
		}
		vel.X += nudge
	} else {
		vel.Y -= r.flipper.RestPower
	}

	ball.Vel = vel
	ball.ClampSpeed(r.physics.MaxSpeed)
	ball.Pos = closest.Add(n.Scale(reach + pushEpsilon))
}

// collideBumpers bounces the ball off circular bumpers and scores them.
// A bumper in its cooldown window is ignored entirely, which prevents
// multi-tick double scoring while the ball is still overlapping.
func (r *resolver) collideBumpers(ball *Ball, nowMillis float64, hits []hit) []hit {
	radius := r.physics.BallRadius

	for i := range r.layout.Bumpers {
		b := &r.layout.Bumpers[i]

		delta := ball.Pos.Sub(b.Pos)
		if delta.Length() >= b.Radius+radius {
			continue
		}
		if b.LastHitMillis >= 0 && nowMillis-b.LastHitMillis < r.scoring.BumperCooldownMillis {
			continue
		}

		n := delta.Normalize()
		if n.IsZero() {
			n = Vec2{Y: -1} // ball centered on the bumper, kick straight up
		}

		vel := ball.Vel.Reflect(n)
		if vel.Length() < r.scoring.BumperMinBounce {
			vel = n.Scale(r.scoring.BumperMinBounce)
		}
		ball.Vel = vel
		ball.Pos = b.Pos.Add(n.Scale(b.Radius + radius + pushEpsilon))

		b.LastHitMillis = nowMillis
		hits = append(hits, hit{points: b.Points, bumper: true})
	}
	return hits
}

// collideTargets bounces the ball off rectangular targets axis-aware: a
// wide target flips vertical velocity, a tall one horizontal. Same
// cooldown discipline as bumpers; target hits never grow the multiplier.
func (r *resolver) collideTargets(ball *Ball, nowMillis float64, hits []hit) []hit {
	radius := r.physics.BallRadius

	for i := range r.layout.Targets {
		tg := &r.layout.Targets[i]

		if !tg.contains(ball.Pos, radius) {
			continue
		}
		if tg.LastHitMillis >= 0 && nowMillis-tg.LastHitMillis < r.scoring.TargetCooldownMillis {
			continue
		}

		center := tg.Center()
		if tg.W >= tg.H {
			ball.Vel.Y = -ball.Vel.Y
			if ball.Pos.Y < center.Y {
				ball.Pos.Y = tg.Pos.Y - radius - pushEpsilon
			} else {
				ball.Pos.Y = tg.Pos.Y + tg.H + radius + pushEpsilon
			}
		} else {
			ball.Vel.X = -ball.Vel.X
			if ball.Pos.X < center.X {
				ball.Pos.X = tg.Pos.X - radius - pushEpsilon
			} else {
				ball.Pos.X = tg.Pos.X + tg.W + radius + pushEpsilon
			}
		}

		tg.LastHitMillis = nowMillis
		hits = append(hits, hit{points: tg.Points, bumper: false})
	}
	return hits
}
