// Package config provides YAML-based configuration for the pinball table:
// physics constants, flipper and launch tuning, scoring rules, and the
// static table layout. Defaults are embedded so the game runs with no
// config files present.
package config

import "fmt"

// PinballConfig is the full configuration for one pinball session.
type PinballConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Flippers FlipperConfig  `yaml:"flippers"`
	Launch   LaunchConfig   `yaml:"launch"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Table    TableConfig    `yaml:"table"`
}

// PhysicsConfig holds the integrator constants. Velocities are expressed in
// table units per target frame (1/60 s); gravity in units per frame squared.
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"`     // downward acceleration per frame
	Friction   float64 `yaml:"friction"`    // per-frame velocity retention, applied as friction^dt
	MaxSpeed   float64 `yaml:"max_speed"`   // speed clamp, bounds tunneling
	WallBounce float64 `yaml:"wall_bounce"` // restitution for walls, rails and flippers (<1, lossy)
	BallRadius float64 `yaml:"ball_radius"`
}

// FlipperConfig holds flipper geometry and impulse tuning shared by both
// flippers. Angles are radians; positive angles point the tip downward.
type FlipperConfig struct {
	Length      float64 `yaml:"length"`
	Width       float64 `yaml:"width"`
	RestAngle   float64 `yaml:"rest_angle"`
	ActiveAngle float64 `yaml:"active_angle"`
	EaseRate    float64 `yaml:"ease_rate"` // fraction of remaining angle covered per frame

	// SwingThreshold is the angular speed (rad/frame) beyond which a
	// flipper counts as actively swinging and applies the full hit power.
	SwingThreshold float64 `yaml:"swing_threshold"`
	HitPower       float64 `yaml:"hit_power"`    // upward boost at the flipper base while swinging
	RestPower      float64 `yaml:"rest_power"`   // smaller bounce from a resting flipper
	CenterNudge    float64 `yaml:"center_nudge"` // horizontal push toward table center on an active hit
}

// LaunchConfig tunes the plunger in the launch lane.
type LaunchConfig struct {
	ChargeCycleMillis float64 `yaml:"charge_cycle_millis"` // sawtooth period, real time
	BaseSpeed         float64 `yaml:"base_speed"`          // launch speed at zero charge
	ChargeScale       float64 `yaml:"charge_scale"`        // extra speed at full charge
	Jitter            float64 `yaml:"jitter"`              // max random horizontal speed at launch
}

// ScoringConfig holds scoring and session rules.
type ScoringConfig struct {
	Balls                int     `yaml:"balls"`
	BumperCooldownMillis float64 `yaml:"bumper_cooldown_millis"`
	TargetCooldownMillis float64 `yaml:"target_cooldown_millis"`
	MultiplierStep       float64 `yaml:"multiplier_step"`
	MultiplierMax        float64 `yaml:"multiplier_max"`
	BumperMinBounce      float64 `yaml:"bumper_min_bounce"` // kick floor so slow grazes still bounce visibly
}

// PointConfig is a 2D point in table units.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// BumperConfig places one circular bumper.
type BumperConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	Points int     `yaml:"points"`
}

// TargetConfig places one rectangular target.
type TargetConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	Points int     `yaml:"points"`
}

// RailConfig places one static wall segment.
type RailConfig struct {
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
	X2 float64 `yaml:"x2"`
	Y2 float64 `yaml:"y2"`
}

// TableConfig is the static table layout in table units. The renderer
// scales it to whatever screen it gets; the physics never sees cells.
type TableConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	DrainMargin float64 `yaml:"drain_margin"` // how far below the bottom edge a ball counts as drained

	Spawn             PointConfig `yaml:"spawn"` // ball position in the launch lane
	LeftFlipperPivot  PointConfig `yaml:"left_flipper_pivot"`
	RightFlipperPivot PointConfig `yaml:"right_flipper_pivot"`

	Bumpers []BumperConfig `yaml:"bumpers"`
	Targets []TargetConfig `yaml:"targets"`
	Rails   []RailConfig   `yaml:"rails"`
}

// Validate checks the configuration for values the simulation cannot run
// with. It returns the first problem found.
func (c PinballConfig) Validate() error {
	if c.Table.Width <= 0 || c.Table.Height <= 0 {
		return fmt.Errorf("config: table dimensions must be positive, got %gx%g", c.Table.Width, c.Table.Height)
	}
	if c.Physics.BallRadius <= 0 {
		return fmt.Errorf("config: ball radius must be positive, got %g", c.Physics.BallRadius)
	}
	if c.Physics.MaxSpeed <= 0 {
		return fmt.Errorf("config: max speed must be positive, got %g", c.Physics.MaxSpeed)
	}
	if c.Physics.Friction <= 0 || c.Physics.Friction > 1 {
		return fmt.Errorf("config: friction must be in (0, 1], got %g", c.Physics.Friction)
	}
	if c.Physics.WallBounce < 0 || c.Physics.WallBounce > 1 {
		return fmt.Errorf("config: wall bounce must be in [0, 1], got %g", c.Physics.WallBounce)
	}
	if c.Scoring.Balls < 1 || c.Scoring.Balls > 3 {
		return fmt.Errorf("config: balls must be in 1..3, got %d", c.Scoring.Balls)
	}
	if c.Scoring.MultiplierMax < 1 {
		return fmt.Errorf("config: multiplier max must be >= 1, got %g", c.Scoring.MultiplierMax)
	}
	if c.Flippers.Length <= 0 {
		return fmt.Errorf("config: flipper length must be positive, got %g", c.Flippers.Length)
	}
	if c.Launch.ChargeCycleMillis <= 0 {
		return fmt.Errorf("config: launch charge cycle must be positive, got %g", c.Launch.ChargeCycleMillis)
	}
	for i, b := range c.Table.Bumpers {
		if b.Radius <= 0 {
			return fmt.Errorf("config: bumper %d radius must be positive, got %g", i, b.Radius)
		}
		if b.X < 0 || b.X > c.Table.Width || b.Y < 0 || b.Y > c.Table.Height {
			return fmt.Errorf("config: bumper %d at (%g, %g) is outside the table", i, b.X, b.Y)
		}
	}
	for i, t := range c.Table.Targets {
		if t.W <= 0 || t.H <= 0 {
			return fmt.Errorf("config: target %d must have positive size, got %gx%g", i, t.W, t.H)
		}
	}
	return nil
}
