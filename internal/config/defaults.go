package config

import (
	_ "embed"
)

//go:embed defaults/pinball.yaml
var defaultPinballYAML []byte

// DefaultPinballConfig returns the hardcoded default configuration. It
// mirrors defaults/pinball.yaml and serves as the last-resort fallback if
// the embedded YAML fails to parse.
func DefaultPinballConfig() PinballConfig {
	return PinballConfig{
		Physics: PhysicsConfig{
			Gravity:    0.2,
			Friction:   0.992,
			MaxSpeed:   16.0,
			WallBounce: 0.72,
			BallRadius: 7.0,
		},
		Flippers: FlipperConfig{
			Length:         68.0,
			Width:          10.0,
			RestAngle:      0.5,
			ActiveAngle:    -0.55,
			EaseRate:       0.45,
			SwingThreshold: 0.04,
			HitPower:       7.0,
			RestPower:      2.5,
			CenterNudge:    1.2,
		},
		Launch: LaunchConfig{
			ChargeCycleMillis: 900.0,
			BaseSpeed:         14.0,
			ChargeScale:       2.5,
			Jitter:            0.4,
		},
		Scoring: ScoringConfig{
			Balls:                3,
			BumperCooldownMillis: 100.0,
			TargetCooldownMillis: 200.0,
			MultiplierStep:       0.2,
			MultiplierMax:        5.0,
			BumperMinBounce:      6.0,
		},
		Table: TableConfig{
			Width:             420.0,
			Height:            680.0,
			DrainMargin:       14.0,
			Spawn:             PointConfig{X: 402.0, Y: 640.0},
			LeftFlipperPivot:  PointConfig{X: 132.0, Y: 614.0},
			RightFlipperPivot: PointConfig{X: 288.0, Y: 614.0},
			Bumpers: []BumperConfig{
				{X: 140.0, Y: 190.0, Radius: 22.0, Points: 100},
				{X: 280.0, Y: 190.0, Radius: 22.0, Points: 100},
				{X: 210.0, Y: 290.0, Radius: 26.0, Points: 150},
			},
			Targets: []TargetConfig{
				{X: 60.0, Y: 120.0, W: 30.0, H: 12.0, Points: 250},
				{X: 310.0, Y: 120.0, W: 30.0, H: 12.0, Points: 250},
				{X: 16.0, Y: 320.0, W: 10.0, H: 36.0, Points: 200},
				{X: 356.0, Y: 320.0, W: 10.0, H: 36.0, Points: 200},
			},
			Rails: []RailConfig{
				{X1: 384.0, Y1: 160.0, X2: 384.0, Y2: 672.0},
				{X1: 300.0, Y1: 16.0, X2: 416.0, Y2: 132.0},
				{X1: 12.0, Y1: 500.0, X2: 132.0, Y2: 610.0},
				{X1: 372.0, Y1: 500.0, X2: 288.0, Y2: 610.0},
			},
		},
	}
}
