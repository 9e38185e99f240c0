package pinball

import (
	"math/rand"

	"github.com/vovakirdan/tui-pinball/internal/config"
)

// Launcher is the plunger in the launch lane. While the session phase is
// launching, the charge rises in a sawtooth between 0 and 1 on real time,
// independent of the physics dt; triggering converts the charge into an
// initial upward velocity with a small randomized horizontal jitter.
type Launcher struct {
	cfg    config.LaunchConfig
	rng    *rand.Rand
	charge float64
}

// NewLauncher builds a launcher with a seeded RNG for deterministic jitter.
func NewLauncher(cfg config.LaunchConfig, rng *rand.Rand) Launcher {
	return Launcher{cfg: cfg, rng: rng}
}

// Charge returns the current charge in [0, 1).
func (l *Launcher) Charge() float64 {
	return l.charge
}

// Advance moves the sawtooth forward by raw elapsed milliseconds.
func (l *Launcher) Advance(elapsedMillis float64) {
	if elapsedMillis <= 0 {
		return
	}
	l.charge += elapsedMillis / l.cfg.ChargeCycleMillis
	for l.charge >= 1 {
		l.charge -= 1
	}
}

// Fire converts the charge into a launch velocity and resets the charge.
func (l *Launcher) Fire() Vec2 {
	v := Vec2{
		X: (l.rng.Float64()*2 - 1) * l.cfg.Jitter,
		Y: -(l.cfg.BaseSpeed + l.charge*l.cfg.ChargeScale),
	}
	l.charge = 0
	return v
}

// Reset clears the charge without firing.
func (l *Launcher) Reset() {
	l.charge = 0
}
