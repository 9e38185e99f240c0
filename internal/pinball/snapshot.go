package pinball

// FlipperView is the read-only flipper state a renderer needs.
type FlipperView struct {
	Pivot      Vec2
	Tip        Vec2
	Angle      float64
	AngularVel float64
	Side       Side
}

// BumperView is the read-only bumper state a renderer needs; LastHitMillis
// lets it flash recently hit bumpers.
type BumperView struct {
	Pos           Vec2
	Radius        float64
	Points        int
	LastHitMillis float64
}

// TargetView is the read-only target state a renderer needs.
type TargetView struct {
	Pos           Vec2
	W, H          float64
	Points        int
	LastHitMillis float64
}

// Snapshot is the per-frame read view derived from the live simulation.
// Everything a renderer or determinism test needs, nothing it can mutate.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Score       int
	Best        int
	Balls       int
	Multiplier  float64
	Charge      float64 // launch charge in [0, 1)
	ClockMillis float64 // simulation clock, pairs with the LastHitMillis fields

	HasBall bool
	BallPos Vec2
	BallVel Vec2

	Flippers [2]FlipperView
	Bumpers  []BumperView
	Targets  []TargetView
	Rails    []Rail

	TableW float64
	TableH float64
}

// Snapshot derives the current read view. The slices are fresh copies;
// holding a snapshot across ticks is safe.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Phase: PhaseIdle, Multiplier: 1.0}
	}

	snap := Snapshot{
		Tick:        g.tick,
		Phase:       g.session.Phase,
		Score:       g.session.Score,
		Best:        g.session.Best,
		Balls:       g.session.Balls,
		Multiplier:  g.session.Multiplier,
		Charge:      g.launcher.Charge(),
		ClockMillis: g.session.ClockMillis,
		TableW:      g.layout.Width,
		TableH:      g.layout.Height,
	}

	if g.ball != nil {
		snap.HasBall = true
		snap.BallPos = g.ball.Pos
		snap.BallVel = g.ball.Vel
	}

	for i := range g.flippers {
		f := &g.flippers[i]
		snap.Flippers[i] = FlipperView{
			Pivot:      f.Pivot,
			Tip:        f.Tip(),
			Angle:      f.Angle,
			AngularVel: f.AngularVel,
			Side:       f.Side,
		}
	}

	snap.Bumpers = make([]BumperView, len(g.layout.Bumpers))
	for i, b := range g.layout.Bumpers {
		snap.Bumpers[i] = BumperView{
			Pos:           b.Pos,
			Radius:        b.Radius,
			Points:        b.Points,
			LastHitMillis: b.LastHitMillis,
		}
	}

	snap.Targets = make([]TargetView, len(g.layout.Targets))
	for i, t := range g.layout.Targets {
		snap.Targets[i] = TargetView{
			Pos:           t.Pos,
			W:             t.W,
			H:             t.H,
			Points:        t.Points,
			LastHitMillis: t.LastHitMillis,
		}
	}

	snap.Rails = make([]Rail, len(g.layout.Rails))
	copy(snap.Rails, g.layout.Rails)

	return snap
}
