package pinball

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/registry"
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset = config.DifficultyNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok {
		difficultyPreset = p
	} else {
		difficultyPreset = config.DifficultyNormal
	}
}

// Game is the pinball simulation: one owned struct mutated in place by
// Tick, the system of record for every table element. The renderer reads a
// derived Snapshot and never touches the live state.
type Game struct {
	cfg     config.PinballConfig
	runtime core.RuntimeConfig
	clock   core.FrameClock

	layout   *Layout
	session  *Session
	launcher Launcher
	flippers [2]Flipper
	ball     *Ball
	res      resolver
	rng      *rand.Rand

	paused bool
	tick   uint64
}

// New creates a pinball game instance.
func New() *Game {
	return &Game{}
}

// ID returns the identifier used for CLI commands and score storage.
func (g *Game) ID() string {
	return "pinball"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pinball"
}

// Reset initializes or restarts the whole simulation. It replaces session
// and ball state wholesale, so it is safe to call at any point between
// ticks, including mid-game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.clock = core.NewFrameClock(runtime.TickRate)

	cfg, err := config.LoadPinball(configPath)
	if err != nil {
		cfg = config.DefaultPinballConfig()
	}
	config.ApplyPinballPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	best := 0
	if g.session != nil {
		best = g.session.Best // best score survives resets within the process
	}

	g.layout = NewLayout(cfg.Table)
	g.session = NewSession(cfg.Scoring)
	g.session.Best = best
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.launcher = NewLauncher(cfg.Launch, g.rng)
	g.flippers[0] = NewFlipper(Vec2{X: cfg.Table.LeftFlipperPivot.X, Y: cfg.Table.LeftFlipperPivot.Y}, SideLeft, cfg.Flippers)
	g.flippers[1] = NewFlipper(Vec2{X: cfg.Table.RightFlipperPivot.X, Y: cfg.Table.RightFlipperPivot.Y}, SideRight, cfg.Flippers)
	g.ball = nil
	g.res = newResolver(cfg, g.layout)
	g.paused = false
	g.tick = 0
}

// SetBestScore seeds the best score from external persistence. Called by
// the platform after Reset; the value only ever ratchets upward.
func (g *Game) SetBestScore(best int) {
	if g.session != nil && best > g.session.Best {
		g.session.Best = best
	}
}

// Tick advances the simulation by one frame. elapsed is the real time
// since the previous tick; it is normalized to dt in target frames before
// integration, capped so one slow frame cannot teleport the ball.
func (g *Game) Tick(in core.InputState, elapsed time.Duration) core.StepResult {
	if g.session == nil {
		return core.StepResult{} // Reset not called yet
	}
	g.tick++

	if in.Start || in.Restart {
		g.startGame()
	}
	if in.Pause && g.session.Running() {
		g.paused = !g.paused
	}

	if g.paused || !g.session.Running() {
		return core.StepResult{State: g.State()}
	}

	elapsedMillis := float64(elapsed.Microseconds()) / 1000.0
	dt := g.clock.Normalize(elapsed)
	g.session.Advance(elapsedMillis)

	// Flipper input is honored only while a ball exists; Running covers
	// exactly the launching and in-play phases.
	ease := g.cfg.Flippers.EaseRate
	g.flippers[0].Actuate(in.LeftPressed, ease, dt)
	g.flippers[1].Actuate(in.RightPressed, ease, dt)

	switch g.session.Phase {
	case PhaseLaunch:
		// The charge sawtooth runs on raw elapsed time, independent of
		// the normalized physics step.
		g.launcher.Advance(elapsedMillis)
		if in.Launch && g.session.TriggerLaunch() {
			g.ball.Vel = g.launcher.Fire()
		}

	case PhaseInPlay:
		g.stepBall(dt)
	}

	return core.StepResult{State: g.State()}
}

// startGame begins a new game if the session allows it, spawning the ball
// in the launch lane.
func (g *Game) startGame() {
	if !g.session.Start() {
		return
	}
	g.layout.ResetHits()
	g.spawnBall()
	g.paused = false
}

// spawnBall places a fresh ball at the lane spawn point.
func (g *Game) spawnBall() {
	g.ball = &Ball{Pos: g.layout.Spawn}
	g.launcher.Reset()
	g.flippers[0].Reset()
	g.flippers[1].Reset()
}

// stepBall runs one integrate-resolve-score pass and handles the drain.
func (g *Game) stepBall(dt float64) {
	g.ball.Integrate(g.cfg.Physics.Gravity, g.cfg.Physics.Friction, g.cfg.Physics.MaxSpeed, dt)

	hits := g.res.Resolve(g.ball, &g.flippers, g.session.ClockMillis)
	g.session.Apply(hits)

	if g.ball.Pos.Y > g.layout.DrainY() {
		if g.session.Drain() {
			g.ball = nil // game over: the ball is gone
		} else {
			g.spawnBall()
		}
	}
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score,
		Best:     g.session.Best,
		GameOver: g.session.Phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("pinball", func() registry.Game {
		return New()
	})
}
