package pinball

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pinball/internal/core"
)

const frame = 16 * time.Millisecond

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// runSequence drives a game through a scripted input sequence with a fixed
// frame interval.
func runSequence(g *Game, ticks int) {
	for i := 0; i < ticks; i++ {
		var in core.InputState
		switch {
		case i == 0:
			in.Start = true
		case i == 40:
			in.Launch = true
		case i > 40 && i%7 < 3:
			in.LeftPressed = true
		case i > 40:
			in.RightPressed = true
		}
		g.Tick(in, frame)
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := New()
	g1.Reset(testRuntime(12345))
	runSequence(g1, 600)

	g2 := New()
	g2.Reset(testRuntime(12345))
	runSequence(g2, 600)

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("same seed and inputs diverged:\nrun1: %+v\nrun2: %+v", s1, s2)
	}
}

func TestGameTickBeforeReset(t *testing.T) {
	g := New()

	// Tick before Reset must be a safe no-op.
	result := g.Tick(core.InputState{Start: true}, frame)
	if result.State.Score != 0 || result.State.GameOver {
		t.Errorf("unexpected state before reset: %+v", result.State)
	}
}

func TestGameStartAndLaunchFlow(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	if g.session.Phase != PhaseIdle {
		t.Fatalf("phase after reset = %v, expected idle", g.session.Phase)
	}

	g.Tick(core.InputState{Start: true}, frame)
	if g.session.Phase != PhaseLaunch {
		t.Fatalf("phase after start = %v, expected launching", g.session.Phase)
	}
	if g.ball == nil {
		t.Fatal("no ball spawned on start")
	}
	if g.ball.Pos != g.layout.Spawn {
		t.Errorf("ball at %v, expected spawn %v", g.ball.Pos, g.layout.Spawn)
	}

	// Charge builds while waiting in the lane.
	for i := 0; i < 10; i++ {
		g.Tick(core.InputState{}, frame)
	}
	snap := g.Snapshot()
	if snap.Charge <= 0 || snap.Charge >= 1 {
		t.Errorf("charge = %v, expected in (0, 1)", snap.Charge)
	}

	g.Tick(core.InputState{Launch: true}, frame)
	if g.session.Phase != PhaseInPlay {
		t.Fatalf("phase after launch = %v, expected in_play", g.session.Phase)
	}
	if g.ball.Vel.Y >= 0 {
		t.Errorf("launch Vel.Y = %v, expected upward", g.ball.Vel.Y)
	}
}

func TestGameLaunchIgnoredWhenIdle(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	g.Tick(core.InputState{Launch: true}, frame)

	if g.session.Phase != PhaseIdle {
		t.Errorf("phase = %v, launch before start must be ignored", g.session.Phase)
	}
	if g.ball != nil {
		t.Error("launch before start spawned a ball")
	}
}

func TestGameDrainRespawnsUntilGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	g.Tick(core.InputState{Start: true}, frame)
	startBalls := g.session.Balls

	for ball := startBalls; ball > 0; ball-- {
		g.Tick(core.InputState{Launch: true}, frame)
		if g.session.Phase != PhaseInPlay {
			t.Fatalf("ball %d: phase = %v, expected in_play", ball, g.session.Phase)
		}

		// Force the ball below the drain line.
		g.ball.Pos = Vec2{X: g.layout.Width / 2, Y: g.layout.DrainY() + 100}
		g.ball.Vel = Vec2{X: 0, Y: 5}
		g.Tick(core.InputState{}, frame)

		if ball > 1 {
			if g.session.Phase != PhaseLaunch {
				t.Fatalf("after drain %d: phase = %v, expected launching", ball, g.session.Phase)
			}
			if g.session.Balls != ball-1 {
				t.Fatalf("after drain %d: balls = %d, expected %d", ball, g.session.Balls, ball-1)
			}
			if g.ball == nil || g.ball.Pos != g.layout.Spawn {
				t.Fatal("drained ball was not respawned in the lane")
			}
		}
	}

	if g.session.Phase != PhaseGameOver {
		t.Errorf("phase = %v, expected game_over after last drain", g.session.Phase)
	}
	if g.ball != nil {
		t.Error("ball still present after game over")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false after last drain")
	}
}

func TestGameMultiplierResetsOnDrain(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	g.Tick(core.InputState{Start: true}, frame)
	g.Tick(core.InputState{Launch: true}, frame)

	g.session.Multiplier = 3.0
	g.ball.Pos = Vec2{X: g.layout.Width / 2, Y: g.layout.DrainY() + 100}
	g.Tick(core.InputState{}, frame)

	if g.session.Multiplier != 1.0 {
		t.Errorf("multiplier = %v after drain, expected 1.0", g.session.Multiplier)
	}
}

func TestGameBestScoreSurvivesReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.SetBestScore(500)

	g.Reset(testRuntime(42))
	if g.State().Best != 500 {
		t.Errorf("best = %d after reset, expected 500", g.State().Best)
	}

	// SetBestScore only ever ratchets upward.
	g.SetBestScore(100)
	if g.State().Best != 500 {
		t.Errorf("best = %d, a lower seed must not lower it", g.State().Best)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	// Pause before start is ignored: nothing is running.
	g.Tick(core.InputState{Pause: true}, frame)
	if g.State().Paused {
		t.Error("pause while idle must be ignored")
	}

	g.Tick(core.InputState{Start: true}, frame)
	g.Tick(core.InputState{Pause: true}, frame)
	if !g.State().Paused {
		t.Error("pause while running did not pause")
	}

	// Paused game does not advance the simulation clock.
	before := g.session.ClockMillis
	g.Tick(core.InputState{}, frame)
	if g.session.ClockMillis != before {
		t.Error("simulation clock advanced while paused")
	}

	g.Tick(core.InputState{Pause: true}, frame)
	if g.State().Paused {
		t.Error("second pause did not resume")
	}
}

func TestGameBallStaysInBounds(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	g.Tick(core.InputState{Start: true}, frame)
	g.Tick(core.InputState{Launch: true}, frame)

	maxSpeed := g.cfg.Physics.MaxSpeed
	for i := 0; i < 3000; i++ {
		result := g.Tick(core.InputState{}, frame)
		if result.State.GameOver {
			break
		}
		if g.ball == nil {
			continue // between drain and relaunch
		}
		if g.ball.Pos.X < 0 || g.ball.Pos.X > g.layout.Width {
			t.Fatalf("tick %d: ball x = %v outside table width %v", i, g.ball.Pos.X, g.layout.Width)
		}
		if g.ball.Pos.Y > g.layout.DrainY() {
			t.Fatalf("tick %d: ball y = %v below the drain line %v", i, g.ball.Pos.Y, g.layout.DrainY())
		}
		if speed := g.ball.Vel.Length(); speed > maxSpeed+1e-6 {
			t.Fatalf("tick %d: speed %v exceeds clamp %v", i, speed, maxSpeed)
		}
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.Tick(core.InputState{Start: true}, frame)

	// Drain every ball.
	for g.session.Phase != PhaseGameOver {
		g.Tick(core.InputState{Launch: true}, frame)
		g.ball.Pos = Vec2{X: g.layout.Width / 2, Y: g.layout.DrainY() + 100}
		g.Tick(core.InputState{}, frame)
	}

	g.Tick(core.InputState{Restart: true}, frame)
	if g.session.Phase != PhaseLaunch {
		t.Errorf("phase after restart = %v, expected launching", g.session.Phase)
	}
	if g.session.Score != 0 || g.session.Balls != g.cfg.Scoring.Balls {
		t.Errorf("restart did not reset session: score=%d balls=%d", g.session.Score, g.session.Balls)
	}
}

func TestGameSnapshotReflectsState(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.Tick(core.InputState{Start: true}, frame)

	snap := g.Snapshot()
	if !snap.HasBall {
		t.Error("snapshot missing the spawned ball")
	}
	if snap.Phase != PhaseLaunch {
		t.Errorf("snapshot phase = %v, expected launching", snap.Phase)
	}
	if snap.TableW != g.layout.Width || snap.TableH != g.layout.Height {
		t.Errorf("snapshot table %vx%v, expected %vx%v", snap.TableW, snap.TableH, g.layout.Width, g.layout.Height)
	}
	if len(snap.Bumpers) != len(g.layout.Bumpers) || len(snap.Targets) != len(g.layout.Targets) {
		t.Error("snapshot element counts do not match the layout")
	}

	// Snapshot slices are copies: mutating them never touches the game.
	if len(snap.Bumpers) > 0 {
		snap.Bumpers[0].LastHitMillis = 12345
		if g.layout.Bumpers[0].LastHitMillis == 12345 {
			t.Error("snapshot shares bumper storage with the live layout")
		}
	}
}

func TestGameRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.Tick(core.InputState{Start: true}, frame)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("rendered frame missing the HUD score")
	}
	if !strings.Contains(out, string(BallChar)) {
		t.Error("rendered frame missing the ball")
	}
	if !strings.Contains(out, "CHARGE") {
		t.Error("rendered frame missing the launch prompt")
	}
}
