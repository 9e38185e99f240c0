package pinball

import (
	"testing"

	"github.com/vovakirdan/tui-pinball/internal/config"
)

func testScoringConfig() config.ScoringConfig {
	return config.ScoringConfig{
		Balls:                3,
		BumperCooldownMillis: 100,
		TargetCooldownMillis: 200,
		MultiplierStep:       0.2,
		MultiplierMax:        5.0,
		BumperMinBounce:      6,
	}
}

func TestSessionStart(t *testing.T) {
	s := NewSession(testScoringConfig())

	if s.Phase != PhaseIdle {
		t.Fatalf("new session phase = %v, expected idle", s.Phase)
	}
	if !s.Start() {
		t.Fatal("Start from idle must succeed")
	}
	if s.Phase != PhaseLaunch || s.Balls != 3 || s.Score != 0 || s.Multiplier != 1.0 {
		t.Errorf("after Start: phase=%v balls=%d score=%d mult=%v", s.Phase, s.Balls, s.Score, s.Multiplier)
	}

	// Start mid-game is a silent no-op.
	s.Score = 50
	if s.Start() {
		t.Error("Start from launching must be a no-op")
	}
	s.Phase = PhaseInPlay
	if s.Start() {
		t.Error("Start from in-play must be a no-op")
	}
	if s.Score != 50 {
		t.Errorf("no-op Start changed score to %d", s.Score)
	}
}

func TestSessionRestartFromGameOver(t *testing.T) {
	s := NewSession(testScoringConfig())
	s.Phase = PhaseGameOver
	s.Score = 900
	s.Balls = 0
	s.Multiplier = 3.4

	if !s.Start() {
		t.Fatal("Start from game over must succeed")
	}
	if s.Phase != PhaseLaunch || s.Balls != 3 || s.Score != 0 || s.Multiplier != 1.0 {
		t.Errorf("restart did not reset: phase=%v balls=%d score=%d mult=%v", s.Phase, s.Balls, s.Score, s.Multiplier)
	}
}

func TestSessionTriggerLaunch(t *testing.T) {
	s := NewSession(testScoringConfig())

	// Launch outside the launching phase is a silent no-op.
	if s.TriggerLaunch() {
		t.Error("TriggerLaunch from idle must be a no-op")
	}
	if s.Phase != PhaseIdle {
		t.Errorf("no-op launch changed phase to %v", s.Phase)
	}

	s.Start()
	if !s.TriggerLaunch() {
		t.Fatal("TriggerLaunch from launching must succeed")
	}
	if s.Phase != PhaseInPlay {
		t.Errorf("phase = %v, expected in_play", s.Phase)
	}

	if s.TriggerLaunch() {
		t.Error("TriggerLaunch while in play must be a no-op")
	}
}

func TestSessionDrain(t *testing.T) {
	s := NewSession(testScoringConfig())
	s.Start()
	s.TriggerLaunch()
	s.Multiplier = 2.6

	if over := s.Drain(); over {
		t.Fatal("drain with balls remaining must not end the game")
	}
	if s.Balls != 2 {
		t.Errorf("balls = %d, expected 2", s.Balls)
	}
	if s.Multiplier != 1.0 {
		t.Errorf("multiplier = %v, expected reset to 1.0", s.Multiplier)
	}
	if s.Phase != PhaseLaunch {
		t.Errorf("phase = %v, expected back to launching", s.Phase)
	}
}

func TestSessionDrainLastBallEndsGame(t *testing.T) {
	s := NewSession(testScoringConfig())
	s.Start()
	s.Balls = 1
	s.TriggerLaunch()

	if over := s.Drain(); !over {
		t.Fatal("drain of the last ball must end the game")
	}
	if s.Phase != PhaseGameOver {
		t.Errorf("phase = %v, expected game_over", s.Phase)
	}
	if s.Balls != 0 {
		t.Errorf("balls = %d, expected 0", s.Balls)
	}
}

func TestSessionDrainWrongPhaseNoOp(t *testing.T) {
	s := NewSession(testScoringConfig())
	s.Start() // launching, not in play

	if s.Drain() {
		t.Error("drain outside in-play returned game over")
	}
	if s.Balls != 3 || s.Phase != PhaseLaunch {
		t.Errorf("no-op drain mutated session: balls=%d phase=%v", s.Balls, s.Phase)
	}
}

func TestSessionApplyScoring(t *testing.T) {
	s := NewSession(testScoringConfig())
	s.Start()
	s.TriggerLaunch()

	// First bumper hit scores at x1.0 and steps the multiplier.
	s.Apply([]hit{{points: 100, bumper: true}})
	if s.Score != 100 {
		t.Errorf("score = %d, expected 100", s.Score)
	}
	if !almostEqual(s.Multiplier, 1.2) {
		t.Errorf("multiplier = %v, expected 1.2", s.Multiplier)
	}

	// Second bumper hit scores at the stepped multiplier.
	s.Apply([]hit{{points: 100, bumper: true}})
	if s.Score != 220 {
		t.Errorf("score = %d, expected 220", s.Score)
	}
	if !almostEqual(s.Multiplier, 1.4) {
		t.Errorf("multiplier = %v, expected 1.4", s.Multiplier)
	}

	// Target hits score with the multiplier but never grow it.
	s.Apply([]hit{{points: 250, bumper: false}})
	if s.Score != 570 { // 220 + round(250 * 1.4)
		t.Errorf("score = %d, expected 570", s.Score)
	}
	if !almostEqual(s.Multiplier, 1.4) {
		t.Errorf("target hit changed multiplier to %v", s.Multiplier)
	}
}

func TestSessionMultiplierCap(t *testing.T) {
	s := NewSession(testScoringConfig())
	s.Start()
	s.TriggerLaunch()

	for i := 0; i < 50; i++ {
		s.Apply([]hit{{points: 10, bumper: true}})
	}
	if s.Multiplier > 5.0 {
		t.Errorf("multiplier = %v, expected cap at 5.0", s.Multiplier)
	}
	if !almostEqual(s.Multiplier, 5.0) {
		t.Errorf("multiplier = %v, expected to reach the cap", s.Multiplier)
	}
}

func TestSessionBestHighWater(t *testing.T) {
	s := NewSession(testScoringConfig())
	s.Start()
	s.TriggerLaunch()

	s.Apply([]hit{{points: 300, bumper: false}})
	if s.Best != 300 {
		t.Errorf("best = %d, expected 300", s.Best)
	}

	// A restart clears the score but the best stands.
	s.Phase = PhaseGameOver
	s.Start()
	if s.Score != 0 || s.Best != 300 {
		t.Errorf("after restart: score=%d best=%d", s.Score, s.Best)
	}

	// A lower run never lowers the best.
	s.TriggerLaunch()
	s.Apply([]hit{{points: 100, bumper: false}})
	if s.Best != 300 {
		t.Errorf("best = %d, expected unchanged 300", s.Best)
	}
}

func TestSessionAdvanceClock(t *testing.T) {
	s := NewSession(testScoringConfig())

	s.Advance(16.7)
	s.Advance(16.7)
	if !almostEqual(s.ClockMillis, 33.4) {
		t.Errorf("clock = %v, expected 33.4", s.ClockMillis)
	}

	// Non-positive intervals never move the clock backward.
	s.Advance(-5)
	s.Advance(0)
	if !almostEqual(s.ClockMillis, 33.4) {
		t.Errorf("clock = %v after non-positive advances, expected 33.4", s.ClockMillis)
	}
}

func TestSessionRunning(t *testing.T) {
	s := NewSession(testScoringConfig())
	if s.Running() {
		t.Error("idle session must not be running")
	}
	s.Start()
	if !s.Running() {
		t.Error("launching session must be running")
	}
	s.TriggerLaunch()
	if !s.Running() {
		t.Error("in-play session must be running")
	}
	s.Balls = 1
	s.Drain()
	if s.Running() {
		t.Error("game-over session must not be running")
	}
}
