package pinball

import (
	"math"

	"github.com/vovakirdan/tui-pinball/internal/config"
)

// Phase is the session state machine state.
type Phase string

const (
	PhaseIdle     Phase = "idle"      // no ball, waiting for start
	PhaseLaunch   Phase = "launching" // ball in the lane, plunger charging
	PhaseInPlay   Phase = "in_play"   // ball in free flight
	PhaseGameOver Phase = "game_over" // terminal, only restart accepted
)

// Session owns score, best score, balls-remaining, multiplier and the
// phase. Inputs arrive asynchronously from the player, so every invalid
// transition is a silent no-op, never an error: a harmless ignore is the
// correct response to a launch press in the wrong phase.
type Session struct {
	cfg config.ScoringConfig

	Score       int
	Best        int // monotonically non-decreasing across the process
	Balls       int
	Multiplier  float64
	Phase       Phase
	ClockMillis float64 // simulation clock, drives cooldown windows
}

// NewSession creates an idle session.
func NewSession(cfg config.ScoringConfig) *Session {
	return &Session{
		cfg:        cfg,
		Balls:      cfg.Balls,
		Multiplier: 1.0,
		Phase:      PhaseIdle,
	}
}

// Start begins a new game from idle or game-over: score, balls and
// multiplier reset wholesale and the phase moves to launching. Returns
// false (no-op) from any other phase.
func (s *Session) Start() bool {
	if s.Phase != PhaseIdle && s.Phase != PhaseGameOver {
		return false
	}
	s.Score = 0
	s.Balls = s.cfg.Balls
	s.Multiplier = 1.0
	s.Phase = PhaseLaunch
	return true
}

// TriggerLaunch moves launching to in-play. No-op in any other phase.
func (s *Session) TriggerLaunch() bool {
	if s.Phase != PhaseLaunch {
		return false
	}
	s.Phase = PhaseInPlay
	return true
}

// Drain handles the ball leaving play through the bottom: balls-remaining
// drops by one and the multiplier resets to exactly 1.0. With balls left
// the phase returns to launching for a fresh ball; at zero the session is
// over. Returns true when the game ended on this drain.
func (s *Session) Drain() (gameOver bool) {
	if s.Phase != PhaseInPlay {
		return false
	}
	if s.Balls > 0 {
		s.Balls--
	}
	s.Multiplier = 1.0
	if s.Balls > 0 {
		s.Phase = PhaseLaunch
		return false
	}
	s.Phase = PhaseGameOver
	return true
}

// Apply consumes collision hits: every hit awards points scaled by the
// current multiplier; bumper hits then grow the multiplier by a fixed
// step, capped. Target hits leave the multiplier alone.
func (s *Session) Apply(hits []hit) {
	for _, h := range hits {
		s.Score += int(math.Round(float64(h.points) * s.Multiplier))
		if h.bumper {
			s.Multiplier = math.Min(s.Multiplier+s.cfg.MultiplierStep, s.cfg.MultiplierMax)
		}
	}
	if s.Score > s.Best {
		s.Best = s.Score
	}
}

// Advance moves the simulation clock forward by raw elapsed milliseconds.
func (s *Session) Advance(elapsedMillis float64) {
	if elapsedMillis > 0 {
		s.ClockMillis += elapsedMillis
	}
}

// Running reports whether a ball exists (launching or in-play).
func (s *Session) Running() bool {
	return s.Phase == PhaseLaunch || s.Phase == PhaseInPlay
}
