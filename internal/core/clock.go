package core

import (
	"sync"
	"time"
)

// FrameClock normalizes wall-clock frame intervals into simulation time.
// One dt unit equals one target frame; a slow host frame yields dt > 1,
// capped at MaxFrameScale so a stall cannot teleport the ball.
type FrameClock struct {
	TargetFrameMillis float64
}

// MaxFrameScale caps how many target frames a single real frame may cover.
const MaxFrameScale = 2.0

// NewFrameClock returns a clock tuned for the given tick rate.
func NewFrameClock(tickRate int) FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return FrameClock{TargetFrameMillis: 1000.0 / float64(tickRate)}
}

// Normalize converts an elapsed interval to a dt in [0, MaxFrameScale].
func (c FrameClock) Normalize(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	dt := float64(elapsed.Microseconds()) / 1000.0 / c.TargetFrameMillis
	return ClampF(dt, 0, MaxFrameScale)
}

// FrameFunc is invoked once per frame with the real time elapsed since the
// previous invocation.
type FrameFunc func(elapsed time.Duration)

// Scheduler drives a frame callback. It decouples the simulation from any
// particular timing primitive: the TUI uses Bubble Tea ticks, headless runs
// use a ticker or a fixed step.
type Scheduler interface {
	// Start begins invoking fn. It returns immediately; Stop ends the loop.
	Start(fn FrameFunc)
	Stop()
}

// TickerScheduler invokes the frame callback from a time.Ticker and reports
// measured elapsed time, so the simulation sees real frame jitter.
type TickerScheduler struct {
	Interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewTickerScheduler returns a scheduler firing at the given tick rate.
func NewTickerScheduler(tickRate int) *TickerScheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickerScheduler{Interval: time.Second / time.Duration(tickRate)}
}

// Start begins the frame loop in a new goroutine.
func (s *TickerScheduler) Start(fn FrameFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return // already running
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func(stop, done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		prev := time.Now()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				fn(now.Sub(prev))
				prev = now
			}
		}
	}(s.stop, s.done)
}

// Stop ends the frame loop and waits for the last callback to return.
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}

// FixedScheduler invokes the frame callback synchronously with a constant
// elapsed interval. Used by headless runs and deterministic tests.
type FixedScheduler struct {
	Step   time.Duration
	Frames int

	stopped bool
}

// Start runs the configured number of frames on the calling goroutine.
func (s *FixedScheduler) Start(fn FrameFunc) {
	s.stopped = false
	for i := 0; i < s.Frames && !s.stopped; i++ {
		fn(s.Step)
	}
}

// Stop ends the loop after the current frame.
func (s *FixedScheduler) Stop() {
	s.stopped = true
}
