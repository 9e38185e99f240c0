package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/pinball"
)

var (
	flagSimFrames   int
	flagSimRealtime bool
	flagSimVerbose  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the pinball simulation without a terminal UI.

A simple autoplayer launches balls and works the flippers. By default
the run is deterministic: frames advance with a fixed step and the RNG
seed fully determines the outcome. With --realtime the simulation runs
against a wall-clock ticker instead.

Useful for tuning table configs and for soak-testing the physics.

Examples:
  pinball sim --frames 10000 --seed 42
  pinball sim --frames 5000 --fps 30 --verbose
  pinball sim --realtime`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 10000, "Number of frames to simulate")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Drive frames from a wall-clock ticker instead of a fixed step")
	simCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Log every scoring event")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom table config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pinball-sim",
	})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	pinball.SetConfigPath(flagConfig)
	pinball.SetDifficultyPreset(flagDifficulty)

	game := pinball.New()
	game.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     seed,
	})

	logger.Info("starting simulation",
		"frames", flagSimFrames,
		"fps", flagFPS,
		"seed", seed,
		"realtime", flagSimRealtime,
	)

	sched := newSimScheduler()
	auto := autoplayer{}
	lastScore := 0
	frames := 0

	start := time.Now()
	sched.Start(func(elapsed time.Duration) {
		frames++
		in := auto.decide(game.Snapshot())
		result := game.Tick(in, elapsed)

		if flagSimVerbose && result.State.Score != lastScore {
			snap := game.Snapshot()
			logger.Info("score",
				"frame", frames,
				"score", result.State.Score,
				"delta", result.State.Score-lastScore,
				"multiplier", snap.Multiplier,
				"balls", snap.Balls,
			)
		}
		lastScore = result.State.Score

		if result.State.GameOver || frames >= flagSimFrames {
			sched.Stop()
		}
	})

	snap := game.Snapshot()
	logger.Info("simulation finished",
		"frames", frames,
		"elapsed", time.Since(start).Round(time.Millisecond),
		"phase", snap.Phase,
		"score", snap.Score,
		"balls", snap.Balls,
	)
}

// newSimScheduler picks the frame driver for the run.
func newSimScheduler() core.Scheduler {
	if flagSimRealtime {
		return core.NewTickerScheduler(flagFPS)
	}
	rate := flagFPS
	if rate <= 0 {
		rate = 60
	}
	return &core.FixedScheduler{
		Step:   time.Second / time.Duration(rate),
		Frames: flagSimFrames,
	}
}

// autoplayer is a minimal policy that keeps a headless game going: it
// starts the session, launches charged balls, and flips when the ball
// drops near a flipper.
type autoplayer struct {
	launchDelay int
}

func (a *autoplayer) decide(snap pinball.Snapshot) core.InputState {
	var in core.InputState

	switch snap.Phase {
	case pinball.PhaseIdle:
		in.Start = true

	case pinball.PhaseLaunch:
		// Let the charge build a little before pulling the plunger.
		a.launchDelay++
		if a.launchDelay > 30 {
			in.Launch = true
			a.launchDelay = 0
		}

	case pinball.PhaseInPlay:
		if !snap.HasBall {
			break
		}
		// Flip when the ball is falling in the lower third of the table.
		if snap.BallVel.Y > 0 && snap.BallPos.Y > snap.TableH*2/3 {
			if snap.BallPos.X < snap.TableW/2 {
				in.LeftPressed = true
			} else {
				in.RightPressed = true
			}
		}
	}

	return in
}
