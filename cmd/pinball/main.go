// pinball is a terminal pinball table: a physics simulation with flippers,
// bumpers, drop targets and a launch plunger, rendered in the terminal.
//
// Usage:
//
//	pinball play             - Play at the table
//	pinball scores           - Show high scores
//	pinball serve            - Start SSH server for remote play
//	pinball sim              - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pinball/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-pinball/internal/pinball"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pinball",
	Short: "Terminal pinball - flippers, bumpers and high scores",
	Long: `Pinball is a terminal-based pinball table. Charge the plunger,
launch the ball and keep it alive with the flippers.

Available commands:
  play     - Play at the table
  scores   - View high scores
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation (no terminal UI)

Examples:
  pinball play
  pinball play --difficulty hard
  pinball serve --ssh :2222
  pinball scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pinball/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}
