// arkanoid is a terminal Arkanoid-style brick breaker.
//
// Usage:
//
//	arkanoid play            - Start a game directly
//	arkanoid menu            - Interactive menu (round select, scores)
//	arkanoid rounds          - List the built-in rounds
//	arkanoid scores          - Show high scores
//	arkanoid serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arkanoid/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
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
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `Arkanoid is a terminal brick breaker: bounce the ball off your paddle,
clear the wall, catch the falling capsules and dodge the enemies.

Available commands:
  play     - Start a game directly
  menu     - Interactive menu with round select and high scores
  rounds   - List the built-in rounds
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  arkanoid play
  arkanoid play --difficulty hard --round 3
  arkanoid menu
  arkanoid serve --ssh :2222
  arkanoid scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoid/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(roundsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
