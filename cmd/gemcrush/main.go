// gemcrush is a terminal match-3 puzzle game.
//
// Usage:
//
//	gemcrush list              - List available game modes
//	gemcrush play <mode>       - Play a game mode
//	gemcrush menu              - Start the interactive mode picker
//	gemcrush serve             - Start SSH server for remote play
//	gemcrush scores <mode>     - Show high scores for a mode
//	gemcrush simulate <mode>   - Run a headless auto-playthrough
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.gemcrush/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register the modes
	_ "github.com/kseleznyov/gemcrush/internal/game"
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
	Use:   "gemcrush",
	Short: "Gemcrush - Match-3 gem puzzle in your terminal",
	Long: `Gemcrush is a terminal match-3 puzzle game. Swap adjacent gems to line
up three or more of a color, chain cascades for combo bonuses, and earn
power-up gems that clear whole regions of the board.

Available commands:
  list      - Show all available game modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View high scores and achievements
  simulate  - Run a headless auto-playthrough

Examples:
  gemcrush list
  gemcrush play gems
  gemcrush play gems --level 5
  gemcrush menu
  gemcrush serve --ssh :2222
  gemcrush scores gems`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gemcrush/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
