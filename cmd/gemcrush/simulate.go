package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kseleznyov/gemcrush/internal/config"
	"github.com/kseleznyov/gemcrush/internal/game"
)

var (
	flagSimMoves   int
	flagSimVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless auto-playthrough",
	Long: `Play one board automatically without a terminal UI. The auto-player
greedily picks the swap that clears the most cells each move.

Useful for balancing configs: run with a fixed seed to compare scoring
across config changes.

Examples:
  gemcrush simulate
  gemcrush simulate --seed 42
  gemcrush simulate --moves 100 --verbose
  gemcrush simulate --config ./my-gems.yaml --difficulty hard`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 0, "Move budget override (0 = config default)")
	simulateCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Print every move")
}

func runSimulate(_ *cobra.Command, _ []string) {
	gemsCfg, err := config.LoadGems(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyGemsPreset(&gemsCfg, config.DifficultyPreset(flagDifficulty))
	}
	if flagSimMoves > 0 {
		gemsCfg.Gameplay.Moves = flagSimMoves
	}
	if gemsCfg.Gameplay.Moves <= 0 {
		// Unlimited-move configs would never terminate headless.
		gemsCfg.Gameplay.Moves = 100
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := game.NewSession(gemsCfg, seed)

	var (
		moves    int
		cascades int
		powerUps int
		stuck    int
	)

	for session.MovesLeft() != 0 {
		best, ok := game.FindBestMove(session.Board())
		if !ok {
			// Stuck boards reshuffle after a committed move, so a stuck
			// start means this deal has no legal swap at all.
			stuck++
			break
		}

		result, err := session.AttemptSwap(best.From, best.To)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: swap %v-%v failed: %v\n", best.From, best.To, err)
			os.Exit(1)
		}
		moves++
		cascades += result.CascadeCycles
		powerUps += result.PowerUpsCreated

		if flagSimVerbose {
			fmt.Printf("move %3d: %v -> %v  +%d points, %d cascade cycles, %d cleared\n",
				moves, best.From, best.To, result.ScoreDelta, result.CascadeCycles, result.CellsCleared)
		}
	}

	fmt.Printf("Seed:            %d\n", seed)
	fmt.Printf("Moves played:    %d\n", moves)
	fmt.Printf("Final score:     %d\n", session.Score())
	fmt.Printf("Cascade cycles:  %d\n", cascades)
	fmt.Printf("Power-ups made:  %d\n", powerUps)
	if moves > 0 {
		fmt.Printf("Points per move: %.1f\n", float64(session.Score())/float64(moves))
	}
	if stuck > 0 {
		fmt.Println("Stopped: no legal swap available")
	}

	target := gemsCfg.Gameplay.TargetScore
	if target > 0 {
		if session.Score() >= target {
			fmt.Printf("Target %d reached\n", target)
		} else {
			fmt.Printf("Target %d missed\n", target)
		}
	}
}
