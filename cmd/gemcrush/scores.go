package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kseleznyov/gemcrush/internal/game"
	"github.com/kseleznyov/gemcrush/internal/registry"
	"github.com/kseleznyov/gemcrush/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a game mode",
	Long: `Display the top 10 high scores for the specified mode, plus
every achievement unlocked so far.

Examples:
  gemcrush scores gems
  gemcrush scores gems_endless`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gemcrush list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := g.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gemcrush play %s' to set the first high score!\n", gameID)
	} else {
		// Print header
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

		// Print scores
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}

		fmt.Println()
		highScore, err := store.HighScore(gameID)
		if err == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	// Display achievements
	achievements, err := store.Achievements()
	if err != nil || len(achievements) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Achievements (%d unlocked):\n", len(achievements))
	for _, a := range achievements {
		fmt.Printf("  %-24s  %s\n", game.AchievementTitle(a.Key), a.UnlockedAt.Format("2006-01-02 15:04"))
	}
}
