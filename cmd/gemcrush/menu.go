package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kseleznyov/gemcrush/internal/audio"
	"github.com/kseleznyov/gemcrush/internal/config"
	"github.com/kseleznyov/gemcrush/internal/core"
	"github.com/kseleznyov/gemcrush/internal/game"
	"github.com/kseleznyov/gemcrush/internal/platform/tui"
	"github.com/kseleznyov/gemcrush/internal/registry"
	"github.com/kseleznyov/gemcrush/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive mode picker",
	Long: `Start gemcrush in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  gemcrush menu
  gemcrush menu --fps 30
  gemcrush menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Load game config and apply difficulty once for the whole session
	gemsCfg, cfgErr := config.LoadGems(flagConfig)
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", cfgErr)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyGemsPreset(&gemsCfg, config.DifficultyPreset(flagDifficulty))
	}
	game.SetConfig(gemsCfg)

	// Initialize audio if requested
	var sound *audio.Dispatcher
	if flagSound {
		sound = audio.NewDispatcher()
		if audioErr := sound.Initialize(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not initialize audio: %v\n", audioErr)
			sound = nil
		}
	}

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		if menuResult.Level > 0 {
			game.SetStartLevel(menuResult.Level)
		}

		// Create game instance
		g, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each game
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if err := tui.Run(g, store, sound, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if sound != nil {
		sound.Cleanup()
	}
	if store != nil {
		store.Close()
	}
}
