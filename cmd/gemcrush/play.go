package main

import (
	"fmt"
	"os"

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

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD/HJKL - Move cursor
  Space/Enter      - Select gem / swap with selection
  B/Esc            - Deselect
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More moves, fewer colors
  normal - Standard settings
  hard   - Fewer moves, extra color, higher targets
  fixed  - No endless-mode difficulty progression

Examples:
  gemcrush play gems
  gemcrush play gems --level 5
  gemcrush play gems --difficulty hard
  gemcrush play gems_endless --sound
  gemcrush play gems --config ./my-gems.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-10)")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gemcrush list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

	// Load game config and apply difficulty before creation
	gemsCfg, err := config.LoadGems(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyGemsPreset(&gemsCfg, config.DifficultyPreset(flagDifficulty))
	}
	game.SetConfig(gemsCfg)

	if flagLevel > 0 {
		if flagLevel > game.LevelCount() {
			fmt.Fprintf(os.Stderr, "Error: level %d does not exist (campaign has %d levels)\n", flagLevel, game.LevelCount())
			os.Exit(1)
		}
		game.SetStartLevel(flagLevel)
	}

	// Create game instance
	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Initialize audio if requested
	var sound *audio.Dispatcher
	if flagSound {
		sound = audio.NewDispatcher()
		if audioErr := sound.Initialize(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not initialize audio: %v\n", audioErr)
			sound = nil
		}
	}

	// Run the game
	runErr := tui.Run(g, store, sound, cfg)

	// Cleanup before potential exit
	if sound != nil {
		sound.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
