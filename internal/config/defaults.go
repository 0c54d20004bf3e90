package config

import (
	_ "embed"
)

//go:embed defaults/gems.yaml
var defaultGemsYAML []byte

// DefaultGemsConfig returns the default gem board configuration.
func DefaultGemsConfig() GemsConfig {
	return GemsConfig{
		Board: BoardConfig{
			Rows:   10,
			Cols:   10,
			Colors: 4,
		},
		Scoring: ScoringConfig{
			GemPoints:    10,
			ComboStep:    0.5,
			ComboCap:     4.0,
			PowerUpBonus: 5,
		},
		PowerUps: PowerUpConfig{
			AreaThreshold:  4,
			ColorThreshold: 5,
			AreaRadius:     1,
		},
		Gameplay: GameplayConfig{
			Moves:            30,
			TargetScore:      2000,
			TimeLimitTicks:   0,
			ComboWindowTicks: 180,
		},
		Animation: AnimationConfig{
			SwapTicks:   6,
			ClearTicks:  8,
			DropTicks:   6,
			RefillTicks: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				ExtraColors:   2,
				MoveReduction: 10,
				TargetGrowth:  0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "gems", "gems_endless":
		return defaultGemsYAML
	default:
		return nil
	}
}
