// Package config provides YAML-based game configuration loading and
// difficulty management for the gem board modes.
package config

// GemsConfig contains all configuration for the gem board game.
type GemsConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Animation  AnimationConfig  `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board dimensions and gem palette size.
type BoardConfig struct {
	Rows   int `yaml:"rows"`
	Cols   int `yaml:"cols"`
	Colors int `yaml:"colors"`
}

// ScoringConfig defines point values and combo behavior.
type ScoringConfig struct {
	GemPoints    int     `yaml:"gem_points"`    // Points per cleared gem before multipliers
	ComboStep    float64 `yaml:"combo_step"`    // Multiplier added per extra cascade cycle
	ComboCap     float64 `yaml:"combo_cap"`     // Upper bound on the combo multiplier
	PowerUpBonus int     `yaml:"powerup_bonus"` // Flat bonus per gem cleared by a power-up
}

// PowerUpConfig defines when power-up gems are earned and how they behave.
type PowerUpConfig struct {
	AreaThreshold  int `yaml:"area_threshold"`  // Run length that earns an area-clear gem
	ColorThreshold int `yaml:"color_threshold"` // Run length that earns a color-clear gem
	AreaRadius     int `yaml:"area_radius"`     // Cells cleared around an area gem (1 = 3x3)
}

// GameplayConfig defines the win/lose envelope of a round.
type GameplayConfig struct {
	Moves            int `yaml:"moves"`              // Move budget, 0 = unlimited
	TargetScore      int `yaml:"target_score"`       // Score required to win, 0 = endless
	TimeLimitTicks   int `yaml:"time_limit_ticks"`   // Round timer in ticks, 0 = untimed
	ComboWindowTicks int `yaml:"combo_window_ticks"` // Ticks before an idle combo chain expires
}

// AnimationConfig defines how many ticks each resolution phase holds on screen.
type AnimationConfig struct {
	SwapTicks   int `yaml:"swap_ticks"`
	ClearTicks  int `yaml:"clear_ticks"`
	DropTicks   int `yaml:"drop_ticks"`
	RefillTicks int `yaml:"refill_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraColors   int     `yaml:"extra_colors"`   // Colors added to the palette at max difficulty
	MoveReduction int     `yaml:"move_reduction"` // Move budget reduction at max difficulty
	TargetGrowth  float64 `yaml:"target_growth"`  // Target score multiplier added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
