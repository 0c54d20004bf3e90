package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Colors returns the palette size for the current difficulty level.
func (d *DifficultyManager) Colors(baseColors int, score int, ticks int) int {
	level := d.Level(score, ticks)
	return baseColors + int(level*float64(d.cfg.Scaling.ExtraColors))
}

// Moves returns the move budget for the current difficulty level.
// A zero base budget means unlimited moves and is never reduced.
func (d *DifficultyManager) Moves(baseMoves int, score int, ticks int) int {
	if baseMoves <= 0 {
		return baseMoves
	}
	level := d.Level(score, ticks)
	result := baseMoves - int(level*float64(d.cfg.Scaling.MoveReduction))
	if result < 5 { // Minimum playable budget
		result = 5
	}
	return result
}

// TargetScore returns the win threshold for the current difficulty level.
func (d *DifficultyManager) TargetScore(baseTarget int, score int, ticks int) int {
	if baseTarget <= 0 {
		return baseTarget
	}
	level := d.Level(score, ticks)
	return baseTarget + int(level*d.cfg.Scaling.TargetGrowth*float64(baseTarget))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
