package core

// Cue is a semantic audio/feedback event emitted by a game step.
// The platform layer decides how to present it (sound, flash, nothing).
type Cue string

// Cues emitted by the gem game.
const (
	CueSelect        Cue = "select"
	CueSwap          Cue = "swap"
	CueSwapFail      Cue = "swapFail"
	CueMatch         Cue = "match"
	CueCascade       Cue = "cascade"
	CuePowerUp       Cue = "powerUp"
	CueLevelComplete Cue = "levelComplete"
	CueGameOver      Cue = "gameOver"
)
