package game

import (
	"fmt"
	"hash/fnv"

	"github.com/kseleznyov/gemcrush/internal/grid"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateResolving    GameStateType = "resolving"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int    // Current level (1-indexed for display)
	Mode      string // "campaign" or "endless"
	Score     int
	MovesLeft int
	Chain     int
	TimeLeft  int
	CursorRow int
	CursorCol int
	BoardHash uint64
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.session.Resolving():
		state = StateResolving
	}

	return Snapshot{
		Tick:      g.tick,
		Level:     g.levelIndex + 1,
		Mode:      string(g.mode),
		Score:     g.State().Score,
		MovesLeft: g.session.MovesLeft(),
		Chain:     g.session.Chain(),
		TimeLeft:  g.timeLeft,
		CursorRow: g.cursor.Row,
		CursorCol: g.cursor.Col,
		BoardHash: BoardHash(g.session.Board()),
		State:     state,
	}
}

// BoardHash folds every cell's color and power tag into an FNV-1a hash.
// Two boards hash equal iff their visible contents are identical.
func BoardHash(b *grid.Grid) uint64 {
	h := fnv.New64a()
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			gem := b.At(grid.C(row, col))
			if gem == nil {
				fmt.Fprintf(h, "%d,%d:.;", row, col)
				continue
			}
			fmt.Fprintf(h, "%d,%d:%d/%d;", row, col, gem.Color, gem.Power)
		}
	}
	return h.Sum64()
}
