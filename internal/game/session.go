// Package game implements the match-3 move controller on top of the grid
// engine, plus the platform-facing campaign and endless game modes.
package game

import (
	"errors"
	"math/rand"

	"github.com/kseleznyov/gemcrush/internal/config"
	"github.com/kseleznyov/gemcrush/internal/grid"
)

// Swap validation errors.
var (
	ErrOutOfBounds = errors.New("game: position out of bounds")
	ErrNoOpSwap    = errors.New("game: cells must be two distinct adjacent positions")
	ErrEmptyCell   = errors.New("game: cannot swap an empty cell")
	ErrResolving   = errors.New("game: a move is already resolving")
)

// Phase identifies where a move's resolution currently stands.
// PhaseIdle means no move is in flight; every other phase names the
// step that the next StepResolve call will perform.
type Phase int

const (
	PhaseIdle     Phase = iota
	PhaseEvaluate       // payloads swapped (or refilled), match scan pending
	PhaseClear          // matched cells marked, removal pending
	PhaseDrop           // cells removed, gravity pending
	PhaseRefill         // gems dropped and power-ups placed, refill pending
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEvaluate:
		return "evaluate"
	case PhaseClear:
		return "clear"
	case PhaseDrop:
		return "drop"
	case PhaseRefill:
		return "refill"
	default:
		return "unknown"
	}
}

// StepEvent describes what one StepResolve call did. The TUI layer uses it
// to pick animation timing and audio cues; headless callers can ignore it.
type StepEvent struct {
	Phase      Phase        // phase entered by this step
	Reverted   bool         // swap produced nothing and was undone
	Done       bool         // resolution finished, session back to idle
	Reshuffled bool         // board had no legal move left and was reshuffled
	Matched    []grid.Coord // cells marked for removal this cycle
	PowerFired []grid.Coord // cells cleared by activated power-ups this cycle
	PowerUps   []grid.Coord // power-up gems placed this step
	Removed    int          // gems removed this step
	Spawned    int          // gems created by refill this step
	ScoreDelta int          // points awarded this step
	Chain      int          // cascade cycle count so far this move
}

// MoveResult summarizes a whole committed-or-reverted move.
type MoveResult struct {
	Committed       bool
	ScoreDelta      int
	CascadeCycles   int
	CellsCleared    int
	PowerUpsCreated int
}

// pendingSpawn is a power-up gem earned this cycle, placed after the drop.
type pendingSpawn struct {
	cell  grid.Coord
	color grid.GemColor
	kind  grid.PowerKind
}

// Session owns all mutable state of one match-3 round: the board, score,
// combo chain, move budget, and the in-flight resolution machine. There is
// no package-level game state; every round is its own Session.
type Session struct {
	cfg   config.GemsConfig
	board *grid.Grid
	rng   *rand.Rand

	score     int
	movesLeft int
	chain     int // cascade cycles in the current/last move

	phase      Phase
	from, to   grid.Coord
	marked     []grid.Coord
	powerCells []grid.Coord
	spawns     []pendingSpawn
	result     MoveResult
}

// NewSession creates a round with a freshly generated match-free board.
func NewSession(cfg config.GemsConfig, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	return &Session{
		cfg:       cfg,
		board:     grid.New(cfg.Board.Rows, cfg.Board.Cols, cfg.Board.Colors, rng),
		rng:       rng,
		movesLeft: cfg.Gameplay.Moves,
	}
}

// Board exposes the underlying grid for rendering and inspection.
func (s *Session) Board() *grid.Grid {
	return s.board
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	return s.score
}

// Chain returns the cascade cycle count of the current or last move.
// It stays visible after a move completes until ExpireCombo is called.
func (s *Session) Chain() int {
	return s.chain
}

// MovesLeft returns the remaining move budget. Negative means unlimited.
func (s *Session) MovesLeft() int {
	if s.cfg.Gameplay.Moves <= 0 {
		return -1
	}
	return s.movesLeft
}

// Phase returns the current resolution phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Resolving reports whether a move is mid-resolution. While true, new swap
// attempts are rejected and combo expiry must not fire.
func (s *Session) Resolving() bool {
	return s.phase != PhaseIdle
}

// ExpireCombo resets the displayed combo chain. The TUI calls this when the
// idle combo window elapses; it is a no-op while a move is resolving.
func (s *Session) ExpireCombo() {
	if s.Resolving() {
		return
	}
	s.chain = 0
}

// BeginSwap validates the pair, exchanges the two gem payloads in place,
// and arms the resolution machine. Invalid pairs are rejected before any
// mutation. Callers drive the rest of the move with StepResolve.
func (s *Session) BeginSwap(a, b grid.Coord) error {
	if s.Resolving() {
		return ErrResolving
	}
	if !s.board.InBounds(a) || !s.board.InBounds(b) {
		return ErrOutOfBounds
	}
	if !a.Adjacent(b) {
		return ErrNoOpSwap
	}
	if s.board.At(a) == nil || s.board.At(b) == nil {
		return ErrEmptyCell
	}

	s.board.SwapPayloads(a, b)
	s.from, s.to = a, b
	s.chain = 0
	s.marked = nil
	s.powerCells = nil
	s.spawns = nil
	s.result = MoveResult{}
	s.phase = PhaseEvaluate
	return nil
}

// StepResolve advances the in-flight move by exactly one phase and reports
// what happened. Calling it while idle returns a zero event.
func (s *Session) StepResolve() StepEvent {
	switch s.phase {
	case PhaseEvaluate:
		return s.stepEvaluate()
	case PhaseClear:
		return s.stepClear()
	case PhaseDrop:
		return s.stepDrop()
	case PhaseRefill:
		return s.stepRefill()
	default:
		return StepEvent{Phase: PhaseIdle}
	}
}

// stepEvaluate scans the board, activating swapped power-ups on the first
// cycle, and either marks the matched union for clearing or ends the move.
func (s *Session) stepEvaluate() StepEvent {
	var powerCells []grid.Coord
	if s.chain == 0 {
		powerCells = s.activateSwapped()
	}

	matches := s.board.FindMatches()
	union := unionCells(grid.UniqueCells(matches), powerCells)

	if len(union) == 0 {
		if s.chain == 0 {
			// Nothing happened: undo the speculative swap.
			s.board.SwapPayloads(s.from, s.to)
			s.phase = PhaseIdle
			return StepEvent{Phase: PhaseIdle, Reverted: true}
		}
		return s.finishMove()
	}

	if s.chain == 0 {
		s.result.Committed = true
		if s.cfg.Gameplay.Moves > 0 {
			s.movesLeft--
		}
	}
	s.chain++
	s.result.CascadeCycles = s.chain

	s.marked = union
	s.powerCells = powerCells
	s.spawns = s.earnedPowerUps(matches)

	delta := s.cycleScore(len(union), len(powerCells))
	s.score += delta
	s.result.ScoreDelta += delta
	s.result.CellsCleared += len(union)

	s.phase = PhaseClear
	return StepEvent{
		Phase:      PhaseClear,
		Matched:    grid.UniqueCells(matches),
		PowerFired: powerCells,
		ScoreDelta: delta,
		Chain:      s.chain,
	}
}

// stepClear removes the marked union from the board.
func (s *Session) stepClear() StepEvent {
	removed := s.board.RemoveCells(s.marked)
	s.marked = nil
	s.powerCells = nil
	s.phase = PhaseDrop
	return StepEvent{Phase: PhaseDrop, Removed: removed, Chain: s.chain}
}

// stepDrop applies gravity, then places earned power-up gems into centers
// that the drop left empty.
func (s *Session) stepDrop() StepEvent {
	s.board.DropCells()

	var placed []grid.Coord
	for _, sp := range s.spawns {
		if s.board.PlaceGem(sp.cell, sp.color, sp.kind) {
			placed = append(placed, sp.cell)
		}
	}
	s.spawns = nil
	s.result.PowerUpsCreated += len(placed)

	s.phase = PhaseRefill
	return StepEvent{Phase: PhaseRefill, PowerUps: placed, Chain: s.chain}
}

// stepRefill fills the remaining holes and loops back to evaluation so a
// cascade can pick up any new runs the refill created.
func (s *Session) stepRefill() StepEvent {
	spawned := s.board.RefillEmpties()
	if s.chain >= grid.MaxCascadeCycles {
		ev := s.finishMove()
		ev.Spawned = spawned
		return ev
	}
	s.phase = PhaseEvaluate
	return StepEvent{Phase: PhaseEvaluate, Spawned: spawned, Chain: s.chain}
}

// finishMove closes out resolution, reshuffling first if the settled board
// has no legal move left.
func (s *Session) finishMove() StepEvent {
	ev := StepEvent{Phase: PhaseIdle, Done: true, Chain: s.chain}
	if !s.board.HasAnyPossibleMove() {
		s.board.Reshuffle()
		ev.Reshuffled = true
	}
	s.phase = PhaseIdle
	return ev
}

// AttemptSwap runs a whole move synchronously: BeginSwap plus StepResolve
// until the session is idle again. Headless callers (tests, the simulate
// command) use this; the TUI drives the steps itself for pacing.
func (s *Session) AttemptSwap(a, b grid.Coord) (MoveResult, error) {
	if err := s.BeginSwap(a, b); err != nil {
		return MoveResult{}, err
	}
	for s.Resolving() {
		s.StepResolve()
	}
	return s.result, nil
}

// LastResult returns the accumulated result of the most recent move.
func (s *Session) LastResult() MoveResult {
	return s.result
}
