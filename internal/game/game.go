package game

import (
	"github.com/kseleznyov/gemcrush/internal/config"
	"github.com/kseleznyov/gemcrush/internal/core"
	"github.com/kseleznyov/gemcrush/internal/grid"
	"github.com/kseleznyov/gemcrush/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// levelClearHoldTicks is how long the level-clear overlay stays before the
// next level loads (2 seconds at 60fps).
const levelClearHoldTicks = 120

// Game implements the gem board game on the platform interface.
// All round state lives in the Session; Game adds campaign structure,
// cursor-driven selection, and animation pacing on top.
type Game struct {
	mode Mode
	cfg  config.GemsConfig
	tick uint64
	seed int64

	session    *Session
	levelIndex int
	target     int
	timeLeft   int // ticks remaining, 0 when untimed
	bankScore  int // score carried over from cleared campaign levels

	cursor   grid.Coord
	selected *grid.Coord

	// Animation pacing: ticks to wait before the next resolution step.
	phaseTicks int
	lastEvent  StepEvent
	comboTicks int

	unlocks    *AchievementTracker
	difficulty *config.DifficultyManager // endless mode only

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// Package-level variables for config
var (
	selectedStartLevel int
	activeConfig       config.GemsConfig
	configLoaded       bool
)

// SetConfig sets the board configuration used by the next Reset.
func SetConfig(cfg config.GemsConfig) {
	activeConfig = cfg
	configLoaded = true
}

// SetStartLevel sets the starting level (1-10). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a new campaign mode gem game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
	}
}

// NewEndless creates a new endless mode gem game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

func init() {
	registry.Register("gems", func() registry.Game {
		return New()
	})
	registry.Register("gems_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "gems_endless"
	}
	return "gems"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Gem Crush (Endless)"
	}
	return "Gem Crush"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if configLoaded {
		g.cfg = activeConfig
	} else {
		g.cfg = config.DefaultGemsConfig()
	}
	g.seed = cfg.Seed
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0
	g.phaseTicks = 0
	g.comboTicks = 0
	g.lastEvent = StepEvent{}
	g.cursor = grid.C(0, 0)
	g.selected = nil
	g.bankScore = 0
	g.unlocks = NewAchievementTracker()

	// Apply selected start level (campaign only)
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.loadLevel()
	g.checkScreenSize()
}

// loadLevel sets up the current level parameters and deals a fresh board.
// Score carries across campaign levels via the running total in the HUD,
// but each level is its own session with its own budget.
func (g *Game) loadLevel() {
	cfg := g.cfg

	if g.mode == ModeEndless {
		cfg.Gameplay.TargetScore = 0
		cfg.Gameplay.TimeLimitTicks = 0
		g.target = 0
		g.timeLeft = 0
		g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	} else {
		level := GetLevel(g.levelIndex)
		if level == nil {
			level = GetLevel(LevelCount() - 1)
		}
		cfg.Board.Colors = level.Colors
		cfg.Gameplay.Moves = level.Moves
		cfg.Gameplay.TargetScore = level.Target
		cfg.Gameplay.TimeLimitTicks = level.TimeTicks
		g.target = level.Target
		g.timeLeft = level.TimeTicks
	}

	// Offset the seed per level so each board differs but stays
	// reproducible from the run seed.
	g.session = NewSession(cfg, g.seed+int64(g.levelIndex))
}

// Resize updates the known terminal dimensions without disturbing the
// current session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.session != nil {
		g.checkScreenSize()
	}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := g.session.Board().Cols*cellWidth + 3
	minH := g.session.Board().Rows + hudHeight + 4
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var cues []core.Cue

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearHoldTicks {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if g.session.Resolving() {
		// Input is ignored until the move settles.
		cues = g.stepResolution(cues)
		return core.StepResult{State: g.State(), Cues: cues}
	}

	g.stepTimers(&cues)
	if g.gameOver {
		return core.StepResult{State: g.State(), Cues: cues}
	}

	cues = g.stepInput(in, cues)
	return core.StepResult{State: g.State(), Cues: cues}
}

// stepResolution paces the in-flight move: it waits out the current
// phase's animation budget, then advances the session one step and maps
// the result onto cues and endgame checks.
func (g *Game) stepResolution(cues []core.Cue) []core.Cue {
	if g.phaseTicks > 0 {
		g.phaseTicks--
		return cues
	}

	ev := g.session.StepResolve()
	g.lastEvent = ev
	g.phaseTicks = g.phaseBudget(ev.Phase)

	switch {
	case ev.Reverted:
		cues = append(cues, core.CueSwapFail)
	case len(ev.Matched) > 0 || len(ev.PowerFired) > 0:
		if ev.Chain > 1 {
			cues = append(cues, core.CueCascade)
		} else {
			cues = append(cues, core.CueMatch)
		}
		if len(ev.PowerFired) > 0 {
			cues = append(cues, core.CuePowerUp)
			g.unlocks.Unlock(AchPowerFired)
		}
	case len(ev.PowerUps) > 0:
		cues = append(cues, core.CuePowerUp)
		g.unlocks.Unlock(AchPowerEarned)
	}

	if ev.Done {
		cues = g.finishResolution(cues)
	}
	return cues
}

// finishResolution runs once per settled move: achievements, combo window
// restart, and the win/lose decision.
func (g *Game) finishResolution(cues []core.Cue) []core.Cue {
	result := g.session.LastResult()
	if result.Committed {
		g.unlocks.Unlock(AchFirstClear)
		if result.CascadeCycles >= 3 {
			g.unlocks.Unlock(AchChainThree)
		}
		if g.session.Score() >= 5000 {
			g.unlocks.Unlock(AchScoreFive)
		}
		g.comboTicks = 0

		// Endless difficulty ramp: refills draw from a growing palette as
		// the score climbs. Gems already on the board keep their colors.
		if g.difficulty != nil && g.difficulty.IsEnabled() {
			g.session.Board().Colors = g.difficulty.Colors(
				g.cfg.Board.Colors, g.session.Score(), int(g.tick))
		}
	}

	// Win before lose: reaching the target on the last move still clears.
	if g.mode == ModeCampaign && g.target > 0 && g.session.Score() >= g.target {
		g.levelCleared = true
		g.levelClearTicks = 0
		g.unlocks.Unlock(LevelClearKey(g.levelIndex + 1))
		return append(cues, core.CueLevelComplete)
	}
	if g.session.MovesLeft() == 0 {
		g.gameOver = true
		return append(cues, core.CueGameOver)
	}
	return cues
}

// stepTimers runs the combo expiry window and the level countdown. Both
// only tick while no move is resolving.
func (g *Game) stepTimers(cues *[]core.Cue) {
	if g.session.Chain() > 0 {
		g.comboTicks++
		if g.cfg.Gameplay.ComboWindowTicks > 0 && g.comboTicks >= g.cfg.Gameplay.ComboWindowTicks {
			g.session.ExpireCombo()
			g.comboTicks = 0
		}
	}

	if g.timeLeft > 0 {
		g.timeLeft--
		if g.timeLeft == 0 {
			g.gameOver = true
			*cues = append(*cues, core.CueGameOver)
		}
	}
}

// stepInput handles cursor movement and the two-cell selection flow.
func (g *Game) stepInput(in core.InputFrame, cues []core.Cue) []core.Cue {
	board := g.session.Board()

	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Max(g.cursor.Row-1, 0)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Min(g.cursor.Row+1, board.Rows-1)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Max(g.cursor.Col-1, 0)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Min(g.cursor.Col+1, board.Cols-1)
	}

	if in.Has(core.ActionBack) {
		g.selected = nil
		return cues
	}
	if !in.Has(core.ActionSelect) {
		return cues
	}

	if g.selected == nil {
		sel := g.cursor
		g.selected = &sel
		return append(cues, core.CueSelect)
	}

	switch {
	case *g.selected == g.cursor:
		// Second click on the same cell deselects.
		g.selected = nil
	case !g.selected.Adjacent(g.cursor):
		// Non-adjacent second click re-selects.
		sel := g.cursor
		g.selected = &sel
		cues = append(cues, core.CueSelect)
	default:
		err := g.session.BeginSwap(*g.selected, g.cursor)
		g.selected = nil
		if err != nil {
			cues = append(cues, core.CueSwapFail)
		} else {
			g.phaseTicks = g.cfg.Animation.SwapTicks
			cues = append(cues, core.CueSwap)
		}
	}
	return cues
}

// phaseBudget maps a resolution phase onto its animation tick budget.
func (g *Game) phaseBudget(p Phase) int {
	switch p {
	case PhaseClear:
		return g.cfg.Animation.ClearTicks
	case PhaseDrop:
		return g.cfg.Animation.DropTicks
	case PhaseRefill:
		return g.cfg.Animation.RefillTicks
	case PhaseEvaluate:
		return g.cfg.Animation.SwapTicks
	default:
		return 0
	}
}

// advanceLevel moves to the next campaign level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		g.unlocks.Unlock(AchCampaignDone)
		return
	}

	g.bankScore += g.session.Score()
	g.levelIndex++
	g.loadLevel()
	g.checkScreenSize()
}

// Session exposes the current round for tests and the simulate command.
func (g *Game) Session() *Session {
	return g.session
}

// DrainUnlocks returns achievement keys unlocked since the last call.
func (g *Game) DrainUnlocks() []string {
	if g.unlocks == nil {
		return nil
	}
	return g.unlocks.Drain()
}

// State returns the current game state. The score is the whole-run total
// across campaign levels.
func (g *Game) State() core.GameState {
	score := g.bankScore
	if g.session != nil {
		score += g.session.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
