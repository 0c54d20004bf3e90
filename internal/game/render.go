package game

import (
	"fmt"

	"github.com/kseleznyov/gemcrush/internal/core"
	"github.com/kseleznyov/gemcrush/internal/grid"
)

const (
	cellWidth = 2 // One glyph plus a spacer per board column
	hudHeight = 3
)

// gemRunes maps gem colors to board glyphs.
var gemRunes = []rune{'●', '◆', '▲', '■', '★', '⬢'}

// gemColors maps gem colors to screen colors, index-aligned with gemRunes.
var gemColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
}

// gemRune returns the glyph for a gem, substituting power-up markers.
func gemRune(gem *grid.Gem) rune {
	if gem.Power == grid.PowerArea {
		return '✸'
	}
	if gem.Power == grid.PowerColor {
		return '◉'
	}
	return gemRunes[int(gem.Color)%len(gemRunes)]
}

// gemColor returns the screen color for a gem.
func gemColor(gem *grid.Gem) core.Color {
	return gemColors[int(gem.Color)%len(gemColors)]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.session.Board()
	boardW := board.Cols*cellWidth + 1
	boardH := board.Rows + 2

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws score, move budget, combo, and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.State().Score)
	dst.DrawText(boardX, 1, scoreStr)

	var infoStr string
	if g.mode == ModeCampaign {
		infoStr = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, LevelCount(), g.target)
	} else {
		infoStr = "Endless"
	}
	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)

	var status []string
	if moves := g.session.MovesLeft(); moves >= 0 {
		status = append(status, fmt.Sprintf("Moves: %d", moves))
	}
	if g.timeLeft > 0 {
		status = append(status, fmt.Sprintf("Time: %ds", g.timeLeft/60))
	}
	if chain := g.session.Chain(); chain > 1 {
		status = append(status, fmt.Sprintf("Combo x%d", chain))
	}
	x := boardX
	for _, s := range status {
		dst.DrawText(x, 2, s)
		x += len(s) + 2
	}
}

// renderBoard draws the bordered gem grid with cursor and selection marks.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	board := g.session.Board()
	boardW := board.Cols*cellWidth + 1
	boardH := board.Rows + 2

	dst.DrawBox(core.Rect{X: boardX, Y: boardY, W: boardW, H: boardH})

	// Cells marked for removal flash as '*' during the clear phase.
	flashing := make(map[grid.Coord]bool)
	if g.session.Phase() == PhaseClear {
		for _, c := range g.lastEvent.Matched {
			flashing[c] = true
		}
		for _, c := range g.lastEvent.PowerFired {
			flashing[c] = true
		}
	}

	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			c := grid.C(row, col)
			px := boardX + 1 + col*cellWidth
			py := boardY + 1 + row

			gem := board.At(c)
			switch {
			case flashing[c]:
				dst.SetColored(px, py, '*', core.ColorBrightWhite)
			case gem == nil:
				dst.Set(px, py, ' ')
			default:
				dst.SetColored(px, py, gemRune(gem), gemColor(gem))
			}

			if g.selected != nil && *g.selected == c {
				dst.SetColored(px-1, py, '[', core.ColorWhite)
				dst.SetColored(px+1, py, ']', core.ColorWhite)
			}
		}
	}

	// Cursor carets, drawn after selection so they win the shared spacer.
	if !g.session.Resolving() && !g.gameOver && !g.won {
		px := boardX + 1 + g.cursor.Col*cellWidth
		py := boardY + 1 + g.cursor.Row
		dst.SetColored(px-1, py, '>', core.ColorBrightYellow)
		dst.SetColored(px+1, py, '<', core.ColorBrightYellow)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		targetStr := fmt.Sprintf("Target %d reached!", g.target)
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, targetStr, "Final level complete!")
		} else {
			nextStr := fmt.Sprintf("Next: %s", Levels[g.levelIndex+1].Name)
			g.drawOverlay(dst, centerX, centerY, targetStr, nextStr)
		}
		return
	}

	if g.won {
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", "The mine is yours!", "Press R to restart")
		return
	}

	if g.gameOver {
		scoreStr := fmt.Sprintf("Final score: %d", g.State().Score)
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, "Press R to restart")
		return
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move cursor | Space/Enter: Select | P: Pause | R: Restart | Q: Quit"
}
