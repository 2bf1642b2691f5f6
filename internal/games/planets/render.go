package planets

import (
	"fmt"

	"github.com/vovakirdan/planetmatch/internal/core"
	"github.com/vovakirdan/planetmatch/internal/games/planets/engine"
)

const (
	cellWidth = 3 // characters per board cell
	hudHeight = 3
	// footer holds the message line and the controls line.
	footerHeight = 2
	minScreenW   = 44
)

type glyph struct {
	r     rune
	color core.Color
}

// planetGlyphs are indexed by token type.
var planetGlyphs = []glyph{
	{'●', core.ColorBrightRed},     // Lava
	{'◆', core.ColorBrightCyan},    // Ice
	{'○', core.ColorYellow},        // Gas
	{'▲', core.ColorBrightMagenta}, // Crystal
	{'■', core.ColorOrange},        // Desert
	{'◉', core.ColorBrightBlue},    // Ocean
	{'♣', core.ColorBrightGreen},   // Jungle
	{'◇', core.ColorGray},          // Void
}

func glyphFor(t int) glyph {
	if t >= 0 && t < len(planetGlyphs) {
		return planetGlyphs[t]
	}
	return glyph{'?', core.ColorWhite}
}

func (g *Game) minScreenSize() (int, int) {
	p := g.eng.Params()
	w := core.Max(minScreenW, p.Width*cellWidth+2)
	h := hudHeight + p.Height + 2 + footerHeight
	return w, h
}

// boardRect is the board frame, centered horizontally below the HUD.
func (g *Game) boardRect() core.Rect {
	p := g.eng.Params()
	w := p.Width*cellWidth + 2
	h := p.Height + 2
	return core.NewRect((g.screenW-w)/2, hudHeight, w, h)
}

// cellAt maps a screen position to a board cell.
func (g *Game) cellAt(x, y int) (engine.Coord, bool) {
	r := g.boardRect()
	inner := core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
	if !inner.Contains(x, y) {
		return engine.Coord{}, false
	}
	p := g.eng.Params()
	return engine.C((x-inner.X)/cellWidth, p.Height-1-(y-inner.Y)), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenW != dst.Width() || g.screenH != dst.Height() {
		g.screenW, g.screenH = dst.Width(), dst.Height()
		g.checkScreenSize()
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.boardRect()
	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderFooter(dst, board)
	g.renderOverlays(dst, board)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	w, h := g.minScreenSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", w, h))
}

func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	dst.DrawStyledTextCentered(0, fmt.Sprintf("PLANET MATCH  ·  %s", g.level.DisplayName()), core.ColorBrightCyan, core.AttrBold)

	target := 0
	if st := g.eng.State(); st != nil {
		target = st.TargetScore()
	}
	left := fmt.Sprintf("Score %d/%d", g.shown.score, target)
	right := fmt.Sprintf("Moves %d", g.shown.movesLeft)
	center := fmt.Sprintf("Level %d/%d", g.levelIndex+1, len(g.settings.Campaign))

	x := core.Max(0, board.X)
	dst.DrawStyledText(x, 1, left, core.ColorBrightWhite, 0)
	dst.DrawStyledTextCentered(1, center, core.ColorGray, 0)
	dst.DrawStyledText(core.Max(0, board.Right()-len(right)), 1, right, core.ColorBrightWhite, 0)

	if g.runScore > 0 {
		dst.DrawStyledTextCentered(2, fmt.Sprintf("Run total %d", g.runScore+g.shown.score), core.ColorGray, core.AttrDim)
	}
}

func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	frame := core.ColorGray
	if g.pacer.busy() {
		frame = core.ColorYellow
	}
	dst.DrawBox(board, frame)

	selected, hasSel := g.eng.Selected()
	h := g.display.Height()

	for y := 0; y < h; y++ {
		for x := 0; x < g.display.Width(); x++ {
			c := engine.C(x, y)
			px := board.X + 1 + x*cellWidth
			py := board.Y + 1 + (h - 1 - y)

			left, right := ' ', ' '
			cell := core.Cell{Rune: '·', Color: core.ColorGray, Attr: core.AttrDim}
			if t, ok := g.display.Get(c).Type(); ok {
				gl := glyphFor(t)
				cell = core.Cell{Rune: gl.r, Color: gl.color}
			}

			switch {
			case g.pacer.flash[c]:
				cell = core.Cell{Rune: '✶', Color: core.ColorBrightWhite, Attr: core.AttrBold}
			case g.pacer.fresh[c]:
				cell.Attr |= core.AttrBold
			}

			if hasSel && selected == c {
				left, right = '[', ']'
				cell.Attr |= core.AttrBold
			}
			if g.hint != nil && (g.hint.A == c || g.hint.B == c) {
				left, right = '(', ')'
			}

			var attr core.Attr
			if c == g.cursor && !g.pacer.busy() && g.phase == PhasePlaying {
				attr = core.AttrReverse
				cell.Attr |= core.AttrReverse
			}

			dst.SetCell(px, py, core.Cell{Rune: left, Color: core.ColorBrightWhite, Attr: attr})
			dst.SetCell(px+1, py, cell)
			dst.SetCell(px+2, py, core.Cell{Rune: right, Color: core.ColorBrightWhite, Attr: attr})
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen, board core.Rect) {
	y := board.Bottom()
	if g.message != "" {
		dst.DrawStyledTextCentered(y, g.message, core.ColorBrightYellow, core.AttrBold)
	}
	dst.DrawStyledTextCentered(y+1, g.Controls(), core.ColorGray, 0)
}

func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	case g.phase == PhaseLevelCleared:
		if g.levelIndex >= len(g.settings.Campaign)-1 {
			g.drawOverlay(dst, board, "LEVEL CLEAR!", "Final level complete!")
		} else {
			next := g.settings.Campaign[g.levelIndex+1]
			g.drawOverlay(dst, board, "LEVEL CLEAR!", "Next: "+next.DisplayName())
		}
	case g.phase == PhaseComplete:
		g.drawOverlay(dst, board, "CAMPAIGN COMPLETE!", fmt.Sprintf("Final score %d", g.runScore), "Press R to restart")
	case g.phase == PhaseGameOver:
		g.drawOverlay(dst, board, "GAME OVER", fmt.Sprintf("Final score %d", g.runScore), "Press R to restart")
	}
}

// drawOverlay draws a boxed message centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len([]rune(line)))
	}

	box := board.CenterIn(maxLen+4, len(lines)+2)
	cx, _ := board.Center()
	if box.W > board.W {
		box.X = cx - box.W/2
	}

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		x := cx - len([]rune(line))/2
		dst.DrawStyledText(x, box.Y+1+i, line, core.ColorBrightYellow, core.AttrBold)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Space: Select | ?: Hint | P: Pause | R: Restart | Q: Quit"
}
