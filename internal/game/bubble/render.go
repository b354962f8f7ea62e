package bubble

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bubblepop/internal/core"
)

// Visual characters for rendering
const (
	BubbleChar    = '●'
	ProjChar      = '◉'
	LauncherChar  = '▲'
	GuideChar     = '·'
	CeilingChar   = '─'
	LossLineChar  = '┄'
	NextLabelText = "Next:"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderGuide(dst)
	g.renderProjectile(dst)
	g.renderLauncher(dst)
	g.renderOverlay(dst)
}

// cellScreenPos converts a grid cell to screen coordinates. Each column
// is two characters wide; odd rows shift right by one to mimic the
// half-diameter hex offset.
func (g *Game) cellScreenPos(c Cell) (x, y int) {
	x = g.gridScreenLeft + c.Col*2 + (c.Row & 1)
	y = g.gridScreenTop + c.Row
	return x, y
}

// worldScreenPos converts a world position to screen coordinates using
// the same scale the grid renders at.
func (g *Game) worldScreenPos(wx, wy float64) (x, y int) {
	x = g.gridScreenLeft + int(math.Round((wx-g.geom.Margin-g.geom.Radius)/g.geom.Radius))
	y = g.gridScreenTop + int(math.Round((wy-g.geom.GridTop-g.geom.Radius)/g.geom.RowHeight()))
	return x, y
}

// renderHUD draws the score, shots, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(1, 0, scoreText)

	shotsText := fmt.Sprintf("Shots: %d", g.shotsLeft)
	dst.DrawTextCentered(0, shotsText)

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.level)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", g.level, campaignLevels)
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	// Ceiling line doubles as HUD separator
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, CeilingChar)
	}

	// Upcoming color on the right of the launcher row
	nx := dst.Width() - len(NextLabelText) - 3
	if nx > 0 {
		dst.DrawText(nx, g.launcherRow, NextLabelText)
		dst.SetColored(nx+len(NextLabelText)+1, g.launcherRow, BubbleChar, g.nextColor.ScreenColor())
	}
}

// renderBoard draws all placed bubbles.
func (g *Game) renderBoard(dst *core.Screen) {
	g.board.ForEach(func(b *Bubble) {
		x, y := g.cellScreenPos(b.Cell)
		if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
			dst.SetColored(x, y, BubbleChar, b.Color.ScreenColor())
		}
	})

	// Loss line below the last safe row
	lossY := g.gridScreenTop + g.lossRow
	if lossY < dst.Height() {
		for x := g.gridScreenLeft; x < g.gridScreenLeft+g.geom.Cols*2 && x < dst.Width(); x++ {
			dst.Set(x, lossY, LossLineChar)
		}
	}
}

// renderGuide draws a short dotted aim line from the launcher.
func (g *Game) renderGuide(dst *core.Screen) {
	if g.state != StateAim {
		return
	}

	dx, dy := AimDirection(g.angle)
	wx, wy := g.launcherPos()
	step := g.geom.Radius
	for i := 1; i <= 5; i++ {
		x, y := g.worldScreenPos(wx+dx*step*float64(i), wy+dy*step*float64(i))
		if x >= 0 && x < dst.Width() && y > g.gridScreenTop && y < g.launcherRow {
			dst.Set(x, y, GuideChar)
		}
	}
}

// renderProjectile draws the bubble in flight.
func (g *Game) renderProjectile(dst *core.Screen) {
	if g.proj == nil {
		return
	}
	x, y := g.worldScreenPos(g.proj.X, g.proj.Y)
	if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
		dst.SetColored(x, y, ProjChar, g.proj.Color.ScreenColor())
	}
}

// renderLauncher draws the launcher with the loaded bubble's color.
func (g *Game) renderLauncher(dst *core.Screen) {
	wx, wy := g.launcherPos()
	x, y := g.worldScreenPos(wx, wy)
	if y >= dst.Height() {
		y = dst.Height() - 1
	}
	dst.SetColored(x, y, LauncherChar, g.currentColor.ScreenColor())
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateAim, StateFlying:
		if g.transitionDelay > 0 {
			dst.DrawTextCentered(dst.Height()-1, fmt.Sprintf("Level %d", g.level))
		} else if g.state == StateAim {
			dst.DrawTextCentered(dst.Height()-1, "A/D aim  |  SPACE fire")
		}

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
