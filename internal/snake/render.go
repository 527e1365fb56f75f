package snake

import (
	"strconv"

	"github.com/toroarcade/torosnake/internal/core"
)

const (
	runeSegment = '█'
	runeFood    = '●'
)

// Render draws the current frame: header with right-aligned score, border
// frame, food, ordered snake segments, and the overlay matching the phase.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHeader(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(0, 1, g.gridCols+2, g.gridRows+2, g.opts.BorderColor)

	fx, fy := g.cell(g.food.Position())
	dst.SetCell(fx, fy, runeFood, g.food.Color())

	for i := 0; i < g.player.Len(); i++ {
		seg := g.player.Segment(i)
		sx, sy := g.cell(seg.Position())
		dst.SetCell(sx, sy, runeSegment, seg.Color())
	}

	switch g.phase {
	case core.PhasePaused:
		g.renderOverlay(dst, "Paused", "Move to play")
	case core.PhaseGameOver:
		g.renderOverlay(dst, "Game Over", "Move or press R to restart")
	}
}

// cell maps a pixel-space position to screen cell coordinates. The viewport
// origin already accounts for the header row and border frame, so the
// mapping is a plain division.
func (g *Game) cell(p core.Vec2) (int, int) {
	size := g.opts.EntitySize
	return int(p.X / size), int(p.Y / size)
}

// renderHeader draws the title and the score, right-aligned by its decimal
// digit count against the window's right edge.
func (g *Game) renderHeader(dst *core.Screen) {
	dst.DrawText(1, 0, "TOROSNAKE", g.opts.TextColor)

	score := strconv.Itoa(g.score)
	x := g.gridCols + 2 - digitCount(g.score) - 1
	dst.DrawText(x, 0, score, g.opts.TextColor)
}

// digitCount returns the number of decimal digits of a non-negative score.
func digitCount(n int) int {
	count := 1
	for n/10 != 0 {
		count++
		n /= 10
	}
	return count
}

// renderOverlay draws a centered boxed two-line message over the playfield.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, g.opts.TextColor)

	g.drawCenteredText(dst, line1, boxY+1)
	g.drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally at the given row.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	dst.DrawText(x, y, text, g.opts.TextColor)
}
