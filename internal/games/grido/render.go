package grido

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/grido/internal/core"
	"github.com/vovakirdan/grido/internal/games/grido/block"
	"github.com/vovakirdan/grido/internal/games/grido/tile"
	"github.com/vovakirdan/grido/internal/grid"
)

// Sidebar geometry, in screen cells relative to the top-left of the layout's
// right column. The preview grid comes first, then six HUD rows.
const (
	previewW  = 3 * block.CellW
	previewH  = 3 * block.CellH
	gaugeW    = 14
	hudRows   = 6
	gaugeFill = 12
)

var eighths = []rune(" ▏▎▍▌▋▊▉")

// Gauge renders a 14-cell bar for a timer that has run for elapsed out of
// limit; the bar fills as time passes. The second result reports whether
// the timer has expired.
func Gauge(elapsed, limit time.Duration) (string, bool) {
	remaining := limit - elapsed
	if remaining < 0 {
		remaining = 0
	}
	frac := int(96 * float64(limit-remaining) / float64(limit))
	full := frac / 8

	var sb strings.Builder
	sb.WriteRune('◂')
	sb.WriteString(strings.Repeat("█", full))
	if remaining > 0 {
		sb.WriteRune(eighths[frac%8])
	}
	for i := full; i < gaugeFill-1; i++ {
		sb.WriteRune(' ')
	}
	sb.WriteRune('▸')
	return sb.String(), remaining == 0
}

// layoutSize is the screen area the game needs: the playfield grid plus
// the sidebar to its right.
func (g *Game) layoutSize() (int, int) {
	w := block.CellW*g.w + 1 + gaugeW
	h := max(block.CellH*g.h+1, previewH+1+hudRows)
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// The board is hidden while paused.
	if g.paused {
		y := dst.Height() / 2
		dst.DrawTextCentered(y, "Pause.")
		dst.DrawTextCentered(y+1, "Press P to resume")
		return
	}

	lw, lh := g.layoutSize()
	r := core.CenteredRect(dst.Width(), dst.Height(), lw, lh)

	g.renderPlayfield(dst, r.X, r.Y)
	g.renderSidebar(dst, r.X+block.CellW*g.w+1, r.Y)

	if g.gameOver {
		g.drawOverlay(dst, r,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.score),
			fmt.Sprintf("Level: %d", tile.Level(g.score)),
			"Press R to restart")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	lw, lh := g.layoutSize()
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", lw, lh, dst.Width(), dst.Height()))
}

// renderPlayfield draws the dotted background, the border, the settled
// tiles, the falling block and any particles.
func (g *Game) renderPlayfield(dst *core.Screen, ox, oy int) {
	gr := grid.New(block.CellW*g.w, block.CellH*g.h)
	paintBackground(gr)

	// Spillage may lie on border cells; the border paints over it.
	g.field.Paint(gr)
	g.border.Paint(gr)
	g.falling.Paint(gr)
	for _, p := range g.particles {
		p.paint(gr)
	}

	gr.Render(ox, oy, dst)
	colorize(dst, ox, oy, g.field)
	colorize(dst, ox, oy, g.falling)
}

// paintBackground fills gr with a diagonal dot pattern and a small thin
// lattice near the top-left corner.
func paintBackground(gr *grid.Grid) {
	for y := 0; y < gr.H(); y++ {
		for x := 0; x < gr.W(); x++ {
			if x%3 == y%3 {
				gr.PaintDecoration(x, y, ".")
			}
		}
	}

	gr.Clear(5, 3, 12, 6)
	for i := 0; i < 3; i++ {
		gr.PaintWall(6+4*i, 2, 6, grid.Down, true, grid.PenThin)
	}
	for i := 0; i < 3; i++ {
		gr.PaintWall(4, 3+2*i, 12, grid.Right, true, grid.PenThin)
	}
}

// renderSidebar draws the next-block preview and the HUD below it.
func (g *Game) renderSidebar(dst *core.Screen, x, y int) {
	preview := grid.New(previewW, previewH)
	g.next.Paint(preview)
	preview.Render(x, y, dst)
	colorize(dst, x, y, g.next)

	now := g.now()
	hud := y + previewH + 1

	bar, _ := Gauge(now.Sub(g.lastDrop), g.dropInterval())
	dst.DrawText(x, hud, bar)
	dst.DrawText(x, hud+1, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(x, hud+2, fmt.Sprintf("Level: %d", tile.Level(g.score)))

	bar, _ = Gauge(now.Sub(g.lastMult), g.cfg.Timers.Multiplier())
	dst.DrawText(x, hud+4, bar)
	dst.DrawTextColor(x, hud+5, fmt.Sprintf("Multi: x%d", g.multiplier), multiplierColor(g.multiplier))
}

// drawOverlay draws a boxed message centered over r.
func (g *Game) drawOverlay(dst *core.Screen, r core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(r.X+(r.W-boxW)/2, r.Y+(r.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(box.X+(boxW-len([]rune(line)))/2, box.Y+1+i, line)
	}
}

// colorize recolors the face cells of every tile of b. The grid was
// rendered at (ox, oy).
func colorize(dst *core.Screen, ox, oy int, b block.Block) {
	for _, t := range b.Tiles {
		c := faceColor(t.Type)
		if c == core.ColorDefault {
			continue
		}
		tx := ox + block.CellW*(b.X+t.DX)
		ty := oy + block.CellH*(b.Y+t.DY)
		if !t.Type.IsSolid() {
			for dy := 0; dy <= block.CellH; dy++ {
				for dx := 0; dx <= block.CellW; dx++ {
					recolor(dst, tx+dx, ty+dy, c)
				}
			}
			continue
		}
		for dx := 1; dx < block.CellW; dx++ {
			recolor(dst, tx+dx, ty+1, c)
		}
	}
}

func recolor(dst *core.Screen, x, y int, c core.Color) {
	cell := dst.GetCell(x, y)
	if cell.Rune == ' ' {
		return
	}
	dst.SetWithColor(x, y, cell.Rune, c)
}

func faceColor(t tile.Type) core.Color {
	switch t.Kind {
	case tile.KindPermanent:
		return core.ColorGray
	case tile.KindKiller:
		return core.ColorBrightRed
	case tile.KindPicker:
		return core.ColorYellow
	case tile.KindCenterpiece:
		return core.ColorCyan
	case tile.KindWhopper:
		return core.ColorBrightCyan
	case tile.KindFlask, tile.KindSpillage:
		if t.Liquid == tile.Glue {
			return core.ColorMagenta
		}
		return core.ColorGreen
	case tile.KindPlus:
		return core.ColorBrightGreen
	case tile.KindMinus:
		return core.ColorOrange
	case tile.KindPlain:
		if t.N > 0 {
			return core.ColorBlue
		}
	}
	return core.ColorDefault
}

func multiplierColor(m int) core.Color {
	switch {
	case m > 1:
		return core.ColorBrightGreen
	case m < 1:
		return core.ColorBrightRed
	}
	return core.ColorDefault
}
