package grido

import (
	"strings"

	"github.com/vovakirdan/grido/internal/core"
	"github.com/vovakirdan/grido/internal/games/grido/block"
	"github.com/vovakirdan/grido/internal/games/grido/tile"
	"github.com/vovakirdan/grido/internal/grid"
)

// Logo is the three-line title banner.
var Logo = []string{
	"╶─╼━━━━━━━━━━━╾─╴",
	"╶╼ G R I D - O ╾╴",
	"╶─╼━━━━━━━━━━━╾─╴",
}

// HelpPages is the number of help pages RenderHelp can draw.
const HelpPages = 2

// Help pages are laid out for an 80×24 terminal.
const helpW, helpH = 80, 24

// DrawLogo draws the banner with its top-left corner at (x, y).
func DrawLogo(dst *core.Screen, x, y int) {
	for i, line := range Logo {
		dst.DrawText(x, y+i, line)
	}
}

// catalogEntry is one row of the tile reference: the tiles shown side by
// side and their description.
type catalogEntry struct {
	tiles []tile.Type
	text  string
}

var catalog = []catalogEntry{
	{[]tile.Type{tile.Plain(0)},
		"Plain tiles.  When organized\ninto a 3x3, explode and\ndisappear.  1 point."},
	{[]tile.Type{tile.Plain(1), tile.Plain(3)},
		"Shield tiles.  When exploded,\ndecrease the number, eventually\nchange to plain.  n+1 points."},
	{[]tile.Type{tile.Centerpiece(1), tile.Centerpiece(3)},
		"Centerpiece.  Only explode\nwhen 3x3 has a centerpiece\nin the center.  10*n points."},
	{[]tile.Type{tile.Whopper(1), tile.Whopper(3)},
		"Whopper.  Like centerpiece\nbut only explodes 5x5.  When\nexploded, changes to c-piece\nwith the same number.\n30 points."},
	{[]tile.Type{tile.Picker},
		"Picker.  Doesn't explode.\nAllows picking other tiles."},
	{[]tile.Type{tile.Killer(1), tile.Killer(3)},
		"Killer.  Kills tiles that\nit touches.  On drop,\nchanges to plain."},
	{[]tile.Type{tile.Permanent},
		"Permanent.\nNever explodes.\nKill them!"},
	{[]tile.Type{tile.Plus, tile.Minus},
		"Plus, Minus.  When exploded,\nchange the multiplier.\n1 point."},
	{[]tile.Type{tile.Flask(tile.Glue), tile.Flask(tile.Acid)},
		"Flask with Glue and Acid.\nSpill contents around\nwhen exploded.  1 point."},
}

var controls = []struct {
	y    int
	text string
}{
	{6, "⬅⬆⬇➡  Arrows: move current block around the playground."},
	{7, "   ↲  Enter: drop the block."},
	{8, "   ⇰  Tab: rotate the block."},
	{9, "   ⇦  Backspace: swap current block with the next block."},
	{12, "   p  Pause game."},
	{13, "   r  Restart after the game is over."},
	{14, "   q  Quit game--go back to the menu."},
}

// RenderHelp draws help page 0 (tile reference) or 1 (controls).
func RenderHelp(dst *core.Screen, page int) {
	dst.Clear()
	DrawLogo(dst, 1, 2)

	switch page {
	case 0:
		renderCatalog(dst)
	default:
		for _, c := range controls {
			dst.DrawText(1, c.y, c.text)
		}
	}
}

// renderCatalog paints every catalog entry in two columns.
func renderCatalog(dst *core.Screen) {
	gr := grid.New(helpW, helpH)

	var shown []block.Block
	x, y := 1, 3
	for _, e := range catalog {
		b := block.NewAt(x, y)
		for i, t := range e.tiles {
			b.Add(i-len(e.tiles)+1, 0, t)
		}
		b.Paint(gr)
		shown = append(shown, b)

		for dy, line := range strings.Split(e.text, "\n") {
			gr.PaintDecoration(block.CellW*(x+1)+2, block.CellH*y+dy, line)
		}

		y += 2
		if y > 9 {
			y = 1
			x += 10
		}
	}

	gr.Render(0, 0, dst)
	for _, b := range shown {
		colorize(dst, 0, 0, b)
	}
}
