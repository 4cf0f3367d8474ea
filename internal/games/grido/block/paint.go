package block

import (
	"github.com/vovakirdan/grido/internal/games/grido/tile"
	"github.com/vovakirdan/grido/internal/grid"
)

// Tile boxes are 5×3 grid cells; neighbors share walls, so a tile at (x, y)
// starts at grid cell (CellW*x, CellH*y).
const (
	CellW = 4
	CellH = 2
)

// Paint draws every tile of b onto g. Non-solid tiles go first so that the
// walls of solid neighbors are drawn over them.
func (b Block) Paint(g *grid.Grid) {
	for _, t := range b.Tiles {
		if !t.Type.IsSolid() {
			b.paintTile(g, b.X+t.DX, b.Y+t.DY, t.Type)
		}
	}
	for _, t := range b.Tiles {
		if t.Type.IsSolid() {
			b.paintTile(g, b.X+t.DX, b.Y+t.DY, t.Type)
		}
	}
}

func (b Block) paintTile(g *grid.Grid, x, y int, t tile.Type) {
	tx, ty := CellW*x, CellH*y
	g.Clear(tx, ty, CellW+1, CellH+1)

	if !t.IsSolid() {
		c := t.Render()
		g.PaintDecoration(tx, ty, " "+c+" "+c+" ")
		g.PaintDecoration(tx, ty+1, c+" "+c+" "+c)
		g.PaintDecoration(tx, ty+2, " "+c+" "+c+" ")
		return
	}

	walls := []struct {
		x, y, length int
		d            grid.Direction
		nx, ny       int
	}{
		{tx, ty, CellW, grid.Right, x, y - 1},
		{tx + CellW, ty, CellH, grid.Down, x + 1, y},
		{tx, ty + CellH, CellW, grid.Right, x, y + 1},
		{tx, ty, CellH, grid.Down, x - 1, y},
	}
	for _, w := range walls {
		// Shared walls are thin and leave their corners to the neighbor.
		n, ok := b.At(w.nx, w.ny)
		if ok && n.IsSolid() {
			g.PaintWall(w.x, w.y, w.length, w.d, false, grid.PenThin)
		} else {
			g.PaintWall(w.x, w.y, w.length, w.d, true, grid.PenThick)
		}
	}
	g.PaintDecoration(tx+1, ty+1, t.Render())
}
