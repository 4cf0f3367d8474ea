// Package block implements sparse, anchored tile sets. The same Block type
// serves as the falling piece, the next-piece preview, the border and the
// settled playfield.
package block

import (
	"fmt"

	"github.com/vovakirdan/grido/internal/games/grido/random"
	"github.com/vovakirdan/grido/internal/games/grido/tile"
)

// Tile is a tile placed at an offset from its block's anchor.
type Tile struct {
	DX, DY int
	Type   tile.Type
}

// Block is an anchor plus a set of tiles. At most one tile sits on any
// absolute position. Tile order carries no meaning.
type Block struct {
	X, Y  int
	Tiles []Tile
}

// NewAt creates an empty block anchored at (x, y).
func NewAt(x, y int) Block {
	return Block{X: x, Y: y}
}

// shapes of the falling pieces, as offsets from the anchor: 1×1, 1×2, 1×3,
// "8", "d", "L" and castle.
var shapes = [][]tile.Offset{
	{{DX: 0, DY: 0}},
	{{DX: 0, DY: -1}, {DX: 0, DY: 0}},
	{{DX: 0, DY: -1}, {DX: 0, DY: 0}, {DX: 0, DY: 1}},
	{{DX: 0, DY: -1}, {DX: 0, DY: 1}},
	{{DX: -1, DY: -1}, {DX: 0, DY: 0}},
	{{DX: -1, DY: 0}, {DX: 0, DY: 0}, {DX: 0, DY: -1}},
	{{DX: 0, DY: -1}, {DX: -1, DY: 0}, {DX: 1, DY: 0}},
}

// FromShape creates a block at the origin with one random tile per offset.
func FromShape(rng random.Source, shape []tile.Offset, score int) Block {
	tiles := make([]Tile, 0, len(shape))
	for _, o := range shape {
		tiles = append(tiles, Tile{DX: o.DX, DY: o.DY, Type: tile.NewRandom(rng, score)})
	}
	return Block{Tiles: tiles}
}

// NewRandom creates a block of a uniformly chosen shape at the origin.
func NewRandom(rng random.Source, score int) Block {
	return FromShape(rng, shapes[rng.Intn(len(shapes))], score)
}

// NewBorder creates the permanent frame around a w×h playfield.
func NewBorder(w, h int) Block {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("block: negative border size %dx%d", w, h))
	}

	var tiles []Tile
	for x := 0; x < w-1; x++ {
		tiles = append(tiles,
			Tile{DX: x, DY: 0, Type: tile.Permanent},
			Tile{DX: x + 1, DY: h - 1, Type: tile.Permanent})
	}
	for y := 0; y < h-1; y++ {
		tiles = append(tiles,
			Tile{DX: 0, DY: y + 1, Type: tile.Permanent},
			Tile{DX: w - 1, DY: y, Type: tile.Permanent})
	}
	return Block{Tiles: tiles}
}

// Len returns the number of tiles.
func (b Block) Len() int {
	return len(b.Tiles)
}

// Empty reports whether the block has no tiles left.
func (b Block) Empty() bool {
	return len(b.Tiles) == 0
}

// Add places t at offset (dx, dy). The offset must be free.
func (b *Block) Add(dx, dy int, t tile.Type) {
	if _, ok := b.local(dx, dy); ok {
		panic(fmt.Sprintf("block: offset (%d,%d) already occupied", dx, dy))
	}
	b.Tiles = append(b.Tiles, Tile{DX: dx, DY: dy, Type: t})
}

// At returns the tile at absolute position (x, y).
func (b Block) At(x, y int) (tile.Type, bool) {
	return b.local(x-b.X, y-b.Y)
}

func (b Block) local(dx, dy int) (tile.Type, bool) {
	for _, t := range b.Tiles {
		if t.DX == dx && t.DY == dy {
			return t.Type, true
		}
	}
	return tile.Type{}, false
}

func (b Block) clone() Block {
	tiles := make([]Tile, len(b.Tiles))
	copy(tiles, b.Tiles)
	return Block{X: b.X, Y: b.Y, Tiles: tiles}
}

// Turned returns a copy rotated a quarter turn about the anchor.
func (b Block) Turned() Block {
	r := b.clone()
	for i, t := range r.Tiles {
		r.Tiles[i].DX, r.Tiles[i].DY = t.DY, -t.DX
	}
	return r
}

// Moved returns a copy translated by (dx, dy).
func (b Block) Moved(dx, dy int) Block {
	r := b.clone()
	r.X += dx
	r.Y += dy
	return r
}

// MovedTo returns a copy with its anchor at (x, y).
func (b Block) MovedTo(x, y int) Block {
	return b.Moved(x-b.X, y-b.Y)
}

// Intersects reports whether any tile of b shares a position with any tile
// of other, whatever their types.
func (b Block) Intersects(other Block) bool {
	for _, t := range b.Tiles {
		if _, ok := other.At(b.X+t.DX, b.Y+t.DY); ok {
			return true
		}
	}
	return false
}

// CollidesWith reports whether any overlapping pair of tiles collides.
func (b Block) CollidesWith(other Block) bool {
	for _, t := range b.Tiles {
		if o, ok := other.At(b.X+t.DX, b.Y+t.DY); ok && tile.Collides(t.Type, o) {
			return true
		}
	}
	return false
}

// Collide resolves every overlap between a moving block and a stationary
// one using tile chemistry and returns both updated blocks. Tiles of moving
// that overlap nothing pass through unchanged. Neither input is modified.
func Collide(moving, stationary Block) (Block, Block) {
	rm := Block{X: moving.X, Y: moving.Y}
	rs := stationary.clone()

	for _, t := range moving.Tiles {
		x, y := moving.X+t.DX, moving.Y+t.DY
		o, ok := stationary.At(x, y)
		if !ok || !tile.Collides(t.Type, o) {
			rm.Tiles = append(rm.Tiles, t)
			continue
		}

		c := tile.Collide(t.Type, o)
		if c.KeepMoving {
			rm.Tiles = append(rm.Tiles, Tile{DX: t.DX, DY: t.DY, Type: c.Moving})
		}
		rs.remove(x, y)
		if c.KeepStationary {
			rs.Tiles = append(rs.Tiles, Tile{DX: x - rs.X, DY: y - rs.Y, Type: c.Stationary})
		}
	}

	return rm, rs
}

// remove deletes the tile at absolute position (x, y), if any.
func (b *Block) remove(x, y int) {
	kept := b.Tiles[:0]
	for _, t := range b.Tiles {
		if b.X+t.DX != x || b.Y+t.DY != y {
			kept = append(kept, t)
		}
	}
	b.Tiles = kept
}

// Drop lands b onto dest. It refuses, leaving dest untouched, when b
// overlaps the border or dest. Otherwise each tile's landing form is merged
// into dest and tiles that vanish on landing are discarded.
func (b Block) Drop(dest *Block, border Block) bool {
	if b.Intersects(border) || b.Intersects(*dest) {
		return false
	}

	ddx, ddy := b.X-dest.X, b.Y-dest.Y
	for _, t := range b.Tiles {
		if landed, ok := t.Type.Drop(); ok {
			dest.Tiles = append(dest.Tiles, Tile{DX: t.DX + ddx, DY: t.DY + ddy, Type: landed})
		}
	}
	return true
}
