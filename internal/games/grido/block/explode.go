package block

import "github.com/vovakirdan/grido/internal/games/grido/tile"

// bulkThreshold is the exploded tile count above which a cycle earns extra
// multiplier.
const bulkThreshold = 12

// Explosion is the outcome of one explosion cycle.
type Explosion struct {
	// Exploded lists every consumed tile as it was before the cycle.
	Exploded []Tile
	// Hits is the summed bonus of the consumed tiles.
	Hits int
	// DMult is the signed multiplier change.
	DMult int
}

type pos struct{ x, y int }

type spill struct {
	dx, dy int
	liquid tile.Liquid
}

// Explode runs one detection and resolution cycle over b.
//
// A tile detonates when every position of its explode shape holds a tile it
// accepts; all of those positions are then marked. Marked tiles are consumed:
// their bonus is added to the hits, their explode action is applied and any
// spilled liquid lands on empty positions only once every tile is resolved.
func (b *Block) Explode() Explosion {
	marked := make(map[pos]bool)
	for _, t := range b.Tiles {
		x, y := b.X+t.DX, b.Y+t.DY
		if members, ok := b.detonates(x, y, t.Type); ok {
			for _, p := range members {
				marked[p] = true
			}
		}
	}

	var (
		xp     Explosion
		kept   = make([]Tile, 0, len(b.Tiles))
		spills []spill
	)
	for _, t := range b.Tiles {
		if !marked[pos{b.X + t.DX, b.Y + t.DY}] {
			kept = append(kept, t)
			continue
		}
		xp.Exploded = append(xp.Exploded, t)
		xp.Hits += t.Type.Bonus()
		xp.DMult += t.Type.Explode().Multiplier()
		kept, spills = apply(t.Type.Explode(), t.DX, t.DY, kept, spills)
	}
	b.Tiles = kept

	for _, s := range spills {
		if _, taken := b.local(s.dx, s.dy); !taken {
			b.Tiles = append(b.Tiles, Tile{DX: s.dx, DY: s.dy, Type: tile.Spillage(s.liquid)})
		}
	}

	if n := len(xp.Exploded); n > bulkThreshold {
		xp.DMult += (n - 9) / 9
	}
	return xp
}

// detonates returns the positions covered by t's explode shape when every
// one of them holds an accepted tile.
func (b Block) detonates(x, y int, t tile.Type) ([]pos, bool) {
	shape := t.ExplodeShape()
	members := make([]pos, 0, len(shape))
	for _, o := range shape {
		px, py := x+o.DX, y+o.DY
		other, ok := b.At(px, py)
		if !ok || !t.Explodes(other) {
			return nil, false
		}
		members = append(members, pos{px, py})
	}
	return members, true
}

// apply performs the board mutations of an explode action for the tile at
// offset (dx, dy).
func apply(a tile.ExplodeAction, dx, dy int, kept []Tile, spills []spill) ([]Tile, []spill) {
	switch a.Effect {
	case tile.EffectConvert:
		kept = append(kept, Tile{DX: dx, DY: dy, Type: a.Into})
	case tile.EffectSpill:
		for _, o := range []tile.Offset{{DX: 0, DY: 0}, {DX: 0, DY: 1}, {DX: 1, DY: 0}, {DX: 0, DY: -1}, {DX: -1, DY: 0}} {
			spills = append(spills, spill{dx + o.DX, dy + o.DY, a.Liquid})
		}
	case tile.EffectComplex:
		for _, p := range a.Parts {
			kept, spills = apply(p, dx, dy, kept, spills)
		}
	}
	return kept, spills
}
