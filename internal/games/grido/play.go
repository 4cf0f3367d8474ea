package grido

import (
	"fmt"
	"time"

	"github.com/vovakirdan/grido/internal/games/grido/block"
)

// collides reports whether b collides with the border or the playfield.
func (g *Game) collides(b block.Block) bool {
	return b.CollidesWith(g.border) || b.CollidesWith(g.field)
}

// tryMove returns moved when it is a legal position for the falling block
// and the current block otherwise. Moving into playfield tiles runs the
// collision chemistry; the move is kept only if it resolves every overlap,
// in which case the playfield takes the collision result.
func (g *Game) tryMove(moved block.Block) block.Block {
	switch {
	case moved.Intersects(g.border):
		return g.falling
	case moved.CollidesWith(g.field):
		m, f := block.Collide(moved, g.field)
		if m.CollidesWith(f) {
			return g.falling
		}
		g.field = f
		return m
	default:
		return moved
	}
}

// swap exchanges the falling block with the preview when the preview fits
// where the falling block is.
func (g *Game) swap() {
	moved := g.next.MovedTo(g.falling.X, g.falling.Y)
	if g.collides(moved) {
		return
	}
	g.next = g.falling.MovedTo(previewX, previewY)
	g.falling = moved
}

// drop lands the falling block, resolves explosions and brings in the next
// piece. A refused drop changes nothing and is retried on a later tick.
func (g *Game) drop(now time.Time) {
	landed := g.falling
	if !landed.Drop(&g.field, g.border) {
		return
	}

	g.lastDrop = now
	g.drops++

	xp := g.field.Explode()
	bonus := xp.Hits * g.multiplier
	g.score += bonus

	if xp.DMult != 0 {
		g.multiplier = ApplyMultiplier(g.multiplier, xp.DMult)
		g.lastMult = now
	}

	px, py := block.CellW*landed.X, block.CellH*landed.Y
	if bonus > 0 {
		g.spawnParticle(px, py, fmt.Sprint(bonus), now)
	}
	switch {
	case xp.DMult > 0:
		g.spawnParticle(px, py+1, fmt.Sprintf("+x%d", xp.DMult), now)
	case xp.DMult < 0:
		g.spawnParticle(px, py+1, fmt.Sprintf("-x%d", -xp.DMult), now)
	}

	logger.Debug("piece dropped",
		"session", g.sessionID, "tiles", landed.Len(), "exploded", len(xp.Exploded),
		"hits", xp.Hits, "dmult", xp.DMult, "score", g.score, "multiplier", g.multiplier)

	g.falling = g.next.Moved(spawnX-previewX, spawnY-previewY)
	g.next = block.NewRandom(g.rng, g.score).MovedTo(previewX, previewY)
	if g.collides(g.falling) {
		g.gameOver = true
		logger.Info("game over",
			"session", g.sessionID, "variant", g.variant.ID,
			"score", g.score, "level", g.State().Level, "drops", g.drops,
			"hash", g.Snapshot().Hash())
	}
}

// ApplyMultiplier adds dmult to mult, flooring the result at zero.
func ApplyMultiplier(mult, dmult int) int {
	if dmult < 0 && -dmult >= mult {
		return 0
	}
	return mult + dmult
}

// decayMultiplier steps the multiplier one towards x1 each time its gauge
// runs out. At x1 the gauge stays full.
func (g *Game) decayMultiplier(now time.Time) {
	switch {
	case g.multiplier == 1:
		g.lastMult = now
	case now.Sub(g.lastMult) >= g.cfg.Timers.Multiplier():
		if g.multiplier > 1 {
			g.multiplier--
		} else {
			g.multiplier++
		}
		g.lastMult = now
		logger.Debug("multiplier decayed", "session", g.sessionID, "multiplier", g.multiplier)
	}
}
