package grido

import (
	"time"

	"github.com/vovakirdan/grido/internal/grid"
)

// particle is floating text painted over the playfield for a while.
type particle struct {
	x, y int // grid cells
	face string
	born time.Time
}

func (g *Game) spawnParticle(x, y int, face string, now time.Time) {
	g.particles = append(g.particles, particle{x: x, y: y, face: face, born: now})
}

// expireParticles drops particles older than their lifetime.
func (g *Game) expireParticles(now time.Time) {
	ttl := g.cfg.Timers.Particle()
	kept := g.particles[:0]
	for _, p := range g.particles {
		if now.Sub(p.born) <= ttl {
			kept = append(kept, p)
		}
	}
	g.particles = kept
}

// paint writes the particle text, cut at the grid edge.
func (p particle) paint(gr *grid.Grid) {
	if p.x < 0 || p.y < 0 || p.x > gr.W() || p.y > gr.H() {
		return
	}
	face := []rune(p.face)
	if room := gr.W() - p.x + 1; len(face) > room {
		face = face[:room]
	}
	gr.PaintDecoration(p.x, p.y, string(face))
}
