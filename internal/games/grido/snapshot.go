package grido

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/vovakirdan/grido/internal/games/grido/block"
)

// Game states reported by Snapshot.
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateTooSmall = "too_small"
	StateGameOver = "game_over"
)

// Snapshot is a comparable summary of the game state, used for replay
// checks and tests. Tile lists are absolute "x,y:type" strings in sorted
// order so that two equal states always compare equal.
type Snapshot struct {
	SessionID  string
	State      string
	Score      int
	Level      int
	Multiplier int
	Drops      int
	Field      []string
	Falling    []string
	Next       []string
	Particles  int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.tooSmall:
		state = StateTooSmall
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		SessionID:  g.sessionID,
		State:      state,
		Score:      g.score,
		Level:      g.State().Level,
		Multiplier: g.multiplier,
		Drops:      g.drops,
		Field:      tileList(g.field),
		Falling:    tileList(g.falling),
		Next:       tileList(g.next),
		Particles:  len(g.particles),
	}
}

func tileList(b block.Block) []string {
	out := make([]string, 0, len(b.Tiles))
	for _, t := range b.Tiles {
		out = append(out, fmt.Sprintf("%d,%d:%s", b.X+t.DX, b.Y+t.DY, t.Type))
	}
	sort.Strings(out)
	return out
}

// Hash returns a hash of everything but the session id, for determinism
// testing.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d|%d|%d|%d|%d|%v|%v|%v",
		s.State, s.Score, s.Level, s.Multiplier, s.Drops, s.Particles,
		s.Field, s.Falling, s.Next)
	return h.Sum64()
}
