// Package random provides the uniform integer sources that drive tile and
// shape generation. Sources are plain values owned by the game, so two games
// seeded alike draw the same pieces.
package random

import (
	"fmt"
	"math/rand"
)

// Source draws uniform integers in [0, n). n must be positive.
type Source interface {
	Intn(n int) int
}

// Kinds accepted by New.
const (
	KindMath = "math"
	KindLFSR = "lfsr"
)

// New creates a source of the given kind seeded with seed.
func New(kind string, seed int64) (Source, error) {
	switch kind {
	case "", KindMath:
		return NewMath(seed), nil
	case KindLFSR:
		return NewLFSR(uint16(seed)), nil
	default:
		return nil, fmt.Errorf("random: unknown source %q", kind)
	}
}

// Math wraps math/rand.
type Math struct {
	rng *rand.Rand
}

// NewMath creates a math/rand backed source.
func NewMath(seed int64) *Math {
	return &Math{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform integer in [0, n).
func (m *Math) Intn(n int) int {
	return m.rng.Intn(n)
}

// Bool returns a fair coin flip drawn from src.
func Bool(src Source) bool {
	return src.Intn(2) == 1
}
