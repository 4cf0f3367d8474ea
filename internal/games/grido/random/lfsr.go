package random

import "fmt"

// lfsrPeriod is the number of distinct states of a maximal 16-bit LFSR.
const lfsrPeriod = 1<<16 - 1

// LFSR is a 16-bit Fibonacci linear-feedback shift register with taps at
// bits 16, 14, 13 and 11. It cycles through every non-zero state and is
// meant for reproducible runs, not for quality randomness.
type LFSR struct {
	state uint16
}

// NewLFSR creates a register seeded with seed. A zero seed would lock the
// register, so it is replaced with 1.
func NewLFSR(seed uint16) *LFSR {
	if seed == 0 {
		seed = 1
	}
	return &LFSR{state: seed}
}

// Next advances the register one step and returns the new state.
func (l *LFSR) Next() uint16 {
	bit := (l.state ^ l.state>>2 ^ l.state>>3 ^ l.state>>5) & 1
	l.state = l.state>>1 | bit<<15
	return l.state
}

// Intn returns an integer in [0, n). Values past the largest multiple of n
// that fits in the register are rejected so every result is equally likely
// over the register's cycle.
func (l *LFSR) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("random: invalid bound %d", n))
	}
	if n > lfsrPeriod {
		panic(fmt.Sprintf("random: bound %d exceeds lfsr range", n))
	}
	limit := lfsrPeriod - lfsrPeriod%n
	for {
		// States run 1..65535; shift to 0..65534.
		v := int(l.Next()) - 1
		if v < limit {
			return v % n
		}
	}
}
