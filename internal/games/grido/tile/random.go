package tile

import "github.com/vovakirdan/grido/internal/games/grido/random"

// Level maps a score to its level: level L is reached once the score is at
// least 100·(1+2+…+L), so the thresholds are 100, 300, 600, 1000 and so on.
func Level(score int) int {
	lvl, next := 0, 100
	for score >= next {
		lvl++
		next += (lvl + 1) * 100
	}
	return lvl
}

// outcomes is the size of the weighted outcome table sampled by NewRandom.
const outcomes = 33

// NewRandom draws a tile type for the given score. Rarer types are gated
// behind levels; a draw that hits a locked slot is redrawn.
func NewRandom(rng random.Source, score int) Type {
	lvl := Level(score)
	for {
		switch r := rng.Intn(outcomes); {
		case r <= 20:
			return Plain(0)
		case r <= 23:
			return Picker
		case r == 24 && lvl >= 1:
			if random.Bool(rng) {
				return Minus
			}
			return Plus
		case r >= 25 && r <= 26 && lvl >= 2:
			return Plain(counter(1 + rng.Intn(lvl)))
		case r == 27 && lvl >= 3:
			if random.Bool(rng) {
				return Flask(Acid)
			}
			return Flask(Glue)
		case r == 28 && lvl >= 4:
			return Killer(counter(1 + rng.Intn(lvl/8+1)))
		case r >= 29 && r <= 30 && lvl >= 5:
			return Centerpiece(counter(1 + rng.Intn(lvl/4+1)))
		case r == 31 && lvl >= 6:
			return Whopper(counter(1 + rng.Intn(lvl/4+1)))
		case r == 32 && lvl >= 8:
			if random.Bool(rng) {
				return Permanent
			}
		}
	}
}

func counter(n int) uint8 {
	if n > 255 {
		return 255
	}
	return uint8(n)
}
