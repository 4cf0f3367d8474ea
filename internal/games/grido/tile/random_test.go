package tile

import (
	"testing"

	"github.com/vovakirdan/grido/internal/games/grido/random"
)

// script replays a fixed list of draws.
type script struct {
	draws []int
	pos   int
}

func (s *script) Intn(n int) int {
	v := s.draws[s.pos%len(s.draws)] % n
	s.pos++
	return v
}

func TestLevel(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{0, 0},
		{99, 0},
		{100, 1},
		{299, 1},
		{300, 2},
		{599, 2},
		{600, 3},
		{1000, 4},
		{1499, 4},
		{1500, 5},
	}

	for _, tt := range tests {
		if got := Level(tt.score); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := 0
	for score := 0; score < 20000; score += 7 {
		lvl := Level(score)
		if lvl < prev {
			t.Fatalf("Level(%d) = %d dropped below %d", score, lvl, prev)
		}
		prev = lvl
	}
}

func TestNewRandomTable(t *testing.T) {
	tests := []struct {
		name  string
		score int
		draws []int
		want  Type
	}{
		{"plain", 0, []int{0}, Plain(0)},
		{"plain upper edge", 0, []int{20}, Plain(0)},
		{"picker", 0, []int{21}, Picker},
		{"plus", 100, []int{24, 0}, Plus},
		{"minus", 100, []int{24, 1}, Minus},
		{"shield", 300, []int{25, 1}, Plain(2)},
		{"acid flask", 600, []int{27, 1}, Flask(Acid)},
		{"glue flask", 600, []int{27, 0}, Flask(Glue)},
		{"killer", 1000, []int{28, 0}, Killer(1)},
		{"centerpiece", 1500, []int{29, 1}, Centerpiece(2)},
		{"whopper", 2100, []int{31, 0}, Whopper(1)},
		{"permanent", 3600, []int{32, 1}, Permanent},
		{"locked slot redraws", 0, []int{24, 25, 27, 28, 29, 31, 32, 3}, Plain(0)},
		{"lost permanent coin redraws", 3600, []int{32, 0, 22}, Picker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRandom(&script{draws: tt.draws}, tt.score)
			if got != tt.want {
				t.Errorf("NewRandom = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewRandomGates(t *testing.T) {
	src := random.NewLFSR(0xBEEF)
	for i := 0; i < 2000; i++ {
		tt := NewRandom(src, 0)
		if tt != Plain(0) && tt != Picker {
			t.Fatalf("level 0 produced %v", tt)
		}
	}

	kinds := make(map[Kind]bool)
	for i := 0; i < 20000; i++ {
		kinds[NewRandom(src, 100000).Kind] = true
	}
	for _, k := range []Kind{KindPlain, KindPicker, KindPlus, KindMinus, KindFlask,
		KindKiller, KindCenterpiece, KindWhopper, KindPermanent} {
		if !kinds[k] {
			t.Errorf("high level never produced %v", k)
		}
	}
	if kinds[KindSpillage] {
		t.Error("spillage must never be generated")
	}
}
