package block

import (
	"sort"
	"testing"

	"github.com/vovakirdan/grido/internal/games/grido/random"
	"github.com/vovakirdan/grido/internal/games/grido/tile"
)

// square fills a w×h rectangle with top-left (x0, y0) with t.
func square(b *Block, x0, y0, w, h int, t tile.Type) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			b.Add(x-b.X, y-b.Y, t)
		}
	}
}

func offsets(b Block) []tile.Offset {
	r := make([]tile.Offset, 0, len(b.Tiles))
	for _, t := range b.Tiles {
		r = append(r, tile.Offset{DX: t.DX, DY: t.DY})
	}
	sort.Slice(r, func(i, j int) bool {
		if r[i].DY != r[j].DY {
			return r[i].DY < r[j].DY
		}
		return r[i].DX < r[j].DX
	})
	return r
}

func sameOffsets(a, b Block) bool {
	oa, ob := offsets(a), offsets(b)
	if len(oa) != len(ob) {
		return false
	}
	for i := range oa {
		if oa[i] != ob[i] {
			return false
		}
	}
	return true
}

func TestTurnedFourTimes(t *testing.T) {
	src := random.NewLFSR(5)
	for i, shape := range shapes {
		b := FromShape(src, shape, 0).MovedTo(3, 4)
		turned := b.Turned().Turned().Turned().Turned()
		if turned.X != b.X || turned.Y != b.Y || !sameOffsets(b, turned) {
			t.Errorf("shape %d: four turns changed the block: %v -> %v", i, offsets(b), offsets(turned))
		}
	}
}

func TestTurned(t *testing.T) {
	b := NewAt(2, 2)
	b.Add(0, -1, tile.Plain(0))
	b.Add(1, 0, tile.Picker)

	r := b.Turned()
	if tt, ok := r.At(1, 2); !ok || tt != tile.Plain(0) {
		t.Errorf("(0,-1) should turn to (-1,0), got %v %v", tt, ok)
	}
	if tt, ok := r.At(2, 1); !ok || tt != tile.Picker {
		t.Errorf("(1,0) should turn to (0,-1), got %v %v", tt, ok)
	}
	if _, ok := b.At(2, 1); !ok {
		t.Error("Turned must not modify the receiver")
	}
}

func TestMoved(t *testing.T) {
	b := NewAt(1, 1)
	b.Add(0, 0, tile.Plain(0))

	m := b.Moved(2, -1)
	if _, ok := m.At(3, 0); !ok {
		t.Error("moved tile not found at (3,0)")
	}
	if _, ok := b.At(1, 1); !ok {
		t.Error("Moved must not modify the receiver")
	}

	to := m.MovedTo(7, 7)
	if to.X != 7 || to.Y != 7 {
		t.Errorf("MovedTo anchor = (%d,%d), want (7,7)", to.X, to.Y)
	}
	if _, ok := to.At(7, 7); !ok {
		t.Error("MovedTo lost the tile")
	}
}

func TestAddRejectsDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding two tiles at one offset should panic")
		}
	}()
	b := NewAt(0, 0)
	b.Add(1, 1, tile.Plain(0))
	b.Add(1, 1, tile.Picker)
}

func TestIntersectsSymmetric(t *testing.T) {
	src := random.NewLFSR(77)
	for i := 0; i < 200; i++ {
		a := NewRandom(src, 0).MovedTo(src.Intn(5), src.Intn(5))
		b := NewRandom(src, 0).MovedTo(src.Intn(5), src.Intn(5))
		if a.Intersects(b) != b.Intersects(a) {
			t.Fatalf("intersects not symmetric for %v and %v", a, b)
		}
	}
}

func TestIntersectsIgnoresChemistry(t *testing.T) {
	a := NewAt(0, 0)
	a.Add(0, 0, tile.Plain(0))
	b := NewAt(0, 0)
	b.Add(0, 0, tile.Spillage(tile.Acid))

	if !a.Intersects(b) {
		t.Error("overlap with a non-solid tile is still an intersection")
	}
	if !a.CollidesWith(b) {
		t.Error("every overlapping pair collides")
	}
	if a.Moved(1, 0).Intersects(b) || a.Moved(1, 0).CollidesWith(b) {
		t.Error("disjoint blocks must not intersect")
	}
}

func TestNewBorder(t *testing.T) {
	const w, h = 16, 12
	b := NewBorder(w, h)

	seen := make(map[tile.Offset]bool)
	for _, tt := range b.Tiles {
		o := tile.Offset{DX: tt.DX, DY: tt.DY}
		if seen[o] {
			t.Errorf("duplicate border tile at %+v", o)
		}
		seen[o] = true
		onEdge := tt.DX == 0 || tt.DY == 0 || tt.DX == w-1 || tt.DY == h-1
		if !onEdge {
			t.Errorf("border tile %+v not on the perimeter", o)
		}
		if tt.Type != tile.Permanent {
			t.Errorf("border tile %+v is %v", o, tt.Type)
		}
	}
	if want := 2*w + 2*(h-2); len(seen) != want {
		t.Errorf("border has %d tiles, want %d", len(seen), want)
	}
}

func TestNewRandomShapes(t *testing.T) {
	src := random.NewLFSR(3)
	for i := 0; i < 500; i++ {
		b := NewRandom(src, 0)
		if b.Len() < 1 || b.Len() > 3 {
			t.Fatalf("random block has %d tiles", b.Len())
		}
		for _, tt := range b.Tiles {
			if tt.DX < -1 || tt.DX > 1 || tt.DY < -1 || tt.DY > 1 {
				t.Fatalf("tile offset (%d,%d) outside 3x3", tt.DX, tt.DY)
			}
		}
	}
}

func TestNewRandomCoversCatalog(t *testing.T) {
	want := []Block{
		FromShape(random.NewLFSR(1), []tile.Offset{{DX: 0, DY: 0}}, 0),
		FromShape(random.NewLFSR(1), []tile.Offset{{DX: 0, DY: -1}, {DX: 0, DY: 0}}, 0),
		FromShape(random.NewLFSR(1), []tile.Offset{{DX: 0, DY: -1}, {DX: 0, DY: 0}, {DX: 0, DY: 1}}, 0),
		FromShape(random.NewLFSR(1), []tile.Offset{{DX: 0, DY: -1}, {DX: 0, DY: 1}}, 0),
		FromShape(random.NewLFSR(1), []tile.Offset{{DX: -1, DY: -1}, {DX: 0, DY: 0}}, 0),
		FromShape(random.NewLFSR(1), []tile.Offset{{DX: -1, DY: 0}, {DX: 0, DY: 0}, {DX: 0, DY: -1}}, 0),
		FromShape(random.NewLFSR(1), []tile.Offset{{DX: 0, DY: -1}, {DX: -1, DY: 0}, {DX: 1, DY: 0}}, 0),
	}

	seen := make([]bool, len(want))
	src := random.NewLFSR(11)
	// Blocks own their tiles; editing one leaves the catalog intact.
	for i := 0; i < 100; i++ {
		b := NewRandom(src, 0)
		b.Tiles[0].DX += 5
	}
	for i := 0; i < 1000; i++ {
		b := NewRandom(src, 0)
		match := -1
		for j := range want {
			if sameOffsets(b, want[j]) {
				match = j
			}
		}
		if match < 0 {
			t.Fatalf("random block offsets %v are not in the catalog", offsets(b))
		}
		seen[match] = true
	}
	for j, ok := range seen {
		if !ok {
			t.Errorf("shape %v never generated", offsets(want[j]))
		}
	}
}

func TestCollideKillerScenario(t *testing.T) {
	moving := NewAt(3, 3)
	moving.Add(0, 0, tile.Killer(2))
	field := NewAt(0, 0)
	field.Add(3, 3, tile.Plain(0))
	field.Add(4, 3, tile.Plain(0))

	m, f := Collide(moving, field)
	if tt, ok := m.At(3, 3); !ok || tt != tile.Killer(1) {
		t.Fatalf("falling tile = %v %v, want killer(1)", tt, ok)
	}
	if _, ok := f.At(3, 3); ok {
		t.Error("stationary plain should be destroyed")
	}
	if _, ok := f.At(4, 3); !ok {
		t.Error("non-overlapping stationary tile must survive")
	}
	if _, ok := field.At(3, 3); !ok {
		t.Error("Collide must not modify its inputs")
	}

	if !m.Drop(&f, NewBorder(10, 10)) {
		t.Fatal("drop refused")
	}
	if tt, ok := f.At(3, 3); !ok || tt != tile.Plain(0) {
		t.Errorf("landed killer = %v %v, want plain(0)", tt, ok)
	}
}

func TestCollideReinsertsInStationarySpace(t *testing.T) {
	moving := NewAt(5, 5)
	moving.Add(0, 0, tile.Plain(2))
	field := NewAt(2, 1)
	field.Add(3, 4, tile.Picker)

	m, f := Collide(moving, field)
	if !m.Empty() {
		t.Errorf("moving tile should be taken by the picker, got %v", m.Tiles)
	}
	if tt, ok := f.At(5, 5); !ok || tt != tile.Plain(2) {
		t.Errorf("picker position holds %v %v, want plain(2)", tt, ok)
	}
}

func TestDrop(t *testing.T) {
	border := NewBorder(6, 6)

	t.Run("merges", func(t *testing.T) {
		field := NewAt(0, 0)
		b := NewAt(2, 2)
		b.Add(0, 0, tile.Plain(0))
		b.Add(1, 0, tile.Killer(3))

		if !b.Drop(&field, border) {
			t.Fatal("drop refused")
		}
		if field.Len() != 2 {
			t.Fatalf("field has %d tiles, want 2", field.Len())
		}
		if tt, _ := field.At(3, 2); tt != tile.Plain(0) {
			t.Errorf("killer landed as %v", tt)
		}
	})

	t.Run("refused on border", func(t *testing.T) {
		field := NewAt(0, 0)
		b := NewAt(0, 2)
		b.Add(0, 0, tile.Plain(0))
		if b.Drop(&field, border) {
			t.Error("drop onto the border should be refused")
		}
		if !field.Empty() {
			t.Error("refused drop must not change the destination")
		}
	})

	t.Run("refused on playfield", func(t *testing.T) {
		field := NewAt(0, 0)
		field.Add(2, 2, tile.Spillage(tile.Glue))
		b := NewAt(2, 2)
		b.Add(0, 0, tile.Plain(0))
		if b.Drop(&field, border) {
			t.Error("drop onto an occupied position should be refused")
		}
		if field.Len() != 1 {
			t.Error("refused drop must not change the destination")
		}
	})
}
