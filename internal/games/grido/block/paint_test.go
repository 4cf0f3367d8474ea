package block

import (
	"strings"
	"testing"

	"github.com/vovakirdan/grido/internal/core"
	"github.com/vovakirdan/grido/internal/games/grido/tile"
	"github.com/vovakirdan/grido/internal/grid"
)

func paint(b Block, w, h int) string {
	g := grid.New(w, h)
	b.Paint(g)
	s := core.NewScreen(w+1, h+1)
	g.Render(0, 0, s)
	return s.String()
}

func TestPaintSingle(t *testing.T) {
	b := NewAt(0, 0)
	b.Add(0, 0, tile.Centerpiece(2))

	want := strings.Join([]string{
		"┏━━━┓",
		"┃ ◉²┃",
		"┗━━━┛",
	}, "\n")
	if got := paint(b, 4, 2); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestPaintSharedWalls(t *testing.T) {
	t.Run("side by side", func(t *testing.T) {
		b := NewAt(0, 0)
		b.Add(0, 0, tile.Plain(0))
		b.Add(1, 0, tile.Permanent)

		want := strings.Join([]string{
			"┏━━━━━━━┓",
			"┃   │ ✖ ┃",
			"┗━━━━━━━┛",
		}, "\n")
		if got := paint(b, 8, 2); got != want {
			t.Errorf("got\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("stacked", func(t *testing.T) {
		b := NewAt(0, 0)
		b.Add(0, 0, tile.Plus)
		b.Add(0, 1, tile.Minus)

		want := strings.Join([]string{
			"┏━━━┓",
			"┃ + ┃",
			"┃───┃",
			"┃ - ┃",
			"┗━━━┛",
		}, "\n")
		if got := paint(b, 4, 4); got != want {
			t.Errorf("got\n%s\nwant\n%s", got, want)
		}
	})
}

func TestPaintSpillage(t *testing.T) {
	b := NewAt(0, 0)
	b.Add(0, 0, tile.Spillage(tile.Acid))

	want := strings.Join([]string{
		" ▴ ▴ ",
		"▴ ▴ ▴",
		" ▴ ▴ ",
	}, "\n")
	if got := paint(b, 4, 2); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestPaintSpillageUnderSolid(t *testing.T) {
	b := NewAt(0, 0)
	b.Add(1, 0, tile.Plain(0))
	b.Add(0, 0, tile.Spillage(tile.Glue))

	got := strings.Split(paint(b, 8, 2), "\n")
	// The solid tile's thick left wall wins over the spillage pattern.
	if got[1] != "▿ ▿ ┃   ┃" {
		t.Errorf("middle row = %q", got[1])
	}
}

func TestPaintAnchorOffset(t *testing.T) {
	b := NewAt(1, 0)
	b.Add(0, 0, tile.Picker)

	rows := strings.Split(paint(b, 8, 2), "\n")
	if rows[1] != "    ┃[ ]┃" {
		t.Errorf("middle row = %q", rows[1])
	}
}
