package grid

import "fmt"

// FieldKind tells which of the three states a cell is in.
type FieldKind uint8

const (
	FieldEmpty FieldKind = iota
	FieldDecoration
	FieldDrawing
)

// Field is the content of one grid cell. Char is meaningful only for
// decorations and Drawing only for drawings.
type Field struct {
	Kind    FieldKind
	Char    rune
	Drawing Drawing
}

// Sink receives rendered characters. core.Screen satisfies it.
type Sink interface {
	Set(x, y int, r rune)
}

// Grid is a dense (w+1)×(h+1) array of fields addressed by column and row.
// All coordinates handed to Grid must lie in [0,w]×[0,h]; anything else is a
// caller bug and panics.
type Grid struct {
	w, h   int
	fields []Field
}

// New creates an empty grid spanning columns 0..w and rows 0..h.
func New(w, h int) *Grid {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("grid: negative size %dx%d", w, h))
	}
	return &Grid{
		w:      w,
		h:      h,
		fields: make([]Field, (w+1)*(h+1)),
	}
}

// W returns the largest column index.
func (g *Grid) W() int {
	return g.w
}

// H returns the largest row index.
func (g *Grid) H() int {
	return g.h
}

// At returns the field at (x, y).
func (g *Grid) At(x, y int) Field {
	return *g.field(x, y)
}

func (g *Grid) field(x, y int) *Field {
	if x < 0 || x > g.w || y < 0 || y > g.h {
		panic(fmt.Sprintf("grid: (%d,%d) outside %dx%d", x, y, g.w, g.h))
	}
	return &g.fields[y*(g.w+1)+x]
}

// Paint adds one directional line to the cell at (x, y). Decorations are
// replaced; existing drawings are combined with the new line.
func (g *Grid) Paint(x, y int, d Direction, p Pen) {
	f := g.field(x, y)
	dw := NewDrawing(d, p)
	if f.Kind == FieldDrawing {
		dw = f.Drawing.Combine(dw)
	}
	*f = Field{Kind: FieldDrawing, Drawing: dw}
}

// PaintWall paints a straight line of length cells starting at (x0, y0) and
// running in direction d. Interior cells get both the leading and trailing
// edge so that crossing walls join; the two end cells are painted only when
// inclusive is set, and then only on their inward-facing edge.
func (g *Grid) PaintWall(x0, y0, length int, d Direction, inclusive bool, p Pen) {
	if length < 0 {
		panic(fmt.Sprintf("grid: negative wall length %d", length))
	}

	back := d.Opposite()
	dx, dy := d.Step()

	if inclusive {
		g.Paint(x0, y0, d, p)
	}
	for i := 1; i < length; i++ {
		x, y := x0+i*dx, y0+i*dy
		g.Paint(x, y, back, p)
		g.Paint(x, y, d, p)
	}
	if inclusive {
		g.Paint(x0+length*dx, y0+length*dy, back, p)
	}
}

// Clear wipes the w×h rectangle at (x, y). Interior cells become empty. Edge
// cells lose decorations and the line arms pointing into the rectangle while
// keeping the arms that face outward, so surrounding walls stay connected.
func (g *Grid) Clear(x, y, w, h int) {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("grid: negative clear size %dx%d", w, h))
	}

	for xx := x; xx < x+w; xx++ {
		for yy := y; yy < y+h; yy++ {
			ex0, ex1 := xx == x, xx == x+w-1
			ey0, ey1 := yy == y, yy == y+h-1
			ex, ey := ex0 || ex1, ey0 || ey1

			f := g.field(xx, yy)
			if !ex && !ey {
				*f = Field{}
				continue
			}
			if f.Kind != FieldDrawing {
				*f = Field{}
				continue
			}

			dw := &f.Drawing
			if ex {
				// Left or right edge: drop the vertical run and the inner arm.
				if !ey {
					dw.Up = PenNone
					dw.Down = PenNone
				}
				if ex0 {
					dw.Right = PenNone
				} else {
					dw.Left = PenNone
				}
			}
			if ey {
				// Upper or lower edge: drop the horizontal run and the inner arm.
				if !ex {
					dw.Left = PenNone
					dw.Right = PenNone
				}
				if ey0 {
					dw.Down = PenNone
				} else {
					dw.Up = PenNone
				}
			}
		}
	}
}

// PaintDecoration writes text one rune per cell starting at (x, y). A NUL
// rune skips its cell, leaving whatever was painted there visible.
func (g *Grid) PaintDecoration(x, y int, text string) {
	n := 0
	for _, c := range text {
		if c != 0 {
			*g.field(x+n, y) = Field{Kind: FieldDecoration, Char: c}
		}
		n++
	}
}

// Render writes every non-empty cell to sink at (x0+x, y0+y), row by row.
// Clipping is the sink's business.
func (g *Grid) Render(x0, y0 int, sink Sink) {
	for y := 0; y <= g.h; y++ {
		for x := 0; x <= g.w; x++ {
			f := g.fields[y*(g.w+1)+x]
			switch f.Kind {
			case FieldDecoration:
				sink.Set(x0+x, y0+y, f.Char)
			case FieldDrawing:
				sink.Set(x0+x, y0+y, f.Drawing.Glyph())
			}
		}
	}
}
