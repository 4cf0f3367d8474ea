// Package grid composes box-drawing line art. Every cell of a Grid holds
// nothing, a decoration character, or four independent line weights (one per
// direction) that are resolved to a single Unicode glyph at render time.
package grid

// Pen is the weight of a line along one edge of a cell.
type Pen uint8

const (
	PenNone Pen = iota
	PenThin
	PenThick
)

// Combine merges two pens painted on the same edge.
// None yields the other pen and thick dominates thin.
func Combine(p1, p2 Pen) Pen {
	switch {
	case p1 == PenNone:
		return p2
	case p2 == PenNone:
		return p1
	case p1 == PenThick || p2 == PenThick:
		return PenThick
	default:
		return PenThin
	}
}

// String returns a short name for the pen.
func (p Pen) String() string {
	switch p {
	case PenNone:
		return "none"
	case PenThin:
		return "thin"
	case PenThick:
		return "thick"
	default:
		return "invalid"
	}
}

// Direction names one of the four edges of a cell.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Step returns the unit offset of one cell in direction d.
func (d Direction) Step() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return -1, 0
	}
}

// Drawing holds the pens of the four edges of one cell.
type Drawing struct {
	Up, Right, Down, Left Pen
}

// NewDrawing creates a drawing with a single edge painted.
func NewDrawing(d Direction, p Pen) Drawing {
	var dw Drawing
	switch d {
	case Up:
		dw.Up = p
	case Right:
		dw.Right = p
	case Down:
		dw.Down = p
	case Left:
		dw.Left = p
	}
	return dw
}

// Combine merges two drawings edge by edge.
func (dw Drawing) Combine(other Drawing) Drawing {
	return Drawing{
		Up:    Combine(dw.Up, other.Up),
		Right: Combine(dw.Right, other.Right),
		Down:  Combine(dw.Down, other.Down),
		Left:  Combine(dw.Left, other.Left),
	}
}

// Glyph resolves the drawing to its box-drawing character.
// An empty drawing resolves to a blank.
func (dw Drawing) Glyph() rune {
	return glyphs[glyphIndex(dw)]
}

func glyphIndex(dw Drawing) int {
	return int(dw.Up)*27 + int(dw.Right)*9 + int(dw.Down)*3 + int(dw.Left)
}
