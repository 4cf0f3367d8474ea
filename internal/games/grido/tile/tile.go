// Package tile defines the closed catalog of tile types and their chemistry:
// how each type looks, lands, collides and explodes.
package tile

import "fmt"

// Liquid is the content of a flask and of the spillage it leaves behind.
type Liquid uint8

const (
	Acid Liquid = iota
	Glue
)

func (l Liquid) String() string {
	if l == Glue {
		return "glue"
	}
	return "acid"
}

// Kind tags the variant of a tile type.
type Kind uint8

const (
	KindPlain Kind = iota
	KindPermanent
	KindKiller
	KindPicker
	KindCenterpiece
	KindWhopper
	KindFlask
	KindSpillage
	KindPlus
	KindMinus
)

var kindNames = [...]string{
	KindPlain:       "plain",
	KindPermanent:   "permanent",
	KindKiller:      "killer",
	KindPicker:      "picker",
	KindCenterpiece: "centerpiece",
	KindWhopper:     "whopper",
	KindFlask:       "flask",
	KindSpillage:    "spillage",
	KindPlus:        "plus",
	KindMinus:       "minus",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Type is an immutable tile value. N is the shield level of Plain, the
// charges of Killer and the counter of Centerpiece and Whopper; Liquid is
// used by Flask and Spillage. Fields not used by a kind stay zero so that
// Type values compare with ==.
type Type struct {
	Kind   Kind
	N      uint8
	Liquid Liquid
}

func Plain(n uint8) Type       { return Type{Kind: KindPlain, N: n} }
func Killer(n uint8) Type      { return Type{Kind: KindKiller, N: n} }
func Centerpiece(n uint8) Type { return Type{Kind: KindCenterpiece, N: n} }
func Whopper(n uint8) Type     { return Type{Kind: KindWhopper, N: n} }
func Flask(l Liquid) Type      { return Type{Kind: KindFlask, Liquid: l} }
func Spillage(l Liquid) Type   { return Type{Kind: KindSpillage, Liquid: l} }

var (
	Permanent = Type{Kind: KindPermanent}
	Picker    = Type{Kind: KindPicker}
	Plus      = Type{Kind: KindPlus}
	Minus     = Type{Kind: KindMinus}
)

func (t Type) String() string {
	switch t.Kind {
	case KindPlain, KindKiller, KindCenterpiece, KindWhopper:
		return fmt.Sprintf("%s(%d)", t.Kind, t.N)
	case KindFlask, KindSpillage:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Liquid)
	default:
		return t.Kind.String()
	}
}

var superscripts = [...]string{"⁰", " ", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

func counted(mark string, n uint8) string {
	if int(n) < len(superscripts) {
		return " " + mark + superscripts[n]
	}
	return " " + mark + "ⁿ"
}

// Render returns the face of the tile: three cells for solid tiles and a
// single glyph for spillage, which is scattered over its box instead.
func (t Type) Render() string {
	switch t.Kind {
	case KindPermanent:
		return " ✖ "
	case KindPicker:
		return "[ ]"
	case KindFlask:
		if t.Liquid == Glue {
			return " ▿ "
		}
		return " ▴ "
	case KindPlus:
		return " + "
	case KindMinus:
		return " - "
	case KindPlain:
		if t.N == 0 {
			return "   "
		}
		return counted("•", t.N)
	case KindKiller:
		return counted("↯", t.N)
	case KindCenterpiece:
		return counted("◉", t.N)
	case KindWhopper:
		return counted("✱", t.N)
	case KindSpillage:
		if t.Liquid == Glue {
			return "▿"
		}
		return "▴"
	}
	return " ? "
}

// Drop returns what the tile turns into when it lands on the playfield. The
// boolean is false when the tile vanishes on landing.
func (t Type) Drop() (Type, bool) {
	if t.Kind == KindKiller {
		return Plain(0), true
	}
	return t, true
}

// IsPlain reports whether the tile belongs to the plain class that explodes
// together in ordinary 3×3 patterns.
func (t Type) IsPlain() bool {
	switch t.Kind {
	case KindPlain, KindFlask, KindPlus, KindMinus:
		return true
	}
	return false
}

// IsSolid reports whether the tile occupies space. Only spillage does not.
func (t Type) IsSolid() bool {
	return t.Kind != KindSpillage
}

// Explodes reports whether t, as the center of an explosion shape, accepts
// other as one of its members.
func (t Type) Explodes(other Type) bool {
	switch {
	case t.IsPlain():
		return other.IsPlain()
	case t.Kind == KindCenterpiece:
		return other.Kind == KindCenterpiece || other.IsPlain()
	case t.Kind == KindWhopper:
		return other.Kind == KindCenterpiece || other.Kind == KindWhopper || other.IsPlain()
	}
	return false
}

// Bonus is the score awarded for consuming the tile.
func (t Type) Bonus() int {
	switch t.Kind {
	case KindPlain:
		return int(t.N) + 1
	case KindCenterpiece:
		return 10 * int(t.N)
	case KindWhopper:
		return 30
	}
	return 1
}

// Offset is a position relative to a tile.
type Offset struct {
	DX, DY int
}

var (
	shape3x3 = square(1)
	shape5x5 = square(2)
)

func square(r int) []Offset {
	s := make([]Offset, 0, (2*r+1)*(2*r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			s = append(s, Offset{dx, dy})
		}
	}
	return s
}

// ExplodeShape returns the neighborhood that must be fully populated with
// compatible tiles for t to detonate: 5×5 for a whopper, 3×3 otherwise.
// The returned slice is shared and must not be modified.
func (t Type) ExplodeShape() []Offset {
	if t.Kind == KindWhopper {
		return shape5x5
	}
	return shape3x3
}
