package tile

// Effect tags an ExplodeAction.
type Effect uint8

const (
	EffectRemove Effect = iota
	EffectConvert
	EffectSpill
	EffectPlus
	EffectMinus
	EffectComplex
)

// ExplodeAction describes what happens to a tile consumed by an explosion.
// Into is set for EffectConvert, Liquid for EffectSpill and Parts for
// EffectComplex.
type ExplodeAction struct {
	Effect Effect
	Into   Type
	Liquid Liquid
	Parts  []ExplodeAction
}

func Remove() ExplodeAction              { return ExplodeAction{Effect: EffectRemove} }
func Convert(t Type) ExplodeAction       { return ExplodeAction{Effect: EffectConvert, Into: t} }
func Spill(l Liquid) ExplodeAction       { return ExplodeAction{Effect: EffectSpill, Liquid: l} }
func PlusOne() ExplodeAction             { return ExplodeAction{Effect: EffectPlus} }
func MinusOne() ExplodeAction            { return ExplodeAction{Effect: EffectMinus} }
func Complex(a, b ExplodeAction) ExplodeAction {
	return ExplodeAction{Effect: EffectComplex, Parts: []ExplodeAction{a, b}}
}

// Explode returns the action applied when the tile is consumed.
func (t Type) Explode() ExplodeAction {
	switch t.Kind {
	case KindPlain:
		if t.N == 0 {
			return Remove()
		}
		return Convert(Plain(t.N - 1))
	case KindCenterpiece:
		if t.N <= 1 {
			return Remove()
		}
		return Convert(Centerpiece(t.N - 1))
	case KindWhopper:
		return Convert(Centerpiece(t.N))
	case KindFlask:
		return Spill(t.Liquid)
	case KindPlus:
		return Complex(Remove(), PlusOne())
	case KindMinus:
		return Complex(Remove(), MinusOne())
	}
	return Remove()
}

// Multiplier returns the signed multiplier change carried by the action,
// summing over the parts of a complex action.
func (a ExplodeAction) Multiplier() int {
	switch a.Effect {
	case EffectPlus:
		return 1
	case EffectMinus:
		return -1
	case EffectComplex:
		sum := 0
		for _, p := range a.Parts {
			sum += p.Multiplier()
		}
		return sum
	}
	return 0
}
