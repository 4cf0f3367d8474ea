package tile

// Collision is the outcome of a moving tile meeting a stationary one. A side
// whose Keep flag is false is destroyed.
type Collision struct {
	Moving         Type
	KeepMoving     bool
	Stationary     Type
	KeepStationary bool
}

// Collides reports whether moving interacts with stationary at all. Every
// pair collides; the special cases live in Collide.
func Collides(moving, stationary Type) bool {
	return true
}

// Collide resolves a moving tile landing on a stationary one. Rules are
// tried in order:
//   - acid spillage destroys both
//   - glue spillage catches the moving tile as its drop residue
//   - a picker swallows the other side, leaving the other tile's drop
//     residue in its place
//   - a killer destroys the other side, losing a charge or dying on its last
//   - anything else keeps both sides unchanged
func Collide(moving, stationary Type) Collision {
	switch {
	case stationary.Kind == KindSpillage && stationary.Liquid == Acid:
		return Collision{}
	case stationary.Kind == KindSpillage:
		residue, ok := moving.Drop()
		return Collision{Stationary: residue, KeepStationary: ok}

	case moving.Kind == KindPicker:
		residue, ok := stationary.Drop()
		return Collision{Moving: residue, KeepMoving: ok}
	case stationary.Kind == KindPicker:
		residue, ok := moving.Drop()
		return Collision{Stationary: residue, KeepStationary: ok}

	case moving.Kind == KindKiller:
		if moving.N <= 1 {
			return Collision{}
		}
		return Collision{Moving: Killer(moving.N - 1), KeepMoving: true}
	case stationary.Kind == KindKiller:
		if stationary.N <= 1 {
			return Collision{}
		}
		return Collision{Stationary: Killer(stationary.N - 1), KeepStationary: true}
	}

	return Collision{Moving: moving, KeepMoving: true, Stationary: stationary, KeepStationary: true}
}
