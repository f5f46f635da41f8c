package perk

// Gizmo is the manufactured result atom: up to two perk slots, the total
// cost of the contributing components, and a probability (populated by the
// threshold walker / probability integrator, zero otherwise). Ported from
// original_source/src/definitions/gizmo.rs.
type Gizmo struct {
	Perks       [2]Perk
	Cost        int16
	Probability float64
}

// Same reports whether g and other contain the same perks and ranks,
// regardless of slot order.
func (g Gizmo) Same(other Gizmo) bool {
	return (g.Perks[0] == other.Perks[0] && g.Perks[1] == other.Perks[1]) ||
		(g.Perks[1] == other.Perks[0] && g.Perks[0] == other.Perks[1])
}

// Contains reports whether a certain perk-rank combo (other's first slot)
// is present in g, in either slot. Distinct from Same: fuzzy, first-slot
// only (SPEC_FULL.md §9 "Overlap handling").
func (g Gizmo) Contains(other Gizmo) bool {
	return g.Perks[0] == other.Perks[0] || g.Perks[1] == other.Perks[0]
}

// CreateGizmo builds a two-slot Gizmo from one or two PerkRank entries.
func CreateGizmo(x PerkRank, y *PerkRank) Gizmo {
	cost := x.Cost
	second := Perk{}
	if y != nil {
		cost += y.Cost
		second = Perk{Perk: y.Perk, Rank: y.Rank}
	}
	return Gizmo{
		Perks: [2]Perk{{Perk: x.Perk, Rank: x.Rank}, second},
		Cost:  int16(cost),
	}
}

// CreateDoubleslotGizmo builds a Gizmo for a doubleslot perk occupying both
// slots: the second slot is always Empty, but y's cost (if present) still
// contributes to the total (it was "consumed" by the doubleslot perk).
func CreateDoubleslotGizmo(x PerkRank, y *PerkRank) Gizmo {
	cost := x.Cost
	if y != nil {
		cost += y.Cost
	}
	return Gizmo{
		Perks: [2]Perk{{Perk: x.Perk, Rank: x.Rank}, {}},
		Cost:  int16(cost),
	}
}
