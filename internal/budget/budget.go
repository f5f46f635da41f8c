// Package budget precomputes the per-invention-level cumulative distribution
// of the random "budget" roll the game uses to decide which gizmo a material
// combination produces. Grounded on original_source/src/prelude/budget.rs.
package budget

import "perksolver/internal/dice"

// Range is the [min, max] support of a Budget's distribution.
type Range struct {
	Min uint16
	Max uint16
}

// Budget is the precomputed CDF for one invention level: dist[i] is
// Pr(roll <= i+level).
type Budget struct {
	Dist  []float64
	Level uint8
	Range Range
}

// Create builds the Budget for invention level lvl. Ancient gizmos roll 6
// dice instead of 5.
func Create(lvl int, isAncient bool) Budget {
	rolls := 5
	if isAncient {
		rolls = 6
	}

	dist := dice.CumulativeDistribution(lvl/2+20, rolls)
	max := len(dist) - 1

	return Budget{
		Dist:  dist,
		Level: uint8(lvl),
		Range: Range{
			Min: uint16(lvl),
			Max: uint16(max),
		},
	}
}

// CreateAll builds a Budget for every second level in [min, max] (min,
// min+2, ...), matching the original tool's --level range semantics. An odd
// min yields odd levels.
func CreateAll(min, max int, isAncient bool) map[int]Budget {
	out := make(map[int]Budget, (max-min)/2+1)
	for lvl := min; lvl <= max; lvl += 2 {
		out[lvl] = Create(lvl, isAncient)
	}
	return out
}
