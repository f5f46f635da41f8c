package combinator

import (
	"sort"

	"perksolver/internal/budget"
)

// GenerateBudgets returns one Budget per second invention level in
// [low, high] (low, low+2, ...), ascending by level. Ported from
// original_source/src/lib.rs's generate_budgets.
func GenerateBudgets(low, high int, isAncientGizmo bool) []budget.Budget {
	byLevel := budget.CreateAll(low, high, isAncientGizmo)

	levels := make([]int, 0, len(byLevel))
	for lvl := range byLevel {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)

	out := make([]budget.Budget, 0, len(levels))
	for _, lvl := range levels {
		out = append(out, byLevel[lvl])
	}
	return out
}
