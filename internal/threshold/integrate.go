package threshold

import (
	"perksolver/internal/budget"
	"perksolver/internal/perk"
	"perksolver/internal/rankcombo"
)

// cdfRange returns cdf[hi-level] - cdf[lo-level], with both indices clamped
// into [0, len(cdf)-1].
func cdfRange(cdf []float64, lo, hi, level int) float64 {
	if len(cdf) == 0 {
		return 0
	}
	clamp := func(idx int) int {
		idx -= level
		if idx < 0 {
			return 0
		}
		if idx > len(cdf)-1 {
			return len(cdf) - 1
		}
		return idx
	}
	return cdf[clamp(hi)] - cdf[clamp(lo)]
}

// integrateBreakpoints sums the budget-CDF mass covered by each wanted
// region. thresholds alternates start-of-wanted-region / start-of-next
// (non-wanted) region markers, so the wanted mass is the sum over pairs
// [t[0],t[1]) + [t[2],t[3]) + ...; an odd trailing entry has no paired
// "next region" marker and so runs to maxCost.
func integrateBreakpoints(thresholds []perk.Gizmo, b budget.Budget, maxCost int) float64 {
	sum := 0.0
	for i := 0; i < len(thresholds); i += 2 {
		lo := int(thresholds[i].Cost)
		hi := maxCost
		if i+1 < len(thresholds) {
			hi = int(thresholds[i+1].Cost)
		}
		sum += cdfRange(b.Dist, lo, hi, int(b.Level))
	}
	return sum
}

// ProbabilityOfWanted is the probability integrator (component H): given
// the full set of rank combinations a material set can realise and a
// budget, it returns the probability that manufacturing at that invention
// level produces the wanted gizmo. Pass wanted with an empty second slot
// for the fuzzy "attempt" probability (prob_attempt); pass both slots for
// the exact pair match (prob_gizmo). Each combination is sorted as a copy,
// so combos keeps its enumeration order across repeated calls.
func ProbabilityOfWanted(combos []perk.RankCombination, wanted perk.Gizmo, b budget.Budget) float64 {
	maxCost := int(b.Range.Max)
	sum := 0.0

	for i := range combos {
		c := perk.RankCombination{
			Ranks:       append([]perk.PerkRank(nil), combos[i].Ranks...),
			Probability: combos[i].Probability,
		}
		rankcombo.Sort(&c)
		thresholds := FindWantedGizmoCostThresholds(c, uint16(maxCost), wanted)
		sum += c.Probability * integrateBreakpoints(thresholds, b, maxCost)
	}

	return sum
}
