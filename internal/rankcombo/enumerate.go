// Package rankcombo enumerates the joint distribution over simultaneously
// realised perk ranks (component E) and reproduces the game client's
// unstable "Jagex quicksort" over the resulting sequence (component F).
// Grounded on original_source/src/perk_values.rs (enumeration tail) and
// original_source/src/jagex_sort.rs / utils.rs (sort).
package rankcombo

import "perksolver/internal/perk"

// MinProbability is the design-constant epsilon below which an emitted
// RankCombination is dropped rather than carried into the expensive
// threshold-walk stage.
const MinProbability = 1e-12

// Enumerate walks the Cartesian product of each perk's [IFirst, ILast]
// reachable-rank window and emits one RankCombination per index tuple,
// skipping any whose joint probability falls below MinProbability. Each
// combination's Ranks slice is ordered by perk-aggregation order (the order
// perkValuesArr itself is in); sorting into cost order is the caller's job
// (Sort).
func Enumerate(perkValuesArr []perk.PerkValues) []perk.RankCombination {
	windows := make([][]perk.RankProbability, len(perkValuesArr))
	for i, pv := range perkValuesArr {
		windows[i] = pv.IterRanks()
		if len(windows[i]) == 0 {
			return nil
		}
	}

	var out []perk.RankCombination
	idx := make([]int, len(windows))
	ranks := make([]perk.PerkRank, len(windows))

	for {
		prob := 1.0
		for i, w := range windows {
			rp := w[idx[i]]
			ranks[i] = rp.Rank
			prob *= rp.Probability
			if prob < MinProbability {
				break
			}
		}

		if prob >= MinProbability {
			combo := perk.RankCombination{
				Ranks:       append([]perk.PerkRank(nil), ranks...),
				Probability: prob,
			}
			out = append(out, combo)
		}

		if !advance(idx, windows) {
			break
		}
	}

	return out
}

// advance increments idx as a mixed-radix counter over windows' lengths,
// returning false once it has wrapped past the last combination.
func advance(idx []int, windows [][]perk.RankProbability) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < len(windows[i]) {
			return true
		}
		idx[i] = 0
	}
	return false
}

// Sort reorders comb.Ranks in place using the Jagex quicksort.
func Sort(comb *perk.RankCombination) {
	if len(comb.Ranks) < 2 {
		return
	}
	jagexQuicksort(comb.Ranks, 0, len(comb.Ranks)-1)
}

// jagexQuicksort is a midpoint-pivot quicksort whose partition predicate
// flips on index parity: element i is placed before the pivot iff
// (cost_i - pivot_cost) < (i & 1). This reproduces an observable ordering
// quirk of the live game client and is deliberately not a stable sort —
// do not "fix" the tie-break, the test vectors pin its exact behaviour.
func jagexQuicksort(ranks []perk.PerkRank, low, high int) {
	pivotIndex := (low + high) / 2
	pivotValue := ranks[pivotIndex]
	ranks[pivotIndex], ranks[high] = ranks[high], ranks[pivotIndex]
	counter := low

	for i := low; i < high; i++ {
		parity := int64(i & 1)
		if int64(ranks[i].Cost)-int64(pivotValue.Cost) < parity {
			ranks[i], ranks[counter] = ranks[counter], ranks[i]
			counter++
		}
	}

	ranks[high], ranks[counter] = ranks[counter], ranks[high]

	if low < counter-1 {
		jagexQuicksort(ranks, low, counter-1)
	}
	if counter+1 < high {
		jagexQuicksort(ranks, counter+1, high)
	}
}
