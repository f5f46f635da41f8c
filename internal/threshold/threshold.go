// Package threshold walks a sorted RankCombination and computes the
// piecewise function mapping a budget roll to the Gizmo it produces
// (component G), plus the probability integrator that turns those
// breakpoints into P(wanted) and P(attempt) (component H). Grounded
// verbatim on original_source/src/gizmo_cost_thresholds.rs — the most
// intricate file in the original, ported close to line-for-line.
package threshold

import "perksolver/internal/perk"

// FindGizmoCostThresholds walks the full sorted combination and returns
// every (cost, Gizmo) breakpoint reachable within [0, maxRange) — the
// "full map" mode used when every possible output must be considered
// (e.g. computing attempt probability over all outputs). The first entry
// is always the cost=-1 sentinel meaning "nothing affordable yet".
func FindGizmoCostThresholds(combination perk.RankCombination, maxRange uint16) []perk.Gizmo {
	costThresholds := []perk.Gizmo{{Cost: -1}}
	firstNonZeroRankIndex := 0
	ranks := combination.Ranks

	for i := 0; i < len(ranks); i++ {
		prv := ranks[i]

		if prv.Rank == 0 {
			firstNonZeroRankIndex++
			continue
		}
		if prv.Cost >= maxRange {
			break
		}

		if costThresholds[len(costThresholds)-1].Cost == int16(prv.Cost) {
			costThresholds = costThresholds[:len(costThresholds)-1]
		}
		costThresholds = append(costThresholds, perk.CreateGizmo(prv, nil))

		nextThreshold := maxRange
		if i+1 < len(ranks) {
			nextThreshold = ranks[i+1].Cost
		}

		for j := firstNonZeroRankIndex; j < i; j++ {
			prvTwo := ranks[j]
			costSum := prv.Cost + prvTwo.Cost
			if costSum >= nextThreshold {
				break
			}

			if costThresholds[len(costThresholds)-1].Cost == int16(costSum) {
				costThresholds = costThresholds[:len(costThresholds)-1]
			}

			if prv.Doubleslot || prvTwo.Doubleslot {
				costThresholds = append(costThresholds, perk.CreateDoubleslotGizmo(prv, &prvTwo))
			} else {
				costThresholds = append(costThresholds, perk.CreateGizmo(prv, &prvTwo))
			}
		}
	}

	return costThresholds
}

// FindWantedGizmoCostThresholds walks the sorted combination looking only
// for the breakpoints that produce the given wanted pair (order-insensitive
// when both slots are wanted; fuzzy first-slot-only when the second slot is
// empty). This is the cheap, inner-loop mode: unlike FindGizmoCostThresholds
// it returns at most a handful of entries rather than the whole map.
func FindWantedGizmoCostThresholds(combination perk.RankCombination, maxRange uint16, wanted perk.Gizmo) []perk.Gizmo {
	var costThresholds []perk.Gizmo
	firstNonZeroRankIndex := 0
	perkTwoIndex := -1
	var doubleSlotLocations []int

	ranks := combination.Ranks

	for i := 0; i < len(ranks); i++ {
		prv := ranks[i]

		if prv.Rank == 0 {
			firstNonZeroRankIndex++
			continue
		}

		if prv.Doubleslot && wanted.Perks[1].IsEmpty() {
			doubleSlotLocations = append(doubleSlotLocations, i)
		}

		if !(wanted.Perks[0].SameRank(prv) || wanted.Perks[1].SameRank(prv)) {
			continue
		}

		if prv.Cost >= maxRange {
			break
		}

		perkOne := prv
		var perkTwo perk.PerkRank

		switch {
		case wanted.Perks[1].IsEmpty():
			// Singular perk can't exist if a higher-index perk ties its cost.
			if i+1 < len(ranks) && prv.Cost == ranks[i+1].Cost {
				return costThresholds
			}

			costThresholds = append(costThresholds, perk.CreateGizmo(prv, nil))
			nextMajorThreshold := maxRange
			if i+1 < len(ranks) {
				nextMajorThreshold = ranks[i+1].Cost
			}

			switch {
			case prv.Doubleslot:
				if i+1 < len(ranks) {
					if len(doubleSlotLocations) > 0 {
						doubleSlotLocations = doubleSlotLocations[1:]
					}
					perkOne = ranks[i+1]
				} else {
					// Doubleslot perks delete the second perk, so if the
					// wanted perk is last in the list the next threshold
					// is max_range.
					return costThresholds
				}
			case firstNonZeroRankIndex == i || (prv.Cost+ranks[firstNonZeroRankIndex].Cost >= nextMajorThreshold):
				if i+1 < len(ranks) {
					perkOne = ranks[i+1]
				} else {
					return costThresholds
				}
			default:
				for _, x := range ranks[firstNonZeroRankIndex:] {
					if x.Doubleslot {
						if len(doubleSlotLocations) > 0 {
							doubleSlotLocations = doubleSlotLocations[1:]
						}
					} else {
						perkTwo = x
						break
					}
				}
			}

			if perkOne.Cost+perkTwo.Cost < maxRange {
				costThresholds = append(costThresholds, perk.CreateGizmo(perkOne, &perkTwo))
			} else {
				return costThresholds
			}

			for len(doubleSlotLocations) > 0 {
				doubleLoc := doubleSlotLocations[0]
				doubleSlotLocations = doubleSlotLocations[1:]

				perkTwo = ranks[doubleLoc]
				if prv.Cost+perkTwo.Cost < nextMajorThreshold {
					costThresholds = append(costThresholds, perk.CreateDoubleslotGizmo(prv, &perkTwo))
				} else {
					return costThresholds
				}

				endIndex := doubleLoc + 1
				for len(doubleSlotLocations) > 0 && doubleSlotLocations[0] == endIndex {
					endIndex++
					doubleSlotLocations = doubleSlotLocations[1:]
				}

				if endIndex == i {
					if i+1 < len(ranks) {
						perkOne = ranks[i+1]
						perkTwo = perk.PerkRank{}
					} else {
						return costThresholds
					}
				} else {
					perkOne = prv
					perkTwo = ranks[endIndex]
				}

				if perkOne.Cost+perkTwo.Cost < maxRange {
					costThresholds = append(costThresholds, perk.CreateGizmo(perkOne, &perkTwo))
				} else {
					return costThresholds
				}
			}

			return costThresholds

		case perkTwoIndex == -1:
			perkTwoIndex = i

		default:
			nextMajorThreshold := maxRange
			if i+1 < len(ranks) {
				nextMajorThreshold = ranks[i+1].Cost
			}
			perkTwo = ranks[perkTwoIndex]

			if perkOne.Cost+perkTwo.Cost >= nextMajorThreshold {
				return costThresholds
			}
			if perkTwoIndex < i-1 && ranks[perkTwoIndex+1].Cost == perkTwo.Cost {
				return costThresholds
			}

			costThresholds = append(costThresholds, perk.CreateGizmo(perkOne, &perkTwo))

			if i < len(ranks)-1 || perkTwoIndex < len(ranks)-2 {
				if perkTwoIndex == i-1 {
					perkOne = ranks[i+1]
					perkTwo = perk.PerkRank{}
				} else {
					perkOne = prv
					perkTwo = ranks[perkTwoIndex+1]
				}

				if perkOne.Cost+perkTwo.Cost < maxRange {
					costThresholds = append(costThresholds, perk.CreateGizmo(perkOne, &perkTwo))
				}
			}

			return costThresholds
		}
	}

	return costThresholds
}
