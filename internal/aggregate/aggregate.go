// Package aggregate builds, for a given material set, the list of perks it
// can possibly roll (component C) and the per-rank probability each perk
// resolves to (component D). Grounded on
// original_source/src/perk_values.rs.
package aggregate

import (
	"sort"

	"perksolver/internal/dice"
	"perksolver/internal/perk"
)

// GetPerkValues scans input materials for the given gizmo type and
// accumulates, per distinct perk touched, the summed base value and the list
// of individual roll ranges each contributing material adds. Perks are
// returned in first-encounter order. Ancient-only materials are skipped
// unless the gizmo itself is ancient; conversely, when the gizmo is ancient
// but a contributing material is not, its base/roll values are scaled by
// 8/10 (integer division, matching the live game's rounding).
func GetPerkValues(data *perk.Data, materials []perk.MaterialName, gizmoType perk.GizmoType, isAncientGizmo bool) []perk.PerkValues {
	order := make([]perk.Name, 0, 8)
	index := make(map[perk.Name]int, 8)
	var out []perk.PerkValues

	for _, mat := range materials {
		matData := data.Materials[mat]
		if matData.AncientOnly && !isAncientGizmo {
			continue
		}

		for _, cv := range matData.For(gizmoType) {
			roll := uint16(cv.Roll)
			base := cv.Base
			if isAncientGizmo && !matData.AncientOnly {
				roll = (roll * 8) / 10
				base = (base * 8) / 10
			}

			if i, ok := index[cv.Perk]; ok {
				out[i].Rolls = append(out[i].Rolls, uint8(roll))
				out[i].Base += base
			} else {
				index[cv.Perk] = len(out)
				order = append(order, cv.Perk)
				out = append(out, perk.PerkValues{
					Perk:  cv.Perk,
					Base:  base,
					Rolls: []uint8{uint8(roll)},
				})
			}
		}
	}

	return out
}

// CalcPerkRankProbabilities fills in, for every entry in perkValuesArr, the
// per-rank probability window (Ranks, IFirst, ILast): the probability that
// the accumulated rolls for that perk push its total into each rank's
// [threshold, nextThreshold) band. Ranks whose band has zero probability
// mass collapse the [IFirst, ILast] window so callers can skip them.
func CalcPerkRankProbabilities(data *perk.Data, perkValuesArr []perk.PerkValues, isAncientGizmo bool) {
	for idx := range perkValuesArr {
		pv := &perkValuesArr[idx]
		perkData := data.Perks[pv.Perk]

		pv.Ranks = make([]perk.RankProbability, len(perkData.Ranks))
		for i, r := range perkData.Ranks {
			pv.Ranks[i] = perk.RankProbability{Rank: r}
		}

		pv.IFirst = 0
		pv.ILast = len(pv.Ranks) - 1
		pv.Doubleslot = perkData.Doubleslot

		rolls := append([]uint8(nil), pv.Rolls...)
		sort.Slice(rolls, func(i, j int) bool { return rolls[i] < rolls[j] })

		var rollDist []float64
		i := 0
		for i < len(rolls) {
			j := i
			for j < len(rolls) && rolls[j] == rolls[i] {
				j++
			}
			count := j - i
			next := dice.Distribution(int(rolls[i]), count)
			if rollDist == nil {
				rollDist = next
			} else {
				rollDist = dice.Convolve(rollDist, next)
			}
			i = j
		}

		for i := range pv.Ranks {
			nextThreshold := int64(len(rollDist) - 1)

			if i+1 < len(pv.Ranks) {
				nextRank := pv.Ranks[i+1].Rank
				if !(nextRank.AncientOnly && !isAncientGizmo) {
					bound := int64(nextRank.Threshold) - int64(pv.Base) - 1
					if bound < nextThreshold {
						nextThreshold = bound
					}
				}
			}

			rank := pv.Ranks[i].Rank
			rangeStart := int64(rank.Threshold) - int64(pv.Base)
			if rangeStart < 0 {
				rangeStart = 0
			}

			if !(rank.AncientOnly && !isAncientGizmo) && nextThreshold >= 0 && rangeStart < nextThreshold {
				end := nextThreshold
				sum := 0.0
				for k := rangeStart; k <= end; k++ {
					sum += rollDist[k]
				}
				pv.Ranks[i].Probability = sum
			}

			if pv.Ranks[i].Probability == 0 {
				if pv.IFirst == i {
					pv.IFirst++
				} else if pv.ILast >= i {
					pv.ILast = i - 1
				}
			}
		}
	}
}

// CanGenerateWantedRanks is a cheap pre-filter: it checks whether the
// accumulated base + max possible roll for each wanted perk can reach its
// threshold without overshooting into the next rank's threshold. It does
// not catch every impossible material combination (that requires the full
// rank-combination enumeration), but it is enough to reject the bulk of
// hopeless material sets before paying for it.
func CanGenerateWantedRanks(data *perk.Data, perkValuesArr []perk.PerkValues, wanted [2]perk.Perk) bool {
	check := func(want perk.Perk) bool {
		if want.Perk == perk.Empty {
			return true
		}

		ranks := data.Perks[want.Perk].Ranks
		rank := int(want.Rank)
		threshold := int(ranks[rank].Threshold)
		nextThreshold := int(^uint(0) >> 1)
		if rank+1 < len(ranks) {
			nextThreshold = int(ranks[rank+1].Threshold)
		}

		for _, pv := range perkValuesArr {
			if pv.Perk != want.Perk {
				continue
			}
			maxRoll := 0
			for _, r := range pv.Rolls {
				maxRoll += int(r) - 1
			}
			base := int(pv.Base)
			return base+maxRoll >= threshold && base < nextThreshold
		}
		return false
	}

	if !check(wanted[0]) {
		return false
	}
	return check(wanted[1])
}
