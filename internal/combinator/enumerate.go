package combinator

import (
	"perksolver/internal/perk"

	"gonum.org/v1/gonum/stat/combin"
)

// permute emits every ordering of items via Heap's algorithm.
func permute(items []perk.MaterialName, emit func([]perk.MaterialName)) {
	n := len(items)
	if n == 0 {
		emit(nil)
		return
	}
	buf := append([]perk.MaterialName(nil), items...)
	c := make([]int, n)
	emit(append([]perk.MaterialName(nil), buf...))
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				buf[0], buf[i] = buf[i], buf[0]
			} else {
				buf[c[i]], buf[i] = buf[i], buf[c[i]]
			}
			emit(append([]perk.MaterialName(nil), buf...))
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}

// combinationsWithReplacement yields every non-decreasing index multiset
// of size k drawn from [0, n), i.e. k-combinations with repetition. gonum's
// combin package only covers combinations without repetition, so this is
// a small hand-rolled complement.
func combinationsWithReplacement(n, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	if n == 0 {
		return nil
	}

	var out [][]int
	var rec func(start int, chosen []int)
	rec = func(start int, chosen []int) {
		if len(chosen) == k {
			out = append(out, append([]int(nil), chosen...))
			return
		}
		for v := start; v < n; v++ {
			rec(v, append(chosen, v))
		}
	}
	rec(0, make([]int, 0, k))
	return out
}

// EnumerateCombinations walks every material set (slot count 1..=slotMax)
// reachable from the conflict/no-conflict split. For each slot count and
// each number of conflict materials used (0..=min(slotCount,len(conflict))),
// it generates every distinct ordered arrangement of conflict materials,
// every multiset of no-conflict materials filling the remaining slots, and
// every way to interleave the two that preserves the conflict materials'
// relative order (since the unstable rankcombo sort is order-sensitive
// only among conflict-cost ties).
func EnumerateCombinations(conflict, noConflict []perk.MaterialName, slotMax int) [][]perk.MaterialName {
	var out [][]perk.MaterialName

	for slotCount := 1; slotCount <= slotMax; slotCount++ {
		maxS := slotCount
		if len(conflict) < maxS {
			maxS = len(conflict)
		}

		for s := 0; s <= maxS; s++ {
			noConflictCount := slotCount - s
			if noConflictCount > 0 && len(noConflict) == 0 {
				continue
			}

			conflictChoices := [][]int{{}}
			if s > 0 {
				conflictChoices = combin.Combinations(len(conflict), s)
			}
			noConflictChoices := combinationsWithReplacement(len(noConflict), noConflictCount)
			positionChoices := [][]int{{}}
			if s > 0 && s < slotCount {
				positionChoices = combin.Combinations(slotCount, s)
			} else if s == slotCount {
				positionChoices = [][]int{allPositions(slotCount)}
			}

			for _, cc := range conflictChoices {
				conflictItems := make([]perk.MaterialName, len(cc))
				for i, idx := range cc {
					conflictItems[i] = conflict[idx]
				}

				permute(conflictItems, func(ordered []perk.MaterialName) {
					for _, ncc := range noConflictChoices {
						fillers := make([]perk.MaterialName, len(ncc))
						for i, idx := range ncc {
							fillers[i] = noConflict[idx]
						}

						for _, positions := range positionChoices {
							out = append(out, interleave(slotCount, ordered, fillers, positions))
						}
					}
				})
			}
		}
	}

	return out
}

func allPositions(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// interleave places ordered (length = len(positions)) into the given
// slot positions (ascending) and fills every other slot, in order, with
// fillers.
func interleave(slotCount int, ordered, fillers []perk.MaterialName, positions []int) []perk.MaterialName {
	result := make([]perk.MaterialName, slotCount)
	isConflictSlot := make([]bool, slotCount)
	for i, p := range positions {
		result[p] = ordered[i]
		isConflictSlot[p] = true
	}

	fi := 0
	for i := 0; i < slotCount; i++ {
		if !isConflictSlot[i] {
			result[i] = fillers[fi]
			fi++
		}
	}
	return result
}
