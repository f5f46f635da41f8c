package search

import (
	"math"

	"perksolver/internal/perk"
)

// topKList is a fixed-size, best-first list of ResultLines for one
// invention level. Grounded on original_source/src/result.rs's
// result_handler: a pre-sized vec of default (worst-possible) entries that
// the insertion rule progressively displaces.
type topKList struct {
	entries []perk.ResultLine
	st      perk.SortType
}

func newTopKList(k int, st perk.SortType) *topKList {
	entries := make([]perk.ResultLine, k)
	for i := range entries {
		entries[i] = perk.ResultLine{PricePerSuccess: math.Inf(1)}
	}
	return &topKList{entries: entries, st: st}
}

func keyOf(r perk.ResultLine, st perk.SortType) float64 {
	switch st {
	case perk.SortGizmo:
		return r.ProbGizmo
	case perk.SortAttempt:
		return r.ProbAttempt
	default:
		return r.PricePerSuccess
	}
}

// isBetter mirrors result.rs's is_better closure: existing is the current
// occupant at some position, candidate is the new line being considered.
// Ties on key prefer a same-multiset candidate (dedup, doesn't consume a
// slot) then a shorter material sequence.
func isBetter(existing, candidate perk.ResultLine, st perk.SortType) bool {
	curr, cand := keyOf(existing, st), keyOf(candidate, st)
	if curr == cand {
		if len(candidate.Materials) == len(existing.Materials) {
			return candidate.SameMaterials(existing)
		}
		return len(candidate.Materials) < len(existing.Materials)
	}
	return st.Better(cand, curr)
}

// insert applies candidate against the list per SPEC_FULL.md §4.J: find the
// first position whose occupant is_better yields true against candidate,
// drop the list's last entry, and insert candidate there. A candidate that
// ties on key with a same-multiset occupant replaces it in place instead.
func (tk *topKList) insert(candidate perk.ResultLine) {
	for i, existing := range tk.entries {
		if isBetter(existing, candidate, tk.st) {
			if keyOf(existing, tk.st) == keyOf(candidate, tk.st) && candidate.SameMaterials(existing) {
				tk.entries[i] = candidate
				return
			}
			copy(tk.entries[i+1:], tk.entries[i:len(tk.entries)-1])
			tk.entries[i] = candidate
			return
		}
	}
}

// Results returns the entries with a nonzero prob_gizmo, best-first.
func (tk *topKList) Results() []perk.ResultLine {
	var out []perk.ResultLine
	for _, e := range tk.entries {
		if e.ProbGizmo > 0 {
			out = append(out, e)
		}
	}
	return out
}
