// Package combinator is the material splitter and combination enumerator
// (component I). Grounded on original_source/src/lib.rs's get_materials,
// split_materials, generate_budgets and calc_combination_count — the
// downstream calc_gizmo_probabilities in that file is itself an
// unimplemented todo!() stub, so the actual multi-slot enumeration here
// follows SPEC_FULL.md's expansion rather than a line-for-line port.
package combinator

import (
	"sort"
	"strings"

	"perksolver/internal/perk"
)

// MaxSlots returns the manufacturing slot count for a gizmo shell.
func MaxSlots(isAncientGizmo bool) int {
	if isAncientGizmo {
		return 9
	}
	return 5
}

// GetMaterials returns every material able to contribute either wanted
// perk under gizmoType, respecting ancient filtering, with any material
// whose name matches one of the exclude substrings (case-insensitive)
// removed. The result is deduplicated and sorted by MaterialName so
// enumeration order is stable.
func GetMaterials(data *perk.Data, gizmoType perk.GizmoType, wanted [2]perk.Perk, ancientGizmo bool, exclude []string) []perk.MaterialName {
	seen := make(map[perk.MaterialName]bool)
	var out []perk.MaterialName

	for name := perk.MaterialName(0); int(name) < len(data.Materials); name++ {
		matData := data.Materials[name]
		if !ancientGizmo && matData.AncientOnly {
			continue
		}
		for _, cv := range matData.For(gizmoType) {
			if cv.Perk == wanted[0].Perk || cv.Perk == wanted[1].Perk {
				if !seen[name] {
					seen[name] = true
					out = append(out, name)
				}
				break
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	if len(exclude) == 0 {
		return out
	}

	filtered := out[:0:0]
	for _, name := range out {
		lowerName := strings.ToLower(name.String())
		excluded := false
		for _, x := range exclude {
			if strings.Contains(lowerName, strings.ToLower(x)) {
				excluded = true
				break
			}
		}
		if !excluded {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// SplitMaterials is the result of partitioning a material universe by
// whether any of their non-wanted-perk rank costs collide with a wanted
// perk's cost. Order among Conflict matters because of the unstable sort
// in internal/rankcombo; NoConflict is order-independent.
type SplitMaterials struct {
	Conflict   []perk.MaterialName
	NoConflict []perk.MaterialName
}

// SplitMaterials partitions mats per original_source/src/lib.rs's
// split_materials: a material is a conflict material if one of its
// non-wanted component perks has a nonzero-rank cost equal to either
// wanted perk's cost.
func SplitMaterials(data *perk.Data, gizmoType perk.GizmoType, wanted [2]perk.Perk, mats []perk.MaterialName) SplitMaterials {
	costP1 := data.Perks[wanted[0].Perk].Ranks[wanted[0].Rank].Cost
	var costP2 uint16
	if !wanted[1].IsEmpty() {
		costP2 = data.Perks[wanted[1].Perk].Ranks[wanted[1].Rank].Cost
	}

	var split SplitMaterials
	for _, mat := range mats {
		isConflict := false
	compLoop:
		for _, cv := range data.Materials[mat].For(gizmoType) {
			if cv.Perk == wanted[0].Perk || cv.Perk == wanted[1].Perk {
				continue
			}
			for _, rank := range data.Perks[cv.Perk].Ranks {
				if rank.Rank > 0 && (rank.Cost == costP1 || rank.Cost == costP2) {
					isConflict = true
					break compLoop
				}
			}
		}

		if isConflict {
			split.Conflict = append(split.Conflict, mat)
		} else {
			split.NoConflict = append(split.NoConflict, mat)
		}
	}

	return split
}
