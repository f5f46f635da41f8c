package combinator

import (
	"testing"

	"perksolver/internal/perk"
)

func TestEnumerateCombinationsSingleSlotIsJustEachMaterial(t *testing.T) {
	noConflict := []perk.MaterialName{perk.ArmadylComponents, perk.OceanicComponents}
	combos := EnumerateCombinations(nil, noConflict, 1)

	if len(combos) != 2 {
		t.Fatalf("got %d combinations, want 2", len(combos))
	}
	for _, c := range combos {
		if len(c) != 1 {
			t.Fatalf("expected single-slot combination, got %v", c)
		}
	}
}

func TestEnumerateCombinationsRespectsConflictOrder(t *testing.T) {
	conflict := []perk.MaterialName{perk.ArmadylComponents, perk.OceanicComponents}
	combos := EnumerateCombinations(conflict, nil, 2)

	sawForward, sawReverse := false, false
	for _, c := range combos {
		if len(c) != 2 {
			continue
		}
		if c[0] == perk.ArmadylComponents && c[1] == perk.OceanicComponents {
			sawForward = true
		}
		if c[0] == perk.OceanicComponents && c[1] == perk.ArmadylComponents {
			sawReverse = true
		}
	}
	if !sawForward || !sawReverse {
		t.Fatalf("expected both conflict orderings to appear, combos=%v", combos)
	}
}

func TestEnumerateCombinationsInterleavesConflictAndNoConflict(t *testing.T) {
	conflict := []perk.MaterialName{perk.ArmadylComponents}
	noConflict := []perk.MaterialName{perk.PreciseComponents}
	combos := EnumerateCombinations(conflict, noConflict, 2)

	sawArmadylFirst, sawArmadylSecond := false, false
	for _, c := range combos {
		if len(c) != 2 {
			continue
		}
		if c[0] == perk.ArmadylComponents && c[1] == perk.PreciseComponents {
			sawArmadylFirst = true
		}
		if c[0] == perk.PreciseComponents && c[1] == perk.ArmadylComponents {
			sawArmadylSecond = true
		}
	}
	if !sawArmadylFirst || !sawArmadylSecond {
		t.Fatalf("expected both interleavings of one conflict + one no-conflict material, combos=%v", combos)
	}
}

func TestEnumerateCombinationsAllowsRepeatedNoConflictMaterial(t *testing.T) {
	noConflict := []perk.MaterialName{perk.PreciseComponents}
	combos := EnumerateCombinations(nil, noConflict, 2)

	found := false
	for _, c := range combos {
		if len(c) == 2 && c[0] == perk.PreciseComponents && c[1] == perk.PreciseComponents {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a repeated-material combination, got %v", combos)
	}
}
