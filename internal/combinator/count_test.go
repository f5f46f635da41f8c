package combinator

import "testing"

func TestCalcCombinationCountNoConflictOnlyOneSlot(t *testing.T) {
	// slotMax=5, no conflict materials, 3 no-conflict materials: for
	// slot_count=1 alone that's C(3,1)=3 combinations (j loop contributes
	// nothing since conflictSize=0), so the total must be at least 3.
	got := CalcCombinationCount(0, 3, false)
	if got < 3 {
		t.Fatalf("expected at least 3, got %d", got)
	}
}

func TestCalcCombinationCountZeroMaterialsAddsSlotFallback(t *testing.T) {
	got := CalcCombinationCount(0, 0, false)
	if got != MaxSlots(false) {
		t.Fatalf("got %d, want %d (no_conflict_size==0 fallback)", got, MaxSlots(false))
	}
}

func TestCalcCombinationCountAncientUsesNineSlots(t *testing.T) {
	nonAncient := CalcCombinationCount(2, 3, false)
	ancient := CalcCombinationCount(2, 3, true)
	if ancient <= nonAncient {
		t.Fatalf("ancient (9 slots) should enumerate strictly more than non-ancient (5 slots): %d vs %d", ancient, nonAncient)
	}
}
