package budget

import "testing"

func TestCreateNonAncientRange(t *testing.T) {
	b := Create(10, false)
	if b.Range.Min != 10 {
		t.Fatalf("Min = %d, want 10", b.Range.Min)
	}
	wantMax := uint16(len(b.Dist) - 1)
	if b.Range.Max != wantMax {
		t.Fatalf("Max = %d, want %d", b.Range.Max, wantMax)
	}
	if b.Dist[len(b.Dist)-1] != 1.0 {
		t.Fatalf("dist does not end at 1.0: %v", b.Dist[len(b.Dist)-1])
	}
}

func TestCreateAncientUsesSixDice(t *testing.T) {
	nonAncient := Create(10, false)
	ancient := Create(10, true)
	if len(ancient.Dist) <= len(nonAncient.Dist) {
		t.Fatalf("ancient dist (len %d) should be longer than non-ancient (len %d)", len(ancient.Dist), len(nonAncient.Dist))
	}
}

func TestCreateAllSteps(t *testing.T) {
	all := CreateAll(10, 16, false)
	for _, lvl := range []int{10, 12, 14, 16} {
		if _, ok := all[lvl]; !ok {
			t.Fatalf("expected level %d present", lvl)
		}
	}
	if _, ok := all[11]; ok {
		t.Fatal("odd level should not be present")
	}
}
