package perk

import "testing"

func TestGizmoOnePerkEqual(t *testing.T) {
	x := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 1}, {}}}
	y := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 1}, {}}}
	if !x.Same(y) {
		t.Fatal("expected Same")
	}
}

func TestGizmoOnePerkNotEqualButSameRank(t *testing.T) {
	x := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 1}, {}}}
	y := Gizmo{Perks: [2]Perk{{Perk: Biting, Rank: 1}, {}}}
	if x.Same(y) {
		t.Fatal("expected not Same")
	}
}

func TestGizmoOnePerkEqualButNotSameRank(t *testing.T) {
	x := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 1}, {}}}
	y := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 2}, {}}}
	if x.Same(y) {
		t.Fatal("expected not Same")
	}
}

func TestGizmoTwoPerksEqualSameOrder(t *testing.T) {
	x := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 1}, {Perk: Biting, Rank: 2}}}
	y := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 1}, {Perk: Biting, Rank: 2}}}
	if !x.Same(y) {
		t.Fatal("expected Same")
	}
}

func TestGizmoTwoPerksEqualNotSameOrder(t *testing.T) {
	x := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 1}, {Perk: Biting, Rank: 2}}}
	y := Gizmo{Perks: [2]Perk{{Perk: Biting, Rank: 2}, {Perk: Precise, Rank: 1}}}
	if !x.Same(y) {
		t.Fatal("expected Same")
	}
}

func TestGizmoTwoPerksEqualPerksNotSameRanks(t *testing.T) {
	x := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 1}, {Perk: Biting, Rank: 2}}}
	y := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 1}, {Perk: Biting, Rank: 3}}}
	if x.Same(y) {
		t.Fatal("expected not Same")
	}
}

func TestGizmoTwoPerksNotEqualPerksSameRanks(t *testing.T) {
	x := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 1}, {Perk: Biting, Rank: 2}}}
	y := Gizmo{Perks: [2]Perk{{Perk: Equilibrium, Rank: 1}, {Perk: Biting, Rank: 2}}}
	if x.Same(y) {
		t.Fatal("expected not Same")
	}
}

func TestGizmoFuzzyMatchFirstPerk(t *testing.T) {
	x := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 1}, {Perk: Biting, Rank: 2}}}
	y := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 1}, {}}}
	if !x.Contains(y) {
		t.Fatal("expected Contains")
	}
}

func TestGizmoFuzzyMatchSecondPerk(t *testing.T) {
	x := Gizmo{Perks: [2]Perk{{Perk: Biting, Rank: 2}, {Perk: Precise, Rank: 1}}}
	y := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 1}, {}}}
	if !x.Contains(y) {
		t.Fatal("expected Contains")
	}
}

func TestGizmoFuzzyMatchNone(t *testing.T) {
	x := Gizmo{Perks: [2]Perk{{Perk: Biting, Rank: 2}, {Perk: Precise, Rank: 1}}}
	y := Gizmo{Perks: [2]Perk{{Perk: Precise, Rank: 2}, {}}}
	if x.Contains(y) {
		t.Fatal("expected not Contains")
	}
}
