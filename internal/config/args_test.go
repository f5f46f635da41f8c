package config

import (
	"testing"

	"perksolver/internal/perk"
)

func TestParseGizmoArgsBasic(t *testing.T) {
	a, err := ParseGizmoArgs([]string{"-type", "weapon", "-level", "120", "precise", "2"})
	if err != nil {
		t.Fatalf("ParseGizmoArgs: %v", err)
	}
	if a.GizmoType != perk.Weapon {
		t.Fatalf("got gizmo type %v, want Weapon", a.GizmoType)
	}
	if a.Wanted[0].Perk != perk.Precise || a.Wanted[0].Rank != 2 {
		t.Fatalf("got wanted %+v, want Precise rank 2", a.Wanted[0])
	}
	if !a.InventionLevel.Single() || a.InventionLevel.Low != 120 {
		t.Fatalf("got level %+v, want single 120", a.InventionLevel)
	}
}

func TestParseGizmoArgsRangeLevel(t *testing.T) {
	a, err := ParseGizmoArgs([]string{"-level", "80,120", "precise"})
	if err != nil {
		t.Fatalf("ParseGizmoArgs: %v", err)
	}
	if a.InventionLevel.Single() {
		t.Fatal("expected a range, not a single level")
	}
	if a.InventionLevel.Low != 80 || a.InventionLevel.High != 120 {
		t.Fatalf("got %+v, want 80..120", a.InventionLevel)
	}
}

func TestParseGizmoArgsAnySecondPerkSetsFuzzy(t *testing.T) {
	a, err := ParseGizmoArgs([]string{"-level", "120", "precise", "1", "any"})
	if err != nil {
		t.Fatalf("ParseGizmoArgs: %v", err)
	}
	if !a.Fuzzy {
		t.Fatal("expected 'any' second perk to set Fuzzy")
	}
	if a.Wanted[1].Perk != perk.Empty {
		t.Fatalf("expected empty second slot, got %+v", a.Wanted[1])
	}
}

func TestParseGizmoArgsOutFileFalseDisables(t *testing.T) {
	a, err := ParseGizmoArgs([]string{"-level", "120", "-out-file", "false", "precise"})
	if err != nil {
		t.Fatalf("ParseGizmoArgs: %v", err)
	}
	if a.OutFile != "" {
		t.Fatalf("got OutFile %q, want empty (disabled)", a.OutFile)
	}
}

func TestParseGizmoArgsRejectsBadLevel(t *testing.T) {
	if _, err := ParseGizmoArgs([]string{"-level", "200", "precise"}); err == nil {
		t.Fatal("expected error for out-of-range level")
	}
}

func TestParseGizmoArgsRejectsInvertedRange(t *testing.T) {
	if _, err := ParseGizmoArgs([]string{"-level", "120,80", "precise"}); err == nil {
		t.Fatal("expected error for inverted level range")
	}
}

func TestParseMaterialArgsAcceptsShortNames(t *testing.T) {
	a, err := ParseMaterialArgs([]string{"-level", "120", "precise,oceanic"})
	if err != nil {
		t.Fatalf("ParseMaterialArgs: %v", err)
	}
	if len(a.Materials) != 2 {
		t.Fatalf("got %d materials, want 2", len(a.Materials))
	}
}

func TestGizmoArgsValidateAgainstDataRejectsDoubleslotPairing(t *testing.T) {
	data := &perk.Data{}
	data.Perks[perk.Devoted] = perk.PerkRanksData{
		Doubleslot: true,
		Ranks: []perk.PerkRank{
			{Perk: perk.Devoted, Rank: 0},
			{Perk: perk.Devoted, Rank: 1},
		},
	}
	data.Perks[perk.Precise] = perk.PerkRanksData{
		Ranks: []perk.PerkRank{{Perk: perk.Precise, Rank: 0}, {Perk: perk.Precise, Rank: 1}},
	}

	a := &GizmoArgs{Wanted: [2]perk.Perk{{Perk: perk.Devoted, Rank: 1}, {Perk: perk.Precise, Rank: 1}}}
	if err := a.ValidateAgainstData(data); err == nil {
		t.Fatal("expected error pairing a doubleslot perk with another perk")
	}
}

func TestGizmoArgsValidateAgainstDataRejectsRankOverflow(t *testing.T) {
	data := &perk.Data{}
	data.Perks[perk.Precise] = perk.PerkRanksData{
		Ranks: []perk.PerkRank{{Perk: perk.Precise, Rank: 0}, {Perk: perk.Precise, Rank: 1}},
	}
	a := &GizmoArgs{Wanted: [2]perk.Perk{{Perk: perk.Precise, Rank: 5}, {}}}
	if err := a.ValidateAgainstData(data); err == nil {
		t.Fatal("expected error for rank beyond the perk's table")
	}
}
