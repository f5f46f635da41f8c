package price

import (
	"math"
	"testing"

	"perksolver/internal/perk"
)

func sampleMap() *Map {
	m := &Map{}
	m.Set(perk.DeflectingParts, 100)
	m.Set(perk.HistoricComponents, 50)
	m.Set(perk.ClassicComponents, 10)
	m.Set(perk.ProtectiveComponents, 20)
	m.Set(perk.BladeParts, 200)
	m.Set(perk.StrongComponents, 30)
	m.Set(perk.HeadParts, 150)
	m.Set(perk.PreciseComponents, 40)
	m.Set(perk.CraftedParts, 5)
	return m
}

func TestCalcShellPriceNonAncientWeapon(t *testing.T) {
	m := sampleMap()
	got := CalcShellPrice(perk.Weapon, false, m)
	want := 10*200.0 + 5*5.0 + 2*30.0
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCalcShellPriceAncientArmour(t *testing.T) {
	m := sampleMap()
	got := CalcShellPrice(perk.Armour, true, m)
	want := 20*100.0 + 20*50.0 + 2*10.0 + 2*20.0
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCalcShellPriceAncientTool(t *testing.T) {
	m := sampleMap()
	got := CalcShellPrice(perk.Tool, true, m)
	want := 20*150.0 + 20*50.0 + 2*10.0 + 2*40.0
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCalcGizmoPriceSumsShellAndMaterials(t *testing.T) {
	m := sampleMap()
	m.Set(perk.ArmadylComponents, 500)
	price, pps := CalcGizmoPrice([]perk.MaterialName{perk.ArmadylComponents, perk.ArmadylComponents}, 100, m, 0.5)

	if price != 100+500+500 {
		t.Fatalf("got price %v, want %v", price, 1100.0)
	}
	if pps != price/0.5 {
		t.Fatalf("got pricePerSuccess %v, want %v", pps, price/0.5)
	}
}

func TestCalcGizmoPriceInfiniteWhenProbGizmoZero(t *testing.T) {
	m := sampleMap()
	_, pps := CalcGizmoPrice(nil, 100, m, 0)
	if !math.IsInf(pps, 1) {
		t.Fatalf("expected +Inf, got %v", pps)
	}
}
