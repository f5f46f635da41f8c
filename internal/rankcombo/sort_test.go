package rankcombo

import (
	"testing"

	"perksolver/internal/perk"
)

// Stand-ins for the original test vectors' PerkName::A..E — only relative
// cost and identity matter here, not the concrete perk.
const (
	a = perk.Absorbative
	b = perk.Aftershock
	c = perk.Antitheism
	d = perk.Biting
	e = perk.Blunted
)

func pr(name perk.Name, cost uint16) perk.PerkRank {
	return perk.PerkRank{Perk: name, Cost: cost}
}

func assertOrder(t *testing.T, got []perk.PerkRank, want ...perk.Name) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Perk != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i].Perk, want[i])
		}
	}
}

func runSort(ranks []perk.PerkRank) []perk.PerkRank {
	comb := perk.RankCombination{Ranks: ranks}
	Sort(&comb)
	return comb.Ranks
}

func TestJagexQuicksortEvenNoEqualCosts(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(b, 20), pr(a, 10), pr(d, 40), pr(c, 30)})
	assertOrder(t, got, a, b, c, d)
}

func TestJagexQuicksortEvenEqualCosts1(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(b, 10), pr(a, 10), pr(d, 40), pr(c, 30)})
	assertOrder(t, got, a, b, c, d)
}

func TestJagexQuicksortEvenEqualCosts2(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(b, 10), pr(a, 10), pr(c, 30), pr(d, 40)})
	assertOrder(t, got, a, b, c, d)
}

func TestJagexQuicksortEvenEqualCosts3(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(d, 40), pr(a, 10), pr(b, 10), pr(c, 30)})
	assertOrder(t, got, a, b, c, d)
}

func TestJagexQuicksortEvenEqualCosts4(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(c, 30), pr(a, 10), pr(b, 10), pr(d, 40)})
	assertOrder(t, got, a, b, c, d)
}

func TestJagexQuicksortEvenEqualCosts5(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(c, 30), pr(b, 10), pr(a, 10), pr(d, 40)})
	assertOrder(t, got, b, a, c, d)
}

func TestJagexQuicksortEvenEqualCosts6(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(c, 30), pr(d, 40), pr(b, 10), pr(a, 10)})
	assertOrder(t, got, b, a, c, d)
}

func TestJagexQuicksortEvenEqualCosts7(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(c, 30), pr(d, 40), pr(a, 10), pr(b, 10)})
	assertOrder(t, got, a, b, c, d)
}

func TestJagexQuicksortEvenEqualCosts8(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(d, 40), pr(c, 30), pr(b, 10), pr(a, 10)})
	assertOrder(t, got, a, b, c, d)
}

func TestJagexQuicksortEvenEqualCosts9(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(d, 40), pr(c, 30), pr(a, 10), pr(b, 10)})
	assertOrder(t, got, b, a, c, d)
}

func TestJagexQuicksortEvenEqualCosts10(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(a, 10), pr(d, 40), pr(c, 30), pr(b, 10)})
	assertOrder(t, got, b, a, c, d)
}

func TestJagexQuicksortEvenEqualCosts11(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(b, 10), pr(d, 40), pr(c, 30), pr(a, 10)})
	assertOrder(t, got, a, b, c, d)
}

func TestJagexQuicksortEvenEqualCosts12(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(a, 10), pr(c, 30), pr(d, 40), pr(b, 10)})
	assertOrder(t, got, a, b, c, d)
}

func TestJagexQuicksortEvenEqualCosts13(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(b, 10), pr(c, 30), pr(d, 40), pr(a, 10)})
	assertOrder(t, got, b, a, c, d)
}

func TestJagexQuicksortUnevenNoEqualCosts(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(b, 20), pr(c, 30), pr(d, 40), pr(a, 10), pr(e, 50)})
	assertOrder(t, got, a, b, c, d, e)
}

func TestJagexQuicksortUnevenEqualCosts1(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(a, 10), pr(b, 10), pr(c, 30), pr(d, 40), pr(e, 50)})
	assertOrder(t, got, a, b, c, d, e)
}

func TestJagexQuicksortUnevenEqualCosts2(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(a, 10), pr(c, 30), pr(b, 10), pr(d, 40), pr(e, 50)})
	assertOrder(t, got, b, a, c, d, e)
}

func TestJagexQuicksortUnevenEqualCosts3(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(a, 10), pr(c, 30), pr(d, 40), pr(b, 10), pr(e, 50)})
	assertOrder(t, got, a, b, c, d, e)
}

func TestJagexQuicksortUnevenEqualCosts4(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(a, 10), pr(c, 30), pr(d, 40), pr(e, 50), pr(b, 10)})
	assertOrder(t, got, a, b, c, d, e)
}

func TestJagexQuicksortUnevenEqualCosts5(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(c, 30), pr(a, 10), pr(b, 10), pr(d, 40), pr(e, 50)})
	assertOrder(t, got, a, b, c, d, e)
}

func TestJagexQuicksortUnevenEqualCosts6(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(c, 30), pr(b, 10), pr(d, 40), pr(a, 10), pr(e, 50)})
	assertOrder(t, got, a, b, c, d, e)
}

func TestJagexQuicksortUnevenEqualCosts7(t *testing.T) {
	got := runSort([]perk.PerkRank{pr(e, 50), pr(a, 10), pr(b, 10), pr(c, 30), pr(d, 40)})
	assertOrder(t, got, a, b, c, d, e)
}
