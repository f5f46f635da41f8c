// Package price is the price model (component K): shell price tables,
// per-combination price, and the sqlite/flat-file price cache. Grounded
// on original_source/src/component_prices.rs.
package price

import (
	"math"

	"perksolver/internal/perk"
)

// Map is a dense per-material price lookup: a map indexed by MaterialName
// would cost a hash per hot-loop access, so it's a plain array (SPEC_FULL.md
// §4.K "no map lookups during the combinatorial loop").
type Map [perk.MaterialCount]float64

func (m *Map) Get(name perk.MaterialName) float64 {
	if int(name) < 0 || int(name) >= perk.MaterialCount {
		return 0
	}
	return m[name]
}

func (m *Map) Set(name perk.MaterialName, value float64) {
	if int(name) < 0 || int(name) >= perk.MaterialCount {
		return
	}
	m[name] = value
}

// CalcShellPrice is the fixed linear combination of material prices for a
// gizmo shell, ported verbatim (six cases) from component_prices.rs's
// calc_shell_price.
func CalcShellPrice(gizmoType perk.GizmoType, isAncientGizmo bool, prices *Map) float64 {
	if isAncientGizmo {
		switch gizmoType {
		case perk.Armour:
			return 20*prices.Get(perk.DeflectingParts) + 20*prices.Get(perk.HistoricComponents) + 2*prices.Get(perk.ClassicComponents) + 2*prices.Get(perk.ProtectiveComponents)
		case perk.Tool:
			return 20*prices.Get(perk.HeadParts) + 20*prices.Get(perk.HistoricComponents) + 2*prices.Get(perk.ClassicComponents) + 2*prices.Get(perk.PreciseComponents)
		default:
			return 20*prices.Get(perk.BladeParts) + 20*prices.Get(perk.HistoricComponents) + 2*prices.Get(perk.ClassicComponents) + 2*prices.Get(perk.StrongComponents)
		}
	}

	switch gizmoType {
	case perk.Armour:
		return 10*prices.Get(perk.DeflectingParts) + 5*prices.Get(perk.CraftedParts) + 2*prices.Get(perk.ProtectiveComponents)
	case perk.Tool:
		return 10*prices.Get(perk.HeadParts) + 5*prices.Get(perk.CraftedParts) + 2*prices.Get(perk.PreciseComponents)
	default:
		return 10*prices.Get(perk.BladeParts) + 5*prices.Get(perk.CraftedParts) + 2*prices.Get(perk.StrongComponents)
	}
}

// CalcGizmoPrice returns (raw price, price per expected success) for a
// material combination under a precomputed shell price. Ported from
// component_prices.rs's calc_gizmo_price; pricePerSuccess is +Inf when
// probGizmo is 0.
func CalcGizmoPrice(materials []perk.MaterialName, shellPrice float64, prices *Map, probGizmo float64) (price, pricePerSuccess float64) {
	price = shellPrice
	for _, m := range materials {
		price += prices.Get(m)
	}
	if probGizmo <= 0 {
		return price, math.Inf(1)
	}
	return price, price / probGizmo
}
