// Package data loads the perk/material definition table (component
// "Data input", SPEC_FULL.md §6) that every other component treats as
// read-only global state once loaded. Grounded on
// original_source/src/definitions.rs's PerkRankValues/ComponentValues
// shapes, with names round-tripped through their human-readable display
// form so the asset can be hand-edited and regenerated.
package data

import (
	"fmt"

	"perksolver/internal/perk"
)

// componentDef is one (perk, base, roll) contribution a material makes to
// a gizmo type, keyed by human-readable perk name.
type componentDef struct {
	Perk string `json:"perk" msgpack:"perk"`
	Base uint16 `json:"base" msgpack:"base"`
	Roll uint16 `json:"roll" msgpack:"roll"`
}

// materialDef is one material's full entry: whether it only applies to
// ancient gizmos, and its per-gizmo-type component list.
type materialDef struct {
	Name        string         `json:"name" msgpack:"name"`
	AncientOnly bool           `json:"ancient_only" msgpack:"ancient_only"`
	Weapon      []componentDef `json:"weapon,omitempty" msgpack:"weapon,omitempty"`
	Armour      []componentDef `json:"armour,omitempty" msgpack:"armour,omitempty"`
	Tool        []componentDef `json:"tool,omitempty" msgpack:"tool,omitempty"`
}

// perkRankDef is one rank entry of a perk.
type perkRankDef struct {
	Rank        uint8  `json:"rank" msgpack:"rank"`
	Cost        uint16 `json:"cost" msgpack:"cost"`
	Threshold   uint16 `json:"threshold" msgpack:"threshold"`
	AncientOnly bool   `json:"ancient_only" msgpack:"ancient_only"`
}

// perkDef is one perk's full rank table.
type perkDef struct {
	Name       string        `json:"name" msgpack:"name"`
	Doubleslot bool          `json:"doubleslot" msgpack:"doubleslot"`
	Ranks      []perkRankDef `json:"ranks" msgpack:"ranks"`
}

// definitions is the on-disk/embedded shape of the whole table.
type definitions struct {
	Materials []materialDef `json:"materials" msgpack:"materials"`
	Perks     []perkDef     `json:"perks" msgpack:"perks"`
}

func (d definitions) toData() (*perk.Data, error) {
	out := &perk.Data{}

	for _, md := range d.Materials {
		name, err := perk.ParseMaterial(md.Name)
		if err != nil {
			return nil, fmt.Errorf("data: material %q: %w", md.Name, err)
		}
		conv := func(cs []componentDef) ([]perk.ComponentValues, error) {
			if len(cs) == 0 {
				return nil, nil
			}
			out := make([]perk.ComponentValues, len(cs))
			for i, c := range cs {
				p, err := perk.ParseName(c.Perk)
				if err != nil {
					return nil, fmt.Errorf("component perk %q: %w", c.Perk, err)
				}
				out[i] = perk.ComponentValues{Perk: p, Base: c.Base, Roll: c.Roll}
			}
			return out, nil
		}

		weapon, err := conv(md.Weapon)
		if err != nil {
			return nil, err
		}
		armour, err := conv(md.Armour)
		if err != nil {
			return nil, err
		}
		tool, err := conv(md.Tool)
		if err != nil {
			return nil, err
		}

		out.Materials[name] = perk.MaterialData{
			AncientOnly: md.AncientOnly,
			Weapon:      weapon,
			Armour:      armour,
			Tool:        tool,
		}
	}

	for _, pd := range d.Perks {
		name, err := perk.ParseName(pd.Name)
		if err != nil {
			return nil, fmt.Errorf("data: perk %q: %w", pd.Name, err)
		}

		ranks := make([]perk.PerkRank, len(pd.Ranks))
		for i, r := range pd.Ranks {
			ranks[i] = perk.PerkRank{
				Perk:        name,
				Rank:        perk.Rank(r.Rank),
				Cost:        r.Cost,
				Threshold:   r.Threshold,
				AncientOnly: r.AncientOnly,
				Doubleslot:  pd.Doubleslot,
			}
		}

		out.Perks[name] = perk.PerkRanksData{
			Doubleslot: pd.Doubleslot,
			Ranks:      ranks,
		}
	}

	return out, nil
}
