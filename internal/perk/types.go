package perk

// GizmoType is the shell a gizmo is manufactured from.
type GizmoType int

const (
	Weapon GizmoType = iota
	Armour
	Tool
)

func (g GizmoType) String() string {
	switch g {
	case Weapon:
		return "Weapon"
	case Armour:
		return "Armour"
	case Tool:
		return "Tool"
	default:
		return "Weapon"
	}
}

// ParseGizmoType accepts the full name or its single-letter alias (w/a/t).
func ParseGizmoType(s string) (GizmoType, error) {
	switch lower(s) {
	case "weapon", "w":
		return Weapon, nil
	case "armour", "armor", "a":
		return Armour, nil
	case "tool", "t":
		return Tool, nil
	default:
		return Weapon, errUnknownGizmoType(s)
	}
}

type errUnknownGizmoType string

func (e errUnknownGizmoType) Error() string {
	return "unknown gizmo type " + string(e)
}

// SortType selects the ordering key for the top-K sink and the value the
// result table reports per combination.
type SortType int

const (
	SortPrice SortType = iota
	SortGizmo
	SortAttempt
)

func (s SortType) String() string {
	switch s {
	case SortPrice:
		return "Price"
	case SortGizmo:
		return "Gizmo"
	case SortAttempt:
		return "Attempt"
	default:
		return "Price"
	}
}

// ParseSortType accepts the full name case-insensitively.
func ParseSortType(s string) (SortType, error) {
	switch lower(s) {
	case "price":
		return SortPrice, nil
	case "gizmo":
		return SortGizmo, nil
	case "attempt":
		return SortAttempt, nil
	default:
		return SortPrice, errUnknownSortType(s)
	}
}

type errUnknownSortType string

func (e errUnknownSortType) Error() string {
	return "unknown sort type " + string(e)
}

// Better reports whether key a should be preferred over key b under this
// SortType: smaller is better for Price, larger is better for Gizmo/Attempt.
func (s SortType) Better(a, b float64) bool {
	if s == SortPrice {
		return a < b
	}
	return a > b
}

// Rank is a PerkRank's rank number, 0..=6. Rank 0 is the always-attainable
// no-op fallback.
type Rank uint8

// PerkRank is one rank entry of a perk: its cost and threshold in the
// invention budget walk, and whether it is ancient-only or a doubleslot
// perk. Ported from original_source/src/definitions.rs's PerkRankValues.
type PerkRank struct {
	Perk        Name
	Rank        Rank
	Cost        uint16
	Threshold   uint16
	AncientOnly bool
	Doubleslot  bool
}

// IsEmpty reports whether this is the zero-value PerkRank (Perk == Empty).
func (p PerkRank) IsEmpty() bool {
	return p.Perk == Empty
}

// Perk is a bare (name, rank) pair, as used to describe a wanted or
// produced slot in a Gizmo.
type Perk struct {
	Perk Name
	Rank Rank
}

// IsEmpty reports whether this slot is unoccupied.
func (p Perk) IsEmpty() bool {
	return p.Perk == Empty
}

// SameRank reports whether p refers to the same (perk, rank) as a concrete
// PerkRank entry.
func (p Perk) SameRank(other PerkRank) bool {
	return p.Perk == other.Perk && p.Rank == other.Rank
}

// RankProbability couples a concrete PerkRank with the probability the
// rank-probability solver (component D) assigned it. Ported from
// original_source/src/definitions.rs's PerkRankValuesProbabilityContainer;
// dropped from the distilled spec.md's prose but load-bearing for the
// aggregator/enumerator pair (see SPEC_FULL.md "Supplemented").
type RankProbability struct {
	Rank        PerkRank
	Probability float64
}

// PerkValues is the per-perk aggregation produced by component C and
// refined in-place by component D: accumulated base roll value, the list
// of individual roll ranges contributed by each material, and (once D has
// run) the per-rank probability window.
type PerkValues struct {
	Perk       Name
	Base       uint16
	Rolls      []uint8
	Doubleslot bool
	Ranks      []RankProbability
	IFirst     int
	ILast      int
}

// IterRanks returns the [IFirst, ILast] window of ranks with nonzero
// probability (inclusive).
func (pv *PerkValues) IterRanks() []RankProbability {
	if len(pv.Ranks) == 0 {
		return nil
	}
	return pv.Ranks[pv.IFirst : pv.ILast+1]
}

// IterRanksNoZero is IterRanks with rank 0 always left out (rank 0 is
// always reachable and usually uninteresting to report).
func (pv *PerkValues) IterRanksNoZero() []RankProbability {
	if len(pv.Ranks) == 0 {
		return nil
	}
	first := pv.IFirst
	if first < 1 {
		first = 1
	}
	if first > pv.ILast {
		return nil
	}
	return pv.Ranks[first : pv.ILast+1]
}

// RankCombination is an ordered tuple of concrete PerkRank entries (one per
// perk reachable from a material set), tagged with the probability this
// exact tuple is realised. Component E produces these; component F sorts
// them in place.
type RankCombination struct {
	Ranks       []PerkRank
	Probability float64
}

// ComponentValues is one (perk, base, roll) contribution a material makes
// to a given GizmoType.
type ComponentValues struct {
	Perk Name
	Base uint16
	Roll uint16
}

// MaterialData is the static per-material table: its ComponentValues per
// GizmoType, and whether it is ancient-only.
type MaterialData struct {
	AncientOnly bool
	Weapon      []ComponentValues
	Armour      []ComponentValues
	Tool        []ComponentValues
}

// For returns the ComponentValues for the given GizmoType.
func (m MaterialData) For(t GizmoType) []ComponentValues {
	switch t {
	case Armour:
		return m.Armour
	case Tool:
		return m.Tool
	default:
		return m.Weapon
	}
}

// PerkRanksData is the static per-perk table: whether the perk is
// doubleslot, and its ordered PerkRank entries (rank 0 first).
type PerkRanksData struct {
	Doubleslot bool
	Ranks      []PerkRank
}

// Data is the whole loaded definition table: component values per material,
// rank tables per perk. Loaded once at startup (internal/data), shared
// read-only thereafter (SPEC_FULL.md §9 "global state").
type Data struct {
	Materials [MaterialCount]MaterialData
	Perks     [NameCount]PerkRanksData
}

// ResultLine is one candidate the search driver reports to the top-K sink:
// an invention level, its prob_gizmo/prob_attempt/price, and the material
// combination that produced it. Materials is the driver's combination slice
// itself; it is not copied, here or on entering the top-K set.
type ResultLine struct {
	Level           uint8
	ProbGizmo       float64
	ProbAttempt     float64
	Price           float64
	PricePerSuccess float64
	Materials       []MaterialName
}

// SameMaterials reports whether r and other were built from the same
// multiset of materials, ignoring order — used by the top-K sink to avoid
// keeping two entries for materials that differ only by arrangement.
func (r ResultLine) SameMaterials(other ResultLine) bool {
	if len(r.Materials) != len(other.Materials) {
		return false
	}
	counts := make(map[MaterialName]int, len(r.Materials))
	for _, m := range r.Materials {
		counts[m]++
	}
	for _, m := range other.Materials {
		counts[m]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
