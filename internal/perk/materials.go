package perk

import "fmt"

// MaterialName identifies a crafting material. Dense, zero-based index, same
// rationale as Name.
type MaterialName int

const (
	ArmadylComponents MaterialName = iota
	AscendedComponents
	AvernicComponents
	BandosComponents
	BaseParts
	BladeParts
	BrassicanComponents
	ClassicComponents
	ClearParts
	ClockworkComponents
	ConnectorParts
	CorporealComponents
	CoverParts
	CraftedParts
	CrystalParts
	CulinaryComponents
	CywirComponents
	DeflectingParts
	DelicateParts
	DextrousComponents
	DirectComponents
	DragonfireComponents
	EnhancingComponents
	EtherealComponents
	EvasiveComponents
	ExplosiveComponents
	FacetedComponents
	FlexibleParts
	FortunateComponents
	FungalComponents
	HarnessedComponents
	HeadParts
	HealthyComponents
	HeavyComponents
	HistoricComponents
	IlujankanComponents
	ImbuedComponents
	Junk
	KnightlyComponents
	LightComponents
	LivingComponents
	MagicParts
	MetallicParts
	NoxiousComponents
	OceanicComponents
	OrganicParts
	PaddedParts
	PestiferousComponents
	PiousComponents
	PlatedParts
	PowerfulComponents
	PreciousComponents
	PreciseComponents
	ProtectiveComponents
	RefinedComponents
	ResilientComponents
	RumblingComponents
	SaradominComponents
	SerenComponents
	ShadowComponents
	SharpComponents
	ShiftingComponents
	SilentComponents
	SimpleParts
	SmoothParts
	SpikedParts
	SpiritualParts
	StaveParts
	StrongComponents
	StunningComponents
	SubtleComponents
	SwiftComponents
	TensileParts
	ThirdAgeComponents
	TimewornComponents
	UndeadComponents
	VariableComponents
	VintageComponents
	ZamorakComponents
	ZarosComponents

	materialCount
)

// MaterialCount is the number of distinct MaterialName values.
const MaterialCount = int(materialCount)

var materialDisplay = [materialCount]string{
	ArmadylComponents:     "Armadyl components",
	AscendedComponents:    "Ascended components",
	AvernicComponents:     "Avernic components",
	BandosComponents:      "Bandos components",
	BaseParts:             "Base parts",
	BladeParts:            "Blade parts",
	BrassicanComponents:   "Brassican components",
	ClassicComponents:     "Classic components",
	ClearParts:            "Clear parts",
	ClockworkComponents:   "Clockwork components",
	ConnectorParts:        "Connector parts",
	CorporealComponents:   "Corporeal components",
	CoverParts:            "Cover parts",
	CraftedParts:          "Crafted parts",
	CrystalParts:          "Crystal parts",
	CulinaryComponents:    "Culinary components",
	CywirComponents:       "Cywir components",
	DeflectingParts:       "Deflecting parts",
	DelicateParts:         "Delicate parts",
	DextrousComponents:    "Dextrous components",
	DirectComponents:      "Direct components",
	DragonfireComponents:  "Dragonfire components",
	EnhancingComponents:   "Enhancing components",
	EtherealComponents:    "Ethereal components",
	EvasiveComponents:     "Evasive components",
	ExplosiveComponents:   "Explosive components",
	FacetedComponents:     "Faceted components",
	FlexibleParts:         "Flexible parts",
	FortunateComponents:   "Fortunate components",
	FungalComponents:      "Fungal components",
	HarnessedComponents:   "Harnessed components",
	HeadParts:             "Head parts",
	HealthyComponents:     "Healthy components",
	HeavyComponents:       "Heavy components",
	HistoricComponents:    "Historic components",
	IlujankanComponents:   "Ilujankan components",
	ImbuedComponents:      "Imbued components",
	Junk:                  "Junk",
	KnightlyComponents:    "Knightly components",
	LightComponents:       "Light components",
	LivingComponents:      "Living components",
	MagicParts:            "Magic parts",
	MetallicParts:         "Metallic parts",
	NoxiousComponents:     "Noxious components",
	OceanicComponents:     "Oceanic components",
	OrganicParts:          "Organic parts",
	PaddedParts:           "Padded parts",
	PestiferousComponents: "Pestiferous components",
	PiousComponents:       "Pious components",
	PlatedParts:           "Plated parts",
	PowerfulComponents:    "Powerful components",
	PreciousComponents:    "Precious components",
	PreciseComponents:     "Precise components",
	ProtectiveComponents:  "Protective components",
	RefinedComponents:     "Refined components",
	ResilientComponents:   "Resilient components",
	RumblingComponents:    "Rumbling components",
	SaradominComponents:   "Saradomin components",
	SerenComponents:       "Seren components",
	ShadowComponents:      "Shadow components",
	SharpComponents:       "Sharp components",
	ShiftingComponents:    "Shifting components",
	SilentComponents:      "Silent components",
	SimpleParts:           "Simple parts",
	SmoothParts:           "Smooth parts",
	SpikedParts:           "Spiked parts",
	SpiritualParts:        "Spiritual parts",
	StaveParts:            "Stave parts",
	StrongComponents:      "Strong components",
	StunningComponents:    "Stunning components",
	SubtleComponents:      "Subtle components",
	SwiftComponents:       "Swift components",
	TensileParts:          "Tensile parts",
	ThirdAgeComponents:    "Third-age components",
	TimewornComponents:    "Timeworn components",
	UndeadComponents:      "Undead components",
	VariableComponents:    "Variable components",
	VintageComponents:     "Vintage components",
	ZamorakComponents:     "Zamorak components",
	ZarosComponents:       "Zaros components",
}

var materialByLower map[string]MaterialName

func init() {
	materialByLower = make(map[string]MaterialName, materialCount)
	for i, s := range materialDisplay {
		materialByLower[lower(s)] = MaterialName(i)
	}
}

func (m MaterialName) String() string {
	if m < 0 || int(m) >= MaterialCount {
		return fmt.Sprintf("MaterialName(%d)", int(m))
	}
	return materialDisplay[m]
}

// ParseMaterial parses an exact (case-insensitive) material name.
func ParseMaterial(s string) (MaterialName, error) {
	if m, ok := materialByLower[lower(s)]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("material %q does not exist", s)
}

// MatchMaterials returns every material whose display name contains the
// given substring, case-insensitively (used for --exclude and short-form
// CLI material lookups, e.g. "precise" -> "Precise components").
func MatchMaterials(substr string) []MaterialName {
	substr = lower(substr)
	var out []MaterialName
	for i, s := range materialDisplay {
		if contains(lower(s), substr) {
			out = append(out, MaterialName(i))
		}
	}
	return out
}

func contains(haystack, needle string) bool {
	if len(needle) == 0 {
		return true
	}
	if len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}

// VecToString canonicalises a material slice as runs of equal material
// grouped together in first-occurrence order, joined with ", ".
func VecToString(mats []MaterialName) string {
	seen := make(map[MaterialName]int, len(mats))
	order := make([]MaterialName, 0, len(mats))
	for _, m := range mats {
		if _, ok := seen[m]; !ok {
			order = append(order, m)
		}
		seen[m]++
	}

	out := ""
	for i, m := range order {
		if i > 0 {
			out += ", "
		}
		if seen[m] > 1 {
			out += fmt.Sprintf("%dx %s", seen[m], m)
		} else {
			out += m.String()
		}
	}
	return out
}
