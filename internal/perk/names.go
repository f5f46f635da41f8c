package perk

import "fmt"

// Name identifies a perk. It is a dense, zero-based index so the hot path
// can use plain arrays instead of maps (SPEC_FULL.md §9 "dynamic-dispatch
// avoidance").
type Name int

const (
	Empty Name = iota
	Absorbative
	Aftershock
	Antitheism
	Biting
	Blunted
	Brassican
	Breakdown
	BriefRespite
	Bulwark
	Butterfingers
	Caroming
	Cautious
	Charitable
	Cheapskate
	ClearHeaded
	Committed
	Confused
	Crackling
	CrystalShield
	DemonBait
	DemonSlayer
	Devoted
	DragonBait
	DragonSlayer
	Efficient
	Energising
	EnhancedDevoted
	EnhancedEfficient
	Enlightened
	Equilibrium
	Fatiguing
	Flanking
	Fortune
	Furnace
	Genocidal
	GlowWorm
	Hallucinogenic
	Hoarding
	Honed
	Impatient
	ImpSouled
	Inaccurate
	Invigorating
	JunkFood
	Looting
	Lucky
	Lunging
	Mediocrity
	Mobile
	Mysterious
	NoEffect
	PlantedFeet
	Polishing
	Precise
	Preparation
	Profane
	Prosper
	Pyromaniac
	Rapid
	Refined
	Reflexes
	Relentless
	Ruthless
	Scavenging
	ShieldBashing
	Spendthrift
	Talking
	Taunting
	Tinker
	TrophyTaker
	Turtling
	Ultimatums
	UndeadBait
	UndeadSlayer
	Venomblood
	Wise

	nameCount
)

// NameCount is the number of distinct PerkName values, including Empty.
const NameCount = int(nameCount)

var nameDisplay = [nameCount]string{
	Empty:              "Empty",
	Absorbative:        "Absorbative",
	Aftershock:         "Aftershock",
	Antitheism:         "Antitheism",
	Biting:             "Biting",
	Blunted:            "Blunted",
	Brassican:          "Brassican",
	Breakdown:          "Breakdown",
	BriefRespite:       "Brief Respite",
	Bulwark:            "Bulwark",
	Butterfingers:      "Butterfingers",
	Caroming:           "Caroming",
	Cautious:           "Cautious",
	Charitable:         "Charitable",
	Cheapskate:         "Cheapskate",
	ClearHeaded:        "Clear Headed",
	Committed:          "Committed",
	Confused:           "Confused",
	Crackling:          "Crackling",
	CrystalShield:      "Crystal Shield",
	DemonBait:          "Demon Bait",
	DemonSlayer:        "Demon Slayer",
	Devoted:            "Devoted",
	DragonBait:         "Dragon Bait",
	DragonSlayer:       "Dragon Slayer",
	Efficient:          "Efficient",
	Energising:         "Energising",
	EnhancedDevoted:    "Enhanced Devoted",
	EnhancedEfficient:  "Enhanced Efficient",
	Enlightened:        "Enlightened",
	Equilibrium:        "Equilibrium",
	Fatiguing:          "Fatiguing",
	Flanking:           "Flanking",
	Fortune:            "Fortune",
	Furnace:            "Furnace",
	Genocidal:          "Genocidal",
	GlowWorm:           "Glow Worm",
	Hallucinogenic:     "Hallucinogenic",
	Hoarding:           "Hoarding",
	Honed:              "Honed",
	Impatient:          "Impatient",
	ImpSouled:          "Imp Souled",
	Inaccurate:         "Inaccurate",
	Invigorating:       "Invigorating",
	JunkFood:           "Junk Food",
	Looting:            "Looting",
	Lucky:              "Lucky",
	Lunging:            "Lunging",
	Mediocrity:         "Mediocrity",
	Mobile:             "Mobile",
	Mysterious:         "Mysterious",
	NoEffect:           "No effect",
	PlantedFeet:        "Planted Feet",
	Polishing:          "Polishing",
	Precise:            "Precise",
	Preparation:        "Preparation",
	Profane:            "Profane",
	Prosper:            "Prosper",
	Pyromaniac:         "Pyromaniac",
	Rapid:              "Rapid",
	Refined:            "Refined",
	Reflexes:           "Reflexes",
	Relentless:         "Relentless",
	Ruthless:           "Ruthless",
	Scavenging:         "Scavenging",
	ShieldBashing:      "Shield Bashing",
	Spendthrift:        "Spendthrift",
	Talking:            "Talking",
	Taunting:           "Taunting",
	Tinker:             "Tinker",
	TrophyTaker:        "Trophy-taker's",
	Turtling:           "Turtling",
	Ultimatums:         "Ultimatums",
	UndeadBait:         "Undead Bait",
	UndeadSlayer:       "Undead Slayer",
	Venomblood:         "Venomblood",
	Wise:               "Wise",
}

// lowercase lookup name -> Name, built once from nameDisplay plus the
// irregular aliases the original parser accepts.
var nameByLower map[string]Name

func init() {
	nameByLower = make(map[string]Name, nameCount+4)
	for i, s := range nameDisplay {
		nameByLower[lower(s)] = Name(i)
	}
	nameByLower["trophy taker"] = TrophyTaker
	nameByLower["trophy-taker's"] = TrophyTaker
	nameByLower["trophy-taker"] = TrophyTaker
	nameByLower["no effect"] = NoEffect
}

func (n Name) String() string {
	if n < 0 || int(n) >= NameCount {
		return fmt.Sprintf("PerkName(%d)", int(n))
	}
	return nameDisplay[n]
}

// ParseName parses a perk name case-insensitively, accepting the display
// form ("Brief Respite") as well as the original tool's lowercase/hyphen
// aliases for Trophy-taker's.
func ParseName(s string) (Name, error) {
	if n, ok := nameByLower[lower(s)]; ok {
		return n, nil
	}
	return Empty, fmt.Errorf("perk %q does not exist", s)
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
