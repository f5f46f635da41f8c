// Package config parses and validates the CLI arguments for the two
// subcommands (gizmo search and material-combination inspection), grounded
// on original_source/src/prelude/args.rs's Cli/Args split: a raw flag
// struct (Cli) and a validated, domain-typed Args built from it.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"perksolver/internal/perk"
)

// InventionLevel is either a single level or an inclusive [Low, High] range.
type InventionLevel struct {
	Low, High int
}

// Single reports whether this is a single-level (not range) selection.
func (l InventionLevel) Single() bool {
	return l.Low == l.High
}

// GizmoArgs is the validated configuration for the "gizmo" subcommand:
// search for the optimal material combination producing a wanted perk pair.
type GizmoArgs struct {
	GizmoType      perk.GizmoType
	InventionLevel InventionLevel
	Ancient        bool
	Wanted         [2]perk.Perk
	Fuzzy          bool
	Exclude        []string
	SortType       perk.SortType
	OutFile        string // empty disables CSV output
	PriceFile      string // empty disables the flat-file price fallback
	AltCount       int
	LimitCPU       bool
}

// MaterialArgs is the validated configuration for the "materials"
// subcommand: report the probabilities a fixed material list produces.
type MaterialArgs struct {
	GizmoType      perk.GizmoType
	InventionLevel InventionLevel
	Ancient        bool
	Materials      []perk.MaterialName
}

const usage = `usage: perksolver <command> -type <weapon|armour|tool> -level <level[,level]> [-ancient] [args]

commands:
  gizmo <perk> [rank] [perk_two] [rank_two]   find the optimal material combination for a wanted gizmo
  materials <mat1,mat2,...>                   report probabilities for a fixed material combination
`

// ParseGizmoArgs parses and validates the "gizmo" subcommand's flags out of
// argv (normally os.Args[2:], the arguments after the subcommand name).
func ParseGizmoArgs(argv []string) (*GizmoArgs, error) {
	fs := flag.NewFlagSet("gizmo", flag.ContinueOnError)
	var (
		gizmoType = fs.String("type", "weapon", "gizmo shell type: weapon(w)/armour(a)/tool(t)")
		level     = fs.String("level", "", "invention level, or low,high for a range")
		ancient   = fs.Bool("ancient", false, "search for an ancient gizmo")
		fuzzy     = fs.Bool("fuzzy", false, "ignore the second perk slot entirely")
		exclude   = fs.String("exclude", "", "comma-separated material substrings to exclude")
		sortType  = fs.String("sort-type", "price", "sort on gizmo/attempt/price")
		outFile   = fs.String("out-file", "out.csv", "CSV output path; \"false\" disables")
		priceFile = fs.String("price-file", "prices.txt", "flat-file price fallback path; \"false\" disables")
		altCount  = fs.Int("alt-count", 0, "number of alternative combinations to also report (0-254)")
		limitCPU  = fs.Bool("limit-cpu", true, "use 80% of logical cores instead of all of them")
	)
	if err := fs.Parse(argv); err != nil {
		return nil, err
	}

	gt, err := perk.ParseGizmoType(*gizmoType)
	if err != nil {
		return nil, err
	}
	st, err := perk.ParseSortType(*sortType)
	if err != nil {
		return nil, err
	}
	lvl, err := parseLevel(*level)
	if err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return nil, fmt.Errorf("gizmo: missing perk name")
	}
	wanted, isFuzzy, err := parseWantedPerks(rest)
	if err != nil {
		return nil, err
	}

	args := &GizmoArgs{
		GizmoType:      gt,
		InventionLevel: lvl,
		Ancient:        *ancient,
		Wanted:         wanted,
		Fuzzy:          *fuzzy || isFuzzy,
		Exclude:        splitCSV(*exclude),
		SortType:       st,
		OutFile:        fileOrDisabled(*outFile),
		PriceFile:      fileOrDisabled(*priceFile),
		AltCount:       *altCount,
		LimitCPU:       *limitCPU,
	}
	return args, args.Validate()
}

// ParseMaterialArgs parses and validates the "materials" subcommand.
func ParseMaterialArgs(argv []string) (*MaterialArgs, error) {
	fs := flag.NewFlagSet("materials", flag.ContinueOnError)
	var (
		gizmoType = fs.String("type", "weapon", "gizmo shell type: weapon(w)/armour(a)/tool(t)")
		level     = fs.String("level", "", "invention level, or low,high for a range")
		ancient   = fs.Bool("ancient", false, "treat as an ancient gizmo")
	)
	if err := fs.Parse(argv); err != nil {
		return nil, err
	}

	gt, err := perk.ParseGizmoType(*gizmoType)
	if err != nil {
		return nil, err
	}
	lvl, err := parseLevel(*level)
	if err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return nil, fmt.Errorf("materials: missing material list")
	}
	names := splitCSV(rest[0])
	if len(names) == 0 {
		return nil, fmt.Errorf("materials: empty material list")
	}

	mats := make([]perk.MaterialName, 0, len(names))
	for _, n := range names {
		m, err := perk.ParseMaterial(n)
		if err != nil {
			matches := perk.MatchMaterials(n)
			if len(matches) != 1 {
				return nil, fmt.Errorf("material %q does not exist", n)
			}
			m = matches[0]
		}
		mats = append(mats, m)
	}

	return &MaterialArgs{GizmoType: gt, InventionLevel: lvl, Ancient: *ancient, Materials: mats}, nil
}

// Validate checks the invariants validate_input enforces in main.rs that
// need no *perk.Data: the invention level range, alt_count in u8 range, and
// a non-empty first wanted perk. Rank ceilings and doubleslot exclusivity
// need the definition table and are checked by ValidateAgainstData.
func (a *GizmoArgs) Validate() error {
	if a.InventionLevel.Low < 1 || a.InventionLevel.Low > 137 || a.InventionLevel.High < 1 || a.InventionLevel.High > 137 {
		return fmt.Errorf("invention level must be between 1 and 137")
	}
	if a.InventionLevel.Low > a.InventionLevel.High {
		return fmt.Errorf("first value of the invention level range must be lower or equal to the second value")
	}
	if a.AltCount < 0 || a.AltCount > 254 {
		return fmt.Errorf("alt-count must be in [0,254]")
	}
	if a.Wanted[0].Perk == perk.Empty {
		return fmt.Errorf("a wanted perk must be given")
	}
	return nil
}

// ValidateAgainstData checks the parts of validate_input that need the
// loaded definition table: rank ceilings and doubleslot exclusivity.
func (a *GizmoArgs) ValidateAgainstData(data *perk.Data) error {
	first := data.Perks[a.Wanted[0].Perk]
	if int(a.Wanted[0].Rank) >= len(first.Ranks) {
		return fmt.Errorf("perk %s only goes up to rank %d", a.Wanted[0].Perk, len(first.Ranks)-1)
	}
	if first.Doubleslot && a.Wanted[1].Perk != perk.Empty {
		return fmt.Errorf("perk %s can't be combined with another perk as it uses both slots", a.Wanted[0].Perk)
	}
	if a.Wanted[1].Perk != perk.Empty {
		second := data.Perks[a.Wanted[1].Perk]
		if second.Doubleslot {
			return fmt.Errorf("perk %s can't be combined with another perk as it uses both slots", a.Wanted[1].Perk)
		}
		if int(a.Wanted[1].Rank) >= len(second.Ranks) {
			return fmt.Errorf("perk %s only goes up to rank %d", a.Wanted[1].Perk, len(second.Ranks)-1)
		}
	}
	return nil
}

func parseLevel(s string) (InventionLevel, error) {
	if s == "" {
		return InventionLevel{}, fmt.Errorf("missing invention level")
	}
	parts := strings.Split(s, ",")
	low, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return InventionLevel{}, fmt.Errorf("invalid invention level %q", s)
	}
	if len(parts) == 1 {
		return InventionLevel{Low: low, High: low}, nil
	}
	high, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return InventionLevel{}, fmt.Errorf("invalid invention level %q", s)
	}
	return InventionLevel{Low: low, High: high}, nil
}

// parseWantedPerks mirrors process_wanted_gizmo: positional args are
// perk, [rank], [perk_two], [rank_two]; "any"/"empty" for perk_two select
// fuzzy/no-second-perk.
func parseWantedPerks(rest []string) (wanted [2]perk.Perk, fuzzy bool, err error) {
	p1, err := perk.ParseName(rest[0])
	if err != nil {
		return wanted, false, err
	}
	rank1 := 1
	rest = rest[1:]

	if len(rest) > 0 {
		if r, err2 := strconv.Atoi(rest[0]); err2 == nil {
			rank1 = r
			rest = rest[1:]
		}
	}
	wanted[0] = perk.Perk{Perk: p1, Rank: perk.Rank(rank1)}

	if len(rest) == 0 {
		return wanted, false, nil
	}

	second := strings.ToLower(rest[0])
	if second == "any" {
		return wanted, true, nil
	}
	if second == "empty" || second == "" {
		return wanted, false, nil
	}

	p2, err := perk.ParseName(rest[0])
	if err != nil {
		return wanted, false, err
	}
	rank2 := 1
	rest = rest[1:]
	if len(rest) > 0 {
		if r, err2 := strconv.Atoi(rest[0]); err2 == nil {
			rank2 = r
		}
	}
	wanted[1] = perk.Perk{Perk: p2, Rank: perk.Rank(rank2)}
	return wanted, false, nil
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fileOrDisabled(s string) string {
	if strings.EqualFold(s, "false") {
		return ""
	}
	return s
}

// PrintUsage writes the top-level usage text to stderr.
func PrintUsage() {
	fmt.Fprint(os.Stderr, usage)
}
