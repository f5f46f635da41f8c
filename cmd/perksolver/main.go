// Command perksolver finds the material combination that maximises the
// probability (or minimises the price) of producing a wanted perk gizmo,
// or reports the rank-probability breakdown for a fixed material list.
// Grounded on original_source/src/main.rs's top-level flow and
// flowShop/cmd/bench/main.go's flag-parse -> validate -> run shape. Usage and
// command errors are logged to stderr and exit 0; only a failure to load the
// built-in definitions exits 2.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"perksolver/internal/aggregate"
	"perksolver/internal/combinator"
	"perksolver/internal/config"
	"perksolver/internal/data"
	"perksolver/internal/logging"
	"perksolver/internal/perk"
	"perksolver/internal/price"
	"perksolver/internal/rankcombo"
	"perksolver/internal/report"
	"perksolver/internal/search"
)

func main() {
	_ = godotenv.Load()
	logging.Init()

	runID := uuid.NewString()
	logger := log.With().Str("run_id", runID).Logger()

	if len(os.Args) < 2 {
		config.PrintUsage()
		return
	}

	def, err := data.Load()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load perk/material definitions")
		os.Exit(2)
	}

	var runErr error
	switch os.Args[1] {
	case "gizmo":
		runErr = runGizmo(&logger, def, os.Args[2:], runID)
	case "materials":
		runErr = runMaterials(&logger, def, os.Args[2:])
	default:
		config.PrintUsage()
		return
	}

	if runErr != nil {
		logger.Error().Err(runErr).Msg("command failed")
	}
}

func runGizmo(logger *zerolog.Logger, def *perk.Data, argv []string, runID string) error {
	args, err := config.ParseGizmoArgs(argv)
	if err != nil {
		return err
	}
	if err := args.ValidateAgainstData(def); err != nil {
		return err
	}

	for _, x := range args.Exclude {
		if len(perk.MatchMaterials(x)) == 0 {
			logger.Warn().Str("exclude", x).Msg("exclude substring matches no material")
		}
	}

	prices, err := loadPrices(logger, args.PriceFile)
	if err != nil {
		if args.SortType == perk.SortPrice {
			return err
		}
		logger.Warn().Err(err).Msg("prices unavailable; continuing with zero prices")
		prices = &price.Map{}
	}

	budgets := combinator.GenerateBudgets(args.InventionLevel.Low, args.InventionLevel.High, args.Ancient)

	materials := combinator.GetMaterials(def, args.GizmoType, args.Wanted, args.Ancient, args.Exclude)
	split := combinator.SplitMaterials(def, args.GizmoType, args.Wanted, materials)
	slotMax := combinator.MaxSlots(args.Ancient)
	estimated := combinator.CalcCombinationCount(len(split.Conflict), len(split.NoConflict), args.Ancient)
	combos := combinator.EnumerateCombinations(split.Conflict, split.NoConflict, slotMax)

	logger.Info().
		Int("materials", len(materials)).
		Int("estimated_combinations", estimated).
		Int("combinations", len(combos)).
		Int("levels", len(budgets)).
		Msg("starting search")

	shellPrice := price.CalcShellPrice(args.GizmoType, args.Ancient, prices)
	priceFn := func(mats []perk.MaterialName, probGizmo float64) (float64, float64) {
		return price.CalcGizmoPrice(mats, shellPrice, prices, probGizmo)
	}

	wanted := args.Wanted
	if args.Fuzzy {
		wanted[1] = perk.Perk{}
	}

	driver := &search.Driver{
		Data:         def,
		GizmoType:    args.GizmoType,
		Wanted:       wanted,
		AncientGizmo: args.Ancient,
		Budgets:      budgets,
		PriceFn:      priceFn,
		Cfg:          search.Config{AltCount: args.AltCount, LimitCPU: args.LimitCPU},
		SortType:     args.SortType,
	}

	results, err := driver.Run(context.Background(), combos)
	if err != nil {
		return err
	}

	levels := report.SortedLevels(results)
	report.PrintTable(os.Stdout, results, levels, args.SortType)

	if args.OutFile != "" {
		if err := report.WriteCSV(args.OutFile, results, levels); err != nil {
			logger.Warn().Err(err).Str("path", args.OutFile).Msg("write csv failed")
		} else {
			logger.Info().Str("path", args.OutFile).Str("run_id", runID).Msg("wrote csv output")
		}
	}

	return nil
}

func runMaterials(logger *zerolog.Logger, def *perk.Data, argv []string) error {
	args, err := config.ParseMaterialArgs(argv)
	if err != nil {
		return err
	}

	perkValues := aggregate.GetPerkValues(def, args.Materials, args.GizmoType, args.Ancient)
	aggregate.CalcPerkRankProbabilities(def, perkValues, args.Ancient)
	combos := rankcombo.Enumerate(perkValues)
	for i := range combos {
		rankcombo.Sort(&combos[i])
	}

	fmt.Printf("Materials: %s\n\n", perk.VecToString(args.Materials))
	for _, pv := range perkValues {
		fmt.Printf("%s (base=%d, rolls=%v):\n", pv.Perk, pv.Base, pv.Rolls)
		for _, rp := range pv.IterRanksNoZero() {
			fmt.Printf("  rank %d: %s%%\n", rp.Rank.Rank, report.FormatFloat(rp.Probability))
		}
	}

	logger.Info().Int("rank_combinations", len(combos)).Msg("enumerated rank combinations")
	return nil
}

func loadPrices(logger *zerolog.Logger, priceFile string) (*price.Map, error) {
	if priceFile == "" {
		return &price.Map{}, nil
	}

	cachePath := strings.TrimSuffix(priceFile, filepath.Ext(priceFile)) + ".db"
	if cache, err := price.OpenCache(cachePath); err == nil {
		defer cache.Close()
		if m, err := cache.Load(); err == nil && *m != (price.Map{}) {
			return m, nil
		}
	}

	m, missing, err := price.LoadFlatFile(priceFile)
	if err != nil {
		return nil, fmt.Errorf("load price file %s: %w", priceFile, err)
	}
	if len(missing) > 0 {
		logger.Warn().Int("count", len(missing)).Msg("some materials have no known price")
	}
	return m, nil
}
