package search

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"perksolver/internal/aggregate"
	"perksolver/internal/budget"
	"perksolver/internal/perk"
	"perksolver/internal/rankcombo"
	"perksolver/internal/threshold"
)

// PriceFunc computes (price, pricePerSuccess) for a material combination
// given its exact-match probability. Injected so this package doesn't need
// to depend on how prices were sourced (sqlite cache vs flat file).
type PriceFunc func(materials []perk.MaterialName, probGizmo float64) (float64, float64)

// Driver is the parallel combinator→probability→sink pipeline (component
// J). Its Config/Validate/Run shape follows the teacher's
// Config/New(cfg,...)/Solve(ctx,...) idiom (internal/{aco,sa,pso,ts,ga}),
// generalised here to goroutine-per-worker over a shared combination
// channel per the channel fan-out idiom in
// PrograCyD-PC3/cmd/concurrent/cosine_concurrent.go.
type Driver struct {
	Data         *perk.Data
	GizmoType    perk.GizmoType
	Wanted       [2]perk.Perk
	AncientGizmo bool
	Budgets      []budget.Budget
	PriceFn      PriceFunc
	Cfg          Config
	SortType     perk.SortType
}

// Run fans combinations out to Cfg.Workers (or autodetected) goroutines,
// each producing one ResultLine per budget level per combination, and
// returns the top-K ResultLines per level. Cancellation is cooperative:
// workers check the context and an internal atomic.Bool between
// combinations (SPEC_FULL.md §4.J). A worker panic is recovered: it sets
// that flag, the other workers stop, and the top-K lines already received
// are returned.
func (d *Driver) Run(ctx context.Context, combinations [][]perk.MaterialName) (map[int][]perk.ResultLine, error) {
	if err := d.Cfg.Validate(); err != nil {
		return nil, err
	}
	if len(d.Budgets) == 0 {
		return nil, fmt.Errorf("search: no budgets configured")
	}

	workers, err := WorkerCount(d.Cfg)
	if err != nil {
		return nil, fmt.Errorf("search: resolve worker count: %w", err)
	}

	jobs := make(chan []perk.MaterialName, workers*4)
	results := make(chan []perk.ResultLine, workers*4)
	var cancelled atomic.Bool

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			defer func() {
				if recover() != nil {
					cancelled.Store(true)
				}
			}()
			d.worker(ctx, &cancelled, jobs, results)
		}()
	}

	go func() {
		defer close(jobs)
		for _, combo := range combinations {
			if cancelled.Load() || ctx.Err() != nil {
				return
			}
			select {
			case jobs <- combo:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	sinks := make(map[int]*topKList, len(d.Budgets))
	for _, b := range d.Budgets {
		sinks[int(b.Level)] = newTopKList(d.Cfg.topK(), d.SortType)
	}

	for batch := range results {
		for _, line := range batch {
			sinks[int(line.Level)].insert(line)
		}
	}

	out := make(map[int][]perk.ResultLine, len(sinks))
	for level, tk := range sinks {
		out[level] = tk.Results()
	}

	if ctx.Err() != nil {
		return out, ctx.Err()
	}
	return out, nil
}

func (d *Driver) worker(ctx context.Context, cancelled *atomic.Bool, jobs <-chan []perk.MaterialName, results chan<- []perk.ResultLine) {
	for combo := range jobs {
		if cancelled.Load() || ctx.Err() != nil {
			return
		}

		lines, err := d.evaluate(combo)
		if err != nil {
			cancelled.Store(true)
			return
		}
		if len(lines) == 0 {
			continue
		}

		select {
		case results <- lines:
		case <-ctx.Done():
			return
		}
	}
}

// evaluate runs components C through H for one material combination across
// every budget level.
func (d *Driver) evaluate(combo []perk.MaterialName) ([]perk.ResultLine, error) {
	perkValues := aggregate.GetPerkValues(d.Data, combo, d.GizmoType, d.AncientGizmo)
	if !aggregate.CanGenerateWantedRanks(d.Data, perkValues, d.Wanted) {
		return nil, nil
	}

	aggregate.CalcPerkRankProbabilities(d.Data, perkValues, d.AncientGizmo)

	combos := rankcombo.Enumerate(perkValues)
	if len(combos) == 0 {
		return nil, nil
	}

	wantedExact := perk.Gizmo{Perks: d.Wanted}
	wantedFuzzy := perk.Gizmo{Perks: [2]perk.Perk{d.Wanted[0], {}}}

	lines := make([]perk.ResultLine, 0, len(d.Budgets))
	for _, b := range d.Budgets {
		probGizmo := threshold.ProbabilityOfWanted(combos, wantedExact, b)
		probAttempt := threshold.ProbabilityOfWanted(combos, wantedFuzzy, b)
		if probGizmo <= 0 && probAttempt <= 0 {
			continue
		}

		rawPrice, pricePerSuccess := d.PriceFn(combo, probGizmo)
		lines = append(lines, perk.ResultLine{
			Level:           b.Level,
			ProbGizmo:       probGizmo,
			ProbAttempt:     probAttempt,
			Price:           rawPrice,
			PricePerSuccess: pricePerSuccess,
			Materials:       combo,
		})
	}
	return lines, nil
}
