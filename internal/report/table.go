// Package report prints the terminal result table and writes the CSV
// export, grounded on original_source/src/result.rs's format_float/
// format_price/get_color/print_result.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"perksolver/internal/perk"
)

// FormatFloat renders a probability in [0,1] as a percentage string with
// the original tool's precision-by-magnitude rule: fixed 5-decimal once
// above 0.01%, dropping to scientific notation as it shrinks.
func FormatFloat(frac float64) string {
	n := frac
	if n > 1 {
		n = 1
	}
	n *= 100
	switch {
	case n > 1e-2:
		return fmt.Sprintf("%.5f", n)
	case n > 1e-9:
		return fmt.Sprintf("%.4e", n)
	case n > 1e-99:
		return fmt.Sprintf("%.3e", n)
	default:
		return fmt.Sprintf("%.2e", n)
	}
}

// FormatPrice renders a price with the original tool's k/M/B suffix rule.
func FormatPrice(num float64) string {
	switch {
	case num < 1e4:
		return fmt.Sprintf("%d", int(num))
	case num < 1e7:
		return fmt.Sprintf("%d k", int(num/1e3))
	case num < 1e10:
		return fmt.Sprintf("%.1f M", num/1e6)
	case num < 1e13:
		return fmt.Sprintf("%.1f B", num/1e9)
	default:
		return fmt.Sprintf("%.2e", num)
	}
}

// colorFor maps a ratio-to-best (0..1) to one of six traffic-light bands,
// ported verbatim from result.rs's get_color.
func colorFor(ratio float64) color.Attribute {
	switch {
	case ratio > 0.98:
		return color.FgGreen
	case ratio > 0.95:
		return color.FgHiGreen
	case ratio > 0.90:
		return color.FgYellow
	case ratio > 0.50:
		return color.FgHiYellow
	case ratio > 0.10:
		return color.FgRed
	default:
		return color.FgHiRed
	}
}

func paint(s string, ratio float64) string {
	return color.New(colorFor(ratio)).Sprint(s)
}

// PrintTable writes the per-level best-combination table plus the overall
// winner (and, if present, its alternates) to w. bestPerLevel is the
// driver's Run output indexed by invention level; levels is the ascending
// order to print them in.
func PrintTable(w io.Writer, bestPerLevel map[int][]perk.ResultLine, levels []int, st perk.SortType) {
	nonEmpty := make([]int, 0, len(levels))
	for _, lvl := range levels {
		if len(bestPerLevel[lvl]) > 0 {
			nonEmpty = append(nonEmpty, lvl)
		}
	}
	if len(nonEmpty) == 0 {
		fmt.Fprintln(w, "No viable material combination found.")
		return
	}

	bestLevel := nonEmpty[0]
	for _, lvl := range nonEmpty {
		if betterLevel(bestPerLevel[lvl][0], bestPerLevel[bestLevel][0], st) {
			bestLevel = lvl
		}
	}

	bestGizmo, bestAttempt := 0.0, 0.0
	bestPrice := bestPerLevel[nonEmpty[0]][0].PricePerSuccess
	for _, lvl := range nonEmpty {
		top := bestPerLevel[lvl][0]
		if top.ProbGizmo > bestGizmo {
			bestGizmo = top.ProbGizmo
		}
		if top.ProbAttempt > bestAttempt {
			bestAttempt = top.ProbAttempt
		}
		if top.PricePerSuccess < bestPrice {
			bestPrice = top.PricePerSuccess
		}
	}

	fmt.Fprintln(w, "|-------|---------------------------|-----------|")
	fmt.Fprintln(w, "|       |      Probability (%)      |           |")
	fmt.Fprintln(w, "| Level |---------------------------|   Price   |")
	fmt.Fprintln(w, "|       |    Gizmo    |   Attempt   |           |")
	fmt.Fprintln(w, "|-------|---------------------------|-----------|")

	for _, lvl := range nonEmpty {
		top := bestPerLevel[lvl][0]
		gizmoRatio, attemptRatio, priceRatio := 0.0, 0.0, 0.0
		if bestGizmo > 0 {
			gizmoRatio = top.ProbGizmo / bestGizmo
		}
		if bestAttempt > 0 {
			attemptRatio = top.ProbAttempt / bestAttempt
		}
		if top.PricePerSuccess > 0 {
			priceRatio = bestPrice / top.PricePerSuccess
		}

		fmt.Fprintf(w, "| %4d  |  %9s  |  %9s  | %9s |",
			lvl,
			paint(FormatFloat(top.ProbGizmo), gizmoRatio),
			paint(FormatFloat(top.ProbAttempt), attemptRatio),
			paint(FormatPrice(top.PricePerSuccess), priceRatio))

		if lvl == bestLevel {
			fmt.Fprintln(w, " <====")
		} else {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w, "|-------|---------------------------|-----------|")
	fmt.Fprintln(w)

	best := bestPerLevel[bestLevel][0]
	fmt.Fprintf(w, "Best combination at level %d:\n %-10s: %s\n",
		best.Level, sortValue(best, st), perk.VecToString(best.Materials))

	alts := bestPerLevel[bestLevel][1:]
	printed := false
	for _, alt := range alts {
		if alt.ProbGizmo <= 0 {
			continue
		}
		if !printed {
			fmt.Fprintln(w, "\nAlts:")
			printed = true
		}
		fmt.Fprintf(w, " %-10s: %s\n", sortValue(alt, st), perk.VecToString(alt.Materials))
	}
}

func sortValue(r perk.ResultLine, st perk.SortType) string {
	switch st {
	case perk.SortGizmo:
		return FormatFloat(r.ProbGizmo) + "%"
	case perk.SortAttempt:
		return FormatFloat(r.ProbAttempt) + "%"
	default:
		return FormatPrice(r.PricePerSuccess)
	}
}

func betterLevel(a, b perk.ResultLine, st perk.SortType) bool {
	switch st {
	case perk.SortGizmo:
		return a.ProbGizmo > b.ProbGizmo
	case perk.SortAttempt:
		return a.ProbAttempt > b.ProbAttempt
	default:
		return a.PricePerSuccess < b.PricePerSuccess
	}
}

// SortedLevels returns the map keys of bestPerLevel in ascending order.
func SortedLevels(bestPerLevel map[int][]perk.ResultLine) []int {
	levels := make([]int, 0, len(bestPerLevel))
	for lvl := range bestPerLevel {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)
	return levels
}
