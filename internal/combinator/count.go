package combinator

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// factorial backs the (j+k)! term in CalcCombinationCount. gonum's combin
// package has no dedicated factorial; math.Gamma(n+1) is the standard
// stand-in and matches SPEC_FULL.md's choice of library here.
func factorial(n int) float64 {
	return math.Gamma(float64(n) + 1)
}

// choose wraps combin.Binomial with the original's dice::choose semantics
// (lib.rs:137): k > n returns 0 instead of panicking. gonum's Binomial
// panics on k > n, which fires for the noConflictSize == 0 case below
// before that case's own fallback is reached.
func choose(n, k int) float64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	return combin.Binomial(n, k)
}

// CalcCombinationCount is the closed-form total combination count used for
// progress reporting, ported from original_source/src/lib.rs's
// calc_combination_count. conflictSize/noConflictSize are the sizes of the
// two SplitMaterials groups.
func CalcCombinationCount(conflictSize, noConflictSize int, isAncientGizmo bool) int {
	slotCount := MaxSlots(isAncientGizmo)
	count := 0.0

	for i := 1; i <= slotCount; i++ {
		count += choose(noConflictSize+i-1, i)

		maxJ := i
		if conflictSize < maxJ {
			maxJ = conflictSize
		}
		for j := 1; j <= maxJ; j++ {
			x := 0.0
			maxK := i - j
			if noConflictSize < maxK {
				maxK = noConflictSize
			}
			for k := 0; k <= maxK; k++ {
				x += choose(noConflictSize, k) * factorial(j+k) * choose(i-1, i-j-k)
			}
			count += x * choose(conflictSize, j)
		}
	}

	if noConflictSize == 0 {
		count += float64(slotCount)
	}

	return int(count)
}
