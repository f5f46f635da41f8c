// Package dice implements the uniform-sum dice distributions and the plain
// convolution kernel the rest of the engine builds on.
package dice

import "math"

// Choose returns the binomial coefficient C(n,k) as a float64 via the falling
// factorial. Returns 0 when k > n.
func Choose(n, k uint64) float64 {
	if k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := uint64(0); i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}
	return result
}

// DiceRoll returns the probability of rolling a sum of val using dieCount
// uniform dice with dieSides faces each, via inclusion-exclusion:
//
//	Σ_{j=0}^{floor((val-dieCount)/dieSides)} (-1)^j C(dieCount,j) C(val-dieSides*j-1, dieCount-1) / dieSides^dieCount
func DiceRoll(val, dieCount, dieSides uint64) float64 {
	if dieCount == 0 || dieSides == 0 {
		return 0
	}
	if val < dieCount {
		return 0
	}

	maxJ := (val - dieCount) / dieSides
	sum := 0.0
	for j := uint64(0); j <= maxJ; j++ {
		term := Choose(dieCount, j) * Choose(val-dieSides*j-1, dieCount-1)
		if j%2 == 1 {
			term = -term
		}
		sum += term
	}

	return sum / math.Pow(float64(dieSides), float64(dieCount))
}

// Distribution returns the PMF of the sum of rolls IID uniform dice on
// 0..=(rng-1), indexed by sum. Length is (rng-1)*rolls+1, or 0 if either
// argument is 0. When rolls==1 the distribution is computed directly
// (1/rng for every face) rather than through DiceRoll.
func Distribution(rng, rolls int) []float64 {
	if rng <= 0 || rolls <= 0 {
		return nil
	}

	if rolls == 1 {
		dist := make([]float64, rng)
		p := 1.0 / float64(rng)
		for i := range dist {
			dist[i] = p
		}
		return dist
	}

	length := (rng-1)*rolls + 1
	dist := make([]float64, length)
	for i := range dist {
		// DiceRoll's faces are 1..=sides, summed value is i+rolls (minimum
		// possible sum for `rolls` dice on faces 1..=rng).
		dist[i] = DiceRoll(uint64(i+rolls), uint64(rolls), uint64(rng))
	}
	return dist
}

// CumulativeDistribution returns the prefix sum of Distribution(rng, rolls),
// clamped to exactly 1.0 at the last element.
func CumulativeDistribution(rng, rolls int) []float64 {
	dist := Distribution(rng, rolls)
	if len(dist) == 0 {
		return dist
	}

	cum := make([]float64, len(dist))
	acc := 0.0
	for i, p := range dist {
		acc += p
		cum[i] = acc
	}
	cum[len(cum)-1] = 1.0
	return cum
}

// Convolve computes the direct O(|x|*|y|) convolution of x and y. The result
// commutes: Convolve(x, y) == Convolve(y, x) element-wise.
func Convolve(x, y []float64) []float64 {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}

	out := make([]float64, len(x)+len(y)-1)
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		for j, yj := range y {
			out[i+j] += xi * yj
		}
	}
	return out
}
