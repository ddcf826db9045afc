package stats

import (
	"math"
	"sort"
)

// NormalizePercentages converts values into percentages of total, rounded to
// one decimal place, using the largest-remainder method so the rounded
// percentages sum to exactly 100.0. With a zero total every percentage is
// 0.0. The arithmetic runs in integer tenths to keep the target sum exact.
func NormalizePercentages(values []float64, total float64) []float64 {
	pcts := make([]float64, len(values))
	if total == 0 || len(values) == 0 {
		return pcts
	}

	rawTenths := make([]float64, len(values))
	tenths := make([]int, len(values))
	sum := 0
	for i, v := range values {
		rawTenths[i] = v / total * 1000.0
		tenths[i] = int(math.Round(rawTenths[i]))
		sum += tenths[i]
	}

	diff := 1000 - sum
	if diff != 0 {
		// Order by rounding remainder: when the sum falls short, bump the
		// values that were rounded down the hardest; when it overshoots,
		// shave the ones that were rounded up the hardest. Ties keep input
		// order so the distribution is stable.
		order := make([]int, len(values))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			ra := rawTenths[order[a]] - float64(tenths[order[a]])
			rb := rawTenths[order[b]] - float64(tenths[order[b]])
			if diff > 0 {
				return ra > rb
			}
			return ra < rb
		})

		step := 1
		if diff < 0 {
			step = -1
		}
		for i := 0; i < len(order) && diff != 0; i++ {
			tenths[order[i]] += step
			diff -= step
		}
	}

	for i, t := range tenths {
		pcts[i] = float64(t) / 10.0
	}
	return pcts
}
