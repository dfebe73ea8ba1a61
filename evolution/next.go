package evolution

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/lander/params"
	"github.com/pthm-cable/lander/xrand"
)

// Next advances one generation. scores[i] is the raw fitness of
// gen.Individuals[i] (component E's Score(...).Total, computed by the
// caller — this package never calls into fitness itself, keeping the two
// packages decoupled).
//
// crossoverStep is owned by the caller and threaded through every call
// across the whole run: the three crossover schemes rotate per pair
// produced, and the rotation does not reset between generations (spec.md
// §9 design note).
func Next(gen Generation, scores []float64, p params.Params, rng *xrand.Source, crossoverStep *int) Generation {
	n := len(gen.Individuals)
	normalized, _, sigma := normalizeScores(scores)

	eliteCount := int(float64(n) * p.ElitismRate)
	eliteIdx := topIndices(scores, eliteCount)
	eliteSet := make(map[int]bool, eliteCount)
	for _, i := range eliteIdx {
		eliteSet[i] = true
	}

	// Selection draws from the normalized scores, but elites are boosted by
	// elite_multiplier so they dominate the pool of crossover parents
	// without being forced into a rank by it — the top-E selection above
	// already used the unboosted raw scores.
	selectionWeights := make([]float64, n)
	copy(selectionWeights, normalized)
	for _, i := range eliteIdx {
		selectionWeights[i] *= p.EliteMultiplier
	}
	total := sum(selectionWeights)

	mutationRate := p.MutationRate
	if sigma < p.StdevThreshold {
		mutationRate = p.MutationRate * (p.StdevThreshold - sigma + 1) * 100
	}

	next := make([]Individual, 0, n)
	for _, i := range eliteIdx {
		next = append(next, gen.Individuals[i])
	}
	// Rank 0 (the single best) is preserved bit-identical; every other
	// elite is still subject to mutation, same as a crossover child.
	for i := 1; i < len(next); i++ {
		mutate(&next[i], mutationRate, rng)
	}

	for len(next) < n {
		p1 := rouletteSelect(selectionWeights, total, rng)
		p2 := rouletteSelect(selectionWeights, total, rng)

		s := scheme(*crossoverStep % int(schemeCount))
		*crossoverStep++

		c1, c2 := crossover(gen.Individuals[p1], gen.Individuals[p2], s, rng)
		mutate(&c1, mutationRate, rng)
		next = append(next, c1)
		if len(next) < n {
			mutate(&c2, mutationRate, rng)
			next = append(next, c2)
		}
	}

	return Generation{Individuals: next, Index: gen.Index + 1}
}

// normalizeScores rescales scores into [0,1] and returns the population
// mean and standard deviation of the rescaled values (used for the
// adaptive-mutation trigger). A degenerate population (S_min = S_max)
// resets the bounds to S_min=0, S_max=1 per spec.md §4.F step 1, so each
// normalized value is just the raw score itself rather than a constant.
func normalizeScores(scores []float64) (normalized []float64, mean, sigma float64) {
	lo, hi := scores[0], scores[0]
	for _, s := range scores {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}

	if hi == lo {
		lo, hi = 0, 1
	}

	span := hi - lo
	normalized = make([]float64, len(scores))
	for i, s := range scores {
		normalized[i] = (s - lo) / span
	}
	mean = stat.Mean(normalized, nil)
	sigma = stat.StdDev(normalized, nil)
	return normalized, mean, sigma
}

// topIndices returns the indices of the k highest-scoring individuals,
// ties broken toward the lower index.
func topIndices(scores []float64, k int) []int {
	if k <= 0 {
		return nil
	}
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if scores[idx[a]] != scores[idx[b]] {
			return scores[idx[a]] > scores[idx[b]]
		}
		return idx[a] < idx[b]
	})
	if k > len(idx) {
		k = len(idx)
	}
	return idx[:k]
}

// rouletteSelect walks the cumulative weight array until it exceeds a
// uniformly drawn threshold in [0,total). Falls back to the last index on
// floating-point rounding at the boundary.
func rouletteSelect(weights []float64, total float64, rng *xrand.Source) int {
	threshold := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if cumulative > threshold {
			return i
		}
	}
	return len(weights) - 1
}

func sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total
}
