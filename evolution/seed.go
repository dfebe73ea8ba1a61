package evolution

import (
	"github.com/pthm-cable/lander/simstate"
	"github.com/pthm-cable/lander/xrand"
)

// constantSeeds are the seven fixed gene pairs every initial generation
// opens with, grounded on original_source's ga_data::init_population: a
// handful of degenerate, easy-to-classify individuals (hold centered,
// hold both at floor, hold both at ceiling, the two remaining corners, and
// two edge midpoints) give the
// very first generation's fitness evaluation something to discriminate on
// before any randomness has entered the gene pool.
var constantSeeds = [7]simstate.Gene{
	{R: 0.5, P: 0.5},
	{R: 0, P: 0},
	{R: 1, P: 1},
	{R: 1, P: 0},
	{R: 0, P: 1},
	{R: 1, P: 0.5},
	{R: 0.5, P: 1},
}

// Seed builds the first generation: the seven constant-gene individuals
// (truncated if n is smaller) followed by n-7 individuals drawn uniformly
// at random, every gene in every individual independent.
func Seed(n int, rng *xrand.Source) Generation {
	gen := Generation{Individuals: make([]Individual, n), Index: 1}

	constants := len(constantSeeds)
	if constants > n {
		constants = n
	}
	for i := 0; i < constants; i++ {
		var ind Individual
		for g := range ind.Genes {
			ind.Genes[g] = constantSeeds[i]
		}
		gen.Individuals[i] = ind
	}

	for i := constants; i < n; i++ {
		var ind Individual
		for g := range ind.Genes {
			ind.Genes[g] = simstate.Gene{R: rng.Float64(), P: rng.Float64()}
		}
		gen.Individuals[i] = ind
	}

	return gen
}
