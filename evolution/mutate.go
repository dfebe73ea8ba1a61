package evolution

import "github.com/pthm-cable/lander/xrand"

// mutate flips each gene component independently with probability rate,
// replacing it with a fresh uniform draw. Applied in place.
func mutate(ind *Individual, rate float64, rng *xrand.Source) {
	for i := range ind.Genes {
		if rng.Float64() < rate {
			ind.Genes[i].R = rng.Float64()
		}
		if rng.Float64() < rate {
			ind.Genes[i].P = rng.Float64()
		}
	}
}
