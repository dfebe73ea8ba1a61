// Package evolution implements the generational evolutionary algorithm:
// initial-generation seeding, elitism, roulette-wheel selection, three
// rotating crossover schemes, and adaptive mutation (spec.md §4.F).
package evolution

import "github.com/pthm-cable/lander/simstate"

// Individual is an immutable, fixed-length sequence of genes. Once produced
// by the engine it is never mutated in place during simulation — workers
// only read it.
type Individual struct {
	Genes [simstate.GeneCount]simstate.Gene
}

// GeneSlice exposes the gene array as a slice for RunEpisode.
func (ind Individual) GeneSlice() []simstate.Gene {
	return ind.Genes[:]
}

// Generation is a population of individuals with a monotonically
// increasing index, starting at 1.
type Generation struct {
	Individuals []Individual
	Index       int
}
