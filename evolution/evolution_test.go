package evolution

import (
	"testing"

	"github.com/pthm-cable/lander/params"
	"github.com/pthm-cable/lander/simstate"
	"github.com/pthm-cable/lander/xrand"
)

func TestSeedSizeAndConstants(t *testing.T) {
	rng := xrand.NewSource(1)
	defer rng.Stop()

	gen := Seed(20, rng)
	if len(gen.Individuals) != 20 {
		t.Fatalf("population = %d, want 20", len(gen.Individuals))
	}
	if gen.Index != 1 {
		t.Errorf("index = %d, want 1", gen.Index)
	}
	for i, want := range constantSeeds {
		for g := range gen.Individuals[i].Genes {
			if gen.Individuals[i].Genes[g] != want {
				t.Errorf("individual %d gene %d = %v, want constant seed %v", i, g, gen.Individuals[i].Genes[g], want)
			}
		}
	}
}

func TestSeedEveryGeneInRange(t *testing.T) {
	rng := xrand.NewSource(2)
	defer rng.Stop()

	gen := Seed(30, rng)
	for i := 7; i < len(gen.Individuals); i++ {
		for _, g := range gen.Individuals[i].Genes {
			if g.R < 0 || g.R > 1 || g.P < 0 || g.P > 1 {
				t.Fatalf("individual %d has out-of-range gene %v", i, g)
			}
		}
	}
}

func uniformIndividual(v float64) Individual {
	var ind Individual
	for i := range ind.Genes {
		ind.Genes[i] = simstate.Gene{R: v, P: v}
	}
	return ind
}

func TestNextPreservesPopulationSize(t *testing.T) {
	rng := xrand.NewSource(3)
	defer rng.Stop()
	p := params.Default()
	step := 0

	gen := Seed(20, rng)
	scores := make([]float64, 20)
	for i := range scores {
		scores[i] = float64(i)
	}

	next := Next(gen, scores, p, rng, &step)
	if len(next.Individuals) != len(gen.Individuals) {
		t.Fatalf("next population = %d, want %d", len(next.Individuals), len(gen.Individuals))
	}
	if next.Index != gen.Index+1 {
		t.Errorf("index = %d, want %d", next.Index, gen.Index+1)
	}
}

func TestNextKeepsBestEliteBitIdentical(t *testing.T) {
	rng := xrand.NewSource(4)
	defer rng.Stop()
	p := params.Default()
	p.MutationRate = 1.0 // force mutation on everything that is not protected
	step := 0

	gen := Generation{Individuals: make([]Individual, 10), Index: 1}
	for i := range gen.Individuals {
		gen.Individuals[i] = uniformIndividual(float64(i) / 10)
	}
	scores := []float64{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	// individual 0 has the highest score and must survive rank 0 unmutated.
	best := gen.Individuals[0]

	next := Next(gen, scores, p, rng, &step)
	if next.Individuals[0] != best {
		t.Errorf("rank-0 elite mutated: got %v, want %v", next.Individuals[0], best)
	}
}

func TestNextElitesArePermutationOfTopScorers(t *testing.T) {
	rng := xrand.NewSource(5)
	defer rng.Stop()
	p := params.Default()
	p.ElitismRate = 0.2
	p.MutationRate = 0 // isolate elite membership from mutation noise
	step := 0

	n := 10
	gen := Generation{Individuals: make([]Individual, n), Index: 1}
	scores := make([]float64, n)
	for i := range gen.Individuals {
		gen.Individuals[i] = uniformIndividual(float64(i))
		scores[i] = float64(i)
	}

	next := Next(gen, scores, p, rng, &step)
	eliteCount := int(float64(n) * p.ElitismRate)
	for i := 0; i < eliteCount; i++ {
		wantV := float64(n - 1 - i)
		got := next.Individuals[i].Genes[0].R
		if got != wantV {
			t.Errorf("elite %d = %v, want value %v (descending top scorers)", i, got, wantV)
		}
	}
}

func TestCrossoverStepRotatesAndPersistsAcrossCalls(t *testing.T) {
	rng := xrand.NewSource(6)
	defer rng.Stop()
	p := params.Default()
	p.ElitismRate = 0
	step := 0

	gen := Seed(10, rng)
	scores := make([]float64, 10)
	for i := range scores {
		scores[i] = float64(i)
	}

	Next(gen, scores, p, rng, &step)
	firstStep := step
	Next(gen, scores, p, rng, &step)

	if firstStep == 0 {
		t.Fatalf("expected crossover step counter to advance within a single Next call, stayed at %d", firstStep)
	}
	if step <= firstStep {
		t.Errorf("crossover step counter must keep advancing across generations, got %d then %d", firstStep, step)
	}
}

func TestNormalizeScoresHandlesDegeneratePopulation(t *testing.T) {
	// S_min == S_max resets the bounds to 0/1 (spec.md §4.F step 1), so a
	// degenerate population normalizes to its raw scores, not a constant.
	scores := []float64{5, 5, 5, 5}
	normalized, mean, sigma := normalizeScores(scores)
	for _, v := range normalized {
		if v != 5 {
			t.Errorf("degenerate population should normalize to the raw score 5, got %v", v)
		}
	}
	if mean != 5 || sigma != 0 {
		t.Errorf("mean/sigma = %v/%v, want 5/0 for a degenerate population", mean, sigma)
	}
}

func TestTopIndicesTieBreaksByLowerIndex(t *testing.T) {
	scores := []float64{1, 2, 2, 0}
	top := topIndices(scores, 2)
	if len(top) != 2 || top[0] != 1 || top[1] != 2 {
		t.Errorf("top indices = %v, want [1 2]", top)
	}
}

func TestRouletteSelectNeverExceedsBounds(t *testing.T) {
	rng := xrand.NewSource(7)
	defer rng.Stop()
	weights := []float64{0.1, 0.2, 0.3, 0.4}
	total := sum(weights)
	for i := 0; i < 1000; i++ {
		idx := rouletteSelect(weights, total, rng)
		if idx < 0 || idx >= len(weights) {
			t.Fatalf("roulette select returned out-of-range index %d", idx)
		}
	}
}
