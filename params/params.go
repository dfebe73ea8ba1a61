// Package params defines the tunable parameters shared by the fitness
// evaluator and the evolutionary engine (spec.md §3 "Parameters").
package params

// Params holds every tunable of a GA run: the evolutionary engine's own
// knobs (population size, mutation/elitism rates, elite multiplier, the
// adaptive-mutation stdev threshold) and the fitness evaluator's per-term
// weights. Keeping them in one struct mirrors the single ga_params.ini file
// that persists them (spec.md §6).
type Params struct {
	PopulationSize int
	MutationRate   float64
	ElitismRate    float64
	EliteMultiplier float64
	StdevThreshold  float64

	FuelWeight     float64
	DistanceWeight float64
	VSpeedWeight   float64
	HSpeedWeight   float64
	RotationWeight float64
}

// Default returns the parameter set used by original_source's contest
// entrypoint (original_source/src/codingame_main.cpp), adjusted to the
// population size spec.md's scenarios exercise.
func Default() Params {
	return Params{
		PopulationSize:  50,
		MutationRate:    0.02,
		ElitismRate:     0.14,
		EliteMultiplier: 5.0,
		StdevThreshold:  0.1,

		FuelWeight:     0.1,
		VSpeedWeight:   1.0,
		HSpeedWeight:   0.98,
		DistanceWeight: 1.0,
		RotationWeight: 0.1,
	}
}
