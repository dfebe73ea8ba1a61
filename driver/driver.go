// Package driver coordinates the evolutionary engine, the worker pool,
// and the time budget controller into the two entrypoints other tools
// actually call: an offline "run until landed" loop and an online,
// turn-by-turn contest loop (spec.md §4.H).
package driver

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/pthm-cable/lander/evolution"
	"github.com/pthm-cable/lander/fitness"
	"github.com/pthm-cable/lander/params"
	"github.com/pthm-cable/lander/physics"
	"github.com/pthm-cable/lander/simstate"
	"github.com/pthm-cable/lander/timebudget"
	"github.com/pthm-cable/lander/workerpool"
	"github.com/pthm-cable/lander/xrand"
)

// Result pairs an evaluated individual with its trajectory and score,
// what the UI collaborator actually wants to read off a finished
// generation.
type Result struct {
	Individual evolution.Individual
	Trajectory physics.Trajectory
	Score      float64
}

// Snapshot is a read-only copy of the driver's current state, safe to
// hand to a UI collaborator running on another goroutine.
type Snapshot struct {
	GenerationName string
	GenerationIndex int
	Results        []Result
	Best           Result
	Params         params.Params
}

// Driver owns one problem instance (a fixed map and initial ship state)
// end to end: seeding, evaluating, advancing generations, and picking the
// action to emit. Its mutable state is guarded by mu so a UI collaborator
// can safely read a Snapshot between generations.
type Driver struct {
	mu sync.Mutex

	ground  *physics.Ground
	initial simstate.State

	pool *workerpool.Pool
	rng  *xrand.Source

	crossoverStep int
	name          string
	gen           evolution.Generation
	results       []Result
	p             params.Params
}

// New creates a driver for one problem instance. workers <= 0 defaults to
// the worker pool's own default (runtime.NumCPU()).
func New(ground *physics.Ground, initial simstate.State, p params.Params, workers int, rng *xrand.Source) *Driver {
	return &Driver{
		ground:  ground,
		initial: initial,
		pool:    workerpool.New(workers),
		rng:     rng,
		p:       p,
		name:    "unnamed",
	}
}

// Close shuts down the driver's worker pool. The driver is not usable
// afterward.
func (d *Driver) Close() {
	d.pool.Stop()
}

// SetName labels the current problem instance for logging and telemetry.
func (d *Driver) SetName(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.name = name
}

// Snapshot returns a copy of the driver's current generation and results,
// safe to read without racing the driver's own goroutine.
func (d *Driver) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	results := make([]Result, len(d.results))
	copy(results, d.results)

	var best Result
	for _, r := range results {
		if r.Score > best.Score || best.Trajectory.States == nil {
			best = r
		}
	}

	return Snapshot{
		GenerationName:  d.name,
		GenerationIndex: d.gen.Index,
		Results:         results,
		Best:            best,
		Params:          d.p,
	}
}

// evaluate runs every individual in gen through the physics simulator in
// parallel, then scores each completed trajectory. It blocks until every
// task in the generation has returned (the barrier spec.md §5 requires).
// A task that panics or otherwise fails to produce a trajectory does not
// abort the generation: its result is tainted with a score of negative
// infinity so it never wins selection, and the failure is logged
// (spec.md §7 "driver re-runs or aborts per policy" — the policy here is
// "never let a failed task win").
func (d *Driver) evaluate(gen evolution.Generation) ([]Result, error) {
	d.mu.Lock()
	initial := d.initial
	ground := d.ground
	p := d.p
	d.mu.Unlock()

	futures := make([]*workerpool.Future[physics.Trajectory], len(gen.Individuals))
	for i, ind := range gen.Individuals {
		ind := ind
		fut, err := workerpool.Submit(d.pool, func() (physics.Trajectory, error) {
			return physics.RunEpisode(initial, ind.GeneSlice(), ground)
		})
		if err != nil {
			return nil, fmt.Errorf("driver: submitting individual %d: %w", i, err)
		}
		futures[i] = fut
	}

	results := make([]Result, len(gen.Individuals))
	for i, fut := range futures {
		traj, err := fut.Wait()
		if err != nil {
			slog.Error("driver: individual task failed, tainting with -Inf score", "generation", gen.Index, "individual", i, "error", err)
			results[i] = Result{Individual: gen.Individuals[i], Score: math.Inf(-1)}
			continue
		}
		score := fitness.Score(traj, ground.Pad, p).Total
		results[i] = Result{Individual: gen.Individuals[i], Trajectory: traj, Score: score}
	}
	return results, nil
}

func scoresOf(results []Result) []float64 {
	scores := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.Score
	}
	return scores
}

func bestOf(results []Result) Result {
	best := results[0]
	for _, r := range results[1:] {
		if r.Score > best.Score {
			best = r
		}
	}
	return best
}

// RunOffline evolves generations until an individual lands or the
// generation cap is reached (0 means unbounded), returning the best
// result found and the number of generations evolved.
func (d *Driver) RunOffline(generationCap int) (Result, int, error) {
	d.mu.Lock()
	d.gen = evolution.Seed(d.p.PopulationSize, d.rng)
	d.mu.Unlock()

	for {
		d.mu.Lock()
		gen := d.gen
		d.mu.Unlock()

		results, err := d.evaluate(gen)
		if err != nil {
			return Result{}, gen.Index, err
		}

		d.mu.Lock()
		d.results = results
		d.mu.Unlock()

		best := bestOf(results)
		if best.Trajectory.Status == physics.Landed {
			return best, gen.Index, nil
		}
		if generationCap > 0 && gen.Index >= generationCap {
			return best, gen.Index, nil
		}

		next := evolution.Next(gen, scoresOf(results), d.p, d.rng, &d.crossoverStep)
		d.mu.Lock()
		d.gen = next
		d.mu.Unlock()
	}
}

// RunOnlineInitial spends budget evolving generations from a fresh seed
// against the contest's reported initial state, then returns the first
// decision of the best individual found — the opening move (spec.md
// §4.H "initial budget").
func (d *Driver) RunOnlineInitial(initial simstate.State, budget time.Duration) (simstate.Decision, error) {
	d.mu.Lock()
	d.initial = initial
	d.gen = evolution.Seed(d.p.PopulationSize, d.rng)
	d.mu.Unlock()

	if err := d.evolveWithinBudget(budget); err != nil {
		return simstate.Decision{}, err
	}
	return d.headDecision()
}

// RunOnlineTurn updates the driver's notion of the current ship state to
// what the judge reported this turn. Gene index 0 of every individual was
// already spent on the turn that just elapsed, so before evolving or
// deciding anything this turn, every individual's genes are left-shifted
// by one (dropping the consumed gene and appending a fresh random one),
// realigning gene index 0 with the state reported now. Only then does it
// spend the per-turn budget evolving further generations from the
// realigned population and decode the next decision from the result
// (spec.md §4.H).
func (d *Driver) RunOnlineTurn(state simstate.State, budget time.Duration) (simstate.Decision, error) {
	d.mu.Lock()
	d.initial = state
	for i := range d.gen.Individuals {
		shiftGenesLeft(&d.gen.Individuals[i], d.rng)
	}
	d.mu.Unlock()

	if err := d.evolveWithinBudget(budget); err != nil {
		return simstate.Decision{}, err
	}
	return d.headDecision()
}

// shiftGenesLeft drops gene 0 and moves every other gene down one index,
// appending a fresh random gene at the end.
func shiftGenesLeft(ind *evolution.Individual, rng *xrand.Source) {
	copy(ind.Genes[:], ind.Genes[1:])
	ind.Genes[len(ind.Genes)-1] = simstate.Gene{R: rng.Float64(), P: rng.Float64()}
}

// evolveWithinBudget evaluates and advances generations until the time
// budget controller says one more would risk exceeding budget.
func (d *Driver) evolveWithinBudget(budget time.Duration) error {
	tb := timebudget.New()
	start := time.Now()

	for {
		d.mu.Lock()
		gen := d.gen
		d.mu.Unlock()

		genStart := time.Now()
		results, err := d.evaluate(gen)
		elapsedGen := time.Since(genStart)
		tb.Record(elapsedGen)
		if err != nil {
			return err
		}

		d.mu.Lock()
		d.results = results
		d.mu.Unlock()

		if bestOf(results).Trajectory.Status == physics.Landed {
			return nil
		}

		if tb.ShouldStop(time.Since(start), budget) {
			return nil
		}

		next := evolution.Next(gen, scoresOf(results), d.p, d.rng, &d.crossoverStep)
		d.mu.Lock()
		d.gen = next
		d.mu.Unlock()
	}
}

// headDecision decodes the first gene of the current best individual
// against the driver's initial state, the action the contest loop emits
// this turn.
func (d *Driver) headDecision() (simstate.Decision, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.results) == 0 {
		return simstate.Decision{}, fmt.Errorf("driver: no evaluated results to decide from")
	}
	best := bestOf(d.results)
	return simstate.Decide(d.initial, best.Individual.Genes[0], d.ground.Pad), nil
}
