// Command lander-offline runs the evolutionary engine against a map
// fixture file until it finds a landing or exhausts a generation cap,
// then prints a summary of the final generation the way the teacher's
// optimize tool reports its result. No per-generation progress is printed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pthm-cable/lander/config"
	"github.com/pthm-cable/lander/driver"
	"github.com/pthm-cable/lander/fixture"
	"github.com/pthm-cable/lander/paramsio"
	"github.com/pthm-cable/lander/physics"
	"github.com/pthm-cable/lander/replaydump"
	"github.com/pthm-cable/lander/telemetry"
	"github.com/pthm-cable/lander/xrand"
)

func main() {
	mapPath := flag.String("map", "", "Path to the map fixture file")
	paramsPath := flag.String("params", "ga_params.ini", "Path to ga_params.ini")
	configPath := flag.String("config", "", "Path to engine config YAML (empty = embedded defaults)")
	outputDir := flag.String("output", "", "Output directory for the run's config.yaml and generations.csv, which receives no generation rows (empty = config telemetry.dir; both empty = disabled)")
	dumpPath := flag.String("dump", "", "Write the best trajectory as JSON for cmd/replay (empty = disabled)")
	generationCap := flag.Int("generations", 0, "Generation cap (0 = use ga_params.ini's generation cap, where 0 means unbounded, stop only on landing)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = draw from entropy)")
	flag.Parse()

	if *mapPath == "" {
		log.Fatal("lander-offline: --map is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("lander-offline: %v", err)
	}

	fx, err := fixture.Load(*mapPath)
	if err != nil {
		log.Fatalf("lander-offline: %v", err)
	}

	ground, err := physics.NewGround(fx.Polyline)
	if err != nil {
		log.Fatalf("lander-offline: %v", err)
	}

	doc, err := paramsio.Load(*paramsPath)
	if err != nil {
		log.Fatalf("lander-offline: %v", err)
	}
	if *generationCap == 0 {
		*generationCap = doc.Policy.GenerationCap
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.RNG.Seed
	}
	var rng *xrand.Source
	if rngSeed != 0 {
		rng = xrand.NewSource(rngSeed)
	} else {
		rng = xrand.NewSourceFromEntropy()
	}
	defer rng.Stop()

	if *outputDir == "" {
		*outputDir = cfg.Telemetry.Dir
	}
	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		log.Fatalf("lander-offline: %v", err)
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		log.Fatalf("lander-offline: %v", err)
	}

	d := driver.New(ground, fx.Initial, doc.Params, cfg.Workers.Count, rng)
	defer d.Close()
	driver.SetLogWriter(os.Stdout)

	start := time.Now()
	best, generations, err := d.RunOffline(*generationCap)
	if err != nil {
		log.Fatalf("lander-offline: %v", err)
	}

	driver.Logf("finished after %d generations in %s", generations, time.Since(start).Round(time.Millisecond))
	driver.Logf("best result: status=%s score=%.4f", best.Trajectory.Status, best.Score)

	if *dumpPath != "" {
		dump := replaydump.FromTrajectory(ground, best.Trajectory, best.Score)
		if err := replaydump.Write(*dumpPath, dump); err != nil {
			log.Fatalf("lander-offline: %v", err)
		}
	}

	snap := d.Snapshot()
	mean, stdev, _, _, _ := telemetry.ComputeScoreStats(scoresOf(snap.Results))
	fmt.Printf("generation %d: best=%.4f mean=%.4f stdev=%.4f\n", snap.GenerationIndex, best.Score, mean, stdev)
}

func scoresOf(results []driver.Result) []float64 {
	scores := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.Score
	}
	return scores
}
