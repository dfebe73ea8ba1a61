// Command lander-contest implements the online judge protocol: read the
// ground polyline once, then read one ship state per turn from stdin and
// write the chosen (rotate, power) decision to stdout (spec.md §6
// "Contest I/O").
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pthm-cable/lander/config"
	"github.com/pthm-cable/lander/driver"
	"github.com/pthm-cable/lander/geometry"
	"github.com/pthm-cable/lander/paramsio"
	"github.com/pthm-cable/lander/physics"
	"github.com/pthm-cable/lander/simstate"
	"github.com/pthm-cable/lander/xrand"
)

func main() {
	paramsPath := flag.String("params", "ga_params.ini", "Path to ga_params.ini")
	configPath := flag.String("config", "", "Path to engine config YAML (empty = embedded defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = draw from entropy)")
	flag.Parse()

	driver.SetLogWriter(os.Stderr)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("lander-contest: %v", err)
	}
	doc, err := paramsio.Load(*paramsPath)
	if err != nil {
		log.Fatalf("lander-contest: %v", err)
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

	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	polyline, err := readPolyline(in)
	if err != nil {
		log.Fatalf("lander-contest: %v", err)
	}
	ground, err := physics.NewGround(polyline)
	if err != nil {
		log.Fatalf("lander-contest: %v", err)
	}

	initialBudget := time.Duration(cfg.Contest.InitialBudgetMillis) * time.Millisecond
	turnBudget := time.Duration(cfg.Contest.TurnBudgetMillis) * time.Millisecond

	var d *driver.Driver
	turn := 0
	for {
		state, err := readState(in)
		if err != nil {
			return
		}

		var decision simstate.Decision
		if turn == 0 {
			d = driver.New(ground, state, doc.Params, cfg.Workers.Count, rng)
			defer d.Close()
			decision, err = d.RunOnlineInitial(state, initialBudget)
		} else {
			decision, err = d.RunOnlineTurn(state, turnBudget)
		}
		if err != nil {
			log.Fatalf("lander-contest: turn %d: %v", turn, err)
		}

		fmt.Fprintf(out, "%d %d\n", decision.Rotate, decision.Power)
		out.Flush()
		turn++
	}
}

func readPolyline(in *bufio.Reader) ([]geometry.Point, error) {
	var n int
	if _, err := fmt.Fscan(in, &n); err != nil {
		return nil, fmt.Errorf("reading vertex count: %w", err)
	}
	points := make([]geometry.Point, n)
	for i := 0; i < n; i++ {
		var x, y int
		if _, err := fmt.Fscan(in, &x, &y); err != nil {
			return nil, fmt.Errorf("reading vertex %d: %w", i, err)
		}
		points[i] = geometry.Point{X: float64(x), Y: float64(y)}
	}
	return points, nil
}

func readState(in *bufio.Reader) (simstate.State, error) {
	var x, y, vx, vy, fuel, rotate, power int
	if _, err := fmt.Fscan(in, &x, &y, &vx, &vy, &fuel, &rotate, &power); err != nil {
		return simstate.State{}, err
	}
	return simstate.State{
		Position: geometry.Point{X: float64(x), Y: float64(y)},
		Velocity: geometry.Point{X: float64(vx), Y: float64(vy)},
		Fuel:     float64(fuel),
		Rotate:   float64(rotate),
		Power:    float64(power),
	}, nil
}
