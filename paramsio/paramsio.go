// Package paramsio reads and writes ga_params.ini, the ordered-value text
// format original_source persists its GA tunables in (spec.md §6). It is
// deliberately a plain line-oriented format, distinct from the YAML
// engine config in package config — this file is meant to be hand-edited
// between contest runs the way the original tool's UI wrote it.
package paramsio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pthm-cable/lander/params"
)

// RunPolicy holds the run-control fields of ga_params.ini, on top of the
// shared fitness/engine Params. cmd/lander-offline uses GenerationCap as
// its default cap; the two keep-running flags are read and written but
// nothing acts on them, and the driver always stops on a landing.
type RunPolicy struct {
	GenerationCap           int
	KeepRunningAfterSolution bool
	KeepRunningAfterMax      bool
}

// Document is the full contents of a ga_params.ini file.
type Document struct {
	Policy RunPolicy
	Params params.Params
}

// Default returns the policy original_source ships with (no generation
// cap, stop as soon as a solution lands) paired with params.Default.
func Default() Document {
	return Document{
		Policy: RunPolicy{GenerationCap: 0, KeepRunningAfterSolution: false, KeepRunningAfterMax: false},
		Params: params.Default(),
	}
}

// Load reads ga_params.ini from path. A missing file is not an error: it
// returns Default(), matching the original tool's first-run behavior.
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Document{}, fmt.Errorf("paramsio: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the ordered fields from r: generation cap,
// keep-running-after-solution flag, keep-running-after-max flag,
// population size, mutation rate, elitism rate, fuel weight, distance
// weight, vspeed weight, hspeed weight, rotation weight, elite
// multiplier, stdev threshold — one value per line.
func Parse(r io.Reader) (Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var doc Document

	readInt := func(field string) (int, error) {
		if !scanner.Scan() {
			return 0, fmt.Errorf("paramsio: reading %s: %w", field, scanner.Err())
		}
		var v int
		if _, err := fmt.Sscanf(scanner.Text(), "%d", &v); err != nil {
			return 0, fmt.Errorf("paramsio: parsing %s %q: %w", field, scanner.Text(), err)
		}
		return v, nil
	}
	readFloat := func(field string) (float64, error) {
		if !scanner.Scan() {
			return 0, fmt.Errorf("paramsio: reading %s: %w", field, scanner.Err())
		}
		var v float64
		if _, err := fmt.Sscanf(scanner.Text(), "%g", &v); err != nil {
			return 0, fmt.Errorf("paramsio: parsing %s %q: %w", field, scanner.Text(), err)
		}
		return v, nil
	}
	readBool := func(field string) (bool, error) {
		v, err := readInt(field)
		if err != nil {
			return false, err
		}
		return v != 0, nil
	}

	var err error
	if doc.Policy.GenerationCap, err = readInt("generation_cap"); err != nil {
		return Document{}, err
	}
	if doc.Policy.KeepRunningAfterSolution, err = readBool("keep_running_after_solution"); err != nil {
		return Document{}, err
	}
	if doc.Policy.KeepRunningAfterMax, err = readBool("keep_running_after_max"); err != nil {
		return Document{}, err
	}
	if doc.Params.PopulationSize, err = readInt("population_size"); err != nil {
		return Document{}, err
	}
	if doc.Params.MutationRate, err = readFloat("mutation_rate"); err != nil {
		return Document{}, err
	}
	if doc.Params.ElitismRate, err = readFloat("elitism_rate"); err != nil {
		return Document{}, err
	}
	if doc.Params.FuelWeight, err = readFloat("fuel_weight"); err != nil {
		return Document{}, err
	}
	if doc.Params.DistanceWeight, err = readFloat("distance_weight"); err != nil {
		return Document{}, err
	}
	if doc.Params.VSpeedWeight, err = readFloat("vspeed_weight"); err != nil {
		return Document{}, err
	}
	if doc.Params.HSpeedWeight, err = readFloat("hspeed_weight"); err != nil {
		return Document{}, err
	}
	if doc.Params.RotationWeight, err = readFloat("rotation_weight"); err != nil {
		return Document{}, err
	}
	if doc.Params.EliteMultiplier, err = readFloat("elite_multiplier"); err != nil {
		return Document{}, err
	}
	if doc.Params.StdevThreshold, err = readFloat("stdev_threshold"); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Write persists doc to path in the same ordered, one-value-per-line
// format Parse expects.
func Write(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("paramsio: create %s: %w", path, err)
	}
	defer f.Close()
	return Encode(f, doc)
}

// Encode writes doc to w.
func Encode(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	boolInt := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	fmt.Fprintln(bw, doc.Policy.GenerationCap)
	fmt.Fprintln(bw, boolInt(doc.Policy.KeepRunningAfterSolution))
	fmt.Fprintln(bw, boolInt(doc.Policy.KeepRunningAfterMax))
	fmt.Fprintln(bw, doc.Params.PopulationSize)
	fmt.Fprintln(bw, doc.Params.MutationRate)
	fmt.Fprintln(bw, doc.Params.ElitismRate)
	fmt.Fprintln(bw, doc.Params.FuelWeight)
	fmt.Fprintln(bw, doc.Params.DistanceWeight)
	fmt.Fprintln(bw, doc.Params.VSpeedWeight)
	fmt.Fprintln(bw, doc.Params.HSpeedWeight)
	fmt.Fprintln(bw, doc.Params.RotationWeight)
	fmt.Fprintln(bw, doc.Params.EliteMultiplier)
	fmt.Fprintln(bw, doc.Params.StdevThreshold)
	return bw.Flush()
}
