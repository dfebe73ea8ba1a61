// Package replaydump serializes a finished episode to JSON so cmd/replay
// can step through it without re-running the simulator.
package replaydump

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pthm-cable/lander/geometry"
	"github.com/pthm-cable/lander/physics"
	"github.com/pthm-cable/lander/simstate"
)

// Dump is the on-disk record of one episode: the ground it flew over and
// the trajectory it produced.
type Dump struct {
	Ground    []geometry.Point    `json:"ground"`
	PadIndex  int                 `json:"pad_index"`
	States    []simstate.State    `json:"states"`
	Decisions []simstate.Decision `json:"decisions"`
	Status    string              `json:"status"`
	Score     float64             `json:"score"`
}

// FromTrajectory builds a Dump from a finished trajectory, the ground it
// ran over, and the fitness score the driver assigned it.
func FromTrajectory(ground *physics.Ground, traj physics.Trajectory, score float64) Dump {
	return Dump{
		Ground:    ground.Points,
		PadIndex:  ground.PadIndex,
		States:    traj.States,
		Decisions: traj.Decisions,
		Status:    traj.Status.String(),
		Score:     score,
	}
}

// Write encodes a Dump as indented JSON to path.
func Write(path string, d Dump) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replaydump: creating %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("replaydump: encoding %s: %w", path, err)
	}
	return nil
}

// Load reads a Dump previously written by Write.
func Load(path string) (Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dump{}, fmt.Errorf("replaydump: opening %s: %w", path, err)
	}
	defer f.Close()

	var d Dump
	if err := json.NewDecoder(f).Decode(&d); err != nil {
		return Dump{}, fmt.Errorf("replaydump: decoding %s: %w", path, err)
	}
	if len(d.States) == 0 {
		return Dump{}, fmt.Errorf("replaydump: %s has no states", path)
	}
	return d, nil
}
