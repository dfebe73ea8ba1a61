// Package physics advances ship state tick by tick under the contest's
// gravity, rotation-slew, and fuel-burn rules, detects ground crossings,
// and classifies the terminal outcome of a full episode.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/pthm-cable/lander/geometry"
	"github.com/pthm-cable/lander/simstate"
)

// ErrWrongGeneCount is returned by NormalizeGenes when a gene sequence
// cannot be reconciled with the protocol-fixed length.
var ErrWrongGeneCount = errors.New("physics: gene sequence shorter than required gene count")

const degToRad = math.Pi / 180

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Step advances state by one tick under decision, returning the resulting
// state and whether the episode terminated this tick. ground is shared
// read-only across every invocation; Step performs no allocation beyond the
// returned values and is safe to call concurrently across independent
// (state, ground) pairs.
func Step(state simstate.State, decision simstate.Decision, ground *Ground) (simstate.State, TickEvent) {
	rTarget := clamp(float64(decision.Rotate), -simstate.MaxRotation, simstate.MaxRotation)
	pTarget := clamp(float64(decision.Power), 0, math.Min(simstate.MaxPower, state.Fuel))

	if diff := pTarget - state.Power; math.Abs(diff) > 1 {
		if diff > 0 {
			pTarget = state.Power + 1
		} else {
			pTarget = state.Power - 1
		}
	}
	if diff := rTarget - state.Rotate; math.Abs(diff) > simstate.MaxTurnRate {
		if diff > 0 {
			rTarget = state.Rotate + simstate.MaxTurnRate
		} else {
			rTarget = state.Rotate - simstate.MaxTurnRate
		}
	}
	pTarget = math.Min(pTarget, state.Fuel)

	theta := rTarget * degToRad

	next := simstate.State{
		Power:  pTarget,
		Fuel:   state.Fuel - pTarget,
		Rotate: rTarget,
		Velocity: geometry.Point{
			X: state.Velocity.X - pTarget*math.Sin(theta),
			Y: state.Velocity.Y + pTarget*math.Cos(theta) - simstate.Gravity,
		},
		// Position integrates the PRE-integration velocity (spec.md §4.D):
		// swapping this order breaks published solutions.
		Position: geometry.Point{
			X: state.Position.X + state.Velocity.X,
			Y: state.Position.Y + state.Velocity.Y,
		},
	}

	if next.Position.X < 0 || next.Position.X > simstate.WorldWidth ||
		next.Position.Y < 0 || next.Position.Y > simstate.WorldHeight {
		return next, TickEvent{Done: true, Status: Lost}
	}

	if next.Position.Y > ground.YCutoff {
		return next, TickEvent{Done: false}
	}

	motion := geometry.Segment{Start: state.Position, End: next.Position}
	degenerate := motion.Start == motion.End
	for i := 0; i < len(ground.Points)-1; i++ {
		seg := geometry.Segment{Start: ground.Points[i], End: ground.Points[i+1]}

		touched := false
		if degenerate {
			// A resting ship (zero velocity this tick) never produces a
			// proper crossing; fall back to an on-segment check so a ship
			// that starts already resting on the ground is still classified
			// rather than reported as still Running forever.
			touched = geometry.DistanceSquaredToSegment(seg, next.Position) == 0
		} else if p, ok := geometry.Intersection(motion, seg); ok {
			next.Position = p
			touched = true
		}
		if !touched {
			continue
		}
		isPad := i == ground.PadIndex

		var reasons CrashReason
		if !isPad {
			reasons |= UnevenGround
		}
		if next.Rotate != 0 {
			reasons |= NonZeroRotation
		}
		if math.Abs(next.Velocity.Y) > simstate.MaxVerticalSpeed {
			reasons |= VerticalTooFast
		}
		if math.Abs(next.Velocity.X) > simstate.MaxHorizontalSpeed {
			reasons |= HorizontalTooFast
		}

		status := CrashedOffPad
		if isPad {
			if reasons == 0 {
				status = Landed
			} else {
				status = CrashedOnPad
			}
		}
		return next, TickEvent{Done: true, Status: status, Reasons: reasons}
	}

	return next, TickEvent{Done: false}
}

// NormalizeGenes enforces the protocol-fixed gene count (spec.md §9):
// longer sequences are truncated, shorter sequences are rejected.
func NormalizeGenes(genes []simstate.Gene) ([]simstate.Gene, error) {
	if len(genes) < simstate.GeneCount {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrWrongGeneCount, len(genes), simstate.GeneCount)
	}
	return genes[:simstate.GeneCount], nil
}

// RunEpisode decodes and applies genes turn by turn starting from initial,
// stopping as soon as an episode-terminating tick occurs or the gene
// sequence is exhausted. A gene sequence exhausted without terminating is a
// simulation runaway and is classified CrashedOffPad with a zero reason
// bitmask (spec.md §7).
func RunEpisode(initial simstate.State, genes []simstate.Gene, ground *Ground) (Trajectory, error) {
	genes, err := NormalizeGenes(genes)
	if err != nil {
		return Trajectory{}, err
	}

	traj := Trajectory{
		States:    make([]simstate.State, 0, len(genes)+1),
		Decisions: make([]simstate.Decision, 0, len(genes)),
	}
	traj.States = append(traj.States, initial)

	state := initial
	for _, gene := range genes {
		decision := simstate.Decide(state, gene, ground.Pad)
		next, event := Step(state, decision, ground)

		traj.Decisions = append(traj.Decisions, decision)
		traj.States = append(traj.States, next)
		state = next

		if event.Done {
			traj.Status = event.Status
			traj.Reasons = event.Reasons
			return traj, nil
		}
	}

	traj.Status = CrashedOffPad
	traj.Reasons = 0
	return traj, nil
}
