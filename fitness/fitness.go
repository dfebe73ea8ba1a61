// Package fitness scores a completed episode using distance, speeds,
// rotation, and fuel, producing the gradient the evolutionary engine climbs
// toward a legal landing (spec.md §4.E).
package fitness

import (
	"math"

	"github.com/pthm-cable/lander/geometry"
	"github.com/pthm-cable/lander/params"
	"github.com/pthm-cable/lander/physics"
)

// worldDiagonal is d_max, the diagonal of the [0,7000]x[0,3000] world.
var worldDiagonal = math.Hypot(7000, 3000)

// Breakdown exposes every intermediate term of the scoring pipeline, useful
// for telemetry and for the monotonicity tests in spec.md §8.
type Breakdown struct {
	Distance float64
	DistScore,
	RotScore,
	VSpeedScore,
	HSpeedScore float64
	Fuel float64

	WeightedDistance,
	WeightedRotation,
	WeightedVSpeed,
	WeightedHSpeed,
	WeightedFuel float64

	Total float64
}

// Score evaluates a terminated trajectory against the pad. Gating is
// cumulative and ordered: later terms only contribute once earlier
// conditions are met, shaping a smooth path through "reach pad → stop
// rotating → land slow enough → preserve fuel".
func Score(traj physics.Trajectory, pad geometry.Segment, p params.Params) Breakdown {
	last := traj.Last()

	distance := distanceToPad(traj, pad)
	distScore := 1 - distance/worldDiagonal
	importanceDistance := distScore * distScore

	var b Breakdown
	b.Distance = distance
	b.DistScore = distScore
	b.WeightedDistance = distScore * p.DistanceWeight

	atPad := distance == 0

	rotScore := 1 - math.Abs(last.Rotate)/90
	b.RotScore = rotScore
	if atPad {
		b.WeightedRotation = rotScore * p.RotationWeight * importanceDistance
	}

	rotationZeroed := atPad && last.Rotate == 0

	vspeedScore := speedScore(math.Abs(last.Velocity.Y), 40, 200)
	b.VSpeedScore = vspeedScore
	if rotationZeroed {
		b.WeightedVSpeed = vspeedScore * vspeedScore * p.VSpeedWeight
	}

	hspeedScore := speedScore(math.Abs(last.Velocity.X), 20, 200)
	b.HSpeedScore = hspeedScore
	if rotationZeroed {
		b.WeightedHSpeed = hspeedScore * hspeedScore * p.HSpeedWeight
	}

	b.Fuel = last.Fuel
	if traj.Status == physics.Landed {
		b.WeightedFuel = last.Fuel * p.FuelWeight
	}

	b.Total = b.WeightedDistance + b.WeightedRotation + b.WeightedVSpeed + b.WeightedHSpeed + b.WeightedFuel
	return b
}

// speedScore gives 1 within the safe threshold, decaying linearly over the
// next span units past it.
func speedScore(magnitude, threshold, span float64) float64 {
	if magnitude <= threshold {
		return 1
	}
	over := magnitude - threshold
	return 1 - over/span
}

// distanceToPad is the gated distance term: exact zero whenever the ship's
// final position sits on the pad, OR the final tick's motion swept across
// the pad in one step (the "penultimate-vs-last segment swept intersection
// fix" noted in spec.md §9 — without it, an overshoot that crosses the pad
// within a single tick would otherwise score as a nonzero near-miss).
func distanceToPad(traj physics.Trajectory, pad geometry.Segment) float64 {
	last := traj.Last()

	if last.Position.Y == pad.Start.Y && withinPadRange(last.Position.X, pad) {
		return 0
	}

	if len(traj.States) >= 2 {
		penultimate := traj.States[len(traj.States)-2]
		swept := geometry.Segment{Start: penultimate.Position, End: last.Position}
		if geometry.SegmentsIntersect(swept, pad) {
			return 0
		}
	}

	return geometry.DistanceToSegment(pad, last.Position)
}

func withinPadRange(x float64, pad geometry.Segment) bool {
	lo, hi := pad.Start.X, pad.End.X
	if lo > hi {
		lo, hi = hi, lo
	}
	return x >= lo && x <= hi
}
