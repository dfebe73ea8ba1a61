package simstate

import (
	"math"

	"github.com/pthm-cable/lander/geometry"
)

// Decide turns a gene into a Decision for the given state, per spec.md
// §4.C. When the ship's predicted straight-line motion this tick would
// cross the pad, the decoder commits to a vertical landing attempt
// (rotate 0, hold power) regardless of what the gene encodes — the
// "landing alignment gate".
func Decide(state State, gene Gene, pad geometry.Segment) Decision {
	predicted := geometry.Segment{
		Start: state.Position,
		End: geometry.Point{
			X: state.Position.X + state.Velocity.X,
			Y: state.Position.Y + state.Velocity.Y,
		},
	}

	if geometry.SegmentsIntersect(predicted, pad) {
		return Decision{
			Rotate: 0,
			Power:  int(math.Round(state.Power)),
		}
	}

	rotTarget := state.Rotate + gene.R*30 - 15
	powTarget := math.Floor(state.Power+gene.P*3) - 1

	rotTarget = clamp(rotTarget, -MaxRotation, MaxRotation)
	powTarget = clamp(powTarget, 0, MaxPower)

	return Decision{
		Rotate: clampInt(int(math.Round(rotTarget)), -MaxRotation, MaxRotation),
		Power:  clampInt(int(powTarget), 0, MaxPower),
	}
}
