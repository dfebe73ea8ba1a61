package physics

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/lander/geometry"
)

// ErrDegenerateTerrain is returned when a polyline has fewer than two
// vertices.
var ErrDegenerateTerrain = errors.New("physics: terrain polyline has fewer than two vertices")

// ErrNoLandingPad is returned when no consecutive pair of vertices shares a
// y-coordinate, so no horizontal landing segment can be identified.
var ErrNoLandingPad = errors.New("physics: no horizontal landing pad found in terrain")

// Ground is the immutable terrain polyline plus its derived landing pad and
// scan-skip cutoff. Once built it is shared read-only across every
// simulation invocation for a problem instance (spec.md §3 ownership).
type Ground struct {
	Points   []geometry.Point
	PadIndex int
	Pad      geometry.Segment
	YCutoff  float64
}

// NewGround validates a terrain polyline and locates its unique landing
// pad: the first consecutive pair of vertices with equal y, scanned
// left to right, exactly as original_source/src/individual.cpp's
// find_landing_site_ does.
func NewGround(points []geometry.Point) (*Ground, error) {
	if len(points) < 2 {
		return nil, ErrDegenerateTerrain
	}

	yCutoff := points[0].Y
	padIndex := -1
	for i := 0; i < len(points)-1; i++ {
		if points[i].Y > yCutoff {
			yCutoff = points[i].Y
		}
		if padIndex == -1 && points[i].Y == points[i+1].Y {
			if points[i].X >= points[i+1].X {
				return nil, fmt.Errorf("physics: pad segment at index %d is not left-to-right", i)
			}
			padIndex = i
		}
	}
	if points[len(points)-1].Y > yCutoff {
		yCutoff = points[len(points)-1].Y
	}

	if padIndex == -1 {
		return nil, ErrNoLandingPad
	}

	return &Ground{
		Points:   points,
		PadIndex: padIndex,
		Pad:      geometry.Segment{Start: points[padIndex], End: points[padIndex+1]},
		YCutoff:  yCutoff,
	}, nil
}
