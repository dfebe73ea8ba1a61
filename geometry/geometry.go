// Package geometry provides pure 2-D segment and point primitives used by
// the physics simulator to detect ground crossings and by the fitness
// evaluator to score distance to the landing pad.
package geometry

import "math"

// Point is a coordinate in the world plane.
type Point struct {
	X, Y float64
}

// Segment is an oriented line segment between two points.
type Segment struct {
	Start, End Point
}

// Midpoint returns the midpoint of a segment.
func Midpoint(s Segment) Point {
	return Point{
		X: (s.Start.X + s.End.X) / 2,
		Y: (s.Start.Y + s.End.Y) / 2,
	}
}

// SignedAreaDoubled returns twice the signed area of the triangle (p1, p2, p3).
// Its sign gives the orientation of p3 relative to the directed line p1->p2.
func SignedAreaDoubled(p1, p2, p3 Point) float64 {
	return (p2.X-p1.X)*(p3.Y-p1.Y) - (p2.Y-p1.Y)*(p3.X-p1.X)
}

// SegmentsIntersect reports whether s1 and s2 cross as a proper crossing.
// Collinear overlaps and shared-endpoint touches are not proper crossings:
// both pairs of orientations must be strictly opposite in sign.
func SegmentsIntersect(s1, s2 Segment) bool {
	a1 := SignedAreaDoubled(s1.Start, s1.End, s2.Start)
	a2 := SignedAreaDoubled(s1.Start, s1.End, s2.End)
	a3 := SignedAreaDoubled(s2.Start, s2.End, s1.Start)
	a4 := SignedAreaDoubled(s2.Start, s2.End, s1.End)

	return a1*a2 < 0 && a3*a4 < 0
}

// Intersection returns the point where s1 and s2 properly cross, using the
// parametric form (t,u) in [0,1]^2. It returns ok=false when the segments
// are parallel (zero determinant) or when t or u falls outside [0,1]. The
// interval is closed, so unlike SegmentsIntersect a touch at an endpoint
// (t or u exactly 0 or 1) is reported as an intersection.
func Intersection(s1, s2 Segment) (p Point, ok bool) {
	x1, y1 := s1.Start.X, s1.Start.Y
	x2, y2 := s1.End.X, s1.End.Y
	x3, y3 := s2.Start.X, s2.Start.Y
	x4, y4 := s2.End.X, s2.End.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return Point{}, false
	}

	tNum := (x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)
	uNum := (x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)

	t := tNum / denom
	u := uNum / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	return Point{
		X: x1 + t*(x2-x1),
		Y: y1 + t*(y2-y1),
	}, true
}

// DistanceSquaredToSegment returns the squared distance from p to the
// closest point on segment s, projecting p onto s and clamping the
// parameter to [0,1].
func DistanceSquaredToSegment(s Segment, p Point) float64 {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y

	lengthSquared := dx*dx + dy*dy
	if lengthSquared == 0 {
		ddx := p.X - s.Start.X
		ddy := p.Y - s.Start.Y
		return ddx*ddx + ddy*ddy
	}

	t := ((p.X-s.Start.X)*dx + (p.Y-s.Start.Y)*dy) / lengthSquared
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closestX := s.Start.X + t*dx
	closestY := s.Start.Y + t*dy

	ddx := p.X - closestX
	ddy := p.Y - closestY
	return ddx*ddx + ddy*ddy
}

// DistanceToSegment returns the distance from p to the closest point on s.
func DistanceToSegment(s Segment, p Point) float64 {
	return math.Sqrt(DistanceSquaredToSegment(s, p))
}
