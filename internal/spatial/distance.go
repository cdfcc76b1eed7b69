package spatial

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// Distance calculates the planar Euclidean distance between two canvas points
func Distance(a, b r2.Point) float64 {
	return b.Sub(a).Norm()
}

// Lerp interpolates between a and b; t=0 gives a, t=1 gives b
func Lerp(a, b r2.Point, t float64) r2.Point {
	return a.Add(b.Sub(a).Mul(t))
}

// DistanceToSegment returns the distance from p to the closed segment [a, b]
func DistanceToSegment(p, a, b r2.Point) float64 {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den == 0 {
		return Distance(p, a)
	}

	t := p.Sub(a).Dot(ab) / den
	t = math.Max(0, math.Min(1, t))
	return Distance(p, Lerp(a, b, t))
}

// Bearing returns the angle of the vector from -> to, normalized to [0, 2π).
// Canvas y grows downward, so angles increase clockwise on screen.
func Bearing(from, to r2.Point) s1.Angle {
	d := to.Sub(from)
	return NormalizeAngle(s1.Angle(math.Atan2(d.Y, d.X)))
}

// NormalizeAngle maps an angle to [0, 2π)
func NormalizeAngle(a s1.Angle) s1.Angle {
	r := math.Mod(a.Radians(), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return s1.Angle(r)
}

// AngleWithin reports whether a lies on the arc from start to end, sweeping
// in the increasing direction. An arc whose end is below its start wraps
// through zero; an arc spanning 2π or more covers every angle.
func AngleWithin(a, start, end s1.Angle) bool {
	if end-start >= 2*math.Pi {
		return true
	}
	a, start, end = NormalizeAngle(a), NormalizeAngle(start), NormalizeAngle(end)
	if start <= end {
		return a >= start && a <= end
	}
	return a >= start || a <= end
}
