package spatial

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

var (
	// ErrEmptyPath is returned when a path is built without waypoints
	ErrEmptyPath = errors.New("path needs at least one waypoint")
	// ErrInvalidWaypoint is returned for NaN or infinite coordinates
	ErrInvalidWaypoint = errors.New("invalid waypoint")
)

// Segment is one leg of a Path with its precomputed Euclidean length
type Segment struct {
	Start  r2.Point
	End    r2.Point
	Length float64
}

// Path is an immutable polyline corridor in canvas coordinates.
// Segment order matches waypoint order and the total length is the sum of
// the segment lengths.
type Path struct {
	waypoints []r2.Point
	segments  []Segment
	total     float64
}

// NewPath builds a path from its ordered waypoints
func NewPath(waypoints []r2.Point) (*Path, error) {
	if len(waypoints) == 0 {
		return nil, ErrEmptyPath
	}

	wp := make([]r2.Point, len(waypoints))
	for i, w := range waypoints {
		if !finite(w.X) || !finite(w.Y) {
			return nil, fmt.Errorf("%w: index %d (%v, %v)", ErrInvalidWaypoint, i, w.X, w.Y)
		}
		wp[i] = w
	}

	segments := make([]Segment, 0, len(wp)-1)
	var total float64
	for i := 1; i < len(wp); i++ {
		length := Distance(wp[i-1], wp[i])
		segments = append(segments, Segment{Start: wp[i-1], End: wp[i], Length: length})
		total += length
	}

	return &Path{waypoints: wp, segments: segments, total: total}, nil
}

// Waypoints returns a copy of the path's waypoints
func (p *Path) Waypoints() []r2.Point {
	out := make([]r2.Point, len(p.waypoints))
	copy(out, p.waypoints)
	return out
}

// Segments returns a copy of the derived segments
func (p *Path) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// TotalLength returns the summed length of all segments
func (p *Path) TotalLength() float64 {
	return p.total
}

// ArcLengthAt returns the distance travelled along the path at the given progress
func (p *Path) ArcLengthAt(progress float64) float64 {
	return ClampProgress(progress) / 100 * p.total
}

// PositionAlongPath converts a progress value in [0, 100] into a point on the path.
// The containing segment is the first one whose cumulative length reaches the
// target distance; inside it the position is linearly interpolated.
func (p *Path) PositionAlongPath(progress float64) r2.Point {
	target := p.ArcLengthAt(progress)

	var before float64
	for _, seg := range p.segments {
		if before+seg.Length >= target {
			t := 0.0
			if seg.Length > 0 {
				t = (target - before) / seg.Length
			}
			return Lerp(seg.Start, seg.End, t)
		}
		before += seg.Length
	}

	// Only reachable through rounding at progress 100
	return p.waypoints[len(p.waypoints)-1]
}

// Sample returns n+1 evenly spaced positions from progress 0 to 100
func (p *Path) Sample(n int) []r2.Point {
	if n < 1 {
		n = 1
	}
	points := make([]r2.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		points = append(points, p.PositionAlongPath(float64(i)*100/float64(n)))
	}
	return points
}

// DistanceTo returns the shortest distance from pt to the polyline
func (p *Path) DistanceTo(pt r2.Point) float64 {
	if len(p.segments) == 0 {
		return Distance(pt, p.waypoints[0])
	}
	best := math.Inf(1)
	for _, seg := range p.segments {
		if d := DistanceToSegment(pt, seg.Start, seg.End); d < best {
			best = d
		}
	}
	return best
}

// BoundingBox returns the rectangle enclosing the waypoints
func (p *Path) BoundingBox() r2.Rect {
	return r2.RectFromPoints(p.waypoints...)
}

// ClampProgress limits progress to [0, 100]; NaN maps to 0
func ClampProgress(progress float64) float64 {
	switch {
	case math.IsNaN(progress), progress < 0:
		return 0
	case progress > 100:
		return 100
	}
	return progress
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
