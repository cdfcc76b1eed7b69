package spatial

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func corridor(t *testing.T) *Path {
	t.Helper()
	p, err := NewPath([]r2.Point{
		{X: 40, Y: 330},
		{X: 200, Y: 290},
		{X: 320, Y: 230},
		{X: 320, Y: 230}, // zero-length leg
		{X: 480, Y: 170},
		{X: 760, Y: 90},
	})
	require.NoError(t, err)
	return p
}

func TestNewPath(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := NewPath(nil)
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("rejects NaN waypoint", func(t *testing.T) {
		_, err := NewPath([]r2.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}})
		assert.ErrorIs(t, err, ErrInvalidWaypoint)
	})

	t.Run("segments follow waypoint order", func(t *testing.T) {
		p := corridor(t)
		wps := p.Waypoints()
		segs := p.Segments()
		require.Len(t, segs, len(wps)-1)

		var sum float64
		for i, s := range segs {
			assert.Equal(t, wps[i], s.Start)
			assert.Equal(t, wps[i+1], s.End)
			assert.InDelta(t, Distance(s.Start, s.End), s.Length, eps)
			sum += s.Length
		}
		assert.InDelta(t, sum, p.TotalLength(), eps)
	})

	t.Run("copies input", func(t *testing.T) {
		in := []r2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
		p, err := NewPath(in)
		require.NoError(t, err)
		in[1] = r2.Point{X: 99, Y: 99}
		assert.InDelta(t, 10.0, p.TotalLength(), eps)
	})
}

func TestPositionAlongPath(t *testing.T) {
	t.Parallel()
	p := corridor(t)
	wps := p.Waypoints()

	t.Run("endpoints", func(t *testing.T) {
		start := p.PositionAlongPath(0)
		end := p.PositionAlongPath(100)
		assert.InDelta(t, wps[0].X, start.X, eps)
		assert.InDelta(t, wps[0].Y, start.Y, eps)
		assert.InDelta(t, wps[len(wps)-1].X, end.X, 1e-6)
		assert.InDelta(t, wps[len(wps)-1].Y, end.Y, 1e-6)
	})

	t.Run("stays on the polyline", func(t *testing.T) {
		for i := 0; i <= 1000; i++ {
			pos := p.PositionAlongPath(float64(i) / 10)
			assert.InDelta(t, 0, p.DistanceTo(pos), 1e-6, "progress %v", float64(i)/10)
		}
	})

	t.Run("arc length is monotonic", func(t *testing.T) {
		prev := -1.0
		for i := 0; i <= 200; i++ {
			progress := float64(i) / 2
			arc := travelled(p, p.PositionAlongPath(progress))
			assert.GreaterOrEqual(t, arc, prev-1e-6, "progress %v", progress)
			assert.InDelta(t, p.ArcLengthAt(progress), arc, 1e-6)
			prev = arc
		}
	})

	t.Run("halfway on a straight line", func(t *testing.T) {
		line, err := NewPath([]r2.Point{{X: 0, Y: 0}, {X: 100, Y: 0}})
		require.NoError(t, err)
		mid := line.PositionAlongPath(50)
		assert.InDelta(t, 50, mid.X, eps)
		assert.InDelta(t, 0, mid.Y, eps)
	})

	t.Run("single waypoint", func(t *testing.T) {
		dot, err := NewPath([]r2.Point{{X: 7, Y: 3}})
		require.NoError(t, err)
		assert.Equal(t, r2.Point{X: 7, Y: 3}, dot.PositionAlongPath(0))
		assert.Equal(t, r2.Point{X: 7, Y: 3}, dot.PositionAlongPath(100))
		assert.Zero(t, dot.TotalLength())
	})

	t.Run("all segments degenerate", func(t *testing.T) {
		same, err := NewPath([]r2.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}})
		require.NoError(t, err)
		assert.Equal(t, r2.Point{X: 1, Y: 1}, same.PositionAlongPath(60))
	})

	t.Run("out of range progress is clamped", func(t *testing.T) {
		assert.Equal(t, p.PositionAlongPath(0), p.PositionAlongPath(-5))
		assert.Equal(t, p.PositionAlongPath(100), p.PositionAlongPath(250))
		assert.Equal(t, p.PositionAlongPath(0), p.PositionAlongPath(math.NaN()))
	})
}

func TestSample(t *testing.T) {
	t.Parallel()
	p := corridor(t)

	pts := p.Sample(4)
	require.Len(t, pts, 5)
	assert.Equal(t, p.PositionAlongPath(0), pts[0])
	assert.Equal(t, p.PositionAlongPath(50), pts[2])
	assert.Len(t, p.Sample(0), 2)
}

func TestDistanceToSegment(t *testing.T) {
	t.Parallel()
	a, b := r2.Point{X: 0, Y: 0}, r2.Point{X: 10, Y: 0}

	assert.InDelta(t, 5, DistanceToSegment(r2.Point{X: 5, Y: 5}, a, b), eps)
	assert.InDelta(t, 5, DistanceToSegment(r2.Point{X: -3, Y: 4}, a, b), eps)
	assert.InDelta(t, 5, DistanceToSegment(r2.Point{X: 3, Y: 4}, a, a), eps)
}

func TestAngleWithin(t *testing.T) {
	t.Parallel()
	deg := func(d float64) s1.Angle { return s1.Angle(d * math.Pi / 180) }

	tests := []struct {
		name              string
		angle, start, end float64
		want              bool
	}{
		{"inside plain arc", 90, 0, 120, true},
		{"outside plain arc", 130, 0, 120, false},
		{"on start edge", 120, 120, 240, true},
		{"wrapping arc high side", 350, 300, 60, true},
		{"wrapping arc low side", 30, 300, 60, true},
		{"outside wrapping arc", 180, 300, 60, false},
		{"negative angle", -10, 300, 60, true},
		{"full circle", 200, 0, 361, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AngleWithin(deg(tt.angle), deg(tt.start), deg(tt.end)))
		})
	}
}

func TestBearing(t *testing.T) {
	t.Parallel()
	o := r2.Point{X: 100, Y: 100}

	assert.InDelta(t, 0, Bearing(o, r2.Point{X: 200, Y: 100}).Radians(), eps)
	assert.InDelta(t, math.Pi/2, Bearing(o, r2.Point{X: 100, Y: 200}).Radians(), eps)
	assert.InDelta(t, 3*math.Pi/2, Bearing(o, r2.Point{X: 100, Y: 0}).Radians(), eps)
}

// travelled projects pos onto the path and returns the arc length up to it
func travelled(p *Path, pos r2.Point) float64 {
	var before float64
	for _, s := range p.Segments() {
		if DistanceToSegment(pos, s.Start, s.End) < 1e-6 {
			return before + Distance(s.Start, pos)
		}
		before += s.Length
	}
	return math.NaN()
}
