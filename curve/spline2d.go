package curve

import "math"

// Waypoint is a single (x, y) sample of the reference centerline.
type Waypoint struct {
	X, Y float64
}

// Spline2D parameterizes a pair of natural cubic splines by cumulative arc
// length s, giving position, yaw, and curvature at any s along the
// reference curve (spec §3, §4.B).
type Spline2D struct {
	s      []float64
	sx, sy *Spline1D
}

// NewSpline2D builds a Spline2D from an ordered, non-degenerate waypoint
// list. Arc length is accumulated as piecewise Euclidean distance:
// s_0 = 0, s_i = s_{i-1} + ||p_i - p_{i-1}||.
func NewSpline2D(waypoints []Waypoint) (*Spline2D, error) {
	n := len(waypoints)
	if n < 3 {
		return nil, ErrTooFewPoints
	}

	s := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	xs[0] = waypoints[0].X
	ys[0] = waypoints[0].Y
	for i := 1; i < n; i++ {
		dx := waypoints[i].X - waypoints[i-1].X
		dy := waypoints[i].Y - waypoints[i-1].Y
		dist := math.Hypot(dx, dy)
		if dist <= 0 {
			return nil, ErrNonMonotone
		}
		s[i] = s[i-1] + dist
		xs[i] = waypoints[i].X
		ys[i] = waypoints[i].Y
	}

	sx, err := NewSpline1D(s, xs)
	if err != nil {
		return nil, err
	}
	sy, err := NewSpline1D(s, ys)
	if err != nil {
		return nil, err
	}

	return &Spline2D{s: s, sx: sx, sy: sy}, nil
}

// Position returns (x, y) at arc length s.
func (c *Spline2D) Position(s float64) (x, y float64) {
	return c.sx.Value(s), c.sy.Value(s)
}

// Yaw returns atan2(dy/ds, dx/ds) at arc length s.
func (c *Spline2D) Yaw(s float64) float64 {
	return math.Atan2(c.sy.D1(s), c.sx.D1(s))
}

// Curvature returns the signed curvature (x'y'' - y'x'') / (x'^2+y'^2)^(3/2)
// at arc length s. §9 resolves the spec's ambiguous-divisor open question in
// favor of this standard formula.
func (c *Spline2D) Curvature(s float64) float64 {
	dx := c.sx.D1(s)
	dy := c.sy.D1(s)
	ddx := c.sx.D2(s)
	ddy := c.sy.D2(s)
	denom := math.Pow(dx*dx+dy*dy, 1.5)
	if denom == 0 {
		return 0
	}
	return (dx*ddy - dy*ddx) / denom
}

// ArcLength returns the total arc length spanned by the reference curve.
func (c *Spline2D) ArcLength() float64 {
	return c.s[len(c.s)-1]
}
