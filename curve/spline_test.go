package curve

import (
	"testing"

	"go.viam.com/test"
)

func TestSpline1DInterpolatesKnots(t *testing.T) {
	t.Parallel()
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1, 4, 9, 16}
	s, err := NewSpline1D(x, y)
	test.That(t, err, test.ShouldBeNil)

	for i := range x {
		test.That(t, s.Value(x[i]), test.ShouldAlmostEqual, y[i], 1e-9)
	}
}

func TestSpline1DNaturalBoundary(t *testing.T) {
	t.Parallel()
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 2, 1, 3}
	s, err := NewSpline1D(x, y)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.c[0], test.ShouldAlmostEqual, 0, 1e-9)
	test.That(t, s.c[len(s.c)-1], test.ShouldAlmostEqual, 0, 1e-9)
}

func TestSpline1DC2Continuity(t *testing.T) {
	t.Parallel()
	x := []float64{0, 1, 2.5, 4, 6}
	y := []float64{0, 3, -1, 2, 5}
	s, err := NewSpline1D(x, y)
	test.That(t, err, test.ShouldBeNil)

	for i := 1; i < len(x)-1; i++ {
		knot := x[i]
		const eps = 1e-6
		d1Left, d1Right := s.D1(knot-eps), s.D1(knot+eps)
		d2Left, d2Right := s.D2(knot-eps), s.D2(knot+eps)
		test.That(t, d1Left, test.ShouldAlmostEqual, d1Right, 1e-3)
		test.That(t, d2Left, test.ShouldAlmostEqual, d2Right, 1e-3)
	}
}

func TestSpline1DOutsideDomainIsZero(t *testing.T) {
	t.Parallel()
	x := []float64{0, 1, 2}
	y := []float64{0, 1, 0}
	s, err := NewSpline1D(x, y)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.Value(-1), test.ShouldEqual, 0)
	test.That(t, s.Value(3), test.ShouldEqual, 0)
}

func TestSpline1DRejectsTooFewPoints(t *testing.T) {
	t.Parallel()
	_, err := NewSpline1D([]float64{0, 1}, []float64{0, 1})
	test.That(t, err, test.ShouldEqual, ErrTooFewPoints)
}

func TestSpline1DRejectsNonMonotone(t *testing.T) {
	t.Parallel()
	_, err := NewSpline1D([]float64{0, 1, 1, 2}, []float64{0, 1, 1, 2})
	test.That(t, err, test.ShouldEqual, ErrNonMonotone)
}

func TestSpline2DArcLengthMonotone(t *testing.T) {
	t.Parallel()
	wps := []Waypoint{{0, 0}, {10, 0}, {20, 5}, {30, 5}, {40, 0}}
	c, err := NewSpline2D(wps)
	test.That(t, err, test.ShouldBeNil)
	for i := 1; i < len(c.s); i++ {
		test.That(t, c.s[i], test.ShouldBeGreaterThan, c.s[i-1])
	}
}

func TestSpline2DReproducesWaypoints(t *testing.T) {
	t.Parallel()
	wps := []Waypoint{{0, 0}, {10, 0}, {20, 0}, {30, 0}, {40, 0}}
	c, err := NewSpline2D(wps)
	test.That(t, err, test.ShouldBeNil)
	for i, s := range c.s {
		x, y := c.Position(s)
		test.That(t, x, test.ShouldAlmostEqual, wps[i].X, 1e-6)
		test.That(t, y, test.ShouldAlmostEqual, wps[i].Y, 1e-6)
	}
}

func TestSpline2DStraightLineHasZeroCurvature(t *testing.T) {
	t.Parallel()
	wps := []Waypoint{{0, 0}, {10, 0}, {20, 0}, {30, 0}}
	c, err := NewSpline2D(wps)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.Curvature(15), test.ShouldAlmostEqual, 0, 1e-6)
}
