// Package curve implements the natural cubic spline (1D and 2D) used as the
// reference-centerline representation: §4.B of the planner spec.
package curve

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Spline1D is a natural cubic spline: piecewise cubic, C2 continuous, with
// zero second derivative at both endpoints. Queries outside [x[0], x[n-1]]
// return 0, per spec.
type Spline1D struct {
	x          []float64
	a, b, c, d []float64 // per-segment coefficients: a, b, d have len(x)-1 entries; c has len(x) (one per knot, c[0] = c[n-1] = 0)
}

// NewSpline1D builds a natural cubic spline over strictly increasing x with
// paired y. Requires n >= 3 points.
func NewSpline1D(x, y []float64) (*Spline1D, error) {
	if len(x) != len(y) {
		return nil, ErrMismatchedLength
	}
	n := len(x)
	if n < 3 {
		return nil, ErrTooFewPoints
	}
	h := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = x[i+1] - x[i]
		if h[i] <= 0 {
			return nil, ErrNonMonotone
		}
	}

	c, err := solveSecondDerivatives(h, y)
	if err != nil {
		return nil, errors.Wrap(err, "curve: solving tridiagonal system for spline coefficients")
	}

	a := make([]float64, n-1)
	b := make([]float64, n-1)
	d := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		a[i] = y[i]
		d[i] = (c[i+1] - c[i]) / (3 * h[i])
		b[i] = (y[i+1]-y[i])/h[i] - h[i]*(c[i+1]+2*c[i])/3
	}

	return &Spline1D{x: append([]float64{}, x...), a: a, b: b, c: c, d: d}, nil
}

// solveSecondDerivatives assembles and solves the symmetric tridiagonal
// system of spec §4.B for the knot second derivatives c_i, with natural
// boundary conditions c_0 = c_{n-1} = 0. The system is solved generally for
// any n >= 3 via gonum, rather than a hard-coded n=5 closed form (see §9:
// "a reimplementation MUST build a general tridiagonal solver").
func solveSecondDerivatives(h, y []float64) ([]float64, error) {
	n := len(y)
	A := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)

	A.Set(0, 0, 1)
	A.Set(n-1, n-1, 1)
	for i := 1; i < n-1; i++ {
		A.Set(i, i-1, h[i-1])
		A.Set(i, i, 2*(h[i-1]+h[i]))
		A.Set(i, i+1, h[i])
		rhs.SetVec(i, 3*((y[i+1]-y[i])/h[i]-(y[i]-y[i-1])/h[i-1]))
	}

	var cVec mat.VecDense
	if err := cVec.SolveVec(A, rhs); err != nil {
		return nil, err
	}
	c := make([]float64, n)
	for i := 0; i < n; i++ {
		c[i] = cVec.AtVec(i)
	}
	return c, nil
}

// segment returns the index i such that x[i] <= t < x[i+1], or -1 if t is
// outside [x[0], x[n-1]].
func (s *Spline1D) segment(t float64) int {
	n := len(s.x)
	if t < s.x[0] || t > s.x[n-1] {
		return -1
	}
	// sort.Search finds the first index where x[idx] > t.
	idx := sort.Search(n, func(i int) bool { return s.x[i] > t })
	i := idx - 1
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}
	return i
}

// Value returns the spline's value at t, or 0 outside its domain.
func (s *Spline1D) Value(t float64) float64 {
	i := s.segment(t)
	if i < 0 {
		return 0
	}
	dx := t - s.x[i]
	return s.a[i] + s.b[i]*dx + s.c[i]*dx*dx + s.d[i]*dx*dx*dx
}

// D1 returns the spline's first derivative at t, or 0 outside its domain.
func (s *Spline1D) D1(t float64) float64 {
	i := s.segment(t)
	if i < 0 {
		return 0
	}
	dx := t - s.x[i]
	return s.b[i] + 2*s.c[i]*dx + 3*s.d[i]*dx*dx
}

// D2 returns the spline's second derivative at t, or 0 outside its domain.
func (s *Spline1D) D2(t float64) float64 {
	i := s.segment(t)
	if i < 0 {
		return 0
	}
	dx := t - s.x[i]
	return 2*s.c[i] + 6*s.d[i]*dx
}

// D3 returns the spline's third derivative at t (constant per segment), or 0
// outside its domain.
func (s *Spline1D) D3(t float64) float64 {
	i := s.segment(t)
	if i < 0 {
		return 0
	}
	return 6 * s.d[i]
}

// Domain returns the spline's valid [x0, xn-1] range.
func (s *Spline1D) Domain() (lo, hi float64) {
	return s.x[0], s.x[len(s.x)-1]
}
