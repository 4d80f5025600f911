// Package polynomial implements the quartic and quintic boundary-value
// interpolators used to generate lateral and longitudinal trajectory
// profiles: spec §4.A.
package polynomial

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrNonPositiveDuration is returned when T <= 0 is passed to a constructor.
var ErrNonPositiveDuration = errors.New("polynomial: duration T must be positive")

// Quintic is a degree-5 polynomial matching start and end (position,
// velocity, acceleration).
type Quintic struct {
	a [6]float64
	t float64
}

// NewQuintic solves the 6x6 boundary-value system for a quintic polynomial
// p with p(0)=start[0], p'(0)=start[1], p''(0)=start[2], p(T)=end[0],
// p'(T)=end[1], p''(T)=end[2].
func NewQuintic(start, end [3]float64, duration float64) (*Quintic, error) {
	if duration <= 0 {
		return nil, ErrNonPositiveDuration
	}
	t := duration
	a0, a1, a2 := start[0], start[1], start[2]/2

	t2, t3, t4, t5 := t*t, t*t*t, t*t*t*t, t*t*t*t*t
	A := mat.NewDense(3, 3, []float64{
		t3, t4, t5,
		3 * t2, 4 * t3, 5 * t4,
		6 * t, 12 * t2, 20 * t3,
	})
	b := mat.NewVecDense(3, []float64{
		end[0] - a0 - a1*t - a2*t2,
		end[1] - a1 - 2*a2*t,
		end[2] - 2*a2,
	})
	var x mat.VecDense
	if err := x.SolveVec(A, b); err != nil {
		return nil, errors.Wrap(err, "polynomial: solving quintic boundary system")
	}

	return &Quintic{a: [6]float64{a0, a1, a2, x.AtVec(0), x.AtVec(1), x.AtVec(2)}, t: t}, nil
}

// Value returns p(t).
func (q *Quintic) Value(t float64) float64 {
	a := q.a
	return a[0] + a[1]*t + a[2]*t*t + a[3]*t*t*t + a[4]*t*t*t*t + a[5]*t*t*t*t*t
}

// D1 returns p'(t).
func (q *Quintic) D1(t float64) float64 {
	a := q.a
	return a[1] + 2*a[2]*t + 3*a[3]*t*t + 4*a[4]*t*t*t + 5*a[5]*t*t*t*t
}

// D2 returns p''(t).
func (q *Quintic) D2(t float64) float64 {
	a := q.a
	return 2*a[2] + 6*a[3]*t + 12*a[4]*t*t + 20*a[5]*t*t*t
}

// D3 returns p'''(t).
func (q *Quintic) D3(t float64) float64 {
	a := q.a
	return 6*a[3] + 24*a[4]*t + 60*a[5]*t*t
}

// Duration returns the T this polynomial was solved for.
func (q *Quintic) Duration() float64 {
	return q.t
}
