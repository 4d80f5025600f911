package polynomial

import "gonum.org/v1/gonum/mat"

// Quartic is a degree-4 polynomial matching a start (position, velocity,
// acceleration) and an end (velocity, acceleration); the end position is
// free.
type Quartic struct {
	a [5]float64
	t float64
}

// NewQuartic solves the 5x5 (reduced to 2x2 after eliminating the fixed
// start terms) boundary-value system for a quartic polynomial p with
// p(0)=start[0], p'(0)=start[1], p''(0)=start[2], p'(T)=endVel,
// p''(T)=endAccel. End position p(T) is unconstrained.
func NewQuartic(start [3]float64, endVel, endAccel, duration float64) (*Quartic, error) {
	if duration <= 0 {
		return nil, ErrNonPositiveDuration
	}
	t := duration
	a0, a1, a2 := start[0], start[1], start[2]/2

	t2 := t * t
	A := mat.NewDense(2, 2, []float64{
		3 * t2, 4 * t2 * t,
		6 * t, 12 * t2,
	})
	b := mat.NewVecDense(2, []float64{
		endVel - a1 - 2*a2*t,
		endAccel - 2*a2,
	})
	var x mat.VecDense
	if err := x.SolveVec(A, b); err != nil {
		return nil, err
	}

	return &Quartic{a: [5]float64{a0, a1, a2, x.AtVec(0), x.AtVec(1)}, t: t}, nil
}

// Value returns p(t).
func (q *Quartic) Value(t float64) float64 {
	a := q.a
	return a[0] + a[1]*t + a[2]*t*t + a[3]*t*t*t + a[4]*t*t*t*t
}

// D1 returns p'(t).
func (q *Quartic) D1(t float64) float64 {
	a := q.a
	return a[1] + 2*a[2]*t + 3*a[3]*t*t + 4*a[4]*t*t*t
}

// D2 returns p''(t).
func (q *Quartic) D2(t float64) float64 {
	a := q.a
	return 2*a[2] + 6*a[3]*t + 12*a[4]*t*t
}

// D3 returns p'''(t).
func (q *Quartic) D3(t float64) float64 {
	a := q.a
	return 6*a[3] + 24*a[4]*t
}

// Duration returns the T this polynomial was solved for.
func (q *Quartic) Duration() float64 {
	return q.t
}
