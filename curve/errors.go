package curve

import "github.com/pkg/errors"

// ErrTooFewPoints is returned when fewer than three (x, y) pairs are given
// to build a Spline1D or Spline2D; a natural cubic spline needs at least
// three knots to have an interior point.
var ErrTooFewPoints = errors.New("curve: need at least 3 points to build a spline")

// ErrNonMonotone is returned when the x (or arc-length) samples are not
// strictly increasing, including the duplicate-point case.
var ErrNonMonotone = errors.New("curve: x samples must be strictly increasing")

// ErrMismatchedLength is returned when the x and y slices passed to
// NewSpline1D have different lengths.
var ErrMismatchedLength = errors.New("curve: x and y must have equal length")
