// Package convert lifts a sampled Frenet-frame trajectory into Cartesian
// coordinates against a reference curve: spec §4.E (component E).
package convert

import (
	"math"

	"github.com/motionstack/frenetplan/curve"
	"github.com/motionstack/frenetplan/frenet"
	"github.com/motionstack/frenetplan/spatialmath"
)

// ToCartesian lifts path's per-tick (s, d) samples against ref into x, y,
// yaw, ds, and curvature, mutating and returning path. If a lateral
// projection produces a non-finite (x, y), the trajectory is truncated at
// that tick rather than propagating NaN/Inf downstream.
func ToCartesian(path *frenet.Path, ref *curve.Spline2D) *frenet.Path {
	n := path.Ticks()
	path.X = make([]float64, 0, n)
	path.Y = make([]float64, 0, n)

	for k := 0; k < n; k++ {
		xRef, yRef := ref.Position(path.S[k])
		yawRef := ref.Yaw(path.S[k])
		d := path.D[k]

		x := xRef + d*math.Cos(yawRef+math.Pi/2)
		y := yRef + d*math.Sin(yawRef+math.Pi/2)

		if !isFinite(x) || !isFinite(y) {
			path.Truncate(k)
			break
		}
		path.X = append(path.X, x)
		path.Y = append(path.Y, y)
	}

	computeYawAndCurvature(path)
	return path
}

// computeYawAndCurvature derives yaw and ds from forward differences of the
// Cartesian samples, replicates the last value to keep array lengths equal
// to the position arrays, and computes signed curvature from the
// normalized yaw delta over ds (spec §4.E).
func computeYawAndCurvature(path *frenet.Path) {
	m := len(path.X)
	path.Yaw = make([]float64, m)
	path.Ds = make([]float64, m)
	path.Curvature = make([]float64, m)

	if m == 0 {
		return
	}
	if m == 1 {
		path.Yaw[0] = 0
		path.Ds[0] = 0
		path.Curvature[0] = 0
		return
	}

	for k := 0; k < m-1; k++ {
		dx := path.X[k+1] - path.X[k]
		dy := path.Y[k+1] - path.Y[k]
		path.Yaw[k] = math.Atan2(dy, dx)
		path.Ds[k] = math.Hypot(dx, dy)
	}
	path.Yaw[m-1] = path.Yaw[m-2]
	path.Ds[m-1] = path.Ds[m-2]

	for k := 0; k < m-1; k++ {
		if path.Ds[k] == 0 {
			path.Curvature[k] = 0
			continue
		}
		path.Curvature[k] = spatialmath.NormalizeAngle(path.Yaw[k+1]-path.Yaw[k]) / path.Ds[k]
	}
	path.Curvature[m-1] = path.Curvature[m-2]
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
