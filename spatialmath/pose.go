// Package spatialmath provides the 2D geometric primitives the planner needs:
// poses, oriented rectangles, and the SAT overlap test used by the collision
// checker.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// Pose is a 2D position plus heading. Z is carried on Point for interop with
// r3.Vector-based obstacle poses but is otherwise unused by THE CORE, which
// is a ground-vehicle planner.
type Pose struct {
	Point r3.Vector
	Yaw   float64
}

// NewPose builds a Pose from a point and yaw (radians).
func NewPose(point r3.Vector, yaw float64) Pose {
	return Pose{Point: point, Yaw: yaw}
}

// Compose returns the pose obtained by applying delta in the frame of base:
// rotate delta's point by base's yaw, translate by base's point, and sum the
// yaws.
func Compose(base, delta Pose) Pose {
	cos, sin := math.Cos(base.Yaw), math.Sin(base.Yaw)
	rotated := r3.Vector{
		X: delta.Point.X*cos - delta.Point.Y*sin,
		Y: delta.Point.X*sin + delta.Point.Y*cos,
		Z: delta.Point.Z,
	}
	return Pose{
		Point: base.Point.Add(rotated),
		Yaw:   NormalizeAngle(base.Yaw + delta.Yaw),
	}
}

// NormalizeAngle maps any real angle into (-pi, pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	switch {
	case a > math.Pi:
		a -= 2 * math.Pi
	case a <= -math.Pi:
		a += 2 * math.Pi
	}
	return a
}
