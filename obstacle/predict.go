// Package obstacle predicts moving-obstacle trajectories by straight-line
// constant-velocity propagation: spec §4.H (component H).
package obstacle

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/motionstack/frenetplan/config"
	"github.com/motionstack/frenetplan/frenet"
)

// Predictor turns a detected Obstacle's current pose and velocity into a
// full ObstacleTrajectory over the planning horizon.
type Predictor struct{}

// NewPredictor returns a ready-to-use Predictor. It carries no state.
func NewPredictor() Predictor { return Predictor{} }

// Predict derives yaw from o's orientation quaternion (roll/pitch
// discarded), computes speed as the norm of the linear velocity vector, and
// generates floor(max_t/tick_t)+1 samples by straight-line propagation.
//
// The source this was distilled from appends the y increment to x in one
// branch; that is a typo, not intended behavior (§9). This implementation
// follows the corrected semantics: x advances by v*tick_t*cos(yaw), y by
// v*tick_t*sin(yaw).
func (Predictor) Predict(o frenet.Obstacle, cfg config.Configuration) frenet.ObstacleTrajectory {
	yaw := yawFromQuaternion(o.Orientation)
	v := math.Sqrt(o.Velocity.X*o.Velocity.X + o.Velocity.Y*o.Velocity.Y + o.Velocity.Z*o.Velocity.Z)

	n := int(cfg.MaxT/cfg.TickT) + 1
	samples := make([]frenet.ObstacleSample, n)
	x, y := o.Position.X, o.Position.Y
	for k := 0; k < n; k++ {
		samples[k] = frenet.ObstacleSample{X: x, Y: y, Yaw: yaw, V: v}
		x += v * cfg.TickT * math.Cos(yaw)
		y += v * cfg.TickT * math.Sin(yaw)
	}

	return frenet.ObstacleTrajectory{
		Length:  o.Length,
		Width:   o.Width,
		Samples: samples,
	}
}

// yawFromQuaternion extracts the z-axis (yaw) rotation from a unit
// quaternion, discarding roll/pitch, via gonum's quat.Number.
func yawFromQuaternion(o frenet.Orientation) float64 {
	q := quat.Number{Real: o.W, Imag: o.X, Jmag: o.Y, Kmag: o.Z}
	siny := 2 * (q.Real*q.Kmag + q.Imag*q.Jmag)
	cosy := 1 - 2*(q.Jmag*q.Jmag+q.Kmag*q.Kmag)
	return math.Atan2(siny, cosy)
}
