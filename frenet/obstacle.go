package frenet

import "github.com/golang/geo/r3"

// Orientation is a unit quaternion orientation (w, x, y, z), matching the
// perception-stack convention of reporting obstacle pose orientation as a
// quaternion (spec §4.H, §6).
type Orientation struct {
	W, X, Y, Z float64
}

// Obstacle is a single detected moving obstacle: pose (position +
// orientation quaternion), linear velocity vector, and bounding-box extent.
type Obstacle struct {
	Position    r3.Vector
	Orientation Orientation
	Velocity    r3.Vector
	Length      float64
	Width       float64
}

// ObstacleSample is one tick of a predicted obstacle trajectory.
type ObstacleSample struct {
	X, Y, Yaw, V float64
}

// ObstacleTrajectory is the ordered sequence of predicted (x, y, yaw, v)
// samples for one obstacle over the planning horizon, produced by the
// obstacle predictor (component H) and consumed by the collision checker
// (component G).
type ObstacleTrajectory struct {
	Length, Width float64
	Samples       []ObstacleSample
}
