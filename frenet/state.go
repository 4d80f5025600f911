// Package frenet defines the data model shared by every planner stage:
// Frenet states, candidate trajectories, waypoints, and obstacles (spec §3).
package frenet

// State is a Frenet-frame kinematic state: arc length s, signed lateral
// offset d, their derivatives, and (for end states) a time horizon T.
type State struct {
	S, Sd, Sdd float64
	D, Dd, Ddd float64
	T          float64
}
