package frenet

import (
	"math"

	"github.com/pkg/errors"
)

// ErrTooFewWaypoints is returned when a waypoint list has fewer than 3
// points (spec §7: "waypoints < 3 ... fails fast with a classified error").
var ErrTooFewWaypoints = errors.New("frenet: reference requires at least 3 waypoints")

// ErrDuplicateWaypoint is returned when two consecutive waypoints coincide
// (spec §7/§8 scenario S6: non-monotone waypoints).
var ErrDuplicateWaypoint = errors.New("frenet: consecutive waypoints must not coincide")

// Waypoint is a single reference-centerline sample. Yaw is optional metadata
// some perception stacks provide; the planner derives its own yaw from the
// fitted spline and does not require it.
type Waypoint struct {
	X, Y float64
	Yaw  float64 `json:"yaw,omitempty"`
}

// Waypoints is an ordered, strictly monotone sample of the reference curve.
// Immutable within a planning call.
type Waypoints []Waypoint

// Validate enforces the §3 invariants: at least 3 points, and no two
// consecutive points coinciding. Non-adjacent repeats are not checked.
func (w Waypoints) Validate() error {
	if len(w) < 3 {
		return ErrTooFewWaypoints
	}
	for i := 1; i < len(w); i++ {
		dx := w[i].X - w[i-1].X
		dy := w[i].Y - w[i-1].Y
		if math.Hypot(dx, dy) <= 0 {
			return ErrDuplicateWaypoint
		}
	}
	return nil
}
