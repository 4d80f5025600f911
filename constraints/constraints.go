// Package constraints implements the single forward-pass kinematic feasibility
// check for a materialized trajectory: spec §4.F (component F).
package constraints

import (
	"math"

	"github.com/motionstack/frenetplan/frenet"
)

// Check walks path tick by tick and returns false on the first violation of:
// isfinite(x,y), s_d <= max_speed, max_decel <= s_dd <= max_accel, and
// |curvature| <= max_curvature. It sets path.ConstraintPassed to the result
// before returning; the result is otherwise a pure function of path and cfg.
func Check(path *frenet.Path, cfg Config) bool {
	passed := checkAll(path, cfg)
	path.ConstraintPassed = passed
	return passed
}

// Config carries the kinematic bounds §4.F checks against. It is a thin
// projection of config.Configuration's kinematic fields so that constraints
// does not need to import config's sampling/cost fields.
type Config struct {
	MaxSpeed     float64
	MaxAccel     float64
	MaxDecel     float64
	MaxCurvature float64
}

func checkAll(path *frenet.Path, cfg Config) bool {
	for k := 0; k < path.Ticks(); k++ {
		if !isFinite(path.X, k) || !isFinite(path.Y, k) {
			return false
		}
		if path.Sd[k] > cfg.MaxSpeed {
			return false
		}
		if path.Sdd[k] > cfg.MaxAccel || path.Sdd[k] < cfg.MaxDecel {
			return false
		}
		if k < len(path.Curvature) && absF(path.Curvature[k]) > cfg.MaxCurvature {
			return false
		}
	}
	return true
}

func isFinite(arr []float64, k int) bool {
	if k >= len(arr) {
		return true // Cartesian extension may be shorter after truncation; nothing to check past it.
	}
	v := arr[k]
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
