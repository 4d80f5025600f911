// Package collision checks a candidate ego trajectory against predicted
// obstacle trajectories via the Separating Axis Theorem: spec §4.G
// (component G).
package collision

import (
	"context"

	"github.com/golang/geo/r3"
	"golang.org/x/sync/errgroup"

	"github.com/motionstack/frenetplan/frenet"
	"github.com/motionstack/frenetplan/spatialmath"
)

// EgoGeometry carries the constants §4.G needs to build the ego rectangle:
// the vehicle's full length/width and the rear-axle-to-center offset L_r.
type EgoGeometry struct {
	Length           float64
	Width            float64
	RearAxleToCenter float64
}

// Config carries the obstacle-inflation margins §4.G applies before the SAT
// test.
type Config struct {
	SafetyMarginLon float64
	SafetyMarginLat float64
}

// Checker performs SAT overlap tests between an ego trajectory and a set of
// predicted obstacle trajectories.
type Checker struct{}

// NewChecker returns a ready-to-use Checker. It carries no state.
func NewChecker() Checker { return Checker{} }

// Check walks every tick the ego trajectory shares with each obstacle and
// tests for rectangle overlap. It returns (false, checksPerformed) on the
// first collision found, or (true, checksPerformed) once every pair has
// been checked clear. It also sets ego.CollisionPassed.
func (Checker) Check(ego *frenet.Path, obstacles []frenet.ObstacleTrajectory, geom EgoGeometry, cfg Config) (bool, int) {
	clear, checks := checkObstacles(ego, obstacles, geom, cfg)
	ego.CollisionPassed = clear
	return clear, checks
}

// checkObstacles runs the SAT sweep without touching ego.CollisionPassed, so
// it is safe to call concurrently from CheckAsync's per-obstacle goroutines.
func checkObstacles(ego *frenet.Path, obstacles []frenet.ObstacleTrajectory, geom EgoGeometry, cfg Config) (bool, int) {
	checks := 0
	for _, obs := range obstacles {
		n := ego.Ticks()
		if len(obs.Samples) < n {
			n = len(obs.Samples)
		}
		for k := 0; k < n; k++ {
			checks++
			if overlapAt(ego, k, obs, cfg, geom) {
				return false, checks
			}
		}
	}
	return true, checks
}

// CheckAsync runs one goroutine per obstacle via errgroup, joining before
// returning. It matches spec §5's "one asynchronous SAT check per
// candidate-validation step, join before popping the next" concurrency
// model: parallelism is across obstacles within a single candidate's check,
// never across candidates.
func (c Checker) CheckAsync(ctx context.Context, ego *frenet.Path, obstacles []frenet.ObstacleTrajectory, geom EgoGeometry, cfg Config) (bool, int, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]bool, len(obstacles))
	counts := make([]int, len(obstacles))

	for i, obs := range obstacles {
		i, obs := i, obs
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			ok, n := checkObstacles(ego, []frenet.ObstacleTrajectory{obs}, geom, cfg)
			results[i] = ok
			counts[i] = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return false, 0, err
	}

	total := 0
	clear := true
	for i := range obstacles {
		total += counts[i]
		if !results[i] {
			clear = false
		}
	}
	ego.CollisionPassed = clear
	return clear, total, nil
}

func overlapAt(ego *frenet.Path, k int, obs frenet.ObstacleTrajectory, cfg Config, geom EgoGeometry) bool {
	yaw := ego.Yaw[k]
	rearAxle := spatialmath.NewPose(r3.Vector{X: ego.X[k], Y: ego.Y[k]}, yaw)
	centerOffset := spatialmath.NewPose(r3.Vector{X: geom.RearAxleToCenter}, 0)
	egoCenter := spatialmath.Compose(rearAxle, centerOffset)
	egoRect := spatialmath.NewRectangle(egoCenter, geom.Length, geom.Width)

	s := obs.Samples[k]
	obsPose := spatialmath.Pose{Point: r3.Vector{X: s.X, Y: s.Y}, Yaw: s.Yaw}
	obsRect := spatialmath.NewRectangle(
		obsPose,
		obs.Length+2*cfg.SafetyMarginLon,
		obs.Width+2*cfg.SafetyMarginLat,
	)

	return spatialmath.Overlaps(egoRect, obsRect)
}
