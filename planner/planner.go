// Package planner composes every other package into the state machine of
// spec §4.I (component I): INIT -> PREDICT_OBSTACLES -> SAMPLE_GRID ->
// SEARCH -> VALIDATE -> RETURN.
package planner

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/motionstack/frenetplan/collision"
	"github.com/motionstack/frenetplan/config"
	"github.com/motionstack/frenetplan/constraints"
	"github.com/motionstack/frenetplan/convert"
	"github.com/motionstack/frenetplan/curve"
	"github.com/motionstack/frenetplan/frenet"
	"github.com/motionstack/frenetplan/logging"
	"github.com/motionstack/frenetplan/obstacle"
	"github.com/motionstack/frenetplan/sampling"
	"github.com/motionstack/frenetplan/search"
	"github.com/motionstack/frenetplan/telemetry"
)

// PlanRequest bundles one planning call's inputs (spec §6: "Planning call
// inputs").
type PlanRequest struct {
	Waypoints      frenet.Waypoints
	Start          frenet.State
	LaneID         int
	LeftWidth      float64
	RightWidth     float64
	CurrentSpeed   float64
	Obstacles      []frenet.Obstacle
	CheckCollision bool
	UseAsync       bool
}

// Planner runs one planning call at a time; it is not re-entrant on the
// same instance (spec §5: "the planner is not re-entrant on the same
// instance").
type Planner struct {
	cfg       config.Configuration
	logger    logging.Logger
	observer  telemetry.Observer
	predictor obstacle.Predictor
	checker   collision.Checker
}

// New builds a Planner bound to cfg. A nil logger or observer falls back to
// logging.Global() and telemetry.NoopObserver{} respectively.
func New(cfg config.Configuration, logger logging.Logger, observer telemetry.Observer) *Planner {
	if logger == nil {
		logger = logging.Global()
	}
	if observer == nil {
		observer = telemetry.NoopObserver{}
	}
	return &Planner{
		cfg:       cfg,
		logger:    logger,
		observer:  observer,
		predictor: obstacle.NewPredictor(),
		checker:   collision.NewChecker(),
	}
}

// Plan runs one full planning call for req, returning the winning
// trajectory or nil (no error) if every candidate was infeasible, per §7's
// "infeasible plan -> non-fatal, empty result" policy. Invalid input
// (waypoints, configuration) returns a classified error instead.
func (p *Planner) Plan(ctx context.Context, req PlanRequest) (*frenet.Path, error) {
	if err := req.Waypoints.Validate(); err != nil {
		return nil, errors.Wrap(err, "planner: invalid waypoints")
	}
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	ref, err := buildReference(req.Waypoints)
	if err != nil {
		return nil, errors.Wrap(err, "planner: building reference curve")
	}

	obstacles := p.predictObstacles(req.Obstacles)

	sampleStart := time.Now()
	grid, seed, _ := sampling.Build(p.cfg, req.LeftWidth, req.RightWidth, req.CurrentSpeed, req.Start)
	p.observer.Sampled(time.Since(sampleStart), grid.Size())

	sel := search.NewSelector(grid, p.cfg, req.Start, p.logger)
	searchStart := time.Now()
	if err := sel.Run(seed); err != nil {
		return nil, errors.Wrap(err, "planner: search failed")
	}
	p.observer.Searched(time.Since(searchStart), sel.Visited())

	return p.validate(ctx, sel, ref, obstacles, req)
}

func (p *Planner) predictObstacles(obstacles []frenet.Obstacle) []frenet.ObstacleTrajectory {
	start := time.Now()
	trajectories := make([]frenet.ObstacleTrajectory, len(obstacles))
	for i, o := range obstacles {
		trajectories[i] = p.predictor.Predict(o, p.cfg)
	}
	p.observer.Predicted(time.Since(start), len(obstacles))
	return trajectories
}

// validate drains the candidate queue in nondecreasing final_cost order
// (spec §5's ordering guarantee), returning the first candidate that passes
// conversion, kinematic constraints, and (if requested) collision checking.
func (p *Planner) validate(
	ctx context.Context,
	sel *search.Selector,
	ref *curve.Spline2D,
	obstacles []frenet.ObstacleTrajectory,
	req PlanRequest,
) (*frenet.Path, error) {
	geom := collision.EgoGeometry{
		Length:           p.cfg.VehicleLength,
		Width:            p.cfg.VehicleWidth,
		RearAxleToCenter: p.cfg.RearAxleToCenter,
	}
	collCfg := collision.Config{
		SafetyMarginLon: p.cfg.SafetyMarginLon,
		SafetyMarginLat: p.cfg.SafetyMarginLat,
	}
	constraintCfg := p.cfg.ConstraintConfig()

	queue := sel.Queue()
	for queue.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, nil
		default:
		}

		validateStart := time.Now()
		path, _ := queue.Pop()
		convert.ToCartesian(path, ref)

		if !constraints.Check(path, constraintCfg) {
			p.observer.Validated(time.Since(validateStart), 1, false)
			continue
		}

		if !req.CheckCollision {
			p.observer.Validated(time.Since(validateStart), 1, true)
			return path, nil
		}

		ok, checks, checkErr := p.checkCollision(ctx, path, obstacles, geom, collCfg, req.UseAsync)
		if checkErr != nil || !ok {
			p.observer.Validated(time.Since(validateStart), 1, false)
			continue
		}
		_ = checks
		p.observer.Validated(time.Since(validateStart), 1, true)
		return path, nil
	}

	return nil, nil
}

func (p *Planner) checkCollision(
	ctx context.Context,
	path *frenet.Path,
	obstacles []frenet.ObstacleTrajectory,
	geom collision.EgoGeometry,
	cfg collision.Config,
	async bool,
) (bool, int, error) {
	checkStart := time.Now()
	var ok bool
	var checks int
	var err error
	if async {
		ok, checks, err = p.checker.CheckAsync(ctx, path, obstacles, geom, cfg)
	} else {
		ok, checks = p.checker.Check(path, obstacles, geom, cfg)
	}
	p.observer.CollisionChecked(time.Since(checkStart), checks)
	return ok, checks, err
}

func buildReference(waypoints frenet.Waypoints) (*curve.Spline2D, error) {
	pts := make([]curve.Waypoint, len(waypoints))
	for i, w := range waypoints {
		pts[i] = curve.Waypoint{X: w.X, Y: w.Y}
	}
	return curve.NewSpline2D(pts)
}
