package planner

import (
	"context"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/motionstack/frenetplan/config"
	"github.com/motionstack/frenetplan/frenet"
	"github.com/motionstack/frenetplan/logging"
	"github.com/motionstack/frenetplan/telemetry"
)

func testConfig() config.Configuration {
	return config.Configuration{
		MaxSpeed: 15, MaxAccel: 3, MaxDecel: -3, MaxCurvature: 1,
		VehicleLength: 4, VehicleWidth: 2, RearAxleToCenter: 1,
		CenterOffset: 0, NumWidth: 3, NumSpeed: 3, NumT: 3,
		LowestSpeed: 4, HighestSpeed: 8, MinT: 2, MaxT: 4, TickT: 0.5,
		SafetyMarginLon: 1, SafetyMarginLat: 0.5,
		KJerk: 0.1, KTime: 1, KDiff: 1, KLat: 1, KLon: 1,
	}
}

func straightWaypoints() frenet.Waypoints {
	return frenet.Waypoints{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 0}, {X: 40, Y: 0},
	}
}

func TestPlanReturnsFeasibleTrajectoryWithNoObstacles(t *testing.T) {
	t.Parallel()
	p := New(testConfig(), logging.NewTestLogger(t), telemetry.NoopObserver{})
	req := PlanRequest{
		Waypoints:    straightWaypoints(),
		Start:        frenet.State{S: 0, Sd: 5, D: 0},
		LeftWidth:    1.5,
		RightWidth:   1.5,
		CurrentSpeed: 5,
	}
	path, err := p.Plan(context.Background(), req)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, path, test.ShouldNotBeNil)
	test.That(t, path.ConstraintPassed, test.ShouldBeTrue)
}

func TestPlanSucceedsOnDegenerateGrid(t *testing.T) {
	t.Parallel()
	// S5 (spec §8): N_w=N_v=N_t=2 gives an 8-cell grid; the descent must
	// visit at most 8 cells and Plan must terminate without error.
	cfg := testConfig()
	cfg.NumWidth = 2
	cfg.NumSpeed = 2
	cfg.NumT = 2
	p := New(cfg, logging.NewTestLogger(t), telemetry.NoopObserver{})
	req := PlanRequest{
		Waypoints:    straightWaypoints(),
		Start:        frenet.State{S: 0, Sd: 5, D: 0},
		LeftWidth:    1.5,
		RightWidth:   1.5,
		CurrentSpeed: 5,
	}
	_, err := p.Plan(context.Background(), req)
	test.That(t, err, test.ShouldBeNil)
}

func TestPlanRejectsTooFewWaypoints(t *testing.T) {
	t.Parallel()
	p := New(testConfig(), logging.NewTestLogger(t), telemetry.NoopObserver{})
	req := PlanRequest{
		Waypoints: frenet.Waypoints{{X: 0, Y: 0}, {X: 1, Y: 0}},
		Start:     frenet.State{Sd: 5},
	}
	_, err := p.Plan(context.Background(), req)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestPlanReturnsEmptyOnContextCancel(t *testing.T) {
	t.Parallel()
	p := New(testConfig(), logging.NewTestLogger(t), telemetry.NoopObserver{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := PlanRequest{
		Waypoints:    straightWaypoints(),
		Start:        frenet.State{S: 0, Sd: 5, D: 0},
		LeftWidth:    1.5,
		RightWidth:   1.5,
		CurrentSpeed: 5,
	}
	path, err := p.Plan(ctx, req)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, path, test.ShouldBeNil)
}

func TestPlanWithCollisionCheckAvoidsBlockingObstacle(t *testing.T) {
	t.Parallel()
	p := New(testConfig(), logging.NewTestLogger(t), telemetry.NoopObserver{})
	req := PlanRequest{
		Waypoints:    straightWaypoints(),
		Start:        frenet.State{S: 0, Sd: 5, D: 0},
		LeftWidth:    1.5,
		RightWidth:   1.5,
		CurrentSpeed: 5,
		Obstacles: []frenet.Obstacle{{
			Position:    r3.Vector{X: 1000, Y: 1000},
			Orientation: frenet.Orientation{W: 1},
			Length:      2, Width: 1,
		}},
		CheckCollision: true,
	}
	path, err := p.Plan(context.Background(), req)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, path, test.ShouldNotBeNil)
}
