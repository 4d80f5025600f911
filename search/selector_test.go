package search

import (
	"testing"

	"go.viam.com/test"

	"github.com/motionstack/frenetplan/config"
	"github.com/motionstack/frenetplan/frenet"
	"github.com/motionstack/frenetplan/logging"
	"github.com/motionstack/frenetplan/sampling"
)

func testConfig() config.Configuration {
	return config.Configuration{
		CenterOffset: 0,
		NumWidth:     3,
		NumSpeed:     3,
		NumT:         3,
		LowestSpeed:  4,
		HighestSpeed: 6,
		MinT:         2,
		MaxT:         4,
		TickT:        0.5,
		KJerk:        0.1, KTime: 1, KDiff: 1, KLat: 1, KLon: 1,
	}
}

func TestSelectorTerminatesAndBoundsVisits(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	start := frenet.State{S: 0, Sd: 5, D: 0}
	grid, seed, _ := sampling.Build(cfg, 1, 1, 5, start)

	sel := NewSelector(grid, cfg, start, logging.NewTestLogger(t))
	err := sel.Run(seed)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sel.Visited(), test.ShouldBeLessThanOrEqualTo, grid.Size())
}

func TestSelectorCostMonotonicity(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	start := frenet.State{S: 0, Sd: 5, D: 0}
	grid, seed, _ := sampling.Build(cfg, 1, 1, 5, start)

	sel := NewSelector(grid, cfg, start, logging.NewTestLogger(t))
	err := sel.Run(seed)
	test.That(t, err, test.ShouldBeNil)

	queue := sel.Queue()
	test.That(t, queue.Len(), test.ShouldBeGreaterThan, 0)

	last := -1.0
	for queue.Len() > 0 {
		path, _ := queue.Pop()
		test.That(t, path.FinalCost(), test.ShouldBeGreaterThanOrEqualTo, path.FixCost-1e-9)
		test.That(t, path.FinalCost(), test.ShouldBeGreaterThanOrEqualTo, last-1e-9)
		last = path.FinalCost()
	}
}

func TestDegenerateGridTerminates(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.NumWidth = 2 // S5 (spec §8): N_w=2 is the degenerate case config.Validate allows
	cfg.NumSpeed = 2
	cfg.NumT = 2
	start := frenet.State{S: 0, Sd: 5, D: 0}
	grid, seed, _ := sampling.Build(cfg, 1, 1, 5, start)

	sel := NewSelector(grid, cfg, start, logging.NewTestLogger(t))
	err := sel.Run(seed)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sel.Visited(), test.ShouldBeLessThanOrEqualTo, grid.Size())
}
