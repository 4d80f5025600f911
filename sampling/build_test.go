package sampling

import (
	"testing"

	"go.viam.com/test"

	"github.com/motionstack/frenetplan/config"
	"github.com/motionstack/frenetplan/frenet"
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
		TickT:        0.2,
		KJerk:        1, KTime: 1, KDiff: 1, KLat: 1, KLon: 1,
	}
}

func TestBuildGridSize(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	grid, _, _ := Build(cfg, 1, 1, 5, frenet.State{S: 0, D: 0, Sd: 5})
	test.That(t, grid.Size(), test.ShouldEqual, 3*3*3)
}

func TestBuildSeedIsArgmin(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	grid, seed, _ := Build(cfg, 1, 1, 5, frenet.State{S: 0, D: 0, Sd: 5})
	seedCost := grid.At(seed).FixCost + grid.At(seed).HeuristicCost
	for i := 0; i < grid.Nw; i++ {
		for j := 0; j < grid.Nv; j++ {
			for k := 0; k < grid.Nt; k++ {
				idx := Index{I: i, J: j, K: k}
				cost := grid.At(idx).FixCost + grid.At(idx).HeuristicCost
				test.That(t, seedCost, test.ShouldBeLessThanOrEqualTo, cost+1e-12)
			}
		}
	}
}

func TestBuildCentralLateralAxisIsZero(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	_, _, axes := Build(cfg, 1, 1, 5, frenet.State{})
	mid := (cfg.NumWidth - 1) / 2
	test.That(t, axes.D[mid], test.ShouldAlmostEqual, 0, 1e-9)
}
