package obstacle

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/motionstack/frenetplan/config"
	"github.com/motionstack/frenetplan/frenet"
)

func testConfig() config.Configuration {
	return config.Configuration{MaxT: 2, TickT: 0.5}
}

func TestPredictSampleCount(t *testing.T) {
	t.Parallel()
	o := frenet.Obstacle{
		Position:    r3.Vector{X: 0, Y: 0},
		Orientation: frenet.Orientation{W: 1},
		Velocity:    r3.Vector{X: 1, Y: 0},
		Length:      2, Width: 1,
	}
	traj := Predictor{}.Predict(o, testConfig())
	test.That(t, len(traj.Samples), test.ShouldEqual, 5)
	test.That(t, traj.Length, test.ShouldEqual, 2.0)
	test.That(t, traj.Width, test.ShouldEqual, 1.0)
}

func TestPredictStraightLineAlongX(t *testing.T) {
	t.Parallel()
	o := frenet.Obstacle{
		Position:    r3.Vector{X: 0, Y: 0},
		Orientation: frenet.Orientation{W: 1}, // identity: yaw 0
		Velocity:    r3.Vector{X: 2, Y: 0},
	}
	traj := Predictor{}.Predict(o, testConfig())
	for k, s := range traj.Samples {
		test.That(t, s.X, test.ShouldAlmostEqual, float64(k)*2*0.5, 1e-9)
		test.That(t, s.Y, test.ShouldAlmostEqual, 0, 1e-9)
	}
}

func TestPredictYawFromQuaternionRotatesPropagation(t *testing.T) {
	t.Parallel()
	// 90-degree yaw quaternion: (w=cos(pi/4), z=sin(pi/4)).
	half := math.Pi / 4
	o := frenet.Obstacle{
		Position:    r3.Vector{X: 0, Y: 0},
		Orientation: frenet.Orientation{W: math.Cos(half), Z: math.Sin(half)},
		Velocity:    r3.Vector{X: 1, Y: 0},
	}
	traj := Predictor{}.Predict(o, testConfig())
	last := traj.Samples[len(traj.Samples)-1]
	// yaw ~ pi/2: motion should be almost entirely along y, not x.
	test.That(t, last.X, test.ShouldAlmostEqual, 0, 1e-6)
	test.That(t, last.Y, test.ShouldBeGreaterThan, 1.0)
}

func TestPredictSpeedIsVectorNorm(t *testing.T) {
	t.Parallel()
	o := frenet.Obstacle{
		Orientation: frenet.Orientation{W: 1},
		Velocity:    r3.Vector{X: 3, Y: 4, Z: 0},
	}
	traj := Predictor{}.Predict(o, testConfig())
	test.That(t, traj.Samples[0].V, test.ShouldAlmostEqual, 5, 1e-9)
}
