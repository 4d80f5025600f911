package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestOverlapsSymmetry(t *testing.T) {
	t.Parallel()
	a := NewRectangle(NewPose(r3.Vector{X: 0, Y: 0}, 0), 4, 2)
	b := NewRectangle(NewPose(r3.Vector{X: 3, Y: 0}, math.Pi/6), 4, 2)
	test.That(t, Overlaps(a, b), test.ShouldEqual, Overlaps(b, a))

	c := NewRectangle(NewPose(r3.Vector{X: 100, Y: 100}, 0), 2, 2)
	test.That(t, Overlaps(a, c), test.ShouldEqual, Overlaps(c, a))
	test.That(t, Overlaps(a, c), test.ShouldBeFalse)
}

func TestOverlapsSharedEdge(t *testing.T) {
	t.Parallel()
	a := NewRectangle(NewPose(r3.Vector{X: 0, Y: 0}, 0), 2, 2)
	// b's left edge touches a's right edge exactly.
	b := NewRectangle(NewPose(r3.Vector{X: 2, Y: 0}, 0), 2, 2)
	test.That(t, Overlaps(a, b), test.ShouldBeTrue)
}

func TestOverlapsDisjoint(t *testing.T) {
	t.Parallel()
	a := NewRectangle(NewPose(r3.Vector{X: 0, Y: 0}, 0), 2, 2)
	b := NewRectangle(NewPose(r3.Vector{X: 2.01, Y: 0}, 0), 2, 2)
	test.That(t, Overlaps(a, b), test.ShouldBeFalse)
}

func TestNormalizeAngle(t *testing.T) {
	t.Parallel()
	test.That(t, NormalizeAngle(0), test.ShouldAlmostEqual, 0)
	test.That(t, NormalizeAngle(math.Pi), test.ShouldAlmostEqual, math.Pi)
	test.That(t, NormalizeAngle(3*math.Pi), test.ShouldAlmostEqual, math.Pi)
	test.That(t, NormalizeAngle(-3*math.Pi), test.ShouldAlmostEqual, math.Pi)
	test.That(t, NormalizeAngle(2*math.Pi+0.1), test.ShouldAlmostEqual, 0.1)
}
