package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// Rectangle is an oriented bounding box in the XY plane: a center pose plus
// full length (along the pose's forward axis) and full width.
type Rectangle struct {
	Center Pose
	Length float64
	Width  float64
}

// NewRectangle builds a Rectangle centered at center with the given full
// length and width.
func NewRectangle(center Pose, length, width float64) Rectangle {
	return Rectangle{Center: center, Length: length, Width: width}
}

// Vertices returns the four corners of the rectangle in world coordinates,
// starting from the forward-left corner and proceeding clockwise.
func (r Rectangle) Vertices() [4]r3.Vector {
	hl, hw := r.Length/2, r.Width/2
	cos, sin := math.Cos(r.Center.Yaw), math.Sin(r.Center.Yaw)
	corners := [4][2]float64{
		{hl, hw},
		{hl, -hw},
		{-hl, -hw},
		{-hl, hw},
	}
	var out [4]r3.Vector
	for i, c := range corners {
		out[i] = r3.Vector{
			X: r.Center.Point.X + c[0]*cos - c[1]*sin,
			Y: r.Center.Point.Y + c[0]*sin + c[1]*cos,
		}
	}
	return out
}

// axisNormals returns the two outward edge normals that fully characterize
// an axis-aligned-in-its-own-frame rectangle's separating axes: the forward
// direction and the lateral direction.
func (r Rectangle) axisNormals() [2]r3.Vector {
	cos, sin := math.Cos(r.Center.Yaw), math.Sin(r.Center.Yaw)
	return [2]r3.Vector{
		{X: cos, Y: sin},
		{X: -sin, Y: cos},
	}
}

func projectOntoAxis(vertices [4]r3.Vector, axis r3.Vector) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range vertices {
		d := v.X*axis.X + v.Y*axis.Y
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// intervalsOverlap reports whether two closed intervals overlap, including
// the boundary case where they share exactly an endpoint (§8 property 10:
// rectangles sharing exactly an edge are reported as colliding).
func intervalsOverlap(aMin, aMax, bMin, bMax float64) bool {
	return aMin <= bMax && bMin <= aMax
}

// Overlaps implements the Separating Axis Theorem test of spec §4.G: the two
// rectangles overlap iff every projection onto each of the (up to) four edge
// normals (two per rectangle) overlaps. Any axis with disjoint intervals
// proves non-collision.
func Overlaps(a, b Rectangle) bool {
	av := a.Vertices()
	bv := b.Vertices()
	axes := make([]r3.Vector, 0, 4)
	an := a.axisNormals()
	bn := b.axisNormals()
	axes = append(axes, an[0], an[1], bn[0], bn[1])

	for _, axis := range axes {
		aMin, aMax := projectOntoAxis(av, axis)
		bMin, bMax := projectOntoAxis(bv, axis)
		if !intervalsOverlap(aMin, aMax, bMin, bMax) {
			return false
		}
	}
	return true
}
