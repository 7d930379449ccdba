package tessel

import (
	"iter"

	"github.com/chewxy/math32"
)

// Rotated is a shape rotated about the global origin. It is produced by
// Rotate and satisfies Shape, so it can be decorated further.
type Rotated struct {
	shape Shape
	angle float32
}

// Rotate returns a shape that yields s's triangles with every position
// point rotated counter-clockwise by angle radians about the origin
// (0, 0). Texture coordinates and color are unaffected.
//
// Rotation always pivots on the global origin, never the shape's
// centroid. To rotate about an arbitrary point, translate the shape so
// the pivot sits at the origin, rotate, and translate back:
//
//	pivoted := tessel.Translate(
//	    tessel.Rotate(tessel.Translate(s, pivot.Mul(-1)), angle),
//	    pivot)
//
// Stacked rotations add: Rotate(Rotate(s, a), b) yields the same stream
// as Rotate(s, a+b) up to floating-point error.
func Rotate(s Shape, angle float32) Rotated {
	return Rotated{shape: s, angle: angle}
}

// Angle returns the rotation angle in radians.
func (r Rotated) Angle() float32 { return r.angle }

// Triangles implements Shape.
func (r Rotated) Triangles() iter.Seq[RendTri] {
	return func(yield func(RendTri) bool) {
		// One Sincos per drain, not per point.
		sin, cos := math32.Sincos(r.angle)
		rot := func(p Point) Point {
			return Point{
				X: p.X*cos - p.Y*sin,
				Y: p.X*sin + p.Y*cos,
			}
		}
		for rt := range r.shape.Triangles() {
			if !yield(rt.MapPositions(rot)) {
				return
			}
		}
	}
}
