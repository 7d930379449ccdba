package tessel

import "iter"

// Rect is an axis-aligned rectangle spanned by two opposite corners.
// Either diagonal pair works: coverage does not depend on corner order.
type Rect struct {
	A, B Point
}

// NewRect creates a rectangle from two opposite corner points.
func NewRect(a, b Point) Rect {
	return Rect{A: a, B: b}
}

// Triangles implements Shape. The rectangle splits into exactly two
// flat-colored triangles along the A-B diagonal with a fixed vertex
// order: first (A.X,A.Y), (B.X,A.Y), (A.X,B.Y), then (B.X,B.Y),
// (A.X,B.Y), (B.X,A.Y). New rectangle-like primitives should keep this
// split and order so winding stays consistent across the library.
func (r Rect) Triangles() iter.Seq[RendTri] {
	return func(yield func(RendTri) bool) {
		if !yield(Rend(SolidTri(Positions{
			{X: r.A.X, Y: r.A.Y},
			{X: r.B.X, Y: r.A.Y},
			{X: r.A.X, Y: r.B.Y},
		}))) {
			return
		}
		yield(Rend(SolidTri(Positions{
			{X: r.B.X, Y: r.B.Y},
			{X: r.A.X, Y: r.B.Y},
			{X: r.B.X, Y: r.A.Y},
		})))
	}
}
