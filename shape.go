package tessel

import "iter"

// Shape is anything that can produce a finite stream of renderable
// triangles. Primitives and combinators both satisfy it, which is what
// lets combinators nest to unbounded depth.
//
// The sequence returned by Triangles is restartable: every call, and
// every range over the returned value, replays the stream from the
// beginning. Shapes are typically iterated once per frame, so producers
// must not keep cursor state between iterations.
//
// Production is lazy and pull-based: each combinator computes its
// per-triangle transform as the element is pulled, performs no I/O, and
// never blocks. Emission order is a pure function of the expression tree.
type Shape interface {
	Triangles() iter.Seq[RendTri]
}

// Collect drains the shape's triangle stream into a slice.
// Mostly useful in tests and for renderers that batch a whole frame.
func Collect(s Shape) []RendTri {
	var out []RendTri
	for rt := range s.Triangles() {
		out = append(out, rt)
	}
	return out
}

// Count returns the number of triangles the shape produces.
func Count(s Shape) int {
	n := 0
	for range s.Triangles() {
		n++
	}
	return n
}
