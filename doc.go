// Package tessel provides a declarative 2D shape-composition algebra for Go.
//
// # Overview
//
// tessel models every drawable as a stream of colored, optionally textured
// triangles. Primitives (rectangles, image rectangles) are combined with
// translation, rotation, and union combinators into arbitrarily deep shape
// expressions. Iterating a shape lazily walks the expression tree and yields
// a flat sequence of renderable triangles, applying each transform per
// triangle as it is pulled.
//
// # Quick Start
//
//	import "github.com/gogpu/tessel"
//
//	// A flat-colored rectangle covering the center of clip space.
//	r := tessel.NewRect(tessel.Pt(-0.5, -0.5), tessel.Pt(0.5, 0.5))
//
//	// Decorate it: shift right, then rotate about the origin.
//	s := tessel.Rotate(tessel.Translate(r, tessel.Pt(0.3, 0)), math.Pi/4)
//
//	// Drain the triangle stream.
//	for rt := range s.Triangles() {
//	    // upload rt to the renderer of your choice
//	}
//
// # Shapes and Combinators
//
// Anything implementing the Shape interface participates in composition.
// Combinators satisfy Shape themselves, so nesting depth is unbounded:
//
//   - Translate(s, v): shifts every position point by v
//   - Rotate(s, a): rotates every position point by a radians about the origin
//   - Combine(a, b, ...): concatenates triangle streams in argument order
//
// Combinators wrap their input by value and never mutate it; the same shape
// value can be decorated many times with different parameters independently.
// Rotation pivots on the global origin (0, 0) by contract; to rotate about
// an arbitrary point, translate the shape so the pivot sits at the origin,
// rotate, and translate back.
//
// # Coordinate System
//
// tessel is coordinate-system agnostic but the bundled software renderer
// (package render) assumes GPU clip-space conventions:
//   - X in [-1, 1] increasing right
//   - Y in [-1, 1] increasing up
//   - Angles in radians, counter-clockwise
//
// # Triangle Stream Contract
//
// Shape.Triangles returns a restartable sequence: every call, and every
// range over the returned value, replays the stream from the start. Stream
// order is a pure function of the expression tree, so redrawing the same
// shape every frame yields identical triangles in identical order.
package tessel
