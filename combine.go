package tessel

import "iter"

// Combined is the union of several shapes. It is produced by Combine and
// satisfies Shape, so unions nest and chain freely.
type Combined struct {
	shapes []Shape
}

// Combine returns a shape whose triangle stream is the concatenation of
// each argument's stream, in argument order, with no deduplication and no
// reordering. Emission order is the only z-ordering mechanism: later
// shapes paint over earlier ones in a painter's-algorithm renderer.
//
// Nested Combined arguments are spliced into the new union so that deep
// chains of Combine stay one flat slice internally. This changes nothing
// observable: the emitted stream is identical either way, which is what
// makes Combine associative.
func Combine(shapes ...Shape) Combined {
	c := Combined{shapes: make([]Shape, 0, len(shapes))}
	for _, s := range shapes {
		if sub, ok := s.(Combined); ok {
			c.shapes = append(c.shapes, sub.shapes...)
			continue
		}
		c.shapes = append(c.shapes, s)
	}
	return c
}

// Len returns the number of directly combined shapes.
func (c Combined) Len() int { return len(c.shapes) }

// Triangles implements Shape.
func (c Combined) Triangles() iter.Seq[RendTri] {
	return func(yield func(RendTri) bool) {
		for _, s := range c.shapes {
			for rt := range s.Triangles() {
				if !yield(rt) {
					return
				}
			}
		}
	}
}
