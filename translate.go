package tessel

import "iter"

// Translated is a shape shifted by a fixed offset. It is produced by
// Translate and satisfies Shape, so it can be decorated further.
type Translated struct {
	shape  Shape
	offset Point
}

// Translate returns a shape that yields s's triangles with every position
// point shifted by offset. Texture coordinates, color, and texture
// reference pass through unchanged.
//
// The input shape is wrapped, not consumed: the same shape value can be
// translated many times with different offsets, and translating never
// mutates it.
//
// Translating distributes over Combine, and stacked translations add:
// Translate(Translate(s, v), w) yields the same stream as
// Translate(s, v.Add(w)).
func Translate(s Shape, offset Point) Translated {
	return Translated{shape: s, offset: offset}
}

// Offset returns the translation vector.
func (t Translated) Offset() Point { return t.offset }

// Triangles implements Shape.
func (t Translated) Triangles() iter.Seq[RendTri] {
	return func(yield func(RendTri) bool) {
		for rt := range t.shape.Triangles() {
			if !yield(rt.MapPositions(t.offset.Add)) {
				return
			}
		}
	}
}
