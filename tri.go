package tessel

// Positions holds the three 2D points of one triangle, for vertex space
// coordinates and texture coordinates alike. The order of the points is
// the winding order: it is fixed by the caller at construction and
// preserved through every transform, never reordered.
type Positions [3]Point

// Map returns a new Positions with f applied to each point.
func (p Positions) Map(f func(Point) Point) Positions {
	return Positions{f(p[0]), f(p[1]), f(p[2])}
}

// Tri is the only geometric primitive: one triangle's positions, texture
// coordinates, and color. It is an immutable value type; transforms
// produce new instances rather than mutating in place.
type Tri struct {
	// Positions are the three space vertices of the triangle.
	Positions Positions
	// Texcoords are the three texture coordinates of the above vertices.
	Texcoords Positions
	// Color modulates the whole triangle. For textured triangles the
	// sampled texel is multiplied by it; for flat triangles it is the
	// fill color.
	Color RGBA
}

// NewTri creates a triangle with positions, texture coordinates, and color.
func NewTri(positions, texcoords Positions, color RGBA) Tri {
	return Tri{Positions: positions, Texcoords: texcoords, Color: color}
}

// SolidTri creates a flat-colored white triangle from three positions.
// Texture coordinates default to (0, 0) for all vertices.
func SolidTri(positions Positions) Tri {
	return Tri{Positions: positions, Color: White}
}

// RendTri is a renderable triangle: a Tri plus an optional shared texture.
// A nil Texture means a flat-colored triangle. The texture handle is shared,
// not owned: many triangles across a composed shape may reference the same
// loaded image, and the image stays alive as long as any of them does.
type RendTri struct {
	Tri     Tri
	Texture *Texture
}

// Rend wraps a Tri into an untextured RendTri.
func Rend(t Tri) RendTri {
	return RendTri{Tri: t}
}

// MapPositions returns a copy with f applied to each space vertex.
// Texture coordinates, color, and texture reference are unchanged.
// Combinators are built on this; new primitives and custom transforms
// should use it too so winding order survives untouched.
func (r RendTri) MapPositions(f func(Point) Point) RendTri {
	r.Tri.Positions = r.Tri.Positions.Map(f)
	return r
}

// MapTexcoords returns a copy with f applied to each texture coordinate.
func (r RendTri) MapTexcoords(f func(Point) Point) RendTri {
	r.Tri.Texcoords = r.Tri.Texcoords.Map(f)
	return r
}

// WithColor returns a copy with the triangle color replaced.
func (r RendTri) WithColor(c RGBA) RendTri {
	r.Tri.Color = c
	return r
}

// WithTexture returns a copy referencing the given texture.
// Pass nil to detach the texture and fall back to flat color.
func (r RendTri) WithTexture(t *Texture) RendTri {
	r.Texture = t
	return r
}
