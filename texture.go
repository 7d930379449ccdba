package tessel

import (
	"fmt"
	"image"
	"iter"

	teximage "github.com/gogpu/tessel/internal/image"
)

// MaxTextureDim caps texture dimensions. Images larger than this on
// either axis are downscaled at load time, preserving aspect ratio.
const MaxTextureDim = 8192

// Texture is an opaque, immutable handle to a decoded image. It is
// shared, not owned: any number of triangles across any number of shapes
// may reference the same Texture, and the pixel data stays alive until
// the last reference is dropped. The core never mutates a texture after
// construction, so sharing needs no synchronization.
type Texture struct {
	buf *teximage.Buffer
}

// LoadTexture loads and decodes an image file into a texture.
// Supported formats: PNG, JPEG, WebP. Failures are returned, never
// retried; a caller can fall back to a flat-colored shape.
func LoadTexture(path string) (*Texture, error) {
	buf, err := teximage.Load(path)
	if err != nil {
		return nil, fmt.Errorf("tessel: load texture: %w", err)
	}
	if buf.Width() > MaxTextureDim || buf.Height() > MaxTextureDim {
		Logger().Warn("texture exceeds size cap, downscaling",
			"path", path, "width", buf.Width(), "height", buf.Height(), "cap", MaxTextureDim)
		buf = teximage.ClampSize(buf, MaxTextureDim)
	}
	Logger().Debug("texture loaded", "path", path, "width", buf.Width(), "height", buf.Height())
	return &Texture{buf: buf}, nil
}

// NewTextureFromImage creates a texture from an in-memory image.
func NewTextureFromImage(img image.Image) *Texture {
	return &Texture{buf: teximage.FromStdImage(img)}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.buf.Width() }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.buf.Height() }

// AspectRatio returns height divided by width, the factor that turns a
// requested display width into a proportional height.
func (t *Texture) AspectRatio() float32 {
	return float32(t.buf.Height()) / float32(t.buf.Width())
}

// Sample returns the bilinearly filtered texel at texture coordinate
// (u, v), with (0, 0) the bottom-left corner and (1, 1) the top-right.
// Coordinates outside [0, 1] clamp to the edge.
func (t *Texture) Sample(u, v float32) RGBA {
	r, g, b, a := t.buf.SampleBilinear(u, v)
	return RGBA{R: r, G: g, B: b, A: a}
}

// ImageRect is a textured rectangle primitive centered on the origin.
// Its height is derived from the texture's native aspect ratio, so the
// image is never stretched.
type ImageRect struct {
	tex   *Texture
	width float32
}

// NewImageRect creates a rectangle of the given width, textured with tex.
// The height is width scaled by the texture's aspect ratio. The rectangle
// is centered on the origin so that rotation spins it in place.
func NewImageRect(tex *Texture, width float32) ImageRect {
	return ImageRect{tex: tex, width: width}
}

// Texture returns the shared texture handle.
func (ir ImageRect) Texture() *Texture { return ir.tex }

// Triangles implements Shape. The split and vertex order follow Rect;
// texture coordinates map the unit square onto the rectangle with the
// same ordering, (0,0) at the bottom-left corner.
func (ir ImageRect) Triangles() iter.Seq[RendTri] {
	w := ir.width / 2
	h := ir.width * ir.tex.AspectRatio() / 2
	return func(yield func(RendTri) bool) {
		if !yield(RendTri{
			Tri: NewTri(
				Positions{{X: -w, Y: -h}, {X: w, Y: -h}, {X: -w, Y: h}},
				Positions{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
				White,
			),
			Texture: ir.tex,
		}) {
			return
		}
		yield(RendTri{
			Tri: NewTri(
				Positions{{X: w, Y: h}, {X: -w, Y: h}, {X: w, Y: -h}},
				Positions{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 0}},
				White,
			),
			Texture: ir.tex,
		})
	}
}
