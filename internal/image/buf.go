// Package image stores decoded texture pixels as tightly packed RGBA8
// buffers and provides the loading and sampling operations the texture
// handle is built on. Only this one format exists: every decoded image
// is converted to non-premultiplied RGBA8 at load time.
package image

import (
	"errors"
	"image"
)

// ErrInvalidSize is returned when buffer dimensions are not positive.
var ErrInvalidSize = errors.New("image: width and height must be positive")

// Buffer is an immutable-after-construction RGBA8 pixel buffer.
// Stride is always Width*4; rows are tightly packed.
type Buffer struct {
	width, height int
	pix           []byte
}

// NewBuffer allocates a zeroed buffer with the given dimensions.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int { return b.width * 4 }

// Pix returns the raw RGBA8 pixel data, row-major, tightly packed.
// Callers must treat it as read-only.
func (b *Buffer) Pix() []byte { return b.pix }

// RowBytes returns the pixel bytes of row y.
func (b *Buffer) RowBytes(y int) []byte {
	start := y * b.Stride()
	return b.pix[start : start+b.Stride()]
}

// At returns the RGBA components of the pixel at (x, y).
// Coordinates outside the buffer clamp to the nearest edge pixel.
func (b *Buffer) At(x, y int) (r, g, bl, a uint8) {
	if x < 0 {
		x = 0
	} else if x >= b.width {
		x = b.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= b.height {
		y = b.height - 1
	}
	i := (y*b.width + x) * 4
	return b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3]
}

// FromStdImage converts a standard library image.Image to a Buffer.
func FromStdImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf := &Buffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}

	// Fast path for NRGBA: same layout, possibly different stride.
	if nrgba, ok := img.(*image.NRGBA); ok {
		if nrgba.Stride == buf.Stride() && bounds.Min == (image.Point{}) {
			copy(buf.pix, nrgba.Pix)
			return buf
		}
		for y := range height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), nrgba.Pix[srcStart:srcStart+width*4])
		}
		return buf
	}

	// Generic path: unpremultiply through color.NRGBA.
	for y := range height {
		row := buf.RowBytes(y)
		for x := range width {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			r, g, bl, a := c.RGBA()
			if a != 0 && a != 0xffff {
				// Undo the premultiplication RGBA() applies.
				r = r * 0xffff / a
				g = g * 0xffff / a
				bl = bl * 0xffff / a
			}
			row[x*4+0] = uint8(r >> 8)
			row[x*4+1] = uint8(g >> 8)
			row[x*4+2] = uint8(bl >> 8)
			row[x*4+3] = uint8(a >> 8)
		}
	}
	return buf
}

// ToStdImage converts the buffer back to a standard *image.NRGBA.
// The pixel data is copied; mutating the result does not affect the buffer.
func (b *Buffer) ToStdImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	if img.Stride == b.Stride() {
		copy(img.Pix, b.pix)
		return img
	}
	for y := range b.height {
		copy(img.Pix[y*img.Stride:y*img.Stride+b.Stride()], b.RowBytes(y))
	}
	return img
}
