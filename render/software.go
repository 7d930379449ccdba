// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/tessel"
)

// Render errors.
var (
	// ErrNilTarget is returned when Render is called without a target.
	ErrNilTarget = errors.New("render: nil target")

	// ErrNilShape is returned when Render is called without a shape.
	ErrNilShape = errors.New("render: nil shape")
)

// Software is a CPU rasterizer for tessel shapes.
//
// Each triangle is filled by barycentric coverage at pixel centers, with
// bilinear texture sampling modulated by the triangle color and
// source-over alpha blending. Triangles land in emission order, so a
// shape's Combine structure doubles as its z-order.
//
// Performance characteristics:
//   - Single-threaded
//   - O(area) per triangle in covered pixels
//   - No allocation on the per-triangle path
type Software struct{}

// NewSoftware creates a CPU software renderer.
func NewSoftware() *Software {
	return &Software{}
}

// Render implements Renderer. It drains the shape once and rasterizes
// every triangle into the target in emission order.
func (r *Software) Render(target *Target, shape tessel.Shape) error {
	if target == nil {
		return ErrNilTarget
	}
	if shape == nil {
		return ErrNilShape
	}

	batches := Batches(shape)
	tris := 0
	for _, b := range batches {
		for _, rt := range b.Tris {
			rasterizeTri(target, rt, b.Texture)
		}
		tris += len(b.Tris)
	}
	tessel.Logger().Debug("software render",
		"batches", len(batches), "triangles", tris,
		"width", target.Width(), "height", target.Height())
	return nil
}

// Flush implements Renderer. Software rendering is synchronous, so
// there is never pending work.
func (r *Software) Flush() error { return nil }

// edge is the signed doubled area of triangle (a, b, p). Its sign tells
// which side of the directed edge a-b the point p lies on.
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// rasterizeTri fills one triangle into the target. Both windings fill
// identically: coverage is normalized by the signed area, so no face
// culling happens at this level.
//
// Edge coverage is inclusive: a pixel center exactly on a shared edge
// belongs to both adjacent triangles. Opaque fills are unaffected;
// translucent fills can double-blend along such seams.
func rasterizeTri(t *Target, rt tessel.RendTri, tex *tessel.Texture) {
	x0, y0 := t.Project(rt.Tri.Positions[0])
	x1, y1 := t.Project(rt.Tri.Positions[1])
	x2, y2 := t.Project(rt.Tri.Positions[2])

	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return // degenerate
	}

	minX := clampInt(floorF(min3(x0, x1, x2)), 0, t.Width())
	maxX := clampInt(ceilF(max3(x0, x1, x2)), 0, t.Width())
	minY := clampInt(floorF(min3(y0, y1, y2)), 0, t.Height())
	maxY := clampInt(ceilF(max3(y0, y1, y2)), 0, t.Height())

	uv := rt.Tri.Texcoords
	base := rt.Tri.Color

	for py := minY; py < maxY; py++ {
		cy := float32(py) + 0.5
		for px := minX; px < maxX; px++ {
			cx := float32(px) + 0.5

			b0 := edge(x1, y1, x2, y2, cx, cy) / area
			b1 := edge(x2, y2, x0, y0, cx, cy) / area
			b2 := edge(x0, y0, x1, y1, cx, cy) / area
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			col := base
			if tex != nil {
				u := b0*uv[0].X + b1*uv[1].X + b2*uv[2].X
				v := b0*uv[0].Y + b1*uv[1].Y + b2*uv[2].Y
				s := tex.Sample(u, v)
				col = tessel.RGBA{
					R: base.R * s.R,
					G: base.G * s.G,
					B: base.B * s.B,
					A: base.A * s.A,
				}
			}
			blendPixel(t, px, py, col)
		}
	}
}

// blendPixel composites col over the target pixel (source-over,
// premultiplied arithmetic; image.RGBA stores premultiplied bytes).
func blendPixel(t *Target, x, y int, col tessel.RGBA) {
	sp := col.Premultiply()
	if sp.A <= 0 {
		return
	}

	img := t.Image()
	i := img.PixOffset(x, y)
	inv := 1 - sp.A

	img.Pix[i+0] = blendByte(sp.R, img.Pix[i+0], inv)
	img.Pix[i+1] = blendByte(sp.G, img.Pix[i+1], inv)
	img.Pix[i+2] = blendByte(sp.B, img.Pix[i+2], inv)
	img.Pix[i+3] = blendByte(sp.A, img.Pix[i+3], inv)
}

func blendByte(src float32, dst uint8, inv float32) uint8 {
	v := src*255 + float32(dst)*inv
	if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}

func min3(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func floorF(f float32) int {
	i := int(f)
	if f < 0 && float32(i) != f {
		i--
	}
	return i
}

func ceilF(f float32) int {
	i := int(f)
	if f > 0 && float32(i) != f {
		i++
	}
	return i
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
