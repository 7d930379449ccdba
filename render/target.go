// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/tessel"
)

// Target is a CPU-backed render destination wrapping an *image.RGBA.
// It owns the clip-space-to-pixel mapping: clip (-1, -1) lands on the
// bottom-left pixel corner, clip (1, 1) on the top-right.
type Target struct {
	img *image.RGBA
}

// NewTarget creates a target with the given pixel dimensions.
func NewTarget(width, height int) *Target {
	return &Target{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewTargetFromImage wraps an existing *image.RGBA as a target.
// The image is used directly without copying.
func NewTargetFromImage(img *image.RGBA) *Target {
	return &Target{img: img}
}

// Width returns the target width in pixels.
func (t *Target) Width() int { return t.img.Bounds().Dx() }

// Height returns the target height in pixels.
func (t *Target) Height() int { return t.img.Bounds().Dy() }

// Image returns the underlying image. The renderer writes into it
// directly, so the caller sees every Render's result without copying.
func (t *Target) Image() *image.RGBA { return t.img }

// Clear fills the whole target with a single color.
func (t *Target) Clear(c tessel.RGBA) {
	p := c.Premultiply()
	r := uint8(p.R * 255)
	g := uint8(p.G * 255)
	b := uint8(p.B * 255)
	a := uint8(p.A * 255)
	pix := t.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = a
	}
}

// Project converts a clip-space point to continuous pixel coordinates,
// flipping y so that clip-space up is pixel-space up.
func (t *Target) Project(p tessel.Point) (x, y float32) {
	w := float32(t.Width())
	h := float32(t.Height())
	return (p.X + 1) / 2 * w, (1 - p.Y) / 2 * h
}

// EncodePNG writes the target contents as PNG.
func (t *Target) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, t.img); err != nil {
		return fmt.Errorf("render: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the target contents to a PNG file.
func (t *Target) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("render: create file: %w", err)
	}
	if err := t.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
