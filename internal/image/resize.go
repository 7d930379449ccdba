package image

import "github.com/anthonynsimon/bild/transform"

// ClampSize returns a buffer no larger than maxDim on either axis,
// downscaled with linear resampling and preserved aspect ratio. Buffers
// already within the cap are returned unchanged, not copied.
func ClampSize(b *Buffer, maxDim int) *Buffer {
	w, h := b.Width(), b.Height()
	if w <= maxDim && h <= maxDim {
		return b
	}

	if w >= h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	return Resize(b, w, h)
}

// Resize returns a new buffer scaled to the given dimensions using
// linear resampling.
func Resize(b *Buffer, width, height int) *Buffer {
	scaled := transform.Resize(b.ToStdImage(), width, height, transform.Linear)
	return FromStdImage(scaled)
}
