package image

// SampleBilinear returns the bilinearly filtered color at texture
// coordinate (u, v) as float32 components in [0, 1]. The coordinate
// origin (0, 0) is the bottom-left corner of the image, matching the
// clip-space convention of y increasing upward; v is therefore flipped
// against the top-down pixel rows. Out-of-range coordinates clamp to
// the edge.
func (b *Buffer) SampleBilinear(u, v float32) (r, g, bl, a float32) {
	// Map to continuous pixel coordinates, flipping v.
	fx := u*float32(b.width) - 0.5
	fy := (1-v)*float32(b.height) - 0.5

	x0 := floorInt(fx)
	y0 := floorInt(fy)
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	r00, g00, b00, a00 := b.At(x0, y0)
	r10, g10, b10, a10 := b.At(x0+1, y0)
	r01, g01, b01, a01 := b.At(x0, y0+1)
	r11, g11, b11, a11 := b.At(x0+1, y0+1)

	lerp2 := func(c00, c10, c01, c11 uint8) float32 {
		top := float32(c00) + (float32(c10)-float32(c00))*tx
		bot := float32(c01) + (float32(c11)-float32(c01))*tx
		return (top + (bot-top)*ty) / 255
	}

	return lerp2(r00, r10, r01, r11),
		lerp2(g00, g10, g01, g11),
		lerp2(b00, b10, b01, b11),
		lerp2(a00, a10, a01, a11)
}

// floorInt is a float32 floor that avoids the float64 round trip of
// math.Floor for the sampling hot path.
func floorInt(f float32) int {
	i := int(f)
	if f < 0 && float32(i) != f {
		i--
	}
	return i
}
