// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/gogpu/tessel"
)

func TestTarget_Dimensions(t *testing.T) {
	target := NewTarget(320, 200)
	if target.Width() != 320 || target.Height() != 200 {
		t.Errorf("dimensions = %dx%d, want 320x200", target.Width(), target.Height())
	}
}

func TestTarget_Project(t *testing.T) {
	target := NewTarget(200, 100)
	tests := []struct {
		name  string
		p     tessel.Point
		wantX float32
		wantY float32
	}{
		{"center", tessel.Pt(0, 0), 100, 50},
		{"bottom left", tessel.Pt(-1, -1), 0, 100},
		{"top right", tessel.Pt(1, 1), 200, 0},
		{"top left", tessel.Pt(-1, 1), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := target.Project(tt.p)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Project(%v) = (%v, %v), want (%v, %v)", tt.p, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTarget_Clear(t *testing.T) {
	target := NewTarget(4, 4)
	target.Clear(tessel.Red)

	img := target.Image()
	for y := range 4 {
		for x := range 4 {
			i := img.PixOffset(x, y)
			if img.Pix[i] != 255 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 || img.Pix[i+3] != 255 {
				t.Fatalf("pixel (%d,%d) = %v, want opaque red", x, y, img.Pix[i:i+4])
			}
		}
	}
}

func TestTarget_EncodePNG(t *testing.T) {
	target := NewTarget(8, 8)
	target.Clear(tessel.Blue)

	var buf bytes.Buffer
	if err := target.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("decoded bounds = %v, want 8x8", img.Bounds())
	}
}
