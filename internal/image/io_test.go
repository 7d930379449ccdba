package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 128, A: 255})
		}
	}
	return img
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("Load should fail for a missing file")
	}
}

func TestLoad_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testImage(5, 4)); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Width() != 5 || b.Height() != 4 {
		t.Errorf("dimensions = %dx%d, want 5x4", b.Width(), b.Height())
	}
	r, g, bl, a := b.At(1, 2)
	if r != 40 || g != 80 || bl != 128 || a != 255 {
		t.Errorf("pixel (1,2) = (%d,%d,%d,%d), want (40,80,128,255)", r, g, bl, a)
	}
}

func TestLoad_JPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(f, testImage(8, 8), nil); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Width() != 8 || b.Height() != 8 {
		t.Errorf("dimensions = %dx%d, want 8x8", b.Width(), b.Height())
	}
}

func TestLoad_UnknownExtensionAutodetects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.tex")
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(3, 3)); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Width() != 3 {
		t.Errorf("width = %d, want 3", b.Width())
	}
}

func TestFromBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(2, 2)); err != nil {
		t.Fatal(err)
	}

	b, err := FromBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if b.Width() != 2 || b.Height() != 2 {
		t.Errorf("dimensions = %dx%d, want 2x2", b.Width(), b.Height())
	}
}

func TestFromBytes_Empty(t *testing.T) {
	_, err := FromBytes(nil)
	if !errors.Is(err, ErrEmptyData) {
		t.Errorf("err = %v, want ErrEmptyData", err)
	}
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecodeWebP_Garbage(t *testing.T) {
	_, err := DecodeWebP(bytes.NewReader([]byte("RIFFxxxxWEBP")))
	if err == nil {
		t.Error("DecodeWebP should fail on truncated data")
	}
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	orig := FromStdImage(testImage(4, 4))

	var buf bytes.Buffer
	if err := orig.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	back, err := DecodePNG(&buf)
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}
	if !bytes.Equal(back.Pix(), orig.Pix()) {
		t.Error("pixels changed across PNG round trip")
	}
}
