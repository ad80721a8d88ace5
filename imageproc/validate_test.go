package imageproc

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func testImage(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Vertical stripes give the image text-like structure.
			if x%8 < 3 {
				img.SetGray(x, y, color.Gray{Y: 20})
			} else {
				img.SetGray(x, y, color.Gray{Y: 235})
			}
		}
	}
	return img
}

func TestValidateAcceptsSupportedFormats(t *testing.T) {
	img := testImage(120, 120)

	if err := Validate(encodePNG(t, img)); err != nil {
		t.Fatalf("png should validate: %v", err)
	}

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("encode bmp: %v", err)
	}
	if err := Validate(buf.Bytes()); err != nil {
		t.Fatalf("bmp should validate: %v", err)
	}
}

func TestValidateEmptyBuffer(t *testing.T) {
	err := Validate(nil)
	if err == nil || err.Error() != "Empty image data" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateOversizedBuffer(t *testing.T) {
	err := Validate(make([]byte, MaxImageBytes+1))
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateUndecodableBuffer(t *testing.T) {
	err := Validate([]byte("definitely not an image"))
	if err == nil || !strings.Contains(err.Error(), "Invalid image file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := gif.Encode(&buf, testImage(120, 120), nil); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	err := Validate(buf.Bytes())
	if err == nil || !strings.Contains(err.Error(), "Unsupported image format") {
		t.Fatalf("unexpected error: %v", err)
	}
}
