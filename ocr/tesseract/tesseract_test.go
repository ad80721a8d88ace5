package tesseract

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os/exec"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rupeetrack/receiptkit/ocr"
)

// ensureTesseractAvailable checks that the tesseract binary is reachable.
func ensureTesseractAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("tesseract"); err != nil {
		t.Skip("tesseract not installed in PATH")
	}
}

func renderText(t *testing.T, text string) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 240, 80))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, 50),
	}
	d.DrawString(text)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestTesseractEngineRecognize(t *testing.T) {
	ensureTesseractAvailable(t)

	target := "TOTAL 649.00"
	in := ocr.NewInput(renderText(t, target), ocr.ImageFormatPNG,
		ocr.WithPageSegMode(ocr.PSMSingleBlock),
		ocr.WithLanguages("eng"),
	)
	res, err := NewTesseractEngine().Recognize(context.Background(), in)
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if !strings.Contains(res.PlainText, "649") {
		t.Fatalf("unexpected text: %q", res.PlainText)
	}
	if len(res.Words) == 0 {
		t.Fatalf("expected word confidences")
	}
	for _, w := range res.Words {
		if w.Confidence > 100 {
			t.Fatalf("confidence out of range: %f", w.Confidence)
		}
	}
	if res.Language != "eng" {
		t.Fatalf("unexpected language: %q", res.Language)
	}
}

func TestTesseractEngineCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewTesseractEngine().Recognize(ctx, ocr.Input{})
	if err == nil {
		t.Fatalf("expected context error")
	}
}
