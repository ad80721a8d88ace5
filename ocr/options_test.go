package ocr

import (
	"reflect"
	"testing"
)

func TestNewInputAppliesOptions(t *testing.T) {
	meta := map[string]string{"tessedit_char_whitelist": "0123456789"}
	in := NewInput(
		[]byte{1, 2, 3},
		ImageFormatPNG,
		WithLanguages("eng", "hin"),
		WithPageSegMode(PSMSingleBlock),
		WithDPI(300),
		WithMetadata(meta),
	)
	if in.Format != ImageFormatPNG {
		t.Fatalf("unexpected format: %v", in.Format)
	}
	if in.PageSegMode != PSMSingleBlock {
		t.Fatalf("unexpected page segmentation mode: %v", in.PageSegMode)
	}
	if in.DPI != 300 {
		t.Fatalf("unexpected dpi: %d", in.DPI)
	}
	if !reflect.DeepEqual(in.Languages, []string{"eng", "hin"}) {
		t.Fatalf("unexpected languages: %+v", in.Languages)
	}
	meta["tessedit_char_whitelist"] = "abc"
	if in.Metadata["tessedit_char_whitelist"] != "0123456789" {
		t.Fatalf("metadata was not copied: %+v", in.Metadata)
	}
}

func TestNewInputDefaultsToAutoSegmentation(t *testing.T) {
	in := NewInput(nil, ImageFormatJPEG)
	if in.PageSegMode != PSMAuto {
		t.Fatalf("unexpected default page segmentation mode: %v", in.PageSegMode)
	}
}

func TestWithWhitelistInitializesMetadata(t *testing.T) {
	in := Input{}
	WithWhitelist("₹.0123456789")(&in)
	if in.Metadata["tessedit_char_whitelist"] != "₹.0123456789" {
		t.Fatalf("unexpected metadata: %+v", in.Metadata)
	}
}
