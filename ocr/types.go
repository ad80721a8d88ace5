package ocr

import "context"

// ImageFormat identifies the content type of an OCR input image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatJPEG ImageFormat = "image/jpeg"
	ImageFormatBMP  ImageFormat = "image/bmp"
	ImageFormatTIFF ImageFormat = "image/tiff"
)

// PageSegMode is a hint telling the engine how to interpret the layout of
// text on the page. The values mirror Tesseract's page segmentation modes so
// drivers can pass them through directly.
type PageSegMode int

const (
	// PSMAuto lets the engine detect the page layout on its own.
	PSMAuto PageSegMode = 3
	// PSMSingleColumn treats the page as a single column of text of
	// variable sizes, the typical shape of a thermal receipt.
	PSMSingleColumn PageSegMode = 4
	// PSMSingleBlock treats the page as one uniform block of text.
	PSMSingleBlock PageSegMode = 6
)

// NoConfidence is the sentinel an engine reports for a token it could not
// score ("no text"). Callers filtering confidences must discard it before
// averaging.
const NoConfidence = -1

// Input encapsulates a single image submitted for OCR.
type Input struct {
	// Image is the encoded image payload in the format specified by Format.
	Image []byte
	// Format declares the image content type (e.g., image/png).
	Format ImageFormat
	// PageSegMode selects the layout interpretation for this pass.
	PageSegMode PageSegMode
	// DPI carries the effective dots-per-inch for the image. Providers such as
	// Tesseract use this for scaling and layout heuristics; zero means unknown.
	DPI int
	// Languages is a list of trained-data hints (e.g., "eng", "deu") that
	// providers can use to select recognition models.
	Languages []string
	// Metadata allows callers to pass through engine-specific knobs (e.g.,
	// "tessedit_char_whitelist" for Tesseract) without hard-coding them into
	// the API surface.
	Metadata map[string]string
}

// Word represents a single recognized token.
type Word struct {
	Text string
	// Confidence is the engine's recognition score on a [0,100] scale, or
	// NoConfidence when the engine could not score the token.
	Confidence float64
}

// Result captures OCR output for a single input image.
type Result struct {
	// PlainText contains the linearized text extracted from the image.
	PlainText string
	// Words carries the recognized tokens with per-token confidence.
	Words []Word
	// Language indicates the dominant language detected, if known.
	Language string
}

// Engine is the simplest OCR provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}
