package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// MaxImageBytes is the largest accepted input buffer (10 MiB).
const MaxImageBytes = 10 << 20

var supportedFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"bmp":  true,
	"tiff": true,
}

// Validate gates raw upload bytes before any heavy processing. Checks run in
// order and stop at the first failure: empty buffer, size cap, then a
// container parse that must identify one of the supported formats.
func Validate(data []byte) error {
	if len(data) == 0 {
		return errors.New("Empty image data")
	}
	if len(data) > MaxImageBytes {
		return errors.New("Image file too large (max 10MB)")
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("Invalid image file: %v", err)
	}
	if !supportedFormats[format] {
		return fmt.Errorf("Unsupported image format: %s", format)
	}
	return nil
}
