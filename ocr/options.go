package ocr

// InputOption mutates an OCR input before it is handed to an engine.
type InputOption func(*Input)

// WithLanguages sets language hints on the OCR input.
func WithLanguages(langs ...string) InputOption {
	return func(in *Input) { in.Languages = append([]string(nil), langs...) }
}

// WithPageSegMode sets the page segmentation mode for the pass.
func WithPageSegMode(mode PageSegMode) InputOption {
	return func(in *Input) { in.PageSegMode = mode }
}

// WithDPI overrides the DPI value on the OCR input.
func WithDPI(dpi int) InputOption {
	return func(in *Input) { in.DPI = dpi }
}

// WithMetadata sets provider-specific metadata for the input.
func WithMetadata(metadata map[string]string) InputOption {
	return func(in *Input) {
		if len(metadata) == 0 {
			in.Metadata = nil
			return
		}
		in.Metadata = make(map[string]string, len(metadata))
		for k, v := range metadata {
			in.Metadata[k] = v
		}
	}
}

// WithWhitelist restricts recognition to the provided characters on engines
// that support a character whitelist.
func WithWhitelist(chars string) InputOption {
	return func(in *Input) {
		if in.Metadata == nil {
			in.Metadata = make(map[string]string)
		}
		in.Metadata["tessedit_char_whitelist"] = chars
	}
}

// NewInput builds an OCR input for an encoded image and applies the options.
func NewInput(image []byte, format ImageFormat, opts ...InputOption) Input {
	in := Input{
		Image:       image,
		Format:      format,
		PageSegMode: PSMAuto,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}
