package pipeline

// Kind identifies the failure taxonomy of a processing attempt.
type Kind string

const (
	// KindInvalidInput covers empty, oversized, undecodable, or
	// unsupported-format images. User-correctable.
	KindInvalidInput Kind = "invalid_input"
	// KindPreprocessing covers normalization failures such as an image
	// that is too small or undecodable mid-chain.
	KindPreprocessing Kind = "preprocessing"
	// KindNoText means OCR ran but produced nothing usable.
	KindNoText Kind = "no_text"
	// KindTextExtraction means the OCR engine itself errored.
	KindTextExtraction Kind = "text_extraction"
	// KindMissingAmount means OCR succeeded but no payable amount could be
	// extracted, leaving the receipt unusable.
	KindMissingAmount Kind = "missing_amount"
)

// ClassValidation and ClassProcessing are the two reporting classes failures
// collapse into at the output boundary.
const (
	ClassValidation = "validation"
	ClassProcessing = "processing"
)

// Error is the typed failure the orchestrator returns. Every stage-internal
// error is rewrapped into one of these; none escapes untyped.
type Error struct {
	Kind Kind
	// Message is safe to show to the end user.
	Message string
	// RawText carries truncated OCR output for diagnostics on
	// missing-amount failures.
	RawText string
	// Err is the root cause, never surfaced to users directly.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Class maps the failure kind onto its reporting class: input and amount
// problems are validation failures the user can fix by re-photographing,
// engine trouble is a processing failure.
func (e *Error) Class() string {
	switch e.Kind {
	case KindNoText, KindTextExtraction:
		return ClassProcessing
	default:
		return ClassValidation
	}
}
