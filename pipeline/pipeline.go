// Package pipeline sequences the receipt interpretation stages and converts
// every internal failure into a typed outcome. One Pipeline may process many
// receipts; each invocation is fully isolated, so independent receipts can be
// processed concurrently by the same instance.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/rupeetrack/receiptkit/categorize"
	"github.com/rupeetrack/receiptkit/extract"
	"github.com/rupeetrack/receiptkit/imageproc"
	"github.com/rupeetrack/receiptkit/observability"
	"github.com/rupeetrack/receiptkit/ocr"
	"github.com/rupeetrack/receiptkit/recognize"
)

// Stage names the orchestrator's states for logging and tracing.
type Stage string

const (
	StageValidating   Stage = "validating"
	StageNormalizing  Stage = "normalizing"
	StageRecognizing  Stage = "recognizing"
	StageExtracting   Stage = "extracting"
	StageCategorizing Stage = "categorizing"
	StageDone         Stage = "done"
)

const (
	// processingMessage deliberately hides engine internals from users.
	processingMessage = "Failed to process receipt. Please ensure the image is clear and contains readable text."
	missingAmountMsg  = "Could not find a valid amount in the receipt. Please ensure the receipt image is clear and contains readable text."

	rawTextDiagnosticLimit = 500
)

// Pipeline orchestrates validate → normalize → recognize → extract →
// categorize for one receipt image at a time.
type Pipeline struct {
	engine  ocr.Engine
	ocrOpts []ocr.InputOption
	logger  observability.Logger
	tracer  observability.Tracer
	now     func() time.Time
	mux     *recognize.Multiplexer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithEngine selects the OCR engine; nil keeps the library default.
func WithEngine(engine ocr.Engine) Option {
	return func(p *Pipeline) { p.engine = engine }
}

// WithLogger routes stage diagnostics to the given logger.
func WithLogger(logger observability.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithTracer wraps each invocation in a tracing span.
func WithTracer(tracer observability.Tracer) Option {
	return func(p *Pipeline) { p.tracer = tracer }
}

// WithClock overrides the processing-date source, used when a receipt has no
// extractable date.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// WithOCROptions applies extra input options (languages, DPI, engine
// metadata) to every OCR pass.
func WithOCROptions(opts ...ocr.InputOption) Option {
	return func(p *Pipeline) { p.ocrOpts = append(p.ocrOpts, opts...) }
}

// New builds a Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		logger: observability.NopLogger{},
		tracer: observability.NopTracer(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.mux = recognize.New(p.engine,
		recognize.WithLogger(p.logger),
		recognize.WithInputOptions(p.ocrOpts...),
	)
	return p
}

// Process interprets one receipt image. On success the returned record
// always carries a positive amount and a date; on failure the error is
// always a *Error carrying the taxonomy kind.
func (p *Pipeline) Process(ctx context.Context, data []byte) (*Record, error) {
	ctx, span := p.tracer.StartSpan(ctx, "receipt.process")
	defer span.Finish()

	logger := p.logger.With(observability.Int("bytes", len(data)))

	fail := func(err *Error) (*Record, error) {
		span.SetError(err)
		logger.Warn("receipt processing failed",
			observability.String("kind", string(err.Kind)),
			observability.Error("cause", err.Err),
		)
		return nil, err
	}

	logger.Debug("stage", observability.String("stage", string(StageValidating)))
	if err := imageproc.Validate(data); err != nil {
		return fail(&Error{Kind: KindInvalidInput, Message: err.Error(), Err: err})
	}

	logger.Debug("stage", observability.String("stage", string(StageNormalizing)))
	img, err := imageproc.Normalize(data)
	if err != nil {
		return fail(&Error{
			Kind:    KindPreprocessing,
			Message: "Image preprocessing failed: " + err.Error(),
			Err:     err,
		})
	}
	encoded, err := imageproc.EncodePNG(img)
	if err != nil {
		return fail(&Error{
			Kind:    KindPreprocessing,
			Message: "Image preprocessing failed: " + err.Error(),
			Err:     err,
		})
	}

	logger.Debug("stage", observability.String("stage", string(StageRecognizing)))
	text, err := p.mux.Recognize(ctx, encoded)
	if err != nil {
		kind := KindTextExtraction
		if errors.Is(err, recognize.ErrNoText) {
			kind = KindNoText
		}
		return fail(&Error{Kind: kind, Message: processingMessage, Err: err})
	}

	logger.Debug("stage", observability.String("stage", string(StageExtracting)))
	amount, hasAmount := extract.Amount(text)
	date, hasDate := extract.Date(text)
	merchant, _ := extract.Merchant(text)
	items := extract.LineItems(text)
	if !hasAmount {
		return fail(&Error{
			Kind:    KindMissingAmount,
			Message: missingAmountMsg,
			RawText: truncate(text, rawTextDiagnosticLimit),
		})
	}

	logger.Debug("stage", observability.String("stage", string(StageCategorizing)))
	cat := categorize.Categorize(text, merchant)
	if !hasDate {
		date = p.now().Format("2006-01-02")
	}

	record := &Record{
		Amount:             amount,
		Date:               date,
		Merchant:           merchant,
		Category:           cat.Category,
		CategoryConfidence: cat.Confidence,
		CategoryReason:     cat.Reason,
		Description:        Describe(merchant, items, cat.Category),
		Items:              items,
		RawText:            text,
		NeedsConfirmation:  cat.Confidence == categorize.ConfidenceLow,
		Success:            true,
	}

	logger.Info("receipt processed",
		observability.String("stage", string(StageDone)),
		observability.Float64("amount", record.Amount),
		observability.String("category", record.Category),
		observability.Int("items", len(record.Items)),
	)
	return record, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
