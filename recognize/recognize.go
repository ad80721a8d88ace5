// Package recognize runs the OCR engine under several page-segmentation
// interpretations of one receipt and keeps the best-scoring pass.
package recognize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rupeetrack/receiptkit/observability"
	"github.com/rupeetrack/receiptkit/ocr"
)

// ErrNoText reports that no configuration produced readable output.
var ErrNoText = errors.New("no readable text found in image")

// passModes lists the layout interpretations attempted for every receipt,
// in order of preference on ties: uniform block, automatic layout, single
// column.
var passModes = [...]ocr.PageSegMode{
	ocr.PSMSingleBlock,
	ocr.PSMAuto,
	ocr.PSMSingleColumn,
}

// pass is one scored tournament entrant.
type pass struct {
	mode  ocr.PageSegMode
	text  string
	score float64
}

// Multiplexer scores OCR passes by mean token confidence and selects the
// winner.
type Multiplexer struct {
	engine ocr.Engine
	logger observability.Logger
	opts   []ocr.InputOption
}

// Option configures a Multiplexer.
type Option func(*Multiplexer)

// WithLogger routes pass scoring diagnostics to the given logger.
func WithLogger(logger observability.Logger) Option {
	return func(m *Multiplexer) { m.logger = logger }
}

// WithInputOptions applies extra OCR input options (languages, DPI, engine
// metadata) to every pass.
func WithInputOptions(opts ...ocr.InputOption) Option {
	return func(m *Multiplexer) { m.opts = append(m.opts, opts...) }
}

// New builds a Multiplexer over the given engine. A nil engine selects the
// library default.
func New(engine ocr.Engine, opts ...Option) *Multiplexer {
	if engine == nil {
		engine = ocr.DefaultEngine()
	}
	m := &Multiplexer{engine: engine, logger: observability.NopLogger{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Recognize runs every configured pass over the encoded image and returns
// the cleaned text of the highest-confidence non-empty pass. All passes are
// scored before a winner is chosen. It returns ErrNoText when nothing
// readable was produced; engine failures are wrapped and returned as-is for
// the caller to classify.
func (m *Multiplexer) Recognize(ctx context.Context, png []byte) (string, error) {
	var best pass
	for _, mode := range passModes {
		in := ocr.NewInput(png, ocr.ImageFormatPNG, ocr.WithPageSegMode(mode))
		for _, opt := range m.opts {
			opt(&in)
		}
		res, err := m.engine.Recognize(ctx, in)
		if err != nil {
			return "", fmt.Errorf("ocr pass (psm %d): %w", mode, err)
		}
		score := meanConfidence(res.Words)
		text := cleanText(res.PlainText)
		m.logger.Debug("ocr pass scored",
			observability.Int("psm", int(mode)),
			observability.Float64("confidence", score),
			observability.Int("chars", len(text)),
		)
		if text != "" && score > best.score {
			best = pass{mode: mode, text: text, score: score}
		}
	}
	if best.text == "" {
		return "", ErrNoText
	}
	m.logger.Info("ocr pass selected",
		observability.Int("psm", int(best.mode)),
		observability.Float64("confidence", best.score),
	)
	return best.text, nil
}

// meanConfidence averages token confidences after discarding the engine's
// "no text" sentinel. A pass with no scorable tokens scores zero and cannot
// win.
func meanConfidence(words []ocr.Word) float64 {
	var sum float64
	var n int
	for _, w := range words {
		if w.Confidence == ocr.NoConfidence {
			continue
		}
		sum += w.Confidence
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// cleanText trims every line and drops blank ones.
func cleanText(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
