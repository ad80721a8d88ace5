package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rupeetrack/receiptkit/ocr"
	_ "github.com/rupeetrack/receiptkit/ocr/tesseract"
	"github.com/rupeetrack/receiptkit/pipeline"
)

type options struct {
	imagePath string
	languages []string
	dpi       int
	pretty    bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "receiptscan: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "receiptscan: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: receiptscan [flags] <image>\n")
		flag.PrintDefaults()
	}
	langs := flag.String("lang", "eng", "Comma-separated OCR language hints")
	dpi := flag.Int("dpi", 0, "Declared image DPI (0 = unknown)")
	pretty := flag.Bool("pretty", false, "Indent the JSON output")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return opts, fmt.Errorf("expected exactly one image path")
	}
	opts.imagePath = flag.Arg(0)
	for _, l := range strings.Split(*langs, ",") {
		if l = strings.TrimSpace(l); l != "" {
			opts.languages = append(opts.languages, l)
		}
	}
	opts.dpi = *dpi
	opts.pretty = *pretty
	return opts, nil
}

func run(opts options) error {
	data, err := os.ReadFile(opts.imagePath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	ocrOpts := []ocr.InputOption{ocr.WithLanguages(opts.languages...)}
	if opts.dpi > 0 {
		ocrOpts = append(ocrOpts, ocr.WithDPI(opts.dpi))
	}
	p := pipeline.New(pipeline.WithOCROptions(ocrOpts...))

	record, err := p.Process(context.Background(), data)
	if err != nil {
		return emit(pipeline.FailureFrom(err), opts.pretty)
	}
	return emit(record, opts.pretty)
}

func emit(v interface{}, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
