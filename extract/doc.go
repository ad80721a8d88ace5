// Package extract pulls structured fields out of raw receipt OCR text.
// Every extractor is a pure function over the text so each can be exercised
// with literal string fixtures, without an image or OCR stack behind it.
package extract
