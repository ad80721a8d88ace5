// Package imageproc validates receipt photographs and normalizes them into
// the binarized single-channel form OCR engines recognize best. The
// normalization chain mirrors the classic document-scanning recipe: rescale
// to a working size, grayscale, contrast-equalize when flat, edge-preserving
// denoise, adaptive threshold, morphological close.
package imageproc
