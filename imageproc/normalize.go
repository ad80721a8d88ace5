package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
)

const (
	minDimension = 100

	// Working-size policy: small photographs are upscaled until the longer
	// side reaches upscaleTarget; oversized scans are reduced to
	// downscaleTarget. Anything in between is left alone.
	upscaleBelow    = 1000
	upscaleTarget   = 1200
	downscaleAbove  = 4000
	downscaleTarget = 4000

	lowContrastStdDev = 30.0
	thresholdOffset   = 15.0
	denoiseDiameter   = 9
	denoiseSigmaColor = 75.0
	denoiseSigmaSpace = 75.0
)

// Normalize decodes validated image bytes and runs the full preprocessing
// chain, returning a binarized grayscale image ready for OCR. Every value in
// the result is either 0 or 255.
func Normalize(data []byte) (*image.Gray, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("Unable to decode image bytes: %v", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < minDimension || h < minDimension {
		return nil, errors.New("Image too small (minimum 100x100 pixels)")
	}

	// The threshold block size follows the pre-scale geometry.
	block := blockSize(w, h)

	longer := w
	if h > w {
		longer = h
	}
	switch {
	case longer < upscaleBelow:
		scale := float64(upscaleTarget) / float64(longer)
		img = imaging.Resize(img, scaled(w, scale), scaled(h, scale), imaging.Linear)
	case longer > downscaleAbove:
		scale := float64(downscaleTarget) / float64(longer)
		img = imaging.Resize(img, scaled(w, scale), scaled(h, scale), imaging.Box)
	}

	gray := toGray(imaging.Grayscale(img))

	if stdDev(gray) < lowContrastStdDev {
		gray = equalizeHist(gray)
	}

	gray = bilateralFilter(gray, denoiseDiameter, denoiseSigmaColor, denoiseSigmaSpace)
	gray = adaptiveThreshold(gray, block, thresholdOffset)
	gray = closing2x2(gray)

	return gray, nil
}

// EncodePNG serializes a normalized image for engines that consume encoded
// payloads.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode normalized image: %w", err)
	}
	return buf.Bytes(), nil
}

// blockSize derives the adaptive-threshold neighborhood from the image
// geometry: two percent of the shorter side, floored at 3, forced odd.
func blockSize(w, h int) int {
	short := w
	if h < w {
		short = h
	}
	b := int(math.Round(float64(short) * 0.02))
	if b < 3 {
		b = 3
	}
	return b | 1
}

func scaled(dim int, scale float64) int {
	s := int(float64(dim) * scale)
	if s < 1 {
		s = 1
	}
	return s
}

// toGray flattens an NRGBA grayscale image into a single-channel grid. The
// input has equal channels, so the red channel is the luminance.
func toGray(src *image.NRGBA) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		srcRow := src.Pix[y*src.Stride:]
		dstRow := dst.Pix[y*dst.Stride:]
		for x := 0; x < bounds.Dx(); x++ {
			dstRow[x] = srcRow[x*4]
		}
	}
	return dst
}

func stdDev(img *image.Gray) float64 {
	bounds := img.Bounds()
	n := float64(bounds.Dx() * bounds.Dy())
	if n == 0 {
		return 0
	}
	var sum, sumSq float64
	for y := 0; y < bounds.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+bounds.Dx()]
		for _, p := range row {
			v := float64(p)
			sum += v
			sumSq += v * v
		}
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// equalizeHist spreads a flat intensity histogram across the full dynamic
// range to recover contrast in washed-out photographs.
func equalizeHist(src *image.Gray) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var hist [256]int
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		for _, p := range row {
			hist[p]++
		}
	}

	total := w * h
	var cdf [256]int
	running := 0
	cdfMin := 0
	for i, count := range hist {
		running += count
		cdf[i] = running
		if cdfMin == 0 && count > 0 {
			cdfMin = running
		}
	}

	var lut [256]uint8
	denom := float64(total - cdfMin)
	for i := range lut {
		if denom <= 0 {
			lut[i] = uint8(i)
			continue
		}
		v := math.Round(255 * float64(cdf[i]-cdfMin) / denom)
		if v < 0 {
			v = 0
		}
		lut[i] = uint8(v)
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+w]
		dstRow := dst.Pix[y*dst.Stride:]
		for x, p := range srcRow {
			dstRow[x] = lut[p]
		}
	}
	return dst
}

// bilateralFilter smooths noise while keeping character edges sharp by
// weighting each neighbor by both spatial distance and intensity difference.
func bilateralFilter(src *image.Gray, diameter int, sigmaColor, sigmaSpace float64) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	radius := diameter / 2

	spatial := make([]float64, diameter*diameter)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			spatial[(dy+radius)*diameter+(dx+radius)] = math.Exp(-d2 / (2 * sigmaSpace * sigmaSpace))
		}
	}
	var rangeWeight [256]float64
	for i := range rangeWeight {
		d := float64(i)
		rangeWeight[i] = math.Exp(-d * d / (2 * sigmaColor * sigmaColor))
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			center := src.Pix[y*src.Stride+x]
			var acc, norm float64
			for dy := -radius; dy <= radius; dy++ {
				sy := clamp(y+dy, 0, h-1)
				for dx := -radius; dx <= radius; dx++ {
					sx := clamp(x+dx, 0, w-1)
					p := src.Pix[sy*src.Stride+sx]
					diff := int(p) - int(center)
					if diff < 0 {
						diff = -diff
					}
					weight := spatial[(dy+radius)*diameter+(dx+radius)] * rangeWeight[diff]
					acc += weight * float64(p)
					norm += weight
				}
			}
			dst.Pix[y*dst.Stride+x] = uint8(acc/norm + 0.5)
		}
	}
	return dst
}

// adaptiveThreshold binarizes against a per-neighborhood mean computed over a
// block×block window via a summed-area table. A pixel survives as white when
// it exceeds the local mean minus the offset.
func adaptiveThreshold(src *image.Gray, block int, offset float64) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	radius := block / 2

	integral := make([]uint64, (w+1)*(h+1))
	stride := w + 1
	for y := 0; y < h; y++ {
		var rowSum uint64
		for x := 0; x < w; x++ {
			rowSum += uint64(src.Pix[y*src.Stride+x])
			integral[(y+1)*stride+x+1] = integral[y*stride+x+1] + rowSum
		}
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		y0 := clamp(y-radius, 0, h-1)
		y1 := clamp(y+radius, 0, h-1)
		for x := 0; x < w; x++ {
			x0 := clamp(x-radius, 0, w-1)
			x1 := clamp(x+radius, 0, w-1)
			count := float64((x1 - x0 + 1) * (y1 - y0 + 1))
			sum := integral[(y1+1)*stride+x1+1] -
				integral[y0*stride+x1+1] -
				integral[(y1+1)*stride+x0] +
				integral[y0*stride+x0]
			mean := float64(sum) / count
			if float64(src.Pix[y*src.Stride+x]) > mean-offset {
				dst.Pix[y*dst.Stride+x] = 255
			}
		}
	}
	return dst
}

// closing2x2 applies one morphological closing pass (dilate then erode) with
// a 2×2 structuring element to fill pinhole gaps inside glyph strokes.
func closing2x2(src *image.Gray) *image.Gray {
	dilated := morph2x2(src, 0, 1, func(a, b uint8) uint8 {
		if a > b {
			return a
		}
		return b
	})
	return morph2x2(dilated, -1, 0, func(a, b uint8) uint8 {
		if a < b {
			return a
		}
		return b
	})
}

func morph2x2(src *image.Gray, lo, hi int, pick func(a, b uint8) uint8) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := src.Pix[y*src.Stride+x]
			for dy := lo; dy <= hi; dy++ {
				sy := clamp(y+dy, 0, h-1)
				for dx := lo; dx <= hi; dx++ {
					sx := clamp(x+dx, 0, w-1)
					v = pick(v, src.Pix[sy*src.Stride+sx])
				}
			}
			dst.Pix[y*dst.Stride+x] = v
		}
	}
	return dst
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
