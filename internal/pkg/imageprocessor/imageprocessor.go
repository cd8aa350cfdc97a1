// Package imageprocessor prepares uploaded images before they are stored.
package imageprocessor

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
)

// DefaultMaxDimension is the longest edge kept for uploaded images.
const DefaultMaxDimension = 2560

// JPEGQuality is used when re-encoding JPEG uploads.
const JPEGQuality = 85

// Normalize applies the EXIF orientation, shrinks images whose longest edge exceeds
// maxDim and re-encodes them, which also drops embedded metadata. Formats imaging
// cannot encode (WebP, AVIF) and GIFs, which may be animated, are returned as-is.
func Normalize(data []byte, filename string, maxDim int) ([]byte, error) {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil || format == imaging.GIF {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}

	bounds := img.Bounds()
	if maxDim > 0 && (bounds.Dx() > maxDim || bounds.Dy() > maxDim) {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
		log.Debugf("[ImageProcessor] Resized %s from %dx%d to %dx%d",
			filename, bounds.Dx(), bounds.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("encode %s: %w", filename, err)
	}
	return buf.Bytes(), nil
}
