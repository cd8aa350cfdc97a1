package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/decoder"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// ThumbnailsDir is the key prefix of all generated variants.
const ThumbnailsDir = "thumbnails"

// Thumbnail sizes (longest edge)
const (
	SmallThumbnailSize  = 200
	MediumThumbnailSize = 500
)

// WebPQuality is the lossy quality of the thumbnails.
const WebPQuality = 85

// Variant is one generated thumbnail size.
type Variant struct {
	Name string
	Size int
}

var (
	// SmallThumbnail backs the admin previews and the roster avatars.
	SmallThumbnail = Variant{Name: "small", Size: SmallThumbnailSize}
	// MediumThumbnail backs the news cards and the gallery.
	MediumThumbnail = Variant{Name: "medium", Size: MediumThumbnailSize}

	Variants = []Variant{SmallThumbnail, MediumThumbnail}
)

// HasThumbnails reports whether uploads named like filename get WebP variants.
// AVIF has no decoder here, so those images are always served as uploaded.
func HasThumbnails(filename string) bool {
	switch strings.ToLower(path.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp":
		return true
	}
	return false
}

// ThumbnailKey maps a stored media key to the key of its variant,
// e.g. "news/covers/x.jpg" to "thumbnails/small/news/covers/x.webp".
func ThumbnailKey(key string, v Variant) (string, bool) {
	if key == "" || !HasThumbnails(key) {
		return "", false
	}
	base := strings.TrimSuffix(key, path.Ext(key))
	return path.Join(ThumbnailsDir, v.Name, base+".webp"), true
}

// Thumbnail encodes a WebP copy of the image whose longest edge is at most v.Size.
// Smaller images keep their dimensions.
func Thumbnail(data []byte, filename string, v Variant) ([]byte, error) {
	img, err := decode(data, filename)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() > v.Size || bounds.Dy() > v.Size {
		img = imaging.Fit(img, v.Size, v.Size, imaging.Lanczos)
	}
	return encodeWebP(img)
}

func decode(data []byte, filename string) (image.Image, error) {
	if strings.EqualFold(path.Ext(filename), ".webp") {
		img, err := webp.Decode(bytes.NewReader(data), &decoder.Options{})
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", filename, err)
		}
		return img, nil
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	return img, nil
}

func encodeWebP(img image.Image) ([]byte, error) {
	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, WebPQuality)
	if err != nil {
		return nil, fmt.Errorf("error creating encoder options: %w", err)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, options); err != nil {
		return nil, fmt.Errorf("error encoding WebP image: %w", err)
	}
	return buf.Bytes(), nil
}
