package upload

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// DefaultMaxUploadBytes caps a single admin image upload.
const DefaultMaxUploadBytes = 10 << 20

// SniffLen is the number of leading bytes inspected by ValidateImageBySniff.
const SniffLen = 512

var (
	ErrUnsupportedType = errors.New("поддерживаются только изображения JPG, PNG, GIF, WEBP, AVIF и BMP")
	ErrScriptable      = errors.New("HTML, SVG и XML файлы не допускаются")
	ErrTooLarge        = errors.New("файл слишком большой")
	ErrEmpty           = errors.New("файл пустой")
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".avif": true,
	".bmp":  true,
	// SVG stays excluded: it can carry scripts
}

var allowedMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/avif": true,
	"image/bmp":  true,
}

// CheckSize rejects empty files and files above max bytes.
func CheckSize(size, max int64) error {
	if size <= 0 {
		return ErrEmpty
	}
	if max > 0 && size > max {
		return ErrTooLarge
	}
	return nil
}

// ValidateImageBySniff checks the provided filename (extension) and the first bytes (head)
// against a whitelist of image types. Returns detected mime or an error.
func ValidateImageBySniff(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", ErrUnsupportedType
	}
	if len(head) > SniffLen {
		head = head[:SniffLen]
	}

	detected := http.DetectContentType(head)

	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") ||
		strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") ||
		detected == "image/svg+xml" {
		return "", ErrScriptable
	}

	// AVIF is not sniffed by net/http; trust the extension for opaque binary data
	if detected == "application/octet-stream" {
		return MimeFromExt(ext), nil
	}

	if allowedMime[detected] {
		return detected, nil
	}
	return "", ErrUnsupportedType
}

// MimeFromExt maps an allowed extension to its content type.
func MimeFromExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".avif":
		return "image/avif"
	case ".bmp":
		return "image/bmp"
	}
	return "application/octet-stream"
}
