package media

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2/log"

	"github.com/gradsite/modteam/internal/pkg/imageprocessor"
	"github.com/gradsite/modteam/internal/pkg/upload"
)

// Uploader validates, normalizes and stores admin image uploads.
type Uploader struct {
	Store          Store
	MaxDimension   int
	MaxUploadBytes int64
}

func NewUploader(store Store, cfg Config) *Uploader {
	return &Uploader{Store: store, MaxDimension: cfg.MaxDimension, MaxUploadBytes: cfg.MaxUploadBytes}
}

// SaveFile stores an uploaded file below dir and returns its key.
func (u *Uploader) SaveFile(ctx context.Context, fh *multipart.FileHeader, dir string) (string, error) {
	if err := upload.CheckSize(fh.Size, u.MaxUploadBytes); err != nil {
		return "", err
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}
	return u.Save(ctx, fh.Filename, data, dir)
}

// Save stores raw image bytes named filename below dir together with their WebP
// thumbnails and returns the key of the original.
func (u *Uploader) Save(ctx context.Context, filename string, data []byte, dir string) (string, error) {
	if err := upload.CheckSize(int64(len(data)), u.MaxUploadBytes); err != nil {
		return "", err
	}
	contentType, err := upload.ValidateImageBySniff(filename, data)
	if err != nil {
		return "", err
	}

	data, err = imageprocessor.Normalize(data, filename, u.MaxDimension)
	if err != nil {
		return "", err
	}

	key := NewKey(dir, filename)
	if err := u.Store.Save(ctx, key, data, contentType); err != nil {
		return "", err
	}
	if err := u.saveThumbnails(ctx, key, filename, data); err != nil {
		u.Remove(ctx, key)
		return "", err
	}
	log.Infof("[Media] Stored %s (%d bytes)", key, len(data))
	return key, nil
}

func (u *Uploader) saveThumbnails(ctx context.Context, key, filename string, data []byte) error {
	for _, v := range imageprocessor.Variants {
		thumbKey, ok := imageprocessor.ThumbnailKey(key, v)
		if !ok {
			return nil
		}
		thumb, err := imageprocessor.Thumbnail(data, filename, v)
		if err != nil {
			return fmt.Errorf("%s thumbnail of %s: %w", v.Name, filename, err)
		}
		if err := u.Store.Save(ctx, thumbKey, thumb, "image/webp"); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes stored objects and their thumbnails, logging failures instead of
// returning them: the database change they belong to has already been committed.
func (u *Uploader) Remove(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		targets := []string{key}
		for _, v := range imageprocessor.Variants {
			if thumbKey, ok := imageprocessor.ThumbnailKey(key, v); ok {
				targets = append(targets, thumbKey)
			}
		}
		for _, target := range targets {
			if err := u.Store.Delete(ctx, target); err != nil {
				log.Warnf("[Media] Could not delete %s: %v", target, err)
			}
		}
	}
}
