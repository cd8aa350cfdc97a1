// Package media stores uploaded images on local disk or in S3-compatible object
// storage. Records keep only the object key (e.g. "news/covers/<uuid>.jpg"); the
// public URL is resolved by the configured Store.
package media

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/gradsite/modteam/internal/pkg/constants"
	"github.com/gradsite/modteam/internal/pkg/env"
	"github.com/gradsite/modteam/internal/pkg/imageprocessor"
	"github.com/gradsite/modteam/internal/pkg/upload"
)

// Upload directories, one per kind of image.
const (
	DirNewsCovers  = "news/covers"
	DirNewsGallery = "news/gallery"
	DirTeamAvatars = "team/avatars"
	DirAbout       = "about"
)

// Store persists media objects by key.
type Store interface {
	Save(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// Config selects and configures the media backend.
type Config struct {
	Backend        string // "local" or "s3"
	Root           string
	BaseURL        string
	MaxDimension   int
	MaxUploadBytes int64
	S3             S3Config
}

// LoadConfig reads the media settings from the environment.
func LoadConfig() Config {
	return Config{
		Backend:        env.GetEnv("MEDIA_BACKEND", "local"),
		Root:           env.GetEnv("MEDIA_ROOT", "./"+constants.MediaPath),
		BaseURL:        env.GetEnv("MEDIA_URL", constants.MediaRoute),
		MaxDimension:   env.GetEnvInt("MEDIA_MAX_DIMENSION", imageprocessor.DefaultMaxDimension),
		MaxUploadBytes: int64(env.GetEnvInt("MEDIA_MAX_UPLOAD_BYTES", upload.DefaultMaxUploadBytes)),
		S3:             LoadS3Config(),
	}
}

// NewStore creates the backend named in cfg.
func NewStore(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocalStore(cfg.Root, cfg.BaseURL), nil
	case "s3":
		return NewS3Store(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown media backend %q", cfg.Backend)
	}
}

// NewKey builds a collision free object key inside dir keeping the extension.
func NewKey(dir, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	return path.Join(dir, uuid.NewString()+ext)
}

// cleanKey rejects keys that would escape the media root.
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + strings.TrimSpace(key))[1:]
	if cleaned == "" || cleaned != strings.TrimPrefix(key, "/") {
		return "", fmt.Errorf("invalid media key %q", key)
	}
	return cleaned, nil
}
