package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/RecipeBook/configs"
)

var (
	ErrNotFound   = errors.New("media not found")
	ErrInvalidKey = errors.New("invalid media key")
)

const uploadDir = "recipe_pics"

// Store keeps uploaded images addressed by a slash separated key.
type Store interface {
	Save(ctx context.Context, key string, body io.Reader, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

func NewStore(ctx context.Context, conf configs.Media, logger *zap.Logger) (Store, error) {
	switch conf.Backend {
	case configs.MediaS3:
		return NewS3Store(ctx, conf.S3, logger)
	case configs.MediaLocal:
		return NewLocalStore(conf.Root, logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown media backend %q", configs.ErrConfiguration, conf.Backend)
	}
}

// NewKey returns a fresh key under the upload directory keeping the
// extension of the uploaded file name.
func NewKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	return path.Join(uploadDir, uuid.NewString()+ext)
}

func cleanKey(key string) (string, error) {
	cleaned := path.Clean(strings.TrimPrefix(key, "/"))
	if key == "" || cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return cleaned, nil
}
