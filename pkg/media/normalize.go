package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"mime"

	"github.com/disintegration/imaging"

	"droscher.com/RecipeBook/pkg/model"
)

const (
	MaxWidth  = 300
	MaxHeight = 300
)

var ErrImageDecode = errors.New("cannot decode image")

// Normalize shrinks the stored image so it fits within MaxWidth x MaxHeight,
// keeping its aspect ratio and format. Smaller images and the default
// placeholder are left untouched.
func Normalize(ctx context.Context, store Store, key string) error {
	if key == "" || key == model.DefaultImage {
		return nil
	}

	reader, err := store.Open(ctx, key)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(reader)
	_ = reader.Close()

	if err != nil {
		return err
	}

	_, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrImageDecode, key, err)
	}

	format, err := imaging.FormatFromExtension(name)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrImageDecode, key, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrImageDecode, key, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= MaxWidth && bounds.Dy() <= MaxHeight {
		return nil
	}

	resized := imaging.Fit(img, MaxWidth, MaxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		return err
	}

	return store.Save(ctx, key, &buf, mime.TypeByExtension("."+name))
}
