// Package imaging implements the image tools: decoding uploads,
// compression with downscaling, color-blindness simulation over whole
// images and single-pixel color picking.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrNotImage          = errors.New("file is not an image")
	ErrTooLarge          = errors.New("image file too large")
	ErrTooManyPixels     = errors.New("image dimensions too large")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrOutOfBounds       = errors.New("coordinates outside the image")
)

// Limits bound what Decode accepts. Zero means unlimited.
type Limits struct {
	MaxBytes  int64
	MaxPixels int64
}

// Decoded is an uploaded image and what is known about its source.
type Decoded struct {
	Image  image.Image
	Format string
	Size   int64
	Width  int
	Height int
}

// IsImageType reports whether a MIME type names an image.
func IsImageType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}

// Decode reads an image upload. The content type must start with
// "image/"; the format itself is sniffed from the data.
func Decode(r io.Reader, contentType string, lim Limits) (*Decoded, error) {
	if !IsImageType(contentType) {
		return nil, fmt.Errorf("%w: content type %q", ErrNotImage, contentType)
	}

	src := r
	if lim.MaxBytes > 0 {
		src = io.LimitReader(r, lim.MaxBytes+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if lim.MaxBytes > 0 && int64(len(data)) > lim.MaxBytes {
		return nil, fmt.Errorf("%w: limit is %s", ErrTooLarge, FormatBytes(lim.MaxBytes, 2))
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if lim.MaxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > lim.MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooManyPixels, cfg.Width, cfg.Height, lim.MaxPixels)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	b := img.Bounds()
	return &Decoded{
		Image:  img,
		Format: format,
		Size:   int64(len(data)),
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}
