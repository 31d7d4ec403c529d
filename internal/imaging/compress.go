package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"
)

const (
	MinQuality      = 1
	MaxQuality      = 100
	DefaultQuality  = 80
	MinMaxWidth     = 100
	MaxMaxWidth     = 3840
	DefaultMaxWidth = 1920
)

// Format is an output encoding.
type Format string

const (
	JPEG Format = "jpeg"
	PNG  Format = "png"
	WebP Format = "webp"
)

// ParseFormat accepts "jpeg", "jpg" or "png". WebP is recognised but has
// no encoder.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "jpeg", "jpg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "webp":
		return "", fmt.Errorf("%w: webp output", ErrUnsupportedFormat)
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ContentType is the MIME type of the encoded output.
func (f Format) ContentType() string {
	return "image/" + string(f)
}

// CompressOptions are the compressor settings. Quality only affects JPEG.
type CompressOptions struct {
	Quality  int    `json:"quality"`
	MaxWidth int    `json:"max_width"`
	Format   Format `json:"format"`
}

// DefaultCompressOptions returns quality 80, 1920px, JPEG.
func DefaultCompressOptions() CompressOptions {
	return CompressOptions{Quality: DefaultQuality, MaxWidth: DefaultMaxWidth, Format: JPEG}
}

func (o CompressOptions) normalized() (CompressOptions, error) {
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	if o.MaxWidth == 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	o.Quality = min(max(o.Quality, MinQuality), MaxQuality)
	o.MaxWidth = min(max(o.MaxWidth, MinMaxWidth), MaxMaxWidth)
	f, err := ParseFormat(string(o.Format))
	if err != nil {
		return o, err
	}
	o.Format = f
	return o, nil
}

// CompressResult is the encoded image plus the size report.
type CompressResult struct {
	Data            []byte `json:"-"`
	Format          Format `json:"format"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	OriginalSize    int64  `json:"original_size"`
	CompressedSize  int64  `json:"compressed_size"`
	Ratio           int    `json:"ratio"`
	OriginalHuman   string `json:"original_human"`
	CompressedHuman string `json:"compressed_human"`
}

// Compress downscales img to opts.MaxWidth when wider and re-encodes it.
// originalSize is the byte size of the upload, used for the report.
func Compress(ctx context.Context, img image.Image, originalSize int64, opts CompressOptions) (*CompressResult, error) {
	opts, err := opts.normalized()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w, h := TargetSize(img.Bounds().Dx(), img.Bounds().Dy(), opts.MaxWidth)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Format == JPEG {
		// JPEG has no alpha; flatten onto white.
		xdraw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch opts.Format {
	case PNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(&buf, dst)
	default:
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: opts.Quality})
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", opts.Format, err)
	}

	compressed := int64(buf.Len())
	return &CompressResult{
		Data:            buf.Bytes(),
		Format:          opts.Format,
		Width:           w,
		Height:          h,
		OriginalSize:    originalSize,
		CompressedSize:  compressed,
		Ratio:           CompressionRatio(originalSize, compressed),
		OriginalHuman:   FormatBytes(originalSize, 2),
		CompressedHuman: FormatBytes(compressed, 2),
	}, nil
}

// TargetSize scales (w, h) down to maxWidth keeping the aspect ratio.
// Images already narrow enough keep their size.
func TargetSize(w, h, maxWidth int) (int, int) {
	if w <= maxWidth || w == 0 {
		return w, h
	}
	nh := int(math.Round(float64(h) * float64(maxWidth) / float64(w)))
	return maxWidth, max(nh, 1)
}

// CompressionRatio is the saved share in percent, rounded. It is negative
// when the output grew and 0 when either size is unknown.
func CompressionRatio(original, compressed int64) int {
	if original == 0 || compressed == 0 {
		return 0
	}
	return int(math.Round((1 - float64(compressed)/float64(original)) * 100))
}
