package imaging

import (
	"context"
	"image"
	"runtime"

	"devtoolbox/internal/colormath"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// ToNRGBA copies img into a new NRGBA image anchored at the origin.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		// Copy rows directly so fully transparent pixels keep their color.
		n := b.Dx() * 4
		for y := 0; y < b.Dy(); y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+n], src.Pix[off:off+n])
		}
		return dst
	}
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// SimulateImage returns a copy of img as seen with deficiency d. Rows are
// processed concurrently, at most GOMAXPROCS at a time. Alpha is kept.
func SimulateImage(ctx context.Context, img image.Image, d colormath.Deficiency) (*image.NRGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := ToNRGBA(img)
	if d == colormath.Normal {
		return out, nil
	}

	fn := pixelFunc(d)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	h := out.Rect.Dy()
	w := out.Rect.Dx()
	for y := 0; y < h; y++ {
		row := out.Pix[y*out.Stride : y*out.Stride+w*4]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			simulateRow(row, fn)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// pixelFunc returns the per-pixel transform for d, resolving the matrix
// once per image.
func pixelFunc(d colormath.Deficiency) func(colormath.RGB) colormath.RGB {
	if m, ok := colormath.SimulationMatrix(d); ok {
		return func(c colormath.RGB) colormath.RGB { return colormath.ApplyMatrix(m, c) }
	}
	if d == colormath.Achromatopsia {
		return colormath.Gray
	}
	return func(c colormath.RGB) colormath.RGB { return c }
}

// simulateRow rewrites one row of NRGBA pixels in place.
func simulateRow(row []uint8, fn func(colormath.RGB) colormath.RGB) {
	for i := 0; i+3 < len(row); i += 4 {
		c := fn(colormath.RGB{R: int(row[i]), G: int(row[i+1]), B: int(row[i+2])})
		row[i] = uint8(c.R)
		row[i+1] = uint8(c.G)
		row[i+2] = uint8(c.B)
	}
}
