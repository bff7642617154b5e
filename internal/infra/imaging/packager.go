// Package imaging implements the image packager: it normalizes a captured
// photo into a transport-safe JPEG under the configured size ceiling.
package imaging

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"log/slog"

	_ "image/gif"
	_ "image/png"

	"iriscan/config"
	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	xdraw "golang.org/x/image/draw"
)

// minQuality is the floor of the second-pass quality ladder; below this the
// payload is rejected rather than degraded further.
const minQuality = 30

type packager struct {
	cfg    *config.PackagerConfig
	logger *slog.Logger
}

// Params holds dependencies for the packager, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the image packager.
func New(params Params) service.ImagePacker {
	return &packager{
		cfg:    params.Config.Packager,
		logger: params.Logger,
	}
}

// Pack resamples the photo to the bounded pixel dimension and re-encodes it
// under the hard ceiling. The first pass encodes at the standard quality; if
// the result still exceeds the hard ceiling, one aggressive pass shrinks the
// edge bound and steps the quality down toward the soft target. A payload that
// cannot be brought under the hard ceiling after the second pass is rejected.
func (p *packager) Pack(ctx context.Context, raw []byte) (*entity.EncodedImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(raw) == 0 {
		return nil, errors.New("empty image payload")
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}

	scaled := resample(src, p.cfg.MaxEdge)
	data, err := encodeJPEG(scaled, p.cfg.FirstPassQuality)
	if err != nil {
		return nil, err
	}

	quality := p.cfg.FirstPassQuality
	passes := 1

	if len(data) > p.cfg.HardLimitBytes {
		scaled = resample(src, p.cfg.SecondPassMaxEdge)
		passes = 2

		// Step down the quality ladder until the soft target is met or the
		// floor is reached.
		for quality = p.cfg.SecondPassQuality; ; quality -= 10 {
			data, err = encodeJPEG(scaled, quality)
			if err != nil {
				return nil, err
			}
			if len(data) <= p.cfg.SoftLimitBytes || quality-10 < minQuality {
				break
			}
		}
	}

	if len(data) > p.cfg.HardLimitBytes {
		p.logger.Warn("packaged payload still exceeds hard ceiling",
			slog.Int("size", len(data)),
			slog.Int("hard_limit", p.cfg.HardLimitBytes),
			slog.Int("passes", passes),
		)

		return nil, service.ErrPayloadTooLarge
	}

	bounds := scaled.Bounds()

	return &entity.EncodedImage{
		Data:    data,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Quality: quality,
		Passes:  passes,
	}, nil
}

// resample scales the image so its longest edge is at most maxEdge. Images
// already within the bound are returned untouched.
func resample(src image.Image, maxEdge int) image.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	longest := width
	if height > longest {
		longest = height
	}
	if longest <= maxEdge {
		return src
	}

	scale := float64(maxEdge) / float64(longest)
	dstW := int(float64(width)*scale + 0.5)
	dstH := int(float64(height)*scale + 0.5)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)

	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, errors.Wrap(err, "encode jpeg")
	}

	return buf.Bytes(), nil
}
