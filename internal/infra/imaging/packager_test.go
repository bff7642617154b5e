package imaging

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log/slog"
	"math/rand"
	"testing"

	"iriscan/config"
	"iriscan/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPackagerForTest(cfg *config.PackagerConfig) service.ImagePacker {
	return New(Params{
		Config: &config.Config{Packager: cfg},
		Logger: slog.New(slog.DiscardHandler),
	})
}

func defaultPackagerConfig() *config.PackagerConfig {
	return &config.PackagerConfig{
		MaxEdge:           800,
		SoftLimitBytes:    2 << 20,
		HardLimitBytes:    3 << 20,
		FirstPassQuality:  85,
		SecondPassQuality: 60,
		SecondPassMaxEdge: 640,
	}
}

// noisyJPEG produces a photo-like test image; random pixels compress poorly,
// which lets small byte ceilings exercise the second pass.
func noisyJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	rng := rand.New(rand.NewSource(42))
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}))

	return buf.Bytes()
}

func flatPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: 40, G: 90, B: 160, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestPackager_Pack_ResamplesToEdgeBound(t *testing.T) {
	packer := newPackagerForTest(defaultPackagerConfig())

	result, err := packer.Pack(context.Background(), noisyJPEG(t, 1600, 1200))
	require.NoError(t, err)

	assert.Equal(t, 800, result.Width)
	assert.Equal(t, 600, result.Height)
	assert.Equal(t, 1, result.Passes)
	assert.Equal(t, 85, result.Quality)
	assert.LessOrEqual(t, result.Size(), 3<<20)
}

func TestPackager_Pack_SmallImageKeepsDimensions(t *testing.T) {
	packer := newPackagerForTest(defaultPackagerConfig())

	result, err := packer.Pack(context.Background(), noisyJPEG(t, 320, 240))
	require.NoError(t, err)

	assert.Equal(t, 320, result.Width)
	assert.Equal(t, 240, result.Height)
	assert.Equal(t, 1, result.Passes)
}

func TestPackager_Pack_AcceptsPNGInput(t *testing.T) {
	packer := newPackagerForTest(defaultPackagerConfig())

	result, err := packer.Pack(context.Background(), flatPNG(t, 1024, 768))
	require.NoError(t, err)

	assert.Equal(t, 800, result.Width)
	assert.NotEmpty(t, result.Data)
}

func TestPackager_Pack_CompliantPayloadSkipsSecondPass(t *testing.T) {
	// A payload already between the soft target and the hard ceiling after the
	// first pass is transmitted as-is; the aggressive pass only triggers past
	// the hard ceiling.
	cfg := defaultPackagerConfig()
	cfg.SoftLimitBytes = 2 << 10 // first-pass output will exceed this
	cfg.HardLimitBytes = 3 << 20 // but stay well under this

	packer := newPackagerForTest(cfg)

	result, err := packer.Pack(context.Background(), noisyJPEG(t, 1600, 1200))
	require.NoError(t, err)

	assert.Greater(t, result.Size(), cfg.SoftLimitBytes)
	assert.Equal(t, 1, result.Passes)
}

func TestPackager_Pack_SecondPassShrinksOversizedPayload(t *testing.T) {
	cfg := defaultPackagerConfig()
	cfg.HardLimitBytes = 200 << 10
	cfg.SoftLimitBytes = 150 << 10

	packer := newPackagerForTest(cfg)

	result, err := packer.Pack(context.Background(), noisyJPEG(t, 1600, 1200))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Passes)
	assert.LessOrEqual(t, result.Width, 640)
	assert.LessOrEqual(t, result.Size(), cfg.HardLimitBytes)
}

func TestPackager_Pack_RejectsPayloadOverCeiling(t *testing.T) {
	// Ceilings no encode can meet: the packager must refuse to transmit.
	cfg := defaultPackagerConfig()
	cfg.HardLimitBytes = 64
	cfg.SoftLimitBytes = 32

	packer := newPackagerForTest(cfg)

	_, err := packer.Pack(context.Background(), noisyJPEG(t, 1600, 1200))
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPayloadTooLarge)
}

func TestPackager_Pack_RejectsUndecodableInput(t *testing.T) {
	packer := newPackagerForTest(defaultPackagerConfig())

	_, err := packer.Pack(context.Background(), []byte("not an image"))
	require.Error(t, err)
}

func TestPackager_Pack_RejectsEmptyInput(t *testing.T) {
	packer := newPackagerForTest(defaultPackagerConfig())

	_, err := packer.Pack(context.Background(), nil)
	require.Error(t, err)
}

func TestPackager_Pack_Idempotent(t *testing.T) {
	packer := newPackagerForTest(defaultPackagerConfig())

	first, err := packer.Pack(context.Background(), noisyJPEG(t, 1600, 1200))
	require.NoError(t, err)

	// Re-packing an already packaged payload keeps its dimensions and stays
	// under the ceiling.
	second, err := packer.Pack(context.Background(), first.Data)
	require.NoError(t, err)

	assert.Equal(t, first.Width, second.Width)
	assert.Equal(t, first.Height, second.Height)
	assert.Equal(t, 1, second.Passes)
	assert.LessOrEqual(t, second.Size(), 3<<20)
}

func TestPackager_Pack_CancelledContext(t *testing.T) {
	packer := newPackagerForTest(defaultPackagerConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := packer.Pack(ctx, noisyJPEG(t, 320, 240))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
