package service

import (
	"context"

	"iriscan/internal/domain/entity"
	"iriscan/internal/errors"
)

// ErrPayloadTooLarge is returned when the encoded payload cannot be brought
// under the hard size ceiling even after the aggressive second pass. The
// caller must not transmit.
var ErrPayloadTooLarge = errors.New("encoded payload exceeds size ceiling")

// ImagePacker normalizes a captured photo into a transport-safe encoded
// payload under the hard size ceiling. Packing an already-compliant payload is
// idempotent up to one additional encode pass.
type ImagePacker interface {
	Pack(ctx context.Context, raw []byte) (*entity.EncodedImage, error)
}

// ImageStore persists one packaged image per scan and returns an opaque
// reference recorded on the history entry.
type ImageStore interface {
	Save(ctx context.Context, identity entity.Identity, image *entity.EncodedImage) (string, error)
}
