package localblob

import (
	"context"

	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
)

type imageStore struct {
	store *Store
}

// NewImageStore creates the packaged-image object store. One binary object is
// written per scan; the returned key is the opaque image reference recorded on
// the history entry.
func NewImageStore(store *Store) service.ImageStore {
	return &imageStore{store: store}
}

func (s *imageStore) Save(ctx context.Context, identity entity.Identity, image *entity.EncodedImage) (string, error) {
	key := "images/" + identity.Key() + "/" + uuid.NewString() + ".jpg"

	opts := &blob.WriterOptions{ContentType: "image/jpeg"}
	if err := s.store.bucket.WriteAll(ctx, key, image.Data, opts); err != nil {
		return "", errors.Wrap(err, "write packaged image")
	}

	return key, nil
}
