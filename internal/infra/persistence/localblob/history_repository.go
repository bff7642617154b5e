package localblob

import (
	"context"

	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/repository"

	"github.com/google/uuid"
)

type historyRepository struct {
	store *Store
}

// NewHistoryRepository creates the device-local history repository.
func NewHistoryRepository(store *Store) repository.LocalHistoryRepository {
	return &historyRepository{store: store}
}

func (r *historyRepository) Append(ctx context.Context, identity entity.Identity, record *entity.HistoryRecord) error {
	return r.store.appendHistory(ctx, identity, record)
}

func (r *historyRepository) List(ctx context.Context, identity entity.Identity) ([]*entity.HistoryRecord, error) {
	return r.store.listHistory(ctx, identity)
}

func (r *historyRepository) Clear(ctx context.Context, identity entity.Identity) error {
	return r.store.clearHistory(ctx, identity)
}

func (r *historyRepository) ListPending(ctx context.Context, identity entity.Identity) ([]*entity.HistoryRecord, error) {
	return r.store.listPendingHistory(ctx, identity)
}

func (r *historyRepository) Remove(ctx context.Context, identity entity.Identity, ids []uuid.UUID) error {
	return r.store.removeHistory(ctx, identity, ids)
}
