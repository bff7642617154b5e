package usecase

import (
	"context"

	"iriscan/internal/domain/entity"
)

// HistoryUsecase reconciles analysis history between the device-local store
// and the remote authoritative store depending on identity mode. No record is
// lost and none is silently duplicated.
type HistoryUsecase interface {
	// Append persists one record for a completed scan. Anonymous records go to
	// the bounded local store; authenticated records go to the remote store and
	// fall back once to the local buffer (pendingSync) on remote failure.
	Append(ctx context.Context, identity entity.Identity, record *entity.HistoryRecord) error

	// List returns the identity's history newest-first. For authenticated
	// identities the remote listing is authoritative, merged with any records
	// still awaiting sync.
	List(ctx context.Context, identity entity.Identity) ([]*entity.HistoryRecord, error)

	// Clear irreversibly removes the history of the store matching the current
	// identity mode only.
	Clear(ctx context.Context, identity entity.Identity) error

	// FlushPending retries locally buffered authenticated records against the
	// remote store.
	FlushPending(ctx context.Context, identity entity.Identity) error
}
