// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"iriscan/internal/domain/entity"
	"iriscan/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for history persistence.
var (
	// ErrRecordNotFound is returned when a history record is not found.
	ErrRecordNotFound = errors.New("history record not found")
	// ErrRemoteUnavailable is returned when the remote store cannot be reached
	// or was never configured. Callers fall back to the local buffer.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
	// ErrIdentityMismatch is returned when an operation is routed to a store
	// that does not match the identity mode.
	ErrIdentityMismatch = errors.New("operation does not match identity mode")
)

// HistoryRepository defines the operations shared by the local and remote
// history stores. List returns records newest-first.
type HistoryRepository interface {
	// Append persists a new history record. Appending an existing record ID is
	// idempotent; it must never produce a duplicate.
	Append(ctx context.Context, identity entity.Identity, record *entity.HistoryRecord) error

	// List retrieves the history for the identity, newest-first.
	List(ctx context.Context, identity entity.Identity) ([]*entity.HistoryRecord, error)

	// Clear irreversibly removes the identity's history from this store only.
	Clear(ctx context.Context, identity entity.Identity) error
}

// LocalHistoryRepository is the device-local store. For anonymous identities it
// is authoritative and bounded; for authenticated identities it only buffers
// records that failed the remote write.
type LocalHistoryRepository interface {
	HistoryRepository

	// ListPending retrieves locally buffered records awaiting remote sync.
	ListPending(ctx context.Context, identity entity.Identity) ([]*entity.HistoryRecord, error)

	// Remove deletes the given records, used after a successful remote sync.
	Remove(ctx context.Context, identity entity.Identity, ids []uuid.UUID) error
}

// RemoteHistoryRepository is the authoritative store for authenticated
// identities. A write is durable only once it acknowledges.
type RemoteHistoryRepository interface {
	HistoryRepository
}
