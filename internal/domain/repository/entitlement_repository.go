package repository

import (
	"context"

	"iriscan/internal/domain/entity"
	"iriscan/internal/errors"
)

// ErrEntitlementNotFound is returned when no entitlement exists for an identity yet.
var ErrEntitlementNotFound = errors.New("entitlement not found")

// EntitlementRepository persists entitlement records keyed by identity.
type EntitlementRepository interface {
	// Load retrieves the entitlement for the identity.
	Load(ctx context.Context, identity entity.Identity) (*entity.Entitlement, error)

	// Save persists the entitlement for the identity.
	Save(ctx context.Context, identity entity.Identity, entitlement *entity.Entitlement) error
}

// LocalEntitlementRepository is the device-local snapshot, always readable and
// the source of truth for quota checks when the remote is unreachable.
type LocalEntitlementRepository interface {
	EntitlementRepository
}

// RemoteEntitlementRepository mirrors the entitlement for authenticated
// identities. Writes that fail are queued and replayed on next contact.
type RemoteEntitlementRepository interface {
	EntitlementRepository
}
