package localblob

import (
	"context"

	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/repository"
)

type entitlementRepository struct {
	store *Store
}

// NewEntitlementRepository creates the device-local entitlement repository.
func NewEntitlementRepository(store *Store) repository.LocalEntitlementRepository {
	return &entitlementRepository{store: store}
}

func (r *entitlementRepository) Load(ctx context.Context, identity entity.Identity) (*entity.Entitlement, error) {
	return r.store.loadEntitlement(ctx, identity)
}

func (r *entitlementRepository) Save(ctx context.Context, identity entity.Identity, entitlement *entity.Entitlement) error {
	return r.store.saveEntitlement(ctx, identity, entitlement)
}
