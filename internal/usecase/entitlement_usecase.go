// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"iriscan/internal/domain/entity"
)

// EntitlementUsecase governs the weekly scan quota and subscription state for
// an identity. Quota checks are fail-open: the last known local snapshot is
// used whenever the remote mirror is unreachable.
type EntitlementUsecase interface {
	// CheckQuota reports whether a scan is permitted. A lazy weekly reset is
	// applied first; otherwise the check has no side effect.
	CheckQuota(ctx context.Context, identity entity.Identity) (bool, error)

	// Snapshot returns the current entitlement after applying the lazy weekly
	// reset. Called on app foreground.
	Snapshot(ctx context.Context, identity entity.Identity) (*entity.Entitlement, error)

	// Increment charges one scan against the quota. Called exactly once per
	// successfully completed scan, never for one that failed before producing
	// a history record.
	Increment(ctx context.Context, identity entity.Identity) error

	// ApplyEntitlement applies a verified billing claim.
	ApplyEntitlement(ctx context.Context, identity entity.Identity, claim *entity.VerifiedClaim) error

	// VerifyPurchase verifies a purchase with the billing collaborator (through
	// the retry policy) and applies the resulting claim.
	VerifyPurchase(ctx context.Context, identity entity.Identity, purchaseToken, productID string) (*entity.Entitlement, error)

	// FlushPending replays queued entitlement writes against the remote mirror.
	FlushPending(ctx context.Context, identity entity.Identity) error
}
