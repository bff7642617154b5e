// Package impl contains the use case implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"iriscan/config"
	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/repository"
	"iriscan/internal/domain/service"
	"iriscan/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type entitlementService struct {
	localRepo  repository.LocalEntitlementRepository
	remoteRepo repository.RemoteEntitlementRepository
	verifier   service.BillingVerifier
	retry      service.RetryPolicy
	clock      service.Clock
	config     *config.Config
	logger     *slog.Logger

	// mu makes every quota mutation an atomic read-modify-write per process,
	// so two racing completions cannot lose an increment.
	mu sync.Mutex
	// pendingRemote holds identities whose remote mirror is stale after a
	// failed write; they are replayed on the next successful contact.
	pendingRemote map[string]entity.Identity
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	LocalRepo  repository.LocalEntitlementRepository
	RemoteRepo repository.RemoteEntitlementRepository
	Verifier   service.BillingVerifier
	Retry      service.RetryPolicy
	Clock      service.Clock
	Config     *config.Config
	Logger     *slog.Logger
}

// NewEntitlementService creates a new entitlement service instance
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	return &entitlementService{
		localRepo:     params.LocalRepo,
		remoteRepo:    params.RemoteRepo,
		verifier:      params.Verifier,
		retry:         params.Retry,
		clock:         params.Clock,
		config:        params.Config,
		logger:        params.Logger,
		pendingRemote: make(map[string]entity.Identity),
	}
}

// CheckQuota reports whether a scan is permitted, applying the lazy weekly
// reset first. The check reads the last known local snapshot, so it stays
// answerable while the remote mirror is unreachable.
func (s *entitlementService) CheckQuota(ctx context.Context, identity entity.Identity) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, err := s.load(ctx, identity)
	if err != nil {
		return false, err
	}
	if err := s.applyLazyReset(ctx, identity, ent); err != nil {
		return false, err
	}

	return ent.CanScan(s.clock.Now()), nil
}

// Snapshot returns the current entitlement after the lazy weekly reset.
func (s *entitlementService) Snapshot(ctx context.Context, identity entity.Identity) (*entity.Entitlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, err := s.load(ctx, identity)
	if err != nil {
		return nil, err
	}
	if err := s.applyLazyReset(ctx, identity, ent); err != nil {
		return nil, err
	}

	return ent, nil
}

// Increment charges one scan. ScansUsed is monotonically non-decreasing
// within a window; only the reset brings it back to zero.
func (s *entitlementService) Increment(ctx context.Context, identity entity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, err := s.load(ctx, identity)
	if err != nil {
		return err
	}
	if err := s.applyLazyReset(ctx, identity, ent); err != nil {
		return err
	}

	ent.ScansUsed++

	return s.persist(ctx, identity, ent)
}

// ApplyEntitlement applies a verified billing claim.
func (s *entitlementService) ApplyEntitlement(ctx context.Context, identity entity.Identity, claim *entity.VerifiedClaim) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyClaim(ctx, identity, claim)
}

// VerifyPurchase verifies the purchase through the retry policy and applies
// the resulting claim. Purchase failures are surfaced, never silently
// degraded; the offline fallback exists for analysis only.
func (s *entitlementService) VerifyPurchase(ctx context.Context, identity entity.Identity, purchaseToken, productID string) (*entity.Entitlement, error) {
	var claim *entity.VerifiedClaim
	err := s.retry.Invoke(ctx, "purchase-verification", s.config.Billing.Timeout, service.ClassifyOutbound, func(ctx context.Context) error {
		verified, err := s.verifier.Verify(ctx, &service.PurchaseRequest{
			PurchaseToken: purchaseToken,
			ProductID:     productID,
		})
		if err != nil {
			return err
		}
		claim = verified

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.applyClaim(ctx, identity, claim); err != nil {
		return nil, err
	}

	return s.load(ctx, identity)
}

// FlushPending replays queued remote writes for the identity.
func (s *entitlementService) FlushPending(ctx context.Context, identity entity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pendingRemote[identity.Key()]; !ok {
		return nil
	}

	ent, err := s.load(ctx, identity)
	if err != nil {
		return err
	}

	if err := s.remoteRepo.Save(ctx, identity, ent); err != nil {
		return errors.Wrap(err, "replay entitlement write")
	}
	delete(s.pendingRemote, identity.Key())

	return nil
}

func (s *entitlementService) applyClaim(ctx context.Context, identity entity.Identity, claim *entity.VerifiedClaim) error {
	ent, err := s.load(ctx, identity)
	if err != nil {
		return err
	}

	if claim.Pro {
		expiry := claim.Expiry
		ent.SubscriptionStatus = entity.SubscriptionPremium
		ent.SubscriptionExpiry = &expiry
	} else {
		ent.SubscriptionStatus = entity.SubscriptionFree
		ent.SubscriptionExpiry = nil
	}

	return s.persist(ctx, identity, ent)
}

// load returns the local snapshot, creating a fresh entitlement on first use.
func (s *entitlementService) load(ctx context.Context, identity entity.Identity) (*entity.Entitlement, error) {
	ent, err := s.localRepo.Load(ctx, identity)
	if errors.Is(err, repository.ErrEntitlementNotFound) {
		return entity.NewEntitlement(s.config.Entitlement.WeeklyLimit, s.clock.Now()), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load entitlement snapshot")
	}

	return ent, nil
}

// applyLazyReset opens a new window when the interval has elapsed. Idempotent
// within the same window.
func (s *entitlementService) applyLazyReset(ctx context.Context, identity entity.Identity, ent *entity.Entitlement) error {
	now := s.clock.Now()
	if !ent.ResetDue(now, s.config.Entitlement.ResetInterval) {
		return nil
	}

	ent.Reset(now)

	return s.persist(ctx, identity, ent)
}

// persist writes the local snapshot, then mirrors to the remote store for
// authenticated identities. A remote failure queues the identity for replay
// and never blocks the caller.
func (s *entitlementService) persist(ctx context.Context, identity entity.Identity, ent *entity.Entitlement) error {
	if err := s.localRepo.Save(ctx, identity, ent); err != nil {
		return errors.Wrap(err, "save entitlement snapshot")
	}

	if !identity.IsAuthenticated() {
		return nil
	}

	if err := s.remoteRepo.Save(ctx, identity, ent); err != nil {
		s.logger.Warn("remote entitlement write failed, queued for replay",
			slog.String("identity", identity.Key()),
			slog.Any("error", err),
		)
		s.pendingRemote[identity.Key()] = identity

		return nil
	}

	// Remote contact succeeded; clear any stale queue entry.
	delete(s.pendingRemote, identity.Key())

	return nil
}
