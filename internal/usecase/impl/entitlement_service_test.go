package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"iriscan/config"
	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/repository"
	"iriscan/internal/domain/service"
	"iriscan/internal/infra/retry"
	mockRepo "iriscan/internal/mocks/repository"
	mockSvc "iriscan/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func entitlementTestConfig() *config.Config {
	cfg := &config.Config{
		Entitlement: &config.EntitlementConfig{
			WeeklyLimit:   3,
			ResetInterval: 7 * 24 * time.Hour,
		},
		Billing: &config.BillingConfig{
			Timeout: time.Second,
		},
	}

	return cfg
}

func newEntitlementServiceForTest(t *testing.T, localRepo *mockRepo.MockLocalEntitlementRepository, remoteRepo *mockRepo.MockRemoteEntitlementRepository, verifier *mockSvc.MockBillingVerifier, clock *mockSvc.MockClock) *entitlementService {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	svc := NewEntitlementService(EntitlementServiceParams{
		LocalRepo:  localRepo,
		RemoteRepo: remoteRepo,
		Verifier:   verifier,
		Retry:      retry.New(retry.Params{Logger: logger}),
		Clock:      clock,
		Config:     entitlementTestConfig(),
		Logger:     logger,
	})

	return svc.(*entitlementService)
}

func TestEntitlementService_CheckQuota_FreeTier(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	identity := entity.NewAnonymousIdentity("device-abc")

	tests := []struct {
		name      string
		scansUsed uint
		want      bool
	}{
		{name: "unused quota permits scan", scansUsed: 0, want: true},
		{name: "last scan of the window permits", scansUsed: 2, want: true},
		{name: "exhausted quota denies", scansUsed: 3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			localRepo := mockRepo.NewMockLocalEntitlementRepository(t)
			remoteRepo := mockRepo.NewMockRemoteEntitlementRepository(t)
			verifier := mockSvc.NewMockBillingVerifier(t)
			clock := mockSvc.NewMockClock(t)
			clock.EXPECT().Now().Return(now)

			localRepo.EXPECT().
				Load(mock.Anything, identity).
				Return(&entity.Entitlement{
					ScansUsed:          tt.scansUsed,
					WeeklyLimit:        3,
					SubscriptionStatus: entity.SubscriptionFree,
					LastResetAt:        now.Add(-time.Hour),
				}, nil)

			svc := newEntitlementServiceForTest(t, localRepo, remoteRepo, verifier, clock)

			allowed, err := svc.CheckQuota(context.Background(), identity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestEntitlementService_CheckQuota_PremiumBypassesQuota(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(30 * 24 * time.Hour)
	identity := entity.NewAuthenticatedIdentity("user-1")

	localRepo := mockRepo.NewMockLocalEntitlementRepository(t)
	remoteRepo := mockRepo.NewMockRemoteEntitlementRepository(t)
	verifier := mockSvc.NewMockBillingVerifier(t)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(now)

	localRepo.EXPECT().
		Load(mock.Anything, identity).
		Return(&entity.Entitlement{
			ScansUsed:          10,
			WeeklyLimit:        3,
			SubscriptionStatus: entity.SubscriptionPremium,
			SubscriptionExpiry: &expiry,
			LastResetAt:        now.Add(-time.Hour),
		}, nil)

	svc := newEntitlementServiceForTest(t, localRepo, remoteRepo, verifier, clock)

	allowed, err := svc.CheckQuota(context.Background(), identity)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestEntitlementService_CheckQuota_ExpiredPremiumFallsBackToQuota(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(-time.Minute)
	identity := entity.NewAnonymousIdentity("device-abc")

	localRepo := mockRepo.NewMockLocalEntitlementRepository(t)
	remoteRepo := mockRepo.NewMockRemoteEntitlementRepository(t)
	verifier := mockSvc.NewMockBillingVerifier(t)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(now)

	// Lapsed subscription with an exhausted free quota: the stored premium flag
	// must not be trusted once the expiry has passed.
	localRepo.EXPECT().
		Load(mock.Anything, identity).
		Return(&entity.Entitlement{
			ScansUsed:          3,
			WeeklyLimit:        3,
			SubscriptionStatus: entity.SubscriptionPremium,
			SubscriptionExpiry: &expiry,
			LastResetAt:        now.Add(-time.Hour),
		}, nil)

	svc := newEntitlementServiceForTest(t, localRepo, remoteRepo, verifier, clock)

	allowed, err := svc.CheckQuota(context.Background(), identity)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestEntitlementService_CheckQuota_LazyResetOpensNewWindow(t *testing.T) {
	now := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)
	identity := entity.NewAnonymousIdentity("device-abc")

	localRepo := mockRepo.NewMockLocalEntitlementRepository(t)
	remoteRepo := mockRepo.NewMockRemoteEntitlementRepository(t)
	verifier := mockSvc.NewMockBillingVerifier(t)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(now)

	localRepo.EXPECT().
		Load(mock.Anything, identity).
		Return(&entity.Entitlement{
			ScansUsed:          3,
			WeeklyLimit:        3,
			SubscriptionStatus: entity.SubscriptionFree,
			LastResetAt:        now.Add(-8 * 24 * time.Hour),
		}, nil)

	localRepo.EXPECT().
		Save(mock.Anything, identity, mock.MatchedBy(func(ent *entity.Entitlement) bool {
			return ent.ScansUsed == 0 && ent.LastResetAt.Equal(now)
		})).
		Return(nil)

	svc := newEntitlementServiceForTest(t, localRepo, remoteRepo, verifier, clock)

	allowed, err := svc.CheckQuota(context.Background(), identity)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestEntitlementService_Increment_PersistsCharge(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	identity := entity.NewAnonymousIdentity("device-abc")

	localRepo := mockRepo.NewMockLocalEntitlementRepository(t)
	remoteRepo := mockRepo.NewMockRemoteEntitlementRepository(t)
	verifier := mockSvc.NewMockBillingVerifier(t)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(now)

	localRepo.EXPECT().
		Load(mock.Anything, identity).
		Return(&entity.Entitlement{
			ScansUsed:          1,
			WeeklyLimit:        3,
			SubscriptionStatus: entity.SubscriptionFree,
			LastResetAt:        now.Add(-time.Hour),
		}, nil)

	localRepo.EXPECT().
		Save(mock.Anything, identity, mock.MatchedBy(func(ent *entity.Entitlement) bool {
			return ent.ScansUsed == 2
		})).
		Return(nil)

	svc := newEntitlementServiceForTest(t, localRepo, remoteRepo, verifier, clock)

	require.NoError(t, svc.Increment(context.Background(), identity))
}

func TestEntitlementService_Increment_FirstUseCreatesSnapshot(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	identity := entity.NewAnonymousIdentity("device-new")

	localRepo := mockRepo.NewMockLocalEntitlementRepository(t)
	remoteRepo := mockRepo.NewMockRemoteEntitlementRepository(t)
	verifier := mockSvc.NewMockBillingVerifier(t)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(now)

	localRepo.EXPECT().
		Load(mock.Anything, identity).
		Return(nil, repository.ErrEntitlementNotFound)

	localRepo.EXPECT().
		Save(mock.Anything, identity, mock.MatchedBy(func(ent *entity.Entitlement) bool {
			return ent.ScansUsed == 1 && ent.WeeklyLimit == 3
		})).
		Return(nil)

	svc := newEntitlementServiceForTest(t, localRepo, remoteRepo, verifier, clock)

	require.NoError(t, svc.Increment(context.Background(), identity))
}

func TestEntitlementService_Increment_RemoteFailureQueuesReplay(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	identity := entity.NewAuthenticatedIdentity("user-1")

	localRepo := mockRepo.NewMockLocalEntitlementRepository(t)
	remoteRepo := mockRepo.NewMockRemoteEntitlementRepository(t)
	verifier := mockSvc.NewMockBillingVerifier(t)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(now)

	localRepo.EXPECT().
		Load(mock.Anything, identity).
		Return(&entity.Entitlement{
			WeeklyLimit:        3,
			SubscriptionStatus: entity.SubscriptionFree,
			LastResetAt:        now.Add(-time.Hour),
		}, nil)
	localRepo.EXPECT().
		Save(mock.Anything, identity, mock.Anything).
		Return(nil)

	remoteRepo.EXPECT().
		Save(mock.Anything, identity, mock.Anything).
		Return(repository.ErrRemoteUnavailable).
		Once()

	svc := newEntitlementServiceForTest(t, localRepo, remoteRepo, verifier, clock)

	// The local write is authoritative; the remote mirror failure is absorbed.
	require.NoError(t, svc.Increment(context.Background(), identity))

	// The queued write replays on the next flush.
	remoteRepo.EXPECT().
		Save(mock.Anything, identity, mock.Anything).
		Return(nil).
		Once()

	require.NoError(t, svc.FlushPending(context.Background(), identity))

	// Nothing left queued: flushing again touches no repository.
	require.NoError(t, svc.FlushPending(context.Background(), identity))
}

func TestEntitlementService_VerifyPurchase_AppliesProClaim(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(30 * 24 * time.Hour)
	identity := entity.NewAnonymousIdentity("device-abc")

	localRepo := mockRepo.NewMockLocalEntitlementRepository(t)
	remoteRepo := mockRepo.NewMockRemoteEntitlementRepository(t)
	verifier := mockSvc.NewMockBillingVerifier(t)
	clock := mockSvc.NewMockClock(t)

	verifier.EXPECT().
		Verify(mock.Anything, mock.MatchedBy(func(req *service.PurchaseRequest) bool {
			return req.PurchaseToken == "token-1" && req.ProductID == "premium.monthly"
		})).
		Return(&entity.VerifiedClaim{Pro: true, Expiry: expiry, ProductID: "premium.monthly"}, nil)

	localRepo.EXPECT().
		Load(mock.Anything, identity).
		Return(&entity.Entitlement{
			WeeklyLimit:        3,
			SubscriptionStatus: entity.SubscriptionFree,
			LastResetAt:        now.Add(-time.Hour),
		}, nil)

	localRepo.EXPECT().
		Save(mock.Anything, identity, mock.MatchedBy(func(ent *entity.Entitlement) bool {
			return ent.SubscriptionStatus == entity.SubscriptionPremium &&
				ent.SubscriptionExpiry != nil && ent.SubscriptionExpiry.Equal(expiry)
		})).
		Return(nil)

	svc := newEntitlementServiceForTest(t, localRepo, remoteRepo, verifier, clock)

	ent, err := svc.VerifyPurchase(context.Background(), identity, "token-1", "premium.monthly")
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionPremium, ent.SubscriptionStatus)
	assert.True(t, ent.IsPremium(now))
}

func TestEntitlementService_VerifyPurchase_RejectionSurfaces(t *testing.T) {
	identity := entity.NewAnonymousIdentity("device-abc")

	localRepo := mockRepo.NewMockLocalEntitlementRepository(t)
	remoteRepo := mockRepo.NewMockRemoteEntitlementRepository(t)
	verifier := mockSvc.NewMockBillingVerifier(t)
	clock := mockSvc.NewMockClock(t)

	rejection := errors.Wrap(service.ErrPurchaseRejected, "verify purchase")
	verifier.EXPECT().
		Verify(mock.Anything, mock.Anything).
		Return(nil, rejection).
		Once() // a rejection is terminal, never retried

	svc := newEntitlementServiceForTest(t, localRepo, remoteRepo, verifier, clock)

	_, err := svc.VerifyPurchase(context.Background(), identity, "token-bad", "premium.monthly")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPurchaseRejected)
}
