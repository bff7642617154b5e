package localblob

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newStoreForTest(t *testing.T, localLimit int) *Store {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	return NewWithBucket(bucket, localLimit, slog.New(slog.DiscardHandler))
}

func recordAt(createdAt time.Time) *entity.HistoryRecord {
	return entity.NewHistoryRecord("images/ref.jpg", &entity.AnalysisPayload{
		PatternName:        "Still Water",
		PatternDescription: "A smooth, low-contrast stroma.",
		Sensitivity:        "reserved",
		PatternTags:        []string{"smooth"},
		Insights:           []entity.AnalysisInsight{{Title: "Texture", Body: "Calm weave."}},
		Summary:            "A quiet iris.",
	}, createdAt)
}

func TestHistoryRepository_AppendAndList(t *testing.T) {
	repo := NewHistoryRepository(newStoreForTest(t, 50))
	identity := entity.NewAnonymousIdentity("device-1")
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	older := recordAt(base)
	newer := recordAt(base.Add(time.Hour))

	require.NoError(t, repo.Append(ctx, identity, older))
	require.NoError(t, repo.Append(ctx, identity, newer))

	got, err := repo.List(ctx, identity)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
}

func TestHistoryRepository_AppendIsIdempotentByID(t *testing.T) {
	repo := NewHistoryRepository(newStoreForTest(t, 50))
	identity := entity.NewAnonymousIdentity("device-1")
	ctx := context.Background()

	record := recordAt(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Append(ctx, identity, record))

	// A retried append with the same ID replaces, never duplicates.
	retried := *record
	retried.ImageRef = "images/updated.jpg"
	require.NoError(t, repo.Append(ctx, identity, &retried))

	got, err := repo.List(ctx, identity)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "images/updated.jpg", got[0].ImageRef)
}

func TestHistoryRepository_AnonymousHistoryIsBounded(t *testing.T) {
	repo := NewHistoryRepository(newStoreForTest(t, 3))
	identity := entity.NewAnonymousIdentity("device-1")
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	records := make([]*entity.HistoryRecord, 0, 5)
	for i := 0; i < 5; i++ {
		record := recordAt(base.Add(time.Duration(i) * time.Hour))
		records = append(records, record)
		require.NoError(t, repo.Append(ctx, identity, record))
	}

	got, err := repo.List(ctx, identity)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// The newest three survive; the two oldest were evicted.
	assert.Equal(t, records[4].ID, got[0].ID)
	assert.Equal(t, records[3].ID, got[1].ID)
	assert.Equal(t, records[2].ID, got[2].ID)
}

func TestHistoryRepository_DefaultBoundEvictsOldestAtFiftyOne(t *testing.T) {
	repo := NewHistoryRepository(newStoreForTest(t, 50))
	identity := entity.NewAnonymousIdentity("device-1")
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	oldest := recordAt(base)
	require.NoError(t, repo.Append(ctx, identity, oldest))

	var newest *entity.HistoryRecord
	for i := 1; i <= 50; i++ {
		newest = recordAt(base.Add(time.Duration(i) * time.Minute))
		require.NoError(t, repo.Append(ctx, identity, newest))
	}

	got, err := repo.List(ctx, identity)
	require.NoError(t, err)
	require.Len(t, got, 50)

	// The fifty-first append pushed out exactly the oldest record.
	assert.Equal(t, newest.ID, got[0].ID)
	for _, record := range got {
		assert.NotEqual(t, oldest.ID, record.ID)
	}
}

func TestHistoryRepository_AuthenticatedBufferIsUnbounded(t *testing.T) {
	repo := NewHistoryRepository(newStoreForTest(t, 3))
	identity := entity.NewAuthenticatedIdentity("uid-1")
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, identity, recordAt(base.Add(time.Duration(i)*time.Hour))))
	}

	got, err := repo.List(ctx, identity)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestHistoryRepository_ListPendingFiltersSyncedRecords(t *testing.T) {
	repo := NewHistoryRepository(newStoreForTest(t, 50))
	identity := entity.NewAuthenticatedIdentity("uid-1")
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	synced := recordAt(base)
	pending := recordAt(base.Add(time.Hour))
	pending.PendingSync = true

	require.NoError(t, repo.Append(ctx, identity, synced))
	require.NoError(t, repo.Append(ctx, identity, pending))

	got, err := repo.ListPending(ctx, identity)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pending.ID, got[0].ID)
}

func TestHistoryRepository_RemoveDropsOnlyGivenIDs(t *testing.T) {
	repo := NewHistoryRepository(newStoreForTest(t, 50))
	identity := entity.NewAuthenticatedIdentity("uid-1")
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	keep := recordAt(base)
	drop := recordAt(base.Add(time.Hour))

	require.NoError(t, repo.Append(ctx, identity, keep))
	require.NoError(t, repo.Append(ctx, identity, drop))

	require.NoError(t, repo.Remove(ctx, identity, []uuid.UUID{drop.ID}))

	got, err := repo.List(ctx, identity)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, keep.ID, got[0].ID)
}

func TestHistoryRepository_ClearPreservesEntitlement(t *testing.T) {
	store := newStoreForTest(t, 50)
	historyRepo := NewHistoryRepository(store)
	entitlementRepo := NewEntitlementRepository(store)
	identity := entity.NewAnonymousIdentity("device-1")
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	entitlement := entity.NewEntitlement(3, now)
	entitlement.ScansUsed = 2
	require.NoError(t, entitlementRepo.Save(ctx, identity, entitlement))
	require.NoError(t, historyRepo.Append(ctx, identity, recordAt(now)))

	require.NoError(t, historyRepo.Clear(ctx, identity))

	got, err := historyRepo.List(ctx, identity)
	require.NoError(t, err)
	assert.Empty(t, got)

	loaded, err := entitlementRepo.Load(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, uint(2), loaded.ScansUsed)
}

func TestHistoryRepository_IdentitiesAreIsolated(t *testing.T) {
	repo := NewHistoryRepository(newStoreForTest(t, 50))
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, entity.NewAnonymousIdentity("device-1"), recordAt(now)))

	got, err := repo.List(ctx, entity.NewAnonymousIdentity("device-2"))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.List(ctx, entity.NewAuthenticatedIdentity("device-1"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEntitlementRepository_LoadMissingReturnsNotFound(t *testing.T) {
	repo := NewEntitlementRepository(newStoreForTest(t, 50))

	_, err := repo.Load(context.Background(), entity.NewAnonymousIdentity("device-1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrEntitlementNotFound)
}

func TestEntitlementRepository_SaveThenLoadRoundTrips(t *testing.T) {
	repo := NewEntitlementRepository(newStoreForTest(t, 50))
	identity := entity.NewAnonymousIdentity("device-1")
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	expiry := now.Add(30 * 24 * time.Hour)
	entitlement := entity.NewEntitlement(3, now)
	entitlement.SubscriptionStatus = entity.SubscriptionPremium
	entitlement.SubscriptionExpiry = &expiry

	require.NoError(t, repo.Save(ctx, identity, entitlement))

	loaded, err := repo.Load(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionPremium, loaded.SubscriptionStatus)
	require.NotNil(t, loaded.SubscriptionExpiry)
	assert.True(t, loaded.SubscriptionExpiry.Equal(expiry))
	assert.True(t, loaded.LastResetAt.Equal(now))
}

func TestImageStore_SaveReturnsScopedKey(t *testing.T) {
	store := newStoreForTest(t, 50)
	images := NewImageStore(store)
	identity := entity.NewAnonymousIdentity("device-1")
	ctx := context.Background()

	image := &entity.EncodedImage{Data: []byte("jpeg-bytes")}

	ref, err := images.Save(ctx, identity, image)
	require.NoError(t, err)
	assert.Contains(t, ref, "images/device-device-1/")

	data, err := store.bucket.ReadAll(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, image.Data, data)
}

func TestImageStore_SaveGeneratesDistinctKeys(t *testing.T) {
	images := NewImageStore(newStoreForTest(t, 50))
	identity := entity.NewAnonymousIdentity("device-1")
	ctx := context.Background()

	first, err := images.Save(ctx, identity, &entity.EncodedImage{Data: []byte("a")})
	require.NoError(t, err)
	second, err := images.Save(ctx, identity, &entity.EncodedImage{Data: []byte("b")})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
