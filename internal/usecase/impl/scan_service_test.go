package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"iriscan/config"
	apperrors "iriscan/internal/domain/errors"
	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/service"
	"iriscan/internal/infra/retry"
	mockSvc "iriscan/internal/mocks/service"
	mockUC "iriscan/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scanTestFixture struct {
	entitlement *mockUC.MockEntitlementUsecase
	history     *mockUC.MockHistoryUsecase
	packer      *mockSvc.MockImagePacker
	imageStore  *mockSvc.MockImageStore
	analysis    *mockSvc.MockAnalysisClient
	fallback    *mockSvc.MockFallbackGenerator
	publisher   *mockSvc.MockEventPublisher
	clock       *mockSvc.MockClock
	service     *scanService
}

func newScanFixture(t *testing.T) *scanTestFixture {
	t.Helper()

	f := &scanTestFixture{
		entitlement: mockUC.NewMockEntitlementUsecase(t),
		history:     mockUC.NewMockHistoryUsecase(t),
		packer:      mockSvc.NewMockImagePacker(t),
		imageStore:  mockSvc.NewMockImageStore(t),
		analysis:    mockSvc.NewMockAnalysisClient(t),
		fallback:    mockSvc.NewMockFallbackGenerator(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		clock:       mockSvc.NewMockClock(t),
	}

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{
		Analysis: &config.AnalysisConfig{Timeout: time.Second},
	}

	svc := NewScanService(ScanServiceParams{
		Entitlement: f.entitlement,
		History:     f.history,
		Packer:      f.packer,
		ImageStore:  f.imageStore,
		Analysis:    f.analysis,
		Fallback:    f.fallback,
		Retry:       retry.New(retry.Params{Logger: logger}),
		Publisher:   f.publisher,
		Clock:       f.clock,
		Config:      cfg,
		Logger:      logger,
	})
	f.service = svc.(*scanService)

	return f
}

func testEncodedImage() *entity.EncodedImage {
	return &entity.EncodedImage{
		Data:    []byte("jpeg-bytes"),
		Width:   800,
		Height:  600,
		Quality: 85,
		Passes:  1,
	}
}

func TestScanService_Scan_HappyPath(t *testing.T) {
	f := newScanFixture(t)
	identity := entity.NewAuthenticatedIdentity("user-1")
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	raw := []byte("raw-photo")
	image := testEncodedImage()
	analysis := &entity.AnalysisPayload{PatternName: "Radiant Halo"}

	f.entitlement.EXPECT().CheckQuota(mock.Anything, identity).Return(true, nil)
	f.packer.EXPECT().Pack(mock.Anything, raw).Return(image, nil)
	f.analysis.EXPECT().Analyze(mock.Anything, image).Return(analysis, nil)
	f.imageStore.EXPECT().Save(mock.Anything, identity, image).Return("images/user-1/abc.jpg", nil)
	f.clock.EXPECT().Now().Return(now)

	f.history.EXPECT().
		Append(mock.Anything, identity, mock.MatchedBy(func(r *entity.HistoryRecord) bool {
			return r.ImageRef == "images/user-1/abc.jpg" && r.Analysis == analysis && r.CreatedAt.Equal(now)
		})).
		Return(nil).
		Once()

	f.entitlement.EXPECT().Increment(mock.Anything, identity).Return(nil).Once()

	f.publisher.EXPECT().
		PublishScanCompleted(mock.Anything, mock.MatchedBy(func(e *service.ScanCompletedEvent) bool {
			return !e.Fallback && e.IdentityKind == "authenticated"
		})).
		Return(nil)

	result, err := f.service.Scan(context.Background(), identity, raw)
	require.NoError(t, err)
	assert.Equal(t, entity.ScanStateSucceeded, result.State)
	assert.False(t, result.Fallback)
	require.NotNil(t, result.Record)
	assert.Equal(t, analysis, result.Record.Analysis)
}

func TestScanService_Scan_QuotaExhausted(t *testing.T) {
	f := newScanFixture(t)
	identity := entity.NewAnonymousIdentity("device-abc")

	f.entitlement.EXPECT().CheckQuota(mock.Anything, identity).Return(false, nil)

	// Nothing leaves the device: no packing, no submission, no history write.
	result, err := f.service.Scan(context.Background(), identity, []byte("raw"))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrQuotaExceeded)
}

func TestScanService_Scan_PayloadTooLarge(t *testing.T) {
	f := newScanFixture(t)
	identity := entity.NewAnonymousIdentity("device-abc")
	raw := []byte("raw-photo")

	f.entitlement.EXPECT().CheckQuota(mock.Anything, identity).Return(true, nil)
	f.packer.EXPECT().Pack(mock.Anything, raw).Return(nil, errors.Wrap(service.ErrPayloadTooLarge, "pack image"))

	_, err := f.service.Scan(context.Background(), identity, raw)
	require.Error(t, err)

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", appErr.ErrorCode())
}

func TestScanService_Scan_OutageFallsBack(t *testing.T) {
	f := newScanFixture(t)
	identity := entity.NewAnonymousIdentity("device-abc")
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	raw := []byte("raw-photo")
	image := testEncodedImage()
	synthesized := &entity.AnalysisPayload{PatternName: "Still Water"}

	f.entitlement.EXPECT().CheckQuota(mock.Anything, identity).Return(true, nil)
	f.packer.EXPECT().Pack(mock.Anything, raw).Return(image, nil)

	// A transient outage is retried exactly once, then degraded to the
	// deterministic offline payload.
	f.analysis.EXPECT().
		Analyze(mock.Anything, image).
		Return(nil, errors.New("connection refused")).
		Twice()
	f.fallback.EXPECT().Generate(image).Return(synthesized)

	f.imageStore.EXPECT().Save(mock.Anything, identity, image).Return("images/device-abc/abc.jpg", nil)
	f.clock.EXPECT().Now().Return(now)
	f.history.EXPECT().Append(mock.Anything, identity, mock.Anything).Return(nil).Once()
	f.entitlement.EXPECT().Increment(mock.Anything, identity).Return(nil).Once()
	f.publisher.EXPECT().
		PublishScanCompleted(mock.Anything, mock.MatchedBy(func(e *service.ScanCompletedEvent) bool {
			return e.Fallback
		})).
		Return(nil)

	result, err := f.service.Scan(context.Background(), identity, raw)
	require.NoError(t, err)
	assert.Equal(t, entity.ScanStateFallbackSucceeded, result.State)
	assert.True(t, result.Fallback)
	assert.Equal(t, synthesized, result.Record.Analysis)
}

func TestScanService_Scan_SchemaViolationFallsBackWithoutRetry(t *testing.T) {
	f := newScanFixture(t)
	identity := entity.NewAnonymousIdentity("device-abc")
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	raw := []byte("raw-photo")
	image := testEncodedImage()
	synthesized := &entity.AnalysisPayload{PatternName: "Woven Ring"}

	f.entitlement.EXPECT().CheckQuota(mock.Anything, identity).Return(true, nil)
	f.packer.EXPECT().Pack(mock.Anything, raw).Return(image, nil)

	f.analysis.EXPECT().
		Analyze(mock.Anything, image).
		Return(nil, errors.Wrap(service.ErrSchemaValidation, "missing pattern_name")).
		Once()
	f.fallback.EXPECT().Generate(image).Return(synthesized)

	f.imageStore.EXPECT().Save(mock.Anything, identity, image).Return("", nil)
	f.clock.EXPECT().Now().Return(now)
	f.history.EXPECT().Append(mock.Anything, identity, mock.Anything).Return(nil).Once()
	f.entitlement.EXPECT().Increment(mock.Anything, identity).Return(nil).Once()
	f.publisher.EXPECT().PublishScanCompleted(mock.Anything, mock.Anything).Return(nil)

	result, err := f.service.Scan(context.Background(), identity, raw)
	require.NoError(t, err)
	assert.Equal(t, entity.ScanStateFallbackSucceeded, result.State)
}

func TestScanService_Scan_AppendFailureChargesNothing(t *testing.T) {
	f := newScanFixture(t)
	identity := entity.NewAnonymousIdentity("device-abc")
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	raw := []byte("raw-photo")
	image := testEncodedImage()

	f.entitlement.EXPECT().CheckQuota(mock.Anything, identity).Return(true, nil)
	f.packer.EXPECT().Pack(mock.Anything, raw).Return(image, nil)
	f.analysis.EXPECT().Analyze(mock.Anything, image).Return(&entity.AnalysisPayload{PatternName: "Solar Flare"}, nil)
	f.imageStore.EXPECT().Save(mock.Anything, identity, image).Return("images/device-abc/abc.jpg", nil)
	f.clock.EXPECT().Now().Return(now)

	f.history.EXPECT().
		Append(mock.Anything, identity, mock.Anything).
		Return(errors.New("disk full")).
		Once()

	// No record means no charge and no completion event.
	result, err := f.service.Scan(context.Background(), identity, raw)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, entity.ScanStateFailed, result.State)
	f.entitlement.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishScanCompleted", mock.Anything, mock.Anything)
}

func TestScanService_Scan_ImageStoreFailureIsAbsorbed(t *testing.T) {
	f := newScanFixture(t)
	identity := entity.NewAnonymousIdentity("device-abc")
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	raw := []byte("raw-photo")
	image := testEncodedImage()

	f.entitlement.EXPECT().CheckQuota(mock.Anything, identity).Return(true, nil)
	f.packer.EXPECT().Pack(mock.Anything, raw).Return(image, nil)
	f.analysis.EXPECT().Analyze(mock.Anything, image).Return(&entity.AnalysisPayload{PatternName: "Solar Flare"}, nil)
	f.imageStore.EXPECT().Save(mock.Anything, identity, image).Return("", errors.New("bucket gone"))
	f.clock.EXPECT().Now().Return(now)

	f.history.EXPECT().
		Append(mock.Anything, identity, mock.MatchedBy(func(r *entity.HistoryRecord) bool {
			return r.ImageRef == ""
		})).
		Return(nil).
		Once()
	f.entitlement.EXPECT().Increment(mock.Anything, identity).Return(nil).Once()
	f.publisher.EXPECT().PublishScanCompleted(mock.Anything, mock.Anything).Return(nil)

	result, err := f.service.Scan(context.Background(), identity, raw)
	require.NoError(t, err)
	assert.Equal(t, entity.ScanStateSucceeded, result.State)
	assert.Empty(t, result.Record.ImageRef)
}

func TestScanService_Scan_IncrementFailureDoesNotFailScan(t *testing.T) {
	f := newScanFixture(t)
	identity := entity.NewAnonymousIdentity("device-abc")
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	raw := []byte("raw-photo")
	image := testEncodedImage()

	f.entitlement.EXPECT().CheckQuota(mock.Anything, identity).Return(true, nil)
	f.packer.EXPECT().Pack(mock.Anything, raw).Return(image, nil)
	f.analysis.EXPECT().Analyze(mock.Anything, image).Return(&entity.AnalysisPayload{PatternName: "Solar Flare"}, nil)
	f.imageStore.EXPECT().Save(mock.Anything, identity, image).Return("images/device-abc/abc.jpg", nil)
	f.clock.EXPECT().Now().Return(now)
	f.history.EXPECT().Append(mock.Anything, identity, mock.Anything).Return(nil).Once()
	f.entitlement.EXPECT().Increment(mock.Anything, identity).Return(errors.New("write failed")).Once()
	f.publisher.EXPECT().PublishScanCompleted(mock.Anything, mock.Anything).Return(nil)

	// The record is already durable; the charge failure must not undo it.
	result, err := f.service.Scan(context.Background(), identity, raw)
	require.NoError(t, err)
	assert.Equal(t, entity.ScanStateSucceeded, result.State)
}

func TestScanService_Scan_PublishFailureIsBestEffort(t *testing.T) {
	f := newScanFixture(t)
	identity := entity.NewAnonymousIdentity("device-abc")
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	raw := []byte("raw-photo")
	image := testEncodedImage()

	f.entitlement.EXPECT().CheckQuota(mock.Anything, identity).Return(true, nil)
	f.packer.EXPECT().Pack(mock.Anything, raw).Return(image, nil)
	f.analysis.EXPECT().Analyze(mock.Anything, image).Return(&entity.AnalysisPayload{PatternName: "Solar Flare"}, nil)
	f.imageStore.EXPECT().Save(mock.Anything, identity, image).Return("images/device-abc/abc.jpg", nil)
	f.clock.EXPECT().Now().Return(now)
	f.history.EXPECT().Append(mock.Anything, identity, mock.Anything).Return(nil).Once()
	f.entitlement.EXPECT().Increment(mock.Anything, identity).Return(nil).Once()
	f.publisher.EXPECT().PublishScanCompleted(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	result, err := f.service.Scan(context.Background(), identity, raw)
	require.NoError(t, err)
	assert.Equal(t, entity.ScanStateSucceeded, result.State)
}
