package impl

import (
	"context"
	"log/slog"

	"iriscan/config"
	apperrors "iriscan/internal/domain/errors"
	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/service"
	"iriscan/internal/errors"
	"iriscan/internal/usecase"

	"go.uber.org/fx"
)

type scanService struct {
	entitlement usecase.EntitlementUsecase
	history     usecase.HistoryUsecase
	packer      service.ImagePacker
	imageStore  service.ImageStore
	analysis    service.AnalysisClient
	fallback    service.FallbackGenerator
	retry       service.RetryPolicy
	publisher   service.EventPublisher
	clock       service.Clock
	config      *config.Config
	logger      *slog.Logger
}

// ScanServiceParams holds dependencies for ScanService, injected by Fx.
type ScanServiceParams struct {
	fx.In

	Entitlement usecase.EntitlementUsecase
	History     usecase.HistoryUsecase
	Packer      service.ImagePacker
	ImageStore  service.ImageStore
	Analysis    service.AnalysisClient
	Fallback    service.FallbackGenerator
	Retry       service.RetryPolicy
	Publisher   service.EventPublisher
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewScanService creates a new scan workflow orchestrator instance
func NewScanService(params ScanServiceParams) usecase.ScanUsecase {
	return &scanService{
		entitlement: params.Entitlement,
		history:     params.History,
		packer:      params.Packer,
		imageStore:  params.ImageStore,
		analysis:    params.Analysis,
		fallback:    params.Fallback,
		retry:       params.Retry,
		publisher:   params.Publisher,
		clock:       params.Clock,
		config:      params.Config,
		logger:      params.Logger,
	}
}

// Scan runs one scan attempt end to end. The order is fixed: quota check,
// packaging, remote analysis (with fallback), history append, quota charge.
// The quota is charged only after the history record is durably appended, so
// a stored result is never lost to a later failure, and a scan that produced
// no record never consumes quota.
func (s *scanService) Scan(ctx context.Context, identity entity.Identity, raw []byte) (*entity.ScanResult, error) {
	allowed, err := s.entitlement.CheckQuota(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "check scan quota")
	}
	if !allowed {
		return nil, apperrors.ErrQuotaExceeded
	}

	image, err := s.packer.Pack(ctx, raw)
	if err != nil {
		if errors.Is(err, service.ErrPayloadTooLarge) {
			return nil, apperrors.ErrPayloadTooLarge.WithDetails(err.Error())
		}

		return nil, apperrors.ErrInvalidImage.WithDetails(err.Error())
	}

	// Past this point the scan runs to a terminal state even if the caller
	// goes away; abandoning the request must not tear down a submission whose
	// side effects may already have landed.
	ctx = context.WithoutCancel(ctx)

	analysis, usedFallback := s.analyze(ctx, image)

	imageRef, err := s.imageStore.Save(ctx, identity, image)
	if err != nil {
		// The record survives without its image; the reference stays empty.
		s.logger.Warn("image store write failed",
			slog.String("identity", identity.Key()),
			slog.Any("error", err),
		)
		imageRef = ""
	}

	record := entity.NewHistoryRecord(imageRef, analysis, s.clock.Now())
	if err := s.history.Append(ctx, identity, record); err != nil {
		s.logger.Error("history append failed, scan discarded",
			slog.String("record_id", record.ID.String()),
			slog.Any("error", err),
		)

		return &entity.ScanResult{State: entity.ScanStateFailed}, errors.Wrap(err, "append history record")
	}

	// Record is durable; charge the quota. A failure here is logged and
	// absorbed rather than failing a scan whose result is already stored.
	if err := s.entitlement.Increment(ctx, identity); err != nil {
		s.logger.Error("quota increment failed after successful scan",
			slog.String("record_id", record.ID.String()),
			slog.Any("error", err),
		)
	}

	s.publishCompleted(ctx, identity, record, usedFallback)

	state := entity.ScanStateSucceeded
	if usedFallback {
		state = entity.ScanStateFallbackSucceeded
	}

	return &entity.ScanResult{
		State:    state,
		Fallback: usedFallback,
		Record:   record,
	}, nil
}

// analyze submits the packaged image through the retry policy and degrades to
// the deterministic offline payload on any failure. Fallback is a success
// path, not an error path.
func (s *scanService) analyze(ctx context.Context, image *entity.EncodedImage) (*entity.AnalysisPayload, bool) {
	var analysis *entity.AnalysisPayload
	err := s.retry.Invoke(ctx, "analysis", s.config.Analysis.Timeout, service.ClassifyOutbound, func(ctx context.Context) error {
		result, aerr := s.analysis.Analyze(ctx, image)
		if aerr != nil {
			return aerr
		}
		analysis = result

		return nil
	})
	if err == nil {
		return analysis, false
	}

	if errors.Is(err, service.ErrSchemaValidation) {
		s.logger.Error("analysis response rejected, synthesizing fallback",
			slog.Any("error", err),
		)
	} else {
		s.logger.Warn("analysis unavailable, synthesizing fallback",
			slog.Any("error", err),
		)
	}

	return s.fallback.Generate(image), true
}

// publishCompleted emits the scan-completed event. Best-effort only.
func (s *scanService) publishCompleted(ctx context.Context, identity entity.Identity, record *entity.HistoryRecord, usedFallback bool) {
	event := &service.ScanCompletedEvent{
		RecordID:     record.ID.String(),
		IdentityKind: string(identity.Kind),
		Fallback:     usedFallback,
		CompletedAt:  record.CreatedAt,
	}
	if err := s.publisher.PublishScanCompleted(ctx, event); err != nil {
		s.logger.Warn("scan completed event not published",
			slog.String("record_id", record.ID.String()),
			slog.Any("error", err),
		)
	}
}
