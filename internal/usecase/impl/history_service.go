package impl

import (
	"context"
	"log/slog"

	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/repository"
	"iriscan/internal/errors"
	"iriscan/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type historyService struct {
	localRepo  repository.LocalHistoryRepository
	remoteRepo repository.RemoteHistoryRepository
	logger     *slog.Logger
}

// HistoryServiceParams holds dependencies for HistoryService, injected by Fx.
type HistoryServiceParams struct {
	fx.In

	LocalRepo  repository.LocalHistoryRepository
	RemoteRepo repository.RemoteHistoryRepository
	Logger     *slog.Logger
}

// NewHistoryService creates a new history reconciler instance
func NewHistoryService(params HistoryServiceParams) usecase.HistoryUsecase {
	return &historyService{
		localRepo:  params.LocalRepo,
		remoteRepo: params.RemoteRepo,
		logger:     params.Logger,
	}
}

// Append persists one record for a completed scan. Anonymous records go to the
// bounded local store. Authenticated records are durable only on the remote
// ack; a remote failure retries once against the local buffer with the record
// marked pendingSync.
func (s *historyService) Append(ctx context.Context, identity entity.Identity, record *entity.HistoryRecord) error {
	if !identity.IsAuthenticated() {
		if err := s.localRepo.Append(ctx, identity, record); err != nil {
			return errors.Wrap(err, "append local history record")
		}

		return nil
	}

	if err := s.remoteRepo.Append(ctx, identity, record); err != nil {
		s.logger.Warn("remote history write failed, buffering locally",
			slog.String("record_id", record.ID.String()),
			slog.Any("error", err),
		)

		record.PendingSync = true
		if lerr := s.localRepo.Append(ctx, identity, record); lerr != nil {
			return errors.Wrap(errors.Join(err, lerr), "append history record to both stores")
		}

		return nil
	}

	record.PendingSync = false

	// Remote contact succeeded; opportunistically drain the sync buffer.
	if err := s.FlushPending(ctx, identity); err != nil {
		s.logger.Warn("pending history sync failed",
			slog.String("identity", identity.Key()),
			slog.Any("error", err),
		)
	}

	return nil
}

// List returns the identity's history newest-first. The remote listing is
// authoritative for authenticated identities; records still awaiting sync are
// merged in without duplicating anything the remote already acknowledged.
func (s *historyService) List(ctx context.Context, identity entity.Identity) ([]*entity.HistoryRecord, error) {
	if !identity.IsAuthenticated() {
		records, err := s.localRepo.List(ctx, identity)
		if err != nil {
			return nil, errors.Wrap(err, "list local history")
		}

		return records, nil
	}

	remote, err := s.remoteRepo.List(ctx, identity)
	if err != nil {
		// The buffered records are all that is readable offline. They are not
		// authoritative; the next successful remote listing wins.
		s.logger.Warn("remote history listing failed, serving sync buffer",
			slog.String("identity", identity.Key()),
			slog.Any("error", err),
		)

		pending, perr := s.localRepo.ListPending(ctx, identity)
		if perr != nil {
			return nil, errors.Wrap(errors.Join(err, perr), "list history from both stores")
		}

		return pending, nil
	}

	pending, err := s.localRepo.ListPending(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "list pending history")
	}

	return mergeHistory(remote, pending), nil
}

// Clear irreversibly removes history from the store matching the identity mode
// only: an authenticated clear never touches the anonymous local history and
// vice versa.
func (s *historyService) Clear(ctx context.Context, identity entity.Identity) error {
	if !identity.IsAuthenticated() {
		if err := s.localRepo.Clear(ctx, identity); err != nil {
			return errors.Wrap(err, "clear local history")
		}

		return nil
	}

	if err := s.remoteRepo.Clear(ctx, identity); err != nil {
		return errors.Wrap(err, "clear remote history")
	}

	// Drop the sync buffer as well, or cleared records would reappear on the
	// next flush.
	if err := s.localRepo.Clear(ctx, identity); err != nil {
		return errors.Wrap(err, "clear history sync buffer")
	}

	return nil
}

// FlushPending retries locally buffered records against the remote store and
// removes them from the buffer once acknowledged.
func (s *historyService) FlushPending(ctx context.Context, identity entity.Identity) error {
	if !identity.IsAuthenticated() {
		return nil
	}

	pending, err := s.localRepo.ListPending(ctx, identity)
	if err != nil {
		return errors.Wrap(err, "list pending history")
	}
	if len(pending) == 0 {
		return nil
	}

	synced := make([]uuid.UUID, 0, len(pending))
	for _, record := range pending {
		record.PendingSync = false
		if err := s.remoteRepo.Append(ctx, identity, record); err != nil {
			record.PendingSync = true

			break
		}
		synced = append(synced, record.ID)
	}

	if len(synced) == 0 {
		return nil
	}

	if err := s.localRepo.Remove(ctx, identity, synced); err != nil {
		return errors.Wrap(err, "remove synced history records")
	}

	s.logger.Info("synced buffered history records",
		slog.String("identity", identity.Key()),
		slog.Int("count", len(synced)),
	)

	return nil
}

// mergeHistory combines the authoritative remote listing with buffered records,
// deduplicating by ID. The remote copy wins for any record both stores hold.
func mergeHistory(remote, pending []*entity.HistoryRecord) []*entity.HistoryRecord {
	seen := make(map[uuid.UUID]struct{}, len(remote))
	merged := make([]*entity.HistoryRecord, 0, len(remote)+len(pending))

	for _, record := range remote {
		seen[record.ID] = struct{}{}
		merged = append(merged, record)
	}
	for _, record := range pending {
		if _, ok := seen[record.ID]; !ok {
			merged = append(merged, record)
		}
	}

	entity.SortHistoryNewestFirst(merged)

	return merged
}
