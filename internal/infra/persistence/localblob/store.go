// Package localblob implements the device-local persistence layer: a single
// keyed JSON blob per identity holding the entitlement snapshot and the local
// history list, plus the packaged-image object store. It is backed by a
// gocloud.dev bucket so the same code serves a local directory in development
// and a cloud bucket in production.
package localblob

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"iriscan/config"
	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// deviceState is the single keyed blob persisted per identity.
type deviceState struct {
	Identity    *entity.Identity        `json:"identity,omitempty"`
	Entitlement *entity.Entitlement     `json:"entitlement,omitempty"`
	History     []*entity.HistoryRecord `json:"history"`
}

// Store owns the bucket and serializes access to the per-identity state blobs.
type Store struct {
	bucket     *blob.Bucket
	localLimit int
	mu         sync.Mutex
	logger     *slog.Logger
}

// Params holds dependencies for the store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and creates the store.
func New(params Params) (*Store, error) {
	bucket, err := blob.OpenBucket(params.Ctx, params.Config.LocalStore.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "open local store bucket %s", params.Config.LocalStore.URL)
	}

	store := &Store{
		bucket:     bucket,
		localLimit: params.Config.History.LocalLimit,
		logger:     params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return store, nil
}

// NewWithBucket creates a store on an already-open bucket. Used by tests.
func NewWithBucket(bucket *blob.Bucket, localLimit int, logger *slog.Logger) *Store {
	return &Store{bucket: bucket, localLimit: localLimit, logger: logger}
}

func stateKey(identity entity.Identity) string {
	return "state/" + identity.Key() + ".json"
}

func (s *Store) loadState(ctx context.Context, identity entity.Identity) (*deviceState, error) {
	data, err := s.bucket.ReadAll(ctx, stateKey(identity))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return &deviceState{Identity: &identity}, nil
		}

		return nil, errors.Wrap(err, "read device state")
	}

	state := &deviceState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, errors.Wrap(err, "unmarshal device state")
	}

	return state, nil
}

func (s *Store) saveState(ctx context.Context, identity entity.Identity, state *deviceState) error {
	if state.Identity == nil {
		state.Identity = &identity
	}

	data, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "marshal device state")
	}

	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := s.bucket.WriteAll(ctx, stateKey(identity), data, opts); err != nil {
		return errors.Wrap(err, "write device state")
	}

	return nil
}

// appendHistory adds the record, replacing any existing record with the same
// ID so a retried append never duplicates. Anonymous history is bounded; the
// oldest records beyond the bound are silently evicted.
func (s *Store) appendHistory(ctx context.Context, identity entity.Identity, record *entity.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx, identity)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range state.History {
		if existing.ID == record.ID {
			state.History[i] = record
			replaced = true

			break
		}
	}
	if !replaced {
		state.History = append(state.History, record)
	}

	entity.SortHistoryNewestFirst(state.History)

	if !identity.IsAuthenticated() && s.localLimit > 0 && len(state.History) > s.localLimit {
		evicted := len(state.History) - s.localLimit
		state.History = state.History[:s.localLimit]
		s.logger.Debug("evicted oldest local history records",
			slog.Int("evicted", evicted),
			slog.Int("limit", s.localLimit),
		)
	}

	return s.saveState(ctx, identity, state)
}

func (s *Store) listHistory(ctx context.Context, identity entity.Identity) ([]*entity.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx, identity)
	if err != nil {
		return nil, err
	}

	entity.SortHistoryNewestFirst(state.History)

	return state.History, nil
}

func (s *Store) clearHistory(ctx context.Context, identity entity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx, identity)
	if err != nil {
		return err
	}

	// The entitlement snapshot survives a history clear.
	state.History = nil

	return s.saveState(ctx, identity, state)
}

func (s *Store) listPendingHistory(ctx context.Context, identity entity.Identity) ([]*entity.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx, identity)
	if err != nil {
		return nil, err
	}

	pending := make([]*entity.HistoryRecord, 0, len(state.History))
	for _, record := range state.History {
		if record.PendingSync {
			pending = append(pending, record)
		}
	}
	entity.SortHistoryNewestFirst(pending)

	return pending, nil
}

func (s *Store) removeHistory(ctx context.Context, identity entity.Identity, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx, identity)
	if err != nil {
		return err
	}

	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := state.History[:0]
	for _, record := range state.History {
		if _, ok := drop[record.ID]; !ok {
			kept = append(kept, record)
		}
	}
	state.History = kept

	return s.saveState(ctx, identity, state)
}

func (s *Store) loadEntitlement(ctx context.Context, identity entity.Identity) (*entity.Entitlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx, identity)
	if err != nil {
		return nil, err
	}
	if state.Entitlement == nil {
		return nil, repository.ErrEntitlementNotFound
	}

	return state.Entitlement, nil
}

func (s *Store) saveEntitlement(ctx context.Context, identity entity.Identity, entitlement *entity.Entitlement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx, identity)
	if err != nil {
		return err
	}

	state.Entitlement = entitlement

	return s.saveState(ctx, identity, state)
}
