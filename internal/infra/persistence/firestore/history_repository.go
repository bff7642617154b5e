package firestore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
)

const (
	usersCollection = "users"
	scansCollection = "scans"
)

// historyDoc is the Firestore document for one history record. The analysis
// payload is stored as an opaque JSON blob; the engine never indexes into it.
type historyDoc struct {
	ID           string    `firestore:"id"`
	ImageRef     string    `firestore:"image_ref"`
	AnalysisJSON string    `firestore:"analysis_json"`
	CreatedAt    time.Time `firestore:"created_at"`
}

type historyRepository struct {
	client *fs.Client
	logger *slog.Logger
}

// HistoryRepositoryParams holds dependencies for the repository, injected by Fx.
type HistoryRepositoryParams struct {
	fx.In

	Client *fs.Client `optional:"true"`
	Logger *slog.Logger
}

// NewHistoryRepository creates the remote history repository.
func NewHistoryRepository(params HistoryRepositoryParams) repository.RemoteHistoryRepository {
	return &historyRepository{client: params.Client, logger: params.Logger}
}

func (r *historyRepository) scans(identity entity.Identity) *fs.CollectionRef {
	return r.client.Collection(usersCollection).Doc(identity.UID).Collection(scansCollection)
}

func (r *historyRepository) guard(identity entity.Identity) error {
	if !identity.IsAuthenticated() {
		return errors.WithStack(repository.ErrIdentityMismatch)
	}
	if r.client == nil {
		return errors.WithStack(repository.ErrRemoteUnavailable)
	}

	return nil
}

// Append writes the record keyed by its ID; a retried append overwrites the
// same document instead of duplicating it. The write is durable only once
// Firestore acknowledges.
func (r *historyRepository) Append(ctx context.Context, identity entity.Identity, record *entity.HistoryRecord) error {
	if err := r.guard(identity); err != nil {
		return err
	}

	analysisJSON, err := json.Marshal(record.Analysis)
	if err != nil {
		return errors.Wrap(err, "marshal analysis payload")
	}

	doc := historyDoc{
		ID:           record.ID.String(),
		ImageRef:     record.ImageRef,
		AnalysisJSON: string(analysisJSON),
		CreatedAt:    record.CreatedAt,
	}

	if _, err := r.scans(identity).Doc(doc.ID).Set(ctx, doc); err != nil {
		return errors.Wrap(err, "write history record")
	}

	return nil
}

func (r *historyRepository) List(ctx context.Context, identity entity.Identity) ([]*entity.HistoryRecord, error) {
	if err := r.guard(identity); err != nil {
		return nil, err
	}

	iter := r.scans(identity).OrderBy("created_at", fs.Desc).Documents(ctx)
	defer iter.Stop()

	var records []*entity.HistoryRecord
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate history records")
		}

		record, err := docToRecord(snapshot)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *historyRepository) Clear(ctx context.Context, identity entity.Identity) error {
	if err := r.guard(identity); err != nil {
		return err
	}

	iter := r.scans(identity).Documents(ctx)
	defer iter.Stop()

	writer := r.client.BulkWriter(ctx)
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "iterate history records for clear")
		}

		if _, err := writer.Delete(snapshot.Ref); err != nil {
			return errors.Wrap(err, "queue history record delete")
		}
	}
	writer.End()

	return nil
}

func docToRecord(snapshot *fs.DocumentSnapshot) (*entity.HistoryRecord, error) {
	doc := historyDoc{}
	if err := snapshot.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode history document")
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrap(err, "parse history record id")
	}

	analysis := &entity.AnalysisPayload{}
	if err := json.Unmarshal([]byte(doc.AnalysisJSON), analysis); err != nil {
		return nil, errors.Wrap(err, "unmarshal analysis payload")
	}

	return &entity.HistoryRecord{
		ID:        id,
		ImageRef:  doc.ImageRef,
		Analysis:  analysis,
		CreatedAt: doc.CreatedAt,
	}, nil
}
