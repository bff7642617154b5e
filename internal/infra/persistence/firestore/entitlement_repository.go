package firestore

import (
	"context"
	"log/slog"
	"time"

	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const entitlementsCollection = "entitlements"

type entitlementDoc struct {
	ScansUsed   int64      `firestore:"scans_used"`
	WeeklyLimit int64      `firestore:"weekly_limit"`
	Status      string     `firestore:"status"`
	Expiry      *time.Time `firestore:"expiry,omitempty"`
	LastResetAt time.Time  `firestore:"last_reset_at"`
}

type entitlementRepository struct {
	client *fs.Client
	logger *slog.Logger
}

// EntitlementRepositoryParams holds dependencies for the repository, injected by Fx.
type EntitlementRepositoryParams struct {
	fx.In

	Client *fs.Client `optional:"true"`
	Logger *slog.Logger
}

// NewEntitlementRepository creates the remote entitlement repository.
func NewEntitlementRepository(params EntitlementRepositoryParams) repository.RemoteEntitlementRepository {
	return &entitlementRepository{client: params.Client, logger: params.Logger}
}

func (r *entitlementRepository) guard(identity entity.Identity) error {
	if !identity.IsAuthenticated() {
		return errors.WithStack(repository.ErrIdentityMismatch)
	}
	if r.client == nil {
		return errors.WithStack(repository.ErrRemoteUnavailable)
	}

	return nil
}

func (r *entitlementRepository) doc(identity entity.Identity) *fs.DocumentRef {
	return r.client.Collection(entitlementsCollection).Doc(identity.UID)
}

func (r *entitlementRepository) Load(ctx context.Context, identity entity.Identity) (*entity.Entitlement, error) {
	if err := r.guard(identity); err != nil {
		return nil, err
	}

	snapshot, err := r.doc(identity).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errors.WithStack(repository.ErrEntitlementNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read entitlement document")
	}

	doc := entitlementDoc{}
	if err := snapshot.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode entitlement document")
	}

	return &entity.Entitlement{
		ScansUsed:          uint(doc.ScansUsed),
		WeeklyLimit:        uint(doc.WeeklyLimit),
		SubscriptionStatus: entity.SubscriptionStatus(doc.Status),
		SubscriptionExpiry: doc.Expiry,
		LastResetAt:        doc.LastResetAt,
	}, nil
}

func (r *entitlementRepository) Save(ctx context.Context, identity entity.Identity, entitlement *entity.Entitlement) error {
	if err := r.guard(identity); err != nil {
		return err
	}

	doc := entitlementDoc{
		ScansUsed:   int64(entitlement.ScansUsed),
		WeeklyLimit: int64(entitlement.WeeklyLimit),
		Status:      string(entitlement.SubscriptionStatus),
		Expiry:      entitlement.SubscriptionExpiry,
		LastResetAt: entitlement.LastResetAt,
	}

	if _, err := r.doc(identity).Set(ctx, doc); err != nil {
		return errors.Wrap(err, "write entitlement document")
	}

	return nil
}
