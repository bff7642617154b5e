package usecase

import (
	"context"

	"iriscan/internal/domain/entity"
)

// ScanUsecase drives the end-to-end scan workflow: quota check, packaging,
// remote analysis attempt, offline fallback, history write and quota charge,
// in that order. Side effects of an in-flight scan are never cancelled by UI
// teardown; only the display of the outcome is abandoned.
type ScanUsecase interface {
	Scan(ctx context.Context, identity entity.Identity, raw []byte) (*entity.ScanResult, error)
}
