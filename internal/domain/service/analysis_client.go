// Package service defines interfaces for domain services provided by the
// infrastructure layer.
package service

import (
	"context"
	"fmt"

	"iriscan/internal/domain/entity"
	"iriscan/internal/errors"
)

// ErrSchemaValidation is returned when the remote analysis response is
// malformed or missing required fields. It indicates a collaborator contract
// violation rather than an outage and is never retried.
var ErrSchemaValidation = errors.New("analysis response failed schema validation")

// HTTPStatusError is a non-2xx response from an outbound collaborator.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected response status %d", e.StatusCode)
}

// AnalysisClient submits a packaged image to the remote analysis service and
// returns the validated analysis payload.
type AnalysisClient interface {
	Analyze(ctx context.Context, image *entity.EncodedImage) (*entity.AnalysisPayload, error)
}

// FallbackGenerator produces a deterministic, locally synthesized analysis
// payload when the remote service is unavailable. The same image always yields
// the same payload.
type FallbackGenerator interface {
	Generate(image *entity.EncodedImage) *entity.AnalysisPayload
}
