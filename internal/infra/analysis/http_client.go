// Package analysis provides the remote analysis client and the deterministic
// offline fallback generator.
package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"iriscan/config"
	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type client struct {
	endpoint        string
	requestCeiling  int
	maxResponseSize int64
	httpClient      *http.Client
	validate        *validator.Validate
	logger          *slog.Logger
}

// ClientParams holds dependencies for the analysis client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the remote analysis service client. Per-attempt timeouts
// are applied by the retry policy through the request context.
func NewClient(params ClientParams) service.AnalysisClient {
	return &client{
		endpoint:        params.Config.Analysis.Endpoint,
		requestCeiling:  params.Config.Packager.HardLimitBytes,
		maxResponseSize: params.Config.Analysis.MaxResponseSize,
		httpClient:      &http.Client{},
		validate:        validator.New(),
		logger:          params.Logger,
	}
}

type analyzeRequest struct {
	Image           string `json:"image"` // base64-encoded JPEG
	MaxResponseSize int64  `json:"max_response_size"`
}

// Analyze submits the packaged image and validates the response against the
// expected schema. The request ceiling is enforced before any network I/O.
func (c *client) Analyze(ctx context.Context, image *entity.EncodedImage) (*entity.AnalysisPayload, error) {
	if image.Size() > c.requestCeiling {
		return nil, service.ErrPayloadTooLarge
	}

	body, err := json.Marshal(analyzeRequest{
		Image:           base64.StdEncoding.EncodeToString(image.Data),
		MaxResponseSize: c.maxResponseSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal analyze request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build analyze request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call analysis service")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024)) //nolint:errcheck

		return nil, &service.HTTPStatusError{StatusCode: resp.StatusCode}
	}

	payload := &entity.AnalysisPayload{}
	if err := json.NewDecoder(io.LimitReader(resp.Body, c.maxResponseSize)).Decode(payload); err != nil {
		// A malformed body is a contract violation, not an outage.
		return nil, errors.Wrapf(service.ErrSchemaValidation, "decode analysis response: %v", err)
	}

	if err := c.validate.Struct(payload); err != nil {
		return nil, errors.Wrapf(service.ErrSchemaValidation, "analysis response missing required fields: %v", err)
	}

	return payload, nil
}
