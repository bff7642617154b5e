// Package billing provides the purchase verification client. The verifier is
// an external collaborator; this client only transports requests and validates
// the signed entitlement claim it returns.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"iriscan/config"
	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type client struct {
	endpoint   string
	signingKey []byte
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds dependencies for the billing client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the billing verifier client.
func NewClient(params ClientParams) service.BillingVerifier {
	return &client{
		endpoint:   params.Config.Billing.Endpoint,
		signingKey: []byte(params.Config.Billing.ClaimSigningKey),
		httpClient: &http.Client{},
		logger:     params.Logger,
	}
}

type verifyResponse struct {
	Success         bool   `json:"success"`
	IsPro           bool   `json:"is_pro"`
	ExpiryTimestamp int64  `json:"expiry_timestamp"`
	ClaimToken      string `json:"claim_token,omitempty"` // Signed entitlement claim, when issued.
}

// Verify submits the purchase token and returns the verified claim. When the
// verifier attaches a signed claim token, the claim is rebuilt from the token
// after signature verification; the plain response fields are the fallback.
func (c *client) Verify(ctx context.Context, req *service.PurchaseRequest) (*entity.VerifiedClaim, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "marshal verify request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build verify request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "call billing verifier")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024)) //nolint:errcheck

		return nil, &service.HTTPStatusError{StatusCode: resp.StatusCode}
	}

	var payload verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode verify response")
	}

	if !payload.Success {
		return nil, service.ErrPurchaseRejected
	}

	if payload.ClaimToken != "" {
		claim, err := c.parseSignedClaim(payload.ClaimToken, req.ProductID)
		if err != nil {
			return nil, err
		}

		return claim, nil
	}

	return &entity.VerifiedClaim{
		Pro:       payload.IsPro,
		Expiry:    time.Unix(payload.ExpiryTimestamp, 0),
		ProductID: req.ProductID,
	}, nil
}

// parseSignedClaim verifies the HMAC signature and extracts the entitlement
// claim. An unverifiable token rejects the purchase rather than falling back
// to the unsigned response fields.
func (c *client) parseSignedClaim(tokenString, productID string) (*entity.VerifiedClaim, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return c.signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, errors.Wrap(err, "verify entitlement claim signature")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claim format in entitlement token")
	}

	pro, _ := claims["pro"].(bool)

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return nil, errors.New("entitlement claim missing expiry")
	}

	return &entity.VerifiedClaim{
		Pro:       pro,
		Expiry:    expiry.Time,
		ProductID: productID,
	}, nil
}
