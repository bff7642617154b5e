package billing

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"iriscan/config"
	"iriscan/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "claim-signing-key-for-tests"

func newBillingClientForTest(endpoint string) service.BillingVerifier {
	return NewClient(ClientParams{
		Config: &config.Config{
			Billing: &config.BillingConfig{
				Endpoint:        endpoint,
				ClaimSigningKey: testSigningKey,
			},
		},
		Logger: slog.New(slog.DiscardHandler),
	})
}

func purchaseRequest() *service.PurchaseRequest {
	return &service.PurchaseRequest{
		PurchaseToken: "token-abc",
		ProductID:     "iriscan.pro.monthly",
	}
}

func signedClaim(t *testing.T, key string, pro bool, expiry time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"pro": pro,
		"exp": expiry.Unix(),
	})

	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)

	return signed
}

func TestBillingClient_Verify_PlainResponseFields(t *testing.T) {
	expiry := time.Now().Add(30 * 24 * time.Hour).Truncate(time.Second)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req service.PurchaseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "token-abc", req.PurchaseToken)

		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"success":          true,
			"is_pro":           true,
			"expiry_timestamp": expiry.Unix(),
		})
	}))
	defer server.Close()

	client := newBillingClientForTest(server.URL)

	claim, err := client.Verify(context.Background(), purchaseRequest())
	require.NoError(t, err)

	assert.True(t, claim.Pro)
	assert.True(t, claim.Expiry.Equal(expiry))
	assert.Equal(t, "iriscan.pro.monthly", claim.ProductID)
}

func TestBillingClient_Verify_SignedClaimTokenWins(t *testing.T) {
	expiry := time.Now().Add(365 * 24 * time.Hour).Truncate(time.Second)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"success": true,
			// Plain fields contradict the signed claim; the claim is authoritative.
			"is_pro":           false,
			"expiry_timestamp": 0,
			"claim_token":      signedClaim(t, testSigningKey, true, expiry),
		})
	}))
	defer server.Close()

	client := newBillingClientForTest(server.URL)

	claim, err := client.Verify(context.Background(), purchaseRequest())
	require.NoError(t, err)

	assert.True(t, claim.Pro)
	assert.WithinDuration(t, expiry, claim.Expiry, time.Second)
}

func TestBillingClient_Verify_BadClaimSignatureRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"success":     true,
			"is_pro":      true,
			"claim_token": signedClaim(t, "some-other-key", true, time.Now().Add(time.Hour)),
		})
	}))
	defer server.Close()

	client := newBillingClientForTest(server.URL)

	_, err := client.Verify(context.Background(), purchaseRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestBillingClient_Verify_ClaimMissingExpiryRejects(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"pro": true})
	signed, err := token.SignedString([]byte(testSigningKey))
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"success":     true,
			"claim_token": signed,
		})
	}))
	defer server.Close()

	client := newBillingClientForTest(server.URL)

	_, err = client.Verify(context.Background(), purchaseRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing expiry")
}

func TestBillingClient_Verify_UnsuccessfulResponseIsRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false}) //nolint:errcheck
	}))
	defer server.Close()

	client := newBillingClientForTest(server.URL)

	_, err := client.Verify(context.Background(), purchaseRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPurchaseRejected)
}

func TestBillingClient_Verify_SurfacesHTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newBillingClientForTest(server.URL)

	_, err := client.Verify(context.Background(), purchaseRequest())
	require.Error(t, err)

	var statusErr *service.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
}
