package service

import (
	"context"

	"iriscan/internal/domain/entity"
	"iriscan/internal/errors"
)

// ErrPurchaseRejected is returned when the billing verifier declines the
// purchase token.
var ErrPurchaseRejected = errors.New("purchase verification rejected")

// PurchaseRequest identifies one purchase to verify.
type PurchaseRequest struct {
	PurchaseToken string `json:"purchase_token"`
	ProductID     string `json:"product_id"`
}

// BillingVerifier validates a purchase with the external billing collaborator
// and returns the verified entitlement claim.
type BillingVerifier interface {
	Verify(ctx context.Context, req *PurchaseRequest) (*entity.VerifiedClaim, error)
}
