package entity

import (
	"time"
)

// SubscriptionStatus is the stored subscription tier of an identity.
type SubscriptionStatus string

const (
	// SubscriptionFree is the default tier, limited by the weekly quota.
	SubscriptionFree SubscriptionStatus = "free"
	// SubscriptionPremium bypasses the weekly quota while unexpired.
	SubscriptionPremium SubscriptionStatus = "premium"
)

// Entitlement tracks the weekly usage quota and subscription state for one
// identity. ScansUsed is monotonically non-decreasing within a reset window;
// only Reset sets it back to zero.
type Entitlement struct {
	ScansUsed          uint               `json:"scans_used"`                    // Scans consumed in the current window.
	WeeklyLimit        uint               `json:"weekly_limit"`                  // Free-tier scans per window.
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`           // Stored tier; expiry is re-derived at read time.
	SubscriptionExpiry *time.Time         `json:"subscription_expiry,omitempty"` // Premium expiry, if any.
	LastResetAt        time.Time          `json:"last_reset_at"`                 // Start of the current window.
}

// NewEntitlement creates a fresh free-tier entitlement with an open window.
func NewEntitlement(weeklyLimit uint, now time.Time) *Entitlement {
	return &Entitlement{
		WeeklyLimit:        weeklyLimit,
		SubscriptionStatus: SubscriptionFree,
		LastResetAt:        now,
	}
}

// IsPremium reports whether the subscription is active at the given instant.
// The expiry timestamp is always compared at read time; the stored status flag
// alone is never trusted as a cached boolean.
func (e *Entitlement) IsPremium(now time.Time) bool {
	if e.SubscriptionStatus != SubscriptionPremium {
		return false
	}
	if e.SubscriptionExpiry == nil {
		return true
	}

	return now.Before(*e.SubscriptionExpiry)
}

// CanScan reports whether a scan is permitted at the given instant.
func (e *Entitlement) CanScan(now time.Time) bool {
	return e.IsPremium(now) || e.ScansUsed < e.WeeklyLimit
}

// ResetDue reports whether the weekly window has elapsed.
func (e *Entitlement) ResetDue(now time.Time, interval time.Duration) bool {
	return now.Sub(e.LastResetAt) >= interval
}

// Reset opens a new usage window. Idempotent within the same window when
// guarded by ResetDue.
func (e *Entitlement) Reset(now time.Time) {
	e.ScansUsed = 0
	e.LastResetAt = now
}

// Remaining returns the free-tier scans left in the current window.
func (e *Entitlement) Remaining() uint {
	if e.ScansUsed >= e.WeeklyLimit {
		return 0
	}

	return e.WeeklyLimit - e.ScansUsed
}

// VerifiedClaim is an entitlement claim issued by the billing verifier after a
// successful purchase verification.
type VerifiedClaim struct {
	Pro       bool      `json:"pro"`        // Whether the purchase grants premium.
	Expiry    time.Time `json:"expiry"`     // When the granted entitlement lapses.
	ProductID string    `json:"product_id"` // The verified product.
}
