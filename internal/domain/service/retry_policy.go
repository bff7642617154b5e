package service

import (
	"context"
	"time"

	"iriscan/internal/errors"
)

// ErrorClass classifies an outbound failure for retry purposes.
type ErrorClass int

const (
	// ClassTerminal failures are surfaced immediately; no retry.
	ClassTerminal ErrorClass = iota
	// ClassRetryable failures trigger exactly one retry.
	ClassRetryable
)

// Classifier maps an error to its retry class.
type Classifier func(error) ErrorClass

// RetryPolicy wraps outbound calls with a per-attempt timeout and a single
// classified retry. The underlying thunk is never invoked more than twice for
// one logical request; deciding to fall back belongs to the caller.
type RetryPolicy interface {
	Invoke(ctx context.Context, op string, timeout time.Duration, classify Classifier, thunk func(context.Context) error) error
}

// ClassifyOutbound is the default classifier for collaborator calls: schema
// violations and non-retryable HTTP statuses are terminal, everything else
// (timeouts, transport faults, 5xx, rate limits) is transient.
func ClassifyOutbound(err error) ErrorClass {
	if errors.Is(err, ErrSchemaValidation) || errors.Is(err, ErrPurchaseRejected) {
		return ClassTerminal
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == 429 || statusErr.StatusCode >= 500 {
			return ClassRetryable
		}

		return ClassTerminal
	}

	return ClassRetryable
}
