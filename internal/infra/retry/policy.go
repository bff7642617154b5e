// Package retry implements the connectivity-aware retry policy for outbound
// collaborator calls.
package retry

import (
	"context"
	"log/slog"
	"time"

	"iriscan/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
	"go.uber.org/fx"
)

// retryGap is a nominal pause between the two attempts; there is no backoff
// schedule beyond it.
const retryGap = 100 * time.Millisecond

type policy struct {
	logger *slog.Logger
}

// Params holds dependencies for the retry policy, injected by Fx.
type Params struct {
	fx.In

	Logger *slog.Logger
}

// New creates the single-retry policy.
func New(params Params) service.RetryPolicy {
	return &policy{logger: params.Logger}
}

// Invoke runs thunk with a per-attempt timeout. A failure classified as
// retryable triggers exactly one more attempt; the thunk is never invoked more
// than twice. The caller decides whether to fall back on the returned error.
func (p *policy) Invoke(ctx context.Context, op string, timeout time.Duration, classify service.Classifier, thunk func(context.Context) error) error {
	if classify == nil {
		classify = service.ClassifyOutbound
	}

	attempt := 0
	backoff := retry.WithMaxRetries(1, retry.NewConstant(retryGap))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		attemptCtx := ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		err := thunk(attemptCtx)
		if err == nil {
			return nil
		}

		if classify(err) == service.ClassRetryable {
			p.logger.Warn("retryable failure on outbound call",
				slog.String("op", op),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)

			return retry.RetryableError(err)
		}

		return err
	})
	if err != nil {
		return errors.Wrapf(err, "%s failed after %d attempt(s)", op, attempt)
	}

	return nil
}
