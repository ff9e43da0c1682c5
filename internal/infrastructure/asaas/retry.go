package asaas

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
	"github.com/DanielPopoola/checkout-orchestrator/internal/config"
)

// RetryProvider retries idempotent reads (customer search, QR code fetch).
// Creation calls carry no idempotency key on the processor side, so they
// always go through exactly once.
type RetryProvider struct {
	inner       application.PaymentProvider
	baseDelay   time.Duration
	maxAttempts int
	logger      *slog.Logger
}

func NewRetryProvider(inner application.PaymentProvider, cfg config.RetryConfig, logger *slog.Logger) *RetryProvider {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RetryProvider{
		inner:       inner,
		baseDelay:   cfg.BaseDelay,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

var _ application.PaymentProvider = (*RetryProvider)(nil)

func (r *RetryProvider) FindCustomerByTaxID(ctx context.Context, taxID string) (*application.ProviderCustomer, error) {
	return retry(r, ctx, "search customer", func(ctx context.Context) (*application.ProviderCustomer, error) {
		return r.inner.FindCustomerByTaxID(ctx, taxID)
	})
}

func (r *RetryProvider) GetPixQRCode(ctx context.Context, paymentID string) (*application.PixQRCodeResponse, error) {
	return retry(r, ctx, "fetch pix qr code", func(ctx context.Context) (*application.PixQRCodeResponse, error) {
		return r.inner.GetPixQRCode(ctx, paymentID)
	})
}

func (r *RetryProvider) CreateCustomer(ctx context.Context, req application.CreateCustomerRequest) (*application.ProviderCustomer, error) {
	return r.inner.CreateCustomer(ctx, req)
}

func (r *RetryProvider) CreateCheckout(ctx context.Context, req application.CreateCheckoutRequest) (*application.CheckoutResponse, error) {
	return r.inner.CreateCheckout(ctx, req)
}

func (r *RetryProvider) CreatePayment(ctx context.Context, req application.CreatePaymentRequest) (*application.PaymentResponse, error) {
	return r.inner.CreatePayment(ctx, req)
}

func retry[T any](r *RetryProvider, ctx context.Context, operation string, call func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := call(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !application.IsRetryable(err) || attempt == r.maxAttempts-1 {
			break
		}

		delay := r.backoff(attempt)
		r.logger.WarnContext(ctx, "retrying asaas read",
			"operation", operation,
			"attempt", attempt+1,
			"delay", delay,
			"error", err,
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if r.maxAttempts > 1 && application.IsRetryable(lastErr) {
		return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
	}
	return nil, lastErr
}

// Backoff calculation with exponential delay and jitter
func (r *RetryProvider) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)
	if r.baseDelay <= 0 {
		return 0
	}

	jitter := time.Duration(rand.Int63n(int64(r.baseDelay)/2 + 1))

	return base + jitter
}
