package asaas_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
	"github.com/DanielPopoola/checkout-orchestrator/internal/application/mocks"
	"github.com/DanielPopoola/checkout-orchestrator/internal/config"
	"github.com/DanielPopoola/checkout-orchestrator/internal/infrastructure/asaas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRetryProvider(inner application.PaymentProvider, attempts int) *asaas.RetryProvider {
	return asaas.NewRetryProvider(inner, config.RetryConfig{
		MaxAttempts: attempts,
		BaseDelay:   time.Millisecond,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRetryProvider_FindCustomer_RetriesOn5xx(t *testing.T) {
	inner := mocks.NewMockPaymentProvider(t)
	provider := newRetryProvider(inner, 3)

	inner.EXPECT().
		FindCustomerByTaxID(mock.Anything, "123").
		Return(nil, &application.ProviderError{Kind: application.ProviderRejected, StatusCode: http.StatusServiceUnavailable}).
		Twice()
	inner.EXPECT().
		FindCustomerByTaxID(mock.Anything, "123").
		Return(&application.ProviderCustomer{ID: "cus_1"}, nil).
		Once()

	customer, err := provider.FindCustomerByTaxID(context.Background(), "123")

	require.NoError(t, err)
	assert.Equal(t, "cus_1", customer.ID)
}

func TestRetryProvider_DoesNotRetryOn4xx(t *testing.T) {
	inner := mocks.NewMockPaymentProvider(t)
	provider := newRetryProvider(inner, 3)

	rejection := &application.ProviderError{Kind: application.ProviderRejected, StatusCode: http.StatusBadRequest}
	inner.EXPECT().
		GetPixQRCode(mock.Anything, "pay_1").
		Return(nil, rejection).
		Once()

	_, err := provider.GetPixQRCode(context.Background(), "pay_1")

	assert.ErrorIs(t, err, rejection)
}

func TestRetryProvider_DoesNotRetryMalformed(t *testing.T) {
	inner := mocks.NewMockPaymentProvider(t)
	provider := newRetryProvider(inner, 3)

	inner.EXPECT().
		GetPixQRCode(mock.Anything, "pay_1").
		Return(nil, &application.ProviderError{Kind: application.ProviderMalformed, StatusCode: http.StatusOK}).
		Once()

	_, err := provider.GetPixQRCode(context.Background(), "pay_1")

	require.Error(t, err)
}

func TestRetryProvider_GivesUpAfterMaxAttempts(t *testing.T) {
	inner := mocks.NewMockPaymentProvider(t)
	provider := newRetryProvider(inner, 2)

	transport := errors.New("connection reset")
	inner.EXPECT().
		FindCustomerByTaxID(mock.Anything, "123").
		Return(nil, transport).
		Times(2)

	_, err := provider.FindCustomerByTaxID(context.Background(), "123")

	require.Error(t, err)
	assert.ErrorIs(t, err, transport)
	assert.Contains(t, err.Error(), "maximum retries exceeded")
}

func TestRetryProvider_SingleAttemptByDefault(t *testing.T) {
	inner := mocks.NewMockPaymentProvider(t)
	provider := newRetryProvider(inner, 1)

	transport := errors.New("connection reset")
	inner.EXPECT().
		FindCustomerByTaxID(mock.Anything, "123").
		Return(nil, transport).
		Once()

	_, err := provider.FindCustomerByTaxID(context.Background(), "123")

	assert.Equal(t, transport, err)
}

func TestRetryProvider_NeverRetriesCreation(t *testing.T) {
	inner := mocks.NewMockPaymentProvider(t)
	provider := newRetryProvider(inner, 3)

	inner.EXPECT().
		CreatePayment(mock.Anything, mock.Anything).
		Return(nil, &application.ProviderError{Kind: application.ProviderRejected, StatusCode: http.StatusBadGateway}).
		Once()

	_, err := provider.CreatePayment(context.Background(), application.CreatePaymentRequest{})

	require.Error(t, err)
}

func TestRetryProvider_StopsOnCancelledContext(t *testing.T) {
	inner := mocks.NewMockPaymentProvider(t)
	provider := newRetryProvider(inner, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.FindCustomerByTaxID(ctx, "123")

	assert.ErrorIs(t, err, context.Canceled)
}
