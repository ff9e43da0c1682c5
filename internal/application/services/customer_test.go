package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
	"github.com/DanielPopoola/checkout-orchestrator/internal/application/mocks"
	"github.com/DanielPopoola/checkout-orchestrator/internal/application/services"
	"github.com/DanielPopoola/checkout-orchestrator/internal/application/services/testhelpers"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCustomerResolver_ReusesExistingCustomer(t *testing.T) {
	provider := mocks.NewMockPaymentProvider(t)
	provider.EXPECT().
		FindCustomerByTaxID(mock.Anything, "12345678909").
		Return(&application.ProviderCustomer{ID: "cus_existing"}, nil).
		Once()

	resolver := services.NewCustomerResolver(provider, discardLogger())
	id, err := resolver.Resolve(context.Background(), testhelpers.DefaultCustomer().Normalize())

	require.NoError(t, err)
	assert.Equal(t, "cus_existing", id)
	provider.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
}

func TestCustomerResolver_CreatesWhenMissing(t *testing.T) {
	provider := mocks.NewMockPaymentProvider(t)
	provider.EXPECT().
		FindCustomerByTaxID(mock.Anything, "12345678909").
		Return(nil, nil)
	provider.EXPECT().
		CreateCustomer(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req application.CreateCustomerRequest) {
			assert.Equal(t, "Maria Silva", req.Name)
			assert.Equal(t, "12345678909", req.CpfCnpj)
			assert.Equal(t, "maria@example.com", req.Email)
			assert.Equal(t, "11988887777", req.Phone)
			assert.Equal(t, "01310100", req.PostalCode)
			assert.Equal(t, "SP", req.Province)
			assert.False(t, req.NotificationDisabled)
		}).
		Return(&application.ProviderCustomer{ID: "cus_new"}, nil)

	resolver := services.NewCustomerResolver(provider, discardLogger())
	id, err := resolver.Resolve(context.Background(), testhelpers.DefaultCustomer().Normalize())

	require.NoError(t, err)
	assert.Equal(t, "cus_new", id)
}

func TestCustomerResolver_CreateRejected(t *testing.T) {
	provider := mocks.NewMockPaymentProvider(t)
	provider.EXPECT().FindCustomerByTaxID(mock.Anything, mock.Anything).Return(nil, nil)
	provider.EXPECT().CreateCustomer(mock.Anything, mock.Anything).Return(nil, &application.ProviderError{
		Kind:         application.ProviderRejected,
		Operation:    "create customer",
		StatusCode:   http.StatusBadRequest,
		Descriptions: []string{"O CPF/CNPJ informado é inválido.", "E-mail inválido."},
		Message:      "O CPF/CNPJ informado é inválido., E-mail inválido.",
	})

	resolver := services.NewCustomerResolver(provider, discardLogger())
	_, err := resolver.Resolve(context.Background(), testhelpers.DefaultCustomer().Normalize())

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeUpstreamRejected, svcErr.Code)
	assert.Equal(t, "O CPF/CNPJ informado é inválido.", svcErr.Message)
	assert.Equal(t, http.StatusBadRequest, svcErr.HTTPStatus)
}

func TestCustomerResolver_SearchFailurePropagates(t *testing.T) {
	boom := errors.New("connection reset")
	provider := mocks.NewMockPaymentProvider(t)
	provider.EXPECT().FindCustomerByTaxID(mock.Anything, mock.Anything).Return(nil, boom)

	resolver := services.NewCustomerResolver(provider, discardLogger())
	_, err := resolver.Resolve(context.Background(), testhelpers.DefaultCustomer().Normalize())

	assert.ErrorIs(t, err, boom)
}

func TestCustomerResolver_CreatedWithoutID(t *testing.T) {
	provider := mocks.NewMockPaymentProvider(t)
	provider.EXPECT().FindCustomerByTaxID(mock.Anything, mock.Anything).Return(nil, nil)
	provider.EXPECT().CreateCustomer(mock.Anything, mock.Anything).Return(&application.ProviderCustomer{}, nil)

	resolver := services.NewCustomerResolver(provider, discardLogger())
	_, err := resolver.Resolve(context.Background(), testhelpers.DefaultCustomer().Normalize())

	assert.Equal(t, application.ErrCodeUpstreamMalformed, application.ToErrorCode(err))
}
