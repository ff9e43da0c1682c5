package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
)

// CustomerResolver finds the processor customer for a tax ID or creates it.
// Nothing is cached; every call asks the processor.
type CustomerResolver struct {
	provider application.PaymentProvider
	logger   *slog.Logger
}

func NewCustomerResolver(provider application.PaymentProvider, logger *slog.Logger) *CustomerResolver {
	return &CustomerResolver{
		provider: provider,
		logger:   logger,
	}
}

// Resolve expects normalized customer data.
func (r *CustomerResolver) Resolve(ctx context.Context, customer domain.CustomerData) (string, error) {
	existing, err := r.provider.FindCustomerByTaxID(ctx, customer.TaxID)
	if err != nil {
		return "", err
	}
	if existing != nil && existing.ID != "" {
		r.logger.DebugContext(ctx, "reusing asaas customer", "customer_id", existing.ID)
		return existing.ID, nil
	}

	created, err := r.provider.CreateCustomer(ctx, application.CreateCustomerRequest{
		Name:                 customer.Name,
		CpfCnpj:              customer.TaxID,
		Email:                customer.Email,
		Phone:                customer.Phone,
		PostalCode:           customer.PostalCode,
		Address:              customer.Address,
		AddressNumber:        customer.AddressNumber,
		Province:             customer.Province,
		NotificationDisabled: false,
	})
	if err != nil {
		if providerErr, ok := application.IsProviderError(err); ok && providerErr.Kind == application.ProviderRejected {
			return "", &application.ServiceError{
				Code:       application.ErrCodeUpstreamRejected,
				Message:    providerErr.FirstDescription(),
				HTTPStatus: providerErr.HTTPStatus(),
				Err:        err,
			}
		}
		return "", err
	}
	if created.ID == "" {
		return "", missingField("create customer", "id")
	}

	r.logger.InfoContext(ctx, "created asaas customer", "customer_id", created.ID)
	return created.ID, nil
}

// missingField reports a 2xx reply lacking a field the flow depends on.
func missingField(operation, field string) *application.ProviderError {
	return &application.ProviderError{
		Kind:       application.ProviderMalformed,
		Operation:  operation,
		StatusCode: 200,
		Message:    application.MessageMalformed,
		Raw:        []byte(`{"missing":"` + field + `"}`),
	}
}
