package application

import (
	"context"

	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
)

// PaymentProvider is the port for the Asaas REST API. Every method returns
// a *ProviderError when the processor rejects the call or answers with
// something that is not JSON.
type PaymentProvider interface {
	// FindCustomerByTaxID returns nil, nil when no customer matches.
	FindCustomerByTaxID(ctx context.Context, taxID string) (*ProviderCustomer, error)
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*ProviderCustomer, error)
	CreateCheckout(ctx context.Context, req CreateCheckoutRequest) (*CheckoutResponse, error)
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error)
	GetPixQRCode(ctx context.Context, paymentID string) (*PixQRCodeResponse, error)
}

// CheckoutLedger keeps a trail of created charges for lead tracking.
type CheckoutLedger interface {
	Record(ctx context.Context, record *domain.CheckoutRecord) error
}
