package services

import (
	"context"
	"time"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
)

const checkoutLifetime = 30 * time.Minute

type CheckoutSession struct {
	CheckoutID string
	URL        string
	ExpiresAt  time.Time
}

// HostedCheckout opens an Asaas hosted checkout page where the buyer picks
// PIX or card. The customer travels inline, so no customer lookup happens.
type HostedCheckout struct {
	AppURL string
	// InstallmentCharges also offers INSTALLMENT charges on the page.
	InstallmentCharges bool
}

func (h HostedCheckout) Channel() domain.Channel { return domain.ChannelCheckout }

func (h HostedCheckout) RequiresCustomer() bool { return false }

func (h HostedCheckout) Validate(ChargeCommand) error { return nil }

func (h HostedCheckout) Submit(ctx context.Context, provider application.PaymentProvider, sub Submission) (*CheckoutSession, error) {
	chargeTypes := []string{application.ChargeTypeDetached}
	if h.InstallmentCharges {
		chargeTypes = append(chargeTypes, application.ChargeTypeInstallment)
	}

	customer := sub.Command.Customer
	req := application.CreateCheckoutRequest{
		BillingTypes:      []string{application.BillingTypePix, application.BillingTypeCreditCard},
		ChargeTypes:       chargeTypes,
		MinutesToExpire:   int(checkoutLifetime / time.Minute),
		ExternalReference: sub.Reference,
		Callback: application.CheckoutCallback{
			SuccessURL: h.AppURL + "/checkout/success",
			CancelURL:  h.AppURL + "/checkout/cancel",
			ExpiredURL: h.AppURL + "/checkout/expired",
		},
		Items: []application.CheckoutItem{{
			Name:        sub.Product.Name,
			Description: sub.Product.Description,
			Quantity:    1,
			Value:       sub.Product.Value.InexactFloat64(),
		}},
		CustomerData: &application.CheckoutCustomerData{
			Name:          customer.Name,
			CpfCnpj:       customer.TaxID,
			Email:         customer.Email,
			Phone:         customer.Phone,
			Address:       customer.Address,
			AddressNumber: customer.AddressNumber,
			PostalCode:    customer.PostalCode,
			Province:      customer.Province,
		},
		Installment: &application.CheckoutInstallment{
			MaxInstallmentCount: domain.MaxInstallments,
		},
	}

	resp, err := provider.CreateCheckout(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.ID == "" || resp.Link == "" {
		return nil, missingField("create checkout", "id")
	}

	return &CheckoutSession{
		CheckoutID: resp.ID,
		URL:        resp.Link,
		ExpiresAt:  sub.Now.Add(checkoutLifetime),
	}, nil
}

func (h HostedCheckout) Record(out *CheckoutSession, sub Submission) *domain.CheckoutRecord {
	return &domain.CheckoutRecord{
		ExternalReference: sub.Reference,
		Channel:           domain.ChannelCheckout,
		ProductID:         sub.Product.ID,
		ProviderID:        out.CheckoutID,
		Value:             sub.Product.Value,
		InstallmentCount:  1,
		CreatedAt:         sub.Now,
	}
}
