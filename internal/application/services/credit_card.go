package services

import (
	"context"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
)

type CardCharge struct {
	PaymentID  string
	Status     string
	InvoiceURL string
	Plan       domain.InstallmentPlan
	Product    domain.Product
}

// CreditCard charges a card directly, due today, optionally split into
// up to 12 installments.
type CreditCard struct{}

func (CreditCard) Channel() domain.Channel { return domain.ChannelCard }

func (CreditCard) RequiresCustomer() bool { return true }

func (CreditCard) Validate(cmd ChargeCommand) error {
	if cmd.Card == nil {
		return domain.NewMissingRequiredFieldError("creditCardData")
	}
	if err := cmd.Card.Validate(); err != nil {
		return err
	}
	if err := cmd.Customer.ValidateBillingAddress(); err != nil {
		return err
	}
	if cmd.Installments < 1 || cmd.Installments > domain.MaxInstallments {
		return domain.NewInvalidInstallmentsError(cmd.Installments)
	}
	return nil
}

func (CreditCard) Submit(ctx context.Context, provider application.PaymentProvider, sub Submission) (*CardCharge, error) {
	plan, err := domain.NewInstallmentPlan(sub.Product.Value, sub.Command.Installments)
	if err != nil {
		return nil, application.NewValidationError(err)
	}

	card := sub.Command.Card
	customer := sub.Command.Customer
	req := application.CreatePaymentRequest{
		Customer:          sub.CustomerID,
		BillingType:       application.BillingTypeCreditCard,
		DueDate:           sub.Now.UTC().Format(dueDateLayout),
		Description:       sub.Product.Name,
		ExternalReference: sub.Reference,
		CreditCard: &application.CreditCard{
			HolderName:  card.HolderName,
			Number:      card.Number,
			ExpiryMonth: card.ExpiryMonth,
			ExpiryYear:  card.ExpiryYear,
			CCV:         card.CCV,
		},
		CreditCardHolderInfo: &application.CreditCardHolderInfo{
			Name:          customer.Name,
			Email:         customer.Email,
			CpfCnpj:       customer.TaxID,
			PostalCode:    customer.PostalCode,
			AddressNumber: customer.AddressNumber,
			Phone:         customer.Phone,
		},
		RemoteIP: sub.Command.RemoteIP,
	}
	if plan.IsSplit() {
		req.TotalValue = plan.Total.InexactFloat64()
		req.InstallmentCount = plan.Count
	} else {
		req.Value = plan.Total.InexactFloat64()
	}

	payment, err := provider.CreatePayment(ctx, req)
	if err != nil {
		return nil, err
	}
	if payment.ID == "" {
		return nil, missingField("create payment", "id")
	}

	return &CardCharge{
		PaymentID:  payment.ID,
		Status:     payment.Status,
		InvoiceURL: payment.InvoiceURL,
		Plan:       plan,
		Product:    sub.Product,
	}, nil
}

func (CreditCard) Record(out *CardCharge, sub Submission) *domain.CheckoutRecord {
	return &domain.CheckoutRecord{
		ExternalReference: sub.Reference,
		Channel:           domain.ChannelCard,
		ProductID:         sub.Product.ID,
		CustomerID:        sub.CustomerID,
		ProviderID:        out.PaymentID,
		Value:             sub.Product.Value,
		InstallmentCount:  out.Plan.Count,
		CreatedAt:         sub.Now,
	}
}
