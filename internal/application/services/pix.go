package services

import (
	"context"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
)

const dueDateLayout = "2006-01-02"

type PixQRCode struct {
	Image          string
	Payload        string
	ExpirationDate string
}

type PixCharge struct {
	PaymentID  string
	InvoiceURL string
	QRCode     PixQRCode
	Product    domain.Product
}

// Pix creates a PIX payment due tomorrow (UTC) and fetches its QR code.
type Pix struct{}

func (Pix) Channel() domain.Channel { return domain.ChannelPix }

func (Pix) RequiresCustomer() bool { return true }

func (Pix) Validate(ChargeCommand) error { return nil }

func (Pix) Submit(ctx context.Context, provider application.PaymentProvider, sub Submission) (*PixCharge, error) {
	payment, err := provider.CreatePayment(ctx, application.CreatePaymentRequest{
		Customer:          sub.CustomerID,
		BillingType:       application.BillingTypePix,
		Value:             sub.Product.Value.InexactFloat64(),
		DueDate:           sub.Now.UTC().AddDate(0, 0, 1).Format(dueDateLayout),
		Description:       sub.Product.Name,
		ExternalReference: sub.Reference,
	})
	if err != nil {
		return nil, err
	}
	if payment.ID == "" {
		return nil, missingField("create payment", "id")
	}

	qr, err := provider.GetPixQRCode(ctx, payment.ID)
	if err != nil {
		return nil, err
	}

	return &PixCharge{
		PaymentID:  payment.ID,
		InvoiceURL: payment.InvoiceURL,
		QRCode: PixQRCode{
			Image:          qr.EncodedImage,
			Payload:        qr.Payload,
			ExpirationDate: qr.ExpirationDate,
		},
		Product: sub.Product,
	}, nil
}

func (Pix) Record(out *PixCharge, sub Submission) *domain.CheckoutRecord {
	return &domain.CheckoutRecord{
		ExternalReference: sub.Reference,
		Channel:           domain.ChannelPix,
		ProductID:         sub.Product.ID,
		CustomerID:        sub.CustomerID,
		ProviderID:        out.PaymentID,
		Value:             sub.Product.Value,
		InstallmentCount:  1,
		CreatedAt:         sub.Now,
	}
}
