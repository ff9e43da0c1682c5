package handlers

import (
	"github.com/DanielPopoola/checkout-orchestrator/internal/application/services"
	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
)

// isoMillis matches what browsers produce for Date.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z"

type ProductResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type CheckoutResponse struct {
	Success    bool   `json:"success"`
	CheckoutID string `json:"checkoutId"`
	URL        string `json:"url"`
	ExpiresAt  string `json:"expiresAt"`
}

type QRCodeResponse struct {
	Image          string `json:"image"`
	Payload        string `json:"payload"`
	ExpirationDate string `json:"expirationDate"`
}

type PixResponse struct {
	Success    bool            `json:"success"`
	PaymentID  string          `json:"paymentId"`
	InvoiceURL string          `json:"invoiceUrl"`
	QRCode     QRCodeResponse  `json:"qrCode"`
	Product    ProductResponse `json:"product"`
}

type CreditCardResponse struct {
	Success          bool            `json:"success"`
	PaymentID        string          `json:"paymentId"`
	Status           string          `json:"status"`
	InvoiceURL       string          `json:"invoiceUrl"`
	InstallmentCount int             `json:"installmentCount"`
	InstallmentValue float64         `json:"installmentValue"`
	Product          ProductResponse `json:"product"`
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		Name:  p.Name,
		Value: p.Value.InexactFloat64(),
	}
}

func toCheckoutResponse(s *services.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{
		Success:    true,
		CheckoutID: s.CheckoutID,
		URL:        s.URL,
		ExpiresAt:  s.ExpiresAt.UTC().Format(isoMillis),
	}
}

func toPixResponse(c *services.PixCharge) PixResponse {
	return PixResponse{
		Success:    true,
		PaymentID:  c.PaymentID,
		InvoiceURL: c.InvoiceURL,
		QRCode: QRCodeResponse{
			Image:          c.QRCode.Image,
			Payload:        c.QRCode.Payload,
			ExpirationDate: c.QRCode.ExpirationDate,
		},
		Product: toProductResponse(c.Product),
	}
}

func toCreditCardResponse(c *services.CardCharge) CreditCardResponse {
	return CreditCardResponse{
		Success:          true,
		PaymentID:        c.PaymentID,
		Status:           c.Status,
		InvoiceURL:       c.InvoiceURL,
		InstallmentCount: c.Plan.Count,
		InstallmentValue: c.Plan.PerInstallment.InexactFloat64(),
		Product:          toProductResponse(c.Product),
	}
}

