package handlers

import (
	"github.com/DanielPopoola/checkout-orchestrator/internal/application/services"
	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
)

type CustomerDataRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required"`
	TaxID         string `json:"taxId" validate:"required"`
	Phone         string `json:"phone"`
	PostalCode    string `json:"postalCode"`
	Address       string `json:"address"`
	AddressNumber string `json:"addressNumber"`
	Province      string `json:"province"`
}

func (c *CustomerDataRequest) toDomain() domain.CustomerData {
	return domain.CustomerData{
		Name:          c.Name,
		TaxID:         c.TaxID,
		Email:         c.Email,
		Phone:         c.Phone,
		PostalCode:    c.PostalCode,
		Address:       c.Address,
		AddressNumber: c.AddressNumber,
		Province:      c.Province,
	}
}

type CreditCardDataRequest struct {
	Number      string `json:"number" validate:"required"`
	HolderName  string `json:"holderName" validate:"required"`
	ExpiryMonth string `json:"expiryMonth" validate:"required"`
	ExpiryYear  string `json:"expiryYear" validate:"required"`
	CCV         string `json:"ccv" validate:"required"`
}

type CheckoutRequest struct {
	Product      string               `json:"product"`
	CustomerData *CustomerDataRequest `json:"customerData" validate:"required"`
}

func (r *CheckoutRequest) toCommand() services.ChargeCommand {
	product := r.Product
	if product == "" {
		product = domain.DefaultProductID
	}
	return services.ChargeCommand{
		ProductID: product,
		Customer:  r.CustomerData.toDomain(),
	}
}

type PixRequest struct {
	Product      string               `json:"product"`
	CustomerData *CustomerDataRequest `json:"customerData" validate:"required"`
}

func (r *PixRequest) toCommand() services.ChargeCommand {
	return services.ChargeCommand{
		ProductID: r.Product,
		Customer:  r.CustomerData.toDomain(),
	}
}

type CreditCardRequest struct {
	Product        string                 `json:"product"`
	CustomerData   *CustomerDataRequest   `json:"customerData" validate:"required"`
	CreditCardData *CreditCardDataRequest `json:"creditCardData" validate:"required"`
	Installments   int                    `json:"installments" validate:"omitempty,min=1,max=12"`
}

func (r *CreditCardRequest) toCommand(remoteIP string) services.ChargeCommand {
	card := r.CreditCardData
	return services.ChargeCommand{
		ProductID: r.Product,
		Customer:  r.CustomerData.toDomain(),
		Card: &domain.CreditCardData{
			Number:      card.Number,
			HolderName:  card.HolderName,
			ExpiryMonth: card.ExpiryMonth,
			ExpiryYear:  card.ExpiryYear,
			CCV:         card.CCV,
		},
		Installments: r.Installments,
		RemoteIP:     remoteIP,
	}
}
