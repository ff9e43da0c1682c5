package testhelpers

import (
	"time"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application/services"
	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
)

// FixedTime is the clock used by orchestrator tests: 2024-03-10 15:04:05.123 UTC.
var FixedTime = time.Date(2024, time.March, 10, 15, 4, 5, 123_000_000, time.UTC)

func FixedClock() time.Time {
	return FixedTime
}

// DefaultCustomer returns raw, un-normalized buyer data.
func DefaultCustomer() domain.CustomerData {
	return domain.CustomerData{
		Name:          "  Maria Silva ",
		TaxID:         "123.456.789-09",
		Email:         "Maria@Example.com",
		Phone:         "(11) 98888-7777",
		PostalCode:    "01310-100",
		Address:       "Av. Paulista",
		AddressNumber: "1000",
		Province:      "sp",
	}
}

func DefaultCard() *domain.CreditCardData {
	return &domain.CreditCardData{
		Number:      "4111 1111 1111 1111",
		HolderName:  "maria silva",
		ExpiryMonth: "5",
		ExpiryYear:  "30",
		CCV:         "123",
	}
}

func DefaultPixCommand() services.ChargeCommand {
	return services.ChargeCommand{
		ProductID: domain.DefaultProductID,
		Customer:  DefaultCustomer(),
	}
}

func DefaultCardCommand(installments int) services.ChargeCommand {
	return services.ChargeCommand{
		ProductID:    domain.DefaultProductID,
		Customer:     DefaultCustomer(),
		Card:         DefaultCard(),
		Installments: installments,
		RemoteIP:     "203.0.113.7",
	}
}
