package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRecord is what the ledger keeps about a created charge.
type CheckoutRecord struct {
	ID                string
	ExternalReference string
	Channel           Channel
	ProductID         string
	CustomerID        string
	ProviderID        string
	Value             decimal.Decimal
	InstallmentCount  int
	CreatedAt         time.Time
}
