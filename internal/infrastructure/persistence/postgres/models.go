package postgres

import (
	"time"

	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
)

// CheckoutAttemptModel is one row of checkout_attempts. Value is kept as
// the decimal string and cast to numeric in SQL.
type CheckoutAttemptModel struct {
	ID                string
	ExternalReference string
	Channel           string
	ProductID         string
	CustomerID        *string
	ProviderID        string
	Value             string
	InstallmentCount  int
	CreatedAt         time.Time
}

func toDBModel(r *domain.CheckoutRecord) CheckoutAttemptModel {
	m := CheckoutAttemptModel{
		ID:                r.ID,
		ExternalReference: r.ExternalReference,
		Channel:           string(r.Channel),
		ProductID:         r.ProductID,
		ProviderID:        r.ProviderID,
		Value:             r.Value.StringFixed(2),
		InstallmentCount:  r.InstallmentCount,
		CreatedAt:         r.CreatedAt.UTC(),
	}
	if r.CustomerID != "" {
		customerID := r.CustomerID
		m.CustomerID = &customerID
	}
	return m
}
