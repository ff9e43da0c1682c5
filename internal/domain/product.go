package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultProductID = "lauren"

type Product struct {
	ID          string
	Name        string
	Description string
	Value       decimal.Decimal
}

// Catalog maps product identifiers accepted by the endpoints to what is billed.
type Catalog map[string]Product

func DefaultCatalog() Catalog {
	return Catalog{
		DefaultProductID: {
			ID:          DefaultProductID,
			Name:        "Site Lauren Rossarola",
			Description: "Site profissional Lauren Rossarola",
			Value:       decimal.NewFromInt(897),
		},
	}
}

func (c Catalog) Lookup(id string) (Product, error) {
	product, ok := c[strings.TrimSpace(id)]
	if !ok {
		return Product{}, NewUnknownProductError(id)
	}
	return product, nil
}
