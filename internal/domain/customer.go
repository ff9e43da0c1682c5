package domain

import (
	"strings"
	"unicode"
)

// CustomerData identifies the buyer. Name, Email and TaxID are mandatory
// for every charge.
type CustomerData struct {
	Name          string
	TaxID         string
	Email         string
	Phone         string
	PostalCode    string
	Address       string
	AddressNumber string
	Province      string
}

// Normalize returns the form sent to the processor.
func (c CustomerData) Normalize() CustomerData {
	return CustomerData{
		Name:          strings.TrimSpace(c.Name),
		TaxID:         NormalizeTaxID(c.TaxID),
		Email:         strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:         OnlyDigits(c.Phone),
		PostalCode:    OnlyDigits(c.PostalCode),
		Address:       strings.TrimSpace(c.Address),
		AddressNumber: strings.TrimSpace(c.AddressNumber),
		Province:      strings.ToUpper(strings.TrimSpace(c.Province)),
	}
}

// Validate checks the mandatory identity fields. It accepts raw or
// normalized data.
func (c CustomerData) Validate() error {
	var missing []string
	if IsBlank(c.Name) {
		missing = append(missing, "name")
	}
	if IsBlank(c.Email) {
		missing = append(missing, "email")
	}
	if IsBlank(c.TaxID) {
		missing = append(missing, "taxId")
	}
	if len(missing) > 0 {
		return NewMissingRequiredFieldError(missing...)
	}

	if OnlyDigits(c.TaxID) == "" {
		return NewInvalidTaxIDError()
	}
	return nil
}

// ValidateBillingAddress checks the extra fields card anti-fraud needs.
func (c CustomerData) ValidateBillingAddress() error {
	var missing []string
	if IsBlank(c.PostalCode) {
		missing = append(missing, "postalCode")
	}
	if IsBlank(c.AddressNumber) {
		missing = append(missing, "addressNumber")
	}
	if len(missing) > 0 {
		return NewMissingRequiredFieldError(missing...)
	}
	return nil
}

// NormalizeTaxID strips CPF/CNPJ punctuation: "123.456.789-00" -> "12345678900".
func NormalizeTaxID(taxID string) string {
	return OnlyDigits(taxID)
}

func OnlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// IsBlank reports whether s has no visible characters.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
