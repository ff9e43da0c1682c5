package domain

import (
	"strconv"
	"strings"
)

type CreditCardData struct {
	Number      string
	HolderName  string
	ExpiryMonth string
	ExpiryYear  string
	CCV         string
}

// Normalize upper-cases the holder name, keeps only card number digits,
// pads the month and expands two-digit years ("29" -> "2029").
func (c CreditCardData) Normalize() CreditCardData {
	month := OnlyDigits(c.ExpiryMonth)
	if len(month) == 1 {
		month = "0" + month
	}

	year := OnlyDigits(c.ExpiryYear)
	if len(year) == 2 {
		year = "20" + year
	}

	return CreditCardData{
		Number:      OnlyDigits(c.Number),
		HolderName:  strings.ToUpper(strings.TrimSpace(c.HolderName)),
		ExpiryMonth: month,
		ExpiryYear:  year,
		CCV:         OnlyDigits(c.CCV),
	}
}

// Validate expects normalized card data.
func (c CreditCardData) Validate() error {
	var missing []string
	if c.Number == "" {
		missing = append(missing, "creditCardData.number")
	}
	if c.HolderName == "" {
		missing = append(missing, "creditCardData.holderName")
	}
	if c.ExpiryMonth == "" {
		missing = append(missing, "creditCardData.expiryMonth")
	}
	if c.ExpiryYear == "" {
		missing = append(missing, "creditCardData.expiryYear")
	}
	if c.CCV == "" {
		missing = append(missing, "creditCardData.ccv")
	}
	if len(missing) > 0 {
		return NewMissingRequiredFieldError(missing...)
	}

	if len(c.Number) < 13 || len(c.Number) > 19 {
		return NewInvalidCardError("número")
	}
	if month, err := strconv.Atoi(c.ExpiryMonth); err != nil || month < 1 || month > 12 {
		return NewInvalidCardError("mês de validade")
	}
	if len(c.ExpiryYear) != 4 {
		return NewInvalidCardError("ano de validade")
	}
	if len(c.CCV) < 3 || len(c.CCV) > 4 {
		return NewInvalidCardError("código de segurança")
	}
	return nil
}
