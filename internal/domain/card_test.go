package domain_test

import (
	"testing"

	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditCardData_Normalize(t *testing.T) {
	card := domain.CreditCardData{
		Number:      "4111 1111-1111 1111",
		HolderName:  " ana silva ",
		ExpiryMonth: "5",
		ExpiryYear:  "29",
		CCV:         "123",
	}.Normalize()

	assert.Equal(t, "4111111111111111", card.Number)
	assert.Equal(t, "ANA SILVA", card.HolderName)
	assert.Equal(t, "05", card.ExpiryMonth)
	assert.Equal(t, "2029", card.ExpiryYear)
	assert.Equal(t, "123", card.CCV)
}

func TestCreditCardData_NormalizeKeepsFourDigitYear(t *testing.T) {
	card := domain.CreditCardData{ExpiryYear: "2031"}.Normalize()

	assert.Equal(t, "2031", card.ExpiryYear)
}

func TestCreditCardData_Validate(t *testing.T) {
	valid := domain.CreditCardData{
		Number:      "4111111111111111",
		HolderName:  "ANA SILVA",
		ExpiryMonth: "12",
		ExpiryYear:  "2030",
		CCV:         "123",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(c *domain.CreditCardData)
		code   string
	}{
		{"missing number", func(c *domain.CreditCardData) { c.Number = "" }, domain.ErrCodeMissingRequiredField},
		{"short number", func(c *domain.CreditCardData) { c.Number = "4111" }, domain.ErrCodeInvalidCard},
		{"month out of range", func(c *domain.CreditCardData) { c.ExpiryMonth = "13" }, domain.ErrCodeInvalidCard},
		{"three digit year", func(c *domain.CreditCardData) { c.ExpiryYear = "203" }, domain.ErrCodeInvalidCard},
		{"long ccv", func(c *domain.CreditCardData) { c.CCV = "12345" }, domain.ErrCodeInvalidCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := valid
			tt.modify(&card)

			err := card.Validate()
			assert.True(t, domain.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}
