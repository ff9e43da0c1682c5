package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a rule violated by the inbound payment intent.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeInvalidTaxID         = "INVALID_TAX_ID"
	ErrCodeInvalidInstallments  = "INVALID_INSTALLMENTS"
	ErrCodeInvalidCard          = "INVALID_CARD"
	ErrCodeUnknownProduct       = "UNKNOWN_PRODUCT"
)

func NewMissingRequiredFieldError(fields ...string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("Campos obrigatórios ausentes: %s", strings.Join(fields, ", ")),
	}
}

func NewInvalidTaxIDError() *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidTaxID,
		Message: "CPF/CNPJ inválido",
	}
}

func NewInvalidInstallmentsError(count int) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidInstallments,
		Message: fmt.Sprintf("Número de parcelas inválido: %d (permitido de 1 a %d)", count, MaxInstallments),
	}
}

func NewInvalidCardError(reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCard,
		Message: fmt.Sprintf("Dados do cartão inválidos: %s", reason),
	}
}

func NewUnknownProductError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnknownProduct,
		Message: fmt.Sprintf("Produto não reconhecido: %q", id),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
