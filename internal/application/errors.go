package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Codes double as the short "error" field of the response envelope.
const (
	ErrCodeConfiguration     = "Configuration error"
	ErrCodeValidation        = "Validation error"
	ErrCodeInvalidProduct    = "Invalid product"
	ErrCodeMethodNotAllowed  = "Method not allowed"
	ErrCodeUpstreamMalformed = "Invalid upstream response"
	ErrCodeUpstreamRejected  = "Payment provider error"
	ErrCodeTimeout           = "Timeout"
	ErrCodeInternal          = "Internal server error"
)

const (
	MessageInternal         = "Erro interno ao processar pagamento. Tente novamente."
	MessageUpstreamFallback = "Erro ao processar pagamento junto ao Asaas."
	MessageMalformed        = "Resposta inválida do processador de pagamentos."
	MessageTimeout          = "Tempo limite excedido ao processar pagamento."
)

func NewConfigurationError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeConfiguration,
		Message:    "Chave de API do Asaas não configurada.",
		HTTPStatus: http.StatusInternalServerError,
	}
}

func NewValidationError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidation,
		Message:    messageOf(err, "Dados inválidos"),
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewInvalidProductError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidProduct,
		Message:    messageOf(err, "Produto não reconhecido"),
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewMethodNotAllowedError(method string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeMethodNotAllowed,
		Message:    fmt.Sprintf("Método %s não permitido", method),
		HTTPStatus: http.StatusMethodNotAllowed,
	}
}

func NewTimeoutError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    MessageTimeout,
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    MessageInternal,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// PROVIDER ERRORS (Asaas)

type ProviderErrorKind string

const (
	// ProviderRejected is a well-formed non-2xx reply.
	ProviderRejected ProviderErrorKind = "REJECTED"
	// ProviderMalformed is a reply whose body is not JSON.
	ProviderMalformed ProviderErrorKind = "MALFORMED"
)

type ProviderError struct {
	Kind         ProviderErrorKind
	Operation    string
	StatusCode   int
	Descriptions []string
	Message      string
	Raw          []byte
	Err          error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("asaas %s failed [%s]: %s (status: %d)", e.Operation, e.Kind, e.Message, e.StatusCode)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// FirstDescription is the first processor error description, or Message.
func (e *ProviderError) FirstDescription() string {
	for _, d := range e.Descriptions {
		if strings.TrimSpace(d) != "" {
			return d
		}
	}
	return e.Message
}

// HTTPStatus is the status forwarded to the caller.
func (e *ProviderError) HTTPStatus() int {
	if e.Kind == ProviderMalformed {
		return http.StatusBadGateway
	}
	if e.StatusCode < 400 || e.StatusCode > 599 {
		return http.StatusBadGateway
	}
	return e.StatusCode
}

func IsProviderError(err error) (*ProviderError, bool) {
	var providerErr *ProviderError
	ok := errors.As(err, &providerErr)
	return providerErr, ok
}

func messageOf(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	return err.Error()
}
