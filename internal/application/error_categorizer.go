package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
)

// ErrorCategory represents the nature of an error for retry logic
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category for retry and logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	// The caller gave up; retrying cannot help.
	if errors.Is(err, context.Canceled) {
		return CategoryPermanent
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTransient
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return CategoryClientError
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeValidation, ErrCodeInvalidProduct, ErrCodeMethodNotAllowed:
			return CategoryClientError
		case ErrCodeConfiguration:
			return CategoryPermanent
		case ErrCodeTimeout:
			return CategoryTransient
		default:
			return CategoryInfrastructure
		}
	}

	if providerErr, ok := IsProviderError(err); ok {
		if providerErr.Kind == ProviderMalformed {
			return CategoryPermanent
		}
		switch {
		case providerErr.StatusCode >= 500:
			return CategoryTransient
		case providerErr.StatusCode == http.StatusTooManyRequests:
			return CategoryTransient
		case providerErr.StatusCode == http.StatusUnauthorized,
			providerErr.StatusCode == http.StatusForbidden:
			return CategoryPermanent
		default:
			return CategoryClientError
		}
	}

	// Transport failures (DNS, connection reset) land here.
	return CategoryTransient
}

// IsRetryable returns true if the error category suggests retry
func IsRetryable(err error) bool {
	category := CategorizeError(err)
	return category == CategoryTransient
}

// ToServiceError maps any error raised while handling a request onto the
// response taxonomy.
func ToServiceError(err error) *ServiceError {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr
	}

	if providerErr, ok := IsProviderError(err); ok {
		if providerErr.Kind == ProviderMalformed {
			return &ServiceError{
				Code:       ErrCodeUpstreamMalformed,
				Message:    MessageMalformed,
				HTTPStatus: http.StatusBadGateway,
				Err:        err,
			}
		}
		return &ServiceError{
			Code:       ErrCodeUpstreamRejected,
			Message:    providerErr.Message,
			HTTPStatus: providerErr.HTTPStatus(),
			Err:        err,
		}
	}

	if domain.IsErrorCode(err, domain.ErrCodeUnknownProduct) {
		return NewInvalidProductError(err)
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return NewValidationError(err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError(err)
	}

	return NewInternalError(err)
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return ToServiceError(err).HTTPStatus
}

// ToErrorCode returns the short code used in the response envelope
func ToErrorCode(err error) string {
	return ToServiceError(err).Code
}
