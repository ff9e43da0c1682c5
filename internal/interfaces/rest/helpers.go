package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
)

const maxBodyBytes = 64 << 10

func WriteJSON(w http.ResponseWriter, status int, body any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// ClientIP is the first X-Forwarded-For entry, else X-Real-IP, else loopback.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	return "127.0.0.1"
}

// NewValidator reports field errors by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON reads and validates a request body. Every failure is a
// validation error.
func DecodeJSON(r *http.Request, v *validator.Validate, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return application.NewValidationError(fmt.Errorf("falha ao ler o corpo da requisição: %w", err))
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return application.NewValidationError(errors.New("corpo da requisição vazio"))
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return application.NewValidationError(errors.New("JSON inválido no corpo da requisição"))
	}

	if err := v.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return application.NewValidationError(err)
		}
		return application.NewValidationError(describe(fieldErrs))
	}
	return nil
}

func describe(fieldErrs validator.ValidationErrors) error {
	var missing []string
	for _, fe := range fieldErrs {
		field := fe.Namespace()
		// drop the root struct name
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		if fe.Tag() != "required" {
			if fe.Field() == "installments" {
				return domain.NewInvalidInstallmentsError(intParam(fe.Value()))
			}
			return fmt.Errorf("campo inválido: %s", field)
		}
		missing = append(missing, field)
	}
	return domain.NewMissingRequiredFieldError(missing...)
}

func intParam(v any) int {
	if n, ok := v.(int); ok {
		return n
	}
	return 0
}
