package asaas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
)

// Raw payloads kept on errors are capped at this size.
const maxRawBytes = 4 << 10

type customerList struct {
	Data       []application.ProviderCustomer `json:"data"`
	TotalCount int                            `json:"totalCount"`
}

type errorPayload struct {
	Errors []struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"errors"`
	Message string `json:"message"`
}

// decode turns a processor reply into either a typed value or a
// *application.ProviderError. An empty body counts as "{}".
func decode[T any](operation string, status int, body []byte) (*T, error) {
	payload := bytes.TrimSpace(body)
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	if !json.Valid(payload) {
		return nil, malformed(operation, status, payload, nil)
	}

	if status < 200 || status > 299 {
		return nil, rejected(operation, status, payload)
	}

	var out T
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, malformed(operation, status, payload, err)
	}
	return &out, nil
}

func rejected(operation string, status int, payload []byte) *application.ProviderError {
	providerErr := &application.ProviderError{
		Kind:       application.ProviderRejected,
		Operation:  operation,
		StatusCode: status,
		Message:    application.MessageUpstreamFallback,
		Raw:        truncate(payload),
	}

	var parsed errorPayload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return providerErr
	}

	for _, e := range parsed.Errors {
		if d := strings.TrimSpace(e.Description); d != "" {
			providerErr.Descriptions = append(providerErr.Descriptions, d)
		}
	}

	switch {
	case len(providerErr.Descriptions) > 0:
		providerErr.Message = strings.Join(providerErr.Descriptions, ", ")
	case strings.TrimSpace(parsed.Message) != "":
		providerErr.Message = parsed.Message
	}
	return providerErr
}

func malformed(operation string, status int, payload []byte, cause error) *application.ProviderError {
	return &application.ProviderError{
		Kind:       application.ProviderMalformed,
		Operation:  operation,
		StatusCode: status,
		Message:    application.MessageMalformed,
		Raw:        truncate(payload),
		Err:        cause,
	}
}

func truncate(payload []byte) []byte {
	if len(payload) <= maxRawBytes {
		return payload
	}
	return payload[:maxRawBytes]
}

// CheckoutURL prefers the processor's link. The fallback uses the
// /checkoutSession/show/{id} shape; the older /c/{id} form is not produced.
func CheckoutURL(baseURL string, resp *application.CheckoutResponse) string {
	if resp.Link != "" {
		return resp.Link
	}
	if resp.ID == "" {
		return ""
	}
	return fmt.Sprintf("%s/checkoutSession/show/%s", strings.TrimRight(baseURL, "/"), resp.ID)
}
