package asaas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
	"github.com/DanielPopoola/checkout-orchestrator/internal/config"
)

// Replies larger than this are cut before parsing.
const maxResponseBytes = 1 << 20

type HTTPClient struct {
	apiURL     string
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(settings config.AsaasSettings, cfg config.AsaasClientConfig, logger *slog.Logger) *HTTPClient {
	return &HTTPClient{
		apiURL:    strings.TrimRight(settings.APIURL, "/"),
		baseURL:   strings.TrimRight(settings.BaseURL, "/"),
		apiKey:    settings.APIKey,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

var _ application.PaymentProvider = (*HTTPClient)(nil)

func (c *HTTPClient) FindCustomerByTaxID(ctx context.Context, taxID string) (*application.ProviderCustomer, error) {
	endpoint := fmt.Sprintf("%s/customers?%s", c.apiURL, url.Values{"cpfCnpj": []string{taxID}}.Encode())
	list, err := sendRequest[any, customerList](c, ctx, "search customer", http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if len(list.Data) == 0 {
		return nil, nil
	}
	return &list.Data[0], nil
}

func (c *HTTPClient) CreateCustomer(ctx context.Context, req application.CreateCustomerRequest) (*application.ProviderCustomer, error) {
	endpoint := fmt.Sprintf("%s/customers", c.apiURL)
	return sendRequest[application.CreateCustomerRequest, application.ProviderCustomer](c, ctx, "create customer", http.MethodPost, endpoint, &req)
}

// CreateCheckout always returns a usable Link: when the processor omits it,
// the hosted page URL is derived from the checkout id.
func (c *HTTPClient) CreateCheckout(ctx context.Context, req application.CreateCheckoutRequest) (*application.CheckoutResponse, error) {
	endpoint := fmt.Sprintf("%s/checkouts", c.apiURL)
	resp, err := sendRequest[application.CreateCheckoutRequest, application.CheckoutResponse](c, ctx, "create checkout", http.MethodPost, endpoint, &req)
	if err != nil {
		return nil, err
	}
	resp.Link = CheckoutURL(c.baseURL, resp)
	return resp, nil
}

func (c *HTTPClient) CreatePayment(ctx context.Context, req application.CreatePaymentRequest) (*application.PaymentResponse, error) {
	endpoint := fmt.Sprintf("%s/payments", c.apiURL)
	return sendRequest[application.CreatePaymentRequest, application.PaymentResponse](c, ctx, "create payment", http.MethodPost, endpoint, &req)
}

func (c *HTTPClient) GetPixQRCode(ctx context.Context, paymentID string) (*application.PixQRCodeResponse, error) {
	endpoint := fmt.Sprintf("%s/payments/%s/pixQrCode", c.apiURL, url.PathEscape(paymentID))
	return sendRequest[any, application.PixQRCodeResponse](c, ctx, "fetch pix qr code", http.MethodGet, endpoint, nil)
}

func sendRequest[Req any, Resp any](c *HTTPClient, ctx context.Context, operation, method, url string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("access_token", c.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.ErrorContext(ctx, "asaas request failed", "operation", operation, "error", err)
		return nil, fmt.Errorf("error making %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("error reading %s response: %w", operation, err)
	}

	c.logger.DebugContext(ctx, "asaas response",
		"operation", operation,
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	return decode[Resp](operation, resp.StatusCode, body)
}
