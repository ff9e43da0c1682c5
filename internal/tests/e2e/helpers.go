package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DanielPopoola/checkout-orchestrator/internal/tests/e2e/testdata"
)

// TestClient wraps HTTP calls to a running checkout service.
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Post sends body as JSON and returns the status with the decoded reply.
func (c *TestClient) Post(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func (c *TestClient) Ready() bool {
	req, err := http.NewRequest(http.MethodOptions, c.baseURL+"/api/checkout", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func customer() map[string]any {
	return map[string]any{
		"name":          "Marcelo Almeida",
		"email":         "marcelo.almeida@example.com",
		"taxId":         testdata.SandboxCPF,
		"phone":         "(47) 99876-5432",
		"postalCode":    "89223-005",
		"address":       "Av. Paulista",
		"addressNumber": "150",
		"province":      "sc",
	}
}

func card(c testdata.TestCard) map[string]any {
	return map[string]any{
		"number":      c.Number,
		"holderName":  c.HolderName,
		"expiryMonth": c.ExpiryMonth,
		"expiryYear":  c.ExpiryYear,
		"ccv":         c.CCV,
	}
}
