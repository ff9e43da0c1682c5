package e2e

import (
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/DanielPopoola/checkout-orchestrator/internal/tests/e2e/testdata"
)

// E2ETestSuite drives a running service configured with ASAAS_ENV=sandbox.
// Every happy-path test creates real sandbox charges.
type E2ETestSuite struct {
	suite.Suite
	client *TestClient
}

func TestE2ESuite(t *testing.T) {
	if os.Getenv("RUN_E2E_TESTS") != "true" {
		t.Skip("Skipping E2E tests (set RUN_E2E_TESTS=true to run)")
	}

	suite.Run(t, new(E2ETestSuite))
}

func (s *E2ETestSuite) SetupSuite() {
	baseURL := os.Getenv("CHECKOUT_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3001"
	}
	s.client = NewTestClient(baseURL)
	s.waitForService()
}

func (s *E2ETestSuite) waitForService() {
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		if s.client.Ready() {
			return
		}
		time.Sleep(500 * time.Millisecond)
	}
	s.T().Fatal("checkout service did not become ready")
}

// ============================================================================
// HAPPY PATHS
// ============================================================================

func (s *E2ETestSuite) TestHostedCheckout() {
	status, body := s.client.Post(s.T(), "/api/checkout", map[string]any{
		"customerData": customer(),
	})

	s.Require().Equal(http.StatusOK, status, body)
	s.Equal(true, body["success"])
	s.NotEmpty(body["checkoutId"])
	url, _ := body["url"].(string)
	s.True(strings.HasPrefix(url, "https://sandbox.asaas.com/"), url)
	s.NotEmpty(body["expiresAt"])
}

func (s *E2ETestSuite) TestPix() {
	status, body := s.client.Post(s.T(), "/api/pix", map[string]any{
		"product":      "lauren",
		"customerData": customer(),
	})

	s.Require().Equal(http.StatusOK, status, body)
	s.NotEmpty(body["paymentId"])
	qr, ok := body["qrCode"].(map[string]any)
	s.Require().True(ok)
	s.NotEmpty(qr["payload"])
	s.NotEmpty(qr["image"])
}

func (s *E2ETestSuite) TestCreditCardInstallments() {
	status, body := s.client.Post(s.T(), "/api/credit-card", map[string]any{
		"product":        "lauren",
		"installments":   3,
		"customerData":   customer(),
		"creditCardData": card(testdata.ApprovedCard),
	})

	s.Require().Equal(http.StatusOK, status, body)
	s.NotEmpty(body["paymentId"])
	s.Equal(3.0, body["installmentCount"])
	s.Equal(299.0, body["installmentValue"])
}

// ============================================================================
// FAILURE MODES
// ============================================================================

func (s *E2ETestSuite) TestUnknownProduct() {
	status, body := s.client.Post(s.T(), "/api/pix", map[string]any{
		"product":      "other",
		"customerData": customer(),
	})

	s.Equal(http.StatusBadRequest, status)
	s.Equal("Invalid product", body["error"])
}

func (s *E2ETestSuite) TestInvalidCard() {
	status, body := s.client.Post(s.T(), "/api/credit-card", map[string]any{
		"product":        "lauren",
		"customerData":   customer(),
		"creditCardData": card(testdata.ShortNumberCard),
	})

	s.Equal(http.StatusBadRequest, status)
	s.Equal("Validation error", body["error"])
}
