package tests

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application/services"
	"github.com/DanielPopoola/checkout-orchestrator/internal/config"
	"github.com/DanielPopoola/checkout-orchestrator/internal/infrastructure/asaas"
	"github.com/DanielPopoola/checkout-orchestrator/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/checkout-orchestrator/internal/infrastructure/persistence/postgres/testhelpers"
	"github.com/DanielPopoola/checkout-orchestrator/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/checkout-orchestrator/internal/interfaces/rest/middleware"
)

// fakeProcessor answers like the Asaas sandbox for the happy paths and
// fails the first customer search to exercise the read retry.
func fakeProcessor(t *testing.T, searches *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sandbox-key", r.Header.Get("access_token"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v3/customers":
			if searches.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"errors":[{"description":"Serviço indisponível"}]}`))
				return
			}
			_, _ = w.Write([]byte(`{"data":[{"id":"cus_int"}]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/v3/payments":
			_, _ = w.Write([]byte(`{"id":"pay_int","status":"PENDING","invoiceUrl":"https://sandbox.asaas.com/i/pay_int"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/v3/payments/pay_int/pixQrCode":
			_, _ = w.Write([]byte(`{"encodedImage":"aW1n","payload":"000201","expirationDate":"2024-03-11 23:59:59"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[{"description":"not found"}]}`))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestPixThroughFullStack(t *testing.T) {
	testDB := testhelpers.SetupTestDatabase(t)
	t.Cleanup(func() { testDB.Cleanup(t) })

	var searches atomic.Int32
	processor := fakeProcessor(t, &searches)

	cfg, err := config.Load(map[string]string{
		"ASAAS_API_KEY":                       "sandbox-key",
		"ASAAS_ENV":                           "sandbox",
		"APP_URL":                             "https://lauren.example/",
		"CHECKOUT_RETRY__MAX_ATTEMPTS":        "3",
		"CHECKOUT_RETRY__BASE_DELAY":          "1ms",
		"CHECKOUT_LEDGER__ENABLED":            "true",
		"CHECKOUT_LEDGER__DATABASE__HOST":     testDB.Config.Host,
		"CHECKOUT_LEDGER__DATABASE__PORT":     strconv.Itoa(testDB.Config.Port),
		"CHECKOUT_LEDGER__DATABASE__USER":     testDB.Config.User,
		"CHECKOUT_LEDGER__DATABASE__PASSWORD": testDB.Config.Password,
		"CHECKOUT_LEDGER__DATABASE__NAME":     testDB.Config.Name,
	})
	require.NoError(t, err)
	cfg.Asaas.APIURL = processor.URL + "/v3"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := asaas.NewClient(cfg.Asaas, cfg.AsaasClient, logger)
	provider := asaas.NewRetryProvider(client, cfg.Retry, logger)
	repo := postgres.NewCheckoutRepository(testDB.DB)

	now := time.Date(2024, time.March, 10, 15, 4, 5, 123_000_000, time.UTC)
	orchestrator := services.NewOrchestrator(provider, logger,
		services.WithLedger(repo),
		services.WithClock(func() time.Time { return now }),
	)
	h := handlers.NewHandlers(orchestrator, cfg.Asaas, cfg.Hosted, logger)

	handler := middleware.Recovery(logger)(h.Routes())
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)
	handler = middleware.Logging(logger)(handler)

	body := `{"product":"lauren","customerData":{"name":"Maria","email":"maria@example.com","taxId":"123.456.789-09"}}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/pix", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "pay_int", out["paymentId"])
	assert.Equal(t, int32(2), searches.Load())

	record, err := repo.FindByReference(context.Background(), "lauren-pix-1710083045123")
	require.NoError(t, err)
	assert.Equal(t, "pay_int", record.ProviderID)
	assert.Equal(t, "cus_int", record.CustomerID)

	// Same millisecond, same reference: the charge still succeeds and the
	// ledger keeps the first row.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/pix", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rows int
	require.NoError(t, testDB.DB.Pool.QueryRow(context.Background(), "SELECT count(*) FROM checkout_attempts").Scan(&rows))
	assert.Equal(t, 1, rows)
}
