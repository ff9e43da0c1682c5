package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
	"github.com/DanielPopoola/checkout-orchestrator/internal/application/services"
	"github.com/DanielPopoola/checkout-orchestrator/internal/config"
	"github.com/DanielPopoola/checkout-orchestrator/internal/interfaces/rest"
	"github.com/DanielPopoola/checkout-orchestrator/internal/interfaces/rest/middleware"
)

// Handlers serves the three charge endpoints. It holds no mutable state.
type Handlers struct {
	orchestrator *services.Orchestrator
	asaas        config.AsaasSettings
	hosted       services.HostedCheckout
	validate     *validator.Validate
	logger       *slog.Logger
}

func NewHandlers(
	orchestrator *services.Orchestrator,
	asaas config.AsaasSettings,
	hosted config.HostedConfig,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		orchestrator: orchestrator,
		asaas:        asaas,
		hosted: services.HostedCheckout{
			AppURL:             asaas.AppURL,
			InstallmentCharges: hosted.InstallmentCharges,
		},
		validate: rest.NewValidator(),
		logger:   logger,
	}
}

// Routes mounts the endpoints, each behind its own CORS policy.
func (h *Handlers) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/checkout", middleware.CORS(http.MethodGet, http.MethodPost, http.MethodOptions)(http.HandlerFunc(h.Checkout)))
	mux.Handle("/api/pix", middleware.CORS(http.MethodPost, http.MethodOptions)(http.HandlerFunc(h.Pix)))
	mux.Handle("/api/credit-card", middleware.CORS(http.MethodPost, http.MethodOptions)(http.HandlerFunc(h.CreditCard)))
	return mux
}

func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	fail := func(err error) {
		if h.asaas.IsProduction() {
			rest.WriteError(w, err, h.logger)
			return
		}
		rest.WriteErrorWithDebug(w, err, h.logger, string(h.asaas.Environment))
	}

	req, ok := decodeRequest[CheckoutRequest](h, w, r, fail)
	if !ok {
		return
	}

	session, err := services.Execute(r.Context(), h.orchestrator, h.hosted, req.toCommand())
	if err != nil {
		fail(err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, toCheckoutResponse(session), h.logger)
}

func (h *Handlers) Pix(w http.ResponseWriter, r *http.Request) {
	fail := func(err error) { rest.WriteError(w, err, h.logger) }

	req, ok := decodeRequest[PixRequest](h, w, r, fail)
	if !ok {
		return
	}

	charge, err := services.Execute(r.Context(), h.orchestrator, services.Pix{}, req.toCommand())
	if err != nil {
		fail(err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, toPixResponse(charge), h.logger)
}

func (h *Handlers) CreditCard(w http.ResponseWriter, r *http.Request) {
	fail := func(err error) { rest.WriteError(w, err, h.logger) }

	req, ok := decodeRequest[CreditCardRequest](h, w, r, fail)
	if !ok {
		return
	}

	charge, err := services.Execute(r.Context(), h.orchestrator, services.CreditCard{}, req.toCommand(rest.ClientIP(r)))
	if err != nil {
		fail(err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, toCreditCardResponse(charge), h.logger)
}

// decodeRequest runs the steps every endpoint shares before charging:
// preflight, method check, API key presence and body validation. It
// reports false once a response has been written.
func decodeRequest[Req any](h *Handlers, w http.ResponseWriter, r *http.Request, fail func(error)) (*Req, bool) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return nil, false
	}

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST, OPTIONS")
		fail(application.NewMethodNotAllowedError(r.Method))
		return nil, false
	}

	if !h.asaas.HasAPIKey() {
		fail(application.NewConfigurationError())
		return nil, false
	}

	var req Req
	if err := rest.DecodeJSON(r, h.validate, &req); err != nil {
		fail(err)
		return nil, false
	}

	return &req, true
}
