package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application/services"
	"github.com/DanielPopoola/checkout-orchestrator/internal/config"
	"github.com/DanielPopoola/checkout-orchestrator/internal/infrastructure/asaas"
	"github.com/DanielPopoola/checkout-orchestrator/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/checkout-orchestrator/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/checkout-orchestrator/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting checkout service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"asaas_env", cfg.Asaas.Environment,
		"app_url", cfg.Asaas.AppURL,
	)
	if !cfg.Asaas.HasAPIKey() {
		logger.Warn("ASAAS_API_KEY is not set; charge endpoints will answer with a configuration error")
	}

	client := asaas.NewClient(cfg.Asaas, cfg.AsaasClient, logger)
	provider := asaas.NewRetryProvider(client, cfg.Retry, logger)

	opts := []services.Option{}
	if cfg.Ledger.Enabled {
		db, err := postgres.Connect(context.Background(), &cfg.Ledger.Database, logger)
		if err != nil {
			logger.Error("failed to connect to ledger database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		opts = append(opts, services.WithLedger(postgres.NewCheckoutRepository(db)))
	}

	orchestrator := services.NewOrchestrator(provider, logger, opts...)
	h := handlers.NewHandlers(orchestrator, cfg.Asaas, cfg.Hosted, logger)

	handler := middleware.Recovery(logger)(h.Routes())
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)
	handler = middleware.Logging(logger)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
