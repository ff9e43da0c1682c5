package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DanielPopoola/checkout-orchestrator/internal/application"
	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
)

// Submission is what a strategy gets once the command has been validated,
// normalized and priced.
type Submission struct {
	Command    ChargeCommand
	Product    domain.Product
	CustomerID string
	Reference  string
	Now        time.Time
}

// ChargeStrategy is one way of billing a product through the processor.
type ChargeStrategy[Out any] interface {
	Channel() domain.Channel
	// Validate runs after the shared customer checks, on normalized input.
	Validate(cmd ChargeCommand) error
	RequiresCustomer() bool
	Submit(ctx context.Context, provider application.PaymentProvider, sub Submission) (*Out, error)
	// Record describes the created charge for the ledger.
	Record(out *Out, sub Submission) *domain.CheckoutRecord
}

type Orchestrator struct {
	provider  application.PaymentProvider
	customers *CustomerResolver
	ledger    application.CheckoutLedger
	catalog   domain.Catalog
	now       func() time.Time
	logger    *slog.Logger
}

type Option func(*Orchestrator)

func WithLedger(ledger application.CheckoutLedger) Option {
	return func(o *Orchestrator) { o.ledger = ledger }
}

func WithCatalog(catalog domain.Catalog) Option {
	return func(o *Orchestrator) { o.catalog = catalog }
}

func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

func NewOrchestrator(provider application.PaymentProvider, logger *slog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		provider:  provider,
		customers: NewCustomerResolver(provider, logger),
		catalog:   domain.DefaultCatalog(),
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Execute runs a charge through the shared pipeline: customer checks,
// normalization, strategy checks, product lookup, customer resolution,
// submission and a best-effort ledger entry.
func Execute[Out any](ctx context.Context, o *Orchestrator, strategy ChargeStrategy[Out], cmd ChargeCommand) (*Out, error) {
	if err := cmd.Customer.Validate(); err != nil {
		return nil, application.NewValidationError(err)
	}

	normalized := cmd.normalized()
	if err := strategy.Validate(normalized); err != nil {
		return nil, application.ToServiceError(err)
	}

	product, err := o.catalog.Lookup(normalized.ProductID)
	if err != nil {
		return nil, application.NewInvalidProductError(err)
	}

	now := o.now()
	sub := Submission{
		Command:   normalized,
		Product:   product,
		Reference: domain.ExternalReference(product.ID, strategy.Channel(), now),
		Now:       now,
	}

	if strategy.RequiresCustomer() {
		customerID, err := o.customers.Resolve(ctx, normalized.Customer)
		if err != nil {
			return nil, err
		}
		sub.CustomerID = customerID
	}

	out, err := strategy.Submit(ctx, o.provider, sub)
	if err != nil {
		o.logger.WarnContext(ctx, "charge failed",
			"channel", strategy.Channel(),
			"reference", sub.Reference,
			"error", err,
		)
		return nil, err
	}

	record := strategy.Record(out, sub)
	o.logger.InfoContext(ctx, "charge created",
		"channel", strategy.Channel(),
		"product", product.ID,
		"reference", sub.Reference,
		"provider_id", record.ProviderID,
	)
	o.record(ctx, record)

	return out, nil
}

// record never fails the request; the charge already exists upstream.
func (o *Orchestrator) record(ctx context.Context, record *domain.CheckoutRecord) {
	if o.ledger == nil || record == nil {
		return
	}
	record.ID = uuid.NewString()
	if err := o.ledger.Record(ctx, record); err != nil {
		o.logger.WarnContext(ctx, "failed to record checkout attempt",
			"reference", record.ExternalReference,
			"error", err,
		)
	}
}
