package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/DanielPopoola/checkout-orchestrator/internal/domain"
)

var (
	ErrCheckoutNotFound   = errors.New("checkout attempt not found")
	ErrDuplicateReference = errors.New("external reference already recorded")
)

// CheckoutRepository is the Postgres checkout ledger.
type CheckoutRepository struct {
	db *DB
}

func NewCheckoutRepository(db *DB) *CheckoutRepository {
	return &CheckoutRepository{db: db}
}

// Record inserts the attempt. Two charges built in the same millisecond
// share an external reference; the second insert reports
// ErrDuplicateReference and the row is not written.
func (r *CheckoutRepository) Record(ctx context.Context, record *domain.CheckoutRecord) error {
	query := `
		INSERT INTO checkout_attempts (
			id, external_reference, channel, product_id, customer_id,
			provider_id, value, installment_count, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8, $9)
	`

	m := toDBModel(record)
	_, err := r.db.Pool.Exec(ctx, query,
		m.ID,
		m.ExternalReference,
		m.Channel,
		m.ProductID,
		m.CustomerID,
		m.ProviderID,
		m.Value,
		m.InstallmentCount,
		m.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			r.db.logger.WarnContext(ctx, "external reference collision",
				"reference", m.ExternalReference,
				"provider_id", m.ProviderID,
			)
			return fmt.Errorf("%w: %s", ErrDuplicateReference, m.ExternalReference)
		}
		return fmt.Errorf("failed to record checkout attempt: %w", err)
	}

	return nil
}

func (r *CheckoutRepository) FindByReference(ctx context.Context, reference string) (*domain.CheckoutRecord, error) {
	query := `
		SELECT id, external_reference, channel, product_id, customer_id,
		       provider_id, value::text, installment_count, created_at
		FROM checkout_attempts
		WHERE external_reference = $1
	`

	var m CheckoutAttemptModel
	err := r.db.Pool.QueryRow(ctx, query, reference).Scan(
		&m.ID,
		&m.ExternalReference,
		&m.Channel,
		&m.ProductID,
		&m.CustomerID,
		&m.ProviderID,
		&m.Value,
		&m.InstallmentCount,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCheckoutNotFound
		}
		return nil, fmt.Errorf("failed to find checkout attempt: %w", err)
	}

	value, err := decimal.NewFromString(m.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid stored value %q: %w", m.Value, err)
	}

	record := &domain.CheckoutRecord{
		ID:                m.ID,
		ExternalReference: m.ExternalReference,
		Channel:           domain.Channel(m.Channel),
		ProductID:         m.ProductID,
		ProviderID:        m.ProviderID,
		Value:             value,
		InstallmentCount:  m.InstallmentCount,
		CreatedAt:         m.CreatedAt,
	}
	if m.CustomerID != nil {
		record.CustomerID = *m.CustomerID
	}
	return record, nil
}
