package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

// HoldingRepository implements usecase.HoldingRepository.
type HoldingRepository struct {
	pool *pgxpool.Pool
}

// NewHoldingRepository creates a new HoldingRepository.
func NewHoldingRepository(pool *pgxpool.Pool) *HoldingRepository {
	return &HoldingRepository{pool: pool}
}

// Create inserts a new holding.
func (r *HoldingRepository) Create(ctx context.Context, holding *domain.Holding) error {
	query := `
		INSERT INTO holdings (id, account_id, ticker, quantity, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		holding.ID,
		holding.AccountID,
		holding.Ticker,
		decimalToNumeric(holding.Quantity),
		decimalToNumeric(holding.Value),
		holding.CreatedAt,
		holding.UpdatedAt,
	)

	return err
}

// GetByID retrieves a holding by ID.
func (r *HoldingRepository) GetByID(ctx context.Context, id string) (*domain.Holding, error) {
	query := `
		SELECT id, account_id, ticker, quantity, value, created_at, updated_at
		FROM holdings
		WHERE id = $1
	`

	holding, err := scanHolding(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHoldingNotFound
		}

		return nil, err
	}

	return holding, nil
}

// ListByAccount lists the holdings of one account, oldest first.
func (r *HoldingRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Holding, error) {
	query := `
		SELECT id, account_id, ticker, quantity, value, created_at, updated_at
		FROM holdings
		WHERE account_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []*domain.Holding
	for rows.Next() {
		holding, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, holding)
	}

	return holdings, rows.Err()
}

// Update updates a holding.
func (r *HoldingRepository) Update(ctx context.Context, holding *domain.Holding) error {
	query := `
		UPDATE holdings
		SET ticker = $2, quantity = $3, value = $4, updated_at = $5
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		holding.ID,
		holding.Ticker,
		decimalToNumeric(holding.Quantity),
		decimalToNumeric(holding.Value),
		holding.UpdatedAt,
	)

	return err
}

// Delete deletes a holding.
func (r *HoldingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM holdings WHERE id = $1`, id)

	return err
}

// DeleteByAccount deletes every holding of an account inside the given
// transaction. It backs the cascade on account deletion.
func (r *HoldingRepository) DeleteByAccount(ctx context.Context, tx usecase.Transaction, accountID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM holdings WHERE account_id = $1`, accountID)

	return err
}

func scanHolding(row pgx.Row) (*domain.Holding, error) {
	var holding domain.Holding
	var quantity, value pgtype.Numeric

	err := row.Scan(
		&holding.ID,
		&holding.AccountID,
		&holding.Ticker,
		&quantity,
		&value,
		&holding.CreatedAt,
		&holding.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	holding.Quantity = numericToDecimal(quantity)
	holding.Value = numericToDecimal(value)

	return &holding, nil
}
