package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const insertTransaction = `
	INSERT INTO transactions (id, account_id, date, description, amount, category, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// Create inserts a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	_, err := r.pool.Exec(ctx, insertTransaction,
		txn.ID,
		txn.AccountID,
		txn.Date,
		txn.Description,
		decimalToNumeric(txn.Amount),
		txn.Category,
		txn.CreatedAt,
	)

	return err
}

// CreateBatch inserts transactions in one round trip.
func (r *TransactionRepository) CreateBatch(ctx context.Context, txns []*domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, txn := range txns {
		batch.Queue(insertTransaction,
			txn.ID,
			txn.AccountID,
			txn.Date,
			txn.Description,
			decimalToNumeric(txn.Amount),
			txn.Category,
			txn.CreatedAt,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range txns {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return results.Close()
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
		SELECT id, account_id, date, description, amount, category, created_at
		FROM transactions
		WHERE id = $1
	`

	txn, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return txn, nil
}

// List lists transactions newest first, optionally filtered by account.
func (r *TransactionRepository) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	query := `
		SELECT id, account_id, date, description, amount, category, created_at
		FROM transactions
	`
	args := []any{}

	if filter.AccountID != "" {
		query += ` WHERE account_id = $1`
		args = append(args, filter.AccountID)
	}

	query += ` ORDER BY date DESC, created_at DESC`
	query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, rows.Err()
}

// Update updates a transaction.
func (r *TransactionRepository) Update(ctx context.Context, txn *domain.Transaction) error {
	query := `
		UPDATE transactions
		SET account_id = $2, date = $3, description = $4, amount = $5, category = $6
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		txn.ID,
		txn.AccountID,
		txn.Date,
		txn.Description,
		decimalToNumeric(txn.Amount),
		txn.Category,
	)

	return err
}

// Delete deletes a transaction.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)

	return err
}

// SpendingByCategory aggregates expenses by category, largest total
// first. Totals are absolute values of the negative amounts.
func (r *TransactionRepository) SpendingByCategory(ctx context.Context) ([]domain.CategorySpending, error) {
	query := `
		SELECT category, SUM(ABS(amount)) AS total, COUNT(*) AS count
		FROM transactions
		WHERE amount < 0
		GROUP BY category
		ORDER BY total DESC
		LIMIT 100
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.CategorySpending
	for rows.Next() {
		var category domain.CategorySpending
		var total pgtype.Numeric

		if err := rows.Scan(&category.Category, &total, &category.Count); err != nil {
			return nil, err
		}

		category.Total = numericToDecimal(total)
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// MonthlySpending sums expenses dated on or after since (inclusive,
// ISO date string).
func (r *TransactionRepository) MonthlySpending(ctx context.Context, since string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(ABS(amount)), 0)
		FROM transactions
		WHERE amount < 0 AND date >= $1
	`

	var total pgtype.Numeric
	if err := r.pool.QueryRow(ctx, query, since).Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var amount pgtype.Numeric

	err := row.Scan(
		&txn.ID,
		&txn.AccountID,
		&txn.Date,
		&txn.Description,
		&amount,
		&txn.Category,
		&txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	txn.Amount = numericToDecimal(amount)

	return &txn, nil
}
