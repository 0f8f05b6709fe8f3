package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// TransactionUseCase handles transaction business logic.
type TransactionUseCase struct {
	transactionRepo TransactionRepository
	accountRepo     AccountRepository
	idGen           IDGenerator
	cache           Cache
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(transactionRepo TransactionRepository, accountRepo AccountRepository, idGen IDGenerator, cache Cache) *TransactionUseCase {
	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		idGen:           idGen,
		cache:           cache,
	}
}

// CreateTransactionInput represents input for creating a transaction.
type CreateTransactionInput struct {
	AccountID   string
	Date        string
	Description string
	Amount      decimal.Decimal
	Category    string
}

// CreateTransaction records a transaction against an existing account.
// An empty date becomes today; an empty category becomes the default.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if input.Date == "" {
		input.Date = now.Format(domain.DateLayout)
	}
	if err := domain.ValidateTransactionDate(input.Date); err != nil {
		return nil, err
	}
	if input.Category == "" {
		input.Category = domain.DefaultCategory
	}

	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	transaction := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		AccountID:   input.AccountID,
		Date:        input.Date,
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.Category,
		CreatedAt:   now,
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	invalidateAnalytics(ctx, uc.cache)

	return transaction, nil
}

// ImportCandidates records a batch of extracted candidates against an
// account in one round trip.
func (uc *TransactionUseCase) ImportCandidates(ctx context.Context, accountID string, candidates []domain.TransactionCandidate) ([]*domain.Transaction, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	today := now.Format(domain.DateLayout)

	transactions := make([]*domain.Transaction, 0, len(candidates))
	for _, candidate := range candidates {
		date := candidate.Date
		if date == "" {
			date = today
		}
		category := candidate.Category
		if category == "" {
			category = domain.DefaultCategory
		}

		transactions = append(transactions, &domain.Transaction{
			ID:          uc.idGen.Generate(),
			AccountID:   accountID,
			Date:        date,
			Description: candidate.Description,
			Amount:      candidate.Amount,
			Category:    category,
			CreatedAt:   now,
		})
	}

	if err := uc.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return nil, err
	}

	invalidateAnalytics(ctx, uc.cache)

	return transactions, nil
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListTransactions lists transactions ordered by date descending,
// optionally narrowed to one account.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}
	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}
	if input.Offset < 0 {
		input.Offset = 0
	}

	return uc.transactionRepo.List(ctx, domain.TransactionFilter{
		AccountID: input.AccountID,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
}

// UpdateTransactionInput represents input for a partial transaction
// update. Nil fields are left unchanged.
type UpdateTransactionInput struct {
	ID          string
	Date        *string
	Description *string
	Amount      *decimal.Decimal
	Category    *string
}

// UpdateTransaction applies the non-nil fields of input to a
// transaction.
func (uc *TransactionUseCase) UpdateTransaction(ctx context.Context, input UpdateTransactionInput) (*domain.Transaction, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		if err := domain.ValidateTransactionDate(*input.Date); err != nil {
			return nil, err
		}
		transaction.Date = *input.Date
	}
	if input.Description != nil {
		if err := domain.ValidateDescription(*input.Description); err != nil {
			return nil, err
		}
		transaction.Description = *input.Description
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Category != nil {
		transaction.Category = *input.Category
	}

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, err
	}

	invalidateAnalytics(ctx, uc.cache)

	return transaction, nil
}

// DeleteTransaction removes a transaction.
func (uc *TransactionUseCase) DeleteTransaction(ctx context.Context, id string) error {
	if _, err := uc.transactionRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := uc.transactionRepo.Delete(ctx, id); err != nil {
		return err
	}

	invalidateAnalytics(ctx, uc.cache)

	return nil
}
