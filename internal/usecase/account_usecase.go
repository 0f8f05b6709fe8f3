package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	holdingRepo HoldingRepository
	retrier     Retrier
	idGen       IDGenerator
	cache       Cache
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	holdingRepo HoldingRepository,
	retrier Retrier,
	idGen IDGenerator,
	cache Cache,
) *AccountUseCase {
	return &AccountUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		holdingRepo: holdingRepo,
		retrier:     retrier,
		idGen:       idGen,
		cache:       cache,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name        string
	Institution string
	Category    string
	Balance     decimal.Decimal
}

// CreateAccount creates a new account.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateInstitution(input.Institution); err != nil {
		return nil, err
	}
	if err := domain.ValidateAccountCategory(input.Category); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:          uc.idGen.Generate(),
		Name:        input.Name,
		Institution: input.Institution,
		Category:    input.Category,
		Balance:     input.Balance,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	invalidateAnalytics(ctx, uc.cache)

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts ordered by creation time.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}
	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}
	if input.Offset < 0 {
		input.Offset = 0
	}
	return uc.accountRepo.List(ctx, input.Limit, input.Offset)
}

// UpdateAccountInput represents input for a partial account update.
// Nil fields are left unchanged.
type UpdateAccountInput struct {
	ID          string
	Name        *string
	Institution *string
	Category    *string
	Balance     *decimal.Decimal
}

// UpdateAccount applies the non-nil fields of input to an account.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, input UpdateAccountInput) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateAccountName(*input.Name); err != nil {
			return nil, err
		}
		account.Name = *input.Name
	}
	if input.Institution != nil {
		if err := domain.ValidateInstitution(*input.Institution); err != nil {
			return nil, err
		}
		account.Institution = *input.Institution
	}
	if input.Category != nil {
		if err := domain.ValidateAccountCategory(*input.Category); err != nil {
			return nil, err
		}
		account.Category = *input.Category
	}
	if input.Balance != nil {
		account.Balance = *input.Balance
	}

	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	invalidateAnalytics(ctx, uc.cache)

	return account, nil
}

// DeleteAccount removes an account together with its holdings. Both
// deletes run in one database transaction so a failure leaves the
// account intact. Transactions referencing the account are kept.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, id string) error {
	if _, err := uc.accountRepo.GetByID(ctx, id); err != nil {
		return err
	}

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.holdingRepo.DeleteByAccount(ctx, tx, id); err != nil {
			return err
		}

		if err := uc.accountRepo.Delete(ctx, tx, id); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return err
	}

	invalidateAnalytics(ctx, uc.cache)

	return nil
}
