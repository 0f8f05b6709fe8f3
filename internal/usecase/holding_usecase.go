package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// HoldingUseCase handles holding business logic.
type HoldingUseCase struct {
	holdingRepo HoldingRepository
	accountRepo AccountRepository
	idGen       IDGenerator
	cache       Cache
}

// NewHoldingUseCase creates a new HoldingUseCase.
func NewHoldingUseCase(holdingRepo HoldingRepository, accountRepo AccountRepository, idGen IDGenerator, cache Cache) *HoldingUseCase {
	return &HoldingUseCase{
		holdingRepo: holdingRepo,
		accountRepo: accountRepo,
		idGen:       idGen,
		cache:       cache,
	}
}

// CreateHoldingInput represents input for creating a holding.
type CreateHoldingInput struct {
	AccountID string
	Ticker    string
	Quantity  decimal.Decimal
	Value     decimal.Decimal
}

// CreateHolding creates a holding under an existing account.
func (uc *HoldingUseCase) CreateHolding(ctx context.Context, input CreateHoldingInput) (*domain.Holding, error) {
	if err := domain.ValidateTicker(input.Ticker); err != nil {
		return nil, err
	}

	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	holding := &domain.Holding{
		ID:        uc.idGen.Generate(),
		AccountID: input.AccountID,
		Ticker:    input.Ticker,
		Quantity:  input.Quantity,
		Value:     input.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.holdingRepo.Create(ctx, holding); err != nil {
		return nil, err
	}

	invalidateAnalytics(ctx, uc.cache)

	return holding, nil
}

// ListHoldingsByAccount lists the holdings of one account.
func (uc *HoldingUseCase) ListHoldingsByAccount(ctx context.Context, accountID string) ([]*domain.Holding, error) {
	if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	return uc.holdingRepo.ListByAccount(ctx, accountID)
}

// UpdateHoldingInput represents input for a partial holding update.
// Nil fields are left unchanged.
type UpdateHoldingInput struct {
	ID       string
	Ticker   *string
	Quantity *decimal.Decimal
	Value    *decimal.Decimal
}

// UpdateHolding applies the non-nil fields of input to a holding.
func (uc *HoldingUseCase) UpdateHolding(ctx context.Context, input UpdateHoldingInput) (*domain.Holding, error) {
	holding, err := uc.holdingRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Ticker != nil {
		if err := domain.ValidateTicker(*input.Ticker); err != nil {
			return nil, err
		}
		holding.Ticker = *input.Ticker
	}
	if input.Quantity != nil {
		holding.Quantity = *input.Quantity
	}
	if input.Value != nil {
		holding.Value = *input.Value
	}

	holding.UpdatedAt = time.Now().UTC()

	if err := uc.holdingRepo.Update(ctx, holding); err != nil {
		return nil, err
	}

	invalidateAnalytics(ctx, uc.cache)

	return holding, nil
}

// DeleteHolding removes a holding.
func (uc *HoldingUseCase) DeleteHolding(ctx context.Context, id string) error {
	if _, err := uc.holdingRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := uc.holdingRepo.Delete(ctx, id); err != nil {
		return err
	}

	invalidateAnalytics(ctx, uc.cache)

	return nil
}
