package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// Cache keys and TTL for the analytics views. Mutating use cases
// invalidate all three after a successful write.
const (
	cacheKeySpendingByCategory = "analytics:spending-by-category"
	cacheKeyMonthlySpending    = "analytics:monthly-spending"
	cacheKeyAssetAllocation    = "analytics:asset-allocation"

	analyticsCacheTTL = time.Minute
)

var analyticsCacheKeys = []string{
	cacheKeySpendingByCategory,
	cacheKeyMonthlySpending,
	cacheKeyAssetAllocation,
}

// invalidateAnalytics drops the cached analytics views. Failures are
// logged and otherwise ignored; the views are recomputed on demand.
func invalidateAnalytics(ctx context.Context, cache Cache) {
	if cache == nil {
		return
	}
	for _, key := range analyticsCacheKeys {
		if err := cache.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("analytics cache invalidation failed")
		}
	}
}

// AnalyticsUseCase computes aggregate views over accounts and
// transactions.
type AnalyticsUseCase struct {
	transactionRepo TransactionRepository
	accountRepo     AccountRepository
	cache           Cache
}

// NewAnalyticsUseCase creates a new AnalyticsUseCase.
func NewAnalyticsUseCase(transactionRepo TransactionRepository, accountRepo AccountRepository, cache Cache) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		cache:           cache,
	}
}

// SpendingByCategory returns expense totals grouped by category,
// ordered by total descending. Amounts are absolute values.
func (uc *AnalyticsUseCase) SpendingByCategory(ctx context.Context) ([]domain.CategorySpending, error) {
	var cached []domain.CategorySpending
	if uc.readCache(ctx, cacheKeySpendingByCategory, &cached) {
		return cached, nil
	}

	spending, err := uc.transactionRepo.SpendingByCategory(ctx)
	if err != nil {
		return nil, err
	}

	uc.writeCache(ctx, cacheKeySpendingByCategory, spending)

	return spending, nil
}

// MonthlySpending returns the absolute sum of expenses dated on or
// after the first day of the current month.
func (uc *AnalyticsUseCase) MonthlySpending(ctx context.Context) (decimal.Decimal, error) {
	var cached decimal.Decimal
	if uc.readCache(ctx, cacheKeyMonthlySpending, &cached) {
		return cached, nil
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format(domain.DateLayout)

	total, err := uc.transactionRepo.MonthlySpending(ctx, monthStart)
	if err != nil {
		return decimal.Zero, err
	}

	uc.writeCache(ctx, cacheKeyMonthlySpending, total)

	return total, nil
}

type cachedAllocation struct {
	Allocation []domain.AllocationSlice `json:"allocation"`
	Total      decimal.Decimal          `json:"total"`
}

// AssetAllocation groups account balances by account category and
// reports the grand total alongside.
func (uc *AnalyticsUseCase) AssetAllocation(ctx context.Context) ([]domain.AllocationSlice, decimal.Decimal, error) {
	var cached cachedAllocation
	if uc.readCache(ctx, cacheKeyAssetAllocation, &cached) {
		return cached.Allocation, cached.Total, nil
	}

	allocation, err := uc.accountRepo.AllocationByCategory(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}

	total := decimal.Zero
	for _, slice := range allocation {
		total = total.Add(slice.Value)
	}

	uc.writeCache(ctx, cacheKeyAssetAllocation, cachedAllocation{Allocation: allocation, Total: total})

	return allocation, total, nil
}

func (uc *AnalyticsUseCase) readCache(ctx context.Context, key string, out any) bool {
	if uc.cache == nil {
		return false
	}

	data, err := uc.cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return false
	}

	return json.Unmarshal(data, out) == nil
}

func (uc *AnalyticsUseCase) writeCache(ctx context.Context, key string, value any) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, key, data, analyticsCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("analytics cache write failed")
	}
}
