package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
)

func TestSpendingByCategory(t *testing.T) {
	env := newTestEnv(t, offlineModel())
	ctx := context.Background()

	account := env.DB.CreateTestAccount(ctx, "Spending Account", domain.CategoryBankAccounts, decimal.NewFromInt(2000))
	env.DB.CreateTestTransaction(ctx, account.ID, "2025-06-01", "Groceries", "Food & Dining", decimal.NewFromFloat(-30.50))
	env.DB.CreateTestTransaction(ctx, account.ID, "2025-06-02", "Restaurant", "Food & Dining", decimal.NewFromInt(-20))
	env.DB.CreateTestTransaction(ctx, account.ID, "2025-06-03", "Bus pass", "Transport", decimal.NewFromInt(-15))
	env.DB.CreateTestTransaction(ctx, account.ID, "2025-06-05", "Paycheck", "Income", decimal.NewFromInt(3000))

	t.Run("aggregates expenses as absolute totals", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/analytics/spending-by-category", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		resp := decode[map[string]dto.CategorySpendingEntry](t, w)

		food, ok := resp["Food & Dining"]
		if !ok {
			t.Fatalf("missing Food & Dining entry in %v", resp)
		}
		if !food.Total.Equal(decimal.NewFromFloat(50.50)) {
			t.Errorf("expected Food & Dining total 50.5, got %s", food.Total)
		}
		if food.Count != 2 {
			t.Errorf("expected Food & Dining count 2, got %d", food.Count)
		}

		transport := resp["Transport"]
		if !transport.Total.Equal(decimal.NewFromInt(15)) {
			t.Errorf("expected Transport total 15, got %s", transport.Total)
		}

		if _, ok := resp["Income"]; ok {
			t.Error("income must not appear in spending aggregates")
		}
	})

	t.Run("API writes invalidate the cached view", func(t *testing.T) {
		// The previous request warmed the cache; a stale entry would
		// mask this write.
		w := env.do(t, http.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
			AccountID:   account.ID,
			Date:        "2025-06-07",
			Description: "Taxi",
			Amount:      decimal.NewFromInt(-10),
			Category:    "Transport",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		w = env.do(t, http.MethodGet, "/api/analytics/spending-by-category", nil)
		resp := decode[map[string]dto.CategorySpendingEntry](t, w)

		transport := resp["Transport"]
		if !transport.Total.Equal(decimal.NewFromInt(25)) {
			t.Errorf("expected Transport total 25 after new expense, got %s", transport.Total)
		}
		if transport.Count != 2 {
			t.Errorf("expected Transport count 2, got %d", transport.Count)
		}
	})
}

func TestMonthlySpending(t *testing.T) {
	env := newTestEnv(t, offlineModel())
	ctx := context.Background()

	account := env.DB.CreateTestAccount(ctx, "Monthly Account", domain.CategoryBankAccounts, decimal.NewFromInt(1000))

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth := monthStart.AddDate(0, 0, -1)

	env.DB.CreateTestTransaction(ctx, account.ID, monthStart.Format(domain.DateLayout), "Rent", "Housing", decimal.NewFromFloat(-25.25))
	env.DB.CreateTestTransaction(ctx, account.ID, now.Format(domain.DateLayout), "Lunch", "Food & Dining", decimal.NewFromInt(-10))
	env.DB.CreateTestTransaction(ctx, account.ID, lastMonth.Format(domain.DateLayout), "Old expense", "Other", decimal.NewFromInt(-99))
	env.DB.CreateTestTransaction(ctx, account.ID, now.Format(domain.DateLayout), "Refund", "Other", decimal.NewFromInt(500))

	w := env.do(t, http.MethodGet, "/api/analytics/monthly-spending", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	resp := decode[dto.MonthlySpendingResponse](t, w)
	if !resp.Total.Equal(decimal.NewFromFloat(35.25)) {
		t.Errorf("expected monthly total 35.25, got %s", resp.Total)
	}
}

func TestAssetAllocation(t *testing.T) {
	env := newTestEnv(t, offlineModel())
	ctx := context.Background()

	t.Run("empty portfolio", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/analytics/asset-allocation", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		resp := decode[dto.AssetAllocationResponse](t, w)
		if len(resp.Allocation) != 0 {
			t.Errorf("expected no slices, got %d", len(resp.Allocation))
		}
		if !resp.Total.IsZero() {
			t.Errorf("expected zero total, got %s", resp.Total)
		}
	})

	t.Run("groups balances by category", func(t *testing.T) {
		env.DB.CreateTestAccount(ctx, "Checking A", domain.CategoryBankAccounts, decimal.NewFromInt(1000))
		env.DB.CreateTestAccount(ctx, "Checking B", domain.CategoryBankAccounts, decimal.NewFromInt(500))
		env.DB.CreateTestAccount(ctx, "Brokerage", domain.CategoryEquities, decimal.NewFromInt(8500))

		// The empty-portfolio request above cached its result; a
		// fixture write bypasses invalidation, so clear by hand.
		if err := env.Redis.FlushDB(ctx).Err(); err != nil {
			t.Fatalf("failed to flush redis: %v", err)
		}

		w := env.do(t, http.MethodGet, "/api/analytics/asset-allocation", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		resp := decode[dto.AssetAllocationResponse](t, w)
		if len(resp.Allocation) != 2 {
			t.Fatalf("expected 2 slices, got %d", len(resp.Allocation))
		}
		if resp.Allocation[0].Name != domain.CategoryEquities {
			t.Errorf("expected largest slice first, got %q", resp.Allocation[0].Name)
		}
		if !resp.Allocation[0].Value.Equal(decimal.NewFromInt(8500)) {
			t.Errorf("expected equities slice 8500, got %s", resp.Allocation[0].Value)
		}
		if !resp.Allocation[1].Value.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected bank slice 1500, got %s", resp.Allocation[1].Value)
		}
		if !resp.Total.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("expected total 10000, got %s", resp.Total)
		}
	})
}
