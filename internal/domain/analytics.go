package domain

import "github.com/shopspring/decimal"

// CategorySpending aggregates expenses for a single category. Totals
// are absolute values of negative transaction amounts.
type CategorySpending struct {
	Category string
	Total    decimal.Decimal
	Count    int64
}

// AllocationSlice is one account category's share of total assets.
type AllocationSlice struct {
	Name  string
	Value decimal.Decimal
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	AccountID string
	Limit     int
	Offset    int
}

// SpendingSummary is the aggregate view handed to the spending
// analysis prompt.
type SpendingSummary struct {
	TotalSpent  decimal.Decimal
	TotalIncome decimal.Decimal
	Count       int
	Categories  []CategorySpending
}
