package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to transactions with no known category.
const DefaultCategory = "Uncategorized"

// Transaction represents a single dated money movement on an account.
// Amount is signed: negative for expenses, positive for income.
type Transaction struct {
	ID          string
	AccountID   string
	Date        string
	Description string
	Amount      decimal.Decimal
	Category    string
	CreatedAt   time.Time
}

// IsExpense reports whether the transaction reduces the balance.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// TransactionCandidate is a transaction pulled out of unstructured
// input (a chat message or an uploaded document) before it has been
// attached to an account.
type TransactionCandidate struct {
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        string
}
