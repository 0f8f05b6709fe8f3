package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding represents a position held inside an account, such as a
// stock ticker or a crypto asset.
type Holding struct {
	ID        string
	AccountID string
	Ticker    string
	Quantity  decimal.Decimal
	Value     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
