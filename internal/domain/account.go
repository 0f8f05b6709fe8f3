package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account categories. Every account belongs to exactly one.
const (
	CategoryBankAccounts = "Bank Accounts"
	CategoryEquities     = "Equities"
	CategoryCrypto       = "Crypto"
	CategoryRealEstate   = "Real Estate"
)

// Account represents a financial account tracked for a user.
type Account struct {
	ID          string
	Name        string
	Institution string
	Category    string
	Balance     decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
