package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name        string          `json:"name"`
	Institution string          `json:"institution"`
	Category    string          `json:"category"`
	Balance     decimal.Decimal `json:"balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:        r.Name,
		Institution: r.Institution,
		Category:    r.Category,
		Balance:     r.Balance,
	}
}

// UpdateAccountRequest represents a partial account update. Absent
// fields are left unchanged.
type UpdateAccountRequest struct {
	Name        *string          `json:"name,omitempty"`
	Institution *string          `json:"institution,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
}

// ToUseCaseInput converts to use case input for the given account.
func (r *UpdateAccountRequest) ToUseCaseInput(id string) usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		ID:          id,
		Name:        r.Name,
		Institution: r.Institution,
		Category:    r.Category,
		Balance:     r.Balance,
	}
}

// CreateHoldingRequest represents a request to create a holding. The
// account comes from the URL, not the body.
type CreateHoldingRequest struct {
	Ticker   string          `json:"ticker"`
	Quantity decimal.Decimal `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// ToUseCaseInput converts to use case input for the given account.
func (r *CreateHoldingRequest) ToUseCaseInput(accountID string) usecase.CreateHoldingInput {
	return usecase.CreateHoldingInput{
		AccountID: accountID,
		Ticker:    r.Ticker,
		Quantity:  r.Quantity,
		Value:     r.Value,
	}
}

// UpdateHoldingRequest represents a partial holding update.
type UpdateHoldingRequest struct {
	Ticker   *string          `json:"ticker,omitempty"`
	Quantity *decimal.Decimal `json:"quantity,omitempty"`
	Value    *decimal.Decimal `json:"value,omitempty"`
}

// ToUseCaseInput converts to use case input for the given holding.
func (r *UpdateHoldingRequest) ToUseCaseInput(id string) usecase.UpdateHoldingInput {
	return usecase.UpdateHoldingInput{
		ID:       id,
		Ticker:   r.Ticker,
		Quantity: r.Quantity,
		Value:    r.Value,
	}
}

// CreateTransactionRequest represents a request to record a
// transaction. Date and category are optional; the use case fills in
// today and "Uncategorized".
type CreateTransactionRequest struct {
	AccountID   string          `json:"account_id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput() usecase.CreateTransactionInput {
	return usecase.CreateTransactionInput{
		AccountID:   r.AccountID,
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
	}
}

// UpdateTransactionRequest represents a partial transaction update.
type UpdateTransactionRequest struct {
	Date        *string          `json:"date,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty"`
}

// ToUseCaseInput converts to use case input for the given transaction.
func (r *UpdateTransactionRequest) ToUseCaseInput(id string) usecase.UpdateTransactionInput {
	return usecase.UpdateTransactionInput{
		ID:          id,
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
	}
}

// ChatRequest represents one assistant chat message.
type ChatRequest struct {
	Message string `json:"message"`
}
