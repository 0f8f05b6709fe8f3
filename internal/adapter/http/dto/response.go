package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Institution string          `json:"institution"`
	Category    string          `json:"category"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Institution: a.Institution,
		Category:    a.Category,
		Balance:     a.Balance,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses. The result
// is never nil so empty lists encode as [].
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// HoldingResponse represents a holding in API responses.
type HoldingResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Ticker    string          `json:"ticker"`
	Quantity  decimal.Decimal `json:"quantity"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// HoldingFromDomain converts domain holding to response.
func HoldingFromDomain(h *domain.Holding) *HoldingResponse {
	return &HoldingResponse{
		ID:        h.ID,
		AccountID: h.AccountID,
		Ticker:    h.Ticker,
		Quantity:  h.Quantity,
		Value:     h.Value,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// HoldingsFromDomain converts domain holdings to responses.
func HoldingsFromDomain(holdings []*domain.Holding) []*HoldingResponse {
	result := make([]*HoldingResponse, len(holdings))
	for i, h := range holdings {
		result[i] = HoldingFromDomain(h)
	}
	return result
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransactionFromDomain converts domain transaction to response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		AccountID:   t.AccountID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Category:    t.Category,
		CreatedAt:   t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ChatMessageResponse represents one conversation log entry.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatMessagesFromDomain converts domain chat messages to responses.
func ChatMessagesFromDomain(messages []*domain.ChatMessage) []*ChatMessageResponse {
	result := make([]*ChatMessageResponse, len(messages))
	for i, m := range messages {
		result[i] = &ChatMessageResponse{
			ID:        m.ID,
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		}
	}
	return result
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// InsightsResponse carries the spending analysis text.
type InsightsResponse struct {
	Insights string `json:"insights"`
}

// CandidateResponse is one transaction extracted from an upload.
type CandidateResponse struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

// UploadResponse is the outcome of a document upload. Data-level
// failures keep HTTP 200 and report through Success/Message.
type UploadResponse struct {
	Success      bool                `json:"success"`
	Message      string              `json:"message"`
	Transactions []CandidateResponse `json:"transactions"`
}

// UploadFromDomain converts an import result to a response.
func UploadFromDomain(result domain.ImportResult) *UploadResponse {
	transactions := make([]CandidateResponse, len(result.Candidates))
	for i, c := range result.Candidates {
		transactions[i] = CandidateResponse{
			Amount:      c.Amount,
			Description: c.Description,
			Category:    c.Category,
			Date:        c.Date,
		}
	}
	return &UploadResponse{
		Success:      result.Success,
		Message:      result.Message,
		Transactions: transactions,
	}
}

// CategorySpendingEntry is one category's expense aggregate.
type CategorySpendingEntry struct {
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// SpendingByCategoryFromDomain keys the aggregates by category name.
func SpendingByCategoryFromDomain(spending []domain.CategorySpending) map[string]CategorySpendingEntry {
	result := make(map[string]CategorySpendingEntry, len(spending))
	for _, s := range spending {
		result[s.Category] = CategorySpendingEntry{Total: s.Total, Count: s.Count}
	}
	return result
}

// MonthlySpendingResponse is the current month's expense total.
type MonthlySpendingResponse struct {
	Total decimal.Decimal `json:"total"`
}

// AllocationSliceResponse is one account category's share of assets.
type AllocationSliceResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// AssetAllocationResponse groups balances by account category.
type AssetAllocationResponse struct {
	Allocation []AllocationSliceResponse `json:"allocation"`
	Total      decimal.Decimal           `json:"total"`
}

// AssetAllocationFromDomain converts allocation slices to a response.
func AssetAllocationFromDomain(allocation []domain.AllocationSlice, total decimal.Decimal) *AssetAllocationResponse {
	slices := make([]AllocationSliceResponse, len(allocation))
	for i, a := range allocation {
		slices[i] = AllocationSliceResponse{Name: a.Name, Value: a.Value}
	}
	return &AssetAllocationResponse{Allocation: slices, Total: total}
}

// RootResponse announces the API.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// MessageResponse confirms an operation with a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
