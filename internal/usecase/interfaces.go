package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	// First returns the oldest account by creation time.
	First(ctx context.Context) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, tx Transaction, id string) error
	AllocationByCategory(ctx context.Context) ([]domain.AllocationSlice, error)
}

// HoldingRepository defines data access for holdings.
type HoldingRepository interface {
	Create(ctx context.Context, holding *domain.Holding) error
	GetByID(ctx context.Context, id string) (*domain.Holding, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Holding, error)
	Update(ctx context.Context, holding *domain.Holding) error
	Delete(ctx context.Context, id string) error
	DeleteByAccount(ctx context.Context, tx Transaction, accountID string) error
}

// TransactionRepository defines data access for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *domain.Transaction) error
	CreateBatch(ctx context.Context, transactions []*domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error)
	Update(ctx context.Context, transaction *domain.Transaction) error
	Delete(ctx context.Context, id string) error
	SpendingByCategory(ctx context.Context) ([]domain.CategorySpending, error)
	MonthlySpending(ctx context.Context, since string) (decimal.Decimal, error)
}

// ChatMessageRepository defines data access for the conversation log.
type ChatMessageRepository interface {
	Append(ctx context.Context, messages ...*domain.ChatMessage) error
	List(ctx context.Context, limit int) ([]*domain.ChatMessage, error)
}

// TransactionExtractor turns free-form text into a transaction
// candidate. The boolean reports whether a valid candidate was found;
// extraction never returns an error.
type TransactionExtractor interface {
	Extract(ctx context.Context, message string) (*domain.TransactionCandidate, bool)
}

// ChatResponder produces a conversational reply. Implementations never
// fail; they fall back to a fixed apology.
type ChatResponder interface {
	Reply(ctx context.Context, message string) string
}

// SpendingAnalyst narrates a spending summary. Implementations never
// fail; they fall back to a fixed notice.
type SpendingAnalyst interface {
	Analyze(ctx context.Context, summary domain.SpendingSummary) string
}

// DocumentProcessor turns an uploaded document into transaction
// candidates.
type DocumentProcessor interface {
	Process(data []byte, filename, contentType string) domain.ImportResult
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation after transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
