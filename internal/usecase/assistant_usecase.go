package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// ReplyNoAccounts is returned when a message contained a recordable
// transaction but there is no account to attach it to.
const ReplyNoAccounts = "I understand you want to record a transaction, but you don't have any accounts set up yet. Please create an account first."

// AssistantUseCase orchestrates the AI assistant: chat, document
// uploads, and spending insights.
type AssistantUseCase struct {
	extractor       TransactionExtractor
	responder       ChatResponder
	analyst         SpendingAnalyst
	processor       DocumentProcessor
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	chatRepo        ChatMessageRepository
	idGen           IDGenerator
	cache           Cache
}

// NewAssistantUseCase creates a new AssistantUseCase.
func NewAssistantUseCase(
	extractor TransactionExtractor,
	responder ChatResponder,
	analyst SpendingAnalyst,
	processor DocumentProcessor,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	chatRepo ChatMessageRepository,
	idGen IDGenerator,
	cache Cache,
) *AssistantUseCase {
	return &AssistantUseCase{
		extractor:       extractor,
		responder:       responder,
		analyst:         analyst,
		processor:       processor,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		chatRepo:        chatRepo,
		idGen:           idGen,
		cache:           cache,
	}
}

// Chat handles one assistant message and returns the reply. When the
// message describes a transaction, the transaction is recorded against
// the user's first account and the reply confirms it; otherwise the
// message is answered as a general finance question. Both sides of the
// exchange are appended to the conversation log.
func (uc *AssistantUseCase) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.ErrEmptyMessage
	}

	reply, err := uc.replyTo(ctx, message)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	err = uc.chatRepo.Append(ctx,
		&domain.ChatMessage{ID: uc.idGen.Generate(), Role: domain.RoleUser, Content: message, Timestamp: now},
		&domain.ChatMessage{ID: uc.idGen.Generate(), Role: domain.RoleAI, Content: reply, Timestamp: now},
	)
	if err != nil {
		return "", err
	}

	return reply, nil
}

func (uc *AssistantUseCase) replyTo(ctx context.Context, message string) (string, error) {
	candidate, ok := uc.extractor.Extract(ctx, message)
	if !ok {
		return uc.responder.Reply(ctx, message), nil
	}

	account, err := uc.accountRepo.First(ctx)
	if errors.Is(err, domain.ErrNoAccounts) {
		return ReplyNoAccounts, nil
	}
	if err != nil {
		return "", err
	}

	if err := uc.recordCandidates(ctx, account.ID, []domain.TransactionCandidate{*candidate}); err != nil {
		return "", err
	}

	return fmt.Sprintf("I've recorded your transaction: %s for %s. It's been categorized as %s.",
		candidate.Description, candidate.Amount, candidate.Category), nil
}

// History returns the conversation log oldest-first.
func (uc *AssistantUseCase) History(ctx context.Context, limit int) ([]*domain.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultChatHistoryLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	return uc.chatRepo.List(ctx, limit)
}

// ProcessDocument runs an uploaded file through the importer and
// records extracted transactions against the user's first account.
// Without an account the candidates are still reported, just not
// persisted.
func (uc *AssistantUseCase) ProcessDocument(ctx context.Context, data []byte, filename, contentType string) (domain.ImportResult, error) {
	result := uc.processor.Process(data, filename, contentType)

	if !result.Success || len(result.Candidates) == 0 {
		return result, nil
	}

	account, err := uc.accountRepo.First(ctx)
	if errors.Is(err, domain.ErrNoAccounts) {
		return result, nil
	}
	if err != nil {
		return domain.ImportResult{}, err
	}

	if err := uc.recordCandidates(ctx, account.ID, result.Candidates); err != nil {
		return domain.ImportResult{}, err
	}

	return result, nil
}

// SpendingInsights summarizes recent transactions and asks the model
// for observations. Model failures degrade to a fixed notice inside
// the analyst.
func (uc *AssistantUseCase) SpendingInsights(ctx context.Context) (string, error) {
	transactions, err := uc.transactionRepo.List(ctx, domain.TransactionFilter{Limit: InsightsTransactionLimit})
	if err != nil {
		return "", err
	}

	return uc.analyst.Analyze(ctx, summarizeSpending(transactions)), nil
}

func (uc *AssistantUseCase) recordCandidates(ctx context.Context, accountID string, candidates []domain.TransactionCandidate) error {
	now := time.Now().UTC()

	transactions := make([]*domain.Transaction, 0, len(candidates))
	for _, candidate := range candidates {
		transactions = append(transactions, &domain.Transaction{
			ID:          uc.idGen.Generate(),
			AccountID:   accountID,
			Date:        candidate.Date,
			Description: candidate.Description,
			Amount:      candidate.Amount,
			Category:    candidate.Category,
			CreatedAt:   now,
		})
	}

	if err := uc.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return err
	}

	invalidateAnalytics(ctx, uc.cache)

	return nil
}

// summarizeSpending folds transactions into the aggregate consumed by
// the insights prompt. Uncategorized expenses are grouped under
// "Other", matching the analysis categories the prompt suggests.
func summarizeSpending(transactions []*domain.Transaction) domain.SpendingSummary {
	summary := domain.SpendingSummary{
		TotalSpent:  decimal.Zero,
		TotalIncome: decimal.Zero,
		Count:       len(transactions),
	}

	totals := make(map[string]*domain.CategorySpending)
	var order []string

	for _, tx := range transactions {
		if tx.IsExpense() {
			amount := tx.Amount.Abs()
			summary.TotalSpent = summary.TotalSpent.Add(amount)

			category := tx.Category
			if category == "" {
				category = "Other"
			}

			entry, seen := totals[category]
			if !seen {
				entry = &domain.CategorySpending{Category: category}
				totals[category] = entry
				order = append(order, category)
			}
			entry.Total = entry.Total.Add(amount)
			entry.Count++

			continue
		}

		if tx.Amount.IsPositive() {
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
		}
	}

	for _, category := range order {
		summary.Categories = append(summary.Categories, *totals[category])
	}

	return summary
}
