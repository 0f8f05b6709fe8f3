package assistant

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// TextGenerator produces a completion for a prompt. Implemented by the
// Gemini adapter.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// jsonSpan matches the first '{' through the last '}' of a reply,
// tolerating code fences and prose around the JSON object.
var jsonSpan = regexp.MustCompile(`(?s)\{.*\}`)

// Extractor turns free-form text into transaction candidates with a
// single model call per message.
type Extractor struct {
	gen TextGenerator
	now func() time.Time
}

// NewExtractor creates a new Extractor.
func NewExtractor(gen TextGenerator) *Extractor {
	return &Extractor{gen: gen, now: time.Now}
}

// candidatePayload mirrors the JSON shape the extraction prompt asks
// for. Amount is a pointer so a null or missing amount is detectable.
type candidatePayload struct {
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
}

// Extract asks the model for transaction details found in message.
// The boolean is false when the message holds no recordable
// transaction or when anything about the model exchange went wrong;
// extraction is a single attempt and never surfaces an error.
func (e *Extractor) Extract(ctx context.Context, message string) (*domain.TransactionCandidate, bool) {
	today := e.now().UTC().Format(domain.DateLayout)

	reply, err := e.gen.Generate(ctx, ExtractionPrompt(message, today))
	if err != nil {
		log.Warn().Err(err).Msg("transaction extraction failed")
		return nil, false
	}

	span := jsonSpan.FindString(reply)
	if span == "" {
		return nil, false
	}

	var payload candidatePayload
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		log.Debug().Err(err).Msg("extraction reply is not valid JSON")
		return nil, false
	}

	if payload.Amount == nil || strings.TrimSpace(payload.Description) == "" {
		return nil, false
	}

	candidate := &domain.TransactionCandidate{
		Amount:      decimal.NewFromFloat(*payload.Amount),
		Description: payload.Description,
		Category:    payload.Category,
		Date:        payload.Date,
	}

	if candidate.Category == "" {
		candidate.Category = domain.DefaultCategory
	}
	// An unparseable date is treated the same as a missing one.
	if domain.ValidateTransactionDate(candidate.Date) != nil {
		candidate.Date = today
	}

	return candidate, true
}
