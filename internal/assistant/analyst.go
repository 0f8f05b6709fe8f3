package assistant

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/iho/fintrack/internal/domain"
)

// ReplyAnalysisUnavailable is returned when the spending analysis
// cannot be produced.
const ReplyAnalysisUnavailable = "I couldn't analyze your spending patterns right now. Please try again later."

// Analyst narrates spending summaries.
type Analyst struct {
	gen TextGenerator
}

// NewAnalyst creates a new Analyst.
func NewAnalyst(gen TextGenerator) *Analyst {
	return &Analyst{gen: gen}
}

// Analyze asks the model to comment on a spending summary, degrading
// to a fixed notice on any failure.
func (a *Analyst) Analyze(ctx context.Context, summary domain.SpendingSummary) string {
	reply, err := a.gen.Generate(ctx, InsightsPrompt(summary))
	if err != nil {
		log.Warn().Err(err).Msg("spending analysis failed")
		return ReplyAnalysisUnavailable
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return ReplyAnalysisUnavailable
	}

	return reply
}
