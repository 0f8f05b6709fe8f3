package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iho/fintrack/internal/domain"
)

// chatSystemPrompt frames every conversational reply.
const chatSystemPrompt = `You are FinTrack AI, a personal finance assistant. You help users:
1. Track expenses and income with natural language
2. Analyze spending patterns and budgets
3. Manage investment portfolios and accounts
4. Provide financial insights and recommendations

When users mention spending money or making purchases, extract:
- Amount (with currency)
- Description/merchant
- Category (Food & Dining, Transportation, Utilities, Entertainment, etc.)
- Date (if mentioned, otherwise assume today)

For financial questions, provide helpful, practical advice.
Keep responses conversational but informative.`

// ChatPrompt wraps a user message in the assistant persona.
func ChatPrompt(message string) string {
	return fmt.Sprintf("%s\n\nUser: %s\n\nAssistant:", chatSystemPrompt, message)
}

// extractionPromptFormat asks for exactly one JSON object. Slots are
// the message and today's date for the two worked examples.
const extractionPromptFormat = `Extract transaction information from this text: %q

Return a JSON object with these fields (use null if not found):
{
    "amount": number (negative for expenses, positive for income),
    "description": "string",
    "category": "string (Food & Dining, Transportation, Utilities, Entertainment, Groceries, Shopping, Income, etc.)",
    "date": "YYYY-MM-DD" (today if not specified)
}

Examples:
"I spent $25 on lunch" -> {"amount": -25, "description": "lunch", "category": "Food & Dining", "date": "%s"}
"Got paid $2000" -> {"amount": 2000, "description": "salary", "category": "Income", "date": "%s"}

Only return valid JSON, no other text.`

// ExtractionPrompt builds the transaction extraction prompt for one
// message, anchoring relative dates to today.
func ExtractionPrompt(message, today string) string {
	return fmt.Sprintf(extractionPromptFormat, message, today, today)
}

// InsightsPrompt asks the model to analyze a pre-computed spending
// summary.
func InsightsPrompt(summary domain.SpendingSummary) string {
	categories := make(map[string]float64, len(summary.Categories))
	for _, c := range summary.Categories {
		categories[c.Category] = c.Total.InexactFloat64()
	}

	breakdown, err := json.MarshalIndent(categories, "", "  ")
	if err != nil {
		breakdown = []byte("{}")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this spending data and provide insights:\n\n")
	fmt.Fprintf(&b, "Total Spending: $%s\n", summary.TotalSpent.StringFixed(2))
	fmt.Fprintf(&b, "Total Income: $%s\n\n", summary.TotalIncome.StringFixed(2))
	fmt.Fprintf(&b, "Spending by Category:\n%s\n\n", breakdown)
	b.WriteString(`Provide:
1. Key insights about spending habits
2. Areas for potential savings
3. Budget recommendations
4. Any concerning patterns

Keep the response concise and actionable.`)

	return b.String()
}
