package usecase

const (
	// DefaultListLimit caps listings when the caller does not ask for
	// a specific page size.
	DefaultListLimit = 100

	// MaxListLimit is the hard ceiling for a single listing.
	MaxListLimit = 1000

	// DefaultChatHistoryLimit is how many messages a history request
	// returns by default.
	DefaultChatHistoryLimit = 50

	// InsightsTransactionLimit caps how many recent transactions feed
	// the spending analysis.
	InsightsTransactionLimit = 100
)
