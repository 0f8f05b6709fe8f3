package domain

// ImportResult is the outcome of processing an uploaded document.
// Data-level failures (unsupported type, unreadable file) are reported
// through Success and Message rather than an error.
type ImportResult struct {
	Success    bool
	Message    string
	Candidates []TransactionCandidate
}
