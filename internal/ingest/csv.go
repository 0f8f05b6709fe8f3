package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// Importer extracts transaction candidates from CSV statement exports.
// Column roles are inferred from header names, so exports from
// different banks map onto the same candidate shape without per-bank
// configuration.
type Importer struct {
	now func() time.Time
}

// NewImporter creates a CSV importer.
func NewImporter() *Importer {
	return &Importer{now: time.Now}
}

// Import parses raw CSV bytes and collects every row that resolves
// both an amount and a description. Rows that resolve neither are
// skipped rather than emitted as zeroed candidates.
func (imp *Importer) Import(data []byte, filename string) domain.ImportResult {
	headers, err := csv.NewReader(bytes.NewReader(data)).Read()
	if errors.Is(err, io.EOF) {
		return importSuccess(nil, filename)
	}
	if err != nil {
		return importFailure(err)
	}

	rows, err := gocsv.CSVToMaps(bytes.NewReader(data))
	if err != nil {
		return importFailure(err)
	}

	today := imp.now().UTC().Format(domain.DateLayout)

	var candidates []domain.TransactionCandidate
	for _, row := range rows {
		if candidate, ok := rowToCandidate(headers, row, today); ok {
			candidates = append(candidates, candidate)
		}
	}
	return importSuccess(candidates, filename)
}

// rowToCandidate maps one row onto a candidate by header name. Headers
// are inspected in column order; when several columns match the same
// role the rightmost wins, except that an amount which fails to parse
// leaves a previously resolved amount in place.
func rowToCandidate(headers []string, row map[string]string, today string) (domain.TransactionCandidate, bool) {
	var (
		amount      decimal.Decimal
		haveAmount  bool
		description string
		date        string
	)

	for _, header := range headers {
		value := row[header]
		name := strings.ToLower(strings.TrimSpace(header))
		switch {
		case strings.Contains(name, "amount") || strings.Contains(name, "value"):
			if parsed, err := ParseAmount(value); err == nil {
				amount = parsed
				haveAmount = true
			}
		case strings.Contains(name, "description"), strings.Contains(name, "memo"), strings.Contains(name, "merchant"):
			description = strings.TrimSpace(value)
		case strings.Contains(name, "date"):
			date = strings.TrimSpace(value)
		}
	}

	if !haveAmount || description == "" {
		return domain.TransactionCandidate{}, false
	}
	if date == "" {
		date = today
	}

	return domain.TransactionCandidate{
		Amount:      amount,
		Description: description,
		Category:    domain.DefaultCategory,
		Date:        date,
	}, true
}

// ParseAmount normalizes a currency-formatted string such as
// "$1,234.56" and parses it as a decimal.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(raw, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	return decimal.NewFromString(strings.TrimSpace(cleaned))
}

func importSuccess(candidates []domain.TransactionCandidate, filename string) domain.ImportResult {
	return domain.ImportResult{
		Success:    true,
		Message:    fmt.Sprintf("Successfully processed %d transactions from %s", len(candidates), filename),
		Candidates: candidates,
	}
}

func importFailure(err error) domain.ImportResult {
	log.Warn().Err(err).Msg("failed to parse uploaded CSV")
	return domain.ImportResult{
		Success: false,
		Message: fmt.Sprintf("Error parsing CSV: %v", err),
	}
}
