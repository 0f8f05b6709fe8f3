package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors
var (
	ErrInvalidAccountName     = errors.New("invalid account name")
	ErrInvalidInstitution     = errors.New("invalid institution")
	ErrInvalidAccountCategory = errors.New("invalid account category")
	ErrInvalidTicker          = errors.New("invalid ticker")
	ErrInvalidDescription     = errors.New("invalid description")
	ErrInvalidDate            = errors.New("invalid date")
	ErrInvalidRole            = errors.New("invalid chat role")
)

// Validation constants
const (
	MaxAccountNameLength = 255
	MinAccountNameLength = 1
	MaxInstitutionLength = 255
	MaxTickerLength      = 20
	MaxDescriptionLength = 512

	// DateLayout is the wire format for transaction dates.
	DateLayout = "2006-01-02"
)

// Valid account categories
var validCategories = map[string]bool{
	CategoryBankAccounts: true,
	CategoryEquities:     true,
	CategoryCrypto:       true,
	CategoryRealEstate:   true,
}

// Valid chat roles
var validRoles = map[string]bool{
	RoleUser: true,
	RoleAI:   true,
}

// ValidateAccountName validates account name
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinAccountNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAccountName)
	}

	if len(name) > MaxAccountNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAccountName, MaxAccountNameLength)
	}

	// Check for SQL injection attempts
	dangerous := []string{"--", "/*", "*/", ";", "DROP", "DELETE", "INSERT", "UPDATE"}
	nameUpper := strings.ToUpper(name)
	for _, pattern := range dangerous {
		if strings.Contains(nameUpper, pattern) {
			return fmt.Errorf("%w: contains forbidden characters", ErrInvalidAccountName)
		}
	}

	return nil
}

// ValidateInstitution validates the institution name
func ValidateInstitution(institution string) error {
	institution = strings.TrimSpace(institution)

	if institution == "" {
		return fmt.Errorf("%w: institution cannot be empty", ErrInvalidInstitution)
	}

	if len(institution) > MaxInstitutionLength {
		return fmt.Errorf("%w: institution exceeds %d characters", ErrInvalidInstitution, MaxInstitutionLength)
	}

	return nil
}

// ValidateAccountCategory validates account category against the fixed set
func ValidateAccountCategory(category string) error {
	if !validCategories[category] {
		return fmt.Errorf("%w: %q is not a known category", ErrInvalidAccountCategory, category)
	}

	return nil
}

// ValidateTicker validates a holding ticker symbol
func ValidateTicker(ticker string) error {
	ticker = strings.TrimSpace(ticker)

	if ticker == "" {
		return fmt.Errorf("%w: ticker cannot be empty", ErrInvalidTicker)
	}

	if len(ticker) > MaxTickerLength {
		return fmt.Errorf("%w: ticker exceeds %d characters", ErrInvalidTicker, MaxTickerLength)
	}

	return nil
}

// ValidateDescription validates a transaction description
func ValidateDescription(description string) error {
	description = strings.TrimSpace(description)

	if description == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrInvalidDescription)
	}

	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidDescription, MaxDescriptionLength)
	}

	return nil
}

// ValidateTransactionDate validates an ISO calendar date string
func ValidateTransactionDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q is not a %s date", ErrInvalidDate, date, DateLayout)
	}

	return nil
}

// ValidateRole validates a chat message role
func ValidateRole(role string) error {
	if !validRoles[role] {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	return nil
}
