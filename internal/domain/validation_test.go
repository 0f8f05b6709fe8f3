package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAccountName(t *testing.T) {
	t.Parallel()

	t.Run("valid name", func(t *testing.T) {
		if err := ValidateAccountName("Chase Checking"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		err := ValidateAccountName("   ")
		if !errors.Is(err, ErrInvalidAccountName) {
			t.Fatalf("expected ErrInvalidAccountName, got %v", err)
		}
	})

	t.Run("name too long", func(t *testing.T) {
		tooLong := strings.Repeat("a", MaxAccountNameLength+1)
		err := ValidateAccountName(tooLong)
		if !errors.Is(err, ErrInvalidAccountName) {
			t.Fatalf("expected ErrInvalidAccountName, got %v", err)
		}
	})

	t.Run("name with dangerous tokens", func(t *testing.T) {
		err := ValidateAccountName("savings; DROP TABLE accounts;")
		if !errors.Is(err, ErrInvalidAccountName) {
			t.Fatalf("expected ErrInvalidAccountName, got %v", err)
		}
	})
}

func TestValidateInstitution(t *testing.T) {
	t.Parallel()

	if err := ValidateInstitution("Vanguard"); err != nil {
		t.Fatalf("expected valid institution, got %v", err)
	}

	if err := ValidateInstitution(""); !errors.Is(err, ErrInvalidInstitution) {
		t.Fatalf("expected ErrInvalidInstitution, got %v", err)
	}

	tooLong := strings.Repeat("b", MaxInstitutionLength+1)
	if err := ValidateInstitution(tooLong); !errors.Is(err, ErrInvalidInstitution) {
		t.Fatalf("expected ErrInvalidInstitution for long name, got %v", err)
	}
}

func TestValidateAccountCategory(t *testing.T) {
	t.Parallel()

	for _, category := range []string{CategoryBankAccounts, CategoryEquities, CategoryCrypto, CategoryRealEstate} {
		if err := ValidateAccountCategory(category); err != nil {
			t.Fatalf("expected %q to be valid, got %v", category, err)
		}
	}

	if err := ValidateAccountCategory("Collectibles"); !errors.Is(err, ErrInvalidAccountCategory) {
		t.Fatalf("expected ErrInvalidAccountCategory, got %v", err)
	}

	// Categories are exact labels, not case-insensitive.
	if err := ValidateAccountCategory("crypto"); !errors.Is(err, ErrInvalidAccountCategory) {
		t.Fatalf("expected ErrInvalidAccountCategory for lowercase, got %v", err)
	}
}

func TestValidateTicker(t *testing.T) {
	t.Parallel()

	if err := ValidateTicker("AAPL"); err != nil {
		t.Fatalf("expected valid ticker, got %v", err)
	}

	if err := ValidateTicker("  "); !errors.Is(err, ErrInvalidTicker) {
		t.Fatalf("expected ErrInvalidTicker, got %v", err)
	}

	if err := ValidateTicker(strings.Repeat("X", MaxTickerLength+1)); !errors.Is(err, ErrInvalidTicker) {
		t.Fatalf("expected ErrInvalidTicker for long symbol, got %v", err)
	}
}

func TestValidateDescription(t *testing.T) {
	t.Parallel()

	if err := ValidateDescription("grocery run"); err != nil {
		t.Fatalf("expected valid description, got %v", err)
	}

	if err := ValidateDescription(""); !errors.Is(err, ErrInvalidDescription) {
		t.Fatalf("expected ErrInvalidDescription, got %v", err)
	}

	if err := ValidateDescription(strings.Repeat("d", MaxDescriptionLength+1)); !errors.Is(err, ErrInvalidDescription) {
		t.Fatalf("expected ErrInvalidDescription for long text, got %v", err)
	}
}

func TestValidateTransactionDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		date        string
		expectError bool
	}{
		{name: "iso date", date: "2025-01-15", expectError: false},
		{name: "leap day", date: "2024-02-29", expectError: false},
		{name: "us format rejected", date: "01/15/2025", expectError: true},
		{name: "datetime rejected", date: "2025-01-15T10:00:00Z", expectError: true},
		{name: "impossible day", date: "2025-02-30", expectError: true},
		{name: "empty", date: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransactionDate(tt.date)
			if tt.expectError && !errors.Is(err, ErrInvalidDate) {
				t.Errorf("expected ErrInvalidDate, got %v", err)
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateRole(t *testing.T) {
	t.Parallel()

	if err := ValidateRole(RoleUser); err != nil {
		t.Fatalf("expected user role to be valid, got %v", err)
	}

	if err := ValidateRole(RoleAI); err != nil {
		t.Fatalf("expected ai role to be valid, got %v", err)
	}

	if err := ValidateRole("assistant"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
