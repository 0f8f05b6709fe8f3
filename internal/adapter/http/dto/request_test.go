package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/usecase"
)

func TestCreateAccountRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateAccountRequest{
		Name:        "Chase Checking",
		Institution: "Chase",
		Category:    "Bank Accounts",
		Balance:     decimal.RequireFromString("1500.00"),
	}

	got := req.ToUseCaseInput()

	if got.Name != "Chase Checking" || got.Institution != "Chase" || got.Category != "Bank Accounts" {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
	if !got.Balance.Equal(decimal.RequireFromString("1500.00")) {
		t.Fatalf("expected balance to carry over, got %s", got.Balance)
	}
}

func TestUpdateAccountRequest_PartialFields(t *testing.T) {
	var req UpdateAccountRequest
	if err := json.Unmarshal([]byte(`{"balance": "2000"}`), &req); err != nil {
		t.Fatalf("failed to decode request: %v", err)
	}

	got := req.ToUseCaseInput("acc-1")

	if got.ID != "acc-1" {
		t.Fatalf("expected id acc-1, got %s", got.ID)
	}
	if got.Name != nil || got.Institution != nil || got.Category != nil {
		t.Fatalf("expected absent fields to stay nil, got %+v", got)
	}
	if got.Balance == nil || !got.Balance.Equal(decimal.RequireFromString("2000")) {
		t.Fatalf("expected balance pointer to be set, got %v", got.Balance)
	}
}

func TestCreateHoldingRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateHoldingRequest{
		Ticker:   "AAPL",
		Quantity: decimal.RequireFromString("10"),
		Value:    decimal.RequireFromString("1750.50"),
	}

	got := req.ToUseCaseInput("acc-1")

	want := usecase.CreateHoldingInput{
		AccountID: "acc-1",
		Ticker:    "AAPL",
		Quantity:  decimal.RequireFromString("10"),
		Value:     decimal.RequireFromString("1750.50"),
	}
	if got.AccountID != want.AccountID || got.Ticker != want.Ticker ||
		!got.Quantity.Equal(want.Quantity) || !got.Value.Equal(want.Value) {
		t.Fatalf("ToUseCaseInput() = %+v, want %+v", got, want)
	}
}

func TestUpdateTransactionRequest_ToUseCaseInput(t *testing.T) {
	var req UpdateTransactionRequest
	if err := json.Unmarshal([]byte(`{"category": "Food & Dining", "amount": -12.5}`), &req); err != nil {
		t.Fatalf("failed to decode request: %v", err)
	}

	got := req.ToUseCaseInput("tx-1")

	if got.ID != "tx-1" {
		t.Fatalf("expected id tx-1, got %s", got.ID)
	}
	if got.Category == nil || *got.Category != "Food & Dining" {
		t.Fatalf("expected category pointer, got %v", got.Category)
	}
	if got.Amount == nil || !got.Amount.Equal(decimal.RequireFromString("-12.5")) {
		t.Fatalf("expected amount pointer, got %v", got.Amount)
	}
	if got.Date != nil || got.Description != nil {
		t.Fatalf("expected absent fields to stay nil, got %+v", got)
	}
}
