package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrNoAccounts      = errors.New("no accounts exist")

	// Holding errors
	ErrHoldingNotFound = errors.New("holding not found")

	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")

	// Chat errors
	ErrEmptyMessage = errors.New("message cannot be empty")
)
