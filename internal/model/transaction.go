package model

import (
	"fmt"
	"time"
)

// TransactionType indicates the direction of a transaction.
type TransactionType string

const (
	// TypeDebit reduces available funds.
	TypeDebit TransactionType = "debit"
	// TypeCredit increases available funds.
	TypeCredit TransactionType = "credit"
)

// Valid reports whether the type is one of the known directions.
func (t TransactionType) Valid() bool {
	return t == TypeDebit || t == TypeCredit
}

// Transaction represents a single financial transaction from any source.
// Amount is nil when the ingestion layer could not extract one; direction
// is carried exclusively by Type, so Amount is never negative.
type Transaction struct {
	Date              time.Time
	CreatedAt         time.Time
	ID                string
	Merchant          string // Cleaned merchant name, may be empty
	Category          string // Assigned by external categorization, may be empty
	AccountLastDigits string // Trailing digits of the card, or the UPI sentinel
	Amount            *float64
	Type              TransactionType
}

// AmountValue returns the amount, treating an absent amount as 0.
func (t *Transaction) AmountValue() float64 {
	if t.Amount == nil {
		return 0
	}
	return *t.Amount
}

// Validate ensures the transaction satisfies the model invariants.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction id is required")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	if !t.Type.Valid() {
		return fmt.Errorf("invalid transaction type: %q", t.Type)
	}
	if t.Amount != nil && *t.Amount < 0 {
		return fmt.Errorf("amount must be non-negative, got %.2f", *t.Amount)
	}
	return nil
}
