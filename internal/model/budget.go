package model

import (
	"fmt"
	"time"
)

// Budget represents a monthly spending allocation for a single category.
// At most one budget exists per category; the category name is the natural
// key at the aggregation layer even though storage uses a surrogate id.
type Budget struct {
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Category         string
	Amount           float64
	RolledOverAmount float64
	ID               int64
	RolloverEnabled  bool
}

// TotalBudget returns the effective allocation for the current period:
// the base amount plus the carried-over surplus when rollover is enabled.
// Disabling rollover excludes the carry without discarding the stored value.
func (b *Budget) TotalBudget() float64 {
	if b.RolloverEnabled {
		return b.Amount + b.RolledOverAmount
	}
	return b.Amount
}

// Validate ensures the budget has valid data.
func (b *Budget) Validate() error {
	if b.Category == "" {
		return fmt.Errorf("budget category is required")
	}
	if b.Amount <= 0 {
		return fmt.Errorf("budget amount must be positive, got %.2f", b.Amount)
	}
	if b.RolledOverAmount < 0 {
		return fmt.Errorf("rolled over amount must be non-negative, got %.2f", b.RolledOverAmount)
	}
	return nil
}
