package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/saffronbudget/saffron/internal/common"
	"github.com/saffronbudget/saffron/internal/model"
)

// GetBudgets retrieves all budget definitions, one per category.
func (s *SQLiteStorage) GetBudgets(ctx context.Context) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, amount, rollover_enabled, rolled_over_amount, created_at, updated_at
		FROM budgets
		ORDER BY category ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(
			&b.ID,
			&b.Category,
			&b.Amount,
			&b.RolloverEnabled,
			&b.RolledOverAmount,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}

	return budgets, nil
}

// GetBudgetByCategory retrieves the budget for a category. Returns
// common.ErrNotFound when the category has no budget; callers treat that
// as an expected state.
func (s *SQLiteStorage) GetBudgetByCategory(ctx context.Context, category string) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(category, "category"); err != nil {
		return nil, err
	}

	var b model.Budget
	err := s.db.QueryRowContext(ctx, `
		SELECT id, category, amount, rollover_enabled, rolled_over_amount, created_at, updated_at
		FROM budgets
		WHERE category = ?
	`, category).Scan(
		&b.ID,
		&b.Category,
		&b.Amount,
		&b.RolloverEnabled,
		&b.RolledOverAmount,
		&b.CreatedAt,
		&b.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: budget for category %q", common.ErrNotFound, category)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	return &b, nil
}

// UpsertBudget creates or replaces the budget for a category. The category
// is the natural key: a second upsert for the same category updates the
// existing row, preserving the one-budget-per-category invariant.
func (s *SQLiteStorage) UpsertBudget(ctx context.Context, budget *model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}

	now := time.Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (category, amount, rollover_enabled, rolled_over_amount, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(category) DO UPDATE SET
			amount = excluded.amount,
			rollover_enabled = excluded.rollover_enabled,
			rolled_over_amount = excluded.rolled_over_amount,
			updated_at = excluded.updated_at
	`,
		budget.Category,
		budget.Amount,
		budget.RolloverEnabled,
		budget.RolledOverAmount,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}

	return nil
}

// SetBudgetRollover toggles rollover for a category's budget. The stored
// carried-over amount is kept so rollover can be re-enabled without loss.
func (s *SQLiteStorage) SetBudgetRollover(ctx context.Context, category string, enabled bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE budgets SET rollover_enabled = ?, updated_at = ? WHERE category = ?
	`, enabled, time.Now(), category)
	if err != nil {
		return fmt.Errorf("failed to set budget rollover: %w", err)
	}

	return requireRow(res, category)
}

// ClearBudgetRollover permanently zeroes the carried-over amount for a
// category's budget.
func (s *SQLiteStorage) ClearBudgetRollover(ctx context.Context, category string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE budgets SET rolled_over_amount = 0, updated_at = ? WHERE category = ?
	`, time.Now(), category)
	if err != nil {
		return fmt.Errorf("failed to clear budget rollover: %w", err)
	}

	return requireRow(res, category)
}

// DeleteBudget removes the budget for a category.
func (s *SQLiteStorage) DeleteBudget(ctx context.Context, category string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE category = ?`, category)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	return requireRow(res, category)
}

func requireRow(res sql.Result, category string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: budget for category %q", common.ErrNotFound, category)
	}
	return nil
}
