package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/saffronbudget/saffron/internal/model"
	"github.com/saffronbudget/saffron/internal/service"
)

// SaveTransactions saves multiple transactions, ignoring duplicates by id.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (
			id, date, amount, type, merchant, category, account_last_digits
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range transactions {
		txn := &transactions[i]

		var amount sql.NullFloat64
		if txn.Amount != nil {
			amount = sql.NullFloat64{Float64: *txn.Amount, Valid: true}
		}

		if _, err := stmt.ExecContext(ctx,
			txn.ID,
			txn.Date,
			amount,
			string(txn.Type),
			txn.Merchant,
			txn.Category,
			txn.AccountLastDigits,
		); err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}
	}

	return tx.Commit()
}

// GetTransactions retrieves transactions matching the filter, ordered by
// date ascending so downstream grouping sees first-encountered order.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, date, amount, type, merchant, category, account_last_digits, created_at
		FROM transactions
		WHERE 1=1
	`
	var args []any

	if filter.StartDate != nil {
		query += " AND date >= ?"
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		query += " AND date < ?"
		args = append(args, *filter.EndDate)
	}
	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}

	query += " ORDER BY date ASC, id ASC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetTransactionsByMonth retrieves all transactions within a calendar month.
func (s *SQLiteStorage) GetTransactionsByMonth(ctx context.Context, year int, month time.Month) ([]model.Transaction, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return s.GetTransactions(ctx, service.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	})
}

// GetTransactionCount returns the total number of stored transactions.
func (s *SQLiteStorage) GetTransactionCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction

	for rows.Next() {
		var txn model.Transaction
		var amount sql.NullFloat64
		var typ string

		if err := rows.Scan(
			&txn.ID,
			&txn.Date,
			&amount,
			&typ,
			&txn.Merchant,
			&txn.Category,
			&txn.AccountLastDigits,
			&txn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		if amount.Valid {
			v := amount.Float64
			txn.Amount = &v
		}
		txn.Type = model.TransactionType(typ)

		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}
