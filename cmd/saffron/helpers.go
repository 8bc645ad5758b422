package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/saffronbudget/saffron/internal/common"
	"github.com/saffronbudget/saffron/internal/config"
	"github.com/saffronbudget/saffron/internal/model"
	"github.com/saffronbudget/saffron/internal/service"
	"github.com/saffronbudget/saffron/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/saffron/saffron.db"
	}

	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("failed to open database at %s", dbPath), err)
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, common.NewUserError("failed to run database migrations", err)
	}

	return store, nil
}

// loadSnapshots fetches the transaction and budget snapshots the
// aggregation functions operate on.
func loadSnapshots(ctx context.Context, store service.Storage) ([]model.Transaction, []model.Budget, error) {
	txns, err := store.GetTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	budgets, err := store.GetBudgets(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	return txns, budgets, nil
}

// resolveMonth turns --year/--month flag values into a concrete period,
// defaulting to the current month.
func resolveMonth(year, month int) (int, time.Month, error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %d: must be 1-12", month)
	}
	return year, time.Month(month), nil
}

// formatAmount renders a monetary value for table output.
func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
