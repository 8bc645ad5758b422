// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/saffronbudget/saffron/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Limit     int
	Offset    int
}

// TransactionStore supplies read-only transaction snapshots to the
// aggregation layer and accepts records from ingestion.
type TransactionStore interface {
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	GetTransactionsByMonth(ctx context.Context, year int, month time.Month) ([]model.Transaction, error)
	GetTransactionCount(ctx context.Context) (int, error)
}

// BudgetStore manages per-category budget definitions. At most one budget
// exists per category.
type BudgetStore interface {
	GetBudgets(ctx context.Context) ([]model.Budget, error)
	GetBudgetByCategory(ctx context.Context, category string) (*model.Budget, error)
	UpsertBudget(ctx context.Context, budget *model.Budget) error
	SetBudgetRollover(ctx context.Context, category string, enabled bool) error
	ClearBudgetRollover(ctx context.Context, category string) error
	DeleteBudget(ctx context.Context, category string) error
}

// CategoryStore manages category display metadata. Names from this store
// are the grouping keys used against transaction categories.
type CategoryStore interface {
	GetCategories(ctx context.Context) ([]model.Category, error)
	UpsertCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, name string) error
}

// Storage is the full persistence contract implemented by the SQLite layer.
type Storage interface {
	TransactionStore
	BudgetStore
	CategoryStore

	Migrate(ctx context.Context) error
	Close() error
}
