package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saffronbudget/saffron/internal/model"
	"github.com/saffronbudget/saffron/internal/service"
)

func createTestTransactions(count int) []model.Transaction {
	txns := make([]model.Transaction, count)
	for i := 0; i < count; i++ {
		amount := float64(i+1) * 10.50
		txns[i] = model.Transaction{
			ID:                makeTestID("txn", i+1),
			Date:              testDate(i%28 + 1),
			Amount:            &amount,
			Type:              model.TypeDebit,
			Merchant:          "Merchant",
			Category:          "Food",
			AccountLastDigits: "1234",
		}
	}
	return txns
}

func TestSQLiteStorage_SaveTransactions(t *testing.T) {
	tests := []struct {
		name         string
		transactions []model.Transaction
		wantErr      bool
		wantCount    int
	}{
		{
			name:         "saves valid transactions",
			transactions: createTestTransactions(3),
			wantErr:      false,
			wantCount:    3,
		},
		{
			name: "duplicate ids are ignored",
			transactions: append(createTestTransactions(2),
				createTestTransactions(2)...),
			wantErr:   false,
			wantCount: 2,
		},
		{
			name:         "nil slice rejected",
			transactions: nil,
			wantErr:      true,
		},
		{
			name:         "empty slice rejected",
			transactions: []model.Transaction{},
			wantErr:      true,
		},
		{
			name: "invalid type rejected",
			transactions: []model.Transaction{
				{ID: "bad", Date: testDate(1), Type: "transfer"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := createTestStorage(t)
			ctx := context.Background()

			err := store.SaveTransactions(ctx, tt.transactions)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			count, err := store.GetTransactionCount(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestSQLiteStorage_SaveTransactionsNilAmount(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// Unparsed entries carry no amount; they must round-trip as nil.
	txns := []model.Transaction{
		{
			ID:   "ambiguous-1",
			Date: testDate(5),
			Type: model.TypeDebit,
		},
	}
	require.NoError(t, store.SaveTransactions(ctx, txns))

	got, err := store.GetTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Amount)
	assert.Zero(t, got[0].AmountValue())
}

func TestSQLiteStorage_GetTransactionsByMonth(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	may := 80.0
	june := 120.0
	july := 60.0
	txns := []model.Transaction{
		{ID: "m1", Date: time.Date(2024, time.May, 31, 23, 59, 0, 0, time.UTC), Amount: &may, Type: model.TypeDebit},
		{ID: "j1", Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), Amount: &june, Type: model.TypeDebit},
		{ID: "jl1", Date: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), Amount: &july, Type: model.TypeDebit},
	}
	require.NoError(t, store.SaveTransactions(ctx, txns))

	got, err := store.GetTransactionsByMonth(ctx, 2024, time.June)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "j1", got[0].ID)
}

func TestSQLiteStorage_GetTransactionsFilter(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	food := 100.0
	travel := 50.0
	txns := []model.Transaction{
		{ID: "f1", Date: testDate(1), Amount: &food, Type: model.TypeDebit, Category: "Food"},
		{ID: "t1", Date: testDate(2), Amount: &travel, Type: model.TypeDebit, Category: "Travel"},
		{ID: "f2", Date: testDate(3), Amount: &food, Type: model.TypeDebit, Category: "Food"},
	}
	require.NoError(t, store.SaveTransactions(ctx, txns))

	got, err := store.GetTransactions(ctx, service.TransactionFilter{Category: "Food"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Date-ascending order so grouping sees first-encountered order.
	assert.Equal(t, "f1", got[0].ID)
	assert.Equal(t, "f2", got[1].ID)

	limited, err := store.GetTransactions(ctx, service.TransactionFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSQLiteStorage_GetTransactionsEmpty(t *testing.T) {
	store := createTestStorage(t)

	got, err := store.GetTransactions(context.Background(), service.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
}
