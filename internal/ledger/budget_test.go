package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saffronbudget/saffron/internal/model"
)

func TestBudgetFor(t *testing.T) {
	budgets := []model.Budget{
		{Category: "Food", Amount: 1000},
		{Category: "Travel", Amount: 500},
	}

	got := BudgetFor(budgets, "Travel")
	require.NotNil(t, got)
	assert.Equal(t, "Travel", got.Category)
	assert.InDelta(t, 500, got.Amount, 0.001)

	// The returned pointer aliases the snapshot entry, so every consumer
	// resolves a category to the same budget definition.
	assert.Same(t, &budgets[1], got)

	assert.Nil(t, BudgetFor(budgets, "Shopping"))
	assert.Nil(t, BudgetFor(nil, "Food"))
}

func TestSpendingPercentage(t *testing.T) {
	budgets := []model.Budget{
		{Category: "Food", Amount: 1000, RolloverEnabled: true, RolledOverAmount: 200},
		{Category: "Travel", Amount: 500},
	}

	tests := []struct {
		spent    map[string]float64
		name     string
		category string
		want     float64
	}{
		{
			name:     "partial consumption with rollover",
			spent:    map[string]float64{"Food": 600},
			category: "Food",
			want:     50, // 600 / 1200
		},
		{
			name:     "overspend clamps to 100",
			spent:    map[string]float64{"Travel": 750},
			category: "Travel",
			want:     100,
		},
		{
			name:     "exactly at budget",
			spent:    map[string]float64{"Travel": 500},
			category: "Travel",
			want:     100,
		},
		{
			name:     "no budget for category",
			spent:    map[string]float64{"Shopping": 300},
			category: "Shopping",
			want:     0,
		},
		{
			name:     "no spend recorded",
			spent:    map[string]float64{},
			category: "Food",
			want:     0,
		},
		{
			name:     "empty inputs",
			spent:    nil,
			category: "Food",
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var budgetSet []model.Budget
			if tt.name != "empty inputs" {
				budgetSet = budgets
			}
			got := SpendingPercentage(tt.spent, budgetSet, tt.category)
			assert.InDelta(t, tt.want, got, 0.001)
			assert.LessOrEqual(t, got, 100.0)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestSpendingPercentageZeroTotalBudget(t *testing.T) {
	// A zero total budget means "no meaningful percentage", never NaN/Inf.
	budgets := []model.Budget{{Category: "Food", Amount: 0}}
	got := SpendingPercentage(map[string]float64{"Food": 300}, budgets, "Food")
	assert.Zero(t, got)
	assert.False(t, math.IsNaN(got))
	assert.False(t, math.IsInf(got, 0))
}

func TestSpendingRatioKeepsOverspend(t *testing.T) {
	budgets := []model.Budget{{Category: "Food", Amount: 400}}
	spent := map[string]float64{"Food": 600}

	assert.InDelta(t, 1.5, SpendingRatio(spent, budgets, "Food"), 0.001)
	assert.InDelta(t, 100, SpendingPercentage(spent, budgets, "Food"), 0.001)
	assert.Zero(t, SpendingRatio(spent, nil, "Food"))
}

func TestRemainingBudget(t *testing.T) {
	assert.InDelta(t, 400, RemainingBudget(600, 1000), 0.001)
	assert.InDelta(t, -200, RemainingBudget(1200, 1000), 0.001) // overspend is a normal output
	assert.InDelta(t, 0, RemainingBudget(0, 0), 0.001)
}

func TestRolloverAdjustedBudget(t *testing.T) {
	b := model.Budget{Category: "Food", Amount: 1000, RolloverEnabled: true, RolledOverAmount: 200}
	assert.InDelta(t, 1200, RolloverAdjustedBudget(b), 0.001)

	// Disabling rollover excludes the carry without discarding it.
	b.RolloverEnabled = false
	assert.InDelta(t, 1000, RolloverAdjustedBudget(b), 0.001)
	assert.InDelta(t, 200, b.RolledOverAmount, 0.001)

	b.RolloverEnabled = true
	assert.InDelta(t, 1200, RolloverAdjustedBudget(b), 0.001)
}
