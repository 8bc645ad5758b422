package ledger

import "github.com/saffronbudget/saffron/internal/model"

// BudgetFor finds the budget for a category, or nil when none exists.
// Budgets and categories are independently managed, so a missing budget is
// an expected state, not an error.
func BudgetFor(budgets []model.Budget, category string) *model.Budget {
	for i := range budgets {
		if budgets[i].Category == category {
			return &budgets[i]
		}
	}
	return nil
}

// SpendingPercentage reports how much of a category's total budget has been
// consumed, clamped to [0, 100]. Spend beyond the budget reads as exactly
// 100; callers needing the overage magnitude use SpendingRatio or
// RemainingBudget. A missing budget or a zero total budget yields 0.
func SpendingPercentage(spentByCategory map[string]float64, budgets []model.Budget, category string) float64 {
	ratio := SpendingRatio(spentByCategory, budgets, category)
	pct := ratio * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// SpendingRatio returns the raw spent/totalBudget ratio without clamping,
// so overspend magnitude survives for callers that want it. A missing
// budget or a zero total budget yields 0, never NaN or Inf.
func SpendingRatio(spentByCategory map[string]float64, budgets []model.Budget, category string) float64 {
	b := BudgetFor(budgets, category)
	if b == nil {
		return 0
	}
	total := b.TotalBudget()
	if total == 0 {
		return 0
	}
	return spentByCategory[category] / total
}

// RemainingBudget returns totalBudget - spent. A negative result signals
// overspend and is a normal output, not an error.
func RemainingBudget(spent, totalBudget float64) float64 {
	return totalBudget - spent
}

// RolloverAdjustedBudget projects a budget's effective allocation: the base
// amount plus the carried-over surplus when rollover is enabled.
func RolloverAdjustedBudget(b model.Budget) float64 {
	return b.TotalBudget()
}
