package ledger

import (
	"time"

	"github.com/saffronbudget/saffron/internal/model"
)

// MonthSummary pairs a calendar month with its total debit spending and
// credit income.
type MonthSummary struct {
	Year     int
	Month    time.Month
	Spending float64
	Income   float64
}

// Label formats the month as "Jan 2024" for display.
func (m MonthSummary) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// MonthlySeries produces monthCount consecutive calendar months ending at
// the given month, oldest first, each with its spending and income totals.
// The result is fixed-size and deterministic for a given snapshot; months
// with no transactions appear with zero totals. monthCount <= 0 yields an
// empty series.
func MonthlySeries(txns []model.Transaction, monthCount, endYear int, endMonth time.Month) []MonthSummary {
	if monthCount <= 0 {
		return []MonthSummary{}
	}

	series := make([]MonthSummary, 0, monthCount)
	// time.Date normalizes out-of-range months, so walking backwards from
	// the end month just works across year boundaries.
	for i := monthCount - 1; i >= 0; i-- {
		at := time.Date(endYear, endMonth-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		y, m := at.Year(), at.Month()
		series = append(series, MonthSummary{
			Year:     y,
			Month:    m,
			Spending: MonthlyTotalSpending(txns, y, m),
			Income:   MonthlyIncome(txns, y, m),
		})
	}
	return series
}
