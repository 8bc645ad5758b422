package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saffronbudget/saffron/internal/model"
)

func TestMonthlySeries(t *testing.T) {
	txns := []model.Transaction{
		txn("t1", model.TypeDebit, amt(500), "Food", "Swiggy", "1234", time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)),
		txn("t2", model.TypeDebit, amt(300), "Food", "Zomato", "1234", time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)),
		txn("t3", model.TypeCredit, amt(2000), "Salary", "", "", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := MonthlySeries(txns, 3, 2024, time.June)

	require.Len(t, got, 3)
	assert.Equal(t, time.April, got[0].Month)
	assert.Equal(t, time.May, got[1].Month)
	assert.Equal(t, time.June, got[2].Month)

	assert.InDelta(t, 500, got[0].Spending, 0.001)
	assert.Zero(t, got[1].Spending) // empty month appears with zero totals
	assert.InDelta(t, 300, got[2].Spending, 0.001)
	assert.InDelta(t, 2000, got[2].Income, 0.001)
}

func TestMonthlySeriesCrossesYearBoundary(t *testing.T) {
	got := MonthlySeries(nil, 4, 2024, time.February)

	require.Len(t, got, 4)
	assert.Equal(t, 2023, got[0].Year)
	assert.Equal(t, time.November, got[0].Month)
	assert.Equal(t, 2023, got[1].Year)
	assert.Equal(t, time.December, got[1].Month)
	assert.Equal(t, 2024, got[2].Year)
	assert.Equal(t, time.January, got[2].Month)
	assert.Equal(t, 2024, got[3].Year)
	assert.Equal(t, time.February, got[3].Month)
}

func TestMonthlySeriesDeterministic(t *testing.T) {
	txns := []model.Transaction{
		txn("t1", model.TypeDebit, amt(75), "Food", "Swiggy", "1234", time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)),
	}

	first := MonthlySeries(txns, 6, 2024, time.June)
	second := MonthlySeries(txns, 6, 2024, time.June)
	assert.Equal(t, first, second)
}

func TestMonthlySeriesDegenerateCounts(t *testing.T) {
	assert.Empty(t, MonthlySeries(nil, 0, 2024, time.June))
	assert.Empty(t, MonthlySeries(nil, -3, 2024, time.June))
}

func TestMonthSummaryLabel(t *testing.T) {
	s := MonthSummary{Year: 2024, Month: time.January}
	assert.Equal(t, "Jan 2024", s.Label())
}
