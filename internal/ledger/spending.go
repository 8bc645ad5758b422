package ledger

import (
	"time"

	"github.com/saffronbudget/saffron/internal/model"
)

// MonthlyTotalSpending sums debit amounts for the given calendar month.
// Transactions without an amount contribute 0. An empty snapshot yields 0.
func MonthlyTotalSpending(txns []model.Transaction, year int, month time.Month) float64 {
	var total float64
	for i := range txns {
		t := &txns[i]
		if t.Type == model.TypeDebit && inMonth(t.Date, year, month) {
			total += t.AmountValue()
		}
	}
	return total
}

// MonthlyIncome sums credit amounts for the given calendar month.
func MonthlyIncome(txns []model.Transaction, year int, month time.Month) float64 {
	var total float64
	for i := range txns {
		t := &txns[i]
		if t.Type == model.TypeCredit && inMonth(t.Date, year, month) {
			total += t.AmountValue()
		}
	}
	return total
}

// CategorySpending groups the month's debit transactions by category and
// sums their amounts. Categories with no matching transactions are absent
// from the result rather than present with a zero value.
func CategorySpending(txns []model.Transaction, year int, month time.Month) map[string]float64 {
	spending := make(map[string]float64)
	for i := range txns {
		t := &txns[i]
		if t.Type == model.TypeDebit && inMonth(t.Date, year, month) {
			spending[t.Category] += t.AmountValue()
		}
	}
	return spending
}

// MerchantTotals sums debit amounts per merchant across the whole snapshot,
// skipping transactions with an empty merchant, and returns the topN
// merchants in descending order. Ties keep first-encountered order.
func MerchantTotals(txns []model.Transaction, topN int) model.MerchantTotals {
	totals := model.MerchantTotals{}
	index := make(map[string]int)
	for i := range txns {
		t := &txns[i]
		if t.Type != model.TypeDebit || t.Merchant == "" {
			continue
		}
		pos, ok := index[t.Merchant]
		if !ok {
			pos = len(totals)
			index[t.Merchant] = pos
			totals = append(totals, model.MerchantTotal{Merchant: t.Merchant})
		}
		totals[pos].Amount += t.AmountValue()
	}
	return totals.TopN(topN)
}

// PaymentMethodTotals sums debit amounts per account identifier, skipping
// transactions with no identifier. The UPI sentinel is grouped like any
// other key; callers that need it separated filter on AccountUPI. The
// returned map carries no ordering guarantee.
func PaymentMethodTotals(txns []model.Transaction) map[string]float64 {
	totals := make(map[string]float64)
	for i := range txns {
		t := &txns[i]
		if t.Type == model.TypeDebit && t.AccountLastDigits != "" {
			totals[t.AccountLastDigits] += t.AmountValue()
		}
	}
	return totals
}

// PaymentMethodCategoryBreakdown produces a two-level grouping of debit
// spend: account identifier, then category within it. It answers which
// categories dominate spend on a given payment method.
func PaymentMethodCategoryBreakdown(txns []model.Transaction) map[string]map[string]float64 {
	breakdown := make(map[string]map[string]float64)
	for i := range txns {
		t := &txns[i]
		if t.Type != model.TypeDebit || t.AccountLastDigits == "" {
			continue
		}
		byCategory, ok := breakdown[t.AccountLastDigits]
		if !ok {
			byCategory = make(map[string]float64)
			breakdown[t.AccountLastDigits] = byCategory
		}
		byCategory[t.Category] += t.AmountValue()
	}
	return breakdown
}
