package model

import "sort"

// MerchantTotal is a single merchant's summed debit spend.
type MerchantTotal struct {
	Merchant string
	Amount   float64
}

// MerchantTotals is an ordered slice of merchant totals that supports
// stable descending sorting and truncation.
type MerchantTotals []MerchantTotal

// Sort orders the totals by amount descending. The sort is stable so that
// ties keep their first-encountered insertion order and results stay
// deterministic across runs.
func (m MerchantTotals) Sort() {
	sort.SliceStable(m, func(i, j int) bool {
		return m[i].Amount > m[j].Amount
	})
}

// TopN returns the n highest totals in descending order. It returns the
// whole slice when n exceeds the length and an empty slice when n <= 0.
func (m MerchantTotals) TopN(n int) MerchantTotals {
	if n <= 0 {
		return MerchantTotals{}
	}
	m.Sort()
	if n > len(m) {
		n = len(m)
	}
	return m[:n]
}
