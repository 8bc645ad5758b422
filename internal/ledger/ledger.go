// Package ledger computes derived spending figures from transaction and
// budget snapshots: monthly totals, per-category and per-merchant spend,
// payment-method breakdowns, budget consumption, and monthly trend series.
//
// Every function is pure: inputs are read-only snapshots, results are
// freshly allocated, and calling twice with the same snapshot yields
// identical output. Callers must not mutate a snapshot concurrently with a
// call; no other synchronization is needed.
package ledger

import "time"

// AccountUPI is the sentinel account identifier used for transactions made
// over the UPI/non-card channel. The aggregator treats it as an ordinary
// grouping key; callers filter on it to separate cards from UPI.
const AccountUPI = "UPI"

// inMonth reports whether t falls within the given calendar month, from
// its first instant through its last, in the transaction's own location.
func inMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}
