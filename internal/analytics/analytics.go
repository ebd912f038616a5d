// Package analytics derives totals, category breakdowns, and monthly series
// from a transaction collection. All functions are pure: they never mutate
// their input and hold no state between calls.
package analytics

import (
	"time"

	"expensia/internal/models"
)

// CategoryTotals sums amounts grouped by category, restricted to
// transactions of the given type. Categories with no matching transactions
// are omitted, not zero-filled.
func CategoryTotals(txs []models.Transaction, txType models.TransactionType) map[models.Category]int64 {
	totals := make(map[models.Category]int64)
	for _, tx := range txs {
		if tx.Type == txType {
			totals[tx.Category] += tx.Amount
		}
	}
	return totals
}

// TotalIncome returns the sum of all income amounts.
func TotalIncome(txs []models.Transaction) int64 {
	var total int64
	for _, tx := range txs {
		if tx.Type == models.TransactionTypeIncome {
			total += tx.Amount
		}
	}
	return total
}

// TotalExpenses returns the sum of all expense amounts.
func TotalExpenses(txs []models.Transaction) int64 {
	var total int64
	for _, tx := range txs {
		if tx.Type == models.TransactionTypeExpense {
			total += tx.Amount
		}
	}
	return total
}

// Balance returns income minus expenses. May be negative.
func Balance(txs []models.Transaction) int64 {
	return TotalIncome(txs) - TotalExpenses(txs)
}

// MonthlyEntry holds income and expense totals for one calendar month.
type MonthlyEntry struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// MonthlySeries returns exactly six entries, one per calendar month from
// ref minus five months through ref. Months with no transactions stay at
// zero and are still emitted, unlike CategoryTotals which omits empty
// groups. Transactions are matched on their user-supplied date's month and
// year; anything outside the window is ignored.
func MonthlySeries(txs []models.Transaction, ref time.Time) []MonthlyEntry {
	type monthKey struct {
		year  int
		month time.Month
	}

	entries := make([]MonthlyEntry, 6)
	index := make(map[monthKey]int, 6)

	firstOfRef := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	for i := 0; i < 6; i++ {
		m := firstOfRef.AddDate(0, i-5, 0)
		entries[i] = MonthlyEntry{Month: m.Format("Jan")}
		index[monthKey{m.Year(), m.Month()}] = i
	}

	for _, tx := range txs {
		i, ok := index[monthKey{tx.Date.Year(), tx.Date.Month()}]
		if !ok {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			entries[i].Income += tx.Amount
		case models.TransactionTypeExpense:
			entries[i].Expense += tx.Amount
		}
	}

	return entries
}
