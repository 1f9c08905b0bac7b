// Package aggregator implements the month-scoped derivation of the ledger:
// given a target calendar month it filters the transaction log to that
// month's window and recomputes every budget item's actual from the matching
// transactions. All functions are pure; the ledger is never mutated and the
// same inputs always produce the same view.
package aggregator

import (
	"sort"

	"github.com/shopspring/decimal"

	"rishvinreddy/smarty-budget/internal/dateutils"
	"rishvinreddy/smarty-budget/internal/models"
)

// Aggregate derives the view for (year, month). Transactions are matched on
// calendar days, both boundary days of the month included. Items whose id has
// no matching transaction get a zero actual; transactions outside the window
// have no influence on the result.
//
// Sums are keyed by category id alone. Ids are unique per bucket, not
// globally, so if the same id string were reused across two buckets their
// sums would merge. New code avoids this by carrying models.CategoryRef, but
// documents written by older versions are aggregated as-is.
func Aggregate(ledger models.Ledger, year, month int) models.DerivedView {
	filtered := transactionsInMonth(ledger.Transactions, year, month)

	sums := make(map[string]decimal.Decimal, len(filtered))
	for _, t := range filtered {
		sums[t.CategoryID] = sums[t.CategoryID].Add(t.Amount)
	}

	view := models.DerivedView{
		Year:            year,
		Month:           month,
		DisplayCurrency: ledger.DisplayCurrency,
		Period: models.Period{
			Start: dateutils.FormatDay(dateutils.StartOfMonth(year, month)),
			End:   dateutils.FormatDay(dateutils.EndOfMonth(year, month)),
		},
		Income:       recompute(ledger.Income, sums),
		Bills:        recompute(ledger.Bills, sums),
		Expenses:     recompute(ledger.Expenses, sums),
		Savings:      recompute(ledger.Savings, sums),
		Debt:         recompute(ledger.Debt, sums),
		Transactions: filtered,
	}
	return view
}

// IncomeMonthView is the income-only companion derivation used by the income
// hub: the income bucket with recomputed actuals and only the month's income
// transactions, most recent first.
type IncomeMonthView struct {
	Year            int
	Month           int
	DisplayCurrency string
	Income          []models.BudgetItem
	Transactions    []models.Transaction
}

// IncomeView restricts the derivation to the income bucket. Recency ordering
// of the transaction list is part of the contract here; ties between
// transactions on the same day keep their input order.
func IncomeView(ledger models.Ledger, year, month int) IncomeMonthView {
	sums := make(map[string]decimal.Decimal)
	var incomeTx []models.Transaction
	for _, t := range transactionsInMonth(ledger.Transactions, year, month) {
		if t.CategoryType != models.Income {
			continue
		}
		sums[t.CategoryID] = sums[t.CategoryID].Add(t.Amount)
		incomeTx = append(incomeTx, t)
	}
	SortByDateDesc(incomeTx)

	return IncomeMonthView{
		Year:            year,
		Month:           month,
		DisplayCurrency: ledger.DisplayCurrency,
		Income:          recompute(ledger.Income, sums),
		Transactions:    incomeTx,
	}
}

// SortByDateDesc orders transactions most recent first, stably.
func SortByDateDesc(txs []models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, errA := dateutils.ParseDay(txs[i].Date)
		b, errB := dateutils.ParseDay(txs[j].Date)
		if errA != nil || errB != nil {
			return false
		}
		return dateutils.CompareDays(a, b) > 0
	})
}

func transactionsInMonth(txs []models.Transaction, year, month int) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if dateutils.InMonth(t.Date, year, month) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func recompute(items []models.BudgetItem, sums map[string]decimal.Decimal) []models.BudgetItem {
	out := make([]models.BudgetItem, len(items))
	for i, item := range items {
		item.Actual = sums[item.ID] // zero value when no transaction matched
		out[i] = item
	}
	return out
}
