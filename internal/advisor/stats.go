package advisor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"rishvinreddy/smarty-budget/internal/currencyutils"
	"rishvinreddy/smarty-budget/internal/models"
)

// BudgetStats is the small set of pre-aggregated, display-formatted numbers
// the advisory features hand to the AI service. The service never sees the
// ledger itself, only these strings.
type BudgetStats struct {
	Currency             string
	TotalIncome          string
	TotalPlannedExpenses string
	TotalExpenses        string
	TotalSavings         string
	SavingsRate          string
	TopExpenses          string
}

// Summarize condenses a derived month view into prompt-ready statistics.
func Summarize(view models.DerivedView) BudgetStats {
	currency := view.DisplayCurrency
	actualIncome := models.TotalActual(view.Income)
	actualSavings := models.TotalActual(view.Savings)

	savingsRate := decimal.Zero
	if actualIncome.IsPositive() {
		savingsRate = actualSavings.Div(actualIncome).Mul(decimal.NewFromInt(100))
	}

	return BudgetStats{
		Currency:             currency,
		TotalIncome:          currencyutils.Format(actualIncome, currency),
		TotalPlannedExpenses: currencyutils.Format(models.TotalPlanned(view.Expenses), currency),
		TotalExpenses:        currencyutils.Format(models.TotalActual(view.Expenses), currency),
		TotalSavings:         currencyutils.Format(actualSavings, currency),
		SavingsRate:          savingsRate.StringFixed(1) + "%",
		TopExpenses:          topExpenses(view.Expenses, currency),
	}
}

// topExpenses lists the three largest expense lines by actual, formatted for
// the prompt, or "N/A" when there are none.
func topExpenses(items []models.BudgetItem, currency string) string {
	sorted := append([]models.BudgetItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Actual.GreaterThan(sorted[j].Actual)
	})
	var parts []string
	for _, item := range sorted {
		if len(parts) == 3 {
			break
		}
		parts = append(parts, fmt.Sprintf("%s: %s", item.Name, currencyutils.Format(item.Actual, currency)))
	}
	if len(parts) == 0 {
		return "N/A"
	}
	return strings.Join(parts, ", ")
}

// promptLine renders the stats as a single sentence for prompt construction.
func (s BudgetStats) promptLine() string {
	return fmt.Sprintf("Total Income: %s. Total Planned Expenses: %s. Total Actual Expenses: %s. Total Saved: %s. Savings Rate: %s.",
		s.TotalIncome, s.TotalPlannedExpenses, s.TotalExpenses, s.TotalSavings, s.SavingsRate)
}
