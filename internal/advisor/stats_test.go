package advisor

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"rishvinreddy/smarty-budget/internal/models"
)

func statItem(name string, planned, actual int64) models.BudgetItem {
	return models.BudgetItem{
		ID:      name,
		Name:    name,
		Planned: decimal.NewFromInt(planned),
		Actual:  decimal.NewFromInt(actual),
	}
}

func TestSummarize(t *testing.T) {
	view := models.DerivedView{
		DisplayCurrency: "USD",
		Income:          []models.BudgetItem{statItem("Salary", 4000, 2000)},
		Expenses: []models.BudgetItem{
			statItem("Groceries", 500, 175),
			statItem("Dining", 200, 80),
			statItem("Shopping", 300, 260),
			statItem("Hobbies", 100, 20),
		},
		Savings: []models.BudgetItem{statItem("Emergency fund", 600, 600)},
	}

	stats := Summarize(view)

	assert.Equal(t, "USD", stats.Currency)
	assert.Equal(t, "$2000.00", stats.TotalIncome)
	assert.Equal(t, "$1100.00", stats.TotalPlannedExpenses)
	assert.Equal(t, "$535.00", stats.TotalExpenses)
	assert.Equal(t, "$600.00", stats.TotalSavings)
	assert.Equal(t, "30.0%", stats.SavingsRate)
	assert.Equal(t, "Shopping: $260.00, Groceries: $175.00, Dining: $80.00", stats.TopExpenses)
}

func TestSummarize_ZeroIncome(t *testing.T) {
	view := models.DerivedView{DisplayCurrency: "USD"}
	stats := Summarize(view)

	assert.Equal(t, "0.0%", stats.SavingsRate)
	assert.Equal(t, "N/A", stats.TopExpenses)
}

func TestBudgetStats_PromptLine(t *testing.T) {
	line := testStats().promptLine()
	assert.Contains(t, line, "Total Income: $2000.00")
	assert.Contains(t, line, "Savings Rate: 30.0%")
}
