package alerts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rishvinreddy/smarty-budget/internal/models"
)

func item(name string, planned, actual int64, threshold int) models.BudgetItem {
	return models.BudgetItem{
		ID:             name,
		Name:           name,
		Planned:        decimal.NewFromInt(planned),
		Actual:         decimal.NewFromInt(actual),
		AlertThreshold: threshold,
	}
}

func TestEvaluate_WarningAtThreshold(t *testing.T) {
	view := models.DerivedView{
		Expenses: []models.BudgetItem{item("Groceries", 100, 90, 90)},
	}

	alerts := Evaluate(view)
	require.Len(t, alerts, 1)
	assert.Equal(t, Warning, alerts[0].Severity)
	assert.Equal(t, int64(90), alerts[0].Percent)
	assert.Equal(t, `You've used 90% of your budget for "Groceries".`, alerts[0].Message)
}

func TestEvaluate_BelowThresholdIsQuiet(t *testing.T) {
	view := models.DerivedView{
		Expenses: []models.BudgetItem{item("Groceries", 100, 89, 90)},
	}
	assert.Empty(t, Evaluate(view))
}

func TestEvaluate_DangerAtFullUsage(t *testing.T) {
	view := models.DerivedView{
		Bills: []models.BudgetItem{item("Rent", 100, 100, 90)},
	}

	alerts := Evaluate(view)
	require.Len(t, alerts, 1)
	assert.Equal(t, Danger, alerts[0].Severity)
	assert.Equal(t, "0.00", alerts[0].Overage.StringFixed(2))
}

func TestEvaluate_DangerWithOverage(t *testing.T) {
	view := models.DerivedView{
		Debt: []models.BudgetItem{item("Credit card", 100, 150, 90)},
	}

	alerts := Evaluate(view)
	require.Len(t, alerts, 1)
	assert.Equal(t, Danger, alerts[0].Severity)
	assert.Equal(t, `You've exceeded your budget for "Credit card". You are over by 50.00.`, alerts[0].Message)
}

func TestEvaluate_ZeroPlannedNeverAlerts(t *testing.T) {
	view := models.DerivedView{
		Expenses: []models.BudgetItem{item("Unplanned", 0, 500, 90)},
	}
	assert.Empty(t, Evaluate(view))
}

func TestEvaluate_DefaultThresholdWhenUnset(t *testing.T) {
	view := models.DerivedView{
		Expenses: []models.BudgetItem{item("Groceries", 100, 90, 0)},
	}

	alerts := Evaluate(view)
	require.Len(t, alerts, 1)
	assert.Equal(t, Warning, alerts[0].Severity)
}

func TestEvaluate_IncomeAndSavingsExempt(t *testing.T) {
	view := models.DerivedView{
		Income:  []models.BudgetItem{item("Salary", 100, 300, 90)},
		Savings: []models.BudgetItem{item("Emergency fund", 100, 300, 90)},
	}
	assert.Empty(t, Evaluate(view))
}

func TestEvaluate_DangersBeforeWarnings(t *testing.T) {
	view := models.DerivedView{
		Bills: []models.BudgetItem{
			item("Warned bill", 100, 95, 90),
		},
		Expenses: []models.BudgetItem{
			item("Blown expense", 100, 120, 90),
			item("Warned expense", 100, 92, 90),
		},
	}

	alerts := Evaluate(view)
	require.Len(t, alerts, 3)
	assert.Equal(t, Danger, alerts[0].Severity)
	assert.Equal(t, "Blown expense", alerts[0].ItemName)
	assert.Equal(t, Warning, alerts[1].Severity)
	assert.Equal(t, "Warned bill", alerts[1].ItemName)
	assert.Equal(t, "Warned expense", alerts[2].ItemName)
}

func TestEvaluate_CustomThreshold(t *testing.T) {
	view := models.DerivedView{
		Expenses: []models.BudgetItem{item("Shopping", 200, 100, 50)},
	}

	alerts := Evaluate(view)
	require.Len(t, alerts, 1)
	assert.Equal(t, int64(50), alerts[0].Percent)
}
