package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPlan(t *testing.T) {
	ledger := Ledger{
		DisplayCurrency: "USD",
		Period:          Period{Start: "2025-10-01", End: "2025-10-31"},
		Expenses:        []BudgetItem{{ID: "old1", Name: "Old line", Planned: decimal.NewFromInt(10)}},
		Transactions:    []Transaction{{ID: "t1", Date: "2025-10-02", Amount: decimal.NewFromInt(5)}},
	}

	plan := map[CategoryType][]PlanLine{
		Income:   {{Name: "Salary", Planned: decimal.NewFromInt(4000)}},
		Expenses: {{Name: "Groceries", Planned: decimal.NewFromInt(450)}},
	}

	next := ApplyPlan(ledger, plan)

	// Items are rebuilt with fresh ids and zero actuals
	require.Len(t, next.Income, 1)
	assert.Equal(t, "Salary", next.Income[0].Name)
	assert.NotEmpty(t, next.Income[0].ID)
	assert.NotEqual(t, "old1", next.Expenses[0].ID)
	assert.True(t, next.Expenses[0].Actual.IsZero())
	assert.Equal(t, DefaultAlertThreshold, next.Income[0].AlertThreshold)

	// Buckets absent from the plan come out empty
	assert.Empty(t, next.Bills)
	assert.Empty(t, next.Savings)
	assert.Empty(t, next.Debt)

	// Transactions, period and currency are untouched
	assert.Equal(t, ledger.Transactions, next.Transactions)
	assert.Equal(t, ledger.Period, next.Period)
	assert.Equal(t, "USD", next.DisplayCurrency)

	// The input ledger is never mutated
	assert.Equal(t, "Old line", ledger.Expenses[0].Name)
	assert.Len(t, ledger.Income, 0)
}
