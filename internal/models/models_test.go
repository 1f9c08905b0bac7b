package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategoryType(t *testing.T) {
	for _, input := range []string{"income", "Income", "INCOME"} {
		ct, ok := ParseCategoryType(input)
		assert.True(t, ok, "input %q", input)
		assert.Equal(t, Income, ct)
	}

	_, ok := ParseCategoryType("housing")
	assert.False(t, ok)
	_, ok = ParseCategoryType("")
	assert.False(t, ok)
}

func TestNewBudgetItem(t *testing.T) {
	item := NewBudgetItem("Groceries", decimal.NewFromInt(550))

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Groceries", item.Name)
	assert.True(t, item.Actual.IsZero())
	assert.Equal(t, DefaultAlertThreshold, item.AlertThreshold)

	other := NewBudgetItem("Groceries", decimal.NewFromInt(550))
	assert.NotEqual(t, item.ID, other.ID)
}

func TestBudgetItem_Threshold(t *testing.T) {
	item := BudgetItem{AlertThreshold: 75}
	assert.Equal(t, 75, item.Threshold())

	// Unset threshold falls back to the default
	item = BudgetItem{}
	assert.Equal(t, DefaultAlertThreshold, item.Threshold())
}

func TestLedger_BucketRoundTrip(t *testing.T) {
	var l Ledger
	items := []BudgetItem{NewBudgetItem("Rent", decimal.NewFromInt(1400))}

	for _, ct := range CategoryTypes {
		l.SetBucket(ct, items)
		assert.Equal(t, items, l.Bucket(ct), "bucket %s", ct)
	}
	assert.Nil(t, l.Bucket("nope"))
}

func TestLedger_FindItem(t *testing.T) {
	l := Ledger{
		Bills: []BudgetItem{{ID: "b1", Name: "Rent"}},
	}

	item, ok := l.FindItem(CategoryRef{Bucket: Bills, ID: "b1"})
	require.True(t, ok)
	assert.Equal(t, "Rent", item.Name)

	// Same id in the wrong bucket does not resolve
	_, ok = l.FindItem(CategoryRef{Bucket: Expenses, ID: "b1"})
	assert.False(t, ok)
}

func TestLedger_FindItemByName(t *testing.T) {
	l := Ledger{
		Income:   []BudgetItem{{ID: "i1", Name: "Salary"}},
		Expenses: []BudgetItem{{ID: "e1", Name: "Groceries"}},
	}

	ref, item, ok := l.FindItemByName("", "groceries")
	require.True(t, ok)
	assert.Equal(t, Expenses, ref.Bucket)
	assert.Equal(t, "e1", ref.ID)
	assert.Equal(t, "Groceries", item.Name)

	_, _, ok = l.FindItemByName(Income, "Groceries")
	assert.False(t, ok)

	_, _, ok = l.FindItemByName("", "Yacht fund")
	assert.False(t, ok)
}

func TestLedger_CloneIsDeep(t *testing.T) {
	l := Ledger{
		DisplayCurrency: "USD",
		Expenses:        []BudgetItem{{ID: "e1", Name: "Groceries", Planned: decimal.NewFromInt(100)}},
		Transactions:    []Transaction{{ID: "t1", Date: "2025-10-01", Amount: decimal.NewFromInt(5)}},
	}

	clone := l.Clone()
	clone.Expenses[0].Name = "Changed"
	clone.Transactions[0].Date = "1999-01-01"
	clone.DisplayCurrency = "EUR"

	assert.Equal(t, "Groceries", l.Expenses[0].Name)
	assert.Equal(t, "2025-10-01", l.Transactions[0].Date)
	assert.Equal(t, "USD", l.DisplayCurrency)
}

func TestTotals(t *testing.T) {
	items := []BudgetItem{
		{Planned: decimal.NewFromInt(100), Actual: decimal.NewFromInt(40)},
		{Planned: decimal.NewFromInt(50), Actual: decimal.NewFromInt(25)},
	}
	assert.Equal(t, "150", TotalPlanned(items).String())
	assert.Equal(t, "65", TotalActual(items).String())
	assert.True(t, TotalPlanned(nil).IsZero())
}

func TestDerivedView_ItemName(t *testing.T) {
	view := DerivedView{
		Bills: []BudgetItem{{ID: "b1", Name: "Rent"}},
	}
	assert.Equal(t, "Rent", view.ItemName("b1"))
	assert.Equal(t, "Unknown category", view.ItemName("gone"))
}
