package store

import (
	"github.com/shopspring/decimal"

	"rishvinreddy/smarty-budget/internal/models"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedItem(id, name string, planned string) models.BudgetItem {
	return models.BudgetItem{
		ID:             id,
		Name:           name,
		Planned:        amt(planned),
		Actual:         decimal.Zero,
		AlertThreshold: models.DefaultAlertThreshold,
	}
}

// SeedLedger returns the fixed default document used when no ledger exists
// on disk and after a reset. Actuals start at zero; views recompute them
// from the seed transactions.
func SeedLedger() models.Ledger {
	return models.Ledger{
		Period:          models.Period{Start: "2025-10-01", End: "2025-10-31"},
		DisplayCurrency: "INR",
		Income: []models.BudgetItem{
			seedItem("inc1", "Realtor Income", "10600"),
		},
		Bills: []models.BudgetItem{
			seedItem("bill1", "Apartment", "2100"),
			seedItem("bill2", "Internet", "85"),
			seedItem("bill3", "Electricity", "190"),
			seedItem("bill4", "Water", "50"),
			seedItem("bill5", "Netflix", "135"),
			seedItem("bill6", "Gym membership", "45"),
			seedItem("bill7", "Car insurance", "140"),
		},
		Expenses: []models.BudgetItem{
			seedItem("exp1", "Groceries", "550"),
			seedItem("exp2", "Eating out", "300"),
			seedItem("exp3", "Shopping", "700"),
			seedItem("exp4", "Business expenses", "650"),
			seedItem("exp5", "Hair/nails", "230"),
		},
		Savings: []models.BudgetItem{
			seedItem("sav1", "Retirement account", "600"),
			seedItem("sav2", "Emergencies", "800"),
			seedItem("sav3", "Vacation to the US", "350"),
			seedItem("sav4", "Savings account", "2820"),
		},
		Debt: []models.BudgetItem{
			seedItem("debt1", "Car lease", "420"),
			seedItem("debt2", "Credit card", "315"),
			seedItem("debt3", "Business loan", "120"),
		},
		Transactions: []models.Transaction{
			{ID: "txn1", Date: "2025-10-02", Description: "Trader Joe's", Amount: amt("125.50"), CategoryID: "exp1", CategoryType: models.Expenses, Location: "123 Market St"},
			{ID: "txn2", Date: "2025-10-05", Description: "Monthly Rent", Amount: amt("2100"), CategoryID: "bill1", CategoryType: models.Bills},
			{ID: "txn3", Date: "2025-10-05", Description: "Freelance Payment", Amount: amt("2500"), CategoryID: "inc1", CategoryType: models.Income},
			{ID: "txn4", Date: "2025-10-08", Description: "Dinner with friends", Amount: amt("78.00"), CategoryID: "exp2", CategoryType: models.Expenses, Location: "The Italian Place"},
			{ID: "txn5", Date: "2025-10-10", Description: "AT&T Internet", Amount: amt("85"), CategoryID: "bill2", CategoryType: models.Bills},
			{ID: "txn6", Date: "2025-10-12", Description: "Zara", Amount: amt("210.20"), CategoryID: "exp3", CategoryType: models.Expenses, Location: "Mall Galleria"},
			{ID: "txn7", Date: "2025-10-15", Description: "Transfer to Roth IRA", Amount: amt("600"), CategoryID: "sav1", CategoryType: models.Savings},
			{ID: "txn8", Date: "2025-10-15", Description: "Primary Job Paycheck", Amount: amt("8100"), CategoryID: "inc1", CategoryType: models.Income},
			{ID: "txn9", Date: "2025-10-18", Description: "Car Payment", Amount: amt("420"), CategoryID: "debt1", CategoryType: models.Debt},
			{ID: "txn10", Date: "2025-10-20", Description: "Whole Foods", Amount: amt("150.75"), CategoryID: "exp1", CategoryType: models.Expenses, Location: "555 Health Blvd"},
		},
	}
}
