package store

import (
	"encoding/json"
	"fmt"

	"rishvinreddy/smarty-budget/internal/budgeterror"
	"rishvinreddy/smarty-budget/internal/dateutils"
	"rishvinreddy/smarty-budget/internal/models"
)

// ledgerDocument mirrors models.Ledger with pointer slices so a missing
// bucket array can be told apart from an empty one.
type ledgerDocument struct {
	Period          models.Period         `json:"period"`
	DisplayCurrency string                `json:"displayCurrency"`
	Income          *[]models.BudgetItem  `json:"income"`
	Bills           *[]models.BudgetItem  `json:"bills"`
	Expenses        *[]models.BudgetItem  `json:"expenses"`
	Savings         *[]models.BudgetItem  `json:"savings"`
	Debt            *[]models.BudgetItem  `json:"debt"`
	Transactions    *[]models.Transaction `json:"transactions"`
}

// ParseDocument parses and structurally validates an externally supplied
// ledger document (import). It is all-or-nothing: either the document yields
// a usable Ledger or an error, never a partial result. The five bucket
// arrays and the transaction array must all be present (empty is fine),
// every item needs an id and a name, and every transaction needs an id, a
// parsable date, a known bucket key and a non-negative amount.
func ParseDocument(data []byte) (models.Ledger, error) {
	var doc ledgerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Ledger{}, fmt.Errorf("document is not valid JSON: %w", err)
	}

	buckets := map[string]*[]models.BudgetItem{
		"income":   doc.Income,
		"bills":    doc.Bills,
		"expenses": doc.Expenses,
		"savings":  doc.Savings,
		"debt":     doc.Debt,
	}
	for _, key := range []string{"income", "bills", "expenses", "savings", "debt"} {
		items := buckets[key]
		if items == nil {
			return models.Ledger{}, &budgeterror.DocumentError{Field: key, Reason: "bucket array is missing"}
		}
		for i, item := range *items {
			if item.ID == "" {
				return models.Ledger{}, &budgeterror.DocumentError{
					Field: fmt.Sprintf("%s[%d]", key, i), Reason: "item has no id"}
			}
			if item.Name == "" {
				return models.Ledger{}, &budgeterror.DocumentError{
					Field: fmt.Sprintf("%s[%d]", key, i), Reason: "item has no name"}
			}
		}
	}

	if doc.Transactions == nil {
		return models.Ledger{}, &budgeterror.DocumentError{Field: "transactions", Reason: "transaction array is missing"}
	}
	for i, tx := range *doc.Transactions {
		field := fmt.Sprintf("transactions[%d]", i)
		if tx.ID == "" {
			return models.Ledger{}, &budgeterror.DocumentError{Field: field, Reason: "transaction has no id"}
		}
		if _, err := dateutils.ParseDay(tx.Date); err != nil {
			return models.Ledger{}, &budgeterror.DocumentError{Field: field, Reason: fmt.Sprintf("bad date %q", tx.Date)}
		}
		if _, ok := models.ParseCategoryType(string(tx.CategoryType)); !ok {
			return models.Ledger{}, &budgeterror.DocumentError{Field: field, Reason: fmt.Sprintf("unknown bucket %q", tx.CategoryType)}
		}
		if tx.Amount.IsNegative() {
			return models.Ledger{}, &budgeterror.DocumentError{Field: field, Reason: "amount is negative"}
		}
	}

	return models.Ledger{
		Period:          doc.Period,
		DisplayCurrency: doc.DisplayCurrency,
		Income:          *doc.Income,
		Bills:           *doc.Bills,
		Expenses:        *doc.Expenses,
		Savings:         *doc.Savings,
		Debt:            *doc.Debt,
		Transactions:    *doc.Transactions,
	}, nil
}

// ExportDocument serializes a ledger verbatim for backup.
func ExportDocument(ledger models.Ledger) ([]byte, error) {
	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not serialize ledger: %w", err)
	}
	return data, nil
}
