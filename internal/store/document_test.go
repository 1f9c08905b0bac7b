package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rishvinreddy/smarty-budget/internal/budgeterror"
	"rishvinreddy/smarty-budget/internal/models"
)

func TestParseDocument_RoundTrip(t *testing.T) {
	original := SeedLedger()

	data, err := ExportDocument(original)
	require.NoError(t, err)

	parsed, err := ParseDocument(data)
	require.NoError(t, err)

	assert.Equal(t, original.DisplayCurrency, parsed.DisplayCurrency)
	assert.Equal(t, original.Period, parsed.Period)
	assert.Len(t, parsed.Transactions, len(original.Transactions))
	assert.Equal(t, original.Income[0].Name, parsed.Income[0].Name)
}

func TestParseDocument_EmptyBucketsAreValid(t *testing.T) {
	doc := `{
		"period": {"start": "2025-10-01", "end": "2025-10-31"},
		"displayCurrency": "USD",
		"income": [], "bills": [], "expenses": [], "savings": [], "debt": [],
		"transactions": []
	}`

	ledger, err := ParseDocument([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, ledger.Income)
	assert.Empty(t, ledger.Transactions)
}

func TestParseDocument_MissingBucketRejected(t *testing.T) {
	doc := `{
		"displayCurrency": "USD",
		"income": [], "bills": [], "expenses": [], "debt": [],
		"transactions": []
	}`

	_, err := ParseDocument([]byte(doc))
	require.Error(t, err)
	var docErr *budgeterror.DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "savings", docErr.Field)
}

func TestParseDocument_MissingTransactionsRejected(t *testing.T) {
	doc := `{
		"income": [], "bills": [], "expenses": [], "savings": [], "debt": []
	}`

	_, err := ParseDocument([]byte(doc))
	var docErr *budgeterror.DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "transactions", docErr.Field)
}

func TestParseDocument_ItemValidation(t *testing.T) {
	noID := `{
		"income": [{"name": "Salary", "planned": "100"}],
		"bills": [], "expenses": [], "savings": [], "debt": [],
		"transactions": []
	}`
	_, err := ParseDocument([]byte(noID))
	assert.Error(t, err)

	noName := `{
		"income": [{"id": "i1", "planned": "100"}],
		"bills": [], "expenses": [], "savings": [], "debt": [],
		"transactions": []
	}`
	_, err = ParseDocument([]byte(noName))
	assert.Error(t, err)
}

func TestParseDocument_TransactionValidation(t *testing.T) {
	base := func(txJSON string) string {
		return `{
			"income": [], "bills": [], "expenses": [], "savings": [], "debt": [],
			"transactions": [` + txJSON + `]
		}`
	}

	tests := []struct {
		name string
		tx   string
	}{
		{"no id", `{"date": "2025-10-01", "amount": "5", "categoryId": "x", "categoryType": "expenses"}`},
		{"bad date", `{"id": "t1", "date": "tomorrow", "amount": "5", "categoryId": "x", "categoryType": "expenses"}`},
		{"unknown bucket", `{"id": "t1", "date": "2025-10-01", "amount": "5", "categoryId": "x", "categoryType": "housing"}`},
		{"negative amount", `{"id": "t1", "date": "2025-10-01", "amount": "-5", "categoryId": "x", "categoryType": "expenses"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(base(tc.tx)))
			assert.Error(t, err)
		})
	}
}

func TestParseDocument_AllOrNothing(t *testing.T) {
	// One bad transaction poisons the whole document; nothing is returned
	doc := `{
		"income": [{"id": "i1", "name": "Salary"}],
		"bills": [], "expenses": [], "savings": [], "debt": [],
		"transactions": [
			{"id": "t1", "date": "2025-10-01", "amount": "5", "categoryId": "i1", "categoryType": "income"},
			{"id": "t2", "date": "garbage", "amount": "5", "categoryId": "i1", "categoryType": "income"}
		]
	}`

	ledger, err := ParseDocument([]byte(doc))
	assert.Error(t, err)
	assert.Equal(t, models.Ledger{}, ledger)
}

func TestParseDocument_NotJSON(t *testing.T) {
	_, err := ParseDocument([]byte("{nope"))
	assert.Error(t, err)
}
