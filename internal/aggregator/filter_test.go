package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rishvinreddy/smarty-budget/internal/models"
)

func filterFixture() []models.Transaction {
	groceries := tx("g1", "2025-10-02", "exp1", models.Expenses, "125.50")
	groceries.Description = "Trader Joe's"
	groceries.Location = "123 Market St"

	rent := tx("r1", "2025-10-05", "bill1", models.Bills, "2100")
	rent.Description = "Monthly Rent"

	dinner := tx("d1", "2025-11-08", "exp2", models.Expenses, "78")
	dinner.Description = "Dinner with friends"
	dinner.Location = "The Italian Place"

	return []models.Transaction{groceries, rent, dinner}
}

func TestFilter_ZeroValueMatchesAll(t *testing.T) {
	out := Filter{}.Apply(filterFixture())
	require.Len(t, out, 3)
	// Most recent first
	assert.Equal(t, "d1", out[0].ID)
}

func TestFilter_SearchMatchesDescriptionAndLocation(t *testing.T) {
	txs := filterFixture()

	out := Filter{Search: "trader"}.Apply(txs)
	require.Len(t, out, 1)
	assert.Equal(t, "g1", out[0].ID)

	out = Filter{Search: "ITALIAN"}.Apply(txs)
	require.Len(t, out, 1)
	assert.Equal(t, "d1", out[0].ID)

	out = Filter{Search: "yacht"}.Apply(txs)
	assert.Empty(t, out)
}

func TestFilter_Category(t *testing.T) {
	out := Filter{Category: models.CategoryRef{Bucket: models.Bills, ID: "bill1"}}.Apply(filterFixture())
	require.Len(t, out, 1)
	assert.Equal(t, "r1", out[0].ID)

	// Matching id in the wrong bucket does not pass
	out = Filter{Category: models.CategoryRef{Bucket: models.Expenses, ID: "bill1"}}.Apply(filterFixture())
	assert.Empty(t, out)
}

func TestFilter_DateRangeInclusive(t *testing.T) {
	out := Filter{From: "2025-10-02", To: "2025-10-05"}.Apply(filterFixture())
	require.Len(t, out, 2)
	assert.Equal(t, "r1", out[0].ID)
	assert.Equal(t, "g1", out[1].ID)
}

func TestFilter_CombinesWithAnd(t *testing.T) {
	out := Filter{Search: "rent", From: "2025-11-01"}.Apply(filterFixture())
	assert.Empty(t, out)
}

func TestFilter_BadDateDroppedWhenRangeSet(t *testing.T) {
	txs := filterFixture()
	bad := tx("bad", "not-a-date", "exp1", models.Expenses, "10")
	txs = append(txs, bad)

	// Without a range the bad date passes through
	assert.Len(t, Filter{}.Apply(txs), 4)

	// With a range it cannot pass the check
	out := Filter{From: "2000-01-01"}.Apply(txs)
	for _, tr := range out {
		assert.NotEqual(t, "bad", tr.ID)
	}
}
