package aggregator

import (
	"strings"

	"rishvinreddy/smarty-budget/internal/dateutils"
	"rishvinreddy/smarty-budget/internal/models"
)

// Filter narrows a transaction list for display. All fields are optional;
// the zero Filter matches everything. Filtering is a read-only projection
// over an already-derived view and performs no aggregation of its own.
type Filter struct {
	// Search matches case-insensitive substrings of description or location.
	Search string
	// Category keeps only transactions referencing this item.
	Category models.CategoryRef
	// From and To bound the calendar-day range, inclusive, when non-empty.
	From string
	To   string
}

// Apply returns the transactions matching the filter, most recent first.
// Transactions with unparsable dates are dropped only when a date range is
// set; a bad date cannot silently pass a range check.
func (f Filter) Apply(txs []models.Transaction) []models.Transaction {
	query := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if f.Category.ID != "" && (t.CategoryID != f.Category.ID || t.CategoryType != f.Category.Bucket) {
			continue
		}
		if query != "" && !matchesQuery(t, query) {
			continue
		}
		if f.From != "" || f.To != "" {
			in, err := dateutils.InRange(t.Date, f.From, f.To)
			if err != nil || !in {
				continue
			}
		}
		out = append(out, t)
	}
	SortByDateDesc(out)
	return out
}

func matchesQuery(t models.Transaction, query string) bool {
	if strings.Contains(strings.ToLower(t.Description), query) {
		return true
	}
	return t.Location != "" && strings.Contains(strings.ToLower(t.Location), query)
}
