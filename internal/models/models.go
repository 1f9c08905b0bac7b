// Package models defines the domain types of the budget ledger: category
// buckets, budget items, transactions and the ledger document itself.
package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryType identifies one of the five fixed category buckets.
type CategoryType string

const (
	Income   CategoryType = "income"
	Bills    CategoryType = "bills"
	Expenses CategoryType = "expenses"
	Savings  CategoryType = "savings"
	Debt     CategoryType = "debt"
)

// CategoryTypes lists the buckets in display order. Buckets are fixed; they
// are never created or deleted.
var CategoryTypes = []CategoryType{Income, Bills, Expenses, Savings, Debt}

// DefaultAlertThreshold is the percentage at which a warning fires when an
// item does not carry its own threshold.
const DefaultAlertThreshold = 90

// ParseCategoryType converts a string to a CategoryType, ignoring case.
func ParseCategoryType(s string) (CategoryType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, ct := range CategoryTypes {
		if string(ct) == s {
			return ct, true
		}
	}
	return "", false
}

// CategoryRef is a tagged reference to a budget item. Item ids are only
// guaranteed unique within their bucket, so an id is never passed around
// without its bucket.
type CategoryRef struct {
	Bucket CategoryType `json:"bucket"`
	ID     string       `json:"id"`
}

// BudgetItem is one budget line inside a bucket. Planned is the target
// amount; Actual is derived from transactions by the aggregator and is only
// authoritative inside a DerivedView.
type BudgetItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Planned        decimal.Decimal `json:"planned"`
	Actual         decimal.Decimal `json:"actual"`
	AlertThreshold int             `json:"alertThreshold,omitempty"`
}

// NewBudgetItem constructs a budget line with a freshly minted id, zero
// actual and the default alert threshold. Every item that enters the ledger
// goes through here, including items from imported AI plans and templates.
func NewBudgetItem(name string, planned decimal.Decimal) BudgetItem {
	return BudgetItem{
		ID:             uuid.NewString(),
		Name:           name,
		Planned:        planned,
		Actual:         decimal.Zero,
		AlertThreshold: DefaultAlertThreshold,
	}
}

// Threshold returns the item's alert threshold, applying the default for
// items loaded from older documents that never stored one.
func (b BudgetItem) Threshold() int {
	if b.AlertThreshold <= 0 {
		return DefaultAlertThreshold
	}
	return b.AlertThreshold
}

// TransactionItem is one line of an itemized breakdown on a transaction.
// Informational only; breakdown lines are never aggregated.
type TransactionItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Transaction is one dated financial event. Amount is a non-negative
// magnitude; direction is implied by CategoryType. Date is a YYYY-MM-DD
// calendar day. CategoryID is a weak reference: the referenced item may have
// been removed, in which case the transaction simply no longer contributes
// to any item's actual.
type Transaction struct {
	ID           string            `json:"id"`
	Date         string            `json:"date"`
	Description  string            `json:"description"`
	Amount       decimal.Decimal   `json:"amount"`
	CategoryID   string            `json:"categoryId"`
	CategoryType CategoryType      `json:"categoryType"`
	Location     string            `json:"location,omitempty"`
	Items        []TransactionItem `json:"items,omitempty"`
}

// NewTransaction mints an id for a new transaction. All other fields are
// taken as given; callers validate before constructing.
func NewTransaction(date, description string, amount decimal.Decimal, ref CategoryRef, location string, items []TransactionItem) Transaction {
	return Transaction{
		ID:           uuid.NewString(),
		Date:         date,
		Description:  description,
		Amount:       amount,
		CategoryID:   ref.ID,
		CategoryType: ref.Bucket,
		Location:     location,
		Items:        items,
	}
}

// Ref returns the transaction's tagged category reference.
func (t Transaction) Ref() CategoryRef {
	return CategoryRef{Bucket: t.CategoryType, ID: t.CategoryID}
}

// Period is the default display window stored on the ledger. It only seeds
// the initially selected month; views narrow it to the month they render.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Ledger is the root aggregate and the sole unit of persistence: the five
// buckets, the transaction log, the default period and the display currency.
// All amounts are in one implicit base unit; DisplayCurrency only affects
// presentation.
type Ledger struct {
	Period          Period        `json:"period"`
	DisplayCurrency string        `json:"displayCurrency"`
	Income          []BudgetItem  `json:"income"`
	Bills           []BudgetItem  `json:"bills"`
	Expenses        []BudgetItem  `json:"expenses"`
	Savings         []BudgetItem  `json:"savings"`
	Debt            []BudgetItem  `json:"debt"`
	Transactions    []Transaction `json:"transactions"`
}

// Bucket returns the items of the given bucket. Unknown bucket keys yield nil.
func (l Ledger) Bucket(ct CategoryType) []BudgetItem {
	switch ct {
	case Income:
		return l.Income
	case Bills:
		return l.Bills
	case Expenses:
		return l.Expenses
	case Savings:
		return l.Savings
	case Debt:
		return l.Debt
	default:
		return nil
	}
}

// SetBucket replaces the items of the given bucket on the receiver copy.
func (l *Ledger) SetBucket(ct CategoryType, items []BudgetItem) {
	switch ct {
	case Income:
		l.Income = items
	case Bills:
		l.Bills = items
	case Expenses:
		l.Expenses = items
	case Savings:
		l.Savings = items
	case Debt:
		l.Debt = items
	}
}

// FindItem resolves a tagged reference to its budget item.
func (l Ledger) FindItem(ref CategoryRef) (BudgetItem, bool) {
	for _, item := range l.Bucket(ref.Bucket) {
		if item.ID == ref.ID {
			return item, true
		}
	}
	return BudgetItem{}, false
}

// FindItemByName resolves an item by case-insensitive name. When bucket is
// empty every bucket is searched in display order; the first match wins.
func (l Ledger) FindItemByName(bucket CategoryType, name string) (CategoryRef, BudgetItem, bool) {
	buckets := CategoryTypes
	if bucket != "" {
		buckets = []CategoryType{bucket}
	}
	for _, ct := range buckets {
		for _, item := range l.Bucket(ct) {
			if strings.EqualFold(item.Name, name) {
				return CategoryRef{Bucket: ct, ID: item.ID}, item, true
			}
		}
	}
	return CategoryRef{}, BudgetItem{}, false
}

// CategoryNames returns the names of all items across all buckets, in bucket
// display order. Used to seed AI prompts that pick a category.
func (l Ledger) CategoryNames() []string {
	var names []string
	for _, ct := range CategoryTypes {
		for _, item := range l.Bucket(ct) {
			names = append(names, item.Name)
		}
	}
	return names
}

// Clone returns a deep copy of the ledger. Mutations operate on clones so a
// half-applied mutation can never be observed.
func (l Ledger) Clone() Ledger {
	out := l
	out.Income = cloneItems(l.Income)
	out.Bills = cloneItems(l.Bills)
	out.Expenses = cloneItems(l.Expenses)
	out.Savings = cloneItems(l.Savings)
	out.Debt = cloneItems(l.Debt)
	out.Transactions = make([]Transaction, len(l.Transactions))
	for i, t := range l.Transactions {
		out.Transactions[i] = t
		if t.Items != nil {
			out.Transactions[i].Items = append([]TransactionItem(nil), t.Items...)
		}
	}
	return out
}

func cloneItems(items []BudgetItem) []BudgetItem {
	if items == nil {
		return nil
	}
	return append([]BudgetItem(nil), items...)
}

// TotalPlanned sums the planned amounts of a slice of items.
func TotalPlanned(items []BudgetItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Planned)
	}
	return sum
}

// TotalActual sums the actual amounts of a slice of items.
func TotalActual(items []BudgetItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Actual)
	}
	return sum
}

// DerivedView is the month-scoped recomputation of the ledger: the period
// narrowed to one calendar month, transactions filtered to that month, and
// every bucket's actuals recomputed from those transactions. Never persisted.
type DerivedView struct {
	Year            int
	Month           int
	Period          Period
	DisplayCurrency string
	Income          []BudgetItem
	Bills           []BudgetItem
	Expenses        []BudgetItem
	Savings         []BudgetItem
	Debt            []BudgetItem
	Transactions    []Transaction
}

// Bucket returns the recomputed items of the given bucket.
func (v DerivedView) Bucket(ct CategoryType) []BudgetItem {
	switch ct {
	case Income:
		return v.Income
	case Bills:
		return v.Bills
	case Expenses:
		return v.Expenses
	case Savings:
		return v.Savings
	case Debt:
		return v.Debt
	default:
		return nil
	}
}

// ItemName resolves a category id to its display name, scanning all buckets.
// Dangling references resolve to the fallback label.
func (v DerivedView) ItemName(categoryID string) string {
	for _, ct := range CategoryTypes {
		for _, item := range v.Bucket(ct) {
			if item.ID == categoryID {
				return item.Name
			}
		}
	}
	return "Unknown category"
}
