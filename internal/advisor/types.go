package advisor

import (
	"strings"

	"github.com/shopspring/decimal"

	"rishvinreddy/smarty-budget/internal/budgeterror"
	"rishvinreddy/smarty-budget/internal/dateutils"
	"rishvinreddy/smarty-budget/internal/models"
)

// Tip is one actionable suggestion inside a coaching response.
type Tip struct {
	Tip         string `json:"tip"`
	Explanation string `json:"explanation"`
}

// Suggestion is the structured coaching response of the advise feature.
type Suggestion struct {
	Title               string `json:"title"`
	PositiveFeedback    string `json:"positive_feedback"`
	AreasForImprovement string `json:"areas_for_improvement"`
	ActionableTips      []Tip  `json:"actionable_tips"`
}

// Validate treats the response as untrusted input: structure alone is not
// enough, the fields the user will read must actually be filled.
func (s *Suggestion) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return &budgeterror.ResponseError{Feature: "advise", Reason: "missing title"}
	}
	if strings.TrimSpace(s.PositiveFeedback) == "" && strings.TrimSpace(s.AreasForImprovement) == "" {
		return &budgeterror.ResponseError{Feature: "advise", Reason: "no feedback content"}
	}
	kept := s.ActionableTips[:0]
	for _, tip := range s.ActionableTips {
		if strings.TrimSpace(tip.Tip) != "" {
			kept = append(kept, tip)
		}
	}
	s.ActionableTips = kept
	return nil
}

// ReceiptItem is one extracted line of a scanned receipt.
type ReceiptItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ReceiptScan is the structured extraction from a receipt image. Nothing in
// it reaches the ledger directly; applying it goes through the normal
// add-transaction path with a freshly minted id.
type ReceiptScan struct {
	Vendor                string          `json:"vendor"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
	TransactionDate       string          `json:"transactionDate"`
	SuggestedCategoryName string          `json:"suggestedCategoryName"`
	Location              string          `json:"location"`
	Items                 []ReceiptItem   `json:"items"`
}

// Validate normalizes the extraction and rejects anything a manual form
// would reject: empty vendor, non-positive total, unparsable date.
func (r *ReceiptScan) Validate() error {
	r.Vendor = strings.TrimSpace(r.Vendor)
	if r.Vendor == "" {
		return &budgeterror.ResponseError{Feature: "scan", Reason: "missing vendor"}
	}
	if !r.TotalAmount.IsPositive() {
		return &budgeterror.ResponseError{Feature: "scan", Reason: "total amount is not positive"}
	}
	day, err := dateutils.ParseDay(r.TransactionDate)
	if err != nil {
		return &budgeterror.ResponseError{Feature: "scan", Reason: "unparsable transaction date", Err: err}
	}
	r.TransactionDate = dateutils.FormatDay(day)
	kept := r.Items[:0]
	for _, item := range r.Items {
		if strings.TrimSpace(item.Description) != "" && !item.Amount.IsNegative() {
			kept = append(kept, item)
		}
	}
	r.Items = kept
	return nil
}

// PlannedItem is one budget line of a generated plan: a name and a planned
// amount, nothing else. Ids are never taken from a response.
type PlannedItem struct {
	Name    string          `json:"name"`
	Planned decimal.Decimal `json:"planned"`
}

// GeneratedPlan is a full five-bucket plan skeleton generated from a
// free-text description.
type GeneratedPlan struct {
	Income   []PlannedItem `json:"income"`
	Bills    []PlannedItem `json:"bills"`
	Expenses []PlannedItem `json:"expenses"`
	Savings  []PlannedItem `json:"savings"`
	Debt     []PlannedItem `json:"debt"`
}

// Plan converts the generated skeleton into plan lines keyed by bucket,
// ready for application.
func (p GeneratedPlan) Plan() map[models.CategoryType][]models.PlanLine {
	out := make(map[models.CategoryType][]models.PlanLine, len(models.CategoryTypes))
	buckets := map[models.CategoryType][]PlannedItem{
		models.Income:   p.Income,
		models.Bills:    p.Bills,
		models.Expenses: p.Expenses,
		models.Savings:  p.Savings,
		models.Debt:     p.Debt,
	}
	for ct, items := range buckets {
		lines := make([]models.PlanLine, 0, len(items))
		for _, item := range items {
			lines = append(lines, models.PlanLine{Name: item.Name, Planned: item.Planned})
		}
		out[ct] = lines
	}
	return out
}

// Validate drops unusable lines (blank names, negative amounts) and fails if
// nothing usable remains.
func (p *GeneratedPlan) Validate() error {
	total := 0
	for _, bucket := range []*[]PlannedItem{&p.Income, &p.Bills, &p.Expenses, &p.Savings, &p.Debt} {
		kept := (*bucket)[:0]
		for _, item := range *bucket {
			item.Name = strings.TrimSpace(item.Name)
			if item.Name == "" || item.Planned.IsNegative() {
				continue
			}
			kept = append(kept, item)
		}
		*bucket = kept
		total += len(kept)
	}
	if total == 0 {
		return &budgeterror.ResponseError{Feature: "plan", Reason: "plan contains no usable budget lines"}
	}
	return nil
}
