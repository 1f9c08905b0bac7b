// Package alerts evaluates threshold breaches on a derived month view.
package alerts

import (
	"fmt"

	"github.com/shopspring/decimal"

	"rishvinreddy/smarty-budget/internal/models"
)

// Severity classifies an alert.
type Severity string

const (
	// Danger means the item's actual has reached or exceeded its planned
	// amount.
	Danger Severity = "danger"
	// Warning means the item's usage has crossed its alert threshold but is
	// still under budget.
	Warning Severity = "warning"
)

// Alert is one threshold-breach notice for a budget item.
type Alert struct {
	Severity Severity
	Bucket   models.CategoryType
	ItemName string
	// Percent is actual/planned*100, rounded to a whole number.
	Percent int64
	// Overage is actual-planned in base units; zero for warnings.
	Overage decimal.Decimal
	Message string
}

var hundred = decimal.NewFromInt(100)

// scannedBuckets are the only buckets that generate alerts. Income and
// Savings never do: exceeding planned income or savings is not a problem.
var scannedBuckets = []models.CategoryType{models.Bills, models.Expenses, models.Debt}

// Evaluate scans the Bills, Expenses and Debt buckets of a derived view and
// returns all Danger alerts followed by all Warning alerts, each group in
// stable input order. Items with planned <= 0 never alert, which also keeps
// the percentage computation away from division by zero.
func Evaluate(view models.DerivedView) []Alert {
	var dangers, warnings []Alert
	for _, bucket := range scannedBuckets {
		for _, item := range view.Bucket(bucket) {
			if !item.Planned.IsPositive() {
				continue
			}
			pct := item.Actual.Div(item.Planned).Mul(hundred)
			rounded := pct.Round(0).IntPart()
			switch {
			case pct.GreaterThanOrEqual(hundred):
				overage := item.Actual.Sub(item.Planned)
				dangers = append(dangers, Alert{
					Severity: Danger,
					Bucket:   bucket,
					ItemName: item.Name,
					Percent:  rounded,
					Overage:  overage,
					Message: fmt.Sprintf("You've exceeded your budget for %q. You are over by %s.",
						item.Name, overage.StringFixed(2)),
				})
			case pct.GreaterThanOrEqual(decimal.NewFromInt(int64(item.Threshold()))):
				warnings = append(warnings, Alert{
					Severity: Warning,
					Bucket:   bucket,
					ItemName: item.Name,
					Percent:  rounded,
					Message:  fmt.Sprintf("You've used %d%% of your budget for %q.", rounded, item.Name),
				})
			}
		}
	}
	return append(dangers, warnings...)
}
